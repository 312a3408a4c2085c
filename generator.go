package sinegen

import (
	"fmt"
)

// Visualizer renders a synthesized waveform. It is a presentational side
// effect: its errors are reported but never stop file generation.
type Visualizer interface {
	Visualize(w *Waveform) error
}

// VisualizerFunc adapts a function to the Visualizer interface.
type VisualizerFunc func(w *Waveform) error

// Visualize calls f(w).
func (f VisualizerFunc) Visualize(w *Waveform) error {
	return f(w)
}

// Generator runs the synthesize, visualize, encode pipeline.
type Generator struct {
	config     Config
	visualizer Visualizer
}

// Option configures a Generator.
type Option func(*Generator)

// WithVisualizer sets the collaborator that renders the waveform before it
// is written. A nil visualizer skips the step.
func WithVisualizer(v Visualizer) Option {
	return func(g *Generator) {
		g.visualizer = v
	}
}

// Result describes a completed generation run.
type Result struct {
	// Waveform is the synthesized signal that was encoded.
	Waveform *Waveform

	// BytesWritten is the size of the output file.
	BytesWritten int64

	// VisualizeErr holds the visualizer failure, if any.
	VisualizeErr error
}

// NewGenerator validates cfg and returns a Generator for it.
func NewGenerator(cfg Config, opts ...Option) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	g := &Generator{config: cfg}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Config returns the generator configuration.
func (g *Generator) Config() Config {
	return g.config
}

// Generate synthesizes the waveform, hands it to the visualizer and writes
// the encoded samples to path, truncating any existing file.
func (g *Generator) Generate(path string) (*Result, error) {
	w, err := Synthesize(g.config)
	if err != nil {
		return nil, fmt.Errorf("failed to synthesize waveform: %w", err)
	}

	res := &Result{Waveform: w}
	if g.visualizer != nil {
		if err := g.visualizer.Visualize(w); err != nil {
			res.VisualizeErr = fmt.Errorf("visualization failed: %w", err)
		}
	}

	n, err := WriteFile(path, w, g.config.StorageBits)
	if err != nil {
		return nil, err
	}
	res.BytesWritten = n
	return res, nil
}

// Generate writes the signal described by cfg to path without visualization.
func Generate(cfg Config, path string) (*Result, error) {
	g, err := NewGenerator(cfg)
	if err != nil {
		return nil, err
	}
	return g.Generate(path)
}
