// Package chart renders synthesized waveforms with gonum/plot.
package chart

import (
	"errors"
	"fmt"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	sinegen "github.com/tphakala/go-iio-sinegen"
)

// Labels of the reference plot.
const (
	DefaultTitle  = "numpy.sin()"
	DefaultXLabel = "X"
	DefaultYLabel = "Y"
)

// Default image size.
const (
	DefaultWidth  = 8 * vg.Inch
	DefaultHeight = 4 * vg.Inch
)

// ErrNoData indicates there is nothing to plot.
var ErrNoData = errors.New("chart: no channel data")

// Options controls the plot labels and image size.
type Options struct {
	Title  string
	XLabel string
	YLabel string
	Width  vg.Length
	Height vg.Length
}

// DefaultOptions returns the reference labels and default size.
func DefaultOptions() Options {
	return Options{
		Title:  DefaultTitle,
		XLabel: DefaultXLabel,
		YLabel: DefaultYLabel,
		Width:  DefaultWidth,
		Height: DefaultHeight,
	}
}

// New builds a plot of every channel against the shared x axis.
// Each channel must have len(x) samples.
func New(x []float64, channels [][]float64, opts Options) (*plot.Plot, error) {
	if len(x) == 0 || len(channels) == 0 {
		return nil, ErrNoData
	}

	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = opts.XLabel
	p.Y.Label.Text = opts.YLabel
	p.Add(plotter.NewGrid())

	for ch, samples := range channels {
		if len(samples) != len(x) {
			return nil, fmt.Errorf("chart: channel %d has %d samples, axis has %d", ch, len(samples), len(x))
		}

		pts := make(plotter.XYs, len(x))
		for i := range x {
			pts[i].X = x[i]
			pts[i].Y = samples[i]
		}

		line, err := plotter.NewLine(pts)
		if err != nil {
			return nil, fmt.Errorf("chart: channel %d: %w", ch, err)
		}
		line.LineStyle.Color = plotutil.Color(ch)
		p.Add(line)
		p.Legend.Add(fmt.Sprintf("ch%d", ch), line)
	}

	return p, nil
}

// Save renders the plot to path. The image format follows the file
// extension (png, svg, pdf, jpg, eps, tif).
func Save(path string, x []float64, channels [][]float64, opts Options) error {
	p, err := New(x, channels, opts)
	if err != nil {
		return err
	}
	if err := p.Save(opts.Width, opts.Height, path); err != nil {
		return fmt.Errorf("chart: failed to save %s: %w", path, err)
	}
	return nil
}

// Render writes the plot to w in the given format ("png", "svg", ...).
func Render(w io.Writer, format string, x []float64, channels [][]float64, opts Options) error {
	p, err := New(x, channels, opts)
	if err != nil {
		return err
	}

	wt, err := p.WriterTo(opts.Width, opts.Height, format)
	if err != nil {
		return fmt.Errorf("chart: %w", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("chart: failed to write %s image: %w", format, err)
	}
	return nil
}

// NewVisualizer returns a sinegen.Visualizer that saves every waveform it is
// given to path, plotted against the waveform's phase axis.
func NewVisualizer(path string, opts Options) sinegen.Visualizer {
	return sinegen.VisualizerFunc(func(w *sinegen.Waveform) error {
		return Save(path, w.Phase, w.Channels, opts)
	})
}
