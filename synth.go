package sinegen

import (
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/tphakala/go-iio-sinegen/internal/simdops"
)

// Waveform holds the synthesized channels before encoding.
type Waveform struct {
	// Phase is the phase axis of the last synthesized channel.
	// Visualizers plot every channel against it.
	Phase []float64

	// Channels holds one rescaled sine per channel, each Len() samples long.
	Channels [][]float64
}

// NumChannels returns the number of channels.
func (w *Waveform) NumChannels() int {
	return len(w.Channels)
}

// Len returns the number of samples per channel.
func (w *Waveform) Len() int {
	if len(w.Channels) == 0 {
		return 0
	}
	return len(w.Channels[0])
}

// Synthesize computes ChannelCount phase-shifted sine waves.
//
// Channel i samples sin over SampleCount evenly spaced phases from i*offset
// to 2π*Periods + i*offset inclusive, where offset is cfg.PhaseOffset(), and
// maps each value from [-1, 1] linearly into [MinVal, MaxVal].
func Synthesize(cfg Config) (*Waveform, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	channels := make([][]float64, cfg.ChannelCount)
	phases := make([][]float64, cfg.ChannelCount)

	if cfg.Parallel && cfg.ChannelCount > 1 {
		var g errgroup.Group
		for ch := range cfg.ChannelCount {
			g.Go(func() error {
				phases[ch], channels[ch] = synthesizeChannel(&cfg, ch)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, fmt.Errorf("parallel synthesis failed: %w", err)
		}
	} else {
		for ch := range cfg.ChannelCount {
			phases[ch], channels[ch] = synthesizeChannel(&cfg, ch)
		}
	}

	return &Waveform{
		Phase:    phases[cfg.ChannelCount-1],
		Channels: channels,
	}, nil
}

// synthesizeChannel returns the phase axis and rescaled samples of one channel.
func synthesizeChannel(cfg *Config, ch int) (phase, samples []float64) {
	sinOffset := cfg.PhaseOffset() * float64(ch)
	end := fullTurnRadians*math.Pi*cfg.Periods + sinOffset

	phase = simdops.Span(make([]float64, cfg.SampleCount), sinOffset, end)

	samples = make([]float64, cfg.SampleCount)
	for i, x := range phase {
		samples[i] = Rescale(math.Sin(x), cfg.MinVal, cfg.MaxVal)
	}
	return phase, samples
}

// Rescale maps x from [-1, 1] linearly into [minVal, maxVal] as
// (x+1)/2*(maxVal-minVal) + minVal.
func Rescale(x float64, minVal, maxVal int) float64 {
	span := float64(maxVal - minVal)
	unit := (x + rescaleShift) / rescaleDivisor
	// Round the product before adding so no FMA is emitted.
	return float64(unit*span) + float64(minVal)
}
