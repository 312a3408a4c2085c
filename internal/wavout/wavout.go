// Package wavout writes encoded sample channels as PCM WAV previews so the
// generated stream can be opened in standard audio tools.
package wavout

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const (
	// pcmFormat is the WAVE_FORMAT_PCM audio format tag.
	pcmFormat = 1

	// DefaultSampleRate is the preview sample rate in Hz.
	DefaultSampleRate = 48000
)

// ErrUnsupportedBitDepth indicates a storage width WAV PCM cannot carry.
var ErrUnsupportedBitDepth = errors.New("wavout: unsupported bit depth")

// Interleave flattens [channel][time] samples into time-major, channel-minor order.
func Interleave(channels [][]int64) []int {
	if len(channels) == 0 {
		return nil
	}

	numChannels := len(channels)
	samples := len(channels[0])
	out := make([]int, samples*numChannels)
	for t := range samples {
		base := t * numChannels
		for ch := range numChannels {
			out[base+ch] = int(channels[ch][t])
		}
	}
	return out
}

// Write encodes channels as a PCM WAV file at path.
// bitDepth must be 8, 16, 24 or 32; all channels must be the same length.
func Write(path string, channels [][]int64, bitDepth, sampleRate int) (err error) {
	switch bitDepth {
	case 8, 16, 24, 32:
	default:
		return fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}
	if len(channels) == 0 {
		return errors.New("wavout: no channels")
	}
	for ch := range channels {
		if len(channels[ch]) != len(channels[0]) {
			return fmt.Errorf("wavout: channel %d has %d samples, want %d", ch, len(channels[ch]), len(channels[0]))
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create WAV file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
	}()

	enc := wav.NewEncoder(f, sampleRate, bitDepth, len(channels), pcmFormat)
	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: len(channels),
			SampleRate:  sampleRate,
		},
		Data:           Interleave(channels),
		SourceBitDepth: bitDepth,
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("failed to write WAV data: %w", err)
	}
	// Close rewrites the RIFF and data chunk sizes.
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to finalize WAV header: %w", err)
	}
	return nil
}
