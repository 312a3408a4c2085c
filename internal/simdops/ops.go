// Package simdops provides the vector kernels used by waveform synthesis and
// encoding. SIMD-accelerated paths come from github.com/tphakala/simd.
package simdops

import (
	"github.com/tphakala/simd/f64"
)

// stereoChannels is the channel count with a dedicated SIMD interleave path.
const stereoChannels = 2

// Span fills dst with len(dst) evenly spaced values over [lo, hi].
// Both endpoints are included and the last element is exactly hi.
// dst must hold at least two elements.
//
// Element i is lo + i*step with the product rounded before the add. The
// explicit float64 conversion stops the compiler from fusing the two into an
// FMA on arm64, which would change the grid in the last bit.
func Span(dst []float64, lo, hi float64) []float64 {
	n := len(dst)
	step := (hi - lo) / float64(n-1)
	for i := range dst {
		dst[i] = lo + float64(step*float64(i))
	}
	dst[n-1] = hi
	return dst
}

// Interleave writes channels into dst in time-major, channel-minor order:
// dst[t*len(channels)+ch] = channels[ch][t].
// All channels must have the same length and dst must hold them all.
// Returns the number of elements written.
func Interleave(dst []float64, channels [][]float64) int {
	if len(channels) == 0 || len(channels[0]) == 0 {
		return 0
	}

	numChannels := len(channels)
	samples := len(channels[0])
	total := numChannels * samples
	if len(dst) < total {
		return 0
	}

	// Fast path for mono
	if numChannels == 1 {
		copy(dst, channels[0])
		return total
	}

	// Fast path for stereo
	if numChannels == stereoChannels {
		f64.Interleave2(dst[:total], channels[0], channels[1])
		return total
	}

	// General case
	for t := range samples {
		base := t * numChannels
		for ch := range numChannels {
			dst[base+ch] = channels[ch][t]
		}
	}
	return total
}

// Mean returns the arithmetic mean of a, or 0 for an empty slice.
func Mean(a []float64) float64 {
	if len(a) == 0 {
		return 0
	}
	return f64.Sum(a) / float64(len(a))
}
