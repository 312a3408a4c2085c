package sinegen

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/floats"

	"github.com/tphakala/go-iio-sinegen/internal/simdops"
)

// ChannelStats summarizes the amplitude of one channel.
type ChannelStats struct {
	Min  float64
	Max  float64
	Mean float64
}

// ChannelReport is the analysis of one channel of a generated or decoded signal.
type ChannelReport struct {
	Channel int
	Stats   ChannelStats

	// Cycles is the dominant number of sine cycles in the channel.
	Cycles int

	// PhaseShift is the phase of this channel relative to channel 0 in
	// radians, in [0, 2π). Always 0 for channel 0.
	PhaseShift float64
}

// Stats returns the minimum, maximum and mean of samples.
// An empty slice yields zero stats.
func Stats(samples []float64) ChannelStats {
	if len(samples) == 0 {
		return ChannelStats{}
	}
	return ChannelStats{
		Min:  floats.Min(samples),
		Max:  floats.Max(samples),
		Mean: simdops.Mean(samples),
	}
}

// DominantCycles returns the frequency bin with the most energy, excluding DC.
// For a sine spanning the whole slice this is its number of full cycles.
// Returns 0 for fewer than two samples.
func DominantCycles(samples []float64) int {
	coeffs := spectrum(samples)
	if len(coeffs) < 2 {
		return 0
	}
	return dominantBin(coeffs)
}

// PhaseShift returns the phase of b relative to a in radians, in [0, 2π),
// measured at the dominant frequency bin of a. Both slices must have the same
// length; otherwise 0 is returned.
func PhaseShift(a, b []float64) float64 {
	if len(a) != len(b) {
		return 0
	}
	ca, cb := spectrum(a), spectrum(b)
	if len(ca) < 2 {
		return 0
	}

	k := dominantBin(ca)
	shift := math.Mod(cmplx.Phase(cb[k])-cmplx.Phase(ca[k]), 2*math.Pi)
	if shift < 0 {
		shift += 2 * math.Pi
	}
	return shift
}

// Analyze reports stats, dominant cycles and phase relative to channel 0
// for every channel.
func Analyze(channels [][]float64) []ChannelReport {
	reports := make([]ChannelReport, len(channels))
	for ch, data := range channels {
		reports[ch] = ChannelReport{
			Channel: ch,
			Stats:   Stats(data),
			Cycles:  DominantCycles(data),
		}
		if ch > 0 {
			reports[ch].PhaseShift = PhaseShift(channels[0], data)
		}
	}
	return reports
}

// ToFloat converts decoded integer samples for analysis.
func ToFloat(samples []int64) []float64 {
	out := make([]float64, len(samples))
	for i, v := range samples {
		out[i] = float64(v)
	}
	return out
}

// spectrum returns the real FFT of samples with the mean removed.
func spectrum(samples []float64) []complex128 {
	n := len(samples)
	if n < 2 {
		return nil
	}

	mean := simdops.Mean(samples)
	centered := make([]float64, n)
	for i, v := range samples {
		centered[i] = v - mean
	}

	fft := fourier.NewFFT(n)
	return fft.Coefficients(nil, centered)
}

// dominantBin returns the index of the largest non-DC coefficient.
func dominantBin(coeffs []complex128) int {
	mags := make([]float64, len(coeffs)-1)
	for k := 1; k < len(coeffs); k++ {
		mags[k-1] = cmplx.Abs(coeffs[k])
	}
	return floats.MaxIdx(mags) + 1
}
