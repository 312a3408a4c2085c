// Package testutil provides reusable test helpers for signal generator tests.
package testutil

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Default tolerances for various test scenarios.
const (
	DefaultTolerance = 1e-12
	PhaseTolerance   = 0.05 // radians
)

// ReferenceChannel computes one channel of the reference signal independently
// of the package under test: scale(sin(start + i*step)) with the last phase
// pinned to start + 2π*periods.
func ReferenceChannel(ch, channels, samples int, periods float64, minVal, maxVal int) []float64 {
	offset := 2 * math.Pi * periods / float64(channels+1)
	start := offset * float64(ch)
	end := 2*math.Pi*periods + start
	step := (end - start) / float64(samples-1)

	out := make([]float64, samples)
	for i := range out {
		x := start + float64(step*float64(i))
		if i == samples-1 {
			x = end
		}
		unit := (math.Sin(x) + 1) / 2
		out[i] = float64(unit*float64(maxVal-minVal)) + float64(minVal)
	}
	return out
}

// DecodeInt16LE decodes little-endian int16 samples.
func DecodeInt16LE(data []byte) []int16 {
	out := make([]int16, len(data)/2)
	for i := range out {
		out[i] = int16(binary.LittleEndian.Uint16(data[2*i:]))
	}
	return out
}

// AssertAllInRange verifies that all elements are within [min, max].
func AssertAllInRange(t *testing.T, s []int64, minVal, maxVal int64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if v < minVal || v > maxVal {
			return assert.Fail(t, "value out of range",
				"s[%d]=%d is outside range [%d, %d]", i, v, minVal, maxVal)
		}
	}
	return true
}

// AssertNoNaNOrInf verifies that no elements in the slice are NaN or Inf.
func AssertNoNaNOrInf(t *testing.T, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if math.IsNaN(v) {
			return assert.Fail(t, "found NaN", "s[%d] is NaN", i)
		}
		if math.IsInf(v, 0) {
			return assert.Fail(t, "found Inf", "s[%d] is Inf", i)
		}
	}
	return true
}

// AssertTruncated verifies that every got[i] equals expected[i] truncated toward zero.
func AssertTruncated(t *testing.T, expected []float64, got []int64, msgAndArgs ...any) bool {
	t.Helper()
	if !assert.Len(t, got, len(expected), msgAndArgs...) {
		return false
	}
	for i := range expected {
		want := int64(math.Trunc(expected[i]))
		if got[i] != want {
			return assert.Fail(t, "truncation mismatch",
				"sample %d: got %d, want %d (from %.17g)", i, got[i], want, expected[i])
		}
	}
	return true
}

// AssertPhaseNear verifies two angles in radians are within tolerance modulo 2π.
func AssertPhaseNear(t *testing.T, expected, actual, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	d := math.Mod(actual-expected, 2*math.Pi)
	if d > math.Pi {
		d -= 2 * math.Pi
	} else if d < -math.Pi {
		d += 2 * math.Pi
	}
	return assert.LessOrEqual(t, math.Abs(d), tolerance,
		"phase %f differs from %f by %f rad", actual, expected, d)
}
