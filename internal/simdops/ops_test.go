package simdops

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpan_Endpoints(t *testing.T) {
	lo, hi := 1.0, 1.0+10*math.Pi
	got := Span(make([]float64, 500), lo, hi)

	require.Len(t, got, 500)
	assert.Equal(t, lo, got[0])
	assert.Equal(t, hi, got[len(got)-1], "last element must be exactly hi")
	for i := 1; i < len(got); i++ {
		assert.Greater(t, got[i], got[i-1], "grid not increasing at %d", i)
	}
}

func TestSpan_TwoPoints(t *testing.T) {
	got := Span(make([]float64, 2), -3, 7)
	assert.Equal(t, []float64{-3, 7}, got)
}

func TestSpan_Spacing(t *testing.T) {
	got := Span(make([]float64, 5), 0, 1)
	assert.Equal(t, []float64{0, 0.25, 0.5, 0.75, 1}, got)
}

func TestInterleave(t *testing.T) {
	tests := []struct {
		name     string
		channels [][]float64
		want     []float64
	}{
		{
			name:     "mono",
			channels: [][]float64{{1, 2, 3}},
			want:     []float64{1, 2, 3},
		},
		{
			name:     "stereo",
			channels: [][]float64{{1, 2, 3, 4}, {10, 20, 30, 40}},
			want:     []float64{1, 10, 2, 20, 3, 30, 4, 40},
		},
		{
			name:     "three channels",
			channels: [][]float64{{1, 2}, {10, 20}, {100, 200}},
			want:     []float64{1, 10, 100, 2, 20, 200},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := make([]float64, len(tt.want))
			n := Interleave(dst, tt.channels)
			assert.Equal(t, len(tt.want), n)
			assert.Equal(t, tt.want, dst)
		})
	}
}

func TestInterleave_ShortDestination(t *testing.T) {
	dst := make([]float64, 3)
	n := Interleave(dst, [][]float64{{1, 2}, {3, 4}})
	assert.Zero(t, n)
}

func TestInterleave_Empty(t *testing.T) {
	assert.Zero(t, Interleave(nil, nil))
	assert.Zero(t, Interleave(nil, [][]float64{{}}))
}

func TestMean(t *testing.T) {
	assert.Zero(t, Mean(nil))
	assert.InDelta(t, 2.5, Mean([]float64{1, 2, 3, 4}), 1e-12)
}

func BenchmarkInterleaveStereo(b *testing.B) {
	const n = 8192
	chans := [][]float64{make([]float64, n), make([]float64, n)}
	dst := make([]float64, 2*n)
	for b.Loop() {
		Interleave(dst, chans)
	}
}
