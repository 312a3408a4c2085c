package wavout

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterleave(t *testing.T) {
	got := Interleave([][]int64{{1, 2, 3}, {-1, -2, -3}})
	assert.Equal(t, []int{1, -1, 2, -2, 3, -3}, got)
	assert.Nil(t, Interleave(nil))
}

func TestWrite_RoundTrip(t *testing.T) {
	channels := [][]int64{
		{78, 78, 79, 80, 81},
		{66, 66, 66, 65, 65},
	}
	path := filepath.Join(t.TempDir(), "preview.wav")

	require.NoError(t, Write(path, channels, 16, DefaultSampleRate))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	dec := wav.NewDecoder(f)
	require.True(t, dec.IsValidFile())

	buf, err := dec.FullPCMBuffer()
	require.NoError(t, err)
	assert.Equal(t, 2, buf.Format.NumChannels)
	assert.Equal(t, DefaultSampleRate, buf.Format.SampleRate)
	assert.Equal(t, 16, int(dec.BitDepth))
	assert.Equal(t, []int{78, 66, 78, 66, 79, 66, 80, 65, 81, 65}, buf.Data)
}

func TestWrite_UnsupportedBitDepth(t *testing.T) {
	err := Write(filepath.Join(t.TempDir(), "x.wav"), [][]int64{{1}}, 64, DefaultSampleRate)
	require.ErrorIs(t, err, ErrUnsupportedBitDepth)
}

func TestWrite_RaggedChannels(t *testing.T) {
	err := Write(filepath.Join(t.TempDir(), "x.wav"), [][]int64{{1, 2}, {1}}, 16, DefaultSampleRate)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "channel 1")
}

func TestWrite_InvalidDirectory(t *testing.T) {
	err := Write("/nonexistent/dir/x.wav", [][]int64{{1}}, 16, DefaultSampleRate)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create WAV file")
}
