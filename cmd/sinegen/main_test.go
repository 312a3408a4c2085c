package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sinegen "github.com/tphakala/go-iio-sinegen"
)

// runCLI parses args and runs the selected command, returning stdout and log output.
func runCLI(t *testing.T, args ...string) (stdout, logs string, err error) {
	t.Helper()

	var c cli
	parser, err := newParser(&c)
	require.NoError(t, err)

	ctx, err := parser.Parse(args)
	if err != nil {
		return "", "", err
	}

	var out, logBuf bytes.Buffer
	err = ctx.Run(&runContext{logger: newLogger(&logBuf, c.Verbose), out: &out})
	return out.String(), logBuf.String(), err
}

func TestGenerate_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	_, logs, err := runCLI(t)
	require.NoError(t, err)
	assert.Contains(t, logs, "wrote sample file")

	info, err := os.Stat(sinegen.DefaultOutputPath)
	require.NoError(t, err)
	assert.Equal(t, int64(2000), info.Size())
}

func TestGenerate_OutAndPlot(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "sig.dat")
	plotPath := filepath.Join(dir, "sig.png")

	_, logs, err := runCLI(t, "generate", "--out", out, "--plot", plotPath, "-v")
	require.NoError(t, err)
	assert.Contains(t, logs, "wrote plot")
	assert.Contains(t, logs, "simd")

	assert.FileExists(t, out)
	assert.FileExists(t, plotPath)
}

func TestGenerate_PlotFailureIsWarning(t *testing.T) {
	out := filepath.Join(t.TempDir(), "sig.dat")

	_, logs, err := runCLI(t, "generate", "--out", out, "--plot", "/nonexistent/dir/sig.png")
	require.NoError(t, err)
	assert.Contains(t, logs, "plot skipped")
	assert.FileExists(t, out)
}

func TestGenerate_ConfigAndWAV(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "sig.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("channels: 3\nsamples: 128\n"), 0o644))
	out := filepath.Join(dir, "sig.dat")
	wavPath := filepath.Join(dir, "sig.wav")

	_, _, err := runCLI(t, "generate", "--config", cfgPath, "--out", out, "--wav", wavPath, "--sample-rate", "8000")
	require.NoError(t, err)

	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.Equal(t, int64(128*3*2), info.Size())

	f, err := os.Open(wavPath)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()
	dec := wav.NewDecoder(f)
	require.True(t, dec.IsValidFile())
	assert.Equal(t, uint16(3), dec.NumChans)
	assert.Equal(t, uint32(8000), dec.SampleRate)
}

func TestGenerate_InvalidConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("storage_bits: 12\n"), 0o644))

	_, _, err := runCLI(t, "generate", "--config", cfgPath, "--out", filepath.Join(dir, "x.dat"))
	require.ErrorIs(t, err, sinegen.ErrInvalidConfig)
}

func TestGenerate_UnwritableOutput(t *testing.T) {
	_, _, err := runCLI(t, "generate", "--out", "/nonexistent/dir/x.dat")
	require.ErrorIs(t, err, sinegen.ErrIO)
}

func TestInspect(t *testing.T) {
	out := filepath.Join(t.TempDir(), "sig.dat")
	_, err := sinegen.Generate(sinegen.DefaultConfig(), out)
	require.NoError(t, err)

	stdout, _, err := runCLI(t, "inspect", out)
	require.NoError(t, err)
	assert.Contains(t, stdout, "2 channels x 500 samples, 16-bit")
	assert.Contains(t, stdout, "ch0: min=65 max=90")
	assert.Contains(t, stdout, "cycles=5")
	assert.Contains(t, stdout, "phase=240")
}

func TestInspect_PartialFrame(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.dat")
	require.NoError(t, os.WriteFile(path, []byte{1, 2, 3}, 0o644))

	_, _, err := runCLI(t, "inspect", path)
	require.ErrorIs(t, err, sinegen.ErrInvalidData)
}

func TestInspect_MissingFile(t *testing.T) {
	_, _, err := runCLI(t, "inspect", "/nonexistent/sig.dat")
	require.Error(t, err)
}
