package main

import (
	"fmt"

	"github.com/tphakala/simd/cpu"

	sinegen "github.com/tphakala/go-iio-sinegen"
	"github.com/tphakala/go-iio-sinegen/internal/chart"
	"github.com/tphakala/go-iio-sinegen/internal/wavout"
)

type generateCmd struct {
	Config     string `help:"YAML configuration file overriding the default signal." type:"path"`
	Out        string `help:"Output sample file." short:"o" default:"${out}" type:"path"`
	Plot       string `help:"Render the channels to this image (png, svg or pdf)." type:"path"`
	WAV        string `name:"wav" help:"Also write a PCM WAV preview of the samples." type:"path"`
	SampleRate int    `help:"Sample rate of the WAV preview in Hz." default:"${sample_rate}"`
	Parallel   bool   `help:"Synthesize channels concurrently."`
}

func (c *generateCmd) Run(rc *runContext) error {
	cfg := sinegen.DefaultConfig()
	if c.Config != "" {
		loaded, err := sinegen.LoadConfig(c.Config)
		if err != nil {
			return err
		}
		cfg = loaded
		rc.logger.Debug("loaded configuration", "path", c.Config)
	}
	if c.Parallel {
		cfg.Parallel = true
	}

	rc.logger.Debug("signal",
		"min", cfg.MinVal, "max", cfg.MaxVal, "periods", cfg.Periods,
		"samples", cfg.SampleCount, "channels", cfg.ChannelCount,
		"bits", cfg.StorageBits, "parallel", cfg.Parallel)
	rc.logger.Debug("cpu", "simd", cpu.Info())

	var opts []sinegen.Option
	if c.Plot != "" {
		opts = append(opts, sinegen.WithVisualizer(chart.NewVisualizer(c.Plot, chart.DefaultOptions())))
	}

	g, err := sinegen.NewGenerator(cfg, opts...)
	if err != nil {
		return err
	}

	res, err := g.Generate(c.Out)
	if err != nil {
		return err
	}

	switch {
	case res.VisualizeErr != nil:
		rc.logger.Warn("plot skipped", "err", res.VisualizeErr)
	case c.Plot != "":
		rc.logger.Info("wrote plot", "path", c.Plot)
	}

	rc.logger.Info("wrote sample file",
		"path", c.Out, "bytes", res.BytesWritten,
		"channels", res.Waveform.NumChannels(), "samples", res.Waveform.Len())

	if c.WAV != "" {
		if err := c.writePreview(rc, cfg); err != nil {
			return err
		}
	}
	return nil
}

// writePreview re-reads the sample file so the preview carries exactly the
// bytes that were written.
func (c *generateCmd) writePreview(rc *runContext, cfg sinegen.Config) error {
	channels, err := sinegen.ReadFile(c.Out, cfg.ChannelCount, cfg.StorageBits)
	if err != nil {
		return err
	}
	if err := wavout.Write(c.WAV, channels, cfg.StorageBits, c.SampleRate); err != nil {
		return fmt.Errorf("failed to write WAV preview: %w", err)
	}
	rc.logger.Info("wrote WAV preview", "path", c.WAV, "rate", c.SampleRate)
	return nil
}
