package main

import (
	"fmt"
	"math"

	sinegen "github.com/tphakala/go-iio-sinegen"
)

type inspectCmd struct {
	File     string `arg:"" help:"Sample file to decode." type:"existingfile"`
	Channels int    `help:"Number of interleaved channels." default:"${channels}"`
	Bits     int    `help:"Bits per sample." default:"${bits}"`
}

func (c *inspectCmd) Run(rc *runContext) error {
	decoded, err := sinegen.ReadFile(c.File, c.Channels, c.Bits)
	if err != nil {
		return err
	}

	channels := make([][]float64, len(decoded))
	for ch, samples := range decoded {
		channels[ch] = sinegen.ToFloat(samples)
	}
	rc.logger.Debug("decoded sample file", "path", c.File, "channels", c.Channels, "bits", c.Bits)

	samples := 0
	if len(decoded) > 0 {
		samples = len(decoded[0])
	}
	fmt.Fprintf(rc.out, "%s: %d channels x %d samples, %d-bit little-endian\n",
		c.File, c.Channels, samples, c.Bits)

	for _, r := range sinegen.Analyze(channels) {
		fmt.Fprintf(rc.out, "  ch%d: min=%g max=%g mean=%.3f cycles=%d phase=%.1f deg\n",
			r.Channel, r.Stats.Min, r.Stats.Max, r.Stats.Mean, r.Cycles,
			r.PhaseShift*radiansToDegrees/math.Pi)
	}
	return nil
}
