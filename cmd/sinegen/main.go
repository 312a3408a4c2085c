// Command sinegen writes the multi-channel sine test signal consumed by the
// IIO demo and inspects existing sample files.
//
// Usage:
//
//	sinegen                                       # write generated_sin.dat with the default signal
//	sinegen generate --plot sin.png               # also render the channels
//	sinegen generate --config sig.yaml --out x.dat --wav x.wav
//	sinegen inspect generated_sin.dat --channels 2 --bits 16
package main

import (
	"io"
	"os"
	"strconv"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	sinegen "github.com/tphakala/go-iio-sinegen"
	"github.com/tphakala/go-iio-sinegen/internal/wavout"
)

type cli struct {
	Verbose bool `help:"Enable debug logging." short:"v"`

	Generate generateCmd `cmd:"" default:"withargs" help:"Synthesize the sine channels and write the sample file."`
	Inspect  inspectCmd  `cmd:"" help:"Decode a sample file and report per-channel statistics."`
}

// runContext carries shared dependencies into subcommands.
type runContext struct {
	logger *log.Logger
	out    io.Writer
}

func main() {
	var c cli
	parser, err := newParser(&c)
	if err != nil {
		log.Fatal("invalid command-line definition", "err", err)
	}
	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	logger := newLogger(os.Stderr, c.Verbose)
	if err := ctx.Run(&runContext{logger: logger, out: os.Stdout}); err != nil {
		logger.Fatal("sinegen failed", "err", err)
	}
}

func newParser(c *cli, options ...kong.Option) (*kong.Kong, error) {
	base := []kong.Option{
		kong.Name(appName),
		kong.Description("Multi-channel sine test signal generator for the IIO demo."),
		kong.UsageOnError(),
		kong.Vars{
			"out":         sinegen.DefaultOutputPath,
			"sample_rate": strconv.Itoa(wavout.DefaultSampleRate),
			"channels":    strconv.Itoa(defaultChannels),
			"bits":        strconv.Itoa(defaultBits),
		},
	}
	return kong.New(c, append(base, options...)...)
}

func newLogger(w io.Writer, verbose bool) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		Prefix:          appName,
		ReportTimestamp: true,
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}
