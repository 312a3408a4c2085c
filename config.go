package sinegen

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the waveform and encoding parameters.
type Config struct {
	// MinVal is the lower bound of the rescaled amplitude range.
	MinVal int `yaml:"min_val"`

	// MaxVal is the upper bound of the rescaled amplitude range.
	MaxVal int `yaml:"max_val"`

	// Periods is the number of full sine cycles spanned by each channel.
	Periods float64 `yaml:"periods"`

	// SampleCount is the number of time-domain samples per channel.
	SampleCount int `yaml:"samples"`

	// ChannelCount is the number of phase-shifted channels.
	ChannelCount int `yaml:"channels"`

	// StorageBits is the width of each encoded sample.
	// Must be a multiple of 8 between 8 and 64.
	StorageBits int `yaml:"storage_bits"`

	// Parallel synthesizes channels concurrently.
	// Output is identical to sequential synthesis.
	Parallel bool `yaml:"parallel"`
}

// DefaultConfig returns the configuration of the IIO demo signal:
// two 16-bit channels of 500 samples spanning five periods in [65, 91].
func DefaultConfig() Config {
	return Config{
		MinVal:       defaultMinVal,
		MaxVal:       defaultMaxVal,
		Periods:      defaultPeriods,
		SampleCount:  defaultSampleCount,
		ChannelCount: defaultChannelCount,
		StorageBits:  defaultStorageBits,
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.SampleCount < minSampleCount {
		return fmt.Errorf("%w: sample count must be at least %d", ErrInvalidConfig, minSampleCount)
	}

	if c.ChannelCount < 1 {
		return fmt.Errorf("%w: channels must be at least 1", ErrInvalidConfig)
	}

	if c.ChannelCount > maxChannels {
		return fmt.Errorf("%w: too many channels (max %d)", ErrInvalidConfig, maxChannels)
	}

	if err := validateStorageBits(c.StorageBits); err != nil {
		return err
	}

	if math.IsNaN(c.Periods) || math.IsInf(c.Periods, 0) || c.Periods <= 0 {
		return fmt.Errorf("%w: periods must be positive and finite", ErrInvalidConfig)
	}

	if c.MinVal > c.MaxVal {
		return fmt.Errorf("%w: min value %d exceeds max value %d", ErrInvalidConfig, c.MinVal, c.MaxVal)
	}

	return nil
}

// SampleBytes returns the encoded size of one sample.
func (c *Config) SampleBytes() int {
	return c.StorageBits / bitsPerByte
}

// FileSize returns the exact size of the encoded output in bytes.
func (c *Config) FileSize() int64 {
	return int64(c.SampleCount) * int64(c.ChannelCount) * int64(c.SampleBytes())
}

// PhaseOffset returns the phase shift between adjacent channels.
// Offsets are spread over ChannelCount+1 slots so no two channels are in phase.
func (c *Config) PhaseOffset() float64 {
	return fullTurnRadians * math.Pi * c.Periods / float64(c.ChannelCount+1)
}

// LoadConfig reads a YAML configuration file on top of DefaultConfig.
// Keys missing from the file keep their default values; unknown keys are rejected.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("%w: failed to read config: %w", ErrIO, err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes YAML configuration data on top of DefaultConfig and validates it.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
