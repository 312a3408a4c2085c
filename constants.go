package sinegen

// Reference configuration for the IIO demo test signal.
const (
	defaultMinVal       = 65  // Lower bound of the rescaled amplitude range
	defaultMaxVal       = 91  // Upper bound of the rescaled amplitude range
	defaultPeriods      = 5.0 // Full sine cycles per channel
	defaultSampleCount  = 500 // Samples per channel
	defaultChannelCount = 2   // Number of channels
	defaultStorageBits  = 16  // Bits per encoded sample
)

// DefaultOutputPath is the file name the IIO demo expects.
const DefaultOutputPath = "generated_sin.dat"

// Configuration limits
const (
	minSampleCount  = 2   // linspace needs both endpoints
	maxChannels     = 256 // Maximum supported channel count
	minStorageBits  = 8
	maxStorageBits  = 64
	bitsPerByte     = 8
	fullTurnRadians = 2.0 // One sine cycle is fullTurnRadians*π
)

// Rescale constants: x in [-1, 1] maps to (x + rescaleShift) / rescaleDivisor.
const (
	rescaleShift   = 1.0
	rescaleDivisor = 2.0
)

// File permissions
const (
	outputFileMode = 0o644
)
