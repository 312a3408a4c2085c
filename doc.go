// Package sinegen generates phase-shifted multi-channel sine test signals for
// the IIO demo and encodes them as a raw stream of fixed-width little-endian
// signed integers.
//
// # Features
//
//   - Byte-exact reproduction of the IIO demo test signal with [DefaultConfig]
//   - Any channel count up to 256 and any storage width that is a multiple of 8 (8-64 bits)
//   - Range-checked float to integer conversion with [ErrEncodingOverflow]
//   - Optional concurrent per-channel synthesis
//   - Pluggable [Visualizer] collaborator for plotting
//   - [Decode] and [Analyze] for verifying generated files
//   - YAML configuration files via [LoadConfig]
//
// # Quick Start
//
// Write the default signal to generated_sin.dat:
//
//	res, err := sinegen.Generate(sinegen.DefaultConfig(), sinegen.DefaultOutputPath)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.BytesWritten) // 2000
//
// With a visualizer:
//
//	g, err := sinegen.NewGenerator(cfg, sinegen.WithVisualizer(
//	    sinegen.VisualizerFunc(func(w *sinegen.Waveform) error {
//	        return plotChannels(w.Phase, w.Channels)
//	    }),
//	))
//
// # Signal
//
// Channel i samples sin at SampleCount evenly spaced phases from i*offset to
// 2π*Periods + i*offset, both inclusive, with offset = 2π*Periods/(ChannelCount+1).
// Each value x is mapped to (x+1)/2*(MaxVal-MinVal) + MinVal.
//
// # Output Format
//
// The file is a flat array with no header: for each time step, one sample per
// channel in channel order. Each sample is the rescaled value truncated toward
// zero, stored as a StorageBits-wide two's-complement little-endian integer.
// The file is exactly SampleCount * ChannelCount * StorageBits/8 bytes.
//
// Truncation, not rounding, is intentional: the IIO demo expects the exact
// bytes of the reference generator.
package sinegen
