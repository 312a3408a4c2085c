package sinegen

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
)

// SampleValue reads an n-byte little-endian two's-complement integer from src
// and sign-extends it to int64.
func SampleValue(src []byte, n int) int64 {
	switch n {
	case bytesPerSample16:
		return int64(int16(binary.LittleEndian.Uint16(src)))
	case bytesPerSample32:
		return int64(int32(binary.LittleEndian.Uint32(src)))
	case bytesPerSample64:
		return int64(binary.LittleEndian.Uint64(src))
	}

	var u uint64
	for i := range n {
		u |= uint64(src[i]) << (bitsPerByte * i)
	}
	// Sign-extend from the top bit of the n-byte value.
	shift := uint(64 - bitsPerByte*n)
	return int64(u<<shift) >> shift
}

// Decode reads an interleaved stream of bits-wide little-endian signed
// integers and returns it as per-channel sample slices, [channel][time].
// The stream must contain a whole number of frames.
func Decode(r io.Reader, channels, bits int) ([][]int64, error) {
	if err := validateStorageBits(bits); err != nil {
		return nil, err
	}
	if channels < 1 || channels > maxChannels {
		return nil, fmt.Errorf("%w: channels must be in [1, %d], got %d", ErrInvalidConfig, maxChannels, channels)
	}

	n := bits / bitsPerByte
	frame := make([]byte, n*channels)
	out := make([][]int64, channels)
	br := bufio.NewReaderSize(r, writerBufferSize)

	for t := 0; ; t++ {
		read, err := io.ReadFull(br, frame)
		if errors.Is(err, io.EOF) {
			break
		}
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, fmt.Errorf("%w: trailing %d bytes do not form a complete frame at sample %d",
				ErrInvalidData, read, t)
		}
		if err != nil {
			return nil, fmt.Errorf("%w: failed to read sample data: %w", ErrIO, err)
		}

		for ch := range channels {
			out[ch] = append(out[ch], SampleValue(frame[ch*n:], n))
		}
	}
	return out, nil
}

// ReadFile decodes the sample file at path. See Decode.
func ReadFile(path string, channels, bits int) ([][]int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open input file: %w", ErrIO, err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f, channels, bits)
}
