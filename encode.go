package sinegen

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/tphakala/go-iio-sinegen/internal/simdops"
)

// Byte sizes with a dedicated encoding/binary fast path.
const (
	bytesPerSample16 = 2
	bytesPerSample32 = 4
	bytesPerSample64 = 8
)

// writerBufferSize is the bufio buffer placed in front of the output file.
const writerBufferSize = 64 * 1024

// TruncateSample converts v to an integer by truncating toward zero and
// reports whether the result fits in a bits-wide two's-complement integer.
// NaN and infinities never fit.
func TruncateSample(v float64, bits int) (int64, bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}

	t := math.Trunc(v)
	limit := math.Ldexp(1, bits-1) // 2^(bits-1), exact in float64
	if t < -limit || t >= limit {
		return 0, false
	}
	return int64(t), true
}

// Quantize truncates every sample of w to a bits-wide signed integer and
// returns them interleaved in time-major, channel-minor order.
// A sample outside the representable range yields an *OverflowError.
func Quantize(w *Waveform, bits int) ([]int64, error) {
	if err := validateStorageBits(bits); err != nil {
		return nil, err
	}

	numChannels := w.NumChannels()
	samples := w.Len()
	for ch, data := range w.Channels {
		if len(data) != samples {
			return nil, fmt.Errorf("%w: channel %d has %d samples, want %d",
				ErrInvalidData, ch, len(data), samples)
		}
	}

	interleaved := make([]float64, numChannels*samples)
	simdops.Interleave(interleaved, w.Channels)

	out := make([]int64, len(interleaved))
	for i, v := range interleaved {
		iv, ok := TruncateSample(v, bits)
		if !ok {
			return nil, &OverflowError{
				Channel: i % numChannels,
				Index:   i / numChannels,
				Value:   v,
				Bits:    bits,
			}
		}
		out[i] = iv
	}
	return out, nil
}

// PutSample writes v into dst as an n-byte little-endian two's-complement
// integer. dst must hold at least n bytes.
func PutSample(dst []byte, v int64, n int) {
	switch n {
	case bytesPerSample16:
		binary.LittleEndian.PutUint16(dst, uint16(v))
	case bytesPerSample32:
		binary.LittleEndian.PutUint32(dst, uint32(v))
	case bytesPerSample64:
		binary.LittleEndian.PutUint64(dst, uint64(v))
	default:
		u := uint64(v)
		for i := range n {
			dst[i] = byte(u >> (bitsPerByte * i))
		}
	}
}

// Encode writes w to dst as interleaved bits-wide little-endian signed
// integers and returns the number of bytes written. Nothing is written when
// quantization fails.
func Encode(dst io.Writer, w *Waveform, bits int) (int64, error) {
	values, err := Quantize(w, bits)
	if err != nil {
		return 0, err
	}
	return writeSamples(dst, values, bits)
}

// writeSamples streams already quantized values through a buffered writer.
func writeSamples(dst io.Writer, values []int64, bits int) (int64, error) {
	n := bits / bitsPerByte
	bw := bufio.NewWriterSize(dst, writerBufferSize)
	buf := make([]byte, n)
	var written int64
	for _, v := range values {
		PutSample(buf, v, n)
		m, err := bw.Write(buf)
		written += int64(m)
		if err != nil {
			return written, fmt.Errorf("%w: failed to write sample data: %w", ErrIO, err)
		}
	}

	if err := bw.Flush(); err != nil {
		return written, fmt.Errorf("%w: failed to flush sample data: %w", ErrIO, err)
	}
	return written, nil
}

// WriteFile encodes w into the file at path, creating or truncating it.
// The waveform is quantized before the file is touched, so an overflow
// leaves any existing file intact.
func WriteFile(path string, w *Waveform, bits int) (written int64, err error) {
	values, err := Quantize(w, bits)
	if err != nil {
		return 0, err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, outputFileMode)
	if err != nil {
		return 0, fmt.Errorf("%w: failed to create output file: %w", ErrIO, err)
	}
	// Capture close errors on the success path; the data is not durable until then.
	defer func() {
		if closeErr := f.Close(); err == nil && closeErr != nil {
			err = fmt.Errorf("%w: failed to close output file: %w", ErrIO, closeErr)
		}
	}()

	return writeSamples(f, values, bits)
}

func validateStorageBits(bits int) error {
	if bits%bitsPerByte != 0 || bits < minStorageBits || bits > maxStorageBits {
		return fmt.Errorf("%w: storage bits must be a multiple of %d in [%d, %d], got %d",
			ErrInvalidConfig, bitsPerByte, minStorageBits, maxStorageBits, bits)
	}
	return nil
}
