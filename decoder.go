package wavepcm

import (
	"errors"
	"fmt"
	"io"
)

var (
	// ErrTruncatedInput is returned when the input is shorter than the
	// canonical header or than the declared data chunk size.
	ErrTruncatedInput = errors.New("truncated input")
	// ErrMalformedHeader is returned when a fixed 4-byte tag field does
	// not hold its expected constant value.
	ErrMalformedHeader = errors.New("malformed header")
)

// Decode parses a complete WAV PCM byte stream into a Format.
//
// Only the canonical minimal layout is supported: the 44-byte header is read
// positionally and everything after it is the data chunk payload. Header
// fields are copied verbatim; tag and field consistency checks are deferred
// to Check, so Decode fails only when the input is too short. The input
// slice is not retained.
func Decode(b []byte) (*Format, error) {
	if len(b) < HeaderSize {
		return nil, fmt.Errorf("%w: %d bytes, need at least %d", ErrTruncatedInput, len(b), HeaderSize)
	}

	f := &Format{}
	copy(f.riffTag[:], b[0:4])
	copy(f.riffSize[:], b[4:8])
	copy(f.waveTag[:], b[8:12])
	copy(f.fmtTag[:], b[12:16])
	copy(f.fmtSize[:], b[16:20])
	copy(f.formatTag[:], b[20:22])
	copy(f.numChannels[:], b[22:24])
	copy(f.sampleRate[:], b[24:28])
	copy(f.byteRate[:], b[28:32])
	copy(f.blockAlign[:], b[32:34])
	copy(f.bitsPerSample[:], b[34:36])
	copy(f.dataTag[:], b[36:40])
	copy(f.dataSize[:], b[40:44])

	declared := int64(f.DataSize())
	if int64(len(b)-HeaderSize) < declared {
		return nil, fmt.Errorf("%w: data chunk declares %d bytes, %d available",
			ErrTruncatedInput, declared, len(b)-HeaderSize)
	}

	f.data = append([]byte(nil), b[HeaderSize:HeaderSize+int(declared)]...)

	return f, nil
}

// DecodeFrom reads r to EOF and decodes the result. It is a convenience for
// callers holding a reader rather than a byte slice.
func DecodeFrom(r io.Reader) (*Format, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	return Decode(b)
}
