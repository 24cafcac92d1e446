package wavepcm

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
)

// ErrCapacityExceeded is returned when the audio data is too large for the
// 32-bit data chunk size field.
var ErrCapacityExceeded = errors.New("data exceeds 32-bit chunk size capacity")

// maxDataSize keeps the RIFF size field (dataSize + 36) representable.
const maxDataSize = math.MaxUint32 - 36

// Encode wraps raw interleaved PCM sample bytes into a Format, computing
// every derived header field from the three supplied parameters.
//
// The data is used as-is: no resampling, channel mixing, or bit depth
// conversion happens here. The parameters themselves are not validated; an
// unsupported combination yields a Format that fails Check. The input slice
// is not retained.
func Encode(data []byte, numChannels uint16, samplingRate uint32, bitsPerSample uint16) (*Format, error) {
	if uint64(len(data)) > maxDataSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrCapacityExceeded, len(data))
	}

	size := uint32(len(data))
	blockAlign := numChannels * bitsPerSample / 8
	byteRate := samplingRate * uint32(numChannels) * uint32(bitsPerSample) / 8

	return &Format{
		riffTag:       tagRiff,
		riffSize:      putUint32LE(size + HeaderSize - riffHeaderSize),
		waveTag:       tagWave,
		fmtTag:        tagFmt,
		fmtSize:       putUint32LE(FmtChunkSize),
		formatTag:     putUint16LE(AudioFormatPCM),
		numChannels:   putUint16LE(numChannels),
		sampleRate:    putUint32LE(samplingRate),
		byteRate:      putUint32LE(byteRate),
		blockAlign:    putUint16LE(blockAlign),
		bitsPerSample: putUint16LE(bitsPerSample),
		dataTag:       tagData,
		dataSize:      putUint32LE(size),
		data:          append([]byte(nil), data...),
	}, nil
}

// Bytes serializes the Format into a complete WAV byte stream, laying the
// header fields out in their on-disk order followed by the raw data bytes.
// No validation is performed; call Check first if correctness matters.
func (f *Format) Bytes() []byte {
	out := make([]byte, 0, HeaderSize+len(f.data))

	out = append(out, f.riffTag[:]...)
	out = append(out, f.riffSize[:]...)
	out = append(out, f.waveTag[:]...)
	out = append(out, f.fmtTag[:]...)
	out = append(out, f.fmtSize[:]...)
	out = append(out, f.formatTag[:]...)
	out = append(out, f.numChannels[:]...)
	out = append(out, f.sampleRate[:]...)
	out = append(out, f.byteRate[:]...)
	out = append(out, f.blockAlign[:]...)
	out = append(out, f.bitsPerSample[:]...)
	out = append(out, f.dataTag[:]...)
	out = append(out, f.dataSize[:]...)
	out = append(out, f.data...)

	return out
}

// WriteTo writes the serialized form to w, implementing io.WriterTo.
func (f *Format) WriteTo(w io.Writer) (int64, error) {
	n, err := io.Copy(w, bytes.NewReader(f.Bytes()))
	if err != nil {
		return n, fmt.Errorf("failed to write wav stream: %w", err)
	}

	return n, nil
}
