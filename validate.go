package wavepcm

import (
	"errors"
	"fmt"
)

var (
	// ErrInconsistentField is returned when a stored header field
	// disagrees with the value derived from the rest of the model. The
	// wrapped message names the offending field.
	ErrInconsistentField = errors.New("inconsistent field")
	// ErrUnsupportedBitDepth is returned for bit depths outside
	// 8, 16, 24, and 32.
	ErrUnsupportedBitDepth = errors.New("unsupported bit depth")
	// ErrZeroChannels is returned when the channel count field is zero.
	ErrZeroChannels = errors.New("zero channels")
)

// Check validates the Format against the WAV PCM invariants.
//
// Every dependent field is re-derived from the model's own channel count,
// sample rate, bit depth, and data length, and compared against the stored
// value. Checks run in a fixed order (tags, fmt chunk size, format code,
// channel count, bit depth, block align, byte rate, data size, RIFF size)
// and the first mismatch is reported. Check is read-only and returns nil iff
// every invariant holds.
func (f *Format) Check() error {
	if f.riffTag != tagRiff {
		return fmt.Errorf("%w: chunk_id %q, want %q", ErrMalformedHeader, f.riffTag[:], tagRiff[:])
	}

	if f.waveTag != tagWave {
		return fmt.Errorf("%w: format %q, want %q", ErrMalformedHeader, f.waveTag[:], tagWave[:])
	}

	if f.fmtTag != tagFmt {
		return fmt.Errorf("%w: subchunk1_id %q, want %q", ErrMalformedHeader, f.fmtTag[:], tagFmt[:])
	}

	if f.dataTag != tagData {
		return fmt.Errorf("%w: subchunk2_id %q, want %q", ErrMalformedHeader, f.dataTag[:], tagData[:])
	}

	if got := f.FmtSize(); got != FmtChunkSize {
		return fmt.Errorf("%w: subchunk1_size is %d, want %d", ErrInconsistentField, got, FmtChunkSize)
	}

	if got := f.FormatTag(); got != AudioFormatPCM {
		return fmt.Errorf("%w: audio_format is %d, want %d", ErrInconsistentField, got, AudioFormatPCM)
	}

	channels := f.NumChannels()
	if channels == 0 {
		return ErrZeroChannels
	}

	bits := f.BitsPerSample()
	switch bits {
	case 8, 16, 24, 32:
	default:
		return fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bits)
	}

	blockAlign := channels * bits / 8
	if got := f.BlockAlign(); got != blockAlign {
		return fmt.Errorf("%w: block_align is %d, want %d", ErrInconsistentField, got, blockAlign)
	}

	byteRate := f.SampleRate() * uint32(blockAlign)
	if got := f.ByteRate(); got != byteRate {
		return fmt.Errorf("%w: byte_rate is %d, want %d", ErrInconsistentField, got, byteRate)
	}

	dataSize := uint32(len(f.data))
	if got := f.DataSize(); got != dataSize {
		return fmt.Errorf("%w: subchunk2_size is %d, want %d", ErrInconsistentField, got, dataSize)
	}

	riffSize := dataSize + HeaderSize - riffHeaderSize
	if got := f.RiffSize(); got != riffSize {
		return fmt.Errorf("%w: chunk_size is %d, want %d", ErrInconsistentField, got, riffSize)
	}

	return nil
}
