package wavepcm

import (
	"encoding/binary"
	"time"

	"github.com/go-audio/riff"
)

const (
	// HeaderSize is the byte length of the canonical minimal WAV header:
	// the RIFF descriptor, the fmt chunk, and the data chunk ID and size
	// fields.
	HeaderSize = 44

	// AudioFormatPCM is the fmt chunk format code for linear PCM.
	AudioFormatPCM = 1

	// FmtChunkSize is the fmt chunk payload size for plain PCM, with no
	// extension bytes.
	FmtChunkSize = 16

	// riffHeaderSize is the part of the file not counted by the RIFF size
	// field (the "RIFF" tag and the size field itself).
	riffHeaderSize = 8
)

// Canonical chunk tags, shared with the riff package.
var (
	tagRiff = riff.RiffID
	tagWave = riff.WavFormatID
	tagFmt  = riff.FmtID
	tagData = riff.DataFormatID
)

// Format is the structured representation of a WAV PCM file. Header fields
// are stored as raw little-endian byte sequences exactly as they appear on
// disk, so serializing a decoded Format reproduces the input byte for byte.
// Typed access goes through the accessor methods.
//
// A Format is never mutated after construction and is safe to share
// read-only across goroutines.
type Format struct {
	riffTag       [4]byte // "RIFF"
	riffSize      [4]byte // total file size - 8
	waveTag       [4]byte // "WAVE"
	fmtTag        [4]byte // "fmt "
	fmtSize       [4]byte // 16 for PCM
	formatTag     [2]byte // 1 for PCM
	numChannels   [2]byte
	sampleRate    [4]byte
	byteRate      [4]byte // sampleRate * numChannels * bitsPerSample/8
	blockAlign    [2]byte // numChannels * bitsPerSample/8
	bitsPerSample [2]byte
	dataTag       [4]byte // "data"
	dataSize      [4]byte // len(data)
	data          []byte
}

// NumChannels returns the channel count.
func (f *Format) NumChannels() uint16 {
	return binary.LittleEndian.Uint16(f.numChannels[:])
}

// SampleRate returns the sample rate in frames per second.
func (f *Format) SampleRate() uint32 {
	return binary.LittleEndian.Uint32(f.sampleRate[:])
}

// BitsPerSample returns the sample bit depth.
func (f *Format) BitsPerSample() uint16 {
	return binary.LittleEndian.Uint16(f.bitsPerSample[:])
}

// ByteRate returns the number of audio data bytes per second of playback.
func (f *Format) ByteRate() uint32 {
	return binary.LittleEndian.Uint32(f.byteRate[:])
}

// BlockAlign returns the byte size of one multi-channel sample frame.
func (f *Format) BlockAlign() uint16 {
	return binary.LittleEndian.Uint16(f.blockAlign[:])
}

// FormatTag returns the fmt chunk format code (1 for PCM).
func (f *Format) FormatTag() uint16 {
	return binary.LittleEndian.Uint16(f.formatTag[:])
}

// FmtSize returns the fmt chunk payload size field.
func (f *Format) FmtSize() uint32 {
	return binary.LittleEndian.Uint32(f.fmtSize[:])
}

// DataSize returns the data chunk payload size field.
func (f *Format) DataSize() uint32 {
	return binary.LittleEndian.Uint32(f.dataSize[:])
}

// RiffSize returns the RIFF chunk size field (total file size - 8).
func (f *Format) RiffSize() uint32 {
	return binary.LittleEndian.Uint32(f.riffSize[:])
}

// Data returns a copy of the raw interleaved PCM sample bytes.
func (f *Format) Data() []byte {
	return append([]byte(nil), f.data...)
}

// NumFrames returns the number of sample frames held in the data chunk, or
// 0 when the block alignment field is zero.
func (f *Format) NumFrames() uint32 {
	align := uint32(f.BlockAlign())
	if align == 0 {
		return 0
	}

	return uint32(len(f.data)) / align
}

// Duration returns the playback length of the audio data, or 0 when the
// byte rate field is zero.
func (f *Format) Duration() time.Duration {
	rate := f.ByteRate()
	if rate == 0 {
		return 0
	}

	return time.Duration(len(f.data)) * time.Second / time.Duration(rate)
}

func putUint16LE(v uint16) [2]byte {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)

	return b
}

func putUint32LE(v uint32) [4]byte {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)

	return b
}
