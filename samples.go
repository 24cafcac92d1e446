package wavepcm

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/go-audio/audio"
)

var errNilBuffer = errors.New("can't encode a nil buffer")

// IntBuffer decodes the interleaved little-endian PCM bytes into an
// audio.IntBuffer. 8-bit samples are unsigned, all other depths are signed.
// A trailing partial frame, if any, is ignored.
func (f *Format) IntBuffer() (*audio.IntBuffer, error) {
	bits := int(f.BitsPerSample())

	bytesPerSample := bits / 8
	switch bits {
	case 8, 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bits)
	}

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: int(f.NumChannels()),
			SampleRate:  int(f.SampleRate()),
		},
		SourceBitDepth: bits,
		Data:           make([]int, len(f.data)/bytesPerSample),
	}

	for i := range buf.Data {
		sample := f.data[i*bytesPerSample:]

		switch bits {
		case 8:
			buf.Data[i] = int(sample[0])
		case 16:
			buf.Data[i] = int(int16(binary.LittleEndian.Uint16(sample[:2])))
		case 24:
			buf.Data[i] = int(audio.Int24LETo32(sample[:3]))
		case 32:
			buf.Data[i] = int(int32(binary.LittleEndian.Uint32(sample[:4])))
		}
	}

	return buf, nil
}

// FromIntBuffer serializes the buffer's samples to little-endian bytes at
// the given bit depth and wraps them via Encode. It is the inverse of
// IntBuffer for depths 8, 16, 24, and 32.
func FromIntBuffer(buf *audio.IntBuffer, bitsPerSample uint16) (*Format, error) {
	if buf == nil || buf.Format == nil {
		return nil, errNilBuffer
	}

	bytesPerSample := int(bitsPerSample) / 8
	data := make([]byte, 0, len(buf.Data)*bytesPerSample)

	for _, sample := range buf.Data {
		switch bitsPerSample {
		case 8:
			data = append(data, uint8(sample))
		case 16:
			var b [2]byte
			binary.LittleEndian.PutUint16(b[:], uint16(int16(sample)))
			data = append(data, b[:]...)
		case 24:
			data = append(data, audio.Int32toInt24LEBytes(int32(sample))...)
		case 32:
			var b [4]byte
			binary.LittleEndian.PutUint32(b[:], uint32(int32(sample)))
			data = append(data, b[:]...)
		default:
			return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitsPerSample)
		}
	}

	return Encode(data, uint16(buf.Format.NumChannels), uint32(buf.Format.SampleRate), bitsPerSample)
}
