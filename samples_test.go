package wavepcm

import (
	"reflect"
	"testing"

	"github.com/go-audio/audio"
)

func TestIntBufferDecodesSamples(t *testing.T) {
	tests := []struct {
		name string
		bits uint16
		data []byte
		want []int
	}{
		{"8-bit unsigned", 8, []byte{0, 128, 255}, []int{0, 128, 255}},
		{"16-bit signed", 16, []byte{0x00, 0x00, 0xFF, 0x7F, 0x00, 0x80}, []int{0, 32767, -32768}},
		{"24-bit signed", 24, []byte{0xFF, 0xFF, 0x7F, 0x00, 0x00, 0x80}, []int{8388607, -8388608}},
		{"32-bit signed", 32, []byte{0x01, 0x00, 0x00, 0x00, 0xFF, 0xFF, 0xFF, 0xFF}, []int{1, -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Encode(tt.data, 1, 44100, tt.bits)
			if err != nil {
				t.Fatalf("Encode failed: %v", err)
			}

			buf, err := f.IntBuffer()
			if err != nil {
				t.Fatalf("IntBuffer failed: %v", err)
			}

			if !reflect.DeepEqual(buf.Data, tt.want) {
				t.Errorf("IntBuffer().Data=%v, want %v", buf.Data, tt.want)
			}

			if got := buf.SourceBitDepth; got != int(tt.bits) {
				t.Errorf("SourceBitDepth=%d, want %d", got, tt.bits)
			}

			if got := buf.Format.SampleRate; got != 44100 {
				t.Errorf("Format.SampleRate=%d, want 44100", got)
			}
		})
	}
}

func TestIntBufferUnsupportedDepth(t *testing.T) {
	f, err := Encode([]byte{1, 2}, 1, 8000, 12)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	if _, err := f.IntBuffer(); err == nil {
		t.Fatal("IntBuffer succeeded on a 12-bit model")
	}
}

func TestFromIntBufferRoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		bits    uint16
		samples []int
	}{
		{"8-bit", 8, []int{0, 1, 128, 255}},
		{"16-bit", 16, []int{0, -1, 32767, -32768}},
		{"24-bit", 24, []int{0, -1, 8388607, -8388608}},
		{"32-bit", 32, []int{0, -1, 2147483647, -2147483648}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := &audio.IntBuffer{
				Format:         &audio.Format{NumChannels: 1, SampleRate: 48000},
				SourceBitDepth: int(tt.bits),
				Data:           append([]int(nil), tt.samples...),
			}

			f, err := FromIntBuffer(in, tt.bits)
			if err != nil {
				t.Fatalf("FromIntBuffer failed: %v", err)
			}

			if err := f.Check(); err != nil {
				t.Fatalf("Check failed: %v", err)
			}

			out, err := f.IntBuffer()
			if err != nil {
				t.Fatalf("IntBuffer failed: %v", err)
			}

			if !reflect.DeepEqual(out.Data, tt.samples) {
				t.Fatalf("samples do not round-trip: got %v, want %v", out.Data, tt.samples)
			}
		})
	}
}

func TestFromIntBufferNil(t *testing.T) {
	if _, err := FromIntBuffer(nil, 16); err == nil {
		t.Fatal("FromIntBuffer(nil) succeeded")
	}
}
