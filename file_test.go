package wavepcm

import (
	"bytes"
	"path/filepath"
	"testing"
)

func TestFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.wav")

	enc, err := Encode([]byte{1, 2, 3, 4, 5, 6, 7, 8}, 2, 44100, 16)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	if err := enc.WriteFile(path); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	dec, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}

	if err := dec.Check(); err != nil {
		t.Fatalf("Check failed: %v", err)
	}

	if !bytes.Equal(dec.Bytes(), enc.Bytes()) {
		t.Fatal("file contents do not round-trip")
	}
}

func TestReadFileMissing(t *testing.T) {
	if _, err := ReadFile(filepath.Join(t.TempDir(), "missing.wav")); err == nil {
		t.Fatal("ReadFile succeeded on a missing file")
	}
}
