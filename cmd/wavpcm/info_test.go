package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/oniani/wavepcm"
)

func writeTestWav(t *testing.T) string {
	t.Helper()

	format, err := wavepcm.Encode(make([]byte, 8), 2, 44100, 16)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "test.wav")
	if err := format.WriteFile(path); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	return path
}

func write8BitTestWav(t *testing.T) string {
	t.Helper()

	format, err := wavepcm.Encode(make([]byte, 8), 1, 8000, 8)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "test8.wav")
	if err := format.WriteFile(path); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	return path
}

func TestRunInfo(t *testing.T) {
	var out bytes.Buffer

	err := runInfo(writeTestWav(t), &out)
	if err != nil {
		t.Fatalf("runInfo failed: %v", err)
	}

	checks := []string{
		"THE WAVE PCM FORMAT HAS BEEN VALIDATED!",
		"CHANNELS:           2",
		"SAMPLING RATE:      44100",
		"BITS PER SAMPLE:    16",
	}

	for _, c := range checks {
		if !strings.Contains(out.String(), c) {
			t.Fatalf("expected output to contain %q\nfull output:\n%s", c, out.String())
		}
	}
}

func TestRunInfoInvalidPath(t *testing.T) {
	var out bytes.Buffer

	err := runInfo(filepath.Join(t.TempDir(), "missing.wav"), &out)
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestRunInfoInvalidFile(t *testing.T) {
	format, err := wavepcm.Encode([]byte{1, 2}, 1, 8000, 12)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "bad.wav")
	if err := format.WriteFile(path); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	var out bytes.Buffer
	if err := runInfo(path, &out); err == nil {
		t.Fatal("expected validation error for a 12-bit file")
	}
}
