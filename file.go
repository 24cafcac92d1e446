package wavepcm

import (
	"fmt"
	"os"
)

// ReadFile reads and decodes the WAV file at path. I/O failures are returned
// wrapped and unchanged in kind; decoding failures come from Decode.
func ReadFile(path string) (*Format, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return Decode(b)
}

// WriteFile serializes the Format and writes it to path, creating or
// truncating the file. Like Bytes, it performs no validation.
func (f *Format) WriteFile(path string) error {
	err := os.WriteFile(path, f.Bytes(), 0o644)
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}
