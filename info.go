package wavepcm

import (
	"fmt"
	"strings"
)

// Summary renders the header fields as a human-readable table. It is a pure
// formatting helper over the stored fields and performs no validation;
// callers that care should run Check first.
func (f *Format) Summary() string {
	var b strings.Builder

	fmt.Fprintf(&b, "RIFF TAG:           %q\n", f.riffTag[:])
	fmt.Fprintf(&b, "TOTAL SIZE:         %d\n", f.RiffSize())
	fmt.Fprintf(&b, "WAVE TAG:           %q\n", f.waveTag[:])
	fmt.Fprintf(&b, "FMT CHUNK TAG:      %q\n", f.fmtTag[:])
	fmt.Fprintf(&b, "FMT CHUNK SIZE:     %d\n", f.FmtSize())
	fmt.Fprintf(&b, "FMT CODE:           %d\n", f.FormatTag())
	fmt.Fprintf(&b, "CHANNELS:           %d\n", f.NumChannels())
	fmt.Fprintf(&b, "SAMPLING RATE:      %d\n", f.SampleRate())
	fmt.Fprintf(&b, "BYTERATE:           %d\n", f.ByteRate())
	fmt.Fprintf(&b, "BLOCK ALIGNMENT:    %d\n", f.BlockAlign())
	fmt.Fprintf(&b, "BITS PER SAMPLE:    %d\n", f.BitsPerSample())
	fmt.Fprintf(&b, "DATA TAG:           %q\n", f.dataTag[:])
	fmt.Fprintf(&b, "DATA SIZE:          %d\n", f.DataSize())
	fmt.Fprintf(&b, "DURATION:           %s\n", f.Duration())

	return b.String()
}
