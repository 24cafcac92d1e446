// Package wavepcm encodes and decodes WAVE PCM format files.
//
// The package only supports the PCM flavor of the WAVE specification, in its
// canonical minimal layout: a 44-byte header holding the RIFF descriptor,
// the fmt chunk, and the data chunk header, followed by raw interleaved
// sample bytes. Header fields are kept as raw little-endian bytes so that
// Decode followed by Bytes reproduces the input exactly.
//
// The usual flow is:
//
//   - Decode / ReadFile to parse a byte stream into a Format
//   - Check to validate the header fields against each other
//   - Encode / FromIntBuffer to wrap raw samples into a new Format
//   - Bytes / WriteFile to serialize a Format back out
//
// Construction and validation are deliberately separate steps: Decode and
// Encode never reject inconsistent field values, they only fail on
// truncated or oversized input. Run Check whenever correctness matters.
package wavepcm
