package wavepcm

import "encoding/binary"

// testHeaderFields mirrors the on-disk header layout with native values so
// tests can assemble arbitrary (including invalid) files independently of
// the codec under test.
type testHeaderFields struct {
	riffTag       string
	riffSize      uint32
	waveTag       string
	fmtTag        string
	fmtSize       uint32
	formatTag     uint16
	numChannels   uint16
	sampleRate    uint32
	byteRate      uint32
	blockAlign    uint16
	bitsPerSample uint16
	dataTag       string
	dataSize      uint32
}

func canonicalTestFields(numChannels uint16, sampleRate uint32, bitsPerSample uint16, dataLen int) testHeaderFields {
	blockAlign := numChannels * bitsPerSample / 8

	return testHeaderFields{
		riffTag:       "RIFF",
		riffSize:      uint32(dataLen) + 36,
		waveTag:       "WAVE",
		fmtTag:        "fmt ",
		fmtSize:       16,
		formatTag:     1,
		numChannels:   numChannels,
		sampleRate:    sampleRate,
		byteRate:      sampleRate * uint32(blockAlign),
		blockAlign:    blockAlign,
		bitsPerSample: bitsPerSample,
		dataTag:       "data",
		dataSize:      uint32(dataLen),
	}
}

func buildTestWav(fields testHeaderFields, data []byte) []byte {
	out := make([]byte, 44, 44+len(data))

	copy(out[0:4], fields.riffTag)
	binary.LittleEndian.PutUint32(out[4:8], fields.riffSize)
	copy(out[8:12], fields.waveTag)
	copy(out[12:16], fields.fmtTag)
	binary.LittleEndian.PutUint32(out[16:20], fields.fmtSize)
	binary.LittleEndian.PutUint16(out[20:22], fields.formatTag)
	binary.LittleEndian.PutUint16(out[22:24], fields.numChannels)
	binary.LittleEndian.PutUint32(out[24:28], fields.sampleRate)
	binary.LittleEndian.PutUint32(out[28:32], fields.byteRate)
	binary.LittleEndian.PutUint16(out[32:34], fields.blockAlign)
	binary.LittleEndian.PutUint16(out[34:36], fields.bitsPerSample)
	copy(out[36:40], fields.dataTag)
	binary.LittleEndian.PutUint32(out[40:44], fields.dataSize)

	return append(out, data...)
}

func buildCanonicalTestWav(numChannels uint16, sampleRate uint32, bitsPerSample uint16, data []byte) []byte {
	return buildTestWav(canonicalTestFields(numChannels, sampleRate, bitsPerSample, len(data)), data)
}
