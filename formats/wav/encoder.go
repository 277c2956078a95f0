// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/go-audio/riff"
	"github.com/ik5/audcut/audio"
	"github.com/ik5/audcut/utils"
)

const (
	// HeaderSize is the size of the canonical RIFF/WAVE PCM header.
	HeaderSize = 44

	bitsPerSample  = 16
	bytesPerSample = bitsPerSample / 8

	// samples per Write call when streaming
	chunkSize = 8192
)

// Encode serializes b as a 16-bit PCM WAV file.
//
// Samples are interleaved frame by frame in channel order and quantized with
// utils.Float32ToInt16. The result is exactly
// HeaderSize + frames*channels*2 bytes long; a zero-frame buffer encodes to a
// header with an empty data chunk.
func Encode(b *audio.Buffer) ([]byte, error) {
	dataSize, err := payloadSize(b)
	if err != nil {
		return nil, err
	}

	out := make([]byte, HeaderSize+dataSize)
	putHeader(out[:HeaderSize], b.SampleRate, b.NumChannels(), dataSize)
	putSamples(out[HeaderSize:], b, 0, b.NumFrames())

	return out, nil
}

// Write streams b to w in the same layout as Encode, without holding the
// whole payload in memory.
func Write(w io.Writer, b *audio.Buffer) error {
	dataSize, err := payloadSize(b)
	if err != nil {
		return err
	}

	header := make([]byte, HeaderSize)
	putHeader(header, b.SampleRate, b.NumChannels(), dataSize)

	// Write header in one operation
	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("%w", err)
	}

	frames := b.NumFrames()
	if frames == 0 {
		return nil
	}

	framesPerChunk := max(chunkSize/b.NumChannels(), 1)
	buf := make([]byte, min(frames, framesPerChunk)*b.NumChannels()*bytesPerSample)

	for i := 0; i < frames; i += framesPerChunk {
		end := min(i+framesPerChunk, frames)
		n := putSamples(buf, b, i, end)

		if _, err := w.Write(buf[:n]); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	return nil
}

// maxDataSize keeps the RIFF size field (36 + dataSize) inside 32 bits.
const maxDataSize int64 = math.MaxUint32 - 36

func payloadSize(b *audio.Buffer) (int, error) {
	if err := b.Validate(); err != nil {
		return 0, fmt.Errorf("encode: %w", err)
	}

	dataSize := int64(b.NumFrames()) * int64(b.NumChannels()) * bytesPerSample
	if dataSize > maxDataSize || b.NumChannels() > math.MaxUint16 || int64(b.SampleRate) > math.MaxUint32 {
		return 0, ErrDataTooLarge
	}

	return int(dataSize), nil
}

// putHeader fills the 44-byte canonical PCM header.
func putHeader(header []byte, sampleRate, channels, dataSize int) {
	byteRate := uint32(sampleRate) * uint32(channels) * bytesPerSample
	blockAlign := uint16(channels) * bytesPerSample

	// RIFF header (12 bytes)
	copy(header[0:4], riff.RiffID[:])
	binary.LittleEndian.PutUint32(header[4:8], uint32(36+dataSize))
	copy(header[8:12], riff.WavFormatID[:])

	// fmt chunk (24 bytes)
	copy(header[12:16], riff.FmtID[:])
	binary.LittleEndian.PutUint32(header[16:20], 16)        // PCM fmt chunk size
	binary.LittleEndian.PutUint16(header[20:22], formatPCM) // linear PCM
	binary.LittleEndian.PutUint16(header[22:24], uint16(channels))
	binary.LittleEndian.PutUint32(header[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(header[28:32], byteRate)
	binary.LittleEndian.PutUint16(header[32:34], blockAlign)
	binary.LittleEndian.PutUint16(header[34:36], bitsPerSample)

	// data chunk header (8 bytes)
	copy(header[36:40], riff.DataFormatID[:])
	binary.LittleEndian.PutUint32(header[40:44], uint32(dataSize))
}

// putSamples interleaves frames [from, to) of b into dst and returns the
// number of bytes written. Frame is the outer loop, channel the inner one.
func putSamples(dst []byte, b *audio.Buffer, from, to int) int {
	off := 0
	for i := from; i < to; i++ {
		for _, ch := range b.Data {
			binary.LittleEndian.PutUint16(dst[off:off+2], uint16(utils.Float32ToInt16(ch[i])))
			off += bytesPerSample
		}
	}
	return off
}
