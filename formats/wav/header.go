// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-audio/riff"
)

const (
	formatPCM        = 1
	formatExtensible = 0xFFFE
)

// Header describes the fmt and data chunks of a RIFF/WAVE stream.
type Header struct {
	RIFFSize      int
	AudioFormat   int
	Channels      int
	SampleRate    int
	ByteRate      int
	BlockAlign    int
	BitsPerSample int
	DataSize      int

	// SubFormat is the format code carried by a WAVE_FORMAT_EXTENSIBLE
	// fmt chunk, zero otherwise.
	SubFormat int
}

// Format returns the effective format code: the sub-format for extensible
// files, AudioFormat otherwise.
func (h Header) Format() int {
	if h.AudioFormat == formatExtensible {
		return h.SubFormat
	}
	return h.AudioFormat
}

// Frames returns the number of frames in the data chunk.
func (h Header) Frames() int {
	if h.BlockAlign <= 0 {
		return 0
	}
	return h.DataSize / h.BlockAlign
}

// fmtChunk mirrors the 16 byte PCM fmt chunk body.
type fmtChunk struct {
	AudioFormat   uint16
	NumChannels   uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16
}

// fmtExtension follows fmtChunk when the format tag is WAVE_FORMAT_EXTENSIBLE.
type fmtExtension struct {
	Size        uint16
	ValidBits   uint16
	ChannelMask uint32
	SubFormat   [16]byte
}

// ReadHeader walks the RIFF chunks of r up to the data chunk and reports the
// format fields. Chunks other than fmt and data are skipped. The sample data
// itself is not read.
func ReadHeader(r io.Reader) (Header, error) {
	var h Header

	parser := riff.New(r)
	if err := parser.ParseHeaders(); err != nil {
		return h, fmt.Errorf("%w: %w", ErrNotWavFile, err)
	}
	if parser.ID != riff.RiffID || parser.Format != riff.WavFormatID {
		return h, ErrNotWavFile
	}
	h.RIFFSize = int(parser.Size)

	var haveFmt bool
	for {
		chunk, err := parser.NextChunk()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return h, ErrUnsupportedWavLayout
			}
			return h, fmt.Errorf("%w: %w", ErrUnsupportedWavLayout, err)
		}

		switch chunk.ID {
		case riff.FmtID:
			var f fmtChunk
			if err := chunk.ReadLE(&f); err != nil {
				return h, fmt.Errorf("%w: %w", ErrUnsupportedWavLayout, err)
			}
			if f.AudioFormat == formatExtensible && chunk.Size >= 40 {
				var ext fmtExtension
				if err := chunk.ReadLE(&ext); err != nil {
					return h, fmt.Errorf("%w: %w", ErrUnsupportedWavLayout, err)
				}
				// the GUID starts with the little-endian format code
				h.SubFormat = int(ext.SubFormat[0]) | int(ext.SubFormat[1])<<8
			}
			chunk.Drain()

			h.AudioFormat = int(f.AudioFormat)
			h.Channels = int(f.NumChannels)
			h.SampleRate = int(f.SampleRate)
			h.ByteRate = int(f.ByteRate)
			h.BlockAlign = int(f.BlockAlign)
			h.BitsPerSample = int(f.BitsPerSample)
			haveFmt = true

		case riff.DataFormatID:
			if !haveFmt {
				return h, ErrUnsupportedWavLayout
			}
			h.DataSize = chunk.Size
			return h, nil

		default:
			chunk.Drain()
		}
	}
}
