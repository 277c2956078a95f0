// SPDX-License-Identifier: EPL-2.0

package audcut

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/ik5/audcut/audio"
	"github.com/ik5/audcut/edit"
	"github.com/ik5/audcut/formats/aiff"
	"github.com/ik5/audcut/formats/flac"
	"github.com/ik5/audcut/formats/mp3"
	"github.com/ik5/audcut/formats/vorbis"
	"github.com/ik5/audcut/formats/wav"
)

// Error classes returned by the package. They are the audio package
// sentinels, re-exported so callers need a single import.
var (
	ErrMalformedBuffer   = audio.ErrMalformedBuffer
	ErrUnsupportedFormat = audio.ErrUnsupportedFormat
	ErrCorruptData       = audio.ErrCorruptData
)

// DefaultRegistry returns a registry holding every bundled decoder together
// with its common MIME types and file extensions.
func DefaultRegistry() *audio.Registry {
	r := audio.NewRegistry()

	r.Register("wav", wav.Decoder{}, "audio/wav", "audio/x-wav", "audio/wave", "audio/vnd.wave", ".wav", ".wave")
	r.Register("mp3", mp3.Decoder{}, "audio/mpeg", "audio/mp3", "audio/x-mp3", ".mp3")
	r.Register("ogg", vorbis.Decoder{}, "audio/ogg", "audio/vorbis", "application/ogg", ".ogg", ".oga")
	r.Register("aiff", aiff.Decoder{}, "audio/aiff", "audio/x-aiff", ".aif", ".aiff", ".aifc")
	r.Register("flac", flac.Decoder{}, "audio/flac", "audio/x-flac", ".flac")

	return r
}

var defaultRegistry = DefaultRegistry()

// Decode reads an encoded audio stream into a canonical buffer using the
// bundled decoders. See DecodeWith.
func Decode(r io.Reader, mimeHint string) (*audio.Buffer, error) {
	return DecodeWith(defaultRegistry, r, mimeHint)
}

// DecodeBytes is Decode over an in-memory file.
func DecodeBytes(data []byte, mimeHint string) (*audio.Buffer, error) {
	return DecodeWith(defaultRegistry, bytes.NewReader(data), mimeHint)
}

// DecodeWith selects a decoder from reg and decodes r into a canonical buffer.
//
// mimeHint may be a MIME type, a file extension or a format key. The first
// bytes of r are sniffed as well: when they name a registered format that
// differs from the hint, the content wins, so a WAV file saved as ".mp3"
// still decodes. The hint decides only for content Sniff does not recognise.
// The error wraps ErrUnsupportedFormat when no decoder applies and
// ErrCorruptData when the chosen decoder fails.
func DecodeWith(reg *audio.Registry, r io.Reader, mimeHint string) (*audio.Buffer, error) {
	br := bufio.NewReader(r)
	head, err := br.Peek(audio.SniffLen)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, bufio.ErrBufferFull) {
		return nil, fmt.Errorf("%w: %w", ErrCorruptData, err)
	}

	format, dec, ok := reg.Lookup(mimeHint)
	if sniffed, sdec, found := reg.Lookup(audio.Sniff(head)); found && sniffed != format {
		format, dec, ok = sniffed, sdec, true
	}
	if !ok {
		return nil, fmt.Errorf("%w: hint %q", ErrUnsupportedFormat, mimeHint)
	}

	src, err := dec.Decode(br)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", format, classify(err))
	}
	defer src.Close()

	buf, err := audio.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", format, classify(err))
	}

	return buf, nil
}

// classify makes sure err carries one of the decoder error classes.
func classify(err error) error {
	if errors.Is(err, ErrUnsupportedFormat) || errors.Is(err, ErrCorruptData) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrCorruptData, err)
}

// Crop returns a new buffer holding only the frames selected by r.
func Crop(b *audio.Buffer, r audio.Region) (*audio.Buffer, error) {
	return edit.Crop(b, r)
}

// Remove returns a new buffer with the frames selected by r cut out.
func Remove(b *audio.Buffer, r audio.Region) (*audio.Buffer, error) {
	return edit.Remove(b, r)
}

// Encode serializes b as a 16-bit PCM WAV file.
func Encode(b *audio.Buffer) ([]byte, error) {
	return wav.Encode(b)
}
