// SPDX-License-Identifier: EPL-2.0

package flac

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/audcut/audio"
	"github.com/mewkiz/flac"
	"github.com/mewkiz/flac/frame"
)

// frameReader is an interface for flac.Stream to allow testing
type frameReader interface {
	ParseNext() (*frame.Frame, error)
	Close() error
}

type source struct {
	stream     frameReader
	sampleRate int
	channels   int
	scale      float32

	cur *frame.Frame // frame being drained
	pos int          // next frame index inside cur
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return s.stream.Close() }

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}
	if len(dst) < s.channels {
		return 0, io.ErrShortBuffer
	}

	n := 0
	for n+s.channels <= len(dst) {
		if s.cur == nil || s.pos >= frameLen(s.cur) {
			f, err := s.stream.ParseNext()
			if err != nil {
				if !errors.Is(err, io.EOF) {
					err = fmt.Errorf("%w", err)
				}
				return n, err
			}
			if len(f.Subframes) != s.channels {
				return n, fmt.Errorf("%w: frame has %d channels, stream has %d",
					audio.ErrCorruptData, len(f.Subframes), s.channels)
			}
			s.cur, s.pos = f, 0
			continue
		}

		for _, sub := range s.cur.Subframes {
			dst[n] = float32(sub.Samples[s.pos]) * s.scale
			n++
		}
		s.pos++
	}

	return n, nil
}

// frameLen is the shortest subframe length, so a damaged frame cannot index
// past its samples.
func frameLen(f *frame.Frame) int {
	if len(f.Subframes) == 0 {
		return 0
	}
	n := len(f.Subframes[0].Samples)
	for _, sub := range f.Subframes[1:] {
		n = min(n, len(sub.Samples))
	}
	return n
}

// Decoder reads native FLAC streams.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	stream, err := flac.New(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", audio.ErrCorruptData, err)
	}

	info := stream.Info
	if info == nil || info.SampleRate == 0 || info.NChannels == 0 {
		stream.Close()
		return nil, fmt.Errorf("%w: %w", audio.ErrCorruptData, ErrMissingStreamInfo)
	}
	if info.BitsPerSample < 4 || info.BitsPerSample > 32 {
		stream.Close()
		return nil, fmt.Errorf("%w: %w: %d bits", audio.ErrUnsupportedFormat, ErrUnsupportedBitDepth, info.BitsPerSample)
	}

	return newSource(stream, int(info.SampleRate), int(info.NChannels), int(info.BitsPerSample)), nil
}

func newSource(stream frameReader, sampleRate, channels, bitsPerSample int) *source {
	return &source{
		stream:     stream,
		sampleRate: sampleRate,
		channels:   channels,
		scale:      1 / float32(int64(1)<<(bitsPerSample-1)),
	}
}
