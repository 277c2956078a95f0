// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"math"
	"time"
)

// Buffer is a fully decoded, de-interleaved PCM buffer.
//
// Data holds one slice per channel, all of the same length. Samples are
// nominally in [-1, 1]; decoders may overshoot slightly and encoders clamp.
//
// A Buffer is treated as immutable once produced: every edit returns a new
// Buffer and never shares channel storage with its input.
type Buffer struct {
	SampleRate int
	Data       [][]float32
}

// NumChannels returns the number of channels in the buffer.
func (b *Buffer) NumChannels() int {
	if b == nil {
		return 0
	}
	return len(b.Data)
}

// NumFrames returns the per-channel sample count.
func (b *Buffer) NumFrames() int {
	if b == nil || len(b.Data) == 0 {
		return 0
	}
	return len(b.Data[0])
}

// Seconds returns the buffer length in seconds.
func (b *Buffer) Seconds() float64 {
	if b == nil || b.SampleRate <= 0 {
		return 0
	}
	return float64(b.NumFrames()) / float64(b.SampleRate)
}

// Duration returns the buffer length as a time.Duration.
func (b *Buffer) Duration() time.Duration {
	return time.Duration(b.Seconds() * float64(time.Second))
}

// Validate reports whether the buffer holds its structural invariants.
// The returned error wraps ErrMalformedBuffer.
func (b *Buffer) Validate() error {
	if b == nil {
		return fmt.Errorf("%w: nil buffer", ErrMalformedBuffer)
	}
	if b.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate %d", ErrMalformedBuffer, b.SampleRate)
	}
	if len(b.Data) == 0 {
		return fmt.Errorf("%w: no channels", ErrMalformedBuffer)
	}

	frames := len(b.Data[0])
	for c := 1; c < len(b.Data); c++ {
		if len(b.Data[c]) != frames {
			return fmt.Errorf("%w: channel %d has %d frames, want %d",
				ErrMalformedBuffer, c, len(b.Data[c]), frames)
		}
	}

	return nil
}

// Clone returns a deep copy of b.
func (b *Buffer) Clone() *Buffer {
	if b == nil {
		return nil
	}

	out := &Buffer{
		SampleRate: b.SampleRate,
		Data:       make([][]float32, len(b.Data)),
	}
	for c, ch := range b.Data {
		out.Data[c] = append([]float32(nil), ch...)
	}
	return out
}

// Equal reports whether both buffers have the same rate, layout and
// bit-identical samples.
func (b *Buffer) Equal(other *Buffer) bool {
	if b == nil || other == nil {
		return b == other
	}
	if b.SampleRate != other.SampleRate || len(b.Data) != len(other.Data) {
		return false
	}

	for c := range b.Data {
		if len(b.Data[c]) != len(other.Data[c]) {
			return false
		}
		for i, v := range b.Data[c] {
			if math.Float32bits(v) != math.Float32bits(other.Data[c][i]) {
				return false
			}
		}
	}

	return true
}

// NewBuffer allocates a zeroed buffer with the given layout.
func NewBuffer(sampleRate, channels, frames int) *Buffer {
	b := &Buffer{
		SampleRate: sampleRate,
		Data:       make([][]float32, channels),
	}
	for c := range b.Data {
		b.Data[c] = make([]float32, frames)
	}
	return b
}
