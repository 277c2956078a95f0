// SPDX-License-Identifier: EPL-2.0

package edit

import (
	"fmt"

	"github.com/ik5/audcut/audio"
)

// Crop returns a new buffer holding only the frames of b selected by r.
//
// The region is clamped into the buffer, so Crop never fails for an
// out-of-range selection. A zero-length selection yields a zero-frame buffer.
func Crop(b *audio.Buffer, r audio.Region) (*audio.Buffer, error) {
	if err := b.Validate(); err != nil {
		return nil, fmt.Errorf("crop: %w", err)
	}

	start, end := r.Frames(b.SampleRate, b.NumFrames())

	out := &audio.Buffer{
		SampleRate: b.SampleRate,
		Data:       make([][]float32, len(b.Data)),
	}
	for c, ch := range b.Data {
		dst := make([]float32, end-start)
		copy(dst, ch[start:end])
		out.Data[c] = dst
	}

	return out, nil
}

// Remove returns a new buffer with the frames selected by r cut out.
//
// Frames before and after the region are joined as-is; no cross-fade is
// applied at the splice point. A zero-length selection returns a copy of b.
func Remove(b *audio.Buffer, r audio.Region) (*audio.Buffer, error) {
	if err := b.Validate(); err != nil {
		return nil, fmt.Errorf("remove: %w", err)
	}

	frames := b.NumFrames()
	start, end := r.Frames(b.SampleRate, frames)

	out := &audio.Buffer{
		SampleRate: b.SampleRate,
		Data:       make([][]float32, len(b.Data)),
	}
	for c, ch := range b.Data {
		dst := make([]float32, frames-(end-start))
		n := copy(dst, ch[:start])
		copy(dst[n:], ch[end:])
		out.Data[c] = dst
	}

	return out, nil
}
