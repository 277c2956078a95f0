// SPDX-License-Identifier: EPL-2.0

package audio

import "math"

// frameSnap is how close (in frames) a position has to be to a whole frame
// before it is treated as that frame.
const frameSnap = 1e-6

// Region is a time selection in seconds, as reported by a waveform view.
type Region struct {
	Start float64
	End   float64
}

// Whole returns the region covering every frame of b.
func Whole(b *Buffer) Region {
	return Region{Start: 0, End: b.Seconds()}
}

// Frames converts the region to a half-open frame range [start, end) for a
// buffer of numFrames frames at sampleRate.
//
// Each bound is floor(t * sampleRate) clamped into [0, numFrames], except
// that a product within 1e-6 of a whole frame counts as that frame. So
// 0.49999999999 s at 44.1 kHz (22049.9999995) maps to 22050, not 22049,
// and Whole(b) always covers every frame despite float rounding.
// A reversed region is swapped, so start <= end always holds.
func (r Region) Frames(sampleRate, numFrames int) (start, end int) {
	start = toFrame(r.Start, sampleRate, numFrames)
	end = toFrame(r.End, sampleRate, numFrames)
	if start > end {
		start, end = end, start
	}
	return start, end
}

// Len returns the region length in seconds. Reversed regions have a positive length.
func (r Region) Len() float64 {
	return math.Abs(r.End - r.Start)
}

func toFrame(t float64, sampleRate, numFrames int) int {
	if numFrames <= 0 || sampleRate <= 0 || math.IsNaN(t) {
		return 0
	}

	pos := t * float64(sampleRate)
	if near := math.Round(pos); math.Abs(pos-near) < frameSnap {
		pos = near
	}
	pos = math.Floor(pos)

	switch {
	case pos <= 0:
		return 0
	case pos >= float64(numFrames):
		return numFrames
	default:
		return int(pos)
	}
}
