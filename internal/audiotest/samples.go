// SPDX-License-Identifier: EPL-2.0

package audiotest

// Ramp returns a value that is distinct for every frame and channel of a
// small test buffer, so misplaced samples are easy to spot.
func Ramp(frame int, channel int) float32 {
	return float32(frame%1000)/1000 + float32(channel)/10000
}

// Channels builds per-channel sample slices of the given size using fn.
func Channels(channels, frames int, fn func(frame int, channel int) float32) [][]float32 {
	data := make([][]float32, channels)
	for c := range data {
		data[c] = make([]float32, frames)
		for i := range data[c] {
			data[c][i] = fn(i, c)
		}
	}
	return data
}

// Constant builds per-channel sample slices filled with value.
func Constant(channels, frames int, value float32) [][]float32 {
	return Channels(channels, frames, func(int, int) float32 { return value })
}
