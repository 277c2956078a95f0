// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// Float32ToInt16 quantizes a sample to 16-bit PCM.
//
// The sample is clamped to [-1, 1]; negative values scale by 32768 and the
// rest by 32767, then the result is truncated toward zero. NaN becomes 0.
func Float32ToInt16(x float32) int16 {
	v := float64(x)
	if math.IsNaN(v) {
		return 0
	}

	// Clamp and scale
	if v > 1 {
		v = 1
	} else if v < -1 {
		v = -1
	}

	if v < 0 {
		return int16(v * 32768.0)
	}
	// Use 32767 for positive max to avoid overflow
	return int16(v * 32767.0)
}

// IntToFloat32 normalizes a signed integer PCM sample of the given bit depth
// into [-1, 1). Unknown depths are treated as 16-bit.
func IntToFloat32(v int, bitDepth int) float32 {
	var maxVal float64
	switch bitDepth {
	case 8:
		maxVal = 128.0
	case 16:
		maxVal = 32768.0
	case 24:
		maxVal = 8388608.0
	case 32:
		maxVal = 2147483648.0
	default:
		maxVal = 32768.0 // Default to 16-bit
	}

	return float32(float64(v) / maxVal)
}
