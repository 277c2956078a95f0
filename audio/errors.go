// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	// ErrMalformedBuffer is returned when a Buffer breaks its structural
	// invariants (channel slices of unequal length, no channels, bad rate).
	ErrMalformedBuffer = errors.New("malformed audio buffer")

	// ErrUnsupportedFormat is returned when no decoder can handle the input.
	ErrUnsupportedFormat = errors.New("unsupported audio format")

	// ErrCorruptData is returned when a decoder recognises the format but
	// fails to read it.
	ErrCorruptData = errors.New("corrupt audio data")
)
