// SPDX-License-Identifier: EPL-2.0

package flac

import "errors"

var (
	// ErrMissingStreamInfo indicates a stream without a usable STREAMINFO block
	ErrMissingStreamInfo = errors.New("missing FLAC stream info")

	// ErrUnsupportedBitDepth indicates a sample size outside 4 to 32 bits
	ErrUnsupportedBitDepth = errors.New("unsupported FLAC bit depth")
)
