// SPDX-License-Identifier: EPL-2.0

// Package flac provides FLAC audio file decoding.
//
// This package uses github.com/mewkiz/flac to decode native FLAC streams:
//
//	src, err := flac.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//	defer src.Close()
//
//	buf, err := audio.ReadAll(src)
//
// Samples are scaled by 2^(bits-1) so full scale maps to [-1.0, 1.0] for
// every bit depth FLAC allows. ReadSamples only fills whole frames.
//
// Streams that cannot be parsed report errors wrapping audio.ErrCorruptData.
package flac
