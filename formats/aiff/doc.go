// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF (Audio Interchange File Format) decoding.
//
// This package uses github.com/go-audio/aiff to decode AIFF files.
// AIFF is Apple's standard audio file format, commonly used on macOS.
//
// # Decoding AIFF Files
//
//	src, err := aiff.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//	defer src.Close()
//
//	buf, err := audio.ReadAll(src)
//
// Signed PCM at 8, 16, 24 and 32 bits is supported with any channel count and
// sample rate. Inputs that are not seekable are read into memory first.
//
// # Error Handling
//
// The package errors are wrapped together with an audio classification:
//   - ErrNotAiffFile with audio.ErrCorruptData
//   - ErrUnsupportedBitDepth with audio.ErrUnsupportedFormat
//   - ErrUnsupportedAiffLayout with audio.ErrCorruptData
//
// Example:
//
//	if errors.Is(err, aiff.ErrNotAiffFile) {
//	    fmt.Println("Not an AIFF file")
//	}
//
// # AIFF vs. WAV
//
// AIFF is similar to WAV but:
//   - Uses big-endian byte order (WAV uses little-endian)
//   - Stores sample rate as 80-bit float (WAV uses 32-bit int)
//
// The decoder handles all format differences automatically.
package aiff
