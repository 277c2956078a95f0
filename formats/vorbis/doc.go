// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides Ogg Vorbis audio file decoding.
//
// This package uses github.com/jfreymuth/oggvorbis to decode Ogg Vorbis files:
//
//	src, err := vorbis.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//	defer src.Close()
//
//	buf, err := audio.ReadAll(src)
//
// Samples come out as float32 in [-1.0, 1.0] with the stream's own channel
// count and rate. ReadSamples only fills whole frames, so dst must hold at
// least one sample per channel.
//
// A stream that cannot be opened reports an error wrapping
// audio.ErrCorruptData.
package vorbis
