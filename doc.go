// SPDX-License-Identifier: EPL-2.0

// Package audcut decodes, edits and re-encodes audio.
//
// The pipeline is decode, then any number of region edits, then encode:
//
//	buf, err := audcut.Decode(file, "audio/mpeg")
//	if err != nil {
//	    // Handle error
//	}
//
//	clip, err := audcut.Crop(buf, audio.Region{Start: 1.5, End: 4})
//	rest, err := audcut.Remove(buf, audio.Region{Start: 1.5, End: 4})
//
//	data, err := audcut.Encode(clip) // 16-bit PCM WAV
//
// # Supported Formats
//
// Decoding is delegated to the format packages:
//   - WAV (linear PCM 8/16/24/32-bit) via formats/wav
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//   - AIFF via formats/aiff
//   - FLAC via formats/flac
//
// Decode picks a decoder from the MIME type or extension hint and falls back
// to sniffing the first bytes of the stream.
//
// Output is always the canonical 44-byte-header 16-bit PCM WAV file. Lossy
// encoding is left to external tools.
//
// # Buffers and Regions
//
// An audio.Buffer holds one []float32 per channel. Edits never modify their
// input and never share storage with it, so a buffer can be edited from
// several goroutines at once. Regions are in seconds and are clamped to the
// buffer; they are never an error.
//
// # Errors
//
// Failures are classified with errors.Is:
//   - ErrMalformedBuffer: channel slices of different lengths, no channels,
//     or a non-positive sample rate
//   - ErrUnsupportedFormat: no decoder matches the input
//   - ErrCorruptData: a decoder rejected the input
//
// See the edit package for sessions that thread buffers through a sequence
// of edits.
package audcut
