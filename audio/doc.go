// SPDX-License-Identifier: EPL-2.0

// Package audio provides the canonical in-memory audio model.
//
// This package contains the core building blocks shared by the decoders,
// the region editor and the WAV encoder:
//   - Source interface for streamed decoder output
//   - Buffer, the de-interleaved canonical sample buffer
//   - Region, a time selection converted to frame ranges
//   - Format registry and sniffing for decoder selection
//
// # Source Interface
//
// Every format decoder produces a Source:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    Close() error
//	}
//
// ReadAll drains a Source into a Buffer:
//
//	src, _ := wav.Decoder{}.Decode(file)
//	defer src.Close()
//	buf, err := audio.ReadAll(src)
//
// # Buffers
//
// A Buffer keeps one []float32 per channel; all channels have the same
// length (the frame count). Buffers are never modified after they are
// produced, so one Buffer may be read from several goroutines at once.
// Validate reports ErrMalformedBuffer when the channel slices disagree.
//
// # Regions
//
// A Region holds start and end in seconds. Frames converts it with
// floor(t * sampleRate) and clamps the result into [0, frames]:
//
//	start, end := audio.Region{Start: 1.5, End: 3}.Frames(buf.SampleRate, buf.NumFrames())
//
// Out of range regions are clamped rather than rejected.
//
// # Format Registry
//
// The registry maps format keys, MIME types and extensions to decoders:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{}, "audio/wav", "audio/x-wav", ".wav")
//	format, decoder, ok := registry.Lookup("audio/wav")
//
// Sniff recognises the common containers from their first bytes when no
// usable hint is available.
//
// # Sample Format
//
// Audio samples are represented as float32 in the range [-1.0, 1.0]:
//   - 0.0 represents silence
//   - 1.0 represents maximum positive amplitude
//   - -1.0 represents maximum negative amplitude
//
// # Error Handling
//
// Sources return io.EOF when no more data is available. The package level
// errors classify failures for callers:
//   - ErrMalformedBuffer: a Buffer with inconsistent channels
//   - ErrUnsupportedFormat: nothing can decode the input
//   - ErrCorruptData: the input is recognised but cannot be read
package audio
