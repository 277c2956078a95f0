// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV audio file decoding and encoding.
//
// # Decoding WAV Files
//
// The Decoder reads linear PCM at 8, 16, 24 or 32 bits per sample, with any
// channel count and sample rate, including WAVE_FORMAT_EXTENSIBLE files with
// a PCM sub-format. It is built on github.com/go-audio/wav:
//
//	src, err := wav.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//	defer src.Close()
//
//	buf, err := audio.ReadAll(src)
//
// 8-bit data is unsigned and is re-centred before scaling.
//
// # Encoding
//
// Encode and Write produce the canonical 44-byte-header 16-bit PCM file:
//   - RIFF header (12 bytes)
//   - fmt chunk (24 bytes): format 1, channels, rate, byte rate, block align
//   - data chunk header (8 bytes) followed by interleaved samples
//
// Samples are written frame by frame, channel by channel, after clamping to
// [-1, 1]. Negative values scale by 32768 and the rest by 32767, truncating
// toward zero, so both -1 and 1 hit the int16 limits. The output length is
// always HeaderSize + frames*channels*2.
//
//	data, err := wav.Encode(buf)
//
// ReadHeader inspects the fmt and data chunks of a file without decoding it.
//
// # Error Handling
//
// Decoder errors wrap both an audio classification and a package error:
//   - ErrNotWavFile with audio.ErrCorruptData: the input is not RIFF/WAVE
//   - ErrOnlyPCMSupported with audio.ErrUnsupportedFormat: float, A-law and so on
//   - ErrUnsupportedWavLayout: missing or misplaced chunks
//
// Encoder errors wrap audio.ErrMalformedBuffer, or are ErrDataTooLarge when
// the payload does not fit a 32-bit RIFF size.
//
//	if errors.Is(err, wav.ErrNotWavFile) {
//	    fmt.Println("Not a WAV file")
//	}
package wav
