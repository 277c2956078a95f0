// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

const (
	readChunkFrames = 4096

	// maxEmptyReads bounds how many (0, nil) reads ReadAll tolerates in a row.
	maxEmptyReads = 100
)

// ReadAll drains src into a Buffer, de-interleaving samples per channel.
// It does not close src.
//
// Errors other than io.EOF are wrapped with ErrCorruptData. A trailing
// incomplete frame is dropped.
func ReadAll(src Source) (*Buffer, error) {
	rate, channels := src.SampleRate(), src.Channels()
	if rate <= 0 || channels <= 0 {
		return nil, fmt.Errorf("%w: source reports %d Hz, %d channels", ErrCorruptData, rate, channels)
	}

	b := &Buffer{
		SampleRate: rate,
		Data:       make([][]float32, channels),
	}
	for c := range b.Data {
		b.Data[c] = make([]float32, 0, readChunkFrames)
	}

	buf := make([]float32, readChunkFrames*channels)
	carry := 0
	empty := 0

	for {
		n, err := src.ReadSamples(buf[carry:])
		if n == 0 && err == nil {
			empty++
			if empty >= maxEmptyReads {
				return nil, fmt.Errorf("%w: %w", ErrCorruptData, io.ErrNoProgress)
			}
			continue
		}
		empty = 0

		n += carry
		frames := n / channels
		for f := range frames {
			base := f * channels
			for c := range channels {
				b.Data[c] = append(b.Data[c], buf[base+c])
			}
		}
		// keep the samples of a split frame for the next read
		carry = copy(buf, buf[frames*channels:n])

		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCorruptData, err)
		}
	}

	return b, nil
}
