// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"io"
	"testing"

	"github.com/ik5/audcut/internal/audiotest"
)

func TestReadAll_Deinterleaves(t *testing.T) {
	t.Parallel()

	src := audiotest.NewRampSource(8000, 2, 10000)

	b, err := ReadAll(src)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}

	if b.SampleRate != 8000 {
		t.Errorf("SampleRate = %d, want 8000", b.SampleRate)
	}
	if b.NumChannels() != 2 {
		t.Fatalf("NumChannels() = %d, want 2", b.NumChannels())
	}
	if b.NumFrames() != 10000 {
		t.Fatalf("NumFrames() = %d, want 10000", b.NumFrames())
	}

	for c := range 2 {
		for i := range 10000 {
			if want := audiotest.Ramp(i, c); b.Data[c][i] != want {
				t.Fatalf("Data[%d][%d] = %v, want %v", c, i, b.Data[c][i], want)
			}
		}
	}

	if err := b.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestReadAll_SmallChunks(t *testing.T) {
	t.Parallel()

	src := audiotest.NewRampSource(44100, 3, 1234).WithChunk(7)

	b, err := ReadAll(src)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if b.NumFrames() != 1234 {
		t.Errorf("NumFrames() = %d, want 1234", b.NumFrames())
	}
	if b.Data[2][1233] != audiotest.Ramp(1233, 2) {
		t.Errorf("last sample = %v, want %v", b.Data[2][1233], audiotest.Ramp(1233, 2))
	}
}

func TestReadAll_EmptySource(t *testing.T) {
	t.Parallel()

	b, err := ReadAll(audiotest.NewSilentSource(22050, 1, 0))
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if b.NumChannels() != 1 || b.NumFrames() != 0 {
		t.Errorf("ReadAll() = %d channels, %d frames, want 1, 0", b.NumChannels(), b.NumFrames())
	}
}

func TestReadAll_InvalidLayout(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		rate     int
		channels int
	}{
		{"zero rate", 0, 2},
		{"zero channels", 44100, 0},
		{"negative channels", 44100, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := ReadAll(audiotest.NewSilentSource(tt.rate, tt.channels, 10))
			if !errors.Is(err, ErrCorruptData) {
				t.Errorf("ReadAll() error = %v, want ErrCorruptData", err)
			}
		})
	}
}

func TestReadAll_SourceError(t *testing.T) {
	t.Parallel()

	readErr := errors.New("bad frame")
	src := audiotest.NewSilentSource(8000, 1, 100).WithError(readErr)

	_, err := ReadAll(src)
	if !errors.Is(err, ErrCorruptData) {
		t.Errorf("ReadAll() error = %v, want ErrCorruptData", err)
	}
	if !errors.Is(err, readErr) {
		t.Errorf("ReadAll() error = %v, want wrapped source error", err)
	}
}

// stallingSource never produces data nor an error.
type stallingSource struct{}

func (stallingSource) SampleRate() int                    { return 8000 }
func (stallingSource) Channels() int                      { return 1 }
func (stallingSource) ReadSamples([]float32) (int, error) { return 0, nil }
func (stallingSource) Close() error                       { return nil }

func TestReadAll_NoProgress(t *testing.T) {
	t.Parallel()

	_, err := ReadAll(stallingSource{})
	if !errors.Is(err, io.ErrNoProgress) {
		t.Errorf("ReadAll() error = %v, want io.ErrNoProgress", err)
	}
}

// oddSource returns interleaved data split mid-frame.
type oddSource struct {
	data []float32
	pos  int
}

func (s *oddSource) SampleRate() int { return 8000 }
func (s *oddSource) Channels() int   { return 2 }
func (s *oddSource) Close() error    { return nil }

func (s *oddSource) ReadSamples(dst []float32) (int, error) {
	if s.pos >= len(s.data) {
		return 0, io.EOF
	}
	n := copy(dst[:min(len(dst), 3)], s.data[s.pos:])
	s.pos += n
	return n, nil
}

func TestReadAll_SplitFrames(t *testing.T) {
	t.Parallel()

	// 4 full stereo frames plus one dangling sample
	src := &oddSource{data: []float32{0.1, -0.1, 0.2, -0.2, 0.3, -0.3, 0.4, -0.4, 0.5}}

	b, err := ReadAll(src)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}

	wantL := []float32{0.1, 0.2, 0.3, 0.4}
	wantR := []float32{-0.1, -0.2, -0.3, -0.4}
	if b.NumFrames() != 4 {
		t.Fatalf("NumFrames() = %d, want 4", b.NumFrames())
	}
	for i := range 4 {
		if b.Data[0][i] != wantL[i] || b.Data[1][i] != wantR[i] {
			t.Errorf("frame %d = (%v, %v), want (%v, %v)", i, b.Data[0][i], b.Data[1][i], wantL[i], wantR[i])
		}
	}
}

func BenchmarkReadAll(b *testing.B) {
	b.ReportAllocs()

	for b.Loop() {
		_, _ = ReadAll(audiotest.NewSineSource(44100, 2, 44100, 440))
	}
}
