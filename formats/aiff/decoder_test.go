// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"math"
	"math/bits"
	"testing"

	goaudio "github.com/go-audio/audio"
	"github.com/ik5/audcut/audio"
)

// mockAiffReader simulates the aiff.Decoder for testing
type mockAiffReader struct {
	sampleRate int
	channels   int
	samples    []int
	offset     int
	err        error
}

func (m *mockAiffReader) Format() *goaudio.Format {
	return &goaudio.Format{
		SampleRate:  m.sampleRate,
		NumChannels: m.channels,
	}
}

func (m *mockAiffReader) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	if m.offset >= len(m.samples) {
		return 0, m.err
	}

	n := copy(buf.Data, m.samples[m.offset:])
	m.offset += n

	return n, nil
}

func newTestSource(m *mockAiffReader, bitDepth int) *source {
	return &source{dec: m, sampleRate: m.sampleRate, channels: m.channels, bitDepth: bitDepth}
}

// extended encodes rate as an 80-bit IEEE 754 extended float.
func extended(rate int) []byte {
	out := make([]byte, 10)
	e := bits.Len(uint(rate)) - 1
	binary.BigEndian.PutUint16(out[0:2], uint16(16383+e))
	binary.BigEndian.PutUint64(out[2:10], uint64(rate)<<(63-e))
	return out
}

// createAIFFFile builds a minimal 16-bit AIFF file from interleaved samples.
func createAIFFFile(sampleRate, channels int, samples []int16) []byte {
	buf := new(bytes.Buffer)

	dataSize := len(samples) * 2
	commSize := 18
	ssndSize := 8 + dataSize

	buf.WriteString("FORM")
	binary.Write(buf, binary.BigEndian, uint32(4+8+commSize+8+ssndSize))
	buf.WriteString("AIFF")

	buf.WriteString("COMM")
	binary.Write(buf, binary.BigEndian, uint32(commSize))
	binary.Write(buf, binary.BigEndian, uint16(channels))
	binary.Write(buf, binary.BigEndian, uint32(len(samples)/channels))
	binary.Write(buf, binary.BigEndian, uint16(16))
	buf.Write(extended(sampleRate))

	buf.WriteString("SSND")
	binary.Write(buf, binary.BigEndian, uint32(ssndSize))
	binary.Write(buf, binary.BigEndian, uint32(0)) // offset
	binary.Write(buf, binary.BigEndian, uint32(0)) // block size
	for _, s := range samples {
		binary.Write(buf, binary.BigEndian, s)
	}

	return buf.Bytes()
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
	}{
		{"garbage", []byte("This is not AIFF data")},
		{"empty", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Decoder{}.Decode(bytes.NewReader(tt.data))
			if !errors.Is(err, audio.ErrCorruptData) {
				t.Errorf("Decode() error = %v, want %v", err, audio.ErrCorruptData)
			}
			if !errors.Is(err, ErrNotAiffFile) {
				t.Errorf("Decode() error = %v, want %v", err, ErrNotAiffFile)
			}
		})
	}
}

func TestDecoder_Decode(t *testing.T) {
	t.Parallel()

	// L, R interleaved
	samples := []int16{16384, -16384, 8192, -8192, 0, 0}
	data := createAIFFFile(44100, 2, samples)

	// bytes.Buffer forces the non-seeker path
	src, err := Decoder{}.Decode(bytes.NewBuffer(data))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	defer src.Close()

	if src.SampleRate() != 44100 || src.Channels() != 2 {
		t.Fatalf("got %d Hz %d channels, want 44100 Hz 2 channels", src.SampleRate(), src.Channels())
	}

	buf, err := audio.ReadAll(src)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if buf.NumFrames() != 3 {
		t.Fatalf("NumFrames() = %d, want 3", buf.NumFrames())
	}

	wantL := []float32{0.5, 0.25, 0}
	wantR := []float32{-0.5, -0.25, 0}
	for i := range 3 {
		if buf.Data[0][i] != wantL[i] || buf.Data[1][i] != wantR[i] {
			t.Errorf("frame %d = (%v, %v), want (%v, %v)", i, buf.Data[0][i], buf.Data[1][i], wantL[i], wantR[i])
		}
	}
}

func TestSource_Metadata(t *testing.T) {
	t.Parallel()

	src := newTestSource(&mockAiffReader{sampleRate: 44100, channels: 2}, 16)

	if src.SampleRate() != 44100 {
		t.Errorf("SampleRate() = %d, want 44100", src.SampleRate())
	}
	if src.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", src.Channels())
	}
	if err := src.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	src := newTestSource(&mockAiffReader{sampleRate: 8000, channels: 1, samples: []int{0, 16384, -16384, -32768}}, 16)

	dst := make([]float32, 4)
	n, err := src.ReadSamples(dst)
	if err != nil {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 4 {
		t.Fatalf("ReadSamples() n = %d, want 4", n)
	}

	want := []float32{0, 0.5, -0.5, -1}
	for i := range want {
		if dst[i] != want[i] {
			t.Errorf("dst[%d] = %v, want %v", i, dst[i], want[i])
		}
	}

	n, err = src.ReadSamples(dst)
	if n != 0 || !errors.Is(err, io.EOF) {
		t.Errorf("ReadSamples() at end = (%d, %v), want (0, EOF)", n, err)
	}
}

func TestSource_ReadSamples_EmptyBuffer(t *testing.T) {
	t.Parallel()

	src := newTestSource(&mockAiffReader{sampleRate: 8000, channels: 1, samples: []int{1}}, 16)

	if n, err := src.ReadSamples(nil); n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = (%d, %v), want (0, nil)", n, err)
	}
}

func TestSource_ReadSamples_PartialRead(t *testing.T) {
	t.Parallel()

	src := newTestSource(&mockAiffReader{sampleRate: 8000, channels: 1, samples: []int{1, 2, 3}}, 16)

	n, err := src.ReadSamples(make([]float32, 10))
	if n != 3 || !errors.Is(err, io.EOF) {
		t.Errorf("ReadSamples() = (%d, %v), want (3, EOF)", n, err)
	}
}

func TestSource_ReadSamples_Error(t *testing.T) {
	t.Parallel()

	src := newTestSource(&mockAiffReader{sampleRate: 8000, channels: 1, err: io.ErrUnexpectedEOF}, 16)

	if _, err := src.ReadSamples(make([]float32, 4)); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("ReadSamples() error = %v, want %v", err, io.ErrUnexpectedEOF)
	}
}

func TestSource_BitDepthNormalization(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		bitDepth int
		input    int
		expected float32
	}{
		{"8-bit max", 8, 127, 127.0 / 128.0},
		{"8-bit min", 8, -128, -1.0},
		{"16-bit max", 16, 32767, 32767.0 / 32768.0},
		{"16-bit min", 16, -32768, -1.0},
		{"24-bit", 24, 8388607, 8388607.0 / 8388608.0},
		{"32-bit", 32, 2147483647, 2147483647.0 / 2147483648.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := newTestSource(&mockAiffReader{sampleRate: 44100, channels: 1, samples: []int{tt.input}}, tt.bitDepth)

			dst := make([]float32, 1)
			if n, _ := src.ReadSamples(dst); n != 1 {
				t.Fatalf("ReadSamples() n = %d, want 1", n)
			}

			if math.Abs(float64(dst[0]-tt.expected)) > 1e-6 {
				t.Errorf("ReadSamples() dst[0] = %f, want %f", dst[0], tt.expected)
			}
		})
	}
}

func TestSource_BufferReuse(t *testing.T) {
	t.Parallel()

	src := newTestSource(&mockAiffReader{sampleRate: 8000, channels: 1, samples: make([]int, 200)}, 16)

	if _, err := src.ReadSamples(make([]float32, 100)); err != nil {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	first := src.intBuf

	if _, err := src.ReadSamples(make([]float32, 50)); err != nil {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if src.intBuf != first {
		t.Error("intBuf was reallocated for a smaller read")
	}
}

// Benchmarks

func BenchmarkSource_ReadSamples(b *testing.B) {
	mock := &mockAiffReader{sampleRate: 44100, channels: 2, samples: make([]int, 4096)}
	src := newTestSource(mock, 16)
	dst := make([]float32, 4096)

	for b.Loop() {
		mock.offset = 0
		if _, err := src.ReadSamples(dst); err != nil {
			b.Fatal(err)
		}
	}
}
