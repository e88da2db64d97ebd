// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"bytes"
	"io"
	"testing"
)

// mockOggReader serves canned float samples the way oggvorbis does:
// whole frames only, count returned in samples.
type mockOggReader struct {
	data     []float32
	pos      int
	rate     int
	channels int
}

func (m *mockOggReader) SampleRate() int { return m.rate }
func (m *mockOggReader) Channels() int   { return m.channels }

func (m *mockOggReader) Read(p []float32) (int, error) {
	if m.pos >= len(m.data) {
		return 0, io.EOF
	}
	n := len(p) - len(p)%m.channels
	if remain := len(m.data) - m.pos; n > remain {
		n = remain
	}
	copy(p, m.data[m.pos:m.pos+n])
	m.pos += n
	return n, nil
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	src := &source{
		dec:        &mockOggReader{data: []float32{0.1, 0.2, 0.3, 0.4}, rate: 48000, channels: 2},
		sampleRate: 48000,
		channels:   2,
	}

	if src.SampleRate() != 48000 {
		t.Errorf("SampleRate() = %d, want 48000", src.SampleRate())
	}
	if src.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", src.Channels())
	}

	buf := make([]float32, 8)
	n, err := src.ReadSamples(buf)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 4 {
		t.Fatalf("ReadSamples() n = %d, want 4", n)
	}
	want := []float32{0.1, 0.2, 0.3, 0.4}
	for i := range want {
		if buf[i] != want[i] {
			t.Errorf("sample %d = %g, want %g", i, buf[i], want[i])
		}
	}
}

func TestSource_OddBufferTrimmedToFrames(t *testing.T) {
	t.Parallel()

	src := &source{
		dec:        &mockOggReader{data: make([]float32, 100), rate: 48000, channels: 2},
		sampleRate: 48000,
		channels:   2,
	}

	buf := make([]float32, 7) // only 6 fit on a stereo frame boundary
	n, err := src.ReadSamples(buf)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 6 {
		t.Errorf("ReadSamples() n = %d, want 6", n)
	}
}

func TestSource_EOF(t *testing.T) {
	t.Parallel()

	src := &source{
		dec:        &mockOggReader{data: []float32{0.5, 0.5}, rate: 48000, channels: 1},
		sampleRate: 48000,
		channels:   1,
	}

	buf := make([]float32, 8)
	if _, err := src.ReadSamples(buf); err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	n, err := src.ReadSamples(buf)
	if n != 0 || err != io.EOF {
		t.Errorf("ReadSamples() after EOF = (%d, %v), want (0, io.EOF)", n, err)
	}
}

func TestSource_EmptyBuffer(t *testing.T) {
	t.Parallel()

	src := &source{
		dec:        &mockOggReader{data: []float32{0.5}, rate: 48000, channels: 1},
		sampleRate: 48000,
		channels:   1,
	}

	n, err := src.ReadSamples(nil)
	if n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = (%d, %v), want (0, nil)", n, err)
	}
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader([]byte("this is not an ogg stream")))
	if err == nil {
		t.Error("Decode() error = nil for invalid input")
	}
}
