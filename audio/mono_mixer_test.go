// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"testing"

	"github.com/soundobjects/admexport/internal/audiotest"
)

func TestMonoMixer_MonoPassthrough(t *testing.T) {
	t.Parallel()

	src := audiotest.NewConstantSource(48000, 1, 100, 0.7)
	mixer := NewMonoMixer(src)

	if mixer.Channels() != 1 {
		t.Errorf("Channels() = %d, want 1", mixer.Channels())
	}
	if mixer.SampleRate() != 48000 {
		t.Errorf("SampleRate() = %d, want 48000", mixer.SampleRate())
	}

	buf := make([]float32, 100)
	n, err := mixer.ReadSamples(buf)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 100 {
		t.Fatalf("ReadSamples() n = %d, want 100", n)
	}
	for i := range n {
		if buf[i] != 0.7 {
			t.Fatalf("sample %d = %g, want 0.7", i, buf[i])
		}
	}
}

func TestMonoMixer_StereoToMono(t *testing.T) {
	t.Parallel()

	// left channel 1.0, right channel 0.0, average 0.5
	src := audiotest.NewMockSource(48000, 2, 100, func(sample, channel int) float32 {
		if channel == 0 {
			return 1.0
		}
		return 0.0
	})
	mixer := NewMonoMixer(src)

	buf := make([]float32, 100)
	n, err := mixer.ReadSamples(buf)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 100 {
		t.Fatalf("ReadSamples() n = %d frames, want 100", n)
	}
	for i := range n {
		if buf[i] != 0.5 {
			t.Fatalf("frame %d = %g, want 0.5", i, buf[i])
		}
	}
}

func TestMonoMixer_QuadToMono(t *testing.T) {
	t.Parallel()

	src := audiotest.NewMockSource(48000, 4, 50, func(sample, channel int) float32 {
		return float32(channel) // 0+1+2+3 = 6, average 1.5
	})
	mixer := NewMonoMixer(src)

	buf := make([]float32, 50)
	n, err := mixer.ReadSamples(buf)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 50 {
		t.Fatalf("ReadSamples() n = %d frames, want 50", n)
	}
	for i := range n {
		if buf[i] != 1.5 {
			t.Fatalf("frame %d = %g, want 1.5", i, buf[i])
		}
	}
}

func TestMonoMixer_EOF(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSilentSource(48000, 2, 10)
	mixer := NewMonoMixer(src)

	buf := make([]float32, 100)
	n, err := mixer.ReadSamples(buf)
	if n != 10 {
		t.Errorf("ReadSamples() n = %d frames, want 10", n)
	}
	if err != io.EOF {
		t.Errorf("ReadSamples() error = %v, want io.EOF", err)
	}

	n, err = mixer.ReadSamples(buf)
	if n != 0 || err != io.EOF {
		t.Errorf("ReadSamples() after EOF = (%d, %v), want (0, io.EOF)", n, err)
	}
}

func TestMonoMixer_EmptyBuffer(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSilentSource(48000, 2, 10)
	mixer := NewMonoMixer(src)

	n, err := mixer.ReadSamples(nil)
	if n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = (%d, %v), want (0, nil)", n, err)
	}
}

func TestMonoMixer_SmallReads(t *testing.T) {
	t.Parallel()

	src := audiotest.NewConstantSource(48000, 2, 100, 0.4)
	mixer := NewMonoMixer(src)

	total := 0
	buf := make([]float32, 7)
	for {
		n, err := mixer.ReadSamples(buf)
		total += n
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}
	if total != 100 {
		t.Errorf("read %d frames in total, want 100", total)
	}
}

func TestMonoMixer_Close(t *testing.T) {
	t.Parallel()

	mixer := NewMonoMixer(audiotest.NewSilentSource(48000, 2, 10))
	if err := mixer.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}
