// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"testing"

	"github.com/soundobjects/admexport/internal/audiotest"
)

func drain(t *testing.T, src Source, bufSize int) []float32 {
	t.Helper()

	var out []float32
	buf := make([]float32, bufSize)
	for {
		n, err := src.ReadSamples(buf)
		out = append(out, buf[:n]...)
		if err == io.EOF {
			return out
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}
}

func TestResampler_Metadata(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSilentSource(44100, 2, 100)
	r := NewResampler(src, 48000)

	if r.SampleRate() != 48000 {
		t.Errorf("SampleRate() = %d, want 48000", r.SampleRate())
	}
	if r.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", r.Channels())
	}
}

func TestResampler_Downsampling(t *testing.T) {
	t.Parallel()

	// one second at 48kHz down to 8kHz
	src := audiotest.NewSineSource(48000, 1, 48000, 440)
	r := NewResampler(src, 8000)

	out := drain(t, r, 1024)
	if len(out) < 7900 || len(out) > 8100 {
		t.Errorf("produced %d samples, want about 8000", len(out))
	}
}

func TestResampler_Upsampling(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSineSource(8000, 1, 8000, 440)
	r := NewResampler(src, 48000)

	out := drain(t, r, 1024)
	if len(out) < 47500 || len(out) > 48100 {
		t.Errorf("produced %d samples, want about 48000", len(out))
	}
}

func TestResampler_PreservesConstant(t *testing.T) {
	t.Parallel()

	src := audiotest.NewConstantSource(44100, 1, 4410, 0.5)
	r := NewResampler(src, 22050)

	out := drain(t, r, 512)
	if len(out) == 0 {
		t.Fatal("no output samples")
	}
	// skip the filter warm-up at the edges
	for i := 10; i < len(out)-10; i++ {
		if out[i] < 0.45 || out[i] > 0.55 {
			t.Fatalf("sample %d = %g, want about 0.5", i, out[i])
		}
	}
}

func TestResampler_StereoPreserved(t *testing.T) {
	t.Parallel()

	// distinct constants per channel must stay on their channels
	src := audiotest.NewMockSource(44100, 2, 4410, func(sample, channel int) float32 {
		if channel == 0 {
			return 0.25
		}
		return 0.75
	})
	r := NewResampler(src, 48000)

	out := drain(t, r, 1024)
	if len(out)%2 != 0 {
		t.Fatalf("odd sample count %d from a stereo stream", len(out))
	}
	for f := 10; f < len(out)/2-10; f++ {
		left, right := out[2*f], out[2*f+1]
		if left < 0.2 || left > 0.3 {
			t.Fatalf("left frame %d = %g, want about 0.25", f, left)
		}
		if right < 0.7 || right > 0.8 {
			t.Fatalf("right frame %d = %g, want about 0.75", f, right)
		}
	}
}

func TestResampler_InvalidDstSize(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSilentSource(44100, 2, 100)
	r := NewResampler(src, 48000)

	buf := make([]float32, 7) // not a multiple of 2 channels
	if _, err := r.ReadSamples(buf); err != ErrInvalidDstSize {
		t.Errorf("ReadSamples() error = %v, want %v", err, ErrInvalidDstSize)
	}
}

func TestResampler_EmptySource(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSilentSource(44100, 1, 0)
	r := NewResampler(src, 48000)

	buf := make([]float32, 64)
	if _, err := r.ReadSamples(buf); err != io.EOF {
		t.Errorf("ReadSamples() error = %v, want io.EOF", err)
	}
}

func TestResampler_VeryShortSource(t *testing.T) {
	t.Parallel()

	src := audiotest.NewConstantSource(44100, 1, 2, 0.5)
	r := NewResampler(src, 48000)

	out := drain(t, r, 64)
	if len(out) == 0 {
		t.Error("no output from a two-sample source")
	}
}

func TestResampler_SmallBuffer(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSineSource(44100, 1, 4410, 440)
	r := NewResampler(src, 22050)

	out := drain(t, r, 3)
	if len(out) < 2100 || len(out) > 2300 {
		t.Errorf("produced %d samples, want about 2205", len(out))
	}
}

func TestResampler_Close(t *testing.T) {
	t.Parallel()

	r := NewResampler(audiotest.NewSilentSource(44100, 1, 10), 48000)
	if err := r.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}
