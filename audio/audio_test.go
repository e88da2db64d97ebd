// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"io"
	"sync"
	"testing"

	"github.com/soundobjects/admexport/internal/audiotest"
)

// mockDecoder is a test decoder implementation
type mockDecoder struct {
	name string
}

func (d *mockDecoder) Decode(r io.Reader) (Source, error) {
	return audiotest.NewSilentSource(44100, 2, 100), nil
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	decoder := &mockDecoder{name: "wav"}

	registry.Register(".wav", decoder)

	got, ok := registry.Get(".wav")
	if !ok {
		t.Fatal("Registry.Get() failed to retrieve registered decoder")
	}
	if got != decoder {
		t.Error("Registry.Get() returned different decoder instance")
	}
}

func TestRegistry_GetNonExistent(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()

	_, ok := registry.Get(".flac")
	if ok {
		t.Error("Registry.Get() returned ok=true for unregistered extension")
	}
}

func TestRegistry_Overwrite(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	first := &mockDecoder{name: "first"}
	second := &mockDecoder{name: "second"}

	registry.Register(".wav", first)
	registry.Register(".wav", second)

	got, ok := registry.Get(".wav")
	if !ok {
		t.Fatal("Registry.Get() failed after overwrite")
	}
	if got != second {
		t.Error("Registry.Get() returned the overwritten decoder")
	}
}

func TestRegistry_Extensions(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	registry.Register(".wav", &mockDecoder{})
	registry.Register(".mp3", &mockDecoder{})
	registry.Register(".ogg", &mockDecoder{})

	exts := registry.Extensions()
	if len(exts) != 3 {
		t.Errorf("Extensions() returned %d entries, want 3", len(exts))
	}
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	var wg sync.WaitGroup

	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			registry.Register(".wav", &mockDecoder{})
		}()
		go func() {
			defer wg.Done()
			registry.Get(".wav")
		}()
	}
	wg.Wait()
}

func TestCaptureMono_Stereo24(t *testing.T) {
	t.Parallel()

	src := audiotest.NewConstantSource(48000, 2, 480, 0.5)

	buf, err := CaptureMono(src, 0, 24, 128)
	if err != nil {
		t.Fatalf("CaptureMono() error = %v", err)
	}

	if buf.Format.NumChannels != 1 {
		t.Errorf("NumChannels = %d, want 1", buf.Format.NumChannels)
	}
	if buf.Format.SampleRate != 48000 {
		t.Errorf("SampleRate = %d, want 48000", buf.Format.SampleRate)
	}
	if buf.SourceBitDepth != 24 {
		t.Errorf("SourceBitDepth = %d, want 24", buf.SourceBitDepth)
	}
	if len(buf.Data) != 480 {
		t.Fatalf("captured %d samples, want 480", len(buf.Data))
	}

	fullScale := float64(8388607)
	want := int(0.5 * fullScale)
	for i, v := range buf.Data {
		if v < want-2 || v > want+2 {
			t.Fatalf("sample %d = %d, want about %d", i, v, want)
		}
	}
}

func TestCaptureMono_Resamples(t *testing.T) {
	t.Parallel()

	// one second at 44.1kHz captured at 48kHz
	src := audiotest.NewConstantSource(44100, 1, 44100, 0.25)

	buf, err := CaptureMono(src, 48000, 16, 4096)
	if err != nil {
		t.Fatalf("CaptureMono() error = %v", err)
	}
	if buf.Format.SampleRate != 48000 {
		t.Errorf("SampleRate = %d, want 48000", buf.Format.SampleRate)
	}

	// within one percent of a second's worth of output frames
	if len(buf.Data) < 47500 || len(buf.Data) > 48100 {
		t.Errorf("captured %d samples, want about 48000", len(buf.Data))
	}
}

func TestCaptureMono_BadBitDepth(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSilentSource(48000, 1, 100)
	if _, err := CaptureMono(src, 0, 8, 0); !errors.Is(err, ErrInvalidBitDepth) {
		t.Errorf("CaptureMono() error = %v, want %v", err, ErrInvalidBitDepth)
	}
}

func TestCaptureMono_EmptySource(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSilentSource(48000, 1, 0)
	buf, err := CaptureMono(src, 0, 16, 0)
	if err != nil {
		t.Fatalf("CaptureMono() error = %v", err)
	}
	if len(buf.Data) != 0 {
		t.Errorf("captured %d samples from an empty source", len(buf.Data))
	}
}
