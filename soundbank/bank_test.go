// SPDX-License-Identifier: EPL-2.0

package soundbank

import (
	"errors"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
)

func writeWavAsset(t *testing.T, path string, rate, numSamples int) {
	t.Helper()

	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	data := make([]int, numSamples)
	for i := range data {
		data[i] = (i % 100) * 50
	}
	enc := gowav.NewEncoder(f, rate, 16, 1, 1)
	err = enc.Write(&goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: 1, SampleRate: rate},
		Data:           data,
		SourceBitDepth: 16,
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := enc.Close(); err != nil {
		t.Fatal(err)
	}
}

func testBankDir(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	writeWavAsset(t, filepath.Join(dir, "bird_01.wav"), 48000, 4800)
	writeWavAsset(t, filepath.Join(dir, "bird_02.wav"), 48000, 4800)
	writeWavAsset(t, filepath.Join(dir, "thunder1.wav"), 48000, 9600)
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("not audio"), 0o644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestLoad_GroupsByPrefix(t *testing.T) {
	t.Parallel()

	bank, err := Load(testBankDir(t), Options{BitDepth: 24})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if bank.Len() != 3 {
		t.Errorf("Len() = %d, want 3 (text file skipped)", bank.Len())
	}

	groups := bank.Groups()
	if len(groups) != 2 || groups[0] != "bird" || groups[1] != "thunder" {
		t.Errorf("Groups() = %v, want [bird thunder]", groups)
	}
	if n := len(bank.Assets("bird")); n != 2 {
		t.Errorf("bird group has %d assets, want 2", n)
	}
	if n := len(bank.Assets("")); n != 3 {
		t.Errorf("Assets(\"\") returned %d, want all 3", n)
	}
}

func TestLoad_CapturesRequestedFormat(t *testing.T) {
	t.Parallel()

	bank, err := Load(testBankDir(t), Options{SampleRate: 44100, BitDepth: 16})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	for _, asset := range bank.Assets("") {
		if asset.PCM.Format.SampleRate != 44100 {
			t.Errorf("asset %q rate = %d, want 44100", asset.Name, asset.PCM.Format.SampleRate)
		}
		if asset.BitDepth != 16 {
			t.Errorf("asset %q bit depth = %d, want 16", asset.Name, asset.BitDepth)
		}
		if asset.PCM.Format.NumChannels != 1 {
			t.Errorf("asset %q has %d channels, want mono", asset.Name, asset.PCM.Format.NumChannels)
		}
	}
}

func TestLoad_EmptyDir(t *testing.T) {
	t.Parallel()

	if _, err := Load(t.TempDir(), Options{}); !errors.Is(err, ErrEmptyBank) {
		t.Errorf("Load() error = %v, want %v", err, ErrEmptyBank)
	}
}

func TestLoad_MissingDir(t *testing.T) {
	t.Parallel()

	if _, err := Load(filepath.Join(t.TempDir(), "nope"), Options{}); err == nil {
		t.Error("Load() error = nil for missing directory")
	}
}

func TestBank_Pick(t *testing.T) {
	t.Parallel()

	bank, err := Load(testBankDir(t), Options{})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	asset, err := bank.Pick("bird", rand.New(rand.NewSource(3)))
	if err != nil {
		t.Fatalf("Pick() error = %v", err)
	}
	if asset.Group != "bird" {
		t.Errorf("picked asset from group %q, want bird", asset.Group)
	}

	// same seed, same pick
	again, err := bank.Pick("bird", rand.New(rand.NewSource(3)))
	if err != nil {
		t.Fatal(err)
	}
	if again != asset {
		t.Error("Pick() with the same seed returned a different asset")
	}

	if _, err := bank.Pick("whale", rand.New(rand.NewSource(3))); !errors.Is(err, ErrUnknownGroup) {
		t.Errorf("Pick() error = %v, want %v", err, ErrUnknownGroup)
	}
}

func TestAsset_Duration(t *testing.T) {
	t.Parallel()

	bank, err := Load(testBankDir(t), Options{})
	if err != nil {
		t.Fatal(err)
	}

	assets := bank.Assets("thunder")
	if len(assets) != 1 {
		t.Fatalf("thunder group has %d assets, want 1", len(assets))
	}
	// 9600 samples at 48kHz
	if d := assets[0].Duration(); d < 0.199 || d > 0.201 {
		t.Errorf("Duration() = %g, want 0.2", d)
	}
}

func TestGroupName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want string
	}{
		{"bird_01", "bird"},
		{"bird-2", "bird"},
		{"thunder1", "thunder"},
		{"rain", "rain"},
		{"take 5", "take"},
		{"42", "42"},
	}
	for _, tc := range tests {
		if got := groupName(tc.name); got != tc.want {
			t.Errorf("groupName(%q) = %q, want %q", tc.name, got, tc.want)
		}
	}
}
