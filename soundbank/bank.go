// SPDX-License-Identifier: EPL-2.0

package soundbank

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"strings"

	goaudio "github.com/go-audio/audio"

	"github.com/soundobjects/admexport/audio"
	"github.com/soundobjects/admexport/formats/aiff"
	"github.com/soundobjects/admexport/formats/mp3"
	"github.com/soundobjects/admexport/formats/vorbis"
	"github.com/soundobjects/admexport/formats/wav"
	"github.com/soundobjects/admexport/scene"
)

// DefaultRegistry covers every format decoder this module ships.
func DefaultRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register(".wav", wav.Decoder{})
	reg.Register(".aif", aiff.Decoder{})
	reg.Register(".aiff", aiff.Decoder{})
	reg.Register(".mp3", mp3.Decoder{})
	reg.Register(".ogg", vorbis.Decoder{})
	return reg
}

// Asset is one decoded bank entry, captured as mono PCM and ready to
// become a scene source.
type Asset struct {
	// Name is the file name without its extension.
	Name string
	// Group is the name with trailing digits and separators stripped,
	// so "explosion_03" and "explosion_12" share the group
	// "explosion".
	Group string
	PCM   *goaudio.IntBuffer
	// BitDepth of the captured PCM.
	BitDepth int
}

// Duration of the asset in seconds.
func (a *Asset) Duration() float64 {
	return float64(len(a.PCM.Data)) / float64(a.PCM.Format.SampleRate)
}

// Options control how bank files are captured.
type Options struct {
	// SampleRate to resample every asset to. Zero keeps each asset at
	// its native rate; mismatches then surface when the snapshot is
	// validated.
	SampleRate int
	// BitDepth of the captured PCM, 16 or 24. Zero means 24.
	BitDepth int
	// Registry maps extensions to decoders. Nil means DefaultRegistry.
	Registry *audio.Registry
}

// Bank is a directory of decoded sound assets, grouped by name prefix.
type Bank struct {
	assets []*Asset
	groups map[string][]*Asset
}

// Load decodes every recognized audio file in dir. Files whose
// extension no decoder claims are skipped; a file that fails to decode
// fails the whole load.
func Load(dir string, opts Options) (*Bank, error) {
	if opts.BitDepth == 0 {
		opts.BitDepth = 24
	}
	reg := opts.Registry
	if reg == nil {
		reg = DefaultRegistry()
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading bank directory: %w", err)
	}

	bank := &Bank{groups: make(map[string][]*Asset)}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		dec, ok := reg.Get(ext)
		if !ok {
			continue
		}

		asset, err := loadAsset(filepath.Join(dir, entry.Name()), dec, opts)
		if err != nil {
			return nil, err
		}
		bank.assets = append(bank.assets, asset)
		bank.groups[asset.Group] = append(bank.groups[asset.Group], asset)
	}

	if len(bank.assets) == 0 {
		return nil, fmt.Errorf("%s: %w", dir, ErrEmptyBank)
	}
	return bank, nil
}

func loadAsset(path string, dec audio.Decoder, opts Options) (*Asset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	defer src.Close()

	pcm, err := audio.CaptureMono(src, opts.SampleRate, opts.BitDepth, 4096)
	if err != nil {
		return nil, fmt.Errorf("capturing %s: %w", path, err)
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return &Asset{
		Name:     name,
		Group:    groupName(name),
		PCM:      pcm,
		BitDepth: opts.BitDepth,
	}, nil
}

// groupName strips a trailing index from an asset name: digits and the
// separators commonly used before them.
func groupName(name string) string {
	trimmed := strings.TrimRight(name, "0123456789")
	trimmed = strings.TrimRight(trimmed, "-_ .")
	if trimmed == "" {
		return name
	}
	return trimmed
}

// Len is the number of assets in the bank.
func (b *Bank) Len() int { return len(b.assets) }

// Groups returns the group names, sorted.
func (b *Bank) Groups() []string {
	names := make([]string, 0, len(b.groups))
	for name := range b.groups {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Assets returns the assets of one group, or every asset when group is
// empty.
func (b *Bank) Assets(group string) []*Asset {
	if group == "" {
		return b.assets
	}
	return b.groups[group]
}

// Pick returns a random asset from the group drawn with rnd, or from
// the whole bank when group is empty.
func (b *Bank) Pick(group string, rnd *rand.Rand) (*Asset, error) {
	pool := b.Assets(group)
	if len(pool) == 0 {
		return nil, fmt.Errorf("group %q: %w", group, ErrUnknownGroup)
	}
	return pool[rnd.Intn(len(pool))], nil
}

// Source builds a scene source playing the asset along a trajectory.
func (a *Asset) Source(id string, policy scene.PlacementPolicy, traj scene.Trajectory) *scene.SoundSource {
	return &scene.SoundSource{
		ID:         id,
		Name:       a.Group,
		Group:      a.Group,
		PCM:        a.PCM,
		BitDepth:   a.BitDepth,
		Policy:     policy,
		Trajectory: traj,
	}
}
