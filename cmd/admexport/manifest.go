// SPDX-License-Identifier: EPL-2.0

package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/soundobjects/admexport/audio"
	"github.com/soundobjects/admexport/scene"
	"github.com/soundobjects/admexport/soundbank"
)

// manifest is the JSON scene description the export command consumes.
// Relative file paths resolve against the manifest's directory.
type manifest struct {
	Programme  string  `json:"programme"`
	SampleRate int     `json:"sampleRate"`
	BitDepth   int     `json:"bitDepth"`
	Duration   float64 `json:"duration"`
	RoomSize   float64 `json:"roomSize"`
	MaxObjects int     `json:"maxObjects"`

	Camera  []manifestKey    `json:"camera"`
	Sources []manifestSource `json:"sources"`
	Bank    *manifestBank    `json:"bank,omitempty"`
}

type manifestKey struct {
	Time float64 `json:"time"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Z    float64 `json:"z"`
}

type manifestSource struct {
	File       string        `json:"file"`
	Name       string        `json:"name,omitempty"`
	Policy     string        `json:"policy,omitempty"`
	SyncPeak   bool          `json:"syncPeak,omitempty"`
	Trajectory []manifestKey `json:"trajectory"`
}

type manifestBank struct {
	Dir   string         `json:"dir"`
	Seed  int64          `json:"seed,omitempty"`
	Picks []manifestPick `json:"picks"`
}

// manifestPick scatters count random assets of one group across the
// scene.
type manifestPick struct {
	Group      string        `json:"group"`
	Count      int           `json:"count"`
	Policy     string        `json:"policy,omitempty"`
	SyncPeak   bool          `json:"syncPeak,omitempty"`
	Trajectory []manifestKey `json:"trajectory"`
}

func toTrajectory(keys []manifestKey) scene.Trajectory {
	traj := make(scene.Trajectory, 0, len(keys))
	for _, k := range keys {
		traj = append(traj, scene.PositionSample{
			Time: k.Time,
			Pos:  scene.Vec3{X: k.X, Y: k.Y, Z: k.Z},
		})
	}
	return traj
}

func loadManifest(path string, logger *slog.Logger) (*scene.Snapshot, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}

	var m manifest
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}

	base := filepath.Dir(path)
	snap := &scene.Snapshot{
		Camera: toTrajectory(m.Camera),
		Settings: scene.Settings{
			SampleRate: m.SampleRate,
			BitDepth:   m.BitDepth,
			Duration:   m.Duration,
			RoomSize:   m.RoomSize,
			MaxObjects: m.MaxObjects,
			Programme:  m.Programme,
		},
	}

	reg := soundbank.DefaultRegistry()
	for i, ms := range m.Sources {
		src, err := loadSource(base, ms, i, m, reg)
		if err != nil {
			return nil, err
		}
		logger.Debug("loaded source",
			slog.String("id", src.ID),
			slog.Int("samples", src.NumSamples()))
		snap.Sources = append(snap.Sources, src)
	}

	if m.Bank != nil {
		if err := addBankPicks(snap, base, m, logger); err != nil {
			return nil, err
		}
	}
	return snap, nil
}

func loadSource(base string, ms manifestSource, index int, m manifest, reg *audio.Registry) (*scene.SoundSource, error) {
	policy, err := scene.ParsePolicy(ms.Policy)
	if err != nil {
		return nil, fmt.Errorf("source %d: %w", index, err)
	}

	path := ms.File
	if !filepath.IsAbs(path) {
		path = filepath.Join(base, path)
	}
	ext := filepath.Ext(path)
	dec, ok := reg.Get(ext)
	if !ok {
		return nil, fmt.Errorf("source %d: no decoder for %q", index, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("source %d: %w", index, err)
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("source %d: decoding %s: %w", index, path, err)
	}
	defer src.Close()

	pcm, err := audio.CaptureMono(src, m.SampleRate, m.BitDepth, 4096)
	if err != nil {
		return nil, fmt.Errorf("source %d: %w", index, err)
	}

	name := ms.Name
	if name == "" {
		name = filepath.Base(path)
		name = name[:len(name)-len(ext)]
	}
	return &scene.SoundSource{
		ID:         fmt.Sprintf("src-%d", index),
		Name:       name,
		PCM:        pcm,
		BitDepth:   m.BitDepth,
		Policy:     policy,
		SyncPeak:   ms.SyncPeak,
		Trajectory: toTrajectory(ms.Trajectory),
	}, nil
}

func addBankPicks(snap *scene.Snapshot, base string, m manifest, logger *slog.Logger) error {
	dir := m.Bank.Dir
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(base, dir)
	}

	bank, err := soundbank.Load(dir, soundbank.Options{
		SampleRate: m.SampleRate,
		BitDepth:   m.BitDepth,
	})
	if err != nil {
		return fmt.Errorf("loading sound bank: %w", err)
	}
	logger.Debug("sound bank loaded",
		slog.String("dir", dir),
		slog.Int("assets", bank.Len()),
		slog.Any("groups", bank.Groups()))

	seed := m.Bank.Seed
	if seed == 0 {
		seed = 1
	}
	rnd := rand.New(rand.NewSource(seed))

	for _, pick := range m.Bank.Picks {
		policy, err := scene.ParsePolicy(pick.Policy)
		if err != nil {
			return fmt.Errorf("bank pick %q: %w", pick.Group, err)
		}
		for i := 0; i < pick.Count; i++ {
			asset, err := bank.Pick(pick.Group, rnd)
			if err != nil {
				return fmt.Errorf("bank pick: %w", err)
			}
			id := fmt.Sprintf("%s-%d", pick.Group, i)
			src := asset.Source(id, policy, toTrajectory(pick.Trajectory))
			src.SyncPeak = pick.SyncPeak
			snap.Sources = append(snap.Sources, src)
		}
	}
	return nil
}
