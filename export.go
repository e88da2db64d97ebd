// SPDX-License-Identifier: EPL-2.0

package admexport

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/soundobjects/admexport/adm"
	"github.com/soundobjects/admexport/bwav"
	"github.com/soundobjects/admexport/mix"
	"github.com/soundobjects/admexport/place"
	"github.com/soundobjects/admexport/scene"
)

// originator is written into the bext chunk of every export.
const originator = "admexport"

// Result is everything one export produced: the encodable container,
// the ADM document that went into its axml chunk, the object tracks
// behind each channel, and any sources dropped by the object cap.
type Result struct {
	File     *bwav.File
	Document *adm.Document
	Tracks   []*mix.ObjectTrack
	Dropped  []*place.Placed
}

// Export runs the full pipeline on a snapshot: validate, resolve start
// times, group sources onto object tracks, allocate channels, build
// the ADM document and render the interleaved PCM. The snapshot is not
// modified. A nil rnd seeds from the clock; pass a seeded rand to make
// random placements reproducible.
func Export(snap *scene.Snapshot, rnd *rand.Rand) (*Result, error) {
	if err := snap.Validate(); err != nil {
		return nil, fmt.Errorf("validating snapshot: %w", err)
	}
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	placed, err := place.NewResolver(rnd).Resolve(snap)
	if err != nil {
		return nil, err
	}

	settings := snap.Settings
	groups, dropped := mix.Group(placed, settings.Duration, settings.MaxObjects)
	if err := mix.Allocate(groups); err != nil {
		return nil, err
	}

	doc, axml, mappings, err := buildDocument(groups, settings)
	if err != nil {
		return nil, err
	}

	pcm, err := mix.Interleave(groups, settings)
	if err != nil {
		return nil, err
	}

	file := &bwav.File{
		Format: bwav.FormatInfo{
			Channels:   len(groups),
			SampleRate: settings.SampleRate,
			BitDepth:   settings.BitDepth,
		},
		Bext: bwav.NewBext("SCENE="+programmeName(settings), originator, 0),
		AXML: axml,
		Chna: chnaEntries(mappings),
		PCM:  pcm,
	}
	return &Result{File: file, Document: doc, Tracks: groups, Dropped: dropped}, nil
}

// ExportFile runs Export and writes the container to path atomically:
// a failed export never replaces or truncates an existing file there.
func ExportFile(snap *scene.Snapshot, path string, rnd *rand.Rand) (*Result, error) {
	res, err := Export(snap, rnd)
	if err != nil {
		return nil, err
	}
	if err := res.File.WriteFile(path); err != nil {
		return nil, err
	}
	return res, nil
}

func programmeName(settings scene.Settings) string {
	if settings.Programme != "" {
		return settings.Programme
	}
	return "ADM_Export"
}

func buildDocument(groups []*mix.ObjectTrack, settings scene.Settings) (*adm.Document, []byte, []adm.TrackMapping, error) {
	name := programmeName(settings)

	b := adm.NewBuilder()
	b.CreateProgramme(name, 0, adm.TimecodeFromSeconds(settings.Duration))
	b.CreateContent(name)

	opts := adm.BlockOptions{
		SampleRate: settings.SampleRate,
		RoomSize:   settings.RoomSize,
	}
	for _, g := range groups {
		blocks, start, duration, err := adm.ObjectBlocks(g, settings.Duration, opts)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("object %q: %w", g.Name, err)
		}
		b.CreateObject(g.TrackIndex, g.Name, start, duration, blocks,
			settings.SampleRate, settings.BitDepth)
	}

	doc, err := b.Document()
	if err != nil {
		return nil, nil, nil, err
	}
	axml, err := adm.Marshal(doc)
	if err != nil {
		return nil, nil, nil, err
	}
	return doc, axml, b.TrackMappings(), nil
}

// chnaEntries converts the builder's track table into chna records,
// ordered to match the physical channels.
func chnaEntries(mappings []adm.TrackMapping) []bwav.ChnaEntry {
	entries := make([]bwav.ChnaEntry, 0, len(mappings))
	for _, m := range mappings {
		entries = append(entries, bwav.ChnaEntry{
			TrackNum: uint16(m.TrackNum),
			UID:      m.UID,
			TrackRef: m.TrackFormatID,
			PackRef:  m.PackFormatID,
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].TrackNum < entries[j].TrackNum
	})
	return entries
}
