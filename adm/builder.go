// SPDX-License-Identifier: EPL-2.0

package adm

import (
	"fmt"
)

// ObjectItem groups the element chain created for one exported object.
type ObjectItem struct {
	TrackIndex int

	Object        *AudioObject
	PackFormat    *AudioPackFormat
	ChannelFormat *AudioChannelFormat
	StreamFormat  *AudioStreamFormat
	TrackFormat   *AudioTrackFormat
	TrackUID      *AudioTrackUID
}

// TrackMapping links one physical track to its ADM identifiers, in the
// shape the chna chunk records it.
type TrackMapping struct {
	TrackNum      int // 1-based
	UID           string
	TrackFormatID string
	PackFormatID  string
}

// Builder assembles an ADM document one element at a time, the way the
// EBU reference tooling's builder does: programme first, then content,
// then one object chain per track. IDs are generated when the document
// is finalized.
type Builder struct {
	programme *AudioProgramme
	content   *AudioContent
	items     []*ObjectItem
}

func NewBuilder() *Builder {
	return &Builder{}
}

// CreateProgramme sets the single audioProgramme of the export.
func (b *Builder) CreateProgramme(name string, start, end Timecode) *AudioProgramme {
	b.programme = &AudioProgramme{Name: name, Start: start, End: end}
	return b.programme
}

// CreateContent sets the single audioContent that collects the objects.
func (b *Builder) CreateContent(name string) *AudioContent {
	b.content = &AudioContent{Name: name}
	return b.content
}

// CreateObject adds the full element chain for one object-based track:
// audioObject, pack and channel format carrying the blocks, and the
// stream/track/UID triple binding it to PCM.
func (b *Builder) CreateObject(trackIndex int, name string, start, duration Timecode,
	blocks []*AudioBlockFormat, sampleRate, bitDepth int) *ObjectItem {

	item := &ObjectItem{
		TrackIndex: trackIndex,
		Object: &AudioObject{
			Name:     name,
			Start:    start,
			Duration: duration,
		},
		PackFormat: &AudioPackFormat{
			Name:           name,
			TypeLabel:      TypeLabelObjects,
			TypeDefinition: TypeDefinitionObject,
		},
		ChannelFormat: &AudioChannelFormat{
			Name:           name,
			TypeLabel:      TypeLabelObjects,
			TypeDefinition: TypeDefinitionObject,
			Blocks:         blocks,
		},
		StreamFormat: &AudioStreamFormat{
			Name:             "PCM_" + name,
			FormatLabel:      FormatLabelPCM,
			FormatDefinition: FormatDefinitionPCM,
		},
		TrackFormat: &AudioTrackFormat{
			Name:             "PCM_" + name,
			FormatLabel:      FormatLabelPCM,
			FormatDefinition: FormatDefinitionPCM,
		},
		TrackUID: &AudioTrackUID{
			SampleRate: sampleRate,
			BitDepth:   bitDepth,
		},
	}
	b.items = append(b.items, item)
	return item
}

// generateIDs assigns BS.2076-shaped identifiers to every element and
// wires up all cross references.
func (b *Builder) generateIDs() {
	b.programme.ID = "APR_1001"
	b.content.ID = "ACO_1001"
	b.programme.ContentRefs = []string{b.content.ID}

	b.content.ObjectRefs = b.content.ObjectRefs[:0]
	for i, item := range b.items {
		suffix := fmt.Sprintf("%04X", 0x1001+i)

		item.Object.ID = "AO_" + suffix
		item.PackFormat.ID = "AP_" + TypeLabelObjects + suffix
		item.ChannelFormat.ID = "AC_" + TypeLabelObjects + suffix
		item.StreamFormat.ID = "AS_" + TypeLabelObjects + suffix
		item.TrackFormat.ID = "AT_" + TypeLabelObjects + suffix + "_01"
		item.TrackUID.UID = fmt.Sprintf("ATU_%08X", i+1)

		for j, block := range item.ChannelFormat.Blocks {
			block.ID = fmt.Sprintf("AB_%s%s_%08X", TypeLabelObjects, suffix, j+1)
		}

		b.content.ObjectRefs = append(b.content.ObjectRefs, item.Object.ID)
		item.Object.PackFormatRefs = []string{item.PackFormat.ID}
		item.Object.TrackUIDRefs = []string{item.TrackUID.UID}
		item.PackFormat.ChannelFormatRefs = []string{item.ChannelFormat.ID}
		item.StreamFormat.ChannelFormatRefs = []string{item.ChannelFormat.ID}
		item.StreamFormat.TrackFormatRefs = []string{item.TrackFormat.ID}
		item.TrackFormat.StreamFormatRefs = []string{item.StreamFormat.ID}
	}
}

// Document finalizes the build: IDs are generated, references wired,
// and the serializable document returned.
func (b *Builder) Document() (*Document, error) {
	if b.programme == nil {
		return nil, ErrNoProgramme
	}
	if b.content == nil {
		return nil, ErrNoContent
	}
	if len(b.items) == 0 {
		return nil, ErrNoObjects
	}

	seen := make(map[int]string, len(b.items))
	for _, item := range b.items {
		if other, dup := seen[item.TrackIndex]; dup {
			return nil, fmt.Errorf("objects %q and %q share track %d: %w",
				other, item.Object.Name, item.TrackIndex, ErrDuplicateTrack)
		}
		seen[item.TrackIndex] = item.Object.Name
	}

	b.generateIDs()

	doc := &Document{
		XMLNS:      EBUCoreNamespace,
		Programmes: []*AudioProgramme{b.programme},
		Contents:   []*AudioContent{b.content},
	}
	for _, item := range b.items {
		doc.Objects = append(doc.Objects, item.Object)
		doc.PackFormats = append(doc.PackFormats, item.PackFormat)
		doc.ChannelFormats = append(doc.ChannelFormats, item.ChannelFormat)
		doc.StreamFormats = append(doc.StreamFormats, item.StreamFormat)
		doc.TrackFormats = append(doc.TrackFormats, item.TrackFormat)
		doc.TrackUIDs = append(doc.TrackUIDs, item.TrackUID)
	}
	return doc, nil
}

// TrackMappings returns the chna-shaped track table. Call after
// Document so IDs exist.
func (b *Builder) TrackMappings() []TrackMapping {
	mappings := make([]TrackMapping, 0, len(b.items))
	for _, item := range b.items {
		mappings = append(mappings, TrackMapping{
			TrackNum:      item.TrackIndex,
			UID:           item.TrackUID.UID,
			TrackFormatID: item.TrackFormat.ID,
			PackFormatID:  item.PackFormat.ID,
		})
	}
	return mappings
}
