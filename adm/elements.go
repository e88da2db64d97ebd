// SPDX-License-Identifier: EPL-2.0

package adm

import "encoding/xml"

// Type and format labels used by this exporter. Everything emitted is
// an object-based PCM track.
const (
	TypeLabelObjects     = "0003"
	TypeDefinitionObject = "Objects"
	FormatLabelPCM       = "0001"
	FormatDefinitionPCM  = "PCM"
)

// EBUCoreNamespace is the schema the axml document declares.
const EBUCoreNamespace = "urn:ebu:metadata-schema:ebuCore_2014"

// Document is the serializable ebuCoreMain wrapper around the
// audioFormatExtended element set.
type Document struct {
	XMLName xml.Name `xml:"ebuCoreMain"`
	XMLNS   string   `xml:"xmlns,attr"`

	Programmes     []*AudioProgramme     `xml:"coreMetadata>format>audioFormatExtended>audioProgramme"`
	Contents       []*AudioContent       `xml:"coreMetadata>format>audioFormatExtended>audioContent"`
	Objects        []*AudioObject        `xml:"coreMetadata>format>audioFormatExtended>audioObject"`
	PackFormats    []*AudioPackFormat    `xml:"coreMetadata>format>audioFormatExtended>audioPackFormat"`
	ChannelFormats []*AudioChannelFormat `xml:"coreMetadata>format>audioFormatExtended>audioChannelFormat"`
	StreamFormats  []*AudioStreamFormat  `xml:"coreMetadata>format>audioFormatExtended>audioStreamFormat"`
	TrackFormats   []*AudioTrackFormat   `xml:"coreMetadata>format>audioFormatExtended>audioTrackFormat"`
	TrackUIDs      []*AudioTrackUID      `xml:"coreMetadata>format>audioFormatExtended>audioTrackUID"`
}

type AudioProgramme struct {
	ID    string   `xml:"audioProgrammeID,attr"`
	Name  string   `xml:"audioProgrammeName,attr"`
	Start Timecode `xml:"start,attr"`
	End   Timecode `xml:"end,attr"`

	ContentRefs []string `xml:"audioContentIDRef"`
}

type AudioContent struct {
	ID   string `xml:"audioContentID,attr"`
	Name string `xml:"audioContentName,attr"`

	ObjectRefs []string `xml:"audioObjectIDRef"`
}

type AudioObject struct {
	ID       string   `xml:"audioObjectID,attr"`
	Name     string   `xml:"audioObjectName,attr"`
	Start    Timecode `xml:"start,attr"`
	Duration Timecode `xml:"duration,attr"`

	PackFormatRefs []string `xml:"audioPackFormatIDRef"`
	TrackUIDRefs   []string `xml:"audioTrackUIDRef"`
}

type AudioPackFormat struct {
	ID             string `xml:"audioPackFormatID,attr"`
	Name           string `xml:"audioPackFormatName,attr"`
	TypeLabel      string `xml:"typeLabel,attr"`
	TypeDefinition string `xml:"typeDefinition,attr"`

	ChannelFormatRefs []string `xml:"audioChannelFormatIDRef"`
}

type AudioChannelFormat struct {
	ID             string `xml:"audioChannelFormatID,attr"`
	Name           string `xml:"audioChannelFormatName,attr"`
	TypeLabel      string `xml:"typeLabel,attr"`
	TypeDefinition string `xml:"typeDefinition,attr"`

	Blocks []*AudioBlockFormat `xml:"audioBlockFormat"`
}

// AudioBlockFormat is one time-bounded segment of an object's spatial
// parameters. RTime is relative to the owning audioObject's start.
type AudioBlockFormat struct {
	ID       string   `xml:"audioBlockFormatID,attr"`
	RTime    Timecode `xml:"rtime,attr"`
	Duration Timecode `xml:"duration,attr"`

	Cartesian int           `xml:"cartesian"`
	Positions []Position    `xml:"position"`
	Jump      *JumpPosition `xml:"jumpPosition"`
}

// Position is a single cartesian coordinate of a block position.
// Value is the decimal text of the coordinate.
type Position struct {
	Coordinate string `xml:"coordinate,attr"`
	Value      string `xml:",chardata"`
}

// JumpPosition flags that the renderer should snap to the block
// position over InterpolationLength seconds instead of gliding across
// the whole block.
type JumpPosition struct {
	InterpolationLength string `xml:"interpolationLength,attr,omitempty"`
	Flag                string `xml:",chardata"`
}

type AudioStreamFormat struct {
	ID               string `xml:"audioStreamFormatID,attr"`
	Name             string `xml:"audioStreamFormatName,attr"`
	FormatLabel      string `xml:"formatLabel,attr"`
	FormatDefinition string `xml:"formatDefinition,attr"`

	ChannelFormatRefs []string `xml:"audioChannelFormatIDRef"`
	TrackFormatRefs   []string `xml:"audioTrackFormatIDRef"`
}

type AudioTrackFormat struct {
	ID               string `xml:"audioTrackFormatID,attr"`
	Name             string `xml:"audioTrackFormatName,attr"`
	FormatLabel      string `xml:"formatLabel,attr"`
	FormatDefinition string `xml:"formatDefinition,attr"`

	StreamFormatRefs []string `xml:"audioStreamFormatIDRef"`
}

type AudioTrackUID struct {
	UID        string `xml:"UID,attr"`
	SampleRate int    `xml:"sampleRate,attr"`
	BitDepth   int    `xml:"bitDepth,attr"`
}
