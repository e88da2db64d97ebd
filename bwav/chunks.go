// SPDX-License-Identifier: EPL-2.0

package bwav

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// FormatInfo describes the PCM stream of the container.
type FormatInfo struct {
	Channels   int
	SampleRate int
	BitDepth   int
}

func (f FormatInfo) bytesPerSample() int { return f.BitDepth / 8 }
func (f FormatInfo) blockAlign() int     { return f.Channels * f.bytesPerSample() }

func (f FormatInfo) validate() error {
	if f.Channels < 1 {
		return fmt.Errorf("%d channels: %w", f.Channels, ErrInvalidFormat)
	}
	if f.SampleRate < 1 {
		return fmt.Errorf("sample rate %d: %w", f.SampleRate, ErrInvalidFormat)
	}
	if f.BitDepth != 16 && f.BitDepth != 24 {
		return fmt.Errorf("bit depth %d: %w", f.BitDepth, ErrInvalidFormat)
	}
	return nil
}

// extensible reports whether the fmt chunk needs the
// WAVE_FORMAT_EXTENSIBLE layout. Plain PCM only describes mono and
// stereo.
func (f FormatInfo) extensible() bool { return f.Channels > 2 }

const (
	formatPCM        = 0x0001
	formatExtensible = 0xFFFE

	fmtChunkSize           = 16
	fmtExtensibleChunkSize = 40
	bextChunkSize          = 602
	chnaEntrySize          = 40
)

// pcmSubFormat is the KSDATAFORMAT_SUBTYPE_PCM GUID carried in the
// extensible fmt chunk.
var pcmSubFormat = [16]byte{
	0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x10, 0x00,
	0x80, 0x00, 0x00, 0xAA, 0x00, 0x38, 0x9B, 0x71,
}

// Bext is the EBU broadcast extension chunk, version 0. String fields
// longer than their fixed slots are truncated on encode.
type Bext struct {
	Description     string // 256 bytes
	Originator      string // 32 bytes
	OriginatorRef   string // 32 bytes
	OriginationDate string // 10 bytes, YYYY-MM-DD
	OriginationTime string // 8 bytes, HH:MM:SS
	// TimeReference is the first sample's offset since midnight, in
	// samples.
	TimeReference uint64
	Version       uint16
}

// NewBext fills a version 0 bext with the current date and time and a
// fresh random originator reference. The reference is the UUID's 32
// hex digits without hyphens so it fills its slot exactly.
func NewBext(description, originator string, timeReference uint64) *Bext {
	now := time.Now()
	u := uuid.New()
	return &Bext{
		Description:     description,
		Originator:      originator,
		OriginatorRef:   hex.EncodeToString(u[:]),
		OriginationDate: now.Format("2006-01-02"),
		OriginationTime: now.Format("15:04:05"),
		TimeReference:   timeReference,
	}
}

func (b *Bext) encode() []byte {
	buf := make([]byte, bextChunkSize)
	putFixedString(buf[0:256], b.Description)
	putFixedString(buf[256:288], b.Originator)
	putFixedString(buf[288:320], b.OriginatorRef)
	putFixedString(buf[320:330], b.OriginationDate)
	putFixedString(buf[330:338], b.OriginationTime)
	binary.LittleEndian.PutUint64(buf[338:346], b.TimeReference)
	binary.LittleEndian.PutUint16(buf[346:348], b.Version)
	// 64 byte UMID and 190 reserved bytes stay zero
	return buf
}

func decodeBext(data []byte) (*Bext, error) {
	if len(data) < bextChunkSize {
		return nil, fmt.Errorf("bext chunk %d bytes, want %d: %w", len(data), bextChunkSize, ErrMalformedChunk)
	}
	return &Bext{
		Description:     fixedString(data[0:256]),
		Originator:      fixedString(data[256:288]),
		OriginatorRef:   fixedString(data[288:320]),
		OriginationDate: fixedString(data[320:330]),
		OriginationTime: fixedString(data[330:338]),
		TimeReference:   binary.LittleEndian.Uint64(data[338:346]),
		Version:         binary.LittleEndian.Uint16(data[346:348]),
	}, nil
}

// ChnaEntry maps one audioTrackUID to a physical track of the data
// chunk.
type ChnaEntry struct {
	// TrackNum is the 1-based track index.
	TrackNum uint16
	// UID is the audioTrackUID, e.g. ATU_00000001.
	UID string
	// TrackRef is the audioTrackFormat ID, e.g. AT_00031001_01.
	TrackRef string
	// PackRef is the audioPackFormat ID, e.g. AP_00031001.
	PackRef string
}

func encodeChna(entries []ChnaEntry) []byte {
	buf := make([]byte, 4+chnaEntrySize*len(entries))
	binary.LittleEndian.PutUint16(buf[0:2], uint16(len(entries))) // numTracks
	binary.LittleEndian.PutUint16(buf[2:4], uint16(len(entries))) // numUIDs
	for i, e := range entries {
		off := 4 + i*chnaEntrySize
		binary.LittleEndian.PutUint16(buf[off:off+2], e.TrackNum)
		putFixedString(buf[off+2:off+14], e.UID)
		putFixedString(buf[off+14:off+28], e.TrackRef)
		putFixedString(buf[off+28:off+39], e.PackRef)
		// one pad byte per entry stays zero
	}
	return buf
}

func decodeChna(data []byte) ([]ChnaEntry, error) {
	if len(data) < 4 {
		return nil, fmt.Errorf("chna chunk %d bytes: %w", len(data), ErrMalformedChunk)
	}
	numUIDs := int(binary.LittleEndian.Uint16(data[2:4]))
	if len(data) < 4+numUIDs*chnaEntrySize {
		return nil, fmt.Errorf("chna chunk truncated at %d of %d entries: %w",
			(len(data)-4)/chnaEntrySize, numUIDs, ErrMalformedChunk)
	}
	entries := make([]ChnaEntry, 0, numUIDs)
	for i := range numUIDs {
		off := 4 + i*chnaEntrySize
		entries = append(entries, ChnaEntry{
			TrackNum: binary.LittleEndian.Uint16(data[off : off+2]),
			UID:      fixedString(data[off+2 : off+14]),
			TrackRef: fixedString(data[off+14 : off+28]),
			PackRef:  fixedString(data[off+28 : off+39]),
		})
	}
	return entries, nil
}

func putFixedString(dst []byte, s string) {
	copy(dst, s)
}

func fixedString(b []byte) string {
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}
