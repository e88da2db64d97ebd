// SPDX-License-Identifier: EPL-2.0

// Package adm builds Audio Definition Model (ITU-R BS.2076) metadata
// for object-based exports.
//
// The Builder mirrors the shape of an ADM authoring session: one
// audioProgramme, one audioContent, and per exported object the full
// audioObject -> audioPackFormat -> audioChannelFormat chain together
// with the audioStreamFormat/audioTrackFormat/audioTrackUID triple that
// ties the object to a PCM track:
//
//	b := adm.NewBuilder()
//	b.CreateProgramme("Scene", start, end)
//	b.CreateContent("Objects")
//	b.CreateObject(1, "Bird", blocks, sampleRate, bitDepth)
//	doc, err := b.Document()
//
// Object positions are cartesian ("room centric" coordinates); each
// audioBlockFormat holds one position with a jump flag, matching how
// Dolby Atmos toolchains read ADM panner automation.
//
// Times are carried as Timecode values with nanosecond resolution and
// serialized in the standard's hh:mm:ss.fffffffff form.
package adm
