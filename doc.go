// SPDX-License-Identifier: EPL-2.0

// Package admexport renders timed, positioned mono sound sources into
// a single Broadcast-WAV file carrying Audio Definition Model (ADM)
// object metadata per ITU-R BS.2076.
//
// An export starts from a scene.Snapshot: a set of mono sources, each
// with a placement policy and a 3D trajectory, a camera trajectory,
// and the session settings (sample rate, bit depth, timeline duration,
// room size). Export turns it into a multichannel file where every
// channel is one ADM object, the axml chunk describes each object's
// movement as audioBlockFormats, and the chna chunk binds the ADM
// track UIDs to the physical channels.
//
// # Pipeline
//
// Export runs these stages in order, on a single goroutine:
//
//  1. scene: validate the snapshot (uniform format, mono sources,
//     monotonic trajectories)
//  2. place: resolve each source's start time from its placement
//     policy
//  3. mix: pack non-overlapping sources onto shared object tracks and
//     allocate channels
//  4. adm: convert trajectories into block formats and build the
//     BS.2076 element graph
//  5. bwav: interleave the PCM and write fmt/bext/chna/axml/data
//
// # Quick Start
//
//	snap := &scene.Snapshot{
//		Sources: sources,
//		Camera:  scene.Static(scene.Vec3{}),
//		Settings: scene.Settings{
//			SampleRate: 48000,
//			BitDepth:   24,
//			Duration:   5,
//			RoomSize:   10,
//		},
//	}
//	res, err := admexport.ExportFile(snap, "scene.wav", nil)
//
// Pass a seeded *rand.Rand instead of nil to make the random placement
// policies reproducible.
//
// # Source Audio
//
// Source PCM is loaded through the format decoders:
//
//	// WAV
//	wavDecoder := wav.Decoder{}
//	src, _ := wavDecoder.Decode(reader)
//
//	// MP3
//	mp3Decoder := mp3.Decoder{}
//	src, _ := mp3Decoder.Decode(reader)
//
// or picked at random from a directory of assets with the soundbank
// subpackage. All decoders return an audio.Source which audio.Capture
// collects into the buffer a scene.SoundSource carries.
//
// See the individual subpackages for more detailed documentation.
package admexport
