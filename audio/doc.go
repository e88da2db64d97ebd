// SPDX-License-Identifier: EPL-2.0

// Package audio provides the streaming primitives that turn decoded
// asset files into the mono integer buffers the export pipeline works
// on.
//
// # Source Interface
//
// Everything flows through the Source interface: decoders produce one,
// and the processing stages both consume and implement it, so they
// chain freely:
//
//	src, _ := decoder.Decode(file)
//	resampled := audio.NewResampler(src, 48000)
//	mono := audio.NewMonoMixer(resampled)
//
//	buf := make([]float32, 4096)
//	n, err := mono.ReadSamples(buf)
//
// Samples are interleaved float32 in [-1, 1]. ReadSamples returns the
// number of float32 values written; a return of 0 with io.EOF ends the
// stream.
//
// # Capturing
//
// CaptureMono assembles the common chain in one call: it resamples
// when asked to, downmixes to mono, drains the stream and converts it
// to 16 or 24 bit integer samples:
//
//	pcm, err := audio.CaptureMono(src, 48000, 24, 4096)
//	// pcm.Data is mono 24-bit PCM at 48kHz
//
// The result is a go-audio IntBuffer, which is what a
// scene.SoundSource carries.
//
// # Decoder Registry
//
// A Registry maps file extensions to decoders so callers can decode a
// directory of mixed formats without switching on filenames
// themselves:
//
//	reg := audio.NewRegistry()
//	reg.Register(".wav", wav.Decoder{})
//	reg.Register(".mp3", mp3.Decoder{})
//
//	if d, ok := reg.Get(".wav"); ok {
//		src, err := d.Decode(file)
//		// ...
//	}
//
// The soundbank package builds such a registry over all the formats
// subpackages.
package audio
