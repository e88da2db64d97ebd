// SPDX-License-Identifier: EPL-2.0

// Package wav decodes WAV asset files into audio sources.
//
// Decoding is delegated to github.com/go-audio/wav, so any PCM layout
// that library handles (8 to 32 bit, mono or multichannel, any sample
// rate) comes through. The file is decoded in full before the first
// sample is returned, which suits the short asset files a sound scene
// is built from.
//
// # Decoding WAV Files
//
//	decoder := wav.Decoder{}
//	file, _ := os.Open("audio.wav")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	// Read samples
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// The decoder returns an audio.Source that provides samples as float32
// values in the range [-1.0, 1.0].
//
// # Error Handling
//
//   - ErrNotWavFile: the input is not a valid WAV file
//   - ErrUnsupportedBitDepth: the PCM bit depth is outside 8..32
//
// Writing ADM Broadcast-WAV output is the bwav package's job; this
// package only reads source material.
package wav
