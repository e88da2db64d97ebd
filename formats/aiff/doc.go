// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF (Audio Interchange File Format) asset
// files into audio sources.
//
// Decoding is delegated to github.com/go-audio/aiff. The file is
// decoded in full before the first sample is returned, which suits the
// short asset files a sound scene is built from.
//
//	decoder := aiff.Decoder{}
//	file, _ := os.Open("audio.aiff")
//	source, err := decoder.Decode(file)
//
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// The decoder returns an audio.Source that provides samples as float32
// values in the range [-1.0, 1.0].
package aiff
