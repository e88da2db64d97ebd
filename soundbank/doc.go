// SPDX-License-Identifier: EPL-2.0

// Package soundbank loads a directory of audio assets into memory and
// hands out decoded mono sources by name prefix.
//
// Asset files are grouped by their name with trailing index digits
// stripped, so a directory of
//
//	bird_01.wav  bird_02.wav  thunder1.ogg  thunder2.ogg
//
// yields groups "bird" and "thunder". Pick draws a random asset from a
// group, which is how a scene scatters varied instances of the same
// sound:
//
//	bank, _ := soundbank.Load("assets", soundbank.Options{
//		SampleRate: 48000,
//		BitDepth:   24,
//	})
//
//	rnd := rand.New(rand.NewSource(seed))
//	asset, _ := bank.Pick("bird", rnd)
//	src := asset.Source("bird-1", scene.RandomStart, trajectory)
//
// Decoding goes through the audio.Registry; DefaultRegistry wires in
// every formats subpackage (WAV, AIFF, MP3, Ogg Vorbis).
package soundbank
