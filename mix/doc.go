// SPDX-License-Identifier: EPL-2.0

// Package mix turns placed sources into object tracks and a single
// interleaved PCM timeline.
//
// Group packs sources whose active intervals do not overlap onto shared
// object tracks, so a scene with many short sounds still fits the
// container's channel budget. Sources closest to the camera get the
// first pick of tracks. Allocate then assigns each object its 1-based
// track index, and Interleave renders every object onto its track of
// one interleaved buffer.
package mix
