// SPDX-License-Identifier: EPL-2.0

// Package bwav reads and writes Broadcast-WAV containers carrying ADM
// metadata.
//
// A File is the chunk-level view of one container: the PCM format, the
// EBU bext description, the chna track table, the axml payload and the
// interleaved samples. Encode serializes it as a single RIFF/WAVE
// stream; WriteFile adds the atomic write discipline the exporter
// needs (write to a temporary file, rename into place, never leave a
// truncated file at the target path).
//
// # Chunk layout
//
//	RIFF/WAVE
//	  fmt   PCM, or WAVE_FORMAT_EXTENSIBLE above two channels
//	  bext  EBU broadcast extension, version 0
//	  chna  track UID -> channel mapping (BS.2076 annex)
//	  axml  ADM XML document, UTF-8
//	  data  interleaved little-endian PCM, 16 or 24 bit
//
// Odd-sized payloads are padded with one zero byte that is not counted
// in the chunk's size field, per RIFF.
//
// The Reader tolerates any chunk order and unknown chunks, so files
// written by other ADM tools parse too.
package bwav
