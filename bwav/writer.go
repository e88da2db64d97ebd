// SPDX-License-Identifier: EPL-2.0

package bwav

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
)

// File is one Broadcast-WAV container, ready to encode or freshly
// decoded.
type File struct {
	Format FormatInfo
	Bext   *Bext
	// AXML is the ADM document, UTF-8 XML.
	AXML []byte
	Chna []ChnaEntry
	// PCM holds interleaved samples, one int per sample.
	PCM []int
}

// Encode writes the complete RIFF stream to w. The chunk sizes are
// computed up front, so a stream that would overflow the 32-bit RIFF
// size field fails with ErrChunkSizeOverflow before a single byte is
// written.
func (f *File) Encode(w io.Writer) error {
	if err := f.Format.validate(); err != nil {
		return err
	}
	if len(f.PCM)%f.Format.Channels != 0 {
		return fmt.Errorf("%d samples across %d channels: %w",
			len(f.PCM), f.Format.Channels, ErrInvalidFormat)
	}

	fmtSize := fmtChunkSize
	if f.Format.extensible() {
		fmtSize = fmtExtensibleChunkSize
	}
	dataSize := int64(len(f.PCM)) * int64(f.Format.bytesPerSample())

	riffSize := int64(4) // "WAVE"
	riffSize += chunkTotal(int64(fmtSize))
	if f.Bext != nil {
		riffSize += chunkTotal(bextChunkSize)
	}
	if len(f.Chna) > 0 {
		riffSize += chunkTotal(int64(4 + chnaEntrySize*len(f.Chna)))
	}
	if len(f.AXML) > 0 {
		riffSize += chunkTotal(int64(len(f.AXML)))
	}
	riffSize += chunkTotal(dataSize)

	if riffSize > math.MaxUint32 {
		return fmt.Errorf("riff size %d: %w", riffSize, ErrChunkSizeOverflow)
	}

	var header [12]byte
	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], uint32(riffSize))
	copy(header[8:12], "WAVE")
	if _, err := w.Write(header[:]); err != nil {
		return fmt.Errorf("writing riff header: %w", err)
	}

	if err := writeChunk(w, "fmt ", f.encodeFmt()); err != nil {
		return err
	}
	if f.Bext != nil {
		if err := writeChunk(w, "bext", f.Bext.encode()); err != nil {
			return err
		}
	}
	if len(f.Chna) > 0 {
		if err := writeChunk(w, "chna", encodeChna(f.Chna)); err != nil {
			return err
		}
	}
	if len(f.AXML) > 0 {
		if err := writeChunk(w, "axml", f.AXML); err != nil {
			return err
		}
	}
	return f.writeData(w, dataSize)
}

func chunkTotal(payload int64) int64 {
	return 8 + payload + payload%2
}

func writeChunk(w io.Writer, id string, payload []byte) error {
	var header [8]byte
	copy(header[0:4], id)
	binary.LittleEndian.PutUint32(header[4:8], uint32(len(payload)))
	if _, err := w.Write(header[:]); err != nil {
		return fmt.Errorf("writing %s chunk header: %w", id, err)
	}
	if _, err := w.Write(payload); err != nil {
		return fmt.Errorf("writing %s chunk: %w", id, err)
	}
	if len(payload)%2 == 1 {
		if _, err := w.Write([]byte{0}); err != nil {
			return fmt.Errorf("padding %s chunk: %w", id, err)
		}
	}
	return nil
}

func (f *File) encodeFmt() []byte {
	byteRate := f.Format.SampleRate * f.Format.blockAlign()

	if !f.Format.extensible() {
		buf := make([]byte, fmtChunkSize)
		binary.LittleEndian.PutUint16(buf[0:2], formatPCM)
		binary.LittleEndian.PutUint16(buf[2:4], uint16(f.Format.Channels))
		binary.LittleEndian.PutUint32(buf[4:8], uint32(f.Format.SampleRate))
		binary.LittleEndian.PutUint32(buf[8:12], uint32(byteRate))
		binary.LittleEndian.PutUint16(buf[12:14], uint16(f.Format.blockAlign()))
		binary.LittleEndian.PutUint16(buf[14:16], uint16(f.Format.BitDepth))
		return buf
	}

	buf := make([]byte, fmtExtensibleChunkSize)
	binary.LittleEndian.PutUint16(buf[0:2], formatExtensible)
	binary.LittleEndian.PutUint16(buf[2:4], uint16(f.Format.Channels))
	binary.LittleEndian.PutUint32(buf[4:8], uint32(f.Format.SampleRate))
	binary.LittleEndian.PutUint32(buf[8:12], uint32(byteRate))
	binary.LittleEndian.PutUint16(buf[12:14], uint16(f.Format.blockAlign()))
	binary.LittleEndian.PutUint16(buf[14:16], uint16(f.Format.BitDepth))
	binary.LittleEndian.PutUint16(buf[16:18], 22) // cbSize
	binary.LittleEndian.PutUint16(buf[18:20], uint16(f.Format.BitDepth))
	binary.LittleEndian.PutUint32(buf[20:24], 0) // no speaker mask for objects
	copy(buf[24:40], pcmSubFormat[:])
	return buf
}

// writeData streams the interleaved samples in page-sized batches to
// keep memory flat for long exports.
func (f *File) writeData(w io.Writer, dataSize int64) error {
	var header [8]byte
	copy(header[0:4], "data")
	binary.LittleEndian.PutUint32(header[4:8], uint32(dataSize))
	if _, err := w.Write(header[:]); err != nil {
		return fmt.Errorf("writing data chunk header: %w", err)
	}

	bps := f.Format.bytesPerSample()
	const samplesPerBatch = 8192
	buf := make([]byte, samplesPerBatch*bps)

	for start := 0; start < len(f.PCM); start += samplesPerBatch {
		end := min(start+samplesPerBatch, len(f.PCM))
		n := 0
		for _, v := range f.PCM[start:end] {
			switch bps {
			case 2:
				binary.LittleEndian.PutUint16(buf[n:n+2], uint16(int16(v)))
			case 3:
				u := uint32(v)
				buf[n] = byte(u)
				buf[n+1] = byte(u >> 8)
				buf[n+2] = byte(u >> 16)
			}
			n += bps
		}
		if _, err := w.Write(buf[:n]); err != nil {
			return fmt.Errorf("writing data chunk: %w", err)
		}
	}

	if dataSize%2 == 1 {
		if _, err := w.Write([]byte{0}); err != nil {
			return fmt.Errorf("padding data chunk: %w", err)
		}
	}
	return nil
}

// WriteFile encodes into a temporary file beside path and renames it
// into place only after a successful sync. On any failure the
// temporary file is removed and the target path is left untouched.
func (f *File) WriteFile(path string) (err error) {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temporary file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmpPath)
		}
	}()

	if err = f.Encode(tmp); err != nil {
		return err
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("syncing %s: %w", tmpPath, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", tmpPath, err)
	}
	if err = os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("renaming into place: %w", err)
	}
	return nil
}
