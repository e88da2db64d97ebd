// SPDX-License-Identifier: EPL-2.0

package bwav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-audio/riff"
)

// Decode parses a Broadcast-WAV stream back into a File. Chunk order
// does not matter and unknown chunks are skipped, so files written by
// other ADM tools parse too.
func Decode(r io.Reader) (*File, error) {
	parser := riff.New(r)
	if err := parser.ParseHeaders(); err != nil {
		return nil, fmt.Errorf("parsing riff headers: %w", err)
	}

	f := &File{}
	var data []byte

	for {
		chunk, err := parser.NextChunk()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("walking chunks: %w", err)
		}

		switch string(chunk.ID[:]) {
		case "fmt ":
			payload, err := chunkBytes(chunk)
			if err != nil {
				return nil, err
			}
			if err := f.decodeFmt(payload); err != nil {
				return nil, err
			}
		case "bext":
			payload, err := chunkBytes(chunk)
			if err != nil {
				return nil, err
			}
			if f.Bext, err = decodeBext(payload); err != nil {
				return nil, err
			}
		case "chna":
			payload, err := chunkBytes(chunk)
			if err != nil {
				return nil, err
			}
			if f.Chna, err = decodeChna(payload); err != nil {
				return nil, err
			}
		case "axml":
			payload, err := chunkBytes(chunk)
			if err != nil {
				return nil, err
			}
			// the riff parser rounds odd chunks up to the pad byte
			f.AXML = bytes.TrimRight(payload, "\x00")
		case "data":
			if data, err = chunkBytes(chunk); err != nil {
				return nil, err
			}
		default:
			chunk.Done()
		}
	}

	if f.Format.Channels == 0 {
		return nil, fmt.Errorf("no fmt chunk: %w", ErrMalformedChunk)
	}
	if data == nil {
		return nil, fmt.Errorf("no data chunk: %w", ErrMalformedChunk)
	}
	f.decodePCM(data)
	return f, nil
}

// ReadFile opens and decodes one file.
func ReadFile(path string) (*File, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer file.Close()

	f, err := Decode(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// chunkBytes drains one chunk's payload. Reads go through the chunk
// itself so its position advances and Done has nothing left to skip;
// reading the underlying stream directly would desynchronize the walk.
func chunkBytes(chunk *riff.Chunk) ([]byte, error) {
	buf := make([]byte, chunk.Size)
	if _, err := io.ReadFull(chunk, buf); err != nil && !errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, fmt.Errorf("reading %s chunk: %w", string(chunk.ID[:]), err)
	}
	chunk.Done()
	return buf, nil
}

func (f *File) decodeFmt(payload []byte) error {
	if len(payload) < fmtChunkSize {
		return fmt.Errorf("fmt chunk %d bytes: %w", len(payload), ErrMalformedChunk)
	}
	tag := binary.LittleEndian.Uint16(payload[0:2])
	f.Format = FormatInfo{
		Channels:   int(binary.LittleEndian.Uint16(payload[2:4])),
		SampleRate: int(binary.LittleEndian.Uint32(payload[4:8])),
		BitDepth:   int(binary.LittleEndian.Uint16(payload[14:16])),
	}

	switch tag {
	case formatPCM:
		return nil
	case formatExtensible:
		if len(payload) < fmtExtensibleChunkSize {
			return fmt.Errorf("extensible fmt chunk %d bytes: %w", len(payload), ErrMalformedChunk)
		}
		if !bytes.Equal(payload[24:40], pcmSubFormat[:]) {
			return fmt.Errorf("sub-format is not PCM: %w", ErrUnsupportedFormat)
		}
		return nil
	default:
		return fmt.Errorf("format tag 0x%04X: %w", tag, ErrUnsupportedFormat)
	}
}

func (f *File) decodePCM(data []byte) {
	bps := f.Format.bytesPerSample()
	align := f.Format.blockAlign()
	if bps == 0 || align == 0 {
		return
	}
	// drop the pad byte or any trailing partial frame
	n := len(data) - len(data)%align
	f.PCM = make([]int, 0, n/bps)

	for off := 0; off < n; off += bps {
		switch bps {
		case 2:
			f.PCM = append(f.PCM, int(int16(binary.LittleEndian.Uint16(data[off:off+2]))))
		case 3:
			v := int32(data[off]) | int32(data[off+1])<<8 | int32(data[off+2])<<16
			if v&0x800000 != 0 {
				v |= ^int32(0xFFFFFF) // sign extend
			}
			f.PCM = append(f.PCM, int(v))
		}
	}
}
