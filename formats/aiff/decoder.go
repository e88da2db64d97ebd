// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"fmt"
	"io"

	goaiff "github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"

	"github.com/soundobjects/admexport/audio"
)

// source streams float32 samples out of a fully decoded buffer.
type source struct {
	buf   *goaudio.IntBuffer
	scale float32
	pos   int
}

func (s *source) SampleRate() int { return s.buf.Format.SampleRate }
func (s *source) Channels() int   { return s.buf.Format.NumChannels }
func (s *source) Close() error    { return nil }

func (s *source) ReadSamples(dst []float32) (int, error) {
	if s.pos >= len(s.buf.Data) {
		return 0, io.EOF
	}

	n := len(dst)
	if remain := len(s.buf.Data) - s.pos; n > remain {
		n = remain
	}
	for i := range n {
		dst[i] = float32(s.buf.Data[s.pos+i]) * s.scale
	}
	s.pos += n

	if s.pos >= len(s.buf.Data) {
		return n, io.EOF
	}
	return n, nil
}

type Decoder struct{}

// Decode parses an AIFF stream. go-audio needs a seeker, so the whole
// stream is buffered first.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading aiff stream: %w", err)
	}

	dec := goaiff.NewDecoder(bytes.NewReader(raw))
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("decoding aiff: %w", err)
	}
	if buf.Format == nil || len(buf.Data) == 0 {
		return nil, ErrNotAiffFile
	}

	bitDepth := int(dec.BitDepth)
	if bitDepth < 8 || bitDepth > 32 {
		return nil, fmt.Errorf("%d bit: %w", bitDepth, ErrUnsupportedBitDepth)
	}

	return &source{
		buf:   buf,
		scale: 1 / float32(int64(1)<<(bitDepth-1)),
	}, nil
}
