// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"

	"github.com/soundobjects/admexport/utils"
)

// CaptureMono drains a source into a mono integer buffer ready for the
// export pipeline.
//
// The processing chain is built from the stages this package provides:
//
//  1. Resample to targetRate using cubic interpolation, when targetRate
//     differs from the source rate (pass 0 to keep the source rate)
//  2. Downmix to mono by averaging channels
//  3. Convert float32 samples to integers at bitDepth (16 or 24)
//
// bufferSize controls how many samples are read per iteration; 4096
// is a reasonable default.
func CaptureMono(src Source, targetRate, bitDepth, bufferSize int) (*goaudio.IntBuffer, error) {
	if bitDepth != 16 && bitDepth != 24 {
		return nil, fmt.Errorf("bit depth %d: %w", bitDepth, ErrInvalidBitDepth)
	}
	if bufferSize <= 0 {
		bufferSize = 4096
	}

	stage := src
	rate := src.SampleRate()
	if targetRate != 0 && targetRate != rate {
		stage = NewResampler(stage, targetRate)
		rate = targetRate
	}
	mono := NewMonoMixer(stage)

	var data []int
	buf := make([]float32, bufferSize)

	for {
		n, err := mono.ReadSamples(buf)
		for _, v := range buf[:n] {
			switch bitDepth {
			case 16:
				data = append(data, int(utils.Float32ToInt16(v)))
			case 24:
				data = append(data, int(utils.Float32ToInt24(v)))
			}
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading samples: %w", err)
		}
	}

	return &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: 1, SampleRate: rate},
		Data:           data,
		SourceBitDepth: bitDepth,
	}, nil
}
