// SPDX-License-Identifier: EPL-2.0

package mix

import (
	"fmt"

	"github.com/soundobjects/admexport/scene"
)

// Interleave renders every object track onto its channel of a single
// interleaved PCM buffer spanning the whole timeline. Each member's
// samples are copied in at its start offset and truncated at the
// timeline end. Samples are clipped to the bit depth's range.
func Interleave(groups []*ObjectTrack, settings scene.Settings) ([]int, error) {
	for _, g := range groups {
		if g.TrackIndex == 0 {
			return nil, fmt.Errorf("object %q has no track: %w", g.Name, ErrUnallocatedTrack)
		}
	}

	channels := len(groups)
	frames := int(settings.Duration*float64(settings.SampleRate) + 0.5)
	buf := make([]int, frames*channels)

	limit := 1 << (settings.BitDepth - 1)
	for _, g := range groups {
		ch := g.TrackIndex - 1
		for _, m := range g.Members {
			startFrame := int(m.Start*float64(settings.SampleRate) + 0.5)
			for i, v := range m.Source.PCM.Data {
				frame := startFrame + i
				if frame >= frames {
					break
				}
				v += buf[frame*channels+ch]
				if v > limit-1 {
					v = limit - 1
				} else if v < -limit {
					v = -limit
				}
				buf[frame*channels+ch] = v
			}
		}
	}
	return buf, nil
}
