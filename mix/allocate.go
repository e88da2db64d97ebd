// SPDX-License-Identifier: EPL-2.0

package mix

import "fmt"

// MaxChannels is the ceiling on output tracks. WAVE's extensible
// format runs out of meaningful channel masks well before its uint16
// channel field does; 128 matches what ADM toolchains accept.
const MaxChannels = 128

// Allocate assigns each object track its 1-based, contiguous track
// index in slice order. It fails with ErrCapacityExceeded rather than
// truncating when there are more objects than the container can carry.
func Allocate(groups []*ObjectTrack) error {
	if len(groups) > MaxChannels {
		return fmt.Errorf("%d objects, container limit %d: %w",
			len(groups), MaxChannels, ErrCapacityExceeded)
	}
	for i, g := range groups {
		g.TrackIndex = i + 1
	}
	return nil
}
