// SPDX-License-Identifier: EPL-2.0

package mix

import (
	"sort"

	"github.com/soundobjects/admexport/place"
)

// ObjectTrack is a set of placed sources sharing one channel track of
// the output file. Members never overlap in time and are ordered by
// start time.
type ObjectTrack struct {
	// Name of the ADM object, taken from the earliest member.
	Name    string
	Members []*place.Placed
	// TrackIndex is the 1-based output track, assigned by Allocate.
	TrackIndex int
}

// ActiveStart is the start time of the earliest member.
func (o *ObjectTrack) ActiveStart() float64 {
	return o.Members[0].Start
}

// ActiveEnd is the stop time of the last member, truncated to the
// timeline.
func (o *ObjectTrack) ActiveEnd(timeline float64) float64 {
	return o.Members[len(o.Members)-1].End(timeline)
}

// overlaps reports whether two half-open play intervals intersect.
func overlaps(aStart, aEnd, bStart, bEnd float64) bool {
	return aStart < bEnd && bStart < aEnd
}

func (o *ObjectTrack) accepts(p *place.Placed, timeline float64) bool {
	for _, m := range o.Members {
		if overlaps(m.Start, m.End(timeline), p.Start, p.End(timeline)) {
			return false
		}
	}
	return true
}

// Group packs placed sources into object tracks. Sources are offered
// tracks in order of their closest camera approach, nearest first, and
// land on the first track none of whose members they overlap. When
// maxObjects > 0 only that many tracks are kept; sources on the
// overflow tracks are returned as dropped.
func Group(placed []*place.Placed, timeline float64, maxObjects int) (groups []*ObjectTrack, dropped []*place.Placed) {
	byPriority := make([]*place.Placed, len(placed))
	copy(byPriority, placed)
	sort.SliceStable(byPriority, func(i, j int) bool {
		return byPriority[i].MinDistance < byPriority[j].MinDistance
	})

	for _, p := range byPriority {
		assigned := false
		for _, g := range groups {
			if g.accepts(p, timeline) {
				g.Members = append(g.Members, p)
				assigned = true
				break
			}
		}
		if !assigned {
			groups = append(groups, &ObjectTrack{Members: []*place.Placed{p}})
		}
	}

	for _, g := range groups {
		sort.SliceStable(g.Members, func(i, j int) bool {
			return g.Members[i].Start < g.Members[j].Start
		})
		g.Name = g.Members[0].Source.Name
	}

	if maxObjects > 0 && len(groups) > maxObjects {
		for _, g := range groups[maxObjects:] {
			dropped = append(dropped, g.Members...)
		}
		groups = groups[:maxObjects]
	}
	return groups, dropped
}
