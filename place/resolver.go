// SPDX-License-Identifier: EPL-2.0

package place

import (
	"fmt"
	"math/rand"

	"github.com/soundobjects/admexport/scene"
)

// Placed binds a source to its resolved start time on the timeline.
type Placed struct {
	Source *scene.SoundSource
	// Start is the resolved start offset in seconds.
	Start float64
	// MinDistance is the closest camera approach of the source's
	// trajectory, or -1 when the snapshot has no camera. Used to
	// prioritize sources when they are grouped onto shared objects.
	MinDistance float64
}

// End returns the time the placed source stops playing, truncated to
// the timeline when the audio runs past its end.
func (p *Placed) End(timeline float64) float64 {
	end := p.Start + p.Source.Duration()
	if end > timeline {
		return timeline
	}
	return end
}

// Resolver converts placement policies into start offsets. The rand
// source must not be shared with concurrent resolvers.
type Resolver struct {
	rand *rand.Rand
}

func NewResolver(rnd *rand.Rand) *Resolver {
	return &Resolver{rand: rnd}
}

// Resolve computes a start time for every source in the snapshot, in
// submission order. Sources using a random policy consume the rand
// source deterministically.
func (r *Resolver) Resolve(snap *scene.Snapshot) ([]*Placed, error) {
	placed := make([]*Placed, 0, len(snap.Sources))
	timeline := snap.Settings.Duration

	for _, src := range snap.Sources {
		start, err := r.resolveStart(src, snap)
		if err != nil {
			return nil, fmt.Errorf("source %q: %w", src.ID, err)
		}

		if src.SyncPeak {
			start -= src.PeakTime()
			if start < 0 {
				start = 0
			}
		}

		minDist := -1.0
		if len(snap.Camera) > 0 {
			minDist, _ = ClosestApproach(snap.Camera, src.Trajectory)
		}

		placed = append(placed, &Placed{
			Source:      src,
			Start:       clampStart(start, timeline, src.Duration()),
			MinDistance: minDist,
		})
	}
	return placed, nil
}

func (r *Resolver) resolveStart(src *scene.SoundSource, snap *scene.Snapshot) (float64, error) {
	timeline := snap.Settings.Duration
	duration := src.Duration()

	switch src.Policy {
	case scene.AtStart:
		return 0, nil

	case scene.RandomStart:
		if duration > timeline {
			return 0, fmt.Errorf("source runs %gs on a %gs timeline: %w",
				duration, timeline, ErrInvalidPlacement)
		}
		return r.rand.Float64() * (timeline - duration), nil

	case scene.RandomGaussianStart:
		stddev := snap.Settings.GaussianStdDev
		if stddev <= 0 {
			stddev = 1
		}
		return r.rand.NormFloat64()*stddev + timeline/2, nil

	case scene.ClosestApproachToReference:
		_, at := ClosestApproach(snap.Camera, src.Trajectory)
		return at - duration/2, nil

	default:
		return 0, fmt.Errorf("placement policy %v: %w", src.Policy, ErrInvalidPlacement)
	}
}

// clampStart confines start to [0, timeline-duration]. A source longer
// than the timeline starts at zero and is truncated downstream.
func clampStart(start, timeline, duration float64) float64 {
	latest := timeline - duration
	if latest < 0 {
		latest = 0
	}
	if start > latest {
		start = latest
	}
	if start < 0 {
		start = 0
	}
	return start
}
