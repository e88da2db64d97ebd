// SPDX-License-Identifier: EPL-2.0

package place

import (
	"sort"

	"github.com/soundobjects/admexport/scene"
)

// Envelope describes how a source's trajectory relates to the camera
// over time: when it enters and leaves a considered range and when it
// comes closest.
type Envelope struct {
	ConsideredRange float64
	// EntersRange and ExitsRange are -1 when the trajectory never
	// crosses into or out of the considered range.
	EntersRange float64
	ExitsRange  float64
	ClosestAt   float64
	MinDistance float64
}

// ClosestApproach returns the minimal camera distance of the trajectory
// and the time it occurs. Both trajectories are evaluated at the union
// of their keyed times; on equal distances the earliest time wins.
func ClosestApproach(camera, traj scene.Trajectory) (dist, at float64) {
	times := sampleTimes(camera, traj)
	dist = -1
	for _, tm := range times {
		d := traj.At(tm).Sub(camera.At(tm)).Len()
		if dist < 0 || d < dist {
			dist = d
			at = tm
		}
	}
	return dist, at
}

// CameraEnvelope computes the spatial envelope of a trajectory against
// the camera with the given considered range.
func CameraEnvelope(camera, traj scene.Trajectory, consideredRange float64) Envelope {
	env := Envelope{
		ConsideredRange: consideredRange,
		EntersRange:     -1,
		ExitsRange:      -1,
		MinDistance:     -1,
	}

	inRange := false
	for _, tm := range sampleTimes(camera, traj) {
		d := traj.At(tm).Sub(camera.At(tm)).Len()

		if d < consideredRange && !inRange {
			env.EntersRange = tm
			inRange = true
		}
		if env.MinDistance < 0 || d < env.MinDistance {
			env.MinDistance = d
			env.ClosestAt = tm
		}
		if d > consideredRange && inRange {
			env.ExitsRange = tm
			break
		}
	}
	return env
}

// sampleTimes merges the keyed times of both trajectories, sorted and
// deduplicated.
func sampleTimes(a, b scene.Trajectory) []float64 {
	times := make([]float64, 0, len(a)+len(b))
	for _, s := range a {
		times = append(times, s.Time)
	}
	for _, s := range b {
		times = append(times, s.Time)
	}
	sort.Float64s(times)

	out := times[:0]
	for i, tm := range times {
		if i == 0 || tm != out[len(out)-1] {
			out = append(out, tm)
		}
	}
	return out
}
