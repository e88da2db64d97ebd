// SPDX-License-Identifier: EPL-2.0

package scene

import "fmt"

// PositionSample is one keyed position on a trajectory. Time is in
// seconds from the start of the export timeline.
type PositionSample struct {
	Time float64
	Pos  Vec3
}

// Trajectory is an ordered sequence of position samples, strictly
// monotonic in time. A single-sample trajectory is a static position.
type Trajectory []PositionSample

// Static builds a single-position trajectory.
func Static(pos Vec3) Trajectory {
	return Trajectory{{Time: 0, Pos: pos}}
}

// Validate reports ErrMalformedTrajectory when the trajectory is empty
// or its sample times are not strictly increasing.
func (t Trajectory) Validate() error {
	if len(t) == 0 {
		return fmt.Errorf("empty trajectory: %w", ErrMalformedTrajectory)
	}
	for i := 1; i < len(t); i++ {
		if t[i].Time <= t[i-1].Time {
			return fmt.Errorf("sample %d at %gs not after %gs: %w",
				i, t[i].Time, t[i-1].Time, ErrMalformedTrajectory)
		}
	}
	return nil
}

// IsStatic reports whether the trajectory degenerates to one position.
func (t Trajectory) IsStatic() bool {
	return len(t) == 1
}

// Start returns the time of the first sample.
func (t Trajectory) Start() float64 {
	if len(t) == 0 {
		return 0
	}
	return t[0].Time
}

// End returns the time of the last sample.
func (t Trajectory) End() float64 {
	if len(t) == 0 {
		return 0
	}
	return t[len(t)-1].Time
}

// At returns the position at time, linearly interpolated between the
// surrounding samples and clamped to the endpoints outside the
// trajectory's time range.
func (t Trajectory) At(time float64) Vec3 {
	if len(t) == 0 {
		return Vec3{}
	}
	if time <= t[0].Time {
		return t[0].Pos
	}
	last := t[len(t)-1]
	if time >= last.Time {
		return last.Pos
	}
	for i := 1; i < len(t); i++ {
		if time <= t[i].Time {
			span := t[i].Time - t[i-1].Time
			return Lerp(t[i-1].Pos, t[i].Pos, (time-t[i-1].Time)/span)
		}
	}
	return last.Pos
}
