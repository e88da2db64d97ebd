// SPDX-License-Identifier: EPL-2.0

package adm

import (
	"fmt"
	"strconv"

	"github.com/soundobjects/admexport/mix"
	"github.com/soundobjects/admexport/scene"
)

// BlockOptions control how trajectories become audioBlockFormats.
type BlockOptions struct {
	SampleRate int
	// RoomSize normalizes positions into the room cube, see
	// scene.RoomNorm.
	RoomSize float64
	// InterpolationLength is the jump interpolation window. Zero means
	// DefaultInterpolationLength.
	InterpolationLength Timecode
}

// DefaultInterpolationLength is a short snap window that keeps panner
// moves inaudible as zipper noise without smearing fast trajectories.
const DefaultInterpolationLength = Timecode(10_000_000) // 10ms

// ObjectBlocks converts the trajectories of an object track's members
// into audioBlockFormats. The object's active interval starts with its
// earliest member and ends when its last member stops. Within each
// member the blocks tile the member's play range exactly: block
// boundaries fall on the member's start, its end, and every keyed
// trajectory time in between. Consecutive identical positions merge
// into one longer block.
//
// Returned times are the object's start and duration; block rtimes are
// relative to that start.
func ObjectBlocks(track *mix.ObjectTrack, timeline float64, opts BlockOptions) ([]*AudioBlockFormat, Timecode, Timecode, error) {
	rate := opts.SampleRate
	roomSize := opts.RoomSize
	if roomSize <= 0 {
		roomSize = 1
	}
	interp := opts.InterpolationLength
	if interp == 0 {
		interp = DefaultInterpolationLength
	}

	objStart := toSamples(track.ActiveStart(), rate)
	objEnd := toSamples(track.ActiveEnd(timeline), rate)
	if objEnd <= objStart {
		return nil, 0, 0, fmt.Errorf("object %q: %w", track.Name, ErrEmptyObject)
	}

	var blocks []*AudioBlockFormat
	var active Timecode // total audible time, for the tiling check

	for _, m := range track.Members {
		memberStart := toSamples(m.Start, rate)
		memberEnd := toSamples(m.End(timeline), rate)
		if memberEnd <= memberStart {
			continue
		}

		bounds := memberBounds(m.Source.Trajectory, memberStart, memberEnd, rate)
		prevInMember := false
		for i := 0; i+1 < len(bounds); i++ {
			pos := positionAt(m.Source.Trajectory, bounds[i], rate, roomSize)
			rtime := TimecodeFromSamples(bounds[i]-objStart, rate)
			duration := TimecodeFromSamples(bounds[i+1]-objStart, rate) - rtime

			if prevInMember && samePosition(blocks[len(blocks)-1].Positions, pos) {
				blocks[len(blocks)-1].Duration += duration
			} else {
				blocks = append(blocks, &AudioBlockFormat{
					RTime:     rtime,
					Duration:  duration,
					Cartesian: 1,
					Positions: pos,
					Jump: &JumpPosition{
						InterpolationLength: strconv.FormatFloat(interp.Seconds(), 'f', -1, 64),
						Flag:                "1",
					},
				})
			}
			prevInMember = true
		}

		active += TimecodeFromSamples(memberEnd-objStart, rate) -
			TimecodeFromSamples(memberStart-objStart, rate)
	}

	if len(blocks) == 0 {
		return nil, 0, 0, fmt.Errorf("object %q: %w", track.Name, ErrEmptyObject)
	}
	if err := checkTiling(track.Name, blocks, active); err != nil {
		return nil, 0, 0, err
	}

	start := TimecodeFromSamples(objStart, rate)
	duration := TimecodeFromSamples(objEnd, rate) - start
	return blocks, start, duration, nil
}

func toSamples(seconds float64, rate int) int64 {
	return int64(seconds*float64(rate) + 0.5)
}

// memberBounds returns the block boundary sample positions of one
// member: its start, its end, and every keyed trajectory time strictly
// inside that range.
func memberBounds(traj scene.Trajectory, start, end int64, rate int) []int64 {
	bounds := []int64{start}
	for _, ps := range traj {
		s := toSamples(ps.Time, rate)
		if s > bounds[len(bounds)-1] && s < end {
			bounds = append(bounds, s)
		}
	}
	return append(bounds, end)
}

func positionAt(traj scene.Trajectory, sample int64, rate int, roomSize float64) []Position {
	pos := scene.RoomNorm(traj.At(float64(sample)/float64(rate)), roomSize)
	return []Position{
		{Coordinate: "X", Value: formatCoord(pos.X)},
		{Coordinate: "Y", Value: formatCoord(pos.Y)},
		{Coordinate: "Z", Value: formatCoord(pos.Z)},
	}
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func samePosition(a, b []Position) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Coordinate != b[i].Coordinate || a[i].Value != b[i].Value {
			return false
		}
	}
	return true
}

// checkTiling verifies the block invariant: blocks are ordered, never
// overlap, and their durations sum to exactly the object's audible
// time.
func checkTiling(name string, blocks []*AudioBlockFormat, active Timecode) error {
	var total Timecode
	for i, b := range blocks {
		if b.Duration <= 0 {
			return fmt.Errorf("object %q block %d has duration %v: %w",
				name, i, b.Duration, scene.ErrMalformedTrajectory)
		}
		if i > 0 && b.RTime < blocks[i-1].RTime+blocks[i-1].Duration {
			return fmt.Errorf("object %q blocks %d and %d overlap: %w",
				name, i-1, i, scene.ErrMalformedTrajectory)
		}
		total += b.Duration
	}
	if total != active {
		return fmt.Errorf("object %q blocks cover %v of %v active: %w",
			name, total, active, scene.ErrMalformedTrajectory)
	}
	return nil
}
