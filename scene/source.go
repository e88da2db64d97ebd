// SPDX-License-Identifier: EPL-2.0

package scene

import (
	"fmt"

	goaudio "github.com/go-audio/audio"
)

// PlacementPolicy selects how a source's start time on the export
// timeline is chosen.
type PlacementPolicy int

const (
	// AtStart plays the source from the beginning of the timeline.
	AtStart PlacementPolicy = iota
	// RandomStart plays the source once, at a uniformly random time.
	RandomStart
	// RandomGaussianStart plays the source once, at a gaussian random
	// time centered on the middle of the timeline.
	RandomGaussianStart
	// ClosestApproachToReference plays the source centered on the
	// moment its trajectory comes closest to the camera.
	ClosestApproachToReference
)

func (p PlacementPolicy) String() string {
	switch p {
	case AtStart:
		return "at-start"
	case RandomStart:
		return "random"
	case RandomGaussianStart:
		return "random-gaussian"
	case ClosestApproachToReference:
		return "closest-approach"
	default:
		return "unknown"
	}
}

// ParsePolicy is the inverse of String. Empty means AtStart.
func ParsePolicy(s string) (PlacementPolicy, error) {
	switch s {
	case "", "at-start":
		return AtStart, nil
	case "random":
		return RandomStart, nil
	case "random-gaussian":
		return RandomGaussianStart, nil
	case "closest-approach":
		return ClosestApproachToReference, nil
	default:
		return 0, fmt.Errorf("placement policy %q: %w", s, ErrInvalidSettings)
	}
}

// SoundSource is one mono audio asset to be placed on the timeline and
// rendered as (part of) an ADM object.
type SoundSource struct {
	// ID uniquely identifies the source within a snapshot.
	ID string
	// Name is the display name, used for the ADM object name.
	Name string
	// Group is an optional sound bank prefix the source was drawn from.
	Group string

	// PCM holds the source's mono samples. Format must be non-nil with
	// NumChannels == 1.
	PCM *goaudio.IntBuffer
	// BitDepth of the PCM data, 16 or 24.
	BitDepth int

	Policy     PlacementPolicy
	Trajectory Trajectory

	// SyncPeak shifts the start time so that the loudest sample of the
	// audio, rather than its first sample, lands on the trigger time.
	SyncPeak bool
}

// SampleRate of the source audio in Hz.
func (s *SoundSource) SampleRate() int {
	if s.PCM == nil || s.PCM.Format == nil {
		return 0
	}
	return s.PCM.Format.SampleRate
}

// NumSamples is the length of the source audio in samples.
func (s *SoundSource) NumSamples() int {
	if s.PCM == nil {
		return 0
	}
	return len(s.PCM.Data)
}

// Duration of the source audio in seconds.
func (s *SoundSource) Duration() float64 {
	rate := s.SampleRate()
	if rate == 0 {
		return 0
	}
	return float64(s.NumSamples()) / float64(rate)
}

// PeakTime returns the time in seconds of the loudest sample. The first
// of several equally loud samples wins.
func (s *SoundSource) PeakTime() float64 {
	rate := s.SampleRate()
	if rate == 0 || s.NumSamples() == 0 {
		return 0
	}
	peakAt, peak := 0, 0
	for i, v := range s.PCM.Data {
		if v < 0 {
			v = -v
		}
		if v > peak {
			peak = v
			peakAt = i
		}
	}
	return float64(peakAt) / float64(rate)
}
