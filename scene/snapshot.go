// SPDX-License-Identifier: EPL-2.0

package scene

import "fmt"

// Settings are the global export parameters shared by every source in
// a snapshot.
type Settings struct {
	// SampleRate of the output file in Hz. Every source must match.
	SampleRate int
	// BitDepth of the output PCM, 16 or 24. Every source must match.
	BitDepth int
	// Duration of the export timeline in seconds.
	Duration float64
	// RoomSize is the distance from the listener to the front room
	// boundary, used to normalize positions into the room cube.
	RoomSize float64
	// MaxObjects caps how many ADM objects the export may produce.
	// Zero means no cap beyond the container's channel limit.
	MaxObjects int
	// GaussianStdDev is the standard deviation, in seconds, used by
	// RandomGaussianStart placement.
	GaussianStdDev float64
	// Programme names the ADM audioProgramme, typically the scene name.
	Programme string
}

// Snapshot is the immutable input of one export invocation.
type Snapshot struct {
	Sources []*SoundSource
	// Camera is the trajectory of the moving reference point. Required
	// when any source uses ClosestApproachToReference.
	Camera   Trajectory
	Settings Settings
}

// Validate checks the snapshot against the export invariants: at least
// one source, uniform audio format across sources matching the
// settings, valid trajectories, and a camera trajectory whenever a
// source placement needs one.
func (s *Snapshot) Validate() error {
	if len(s.Sources) == 0 {
		return ErrNoSources
	}
	if s.Settings.SampleRate <= 0 {
		return fmt.Errorf("sample rate %d: %w", s.Settings.SampleRate, ErrInconsistentAudioFormat)
	}
	if s.Settings.BitDepth != 16 && s.Settings.BitDepth != 24 {
		return fmt.Errorf("bit depth %d: %w", s.Settings.BitDepth, ErrInconsistentAudioFormat)
	}
	if s.Settings.Duration <= 0 {
		return fmt.Errorf("timeline duration %gs: %w", s.Settings.Duration, ErrInvalidSettings)
	}
	if s.Settings.RoomSize < 0 {
		return fmt.Errorf("room size %g: %w", s.Settings.RoomSize, ErrInvalidSettings)
	}

	needCamera := false
	for _, src := range s.Sources {
		if src.PCM == nil || src.PCM.Format == nil {
			return fmt.Errorf("source %q has no audio: %w", src.ID, ErrInconsistentAudioFormat)
		}
		if src.PCM.Format.NumChannels != 1 {
			return fmt.Errorf("source %q has %d channels, want mono: %w",
				src.ID, src.PCM.Format.NumChannels, ErrInconsistentAudioFormat)
		}
		if src.SampleRate() != s.Settings.SampleRate {
			return fmt.Errorf("source %q sample rate %d, session %d: %w",
				src.ID, src.SampleRate(), s.Settings.SampleRate, ErrInconsistentAudioFormat)
		}
		if src.BitDepth != s.Settings.BitDepth {
			return fmt.Errorf("source %q bit depth %d, session %d: %w",
				src.ID, src.BitDepth, s.Settings.BitDepth, ErrInconsistentAudioFormat)
		}
		if err := src.Trajectory.Validate(); err != nil {
			return fmt.Errorf("source %q: %w", src.ID, err)
		}
		if src.Policy == ClosestApproachToReference {
			needCamera = true
		}
	}

	if needCamera {
		if len(s.Camera) == 0 {
			return ErrMissingCamera
		}
		if err := s.Camera.Validate(); err != nil {
			return fmt.Errorf("camera: %w", err)
		}
	}
	return nil
}
