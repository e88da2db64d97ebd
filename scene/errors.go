// SPDX-License-Identifier: EPL-2.0

package scene

import "errors"

var (
	ErrMalformedTrajectory     = errors.New("malformed trajectory")
	ErrInconsistentAudioFormat = errors.New("inconsistent audio format")
	ErrMissingCamera           = errors.New("camera trajectory required for closest-approach placement")
	ErrNoSources               = errors.New("snapshot has no sources")
	ErrInvalidSettings         = errors.New("invalid export settings")
)
