// SPDX-License-Identifier: EPL-2.0

package adm

import "errors"

var (
	ErrNoProgramme    = errors.New("builder has no programme")
	ErrNoContent      = errors.New("builder has no content")
	ErrNoObjects      = errors.New("builder has no objects")
	ErrDuplicateTrack = errors.New("duplicate track index")
	ErrEmptyObject    = errors.New("object has no audible interval")
)
