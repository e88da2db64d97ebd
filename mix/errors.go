// SPDX-License-Identifier: EPL-2.0

package mix

import "errors"

var (
	ErrCapacityExceeded = errors.New("capacity exceeded")
	ErrUnallocatedTrack = errors.New("object has no allocated track")
)
