// SPDX-License-Identifier: EPL-2.0

package place

import "errors"

var (
	ErrInvalidPlacement = errors.New("invalid placement")
)
