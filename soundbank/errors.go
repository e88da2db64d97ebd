// SPDX-License-Identifier: EPL-2.0

package soundbank

import "errors"

var (
	ErrEmptyBank    = errors.New("no decodable audio files in bank directory")
	ErrUnknownGroup = errors.New("no assets in group")
)
