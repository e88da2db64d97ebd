// SPDX-License-Identifier: EPL-2.0

package bwav

import "errors"

var (
	ErrChunkSizeOverflow = errors.New("chunk size exceeds riff 32-bit limit")
	ErrInvalidFormat     = errors.New("invalid pcm format")
	ErrUnsupportedFormat = errors.New("unsupported wave format")
	ErrMalformedChunk    = errors.New("malformed chunk")
)
