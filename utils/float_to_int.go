// SPDX-License-Identifier: EPL-2.0

package utils

// Float32ToInt16 clamps x to [-1, 1] and scales it to a signed 16-bit
// sample.
func Float32ToInt16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// 32767 for positive max to avoid overflow
	return int16(x * 32767.0)
}

// Float32ToInt24 clamps x to [-1, 1] and scales it to a signed 24-bit
// sample carried in an int32.
func Float32ToInt24(x float32) int32 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	return int32(x * 8388607.0)
}
