// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// negScale is the magnitude of the most negative int16. Negative samples are
// scaled by it so that -1.0 and math.MinInt16 map onto each other.
const negScale = -math.MinInt16

// Float64ToInt16 scales a normalized sample in [-1, 1] to the int16 range,
// rounding to the nearest integer. Positive values scale by 32767 and
// negative values by 32768. Out of range input is clamped and NaN maps to
// silence.
func Float64ToInt16(x float64) int16 {
	if math.IsNaN(x) {
		return 0
	}

	var v float64
	if x < 0 {
		v = math.Round(x * negScale)
	} else {
		v = math.Round(x * math.MaxInt16)
	}

	if v > math.MaxInt16 {
		return math.MaxInt16
	} else if v < math.MinInt16 {
		return math.MinInt16
	}

	return int16(v)
}

// Float32ToInt16 is Float64ToInt16 for float32 input.
func Float32ToInt16(x float32) int16 {
	return Float64ToInt16(float64(x))
}

// Int16ToFloat64 is the inverse scaling of Float64ToInt16. The result is
// always within [-1, 1].
func Int16ToFloat64(v int16) float64 {
	if v < 0 {
		return float64(v) / negScale
	}
	return float64(v) / math.MaxInt16
}
