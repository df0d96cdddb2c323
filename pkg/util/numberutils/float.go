package numberutils

import "math"

// RoundHalfUp rounds to the nearest integer, with halves rounded toward positive infinity.
// 21.5 becomes 22 and -2.5 becomes -2.
func RoundHalfUp(f float64) int {
	return int(math.Floor(f + 0.5))
}
