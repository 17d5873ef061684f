package utils

import "math"

// CyclicalEncode maps value in [0, period) onto the unit circle.
func CyclicalEncode(value, period int) (sin, cos float64) {
	angle := 2 * math.Pi * float64(value) / float64(period)
	return math.Sin(angle), math.Cos(angle)
}
