package sphere

import "math"

// Atan2Safe is the pole-safe longitude helper promised for callers that
// convert a velocity pair back to a direction near the poles, where
// ordinary atan2(y, x) is ill-conditioned as both components vanish.
// Within machineEpsilon of the origin it reports 0 instead of an
// arbitrary angle.
func Atan2Safe(y, x float64) float64 {
	if math.Abs(y) < machineEpsilon && math.Abs(x) < machineEpsilon {
		return 0
	}
	return math.Atan2(y, x)
}
