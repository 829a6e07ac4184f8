package geom

// Clamp restricts x to [minVal, maxVal].
// The bounds are not checked for order: the lower guard is evaluated first.
// NaN is returned unchanged.
func Clamp(x, minVal, maxVal float64) float64 {
	if x < minVal {
		return minVal
	}
	if x > maxVal {
		return maxVal
	}
	return x
}
