package utils

import (
	"math"
)

// POW raises x to a small integer power by repeated squaring, falling back to
// math.Pow for large exponents
func POW(x float64, pp int) (y float64) {
	var (
		p = pp
	)
	if pp > 16 || pp < -16 {
		return math.Pow(x, float64(pp))
	}
	if p < 0 {
		p = -p
	}
	y = 1
	for base := x; p > 0; p >>= 1 {
		if p&1 == 1 {
			y *= base
		}
		base *= base
	}
	if pp < 0 {
		y = 1. / y
	}
	return
}

// IsFinite is false for any NaN or infinite entry
func IsFinite(vals ...float64) bool {
	for _, f := range vals {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}
