package core

// Epsilon is the single tolerance used by every geometric comparison.
const Epsilon = 1e-10

// IsZero reports whether x is zero within Epsilon
func IsZero(x float64) bool {
	return x < Epsilon && x > -Epsilon
}

// AlignZero snaps values within Epsilon of zero to exactly zero
func AlignZero(x float64) float64 {
	if IsZero(x) {
		return 0
	}
	return x
}

// CompareSign reports whether a and b are both strictly positive or both
// strictly negative after alignment. Zero never shares a sign.
func CompareSign(a, b float64) bool {
	a, b = AlignZero(a), AlignZero(b)
	return (a > 0 && b > 0) || (a < 0 && b < 0)
}
