package metrics

import "math"

// DefaultSharpness is the SoftMin smoothing parameter used when a caller
// has no reason to pick another; higher values track the exact minimum
// more closely.
const DefaultSharpness = 10.0

// SoftMin is a smooth, differentiable approximation of min(a, b) using
// the log-sum-exp form:
//
//	soft_min(a, b) = -1/alpha * log(exp(-alpha*a) + exp(-alpha*b))
//
// It exists for gradient-based consumers only. The quality time score
// always uses the exact min; SoftMin is never on that path, so the
// discontinuous cap behavior stays the testable default.
func SoftMin(a, b, alpha float64) float64 {
	// Shift by the max exponent before exponentiating so large inputs
	// cannot underflow both terms to zero.
	shift := math.Max(-alpha*a, -alpha*b)
	return -1 / alpha * (shift + math.Log(math.Exp(-alpha*a-shift)+math.Exp(-alpha*b-shift)))
}
