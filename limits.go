package values

import "math"

const (
	// MaxInt is the largest representable signed machine integer.
	MaxInt = math.MaxInt

	// MinInt is the smallest representable signed machine integer.
	MinInt = math.MinInt

	// MaxFloat is the largest finite single-precision value.
	MaxFloat = math.MaxFloat32

	// MinFloat is the smallest positive normalized single-precision value
	// (2^-126, C's FLT_MIN). The math package only exposes the subnormal
	// minimum, so this is the exact IEEE 754 constant rather than a
	// redirection.
	MinFloat = 0x1p-126

	// MaxDouble is the largest finite double-precision value.
	MaxDouble = math.MaxFloat64

	// MinDouble is the smallest positive normalized double-precision value
	// (2^-1022, C's DBL_MIN).
	MinDouble = 0x1p-1022
)
