//go:build 386 || arm || mips || mipsle

package values

import "math"

// Long bounds for 32-bit targets.
const (
	// MaxLong is the largest representable signed long integer.
	MaxLong = math.MaxInt32

	// MinLong is the smallest representable signed long integer.
	MinLong = math.MinInt32
)
