//go:build amd64 || arm64 || loong64 || mips64 || mips64le || ppc64 || ppc64le || riscv64 || s390x || wasm

package values

import "math"

// Long bounds for 64-bit targets. The build-tag lists here and in
// limits_32bit.go are mutually exclusive and cover every shipping GOARCH;
// a new architecture must be added to one of them before this package
// compiles for it.
const (
	// MaxLong is the largest representable signed long integer.
	MaxLong = math.MaxInt64

	// MinLong is the smallest representable signed long integer.
	MinLong = math.MinInt64
)
