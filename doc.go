// Package values provides the numeric-limit constants historically supplied
// by the BSD values.h header.
//
// # Overview
//
// Older codebases reference a small set of legacy limit names (MAXINT,
// MINLONG, MAXFLOAT, ...) that modern platforms no longer define. This
// package is the Go rendition of that compatibility surface: eight constants
// redirected to the platform's canonical limit values, resolved entirely at
// compile time.
//
// # Constants
//
//   - MaxInt / MinInt: bounds of the machine int
//   - MaxLong / MinLong: bounds of the target word ("long"), selected per
//     architecture at build time
//   - MaxFloat / MinFloat: largest finite and smallest positive normalized
//     single-precision values
//   - MaxDouble / MinDouble: largest finite and smallest positive normalized
//     double-precision values
//
// MinFloat and MinDouble follow the C FLT_MIN/DBL_MIN convention: they are
// the smallest positive normalized magnitudes, not negative bounds and not
// the subnormal minimums exposed by math.SmallestNonzeroFloat32/64.
//
// # Usage
//
//	if n > values.MaxInt/2 {
//	    // halving headroom exhausted
//	}
//
// Every constant mirrors its standard-library counterpart for the build
// target, so values compiled on different architectures track that
// architecture's real bounds.
package values
