package algebra

import (
	"math"

	"lukechampine.com/uint128"
)

// SqrtTolerance is the distance between two successive iterates at which Sqrt stops.
const SqrtTolerance = 1e-10

// GCD returns the greatest common divisor of a and b using Euclid's algorithm.
// GCD(0, 0) is 0.
func GCD(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// Sqrt computes the square root of x with the Babylonian method.
// Negative input yields NaN.
func Sqrt(x float64) float64 {
	switch {
	case x < 0 || math.IsNaN(x):
		return math.NaN()
	case x == 0:
		return 0
	case math.IsInf(x, 1):
		return x
	}

	n := 0.5 * (1 + x)
	for {
		prev := n
		n = 0.5 * (n + x/n)

		// past the first step the iterates decrease towards the root; once they
		// stop decreasing float spacing is coarser than the tolerance.
		if math.Abs(n-prev) < SqrtTolerance || n >= prev {
			return min(n, prev)
		}
	}
}

// floor(sqrt(math.MaxInt64))
const maxSqrtInt64 = 3037000499

// isqrt returns the integer square root of n and whether n is a perfect square.
func isqrt(n int64) (int64, bool) {
	if n < 0 {
		return 0, false
	}

	r := min(int64(math.Sqrt(float64(n))), maxSqrtInt64)
	// float64 rounding may be off by one for large n.
	for r > 0 && r*r > n {
		r--
	}
	for r < maxSqrtInt64 && (r+1)*(r+1) <= n {
		r++
	}

	return r, r*r == n
}

func absU(a int64) uint64 {
	if a < 0 {
		return uint64(-(a + 1)) + 1
	}

	return uint64(a)
}

// fromMagnitude converts a sign and magnitude back to int64.
func fromMagnitude(mag uint64, neg bool) (int64, error) {
	if neg {
		if mag > 1<<63 {
			return 0, ErrOverflow
		}

		return int64(^mag + 1), nil
	}

	if mag > math.MaxInt64 {
		return 0, ErrOverflow
	}

	return int64(mag), nil
}

// mulInt64 returns a * b, failing with ErrOverflow when the product does not fit in int64.
func mulInt64(a, b int64) (int64, error) {
	// a 64x64 product always fits in 128 bits.
	p := uint128.From64(absU(a)).Mul64(absU(b))
	if p.Hi != 0 {
		return 0, ErrOverflow
	}

	return fromMagnitude(p.Lo, (a < 0) != (b < 0) && !p.IsZero())
}

// addInt64 returns a + b, failing with ErrOverflow when the sum does not fit in int64.
func addInt64(a, b int64) (int64, error) {
	s := a + b
	if (a > 0 && b > 0 && s < 0) || (a < 0 && b < 0 && s >= 0) {
		return 0, ErrOverflow
	}

	return s, nil
}
