package algebra

import (
	"math"
	"strconv"
	"strings"
)

// Number is a polynomial coefficient or a solution value.
// It is either exact (a Fraction, integers having denominator 1) or a float64.
// Operations on two exact numbers stay exact unless the result overflows int64,
// in which case they fall back to floating point. The zero value is the integer 0.
type Number struct {
	float bool
	f     float64
	q     Fraction
}

func Int(n int64) Number       { return Number{q: FromInt(n)} }
func Float(f float64) Number   { return Number{float: true, f: f} }
func Exact(q Fraction) Number  { return Number{q: q} }
func (n Number) IsFloat() bool { return n.float }

// IsInt reports whether n is an exact integer.
func (n Number) IsInt() bool {
	return !n.float && n.q.IsInt()
}

// Fraction returns the exact value of n, if any.
func (n Number) Fraction() (Fraction, bool) {
	if n.float {
		return Fraction{}, false
	}

	return n.q, true
}

// Int64 returns n as an integer when n is mathematically whole:
// an exact integer, or a float with no fractional part that fits in int64.
func (n Number) Int64() (int64, bool) {
	if !n.float {
		return n.q.Num(), n.q.IsInt()
	}

	if n.f != math.Trunc(n.f) || n.f < math.MinInt64 || n.f >= math.MaxInt64 {
		return 0, false
	}

	return int64(n.f), true
}

func (n Number) Float64() float64 {
	if n.float {
		return n.f
	}

	return n.q.Float64()
}

func (n Number) Sign() int {
	if !n.float {
		return n.q.Sign()
	}

	switch {
	case n.f < 0:
		return -1
	case n.f > 0:
		return 1
	}

	return 0
}

func (n Number) IsZero() bool { return n.Sign() == 0 }

// IsUnit reports whether |n| == 1.
func (n Number) IsUnit() bool {
	return n.Abs().Equals(Int(1))
}

func (n Number) Neg() Number {
	if n.float {
		return Float(-n.f)
	}

	if q, err := n.q.Neg(); err == nil {
		return Exact(q)
	}

	return Float(-n.Float64())
}

func (n Number) Abs() Number {
	if n.Sign() < 0 {
		return n.Neg()
	}

	return n
}

func (n Number) Add(m Number) Number {
	if !n.float && !m.float {
		if q, err := n.q.Add(m.q); err == nil {
			return Exact(q)
		}
	}

	return Float(n.Float64() + m.Float64())
}

func (n Number) Sub(m Number) Number {
	return n.Add(m.Neg())
}

func (n Number) Mul(m Number) Number {
	if !n.float && !m.float {
		if q, err := n.q.Mul(m.q); err == nil {
			return Exact(q)
		}
	}

	return Float(n.Float64() * m.Float64())
}

// Quo returns the floating point quotient n / m.
func (n Number) Quo(m Number) Number {
	return Float(n.Float64() / m.Float64())
}

// Cmp compares the values of n and m, returning -1, 0 or +1.
func (n Number) Cmp(m Number) int {
	if !n.float && !m.float {
		return n.q.Cmp(m.q)
	}

	a, b := n.Float64(), m.Float64()

	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}

	return 0
}

// Equals compares by value, so Int(5) equals Float(5).
func (n Number) Equals(m Number) bool {
	return n.Cmp(m) == 0
}

// String renders exact numbers as "n" or "n / d" and floats so that they
// always read back as floats: "5.0", "0.25", "1.5e+16", "1.0e-05".
func (n Number) String() string {
	if !n.float {
		return n.q.String()
	}

	return formatFloat(n.f)
}

func formatFloat(f float64) string {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}

	abs := math.Abs(f)
	if abs != 0 && (abs >= 1e16 || abs < 1e-4) {
		s := strconv.FormatFloat(f, 'e', -1, 64)
		mant, exp, _ := strings.Cut(s, "e")
		if !strings.Contains(mant, ".") {
			mant += ".0"
		}

		return mant + "e" + exp
	}

	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}

	return s
}

// Sqrt returns the square root of |n|. Exact numbers whose numerator and
// denominator are perfect squares keep an exact root; anything else goes
// through the Babylonian Sqrt.
func (n Number) Sqrt() Number {
	n = n.Abs()

	if q, ok := n.Fraction(); ok {
		rn, okn := isqrt(q.Num())
		rd, okd := isqrt(q.Den())

		if okn && okd {
			return Exact(Fraction{num: rn, den: rd})
		}
	}

	return Float(Sqrt(n.Float64()))
}
