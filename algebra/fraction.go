package algebra

import (
	"errors"
	"strconv"

	"lukechampine.com/uint128"
)

var (
	ErrZeroDenominator = errors.New("fraction denominator is zero")
	ErrOverflow        = errors.New("integer overflow")
)

// Fraction is an exact rational number num/den kept in lowest terms with den > 0.
// The zero value is 0/1.
type Fraction struct {
	num int64
	den int64 // 0 means 1, so the zero value is usable.
}

// NewFraction returns n/d normalized so that the denominator is positive
// and shares no factor with the numerator.
func NewFraction(n, d int64) (Fraction, error) {
	if d == 0 {
		return Fraction{}, ErrZeroDenominator
	}

	neg := (n < 0) != (d < 0)
	nm, dm := absU(n), absU(d)

	g := GCD(nm, dm)
	nm /= g
	dm /= g

	num, err := fromMagnitude(nm, neg && nm != 0)
	if err != nil {
		return Fraction{}, err
	}

	den, err := fromMagnitude(dm, false)
	if err != nil {
		return Fraction{}, err
	}

	return Fraction{num: num, den: den}, nil
}

// FromInt returns the fraction n/1.
func FromInt(n int64) Fraction {
	return Fraction{num: n, den: 1}
}

func (f Fraction) Num() int64 { return f.num }
func (f Fraction) Den() int64 { return f.d() }

func (f Fraction) d() int64 {
	if f.den == 0 {
		return 1
	}

	return f.den
}

func (f Fraction) IsInt() bool  { return f.d() == 1 }
func (f Fraction) IsZero() bool { return f.num == 0 }

func (f Fraction) Sign() int {
	switch {
	case f.num < 0:
		return -1
	case f.num > 0:
		return 1
	}

	return 0
}

func (f Fraction) Float64() float64 {
	return float64(f.num) / float64(f.d())
}

func (f Fraction) Add(g Fraction) (Fraction, error) {
	l, err := mulInt64(f.num, g.d())
	if err != nil {
		return Fraction{}, err
	}

	r, err := mulInt64(g.num, f.d())
	if err != nil {
		return Fraction{}, err
	}

	n, err := addInt64(l, r)
	if err != nil {
		return Fraction{}, err
	}

	d, err := mulInt64(f.d(), g.d())
	if err != nil {
		return Fraction{}, err
	}

	return NewFraction(n, d)
}

func (f Fraction) Sub(g Fraction) (Fraction, error) {
	neg, err := g.Neg()
	if err != nil {
		return Fraction{}, err
	}

	return f.Add(neg)
}

func (f Fraction) Mul(g Fraction) (Fraction, error) {
	n, err := mulInt64(f.num, g.num)
	if err != nil {
		return Fraction{}, err
	}

	d, err := mulInt64(f.d(), g.d())
	if err != nil {
		return Fraction{}, err
	}

	return NewFraction(n, d)
}

func (f Fraction) Div(g Fraction) (Fraction, error) {
	inv, err := g.Reciprocal()
	if err != nil {
		return Fraction{}, err
	}

	return f.Mul(inv)
}

// Neg fails only for the numerator math.MinInt64.
func (f Fraction) Neg() (Fraction, error) {
	n, err := mulInt64(f.num, -1)
	if err != nil {
		return Fraction{}, err
	}

	return Fraction{num: n, den: f.d()}, nil
}

func (f Fraction) Abs() (Fraction, error) {
	if f.num < 0 {
		return f.Neg()
	}

	return f, nil
}

// Reciprocal returns den/num. The reciprocal of zero is ErrZeroDenominator.
func (f Fraction) Reciprocal() (Fraction, error) {
	return NewFraction(f.d(), f.num)
}

// Cmp compares the values of f and g, returning -1, 0 or +1.
func (f Fraction) Cmp(g Fraction) int {
	fs, gs := f.Sign(), g.Sign()
	if fs != gs {
		if fs < gs {
			return -1
		}

		return 1
	}

	// both denominators are positive: compare |f.num|*g.d() with |g.num|*f.d().
	l := uint128.From64(absU(f.num)).Mul64(uint64(g.d()))
	r := uint128.From64(absU(g.num)).Mul64(uint64(f.d()))

	return fs * l.Cmp(r)
}

func (f Fraction) Equals(g Fraction) bool {
	return f.num == g.num && f.d() == g.d()
}

func (f Fraction) String() string {
	if f.d() == 1 {
		return strconv.FormatInt(f.num, 10)
	}

	return strconv.FormatInt(f.num, 10) + " / " + strconv.FormatInt(f.d(), 10)
}
