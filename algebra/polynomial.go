package algebra

import (
	"strconv"
	"strings"
)

// Polynomial of a single indeterminate X. The zero value is the zero polynomial.
type Polynomial struct {
	inner []Number
}

/*
NewPolynomial expects the coefficients ordered from lowest to highest power
(e.g. [1, 2, 3] is 1 + 2X + 3X^2).

The result is reduced: trailing zero coefficients are dropped, and no
coefficients at all gives the zero polynomial [0].
*/
func NewPolynomial(inner ...Number) *Polynomial {
	cp := make([]Number, len(inner))
	copy(cp, inner)

	p := &Polynomial{inner: cp}
	p.removeLeadingZeroes()

	return p
}

// Ints is a shorthand for NewPolynomial over integer coefficients.
func Ints(coeffs ...int64) *Polynomial {
	inner := make([]Number, len(coeffs))
	for i, c := range coeffs {
		inner[i] = Int(c)
	}

	return NewPolynomial(inner...)
}

func (p *Polynomial) IsZero() bool {
	return p.leadingCoeffPos() < 0
}

// Equals compares coefficient-wise by value.
func (p *Polynomial) Equals(q *Polynomial) bool {
	if p.Degree() != q.Degree() {
		return false
	}

	for i := 0; i <= p.Degree(); i++ {
		if !p.Coefficient(i).Equals(q.Coefficient(i)) {
			return false
		}
	}

	return true
}

// Degree of the reduced polynomial. The zero polynomial has degree 0.
func (p *Polynomial) Degree() int {
	return max(len(p.inner)-1, 0)
}

// Coefficient returns the coefficient of X^power, 0 past the degree.
func (p *Polynomial) Coefficient(power int) Number {
	if power < 0 || power >= len(p.inner) {
		return Int(0)
	}

	return p.inner[power]
}

// AddCoefficient adds v to the coefficient of X^power.
func (p *Polynomial) AddCoefficient(v Number, power int) {
	p.SetCoefficient(p.Coefficient(power).Add(v), power)
}

// SetCoefficient replaces the coefficient of X^power, extending the
// polynomial with zeros if power is above the current degree.
func (p *Polynomial) SetCoefficient(v Number, power int) {
	if power < 0 {
		panic("negative power")
	}

	ensureLen(p, max(len(p.inner), power+1))
	p.inner[power] = v

	p.removeLeadingZeroes()
}

func (p *Polynomial) leadingCoeffPos() int {
	for i := len(p.inner) - 1; i >= 0; i-- {
		if !p.inner[i].IsZero() {
			return i
		}
	}

	return -1
}

func (p *Polynomial) removeLeadingZeroes() {
	lead := p.leadingCoeffPos()
	if lead < 0 {
		p.inner = []Number{Int(0)}

		return
	}

	p.inner = p.inner[:lead+1]
}

// Coefficients returns a copy of the coefficients, lowest power first.
func (p *Polynomial) Coefficients() []Number {
	list := make([]Number, p.Degree()+1)
	copy(list, p.inner)

	return list
}

// String renders the canonical form, e.g. "4 * X^2 - X + 1.5".
func (p *Polynomial) String() string {
	bldr := strings.Builder{}

	for i := len(p.inner) - 1; i >= 0; i-- {
		c := p.inner[i]
		if c.IsZero() {
			continue
		}

		switch {
		case bldr.Len() > 0 && c.Sign() < 0:
			bldr.WriteString(" - ")
		case bldr.Len() > 0:
			bldr.WriteString(" + ")
		case c.Sign() < 0:
			bldr.WriteString("- ")
		}

		if i == 0 || !c.IsUnit() {
			bldr.WriteString(c.Abs().String())
		}

		if i == 0 {
			continue
		}

		if !c.IsUnit() {
			bldr.WriteString(" * ")
		}

		bldr.WriteString("X")

		if i > 1 {
			bldr.WriteString("^")
			bldr.WriteString(strconv.Itoa(i))
		}
	}

	if bldr.Len() == 0 {
		return "0"
	}

	return bldr.String()
}
