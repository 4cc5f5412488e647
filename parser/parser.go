package parser

import (
	"fmt"
	"maps"
	"math"
	"slices"

	"github.com/jonathanmweiss/computor/algebra"
)

// MaxReducedDegree bounds the degree left once both sides are folded and
// cancelling terms dropped. Exponents themselves are unbounded.
const MaxReducedDegree = 1 << 20

/*
Parse reads an equation and returns its left side minus its right side,
so that the equation reads Parse(input) = 0.

	expression    := polynomial | polynomial '=' polynomial
	polynomial    := term | signed_term | polynomial signed_term
	signed_term   := '-' term | '+' term
	term          := factor | term '*' factor
	factor        := number | indeterminate
	indeterminate := 'X' | 'X' '^' int

Errors are *LexError, *ParseError or *DegreeError.
*/
func Parse(input string) (*algebra.Polynomial, error) {
	toks, err := Tokenize(input)
	if err != nil {
		return nil, err
	}

	p := &parser{toks: toks}

	ts, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	return ts.polynomial()
}

// MustParse is like Parse but panics on error.
func MustParse(input string) *algebra.Polynomial {
	poly, err := Parse(input)
	if err != nil {
		panic(err)
	}

	return poly
}

// term is a monomial coefficient * X^power.
type term struct {
	coeff algebra.Number
	power int
}

// terms holds the nonzero coefficients of a polynomial by power.
// Terms that cancel are dropped, so they never take room in the dense form.
type terms map[int]algebra.Number

func (ts terms) add(t term) {
	// a missing power reads as the zero value, which is the integer 0.
	c := ts[t.power].Add(t.coeff)
	if c.IsZero() {
		delete(ts, t.power)

		return
	}

	ts[t.power] = c
}

func (ts terms) sub(other terms) {
	for power, c := range other {
		ts.add(term{coeff: c.Neg(), power: power})
	}
}

func (ts terms) degree() int {
	d := 0
	for power := range ts {
		d = max(d, power)
	}

	return d
}

func (ts terms) polynomial() (*algebra.Polynomial, error) {
	d := ts.degree()
	if d > MaxReducedDegree {
		return nil, &DegreeError{Degree: d, Max: MaxReducedDegree}
	}

	poly := algebra.NewPolynomial()

	// highest power first, so the backing slice is sized once.
	for _, power := range slices.Backward(slices.Sorted(maps.Keys(ts))) {
		poly.AddCoefficient(ts[power], power)
	}

	return poly, nil
}

type parser struct {
	toks []Token
	pos  int
}

func (p *parser) peek() Token {
	return p.toks[p.pos]
}

// next consumes a token. The trailing EOF is never consumed.
func (p *parser) next() Token {
	tok := p.toks[p.pos]
	if tok.Kind != EOF {
		p.pos++
	}

	return tok
}

func (p *parser) parseExpression() (terms, error) {
	lhs, err := p.parsePolynomial()
	if err != nil {
		return nil, err
	}

	if p.peek().Kind == Equals {
		p.next()

		rhs, err := p.parsePolynomial()
		if err != nil {
			return nil, err
		}

		lhs.sub(rhs)
	}

	if tok := p.peek(); tok.Kind != EOF {
		return nil, unexpected(tok)
	}

	return lhs, nil
}

func (p *parser) parsePolynomial() (terms, error) {
	poly := terms{}

	// the first term may omit its sign.
	t, err := p.parseSignedTerm()
	if err != nil {
		return nil, err
	}

	poly.add(t)

	for k := p.peek().Kind; k == Plus || k == Minus; k = p.peek().Kind {
		t, err := p.parseSignedTerm()
		if err != nil {
			return nil, err
		}

		poly.add(t)
	}

	return poly, nil
}

func (p *parser) parseSignedTerm() (term, error) {
	negate := false

	switch p.peek().Kind {
	case Minus:
		negate = true

		p.next()
	case Plus:
		p.next()
	}

	t, err := p.parseTerm()
	if err != nil {
		return term{}, err
	}

	if negate {
		t.coeff = t.coeff.Neg()
	}

	return t, nil
}

func (p *parser) parseTerm() (term, error) {
	t, err := p.parseFactor()
	if err != nil {
		return term{}, err
	}

	for p.peek().Kind == Times {
		p.next()

		start := p.peek()

		f, err := p.parseFactor()
		if err != nil {
			return term{}, err
		}

		if t.power > math.MaxInt-f.power {
			return term{}, powerError(start)
		}

		t = term{coeff: t.coeff.Mul(f.coeff), power: t.power + f.power}
	}

	return t, nil
}

func (p *parser) parseFactor() (term, error) {
	tok := p.next()

	switch tok.Kind {
	case IntLiteral, FloatLiteral:
		return term{coeff: tok.Value, power: 0}, nil
	case Indeterminate:
		if p.peek().Kind != Pow {
			return term{coeff: algebra.Int(1), power: 1}, nil
		}

		p.next()

		exp := p.next()
		if exp.Kind != IntLiteral {
			return term{}, unexpected(exp)
		}

		n, ok := exp.Value.Int64()
		if !ok || n > math.MaxInt {
			return term{}, powerError(exp)
		}

		return term{coeff: algebra.Int(1), power: int(n)}, nil
	}

	return term{}, unexpected(tok)
}

func powerError(tok Token) *ParseError {
	return &ParseError{
		Message: fmt.Sprintf("exponent out of range near token '%s' at position %d", tok.Text, tok.Pos),
		Token:   tok.Text,
		Pos:     tok.Pos,
	}
}
