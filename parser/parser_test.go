package parser

import (
	"math/rand"
	"testing"

	"github.com/jonathanmweiss/computor/algebra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	a := assert.New(t)

	type testCase struct {
		input  string
		want   string
		degree int
	}

	tests := []testCase{
		{"5 * X^0 = 1 * X^0", "4", 0},
		{"5 * X + 3 = 1", "5 * X + 2", 1},
		{"X^2 - 5 * X + 4 = 0", "X^2 - 5 * X + 4", 2},
		{"X^2 + X + 1 = 0", "X^2 + X + 1", 2},
		{"X^3 = 0", "X^3", 3},
		{"5 * X^0 + 4 * X^1 - 9.3 * X^2 = 1 * X^0", "- 9.3 * X^2 + 4 * X + 4", 2},
		{"X = X", "0", 0},
		{"2 * 3 * X * X = 0", "6 * X^2", 2},
		{"X * 3", "3 * X", 1},
		{"+ X - 1", "X - 1", 1},
		{"- X^2", "- X^2", 2},
		{"4.5 * X = 0,5", "4.5 * X - 0.5", 1},
		{"0 * X^2 + X = 0", "X", 1},
	}

	for _, tc := range tests {
		p, err := Parse(tc.input)
		if !a.NoError(err, tc.input) {
			continue
		}

		a.Equal(tc.want, p.String(), tc.input)
		a.Equal(tc.degree, p.Degree(), tc.input)
	}
}

func TestParseCoefficients(t *testing.T) {
	a := assert.New(t)

	p, err := Parse("X^2 - 5 * X + 4 = 0")
	a.NoError(err)
	a.True(algebra.Ints(4, -5, 1).Equals(p))

	p, err = Parse("5 * X + 3 = 1")
	a.NoError(err)
	a.True(algebra.Ints(2, 5).Equals(p))
}

func TestParseErrors(t *testing.T) {
	a := assert.New(t)
	r := require.New(t)

	type testCase struct {
		input string
		token string
		pos   int
		atEOF bool
	}

	tests := []testCase{
		{"X^2 +", "", 5, true},
		{"", "", 0, true},
		{"5 =", "", 3, true},
		{"X^", "", 2, true},
		{"= 5", "=", 0, false},
		{"1 = 2 = 3", "=", 6, false},
		{"2 X", "X", 2, false},
		{"X^2.0", "2.0", 2, false},
		{"X^X", "X", 2, false},
		{"X^2^3", "^", 3, false},
		{"- - X", "-", 2, false},
		{"X * * 2", "*", 4, false},
		{"X^99999999999999999999", "99999999999999999999", 2, false},
		{"X^9223372036854775807 * X", "X", 24, false},
	}

	for _, tc := range tests {
		_, err := Parse(tc.input)

		var parseErr *ParseError
		r.ErrorAs(err, &parseErr, tc.input)
		a.Equal(tc.atEOF, parseErr.AtEOF, tc.input)
		a.Equal(tc.token, parseErr.Token, tc.input)
		a.Equal(tc.pos, parseErr.Pos, tc.input)
	}

	_, err := Parse("X^2 +")
	a.EqualError(err, "syntax error at end of input")

	_, err = Parse("2 X")
	a.EqualError(err, "syntax error near unexpected token 'X' at position 2")
}

func TestCancellingHighPowers(t *testing.T) {
	a := assert.New(t)

	type testCase struct {
		input  string
		want   string
		degree int
	}

	tests := []testCase{
		{"X^5000 - X^5000 + 2 * X = 4", "2 * X - 4", 1},
		{"X^4096 * X = X^4096 * X + X", "- X", 1},
		{"X^9223372036854775807 = X^9223372036854775807", "0", 0},
		{"X^5000 = 0", "X^5000", 5000},
	}

	for _, tc := range tests {
		p, err := Parse(tc.input)
		if !a.NoError(err, tc.input) {
			continue
		}

		a.Equal(tc.want, p.String(), tc.input)
		a.Equal(tc.degree, p.Degree(), tc.input)
	}

	_, err := Parse("X^2000000 = 1")

	var degErr *DegreeError
	a.ErrorAs(err, &degErr)
	a.Equal(2000000, degErr.Degree)
	a.EqualError(err, "reduced polynomial degree 2000000 exceeds 1048576")
}

func TestParseLexError(t *testing.T) {
	a := assert.New(t)

	_, err := Parse("X^2 = y")

	var lexErr *LexError
	a.ErrorAs(err, &lexErr)
	a.Equal(6, lexErr.Pos)
}

func TestEquationFolding(t *testing.T) {
	a := assert.New(t)

	pairs := [][2]string{
		{"5 * X + 3", "1"},
		{"X^2 - 5 * X", "- 4"},
		{"1.5 * X^2", "1.5 * X^2 + X"},
		{"0", "X^2 + X + 1"},
	}

	for _, pair := range pairs {
		whole := MustParse(pair[0] + " = " + pair[1])
		lhs := MustParse(pair[0])
		rhs := MustParse(pair[1])

		a.True(whole.Equals(lhs.Sub(rhs)), "%s = %s", pair[0], pair[1])
	}
}

func TestRoundTrip(t *testing.T) {
	a := assert.New(t)
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 300; i++ {
		coeffs := make([]algebra.Number, rng.Intn(5)+1)
		for j := range coeffs {
			switch rng.Intn(3) {
			case 0:
				coeffs[j] = algebra.Int(0)
			case 1:
				coeffs[j] = algebra.Int(rng.Int63n(21) - 10)
			default:
				coeffs[j] = algebra.Float(float64(rng.Intn(2001)-1000) / 8)
			}
		}

		want := algebra.NewPolynomial(coeffs...)

		got, err := Parse(want.String())
		if !a.NoError(err, want.String()) {
			continue
		}

		a.True(want.Equals(got), "%s reparsed as %s", want, got)
	}
}

func TestMustParsePanics(t *testing.T) {
	assert.Panics(t, func() { MustParse("X^2 +") })
}
