package computor

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/jonathanmweiss/computor/algebra"
	"github.com/jonathanmweiss/computor/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	equation string
	opts     Options
	want     string
}

func solve(t *testing.T, equation string, opts Options) (Solution, string) {
	t.Helper()

	p, err := parser.Parse(equation)
	require.NoError(t, err, equation)

	var buf bytes.Buffer

	s, err := NewSolver(p.Degree(), opts, &buf)
	require.NoError(t, err, equation)

	sol, err := s.Solve(p)
	require.NoError(t, err, equation)

	return sol, buf.String()
}

func TestConstant(t *testing.T) {
	a := assert.New(t)

	sol, out := solve(t, "5 * X^0 = 1 * X^0", Options{})
	a.Equal(NoSolution, sol.Kind)
	a.Equal("There is no solution.\n", out)

	sol, out = solve(t, "X = X", Options{})
	a.Equal(AllReals, sol.Kind)
	a.Equal("All real numbers are solutions.\n", out)
}

func TestLinear(t *testing.T) {
	a := assert.New(t)

	sol, out := solve(t, "5 * X + 3 = 1", Options{UseFractions: true})
	a.Equal(OneReal, sol.Kind)
	a.Equal("-2 / 5", sol.Roots[0].String())
	a.Equal("The solution is: -2 / 5\n", out)

	sol, out = solve(t, "5 * X + 3 = 1", Options{})
	a.InDelta(-0.4, sol.Roots[0].Float64(), 1e-12)
	a.Equal("The solution is: -0.4\n", out)

	sol, _ = solve(t, "2 * X = 8", Options{UseFractions: true})
	a.True(sol.Roots[0].IsInt())
	a.Equal("4", sol.Roots[0].String())

	// whole floats are treated as integers.
	sol, _ = solve(t, "2.0 * X = 3", Options{UseFractions: true})
	a.Equal("3 / 2", sol.Roots[0].String())

	sol, _ = solve(t, "0.5 * X = 3", Options{UseFractions: true})
	a.True(sol.Roots[0].IsFloat())
	a.Equal(6.0, sol.Roots[0].Float64())
}

func TestQuadraticPositive(t *testing.T) {
	a := assert.New(t)

	sol, out := solve(t, "X^2 - 5 * X + 4 = 0", Options{UseFractions: true})
	a.Equal(TwoReal, sol.Kind)
	a.Equal("9", sol.Discriminant.String())
	a.Equal("4", sol.Roots[0].String())
	a.Equal("1", sol.Roots[1].String())
	a.Equal("Discriminant is strictly positive, the two solutions are:\n4\n1\n", out)

	sol, out = solve(t, "X^2 - 5 * X + 4 = 0", Options{})
	a.Equal(4.0, sol.Roots[0].Float64())
	a.Equal(1.0, sol.Roots[1].Float64())
	a.Equal("Discriminant is strictly positive, the two solutions are:\n4.0\n1.0\n", out)

	sol, _ = solve(t, "X^2 - 2 = 0", Options{UseFractions: true})
	a.InDelta(1.4142135623730951, sol.Roots[0].Float64(), 1e-9)
	a.InDelta(-1.4142135623730951, sol.Roots[1].Float64(), 1e-9)
}

func TestQuadraticZero(t *testing.T) {
	a := assert.New(t)

	sol, out := solve(t, "X^2 + 2 * X + 1 = 0", Options{UseFractions: true})
	a.Equal(OneReal, sol.Kind)
	a.True(sol.Discriminant.IsZero())
	a.Len(sol.Roots, 1)
	a.Equal("-1", sol.Roots[0].String())
	a.Equal("Discriminant is zero, the solution is:\n-1\n", out)

	sol, _ = solve(t, "4 * X^2 + 4 * X + 1 = 0", Options{UseFractions: true})
	a.Equal("-1 / 2", sol.Roots[0].String())
}

func TestQuadraticNegative(t *testing.T) {
	a := assert.New(t)

	sol, out := solve(t, "X^2 + X + 1 = 0", Options{})
	a.Equal(TwoComplex, sol.Kind)
	a.Equal("-3", sol.Discriminant.String())
	a.Len(sol.ComplexRoots, 2)

	z1, z2 := sol.ComplexRoots[0], sol.ComplexRoots[1]
	a.InDelta(-0.5, z1.Real.Float64(), 1e-9)
	a.InDelta(0.8660254037844386, z1.Imag.Float64(), 1e-9)
	a.InDelta(-0.5, z2.Real.Float64(), 1e-9)
	a.InDelta(-0.8660254037844386, z2.Imag.Float64(), 1e-9)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	a.Equal("Discriminant is strictly negative, the two solutions are:", lines[0])
	a.True(strings.HasPrefix(lines[1], "-0.5 + 0.866"), lines[1])
	a.True(strings.HasPrefix(lines[2], "-0.5 - 0.866"), lines[2])
	a.True(strings.HasSuffix(lines[2], " * i"), lines[2])

	sol, _ = solve(t, "X^2 + 2 * X + 5 = 0", Options{UseFractions: true})
	a.Equal("-1 + 2 * i", sol.ComplexRoots[0].String())
	a.Equal("-1 - 2 * i", sol.ComplexRoots[1].String())
}

func TestRootsSatisfyEquation(t *testing.T) {
	a := assert.New(t)

	pairs := [][2]int64{{4, 1}, {-3, 7}, {2, 2}, {0, -5}, {-6, -6}}

	for _, pair := range pairs {
		// (X - r1)(X - r2)
		p := algebra.Ints(-pair[0], 1).Mul(algebra.Ints(-pair[1], 1))
		require.Equal(t, 2, p.Degree())

		s, err := NewSolver(p.Degree(), Options{UseFractions: true}, &bytes.Buffer{})
		require.NoError(t, err)

		sol, err := s.Solve(p)
		require.NoError(t, err)

		for _, root := range sol.Roots {
			a.True(root.IsInt(), "%v", pair)
			a.True(p.Eval(root).IsZero(), "%v: p(%v) = %v", pair, root, p.Eval(root))
		}
	}

	p := parser.MustParse("5 * X + 3 = 1")
	sol, _ := solve(t, "5 * X + 3 = 1", Options{UseFractions: true})
	a.True(p.Eval(sol.Roots[0]).IsZero())
}

func TestOutputOptions(t *testing.T) {
	a := assert.New(t)

	tests := []testCase{
		{"5 * X + 3 = 1", Options{UseFractions: true, NoLabels: true}, "-2 / 5\n"},
		{"5 * X + 3 = 1", Options{UseFractions: true, Quiet: true, ShowSteps: true}, "-2 / 5\n"},
		{
			"5 * X + 3 = 1",
			Options{UseFractions: true, ShowSteps: true},
			"Variables: a = 5, b = 2\n" +
				"Equation form: a * X + b\n" +
				"Solution form: X = -b / a\n" +
				"The solution is: -2 / 5\n",
		},
		{
			"X^2 - 5 * X + 4 = 0",
			Options{UseFractions: true, ShowSteps: true},
			"Variables: a = 1, b = -5, c = 4\n" +
				"Equation form: a * X^2 + b * X + c\n" +
				"Discriminant: 9\n" +
				"Solutions form:\n" +
				"X1 = (-b + sqrt(delta)) / (2 * a)\n" +
				"X2 = (-b - sqrt(delta)) / (2 * a)\n" +
				"Discriminant is strictly positive, the two solutions are:\n" +
				"4\n1\n",
		},
		{
			"X^2 - 5 * X + 4 = 0",
			Options{UseFractions: true, ShowSteps: true, NoLabels: true},
			"a = 1, b = -5, c = 4\n" +
				"a * X^2 + b * X + c\n" +
				"9\n" +
				"X1 = (-b + sqrt(delta)) / (2 * a)\n" +
				"X2 = (-b - sqrt(delta)) / (2 * a)\n" +
				"4\n1\n",
		},
		{
			"4 = 0",
			Options{ShowSteps: true},
			"Variables: a = 4\n" +
				"Equation form: a\n" +
				"Solution form: X = All real numbers if a = 0\n" +
				"There is no solution.\n",
		},
	}

	for _, tc := range tests {
		_, out := solve(t, tc.equation, tc.opts)
		a.Equal(tc.want, out, tc.equation)
	}
}

func TestLabelStyle(t *testing.T) {
	a := assert.New(t)

	var buf bytes.Buffer

	s, err := NewSolver(1, Options{}, &buf, WithLabelStyle(strings.ToUpper))
	a.NoError(err)

	_, err = s.Solve(algebra.Ints(-3, 1))
	a.NoError(err)
	a.Equal("THE SOLUTION IS: 3.0\n", buf.String())
}

func TestUnsupportedDegree(t *testing.T) {
	a := assert.New(t)

	p, err := parser.Parse("X^3 = 0")
	a.NoError(err)
	a.Equal(3, p.Degree())

	_, err = NewSolver(p.Degree(), Options{}, &bytes.Buffer{})

	var degErr *UnsupportedDegreeError
	a.ErrorAs(err, &degErr)
	a.Equal(3, degErr.Degree)
	a.Equal(MaxDegree, degErr.MaxDegree)
	a.EqualError(err, "the polynomial degree is strictly greater than 2, I can't solve")

	_, err = NewSolver(-1, Options{}, &bytes.Buffer{})
	a.ErrorAs(err, &degErr)
}

func TestDegreeMismatch(t *testing.T) {
	a := assert.New(t)

	for degree := 0; degree <= MaxDegree; degree++ {
		s, err := NewSolver(degree, Options{}, &bytes.Buffer{})
		a.NoError(err)
		a.Equal(degree, s.Degree())

		_, err = s.Solve(algebra.Ints(1, 1, 1, 1))
		a.ErrorIs(err, ErrDegreeMismatch)
	}
}

func TestTooManyVariables(t *testing.T) {
	a := assert.New(t)

	vars := make([]algebra.Number, 27)
	for i := range vars {
		vars[i] = algebra.Int(int64(i))
	}

	o := &output{w: &bytes.Buffer{}}

	// checked even though steps are off.
	err := o.showSteps(steps{variables: vars, form: "", solutions: []string{""}})

	var tooMany *TooManyVariablesError
	a.ErrorAs(err, &tooMany)
	a.Equal(27, tooMany.Count)

	a.NoError(o.showSteps(steps{variables: vars[:26], solutions: []string{""}}))

	name, err := variableName(25)
	a.NoError(err)
	a.Equal("z", name)
}

type failingWriter struct{}

var errWrite = errors.New("write failed")

func (failingWriter) Write([]byte) (int, error) { return 0, errWrite }

func TestWriteError(t *testing.T) {
	a := assert.New(t)

	s, err := NewSolver(0, Options{}, failingWriter{})
	a.NoError(err)

	_, err = s.Solve(algebra.Ints(1))
	a.ErrorIs(err, errWrite)
}

func TestAsFraction(t *testing.T) {
	a := assert.New(t)

	on := Options{UseFractions: true}
	off := Options{}

	a.Equal("-2 / 5", on.asFraction(algebra.Int(-2), algebra.Int(5)).String())
	a.Equal("2 / 5", on.asFraction(algebra.Int(-2), algebra.Int(-5)).String())
	a.Equal("3", on.asFraction(algebra.Float(6), algebra.Int(2)).String())
	a.Equal("-0.4", off.asFraction(algebra.Int(-2), algebra.Int(5)).String())
	a.Equal("0.75", on.asFraction(algebra.Float(1.5), algebra.Int(2)).String())
}
