package computor

import (
	"errors"
	"fmt"
	"io"

	"github.com/jonathanmweiss/computor/algebra"
)

// Options controls what a Solver prints. It is read-only once handed to NewSolver.
type Options struct {
	// NoLabels prints bare values without their "Label: " prefix.
	NoLabels bool
	// Quiet prints only the solutions. It implies NoLabels and disables ShowSteps.
	Quiet bool
	// ShowSteps prints the coefficients, the equation form and the solution formula.
	ShowSteps bool
	// UseFractions prints exact fractions instead of floats where the operands are whole.
	UseFractions bool
}

func (o Options) canShowLabels() bool { return !o.Quiet && !o.NoLabels }
func (o Options) canShowSteps() bool  { return !o.Quiet && o.ShowSteps }

type Solver interface {
	// Degree of the polynomials this solver accepts.
	Degree() int

	// Solve prints the solution of p = 0 and returns it.
	Solve(p *algebra.Polynomial) (Solution, error)
}

type Kind int

const (
	NoSolution Kind = iota
	AllReals
	OneReal
	TwoReal
	TwoComplex
)

func (k Kind) String() string {
	switch k {
	case NoSolution:
		return "no solution"
	case AllReals:
		return "all reals"
	case OneReal:
		return "one real"
	case TwoReal:
		return "two real"
	case TwoComplex:
		return "two complex"
	}

	return "unknown"
}

type Solution struct {
	Kind Kind
	// Discriminant is set by the quadratic solver only.
	Discriminant algebra.Number
	Roots        []algebra.Number
	ComplexRoots []algebra.Complex
}

// MaxDegree is the highest degree NewSolver can build a solver for.
const MaxDegree = len(constructors) - 1

var constructors = [...]func(*output) Solver{
	func(o *output) Solver { return &ConstantSolver{o} },
	func(o *output) Solver { return &LinearSolver{o} },
	func(o *output) Solver { return &QuadraticSolver{o} },
}

var ErrDegreeMismatch = errors.New("polynomial degree does not match the solver")

type UnsupportedDegreeError struct {
	Degree    int
	MaxDegree int
}

func (e *UnsupportedDegreeError) Error() string {
	return fmt.Sprintf("the polynomial degree is strictly greater than %d, I can't solve", e.MaxDegree)
}

type SolverOption func(*output)

// WithLabelStyle decorates every label before it is printed.
func WithLabelStyle(style func(string) string) SolverOption {
	return func(o *output) {
		o.style = style
	}
}

// NewSolver returns the solver for polynomials of the given degree, printing to w.
// It fails with *UnsupportedDegreeError above MaxDegree.
func NewSolver(degree int, opts Options, w io.Writer, sopts ...SolverOption) (Solver, error) {
	if degree < 0 || degree > MaxDegree {
		return nil, &UnsupportedDegreeError{Degree: degree, MaxDegree: MaxDegree}
	}

	o := &output{w: w, opts: opts}
	for _, so := range sopts {
		so(o)
	}

	return constructors[degree](o), nil
}

// asFraction returns num / den, exactly when fractions are enabled and both are rational.
// Whole floats count as integers. An exact result with denominator 1 prints as an integer.
func (o Options) asFraction(num, den algebra.Number) algebra.Number {
	if !o.UseFractions {
		return num.Quo(den)
	}

	nf, nok := exactValue(num)
	df, dok := exactValue(den)

	if nok && dok {
		if q, err := nf.Div(df); err == nil {
			return algebra.Exact(q)
		}
	}

	return num.Quo(den)
}

func exactValue(n algebra.Number) (algebra.Fraction, bool) {
	if i, ok := n.Int64(); ok {
		return algebra.FromInt(i), true
	}

	return n.Fraction()
}

// coefficients returns p's coefficients from the highest power down, the order they are named a, b, c...
func coefficients(p *algebra.Polynomial) []algebra.Number {
	cs := p.Coefficients()
	for i, j := 0, len(cs)-1; i < j; i, j = i+1, j-1 {
		cs[i], cs[j] = cs[j], cs[i]
	}

	return cs
}
