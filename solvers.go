package computor

import (
	"github.com/jonathanmweiss/computor/algebra"
)

// ConstantSolver solves a = 0.
type ConstantSolver struct {
	*output
}

func (s *ConstantSolver) Degree() int { return 0 }

func (s *ConstantSolver) Solve(p *algebra.Polynomial) (Solution, error) {
	if p.Degree() != s.Degree() {
		return Solution{}, ErrDegreeMismatch
	}

	a := p.Coefficient(0)

	err := s.showSteps(steps{
		variables: []algebra.Number{a},
		form:      "a",
		solutions: []string{"All real numbers if a = 0"},
	})
	if err != nil {
		return Solution{}, err
	}

	if a.IsZero() {
		s.println("All real numbers are solutions.")

		return Solution{Kind: AllReals}, s.err
	}

	s.println("There is no solution.")

	return Solution{Kind: NoSolution}, s.err
}

// LinearSolver solves a * X + b = 0. a is never zero for a reduced polynomial of degree 1.
type LinearSolver struct {
	*output
}

func (s *LinearSolver) Degree() int { return 1 }

func (s *LinearSolver) Solve(p *algebra.Polynomial) (Solution, error) {
	if p.Degree() != s.Degree() {
		return Solution{}, ErrDegreeMismatch
	}

	cs := coefficients(p)
	a, b := cs[0], cs[1]

	err := s.showSteps(steps{
		variables: cs,
		form:      "a * X + b",
		solutions: []string{"-b / a"},
	})
	if err != nil {
		return Solution{}, err
	}

	x := s.opts.asFraction(b.Neg(), a)
	s.labelized("The solution is", x)

	return Solution{Kind: OneReal, Roots: []algebra.Number{x}}, s.err
}
