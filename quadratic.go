package computor

import (
	"github.com/jonathanmweiss/computor/algebra"
)

// QuadraticSolver solves a * X^2 + b * X + c = 0 from the sign of the discriminant b^2 - 4ac.
type QuadraticSolver struct {
	*output
}

func (s *QuadraticSolver) Degree() int { return 2 }

var (
	realForms = []string{
		"(-b + sqrt(delta)) / (2 * a)",
		"(-b - sqrt(delta)) / (2 * a)",
	}
	complexForms = []string{
		"(-b / (2 * a)) + sqrt(-delta) / (2 * a) * i",
		"(-b / (2 * a)) - sqrt(-delta) / (2 * a) * i",
	}
)

func (s *QuadraticSolver) Solve(p *algebra.Polynomial) (Solution, error) {
	if p.Degree() != s.Degree() {
		return Solution{}, ErrDegreeMismatch
	}

	cs := coefficients(p)
	a, b, c := cs[0], cs[1], cs[2]

	d := b.Mul(b).Sub(algebra.Int(4).Mul(a).Mul(c))

	forms := realForms
	switch d.Sign() {
	case 0:
		forms = []string{"-b / (2 * a)"}
	case -1:
		forms = complexForms
	}

	err := s.showSteps(steps{
		variables:    cs,
		form:         "a * X^2 + b * X + c",
		solutions:    forms,
		discriminant: &d,
	})
	if err != nil {
		return Solution{}, err
	}

	// exact when d is a perfect square.
	sd := d.Sqrt()
	twoA := algebra.Int(2).Mul(a)

	sol := Solution{Discriminant: d}

	switch d.Sign() {
	case 0:
		// the general formula with sqrt(d) = 0: both roots coincide.
		sol.Kind = OneReal
		sol.Roots = []algebra.Number{s.opts.asFraction(b.Neg().Add(sd), twoA)}

		s.heading("Discriminant is zero, the solution is:")
	case 1:
		sol.Kind = TwoReal
		sol.Roots = []algebra.Number{
			s.opts.asFraction(b.Neg().Add(sd), twoA),
			s.opts.asFraction(b.Neg().Sub(sd), twoA),
		}

		s.heading("Discriminant is strictly positive, the two solutions are:")
	default:
		re := s.opts.asFraction(b.Neg(), twoA)
		im := s.opts.asFraction(sd, twoA)
		z := algebra.NewComplex(re, im)

		sol.Kind = TwoComplex
		sol.ComplexRoots = []algebra.Complex{z, z.Conjugate()}

		s.heading("Discriminant is strictly negative, the two solutions are:")
	}

	for _, r := range sol.Roots {
		s.println(r)
	}

	for _, z := range sol.ComplexRoots {
		s.println(z)
	}

	return sol, s.err
}
