// Package shell runs batches of equations through the parser and the solvers,
// printing the reduced form, the degree and the solution of each.
package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/jonathanmweiss/computor"
	"github.com/jonathanmweiss/computor/parser"
)

const separator = "--------"

type Runner struct {
	program string
	out     io.Writer
	errOut  io.Writer

	opts    computor.Options
	reduced bool
	style   func(string) string
	log     *slog.Logger
}

type Option func(*Runner)

// WithOptions sets what the solvers print.
func WithOptions(opts computor.Options) Option {
	return func(r *Runner) { r.opts = opts }
}

// WithReducedOnly stops after the reduced form. Ignored in quiet mode.
func WithReducedOnly(reduced bool) Option {
	return func(r *Runner) { r.reduced = reduced }
}

func WithLabelStyle(style func(string) string) Option {
	return func(r *Runner) { r.style = style }
}

func WithLogger(log *slog.Logger) Option {
	return func(r *Runner) { r.log = log }
}

// New returns a Runner writing results to out and failures to errOut,
// prefixed with program.
func New(program string, out, errOut io.Writer, opts ...Option) *Runner {
	r := &Runner{
		program: program,
		out:     out,
		errOut:  errOut,
		log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Run solves every equation in order, separating their outputs.
// A failing equation is reported and the batch goes on.
// It returns 0 when all equations succeeded, 1 otherwise.
func (r *Runner) Run(equations []string) int {
	status := 0

	for i, eq := range equations {
		if i > 0 {
			fmt.Fprintln(r.out, separator)
		}

		if err := r.solve(eq); err != nil {
			r.log.Info("equation failed", "equation", eq, "err", err)
			fmt.Fprintf(r.errOut, "%s: %s: %v\n", r.program, eq, err)

			status = 1
		}
	}

	return status
}

func (r *Runner) solve(eq string) error {
	p, err := parser.Parse(eq)
	if err != nil {
		return err
	}

	r.log.Debug("parsed", "equation", eq, "reduced", p.String(), "degree", p.Degree())

	if !r.opts.Quiet {
		r.labelized("Reduced form", p.String()+" = 0")

		if r.reduced {
			return nil
		}

		r.labelized("Polynomial degree", p.Degree())
	}

	var sopts []computor.SolverOption
	if r.style != nil {
		sopts = append(sopts, computor.WithLabelStyle(r.style))
	}

	s, err := computor.NewSolver(p.Degree(), r.opts, r.out, sopts...)
	if err != nil {
		return err
	}

	sol, err := s.Solve(p)
	if err != nil {
		return err
	}

	r.log.Debug("solved", "equation", eq, "kind", sol.Kind.String())

	return nil
}

func (r *Runner) labelized(label string, value any) {
	if !r.opts.NoLabels {
		if r.style != nil {
			label = r.style(label)
		}

		fmt.Fprintf(r.out, "%s: ", label)
	}

	fmt.Fprintln(r.out, value)
}

// ReadEquations returns the equations of rd, one per line, whatever their length.
// Blank lines and lines starting with '#' are skipped.
func ReadEquations(rd io.Reader) ([]string, error) {
	var equations []string

	br := bufio.NewReader(rd)
	for {
		line, err := br.ReadString('\n')

		if line = strings.TrimSpace(line); line != "" && !strings.HasPrefix(line, "#") {
			equations = append(equations, line)
		}

		if errors.Is(err, io.EOF) {
			return equations, nil
		}

		if err != nil {
			return nil, fmt.Errorf("reading equations: %w", err)
		}
	}
}

// RunReader runs the equations read from rd.
func (r *Runner) RunReader(rd io.Reader) (int, error) {
	equations, err := ReadEquations(rd)
	if err != nil {
		return 1, err
	}

	return r.Run(equations), nil
}

// RunFile runs the equations of the file at path.
func (r *Runner) RunFile(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 1, fmt.Errorf("opening equations: %w", err)
	}
	defer f.Close()

	r.log.Debug("running file", "path", path)

	return r.RunReader(f)
}
