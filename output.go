package computor

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathanmweiss/computor/algebra"
)

// variableNames label coefficients from the leading one down.
const variableNames = "abcdefghijklmnopqrstuvwxyz"

type TooManyVariablesError struct {
	Count int
}

func (e *TooManyVariablesError) Error() string {
	return fmt.Sprintf("too many variables: %d coefficients, at most %d can be named", e.Count, len(variableNames))
}

func variableName(i int) (string, error) {
	if i < 0 || i >= len(variableNames) {
		return "", &TooManyVariablesError{Count: i + 1}
	}

	return variableNames[i : i+1], nil
}

// output is what every solver prints through. The first write error sticks.
type output struct {
	w     io.Writer
	opts  Options
	style func(string) string
	err   error
}

func (o *output) printf(format string, args ...any) {
	if o.err != nil {
		return
	}

	_, o.err = fmt.Fprintf(o.w, format, args...)
}

func (o *output) println(args ...any) {
	if o.err != nil {
		return
	}

	_, o.err = fmt.Fprintln(o.w, args...)
}

func (o *output) label(s string) string {
	if o.style == nil {
		return s
	}

	return o.style(s)
}

// labelized prints "label: content", or just content without labels.
func (o *output) labelized(label string, content any) {
	if o.opts.canShowLabels() {
		o.printf("%s: ", o.label(label))
	}

	o.println(content)
}

// heading prints a label line that has no value of its own.
func (o *output) heading(s string) {
	if o.opts.canShowLabels() {
		o.println(o.label(s))
	}
}

type steps struct {
	variables    []algebra.Number
	form         string
	solutions    []string
	discriminant *algebra.Number
}

// showSteps prints the named coefficients, the equation form and the solution formulas.
// The variable count is checked even when steps are not shown.
func (o *output) showSteps(s steps) error {
	names := make([]string, len(s.variables))
	for i, v := range s.variables {
		name, err := variableName(i)
		if err != nil {
			return &TooManyVariablesError{Count: len(s.variables)}
		}

		names[i] = name + " = " + v.String()
	}

	if !o.opts.canShowSteps() {
		return nil
	}

	o.labelized("Variables", strings.Join(names, ", "))
	o.labelized("Equation form", s.form)

	if s.discriminant != nil {
		o.labelized("Discriminant", *s.discriminant)
	}

	if len(s.solutions) == 1 {
		o.labelized("Solution form", "X = "+s.solutions[0])

		return nil
	}

	o.heading("Solutions form:")

	for i, sol := range s.solutions {
		o.printf("X%d = %s\n", i+1, sol)
	}

	return nil
}
