package parser

import "github.com/jonathanmweiss/computor/algebra"

type Kind int

const (
	EOF Kind = iota
	Equals
	Minus
	Plus
	Pow
	Times
	Indeterminate
	FloatLiteral
	IntLiteral
)

var kindNames = [...]string{
	EOF:           "end of input",
	Equals:        "'='",
	Minus:         "'-'",
	Plus:          "'+'",
	Pow:           "'^'",
	Times:         "'*'",
	Indeterminate: "X",
	FloatLiteral:  "float",
	IntLiteral:    "int",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}

	return kindNames[k]
}

// Token is one lexeme of an equation.
type Token struct {
	Kind Kind
	// Text is the source text of the token.
	Text string
	// Pos is the byte offset of the token in the input.
	Pos int
	// Value holds the parsed value of FloatLiteral and IntLiteral tokens.
	Value algebra.Number
}

func (t Token) String() string {
	if t.Kind == EOF {
		return t.Kind.String()
	}

	return t.Text
}
