package parser

import "fmt"

// LexError reports a character that starts no token.
type LexError struct {
	Char rune
	// Pos is the 0-based byte offset of Char in the input.
	Pos int
}

func (e *LexError) Error() string {
	return fmt.Sprintf("illegal character '%c' at position %d", e.Char, e.Pos)
}

// ParseError reports a token sequence that does not match the equation grammar.
type ParseError struct {
	Message string
	// Token is the offending token's text, empty at end of input.
	Token string
	Pos   int
	AtEOF bool
}

func (e *ParseError) Error() string {
	return e.Message
}

func unexpected(tok Token) *ParseError {
	if tok.Kind == EOF {
		return &ParseError{
			Message: "syntax error at end of input",
			Pos:     tok.Pos,
			AtEOF:   true,
		}
	}

	return &ParseError{
		Message: fmt.Sprintf("syntax error near unexpected token '%s' at position %d", tok.Text, tok.Pos),
		Token:   tok.Text,
		Pos:     tok.Pos,
	}
}

// DegreeError reports a reduced polynomial too large to hold densely.
type DegreeError struct {
	Degree int
	Max    int
}

func (e *DegreeError) Error() string {
	return fmt.Sprintf("reduced polynomial degree %d exceeds %d", e.Degree, e.Max)
}
