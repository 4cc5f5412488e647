package parser

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/jonathanmweiss/computor/algebra"
)

var singleChar = map[byte]Kind{
	'=': Equals,
	'-': Minus,
	'+': Plus,
	'^': Pow,
	'*': Times,
	'X': Indeterminate,
}

// Tokenize splits input into tokens, left to right, skipping spaces and tabs.
// The returned slice always ends with an EOF token positioned at len(input).
func Tokenize(input string) ([]Token, error) {
	var toks []Token

	i := 0
	for i < len(input) {
		c := input[i]

		if c == ' ' || c == '\t' {
			i++

			continue
		}

		if k, ok := singleChar[c]; ok {
			toks = append(toks, Token{Kind: k, Text: input[i : i+1], Pos: i})
			i++

			continue
		}

		if isDigit(c) || isSeparator(c) {
			tok, err := lexNumber(input, i)
			if err != nil {
				return nil, err
			}

			toks = append(toks, tok)
			i += len(tok.Text)

			continue
		}

		r, _ := utf8.DecodeRuneInString(input[i:])

		return nil, &LexError{Char: r, Pos: i}
	}

	toks = append(toks, Token{Kind: EOF, Pos: len(input)})

	return toks, nil
}

// lexNumber reads the longest float or integer literal starting at start.
//
//	float := (digits [.,] digits? | [.,] digits) ([eE] [+-]? digits)?
//	int   := digits
func lexNumber(input string, start int) (Token, error) {
	i := scanDigits(input, start)
	intDigits := i - start

	if i >= len(input) || !isSeparator(input[i]) {
		return intToken(input[start:i], start)
	}

	frac := scanDigits(input, i+1)
	if intDigits == 0 && frac == i+1 {
		// a lone separator.
		return Token{}, &LexError{Char: rune(input[start]), Pos: start}
	}

	i = frac
	if end, ok := scanExponent(input, i); ok {
		i = end
	}

	return floatToken(input[start:i], start)
}

func scanDigits(input string, i int) int {
	for i < len(input) && isDigit(input[i]) {
		i++
	}

	return i
}

// scanExponent matches [eE][+-]?digits at i.
func scanExponent(input string, i int) (int, bool) {
	if i >= len(input) || (input[i] != 'e' && input[i] != 'E') {
		return i, false
	}

	j := i + 1
	if j < len(input) && (input[j] == '+' || input[j] == '-') {
		j++
	}

	end := scanDigits(input, j)
	if end == j {
		return i, false
	}

	return end, true
}

var errNumberRange = errors.New("number out of range")

func intToken(text string, pos int) (Token, error) {
	tok := Token{Kind: IntLiteral, Text: text, Pos: pos}

	n, err := strconv.ParseInt(text, 10, 64)
	if err == nil {
		tok.Value = algebra.Int(n)

		return tok, nil
	}

	// wider than int64: keep the magnitude as a float.
	f, ferr := strconv.ParseFloat(text, 64)
	if ferr != nil {
		return Token{}, rangeError(text, pos)
	}

	tok.Value = algebra.Float(f)

	return tok, nil
}

func floatToken(text string, pos int) (Token, error) {
	f, err := strconv.ParseFloat(strings.ReplaceAll(text, ",", "."), 64)
	if err != nil {
		return Token{}, rangeError(text, pos)
	}

	return Token{Kind: FloatLiteral, Text: text, Pos: pos, Value: algebra.Float(f)}, nil
}

func rangeError(text string, pos int) *ParseError {
	return &ParseError{
		Message: fmt.Sprintf("%v: '%s' at position %d", errNumberRange, text, pos),
		Token:   text,
		Pos:     pos,
	}
}

func isDigit(c byte) bool     { return c >= '0' && c <= '9' }
func isSeparator(c byte) bool { return c == '.' || c == ',' }
