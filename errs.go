package arith

import "strconv"

// ParseError indicates a token where the grammar does not permit one. It
// implements InputError.
type ParseError struct {
	// Col is the byte offset of the start of the offending token, or the
	// end of the input if the expression stopped short.
	Col int
	// Token is the text of the offending token, if any.
	Token string
	// Msg describes what the parser expected.
	Msg string
	// Snippet is the source text starting at the offending token.
	Snippet string
}

func (err *ParseError) Error() string {
	s := err.Msg
	if err.Token != "" {
		s += ": " + strconv.Quote(err.Token)
	}
	if err.Snippet != "" {
		s += " near " + strconv.Quote(err.Snippet)
	}
	return errpos(err.Col, s)
}

func (err *ParseError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return "position " + strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting
// from invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the byte offset of the input that caused the error.
	Pos() int
}

var (
	_ InputError = (*LexError)(nil)
	_ InputError = (*ParseError)(nil)
)
