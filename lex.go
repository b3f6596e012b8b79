package arith

import (
	"io"
	"regexp"
	"strconv"
	"strings"
)

type lexToken struct {
	text string
	kind tokenKind
	pos  int
}

func (t lexToken) String() string {
	return t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.pos)
}

type tokenKind int

const (
	tokenNone tokenKind = iota
	// tokenEOF indicates the end of the input.
	tokenEOF
	// tokenNum is a numeric literal, possibly signed.
	tokenNum
	// tokenOp is one of the operators + - * /.
	tokenOp
	// tokenOpen is an open parenthesis.
	tokenOpen
	// tokenClose is a close parenthesis.
	tokenClose
)

func (k tokenKind) String() string {
	switch k {
	case tokenNone:
		return "None"
	case tokenEOF:
		return "EOF"
	case tokenNum:
		return "Num"
	case tokenOp:
		return "Op"
	case tokenOpen:
		return "Open"
	case tokenClose:
		return "Close"
	default:
		return "tokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// number matches a numeric literal at the start of the remaining input:
// an optional sign, then either digits with an optional fraction or a
// bare fraction, then an optional exponent. The exponent takes no sign.
var number = regexp.MustCompile(`^[+-]?([0-9]+(\.[0-9]*)?|\.[0-9]+)(e[0-9]+)?`)

// noPrev marks the pushback position as invalid.
const noPrev = -1

// lexer scans tokens from an in-memory expression. The cursor is a byte
// offset into src; prev holds the offset to restore on putBack.
type lexer struct {
	src  string
	pos  int
	prev int
}

func lex(src string) *lexer {
	return &lexer{src: src, prev: noPrev}
}

// peek scans the next token without committing the advance. It skips
// leading whitespace and returns the token together with the cursor
// position just past it. At the end of the input the token kind is
// tokenEOF and the error is nil; an unrecognizable character yields a
// LexError.
func (l *lexer) peek() (lexToken, int, error) {
	pos := l.pos
	for pos < len(l.src) && isSpace(l.src[pos]) {
		pos++
	}
	if pos >= len(l.src) {
		return lexToken{kind: tokenEOF, pos: pos}, l.pos, nil
	}
	tok := lexToken{pos: pos}
	switch c := l.src[pos]; c {
	case '(':
		tok.kind = tokenOpen
		tok.text = "("
		return tok, pos + 1, nil
	case ')':
		tok.kind = tokenClose
		tok.text = ")"
		return tok, pos + 1, nil
	case '+', '*', '/':
		tok.kind = tokenOp
		tok.text = string(c)
		return tok, pos + 1, nil
	}
	// Not a bracket or plain operator. A minus sign is only an operator
	// when it doesn't begin a signed numeric literal, so try the number
	// pattern first.
	if m := number.FindString(l.src[pos:]); m != "" {
		tok.kind = tokenNum
		tok.text = strings.ReplaceAll(m, " ", "")
		return tok, pos + len(m), nil
	}
	if l.src[pos] == '-' {
		tok.kind = tokenOp
		tok.text = "-"
		return tok, pos + 1, nil
	}
	return tok, l.pos, &LexError{Col: pos, Snippet: snippet(l.src, pos)}
}

// next scans the next token and commits the advance, recording the
// pre-advance position so that putBack can undo it. When the input is
// exhausted the result is a tokenEOF token with io.EOF; parse rules
// treat that as a signal, not a failure.
func (l *lexer) next() (lexToken, error) {
	tok, pos, err := l.peek()
	if err != nil {
		return tok, err
	}
	if tok.kind == tokenEOF {
		return tok, io.EOF
	}
	l.prev = l.pos
	l.pos = pos
	return tok, nil
}

// putBack rewinds the cursor so that the token most recently returned by
// next is scanned again. Panics if called twice without an intervening
// next; at most one token can be returned to the stream.
func (l *lexer) putBack() {
	if l.prev == noPrev {
		panic("arith: double putBack")
	}
	l.pos = l.prev
	l.prev = noPrev
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// snippet clips a short run of source text starting at pos for error
// messages.
func snippet(src string, pos int) string {
	if pos < 0 {
		pos = 0
	}
	if pos > len(src) {
		pos = len(src)
	}
	end := pos + 10
	if end > len(src) {
		end = len(src)
	}
	return src[pos:end]
}

// LexError indicates input that doesn't begin any token. It implements
// InputError.
type LexError struct {
	// Col is the byte offset of the unrecognized character.
	Col int
	// Snippet is the source text starting at the offending character.
	Snippet string
}

func (err *LexError) Error() string {
	return errpos(err.Col, "unrecognized character: "+strconv.Quote(err.Snippet))
}

func (err *LexError) Pos() int {
	return err.Col
}
