package arith

import (
	"errors"
	"io"
	"strconv"
)

// Expr     = Term ExprTail
// ExprTail = '+' Term ExprTail | '-' Term ExprTail | ε
// Term     = Factor TermTail
// TermTail = '*' Factor TermTail | '/' Factor TermTail | ε
// Factor   = '(' Expr ')' | num
//
// The grammar is stratified to remove left recursion: multiplicative
// operators live in Term/TermTail below the additive ones in
// Expr/ExprTail, which fixes precedence without any precedence table.
// Each rule evaluates as it parses and returns the value of its
// subexpression; the tail rules return an identity-seeded accumulator
// (0 additive, 1 multiplicative) so that their caller combines with
// + or * whether or not the tail was empty.

// Eval evaluates an arithmetic expression and returns its value. On
// malformed input the result is a *LexError or *ParseError describing
// what went wrong and where. Eval stops after the first complete
// expression; a well-formed expression followed by a stray token fails
// at that token rather than being truncated.
func Eval(src string) (float64, error) {
	scan := lex(src)
	v, err := parseexpr(scan)
	if err != nil {
		return 0, err
	}
	// A dangling close parenthesis is never valid, even though Eval
	// otherwise leaves tokens past the first expression unread.
	if tok, _, err := scan.peek(); err == nil && tok.kind == tokenClose {
		return 0, perr(scan, tok, "unbalanced parenthesis")
	}
	return v, nil
}

// parseexpr evaluates Expr = Term ExprTail.
func parseexpr(scan *lexer) (float64, error) {
	t, err := parseterm(scan)
	if err != nil {
		return 0, err
	}
	tail, err := parseexprtail(scan)
	if err != nil {
		return 0, err
	}
	return t + tail, nil
}

// parseexprtail evaluates ExprTail. The result is the sum of the
// remaining signed terms, or 0 for the empty production. A token that
// belongs to an enclosing rule is pushed back.
func parseexprtail(scan *lexer) (float64, error) {
	tok, err := scan.next()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return 0, nil
		}
		return 0, err
	}
	if tok.kind == tokenOp && (tok.text == "+" || tok.text == "-") {
		t, err := parseterm(scan)
		if err != nil {
			return 0, err
		}
		tail, err := parseexprtail(scan)
		if err != nil {
			return 0, err
		}
		if tok.text == "-" {
			t = -t
		}
		return t + tail, nil
	}
	switch tok.kind {
	case tokenOp, tokenOpen, tokenClose:
		scan.putBack()
		return 0, nil
	}
	return 0, perr(scan, tok, "invalid character")
}

// parseterm evaluates Term = Factor TermTail.
func parseterm(scan *lexer) (float64, error) {
	f, err := parsefactor(scan)
	if err != nil {
		return 0, err
	}
	tail, err := parsetermtail(scan)
	if err != nil {
		return 0, err
	}
	return f * tail, nil
}

// parsetermtail evaluates TermTail. The result is the product of the
// remaining factors, or 1 for the empty production. A divisor folds in
// as its reciprocal; dividing by zero follows float64 semantics and
// produces an infinity rather than an error.
func parsetermtail(scan *lexer) (float64, error) {
	tok, err := scan.next()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return 1, nil
		}
		return 0, err
	}
	if tok.kind == tokenOp && (tok.text == "*" || tok.text == "/") {
		f, err := parsefactor(scan)
		if err != nil {
			return 0, err
		}
		tail, err := parsetermtail(scan)
		if err != nil {
			return 0, err
		}
		if tok.text == "/" {
			f = 1 / f
		}
		return f * tail, nil
	}
	switch tok.kind {
	case tokenOp, tokenOpen, tokenClose:
		scan.putBack()
		return 1, nil
	}
	return 0, perr(scan, tok, "invalid character")
}

// parsefactor evaluates Factor = '(' Expr ')' | num.
func parsefactor(scan *lexer) (float64, error) {
	tok, err := scan.next()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return 0, perr(scan, tok, "unexpected end of input")
		}
		return 0, err
	}
	switch tok.kind {
	case tokenOpen:
		v, err := parseexpr(scan)
		if err != nil {
			return 0, err
		}
		end, err := scan.next()
		if err != nil && !errors.Is(err, io.EOF) {
			return 0, err
		}
		if end.kind != tokenClose {
			return 0, perr(scan, end, "unbalanced parenthesis")
		}
		return v, nil
	case tokenNum:
		// The token already matched the number pattern. Out-of-range
		// literals saturate to an infinity rather than failing.
		v, err := strconv.ParseFloat(tok.text, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			panic("arith: invalid number token " + tok.String())
		}
		return v, nil
	}
	return 0, perr(scan, tok, "unexpected token")
}

// perr builds a ParseError for an offending token.
func perr(scan *lexer, tok lexToken, msg string) *ParseError {
	return &ParseError{
		Col:     tok.pos,
		Token:   tok.text,
		Msg:     msg,
		Snippet: snippet(scan.src, tok.pos),
	}
}
