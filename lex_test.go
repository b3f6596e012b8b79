package arith

import (
	"io"
	"testing"
)

func TestLex(t *testing.T) {
	cases := []struct {
		src    string
		tokens []lexToken
		errCol int // column of the trailing LexError, -1 for clean EOF
	}{
		// spaces
		{"", nil, -1},
		{" \t \r\n ", nil, -1},
		// numbers
		{"0", []lexToken{{text: "0", kind: tokenNum, pos: 0}}, -1},
		{"9876543210", []lexToken{{text: "9876543210", kind: tokenNum, pos: 0}}, -1},
		{"1 0", []lexToken{{text: "1", kind: tokenNum, pos: 0}, {text: "0", kind: tokenNum, pos: 2}}, -1},
		{"1.0", []lexToken{{text: "1.0", kind: tokenNum, pos: 0}}, -1},
		{"1.", []lexToken{{text: "1.", kind: tokenNum, pos: 0}}, -1},
		{".5", []lexToken{{text: ".5", kind: tokenNum, pos: 0}}, -1},
		{"1e1", []lexToken{{text: "1e1", kind: tokenNum, pos: 0}}, -1},
		{"2.01e2", []lexToken{{text: "2.01e2", kind: tokenNum, pos: 0}}, -1},
		{".5e3", []lexToken{{text: ".5e3", kind: tokenNum, pos: 0}}, -1},
		// the exponent takes no sign and no bare marker
		{"1e", []lexToken{{text: "1", kind: tokenNum, pos: 0}}, 1},
		{"1e+1", []lexToken{{text: "1", kind: tokenNum, pos: 0}}, 1},
		{"1.1.1", []lexToken{{text: "1.1", kind: tokenNum, pos: 0}, {text: ".1", kind: tokenNum, pos: 3}}, -1},
		// signed literals and the minus operator
		{"-1", []lexToken{{text: "-1", kind: tokenNum, pos: 0}}, -1},
		{"+1", []lexToken{{text: "+", kind: tokenOp, pos: 0}, {text: "1", kind: tokenNum, pos: 1}}, -1},
		{"- 1", []lexToken{{text: "-", kind: tokenOp, pos: 0}, {text: "1", kind: tokenNum, pos: 2}}, -1},
		{"--1", []lexToken{{text: "-", kind: tokenOp, pos: 0}, {text: "-1", kind: tokenNum, pos: 1}}, -1},
		{"1-0", []lexToken{{text: "1", kind: tokenNum, pos: 0}, {text: "-0", kind: tokenNum, pos: 1}}, -1},
		{"1 - 0", []lexToken{{text: "1", kind: tokenNum, pos: 0}, {text: "-", kind: tokenOp, pos: 2}, {text: "0", kind: tokenNum, pos: 4}}, -1},
		{"-", []lexToken{{text: "-", kind: tokenOp, pos: 0}}, -1},
		// operators and parentheses
		{"+", []lexToken{{text: "+", kind: tokenOp, pos: 0}}, -1},
		{"1+0", []lexToken{{text: "1", kind: tokenNum, pos: 0}, {text: "+", kind: tokenOp, pos: 1}, {text: "0", kind: tokenNum, pos: 2}}, -1},
		{"1*0", []lexToken{{text: "1", kind: tokenNum, pos: 0}, {text: "*", kind: tokenOp, pos: 1}, {text: "0", kind: tokenNum, pos: 2}}, -1},
		{"1/0", []lexToken{{text: "1", kind: tokenNum, pos: 0}, {text: "/", kind: tokenOp, pos: 1}, {text: "0", kind: tokenNum, pos: 2}}, -1},
		{"()", []lexToken{{text: "(", kind: tokenOpen, pos: 0}, {text: ")", kind: tokenClose, pos: 1}}, -1},
		{"(1)", []lexToken{{text: "(", kind: tokenOpen, pos: 0}, {text: "1", kind: tokenNum, pos: 1}, {text: ")", kind: tokenClose, pos: 2}}, -1},
		// erroneous characters
		{".", nil, 0},
		{"$", nil, 0},
		{"a", nil, 0},
		{"1 $", []lexToken{{text: "1", kind: tokenNum, pos: 0}}, 2},
		{"1 x 1", []lexToken{{text: "1", kind: tokenNum, pos: 0}}, 2},
	}

	for _, c := range cases {
		scan := lex(c.src)
		for _, want := range c.tokens {
			got, err := scan.next()
			if err == io.EOF {
				t.Errorf("scanning %q: expected token %v but got EOF", c.src, want)
				break
			}
			if err != nil {
				t.Errorf("scanning %q: unexpected error %v", c.src, err)
				break
			}
			if got != want {
				t.Errorf("scanning %q: want %v, got %v", c.src, want, got)
			}
		}
		got, err := scan.next()
		switch {
		case c.errCol < 0:
			if err != io.EOF {
				t.Errorf("scanning %q: want EOF, got token %v with error %v", c.src, got, err)
			}
		default:
			lerr, ok := err.(*LexError)
			if !ok {
				t.Errorf("scanning %q: want *LexError, got token %v with error %v", c.src, got, err)
				continue
			}
			if lerr.Col != c.errCol {
				t.Errorf("scanning %q: error at column %d, want %d", c.src, lerr.Col, c.errCol)
			}
		}
	}
}

func TestLexPeek(t *testing.T) {
	scan := lex("1 + 2")
	tok1, pos1, err := scan.peek()
	if err != nil {
		t.Fatalf("peek error: %v", err)
	}
	tok2, pos2, err := scan.peek()
	if err != nil {
		t.Fatalf("second peek error: %v", err)
	}
	if tok1 != tok2 || pos1 != pos2 {
		t.Errorf("peek advanced: %v@%d then %v@%d", tok1, pos1, tok2, pos2)
	}
	got, err := scan.next()
	if err != nil {
		t.Fatalf("next error: %v", err)
	}
	if got != tok1 {
		t.Errorf("next returned %v after peeking %v", got, tok1)
	}
}

func TestLexPutBack(t *testing.T) {
	scan := lex("1 + 2")
	first, err := scan.next()
	if err != nil {
		t.Fatalf("next error: %v", err)
	}
	scan.putBack()
	again, err := scan.next()
	if err != nil {
		t.Fatalf("next after putBack error: %v", err)
	}
	if first != again {
		t.Errorf("putBack changed the token: %v then %v", first, again)
	}
	if _, err := scan.next(); err != nil {
		t.Fatalf("next error: %v", err)
	}
}

func TestLexDoublePutBack(t *testing.T) {
	scan := lex("1 + 2")
	if _, err := scan.next(); err != nil {
		t.Fatalf("next error: %v", err)
	}
	scan.putBack()
	defer func() {
		if recover() == nil {
			t.Error("second putBack did not panic")
		}
	}()
	scan.putBack()
}
