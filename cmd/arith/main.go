package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/expreval/arith"
)

func main() {
	log.SetFlags(0)
	var (
		inname string
		verb   string
		check  bool
	)
	flag.StringVar(&inname, "in", "", "input file (default stdin if no args given)")
	flag.StringVar(&verb, "fmt", "%g", "result formatting string")
	flag.BoolVar(&check, "check", false, "evaluate the built-in demonstration expressions and report PASS/FAIL")
	flag.Parse()

	if check {
		os.Exit(selftest(os.Stdout))
	}

	verb += "\n"
	if flag.NArg() > 0 {
		for _, arg := range flag.Args() {
			eval(arg, verb)
		}
		return
	}

	f := os.Stdin
	if inname != "" && inname != "-" {
		in, err := os.Open(inname)
		if err != nil {
			log.Fatal(err)
		}
		defer in.Close()
		f = in
	}
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		eval(line, verb)
	}
	if err := sc.Err(); err != nil {
		log.Fatal(err)
	}
}

func eval(src, verb string) {
	r, err := arith.Eval(src)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf(verb, r)
}

// demos are the demonstration expressions, with their expected values
// written as the equivalent Go arithmetic.
var demos = []struct {
	src  string
	want float64
}{
	{"1 + 1", 1 + 1},
	{"2 * 3", 2 * 3},
	{"5 / 4", 5.0 / 4},
	{"2 * 3 + 1", 2*3 + 1},
	{"1 + 2 * 3", 1 + 2*3},
	{"(2 * 3) + 1", (2 * 3) + 1},
	{"2 * (3 + 1)", 2 * (3 + 1)},
	{"(2 + 1) * 3", (2 + 1) * 3},
	{"-2 + 3", -2 + 3},
	{"5 + (-2)", 5 + (-2)},
	{"5 * -2", 5 * -2},
	{"-1 - -2", -1 - -2},
	{"-1 - 2", -1 - 2},
	{"4 - 5", 4 - 5},
	{"1 - 2", 1 - 2},
	{"3 - ((8 + 3) * -2)", 3 - ((8 + 3) * -2)},
	{"2.01e2 - 200", 2.01e2 - 200},
	{"2*3*4", 2 * 3 * 4},
	{"2 + 3 + 4 * 3 * 2 + 2", 2 + 3 + 4*3*2 + 2},
	{"10 + 11", 10 + 11},
}

// demoErrs are demonstration expressions that must fail.
var demoErrs = []string{
	"1 1 1",
	"(1",
}

// selftest runs the demonstration table and reports one PASS/FAIL line
// per case. The result is 0 when every case passes.
func selftest(w *os.File) int {
	code := 0
	for _, c := range demos {
		r, err := arith.Eval(c.src)
		switch {
		case err != nil:
			fmt.Fprintf(w, "Expression: %s - FAIL (%v)\n", c.src, err)
			code = 1
		case r != c.want:
			fmt.Fprintf(w, "Expression: %s - FAIL (got %g, want %g)\n", c.src, r, c.want)
			code = 1
		default:
			fmt.Fprintf(w, "Expression: %s - PASS\n", c.src)
		}
	}
	for _, src := range demoErrs {
		_, err := arith.Eval(src)
		if err == nil {
			fmt.Fprintf(w, "Expression: %s - FAIL (expected an error)\n", src)
			code = 1
			continue
		}
		fmt.Fprintf(w, "Expression: %s - PASS (%v)\n", src, err)
	}
	return code
}
