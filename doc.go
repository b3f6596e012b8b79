// Package arith evaluates arithmetic expressions over float64 values.
//
// Expressions use the operators + - * / with the usual precedence,
// parentheses for grouping, and numeric literals in decimal or exponent
// form, like "2.01e2 - 200". The parser computes results while it parses;
// there is no syntax tree, no variables, and no state kept between calls.
//
package arith
