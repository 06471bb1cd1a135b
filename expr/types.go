package expr

import (
	"errors"

	"github.com/hashicorp/hcl/v2/hclsyntax"
)

// Sentinel errors for formula parsing and building.
var (
	// ErrSyntax indicates the source could not be parsed as an expression.
	ErrSyntax = errors.New("expr: syntax error")

	// ErrUnsupported indicates a valid expression outside the arithmetic subset,
	// such as a string literal, a conditional or attribute access.
	ErrUnsupported = errors.New("expr: unsupported construct")

	// ErrArity indicates a function was called with the wrong number of arguments.
	ErrArity = errors.New("expr: wrong number of arguments")

	// ErrNonConstantExponent indicates pow was given a non-constant exponent.
	ErrNonConstantExponent = errors.New("expr: exponent must be constant")

	// ErrUnknownVariable indicates Build found no binding for a referenced name.
	ErrUnknownVariable = errors.New("expr: unknown variable")
)

// funcArity lists the callable functions and their argument counts.
var funcArity = map[string]int{
	"relu": 1,
	"exp":  1,
	"log":  1,
	"tanh": 1,
	"pow":  2,
}

// Formula is a parsed, validated expression ready to build graphs.
type Formula struct {
	src  string
	root hclsyntax.Expression
	vars []string // sorted, unique
}

// String returns the source text of the formula.
func (f *Formula) String() string { return f.src }

// Variables returns the sorted, unique variable names the formula references.
func (f *Formula) Variables() []string {
	return append([]string(nil), f.vars...)
}
