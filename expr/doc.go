// Package expr compiles textual arithmetic into value graphs.
//
// Formulas use the HCL native expression syntax restricted to scalar
// arithmetic:
//
//	numbers      1, 0.5, 1e-3
//	variables    x, w1, bias
//	operators    a + b, a - b, a * b, a / b, -a, (a)
//	functions    relu(a), exp(a), log(a), tanh(a), pow(a, <constant>)
//
// The exponent of pow must be a constant expression (a number, optionally
// negated or parenthesised), because the power rule differentiates only with
// respect to the base.
//
// A Formula is parsed once and can build any number of fresh graphs. Each
// variable name is bound to a caller-supplied leaf; repeated occurrences of
// a name reuse that leaf, so its gradient sums every use:
//
//	f, _ := expr.Parse("x*x + 3*x")
//	x := value.New(2.0)
//	out, _ := expr.Build(f, map[string]*value.Value[float64]{"x": x})
//	out.Backward() // x.Grad() == 2*2 + 3
//
// Errors:
//
//   - ErrSyntax               the source is not a valid expression.
//   - ErrUnsupported          a construct outside the arithmetic subset.
//   - ErrArity                a function called with the wrong argument count.
//   - ErrNonConstantExponent  pow with a non-constant exponent.
//   - ErrUnknownVariable      Build without a binding for a referenced name.
package expr
