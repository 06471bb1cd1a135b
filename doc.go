// Package lvgrad is a small scalar automatic-differentiation engine: compose
// numbers into a computation graph, then get the gradient of the result with
// respect to every input from one backward pass.
//
// What is inside?
//
//	• Value nodes: scalar data, accumulated gradient, unique parents, op kind
//	• Operators: Add, Sub, Mul, Div, Neg, Pow, ReLU, Exp, Log, Tanh
//	• Topological ordering: iterative, identity-keyed, parents first
//	• Backward driver: seed the root with 1, apply each local rule once
//	• Formulas: "relu(w*x + b)" parsed into reusable graph builders
//
// Under the hood, everything is organized under three subpackages:
//
//	dfs/   — generic iterative topological ordering and cycle detection
//	value/ — Value node, operators, backward rules and driver, formatting
//	expr/  — formula parsing (HCL expression syntax) and graph building
//
// Quick example:
//
//	a := value.New(3.0)
//	b := a.Add(a)
//	b.Backward()
//	// b.Data() == 6, b.Grad() == 1, a.Grad() == 2
//
// The graph is rebuilt for every forward computation; nodes are immutable
// apart from their gradients.
//
//	go get github.com/katalvlaran/lvgrad
package lvgrad
