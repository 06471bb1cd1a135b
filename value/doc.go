// Package value implements a scalar reverse-mode automatic-differentiation
// engine.
//
// Every arithmetic operation on a *Value allocates a new node that records
// its operands and the kind of operation that produced it. The nodes form a
// directed acyclic graph rooted at the final result; calling Backward on
// that result orders the graph parents-first (see package dfs), seeds the
// root gradient with 1 and walks the order in reverse, applying the local
// derivative rule of each node exactly once.
//
//	a := value.New(2.0)
//	b := value.New(-3.0)
//	c := a.Mul(b).Add(a.Pow(2)) // c = a*b + a²
//	c.Backward()
//	a.Grad() // b + 2a = 1
//	b.Grad() // a      = 2
//
// Operations:
//
//	Add, Sub, Mul, Div, Neg, Pow, ReLU, Exp, Log, Tanh
//
// Sub and Div are composed from Add+Neg and Mul+Pow(-1) respectively, so
// they show up in the graph as those primitive nodes.
//
// Identity:
//
//	Nodes are compared by pointer identity only. Two nodes holding equal data
//	are different nodes; a.Add(a) has a single parent and contributes twice
//	to its gradient.
//
// Numeric type:
//
//	Value is generic over Float (~float32 | ~float64). Integer instantiations
//	such as Value[int] do not compile, which rules out integer power and
//	division at the type level instead of at run time.
//
// Errors:
//
//	None. Numeric edge cases (division by zero, log of a non-positive number)
//	surface as ±Inf or NaN in Data and Grad.
//
// Concurrency:
//
//	A graph is not safe for concurrent mutation; build and differentiate it
//	from one goroutine. Independent graphs may live on different goroutines.
package value
