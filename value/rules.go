package value

// rule propagates the final gradient of out to its operands using the
// chain rule. Contributions are always added, never assigned.
type rule[T Float] func(out *Value[T])

// rules returns the backward rule table indexed by Op.
func rules[T Float]() [opCount]rule[T] {
	return [opCount]rule[T]{
		OpLeaf: leafRule[T],
		OpAdd:  addRule[T],
		OpMul:  mulRule[T],
		OpNeg:  negRule[T],
		OpPow:  powRule[T],
		OpReLU: reluRule[T],
		OpExp:  expRule[T],
		OpLog:  logRule[T],
		OpTanh: tanhRule[T],
	}
}

func leafRule[T Float](*Value[T]) {}

// d(a+b)/da = d(a+b)/db = 1
func addRule[T Float](out *Value[T]) {
	out.lhs.grad += out.grad
	out.rhs.grad += out.grad
}

// d(ab)/da = b, d(ab)/db = a
func mulRule[T Float](out *Value[T]) {
	out.lhs.grad += out.rhs.data * out.grad
	out.rhs.grad += out.lhs.data * out.grad
}

func negRule[T Float](out *Value[T]) {
	out.lhs.grad += -1 * out.grad
}

// d(a^n)/da = n·a^(n-1)
func powRule[T Float](out *Value[T]) {
	n := out.exponent
	out.lhs.grad += n * pow(out.lhs.data, n-1) * out.grad
}

func reluRule[T Float](out *Value[T]) {
	if out.data > 0 {
		out.lhs.grad += out.grad
	}
}

// d(e^a)/da = e^a, which is out.data
func expRule[T Float](out *Value[T]) {
	out.lhs.grad += out.data * out.grad
}

func logRule[T Float](out *Value[T]) {
	out.lhs.grad += out.grad / out.lhs.data
}

// d(tanh a)/da = 1 - tanh²a
func tanhRule[T Float](out *Value[T]) {
	out.lhs.grad += (1 - out.data*out.data) * out.grad
}
