package value

import "math"

// Add returns v + other.
func (v *Value[T]) Add(other *Value[T]) *Value[T] {
	return derive(v.data+other.data, OpAdd, v, other)
}

// Mul returns v * other.
func (v *Value[T]) Mul(other *Value[T]) *Value[T] {
	return derive(v.data*other.data, OpMul, v, other)
}

// Neg returns -v as its own node, so the gradient reaching it is passed on
// to v with the sign flipped.
func (v *Value[T]) Neg() *Value[T] {
	return derive(-v.data, OpNeg, v, nil)
}

// Sub returns v - other, built as v + (-other).
func (v *Value[T]) Sub(other *Value[T]) *Value[T] {
	return v.Add(other.Neg())
}

// Pow returns v raised to the constant exponent n.
func (v *Value[T]) Pow(n T) *Value[T] {
	out := derive(pow(v.data, n), OpPow, v, nil)
	out.exponent = n

	return out
}

// Div returns v / other, built as v * other**-1.
// A zero divisor yields ±Inf (or NaN for 0/0), not a panic.
func (v *Value[T]) Div(other *Value[T]) *Value[T] {
	return v.Mul(other.Pow(-1))
}

// ReLU returns max(0, v). NaN passes through unchanged.
func (v *Value[T]) ReLU() *Value[T] {
	data := v.data
	if data < 0 {
		data = 0
	}

	return derive(data, OpReLU, v, nil)
}

// Exp returns e**v.
func (v *Value[T]) Exp() *Value[T] {
	return derive(T(math.Exp(float64(v.data))), OpExp, v, nil)
}

// Log returns the natural logarithm of v.
// Non-positive inputs give -Inf or NaN.
func (v *Value[T]) Log() *Value[T] {
	return derive(T(math.Log(float64(v.data))), OpLog, v, nil)
}

// Tanh returns the hyperbolic tangent of v.
func (v *Value[T]) Tanh() *Value[T] {
	return derive(T(math.Tanh(float64(v.data))), OpTanh, v, nil)
}

// pow computes x**n in float64 and converts back to T.
func pow[T Float](x, n T) T {
	return T(math.Pow(float64(x), float64(n)))
}
