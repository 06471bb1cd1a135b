// Package value declares Float, Op, Value, LeafOption and the New
// constructor.
package value

import "sync/atomic"

// Float is the set of scalar types a Value can hold. Only floating-point
// types qualify because Pow and Div need real exponentiation and reciprocals.
type Float interface {
	~float32 | ~float64
}

// Op identifies the operation that produced a node. It selects the backward
// rule; the textual form returned by String is diagnostic only.
type Op uint8

// Operation kinds. OpLeaf marks inputs created with New.
const (
	OpLeaf Op = iota // leaf: no parents, no-op backward rule
	OpAdd            // a + b
	OpMul            // a * b
	OpNeg            // -a
	OpPow            // a ** n, n a constant
	OpReLU           // max(0, a)
	OpExp            // e ** a
	OpLog            // ln(a)
	OpTanh           // tanh(a)

	opCount // number of operation kinds; sizes the rule table
)

var opTags = [opCount]string{
	OpLeaf: "",
	OpAdd:  "+",
	OpMul:  "*",
	OpNeg:  "neg",
	OpPow:  "**",
	OpReLU: "ReLU",
	OpExp:  "exp",
	OpLog:  "log",
	OpTanh: "tanh",
}

// String returns the tag of the operation ("" for leaves).
func (op Op) String() string {
	if op >= opCount {
		return "unknown"
	}

	return opTags[op]
}

// nextID is the process-wide node identifier counter.
var nextID atomic.Uint64

// Value is a node of the computation graph.
//
// data is fixed at construction. grad starts at 0 and is only accumulated
// by backward passes, except for the root of a pass which is set to 1.
// lhs/rhs are the ordered operands consumed by the backward rule; parents
// holds the same nodes deduplicated by identity.
type Value[T Float] struct {
	data T
	grad T

	op       Op
	lhs      *Value[T] // first operand, nil for leaves
	rhs      *Value[T] // second operand of binary ops, else nil
	exponent T         // constant exponent of OpPow

	parents []*Value[T] // unique operands in operand order

	id    uint64 // process-unique, increasing in creation order
	label string // optional leaf name for diagnostics
}

// LeafOption configures a leaf created by New.
type LeafOption func(*leafOptions)

type leafOptions struct {
	label string
}

// WithLabel attaches a diagnostic name to a leaf. It is printed by Debug.
func WithLabel(label string) LeafOption {
	return func(o *leafOptions) { o.label = label }
}

// New creates a leaf node holding data. Any value, including NaN and ±Inf,
// is accepted. The leaf has no parents and its backward rule does nothing.
// Complexity: O(1)
func New[T Float](data T, opts ...LeafOption) *Value[T] {
	var o leafOptions
	for _, opt := range opts {
		opt(&o)
	}

	return &Value[T]{
		data:  data,
		op:    OpLeaf,
		id:    nextID.Add(1),
		label: o.label,
	}
}

// derive allocates the result node of an operation. rhs may be nil for
// unary operations. Parents are deduplicated by identity.
func derive[T Float](data T, op Op, lhs, rhs *Value[T]) *Value[T] {
	out := &Value[T]{
		data: data,
		op:   op,
		lhs:  lhs,
		rhs:  rhs,
		id:   nextID.Add(1),
	}
	out.parents = make([]*Value[T], 0, 2)
	out.parents = append(out.parents, lhs)
	if rhs != nil && rhs != lhs {
		out.parents = append(out.parents, rhs)
	}

	return out
}

// Data returns the scalar held by the node.
func (v *Value[T]) Data() T { return v.data }

// Grad returns the accumulated gradient.
func (v *Value[T]) Grad() T { return v.grad }

// SetGrad overwrites the accumulated gradient.
func (v *Value[T]) SetGrad(g T) { v.grad = g }

// Op returns the operation that produced the node, OpLeaf for inputs.
func (v *Value[T]) Op() Op { return v.op }

// Tag returns the diagnostic operation tag. For powers the exponent is
// included, e.g. "**2.0".
func (v *Value[T]) Tag() string {
	if v.op == OpPow {
		return v.op.String() + formatFloat(v.exponent)
	}

	return v.op.String()
}

// ID returns the process-unique identifier of the node.
func (v *Value[T]) ID() uint64 { return v.id }

// Label returns the name given with WithLabel, or "".
func (v *Value[T]) Label() string { return v.label }

// Parents returns a copy of the unique nodes this node was derived from.
// It is empty for leaves.
func (v *Value[T]) Parents() []*Value[T] {
	return append([]*Value[T](nil), v.parents...)
}

// IsLeaf reports whether the node was created by New.
func (v *Value[T]) IsLeaf() bool { return v.op == OpLeaf }

// parentsOf exposes the parent slice without copying, for traversals.
func parentsOf[T Float](v *Value[T]) []*Value[T] { return v.parents }
