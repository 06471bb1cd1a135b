package expr

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/hclsyntax"

	"github.com/katalvlaran/lvgrad/value"
)

// builder turns a validated syntax tree into value nodes.
type builder[T value.Float] struct {
	vars map[string]*value.Value[T]
}

// Build creates a fresh graph for f. Every variable of f must be bound in
// vars; numeric literals become new leaves. The returned node is the root
// of the graph, ready for Backward.
func Build[T value.Float](f *Formula, vars map[string]*value.Value[T]) (*value.Value[T], error) {
	for _, name := range f.vars {
		if vars[name] == nil {
			return nil, fmt.Errorf("%w: %q", ErrUnknownVariable, name)
		}
	}
	b := builder[T]{vars: vars}

	return b.build(f.root)
}

// Eval parses src and builds it in one step.
func Eval[T value.Float](src string, vars map[string]*value.Value[T]) (*value.Value[T], error) {
	f, err := Parse(src)
	if err != nil {
		return nil, err
	}

	return Build(f, vars)
}

// Bind creates one leaf per variable of f, labelled with the variable name
// and initialised from values.
func Bind[T value.Float](f *Formula, values map[string]T) (map[string]*value.Value[T], error) {
	leaves := make(map[string]*value.Value[T], len(f.vars))
	for _, name := range f.vars {
		x, ok := values[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownVariable, name)
		}
		leaves[name] = value.New(x, value.WithLabel(name))
	}

	return leaves, nil
}

func (b *builder[T]) build(e hclsyntax.Expression) (*value.Value[T], error) {
	switch x := e.(type) {
	case *hclsyntax.LiteralValueExpr:
		f, err := number(x)
		if err != nil {
			return nil, err
		}

		return value.New(T(f)), nil
	case *hclsyntax.ScopeTraversalExpr:
		name, err := variableName(x)
		if err != nil {
			return nil, err
		}

		return b.vars[name], nil
	case *hclsyntax.ParenthesesExpr:
		return b.build(x.Expression)
	case *hclsyntax.UnaryOpExpr:
		v, err := b.build(x.Val)
		if err != nil {
			return nil, err
		}

		return v.Neg(), nil
	case *hclsyntax.BinaryOpExpr:
		return b.binary(x)
	case *hclsyntax.FunctionCallExpr:
		return b.call(x)
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupported, e)
	}
}

func (b *builder[T]) binary(x *hclsyntax.BinaryOpExpr) (*value.Value[T], error) {
	lhs, err := b.build(x.LHS)
	if err != nil {
		return nil, err
	}
	rhs, err := b.build(x.RHS)
	if err != nil {
		return nil, err
	}

	switch x.Op {
	case hclsyntax.OpAdd:
		return lhs.Add(rhs), nil
	case hclsyntax.OpSubtract:
		return lhs.Sub(rhs), nil
	case hclsyntax.OpMultiply:
		return lhs.Mul(rhs), nil
	case hclsyntax.OpDivide:
		return lhs.Div(rhs), nil
	}

	return nil, fmt.Errorf("%w: binary operator at %s", ErrUnsupported, x.Range())
}

func (b *builder[T]) call(x *hclsyntax.FunctionCallExpr) (*value.Value[T], error) {
	arg, err := b.build(x.Args[0])
	if err != nil {
		return nil, err
	}

	switch x.Name {
	case "relu":
		return arg.ReLU(), nil
	case "exp":
		return arg.Exp(), nil
	case "log":
		return arg.Log(), nil
	case "tanh":
		return arg.Tanh(), nil
	case "pow":
		n, _ := constant(x.Args[1])

		return arg.Pow(T(n)), nil
	}

	return nil, fmt.Errorf("%w: function %q at %s", ErrUnsupported, x.Name, x.Range())
}
