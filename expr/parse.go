package expr

import (
	"fmt"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
)

// binaryOps maps the supported HCL binary operations to their symbols.
var binaryOps = map[*hclsyntax.Operation]string{
	hclsyntax.OpAdd:      "+",
	hclsyntax.OpSubtract: "-",
	hclsyntax.OpMultiply: "*",
	hclsyntax.OpDivide:   "/",
}

// Parse parses src and validates that it stays within the arithmetic subset.
// The returned Formula can build any number of graphs.
func Parse(src string) (*Formula, error) {
	// 1. Parse with the HCL native syntax parser
	root, diags := hclsyntax.ParseExpression([]byte(src), "formula", hcl.Pos{Line: 1, Column: 1, Byte: 0})
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: %s", ErrSyntax, diags.Error())
	}

	// 2. Reject anything the builder cannot turn into graph nodes
	if err := check(root); err != nil {
		return nil, err
	}

	// 3. Collect variable names (sorted, unique) for binding
	seen := make(map[string]struct{})
	vars := make([]string, 0)
	for _, tr := range root.Variables() {
		name := tr.RootName()
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		vars = append(vars, name)
	}
	sort.Strings(vars)

	return &Formula{src: src, root: root, vars: vars}, nil
}

// check walks the syntax tree and reports the first unsupported construct.
func check(e hclsyntax.Expression) error {
	switch x := e.(type) {
	case *hclsyntax.LiteralValueExpr:
		_, err := number(x)

		return err
	case *hclsyntax.ScopeTraversalExpr:
		_, err := variableName(x)

		return err
	case *hclsyntax.ParenthesesExpr:
		return check(x.Expression)
	case *hclsyntax.UnaryOpExpr:
		if x.Op != hclsyntax.OpNegate {
			return fmt.Errorf("%w: unary operator at %s", ErrUnsupported, x.Range())
		}

		return check(x.Val)
	case *hclsyntax.BinaryOpExpr:
		if _, ok := binaryOps[x.Op]; !ok {
			return fmt.Errorf("%w: binary operator at %s", ErrUnsupported, x.Range())
		}
		if err := check(x.LHS); err != nil {
			return err
		}

		return check(x.RHS)
	case *hclsyntax.FunctionCallExpr:
		return checkCall(x)
	case nil:
		return fmt.Errorf("%w: empty expression", ErrUnsupported)
	default:
		return fmt.Errorf("%w: %T at %s", ErrUnsupported, e, e.Range())
	}
}

// checkCall validates name, arity and, for pow, the constant exponent.
func checkCall(x *hclsyntax.FunctionCallExpr) error {
	want, ok := funcArity[x.Name]
	if !ok {
		return fmt.Errorf("%w: function %q at %s", ErrUnsupported, x.Name, x.Range())
	}
	if x.ExpandFinal {
		return fmt.Errorf("%w: argument expansion in %q at %s", ErrUnsupported, x.Name, x.Range())
	}
	if len(x.Args) != want {
		return fmt.Errorf("%w: %s takes %d, got %d at %s", ErrArity, x.Name, want, len(x.Args), x.Range())
	}
	if x.Name == "pow" {
		if _, ok = constant(x.Args[1]); !ok {
			return fmt.Errorf("%w: at %s", ErrNonConstantExponent, x.Args[1].Range())
		}
	}

	return check(x.Args[0])
}

// number extracts the float value of a numeric literal.
func number(x *hclsyntax.LiteralValueExpr) (float64, error) {
	v := x.Val
	if v.IsNull() || !v.IsKnown() || !v.Type().Equals(cty.Number) {
		return 0, fmt.Errorf("%w: %s literal at %s", ErrUnsupported, v.Type().FriendlyName(), x.Range())
	}
	f, _ := v.AsBigFloat().Float64()

	return f, nil
}

// constant folds a numeric literal, optionally negated or parenthesised.
func constant(e hclsyntax.Expression) (float64, bool) {
	switch x := e.(type) {
	case *hclsyntax.LiteralValueExpr:
		f, err := number(x)

		return f, err == nil
	case *hclsyntax.ParenthesesExpr:
		return constant(x.Expression)
	case *hclsyntax.UnaryOpExpr:
		if x.Op == hclsyntax.OpNegate {
			f, ok := constant(x.Val)

			return -f, ok
		}
	}

	return 0, false
}

// variableName returns the name of a bare variable reference. Attribute and
// index traversals such as a.b or a[0] are rejected.
func variableName(x *hclsyntax.ScopeTraversalExpr) (string, error) {
	if len(x.Traversal) != 1 {
		return "", fmt.Errorf("%w: traversal %q at %s", ErrUnsupported, x.Traversal.RootName(), x.Range())
	}

	return x.Traversal.RootName(), nil
}
