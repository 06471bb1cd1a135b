package value_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvgrad/value"
)

// TestNew_Leaf verifies a fresh leaf prints its data and has no parents or tag.
func TestNew_Leaf(t *testing.T) {
	b := value.New(8.0)
	assert.Equal(t, "Value(data=8.0)", b.String())
	assert.Empty(t, b.Parents())
	assert.Equal(t, "", b.Tag())
	assert.Equal(t, value.OpLeaf, b.Op())
	assert.True(t, b.IsLeaf())
	assert.Zero(t, b.Grad())
}

// TestNew_AcceptsSpecialValues ensures no validation is applied to data.
func TestNew_AcceptsSpecialValues(t *testing.T) {
	assert.True(t, math.IsNaN(value.New(math.NaN()).Data()))
	assert.Equal(t, "Value(data=+Inf)", value.New(math.Inf(1)).String())
	assert.Equal(t, "Value(data=-Inf)", value.New(math.Inf(-1)).String())
	assert.Equal(t, "Value(data=NaN)", value.New(math.NaN()).String())
}

// TestString_Formatting covers the fractional-digit rule of the short summary.
func TestString_Formatting(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{8, "Value(data=8.0)"},
		{-16, "Value(data=-16.0)"},
		{0, "Value(data=0.0)"},
		{0.5, "Value(data=0.5)"},
		{1234567, "Value(data=1234567.0)"},
		{1e-7, "Value(data=1e-07)"},
		{1e20, "Value(data=1e+20)"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, value.New(tc.in).String())
	}
}

// TestString_Float32 checks float32 nodes print their shortest float32 form.
func TestString_Float32(t *testing.T) {
	v := value.New(float32(0.1))
	assert.Equal(t, "Value(data=0.1)", v.String())
}

// TestAdd_Forward checks data, parents and tag of an addition.
func TestAdd_Forward(t *testing.T) {
	c := value.New(8.0)
	d := value.New(2.0)
	sum := c.Add(d)

	assert.Equal(t, "Value(data=10.0)", sum.String())
	require.Len(t, sum.Parents(), 2)
	assert.Same(t, c, sum.Parents()[0])
	assert.Same(t, d, sum.Parents()[1])
	assert.Equal(t, "+", sum.Tag())
	assert.False(t, sum.IsLeaf())
}

// TestMul_Forward checks data, parents and tag of a multiplication.
func TestMul_Forward(t *testing.T) {
	c := value.New(8.0)
	d := value.New(-2.0)
	prod := c.Mul(d)

	assert.Equal(t, "Value(data=-16.0)", prod.String())
	assert.ElementsMatch(t, []*value.Value[float64]{c, d}, prod.Parents())
	assert.Equal(t, "*", prod.Tag())
}

// TestForward_Arithmetic checks the forward value of every operator.
func TestForward_Arithmetic(t *testing.T) {
	a := value.New(6.0)
	b := value.New(3.0)

	assert.Equal(t, 9.0, a.Add(b).Data())
	assert.Equal(t, 18.0, a.Mul(b).Data())
	assert.Equal(t, -6.0, a.Neg().Data())
	assert.Equal(t, 3.0, a.Sub(b).Data())
	assert.InDelta(t, 2.0, a.Div(b).Data(), 1e-12)
	assert.Equal(t, 216.0, a.Pow(3).Data())
	assert.Equal(t, 6.0, a.ReLU().Data())
	assert.Equal(t, 0.0, a.Neg().ReLU().Data())
	assert.InDelta(t, math.Exp(3), b.Exp().Data(), 1e-12)
	assert.InDelta(t, math.Log(6), a.Log().Data(), 1e-12)
	assert.InDelta(t, math.Tanh(3), b.Tanh().Data(), 1e-12)
}

// TestNeg_IsDerivedNode ensures negation allocates its own node.
func TestNeg_IsDerivedNode(t *testing.T) {
	a := value.New(4.0)
	n := a.Neg()
	assert.NotSame(t, a, n)
	assert.Equal(t, value.OpNeg, n.Op())
	assert.Equal(t, "neg", n.Tag())
	require.Len(t, n.Parents(), 1)
	assert.Same(t, a, n.Parents()[0])
	assert.Equal(t, 4.0, a.Data(), "operand must not be mutated")
}

// TestSub_Structure verifies subtraction is an addition of a negation.
func TestSub_Structure(t *testing.T) {
	a := value.New(5.0)
	b := value.New(3.0)
	c := a.Sub(b)

	assert.Equal(t, "+", c.Tag())
	require.Len(t, c.Parents(), 2)
	assert.Same(t, a, c.Parents()[0])
	assert.Equal(t, value.OpNeg, c.Parents()[1].Op())
	assert.Same(t, b, c.Parents()[1].Parents()[0])
}

// TestDiv_Structure verifies division is a product with a reciprocal.
func TestDiv_Structure(t *testing.T) {
	a := value.New(5.0)
	b := value.New(2.0)
	c := a.Div(b)

	assert.Equal(t, "*", c.Tag())
	inv := c.Parents()[1]
	assert.Equal(t, "**-1.0", inv.Tag())
	assert.Equal(t, 0.5, inv.Data())
}

// TestPow_Tag checks the exponent is part of the tag.
func TestPow_Tag(t *testing.T) {
	assert.Equal(t, "**2.0", value.New(3.0).Pow(2).Tag())
	assert.Equal(t, "**0.5", value.New(3.0).Pow(0.5).Tag())
}

// TestParents_IdentityNotEquality ensures parent uniqueness is by identity.
func TestParents_IdentityNotEquality(t *testing.T) {
	a := value.New(2.0)
	b := value.New(2.0)

	assert.Len(t, a.Add(b).Parents(), 2, "equal data, distinct nodes")
	assert.Len(t, a.Add(a).Parents(), 1, "same node used twice")
}

// TestParents_ReturnsCopy ensures callers cannot rewire the graph.
func TestParents_ReturnsCopy(t *testing.T) {
	a := value.New(1.0)
	b := value.New(2.0)
	c := a.Add(b)

	ps := c.Parents()
	ps[0] = b
	assert.Same(t, a, c.Parents()[0])
}

// TestID_Monotonic checks identifiers are unique and increase with creation.
func TestID_Monotonic(t *testing.T) {
	a := value.New(1.0)
	b := value.New(1.0)
	c := a.Add(b)
	assert.Less(t, a.ID(), b.ID())
	assert.Less(t, b.ID(), c.ID())
}

// TestLabel_Debug verifies labels are shown by Debug.
func TestLabel_Debug(t *testing.T) {
	a := value.New(2.0, value.WithLabel("a"))
	assert.Equal(t, "a", a.Label())
	assert.Equal(t, "Value(data=2.0, label=a, grad=0.0, op=, prev=[])", a.Debug())
}

// TestOp_String covers every tag and an out-of-range kind.
func TestOp_String(t *testing.T) {
	assert.Equal(t, "", value.OpLeaf.String())
	assert.Equal(t, "+", value.OpAdd.String())
	assert.Equal(t, "*", value.OpMul.String())
	assert.Equal(t, "neg", value.OpNeg.String())
	assert.Equal(t, "**", value.OpPow.String())
	assert.Equal(t, "ReLU", value.OpReLU.String())
	assert.Equal(t, "exp", value.OpExp.String())
	assert.Equal(t, "log", value.OpLog.String())
	assert.Equal(t, "tanh", value.OpTanh.String())
	assert.Equal(t, "unknown", value.Op(200).String())
}
