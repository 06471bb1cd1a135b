package value

import (
	"math"
	"reflect"
	"strconv"
	"strings"
)

// String returns the short summary "Value(data=<data>)".
func (v *Value[T]) String() string {
	return "Value(data=" + formatFloat(v.data) + ")"
}

// Debug returns a deep summary of the node: data, label (if any), grad,
// op tag and, recursively, its parents.
//
//	Value(data=6.0, grad=1.0, op=+, prev=[Value(data=3.0, grad=2.0, op=, prev=[])])
//
// Shared ancestors are printed once per path that reaches them.
func (v *Value[T]) Debug() string {
	var sb strings.Builder
	v.writeDebug(&sb)

	return sb.String()
}

func (v *Value[T]) writeDebug(sb *strings.Builder) {
	sb.WriteString("Value(data=")
	sb.WriteString(formatFloat(v.data))
	if v.label != "" {
		sb.WriteString(", label=")
		sb.WriteString(v.label)
	}
	sb.WriteString(", grad=")
	sb.WriteString(formatFloat(v.grad))
	sb.WriteString(", op=")
	sb.WriteString(v.Tag())
	sb.WriteString(", prev=[")
	for i, p := range v.parents {
		if i > 0 {
			sb.WriteString(", ")
		}
		p.writeDebug(sb)
	}
	sb.WriteString("])")
}

// formatFloat prints x in its shortest round-trip form, always with a
// fractional part: 8 → "8.0", 0.5 → "0.5". Very large or very small
// magnitudes use exponent notation; NaN and ±Inf print as "NaN", "+Inf", "-Inf".
func formatFloat[T Float](x T) string {
	bits := reflect.TypeFor[T]().Bits()
	f := float64(x)

	abs := math.Abs(f)
	format := byte('f')
	if abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		format = 'g'
	}
	s := strconv.FormatFloat(f, format, -1, bits)
	if !strings.ContainsAny(s, ".eEnN") {
		s += ".0"
	}

	return s
}
