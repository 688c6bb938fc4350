package symbolic

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Float is a real number that is either known or given by a symbolic formula.
// The zero value is the number 0.
type Float struct {
	v   float64
	sym string
}

func FloatValue(v float64) Float {
	return Float{v: v}
}

func FloatSymbol(name string) Float {
	return Float{sym: name}
}

func (f Float) IsSymbolic() bool {
	return f.sym != ""
}

// Value returns the numeric value, ok is false for symbolic floats
func (f Float) Value() (float64, bool) {
	if f.IsSymbolic() {
		return 0, false
	}
	return f.v, true
}

func (f Float) Neg() Float {
	if !f.IsSymbolic() {
		return FloatValue(-f.v)
	}
	if inner, ok := negated(f.sym); ok {
		return FloatSymbol(inner)
	}
	return FloatSymbol("-" + f.paren())
}

// negated returns x when sym is "-x" or "-(x)" as written by Neg
func negated(sym string) (string, bool) {
	rest := strings.TrimPrefix(sym, "-")
	if rest == sym || rest == "" {
		return "", false
	}
	if !strings.HasPrefix(rest, "(") {
		if strings.ContainsAny(rest, " /*-") {
			return "", false
		}
		return rest, true
	}
	depth := 0
	for i, c := range rest {
		switch c {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 && i != len(rest)-1 {
				return "", false
			}
		}
	}
	if depth != 0 || !strings.HasSuffix(rest, ")") {
		return "", false
	}
	return rest[1 : len(rest)-1], true
}

func (f Float) Div(d int64) Float {
	if !f.IsSymbolic() {
		return FloatValue(f.v / float64(d))
	}
	return FloatSymbol(f.paren() + "/" + strconv.FormatInt(d, 10))
}

func (f Float) Scale(k float64) Float {
	if !f.IsSymbolic() {
		return FloatValue(f.v * k)
	}
	if k == 1 {
		return f
	}
	return FloatSymbol(formatFloat(k) + "*" + f.paren())
}

func (f Float) Add(o Float) Float {
	if !f.IsSymbolic() && !o.IsSymbolic() {
		return FloatValue(f.v + o.v)
	}
	if !o.IsSymbolic() && o.v == 0 {
		return f
	}
	if !f.IsSymbolic() && f.v == 0 {
		return o
	}
	return FloatSymbol(f.String() + " + " + o.String())
}

func (f Float) Sub(o Float) Float {
	return f.Add(o.Neg())
}

// IsMultipleOf reports whether f is a known integer multiple of step, up to rounding error
func (f Float) IsMultipleOf(step float64) bool {
	if f.IsSymbolic() {
		return false
	}
	q := f.v / step
	return math.Abs(q-math.Round(q)) < 1e-9
}

func (f Float) paren() string {
	if f.sym == "" {
		return formatFloat(f.v)
	}
	for _, c := range f.sym {
		if c == ' ' || c == '/' || c == '*' || c == '-' {
			return "(" + f.sym + ")"
		}
	}
	return f.sym
}

func (f Float) String() string {
	if f.IsSymbolic() {
		return f.sym
	}
	return formatFloat(f.v)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// CeilAffineLog2Inv returns ceil(a*log2(1/eps) + b). For symbolic eps the result is an
// opaque atom.
func CeilAffineLog2Inv(a, b float64, eps Float) Expression {
	if v, ok := eps.Value(); ok {
		return Const(int64(math.Ceil(a*math.Log2(1/v) + b)))
	}
	return Atom(fmt.Sprintf("ceil(%s*log2(1/%s) + %s)", formatFloat(a), eps.paren(), formatFloat(b)))
}
