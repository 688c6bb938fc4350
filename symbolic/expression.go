// Package symbolic provides integer expressions over named symbols, used for resource
// counts that depend on parameters such as bit sizes or synthesis precision.
package symbolic

import (
	"sort"
	"strconv"
	"strings"

	"github.com/PolyhedraZK/BloqCostCollection/utils"
)

// Expression is a sorted sum of terms with nonzero coefficients. The empty expression is 0.
type Expression []Term

// Const returns c
func Const(c int64) Expression {
	if c == 0 {
		return Expression{}
	}
	return Expression{NewTerm(c)}
}

// Symbol returns a free integer symbol
func Symbol(name string) Expression {
	return Expression{NewTerm(1, name)}
}

// Atom returns an opaque atom, e.g. an unevaluated function application.
// Two atoms are equal iff their texts are equal.
func Atom(text string) Expression {
	return Symbol(text)
}

func (e Expression) Clone() Expression {
	res := make(Expression, len(e))
	copy(res, e)
	return res
}

func (e Expression) Len() int {
	return len(e)
}

func (e Expression) Swap(i, j int) {
	e[i], e[j] = e[j], e[i]
}

func (e Expression) Less(i, j int) bool {
	return e[i].Mono < e[j].Mono
}

// normalize sorts the terms, merges equal monomials and drops zero terms
func normalize(terms []Term) Expression {
	e := Expression(terms)
	sort.Stable(e)
	res := make(Expression, 0, len(e))
	for _, t := range e {
		if n := len(res); n > 0 && res[n-1].Mono == t.Mono {
			res[n-1].Coeff += t.Coeff
			if res[n-1].Coeff == 0 {
				res = res[:n-1]
			}
			continue
		}
		if t.Coeff != 0 {
			res = append(res, t)
		}
	}
	return res
}

func (e Expression) Add(o Expression) Expression {
	terms := make([]Term, 0, len(e)+len(o))
	terms = append(terms, e...)
	terms = append(terms, o...)
	return normalize(terms)
}

func (e Expression) Sub(o Expression) Expression {
	return e.Add(o.Scale(-1))
}

func (e Expression) Scale(c int64) Expression {
	if c == 0 {
		return Expression{}
	}
	res := e.Clone()
	for i := range res {
		res[i].Coeff *= c
	}
	return res
}

func (e Expression) Mul(o Expression) Expression {
	terms := make([]Term, 0, len(e)*len(o))
	for _, x := range e {
		for _, y := range o {
			terms = append(terms, Term{Mono: mulMono(x.Mono, y.Mono), Coeff: x.Coeff * y.Coeff})
		}
	}
	return normalize(terms)
}

// Sum returns the sum of all given expressions
func Sum(es ...Expression) Expression {
	terms := []Term{}
	for _, e := range es {
		terms = append(terms, e...)
	}
	return normalize(terms)
}

// Equal returns true if both normalized expressions are the same
func (e Expression) Equal(o Expression) bool {
	if len(e) != len(o) {
		return false
	}
	for i := 0; i < len(e); i++ {
		if e[i] != o[i] {
			return false
		}
	}
	return true
}

// EqualI is similar to Equal, but o is utils.Hashable. Then it can be saved in a utils.Map
func (e Expression) EqualI(o utils.Hashable) bool {
	return e.Equal(o.(Expression))
}

// HashCode returns a fast-to-compute but NOT collision resistant hash code
func (e Expression) HashCode() uint64 {
	h := uint64(17)
	for _, t := range e {
		h = h*23 + t.HashCode()
	}
	return h
}

// Degree returns the degree of the polynomial
func (e Expression) Degree() int {
	res := 0
	for _, t := range e {
		if d := t.Degree(); d > res {
			res = d
		}
	}
	return res
}

func (e Expression) IsConstant() bool {
	for _, t := range e {
		if t.Mono != "" {
			return false
		}
	}
	return true
}

func (e Expression) IsZero() bool {
	return len(e) == 0
}

// Int returns the value of a constant expression
func (e Expression) Int() (int64, bool) {
	if !e.IsConstant() {
		return 0, false
	}
	if len(e) == 0 {
		return 0, true
	}
	return e[0].Coeff, true
}

// Symbols returns the sorted distinct atoms appearing in the expression
func (e Expression) Symbols() []string {
	seen := map[string]bool{}
	res := []string{}
	for _, t := range e {
		for _, a := range t.Atoms() {
			if !seen[a] {
				seen[a] = true
				res = append(res, a)
			}
		}
	}
	sort.Strings(res)
	return res
}

// Substitute replaces every occurrence of the symbol name by v
func (e Expression) Substitute(name string, v int64) Expression {
	terms := make([]Term, 0, len(e))
	for _, t := range e {
		coeff := t.Coeff
		rest := []string{}
		for _, a := range t.Atoms() {
			if a == name {
				coeff *= v
			} else {
				rest = append(rest, a)
			}
		}
		terms = append(terms, NewTerm(coeff, rest...))
	}
	return normalize(terms)
}

func (e Expression) String() string {
	if len(e) == 0 {
		return "0"
	}
	var sb strings.Builder
	for i, t := range e {
		c := t.Coeff
		if i > 0 {
			if c < 0 {
				sb.WriteString(" - ")
				c = -c
			} else {
				sb.WriteString(" + ")
			}
		} else if c < 0 && t.Mono != "" {
			sb.WriteString("-")
			c = -c
		}
		if t.Mono == "" {
			sb.WriteString(strconv.FormatInt(c, 10))
			continue
		}
		if c != 1 {
			sb.WriteString(strconv.FormatInt(c, 10))
			sb.WriteString("*")
		}
		sb.WriteString(t.monoString())
	}
	return sb.String()
}
