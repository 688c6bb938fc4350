package symbolic

// similar to expr.Term in the circuit compiler, but a term is an integer multiple of
// an arbitrary product of atoms instead of at most two variables

import (
	"hash/fnv"
	"sort"
	"strings"
)

// atoms inside a monomial are separated by this byte, it never appears in atom names
const atomSep = "\x1f"

type Term struct {
	// canonical product of atoms, sorted and joined by atomSep.
	// empty Mono means constant
	Mono  string
	Coeff int64
}

func NewTerm(coeff int64, atoms ...string) Term {
	return Term{Mono: joinAtoms(atoms), Coeff: coeff}
}

func joinAtoms(atoms []string) string {
	s := make([]string, len(atoms))
	copy(s, atoms)
	sort.Strings(s)
	return strings.Join(s, atomSep)
}

// Atoms returns the atoms of the monomial, with repetition for powers
func (t Term) Atoms() []string {
	if t.Mono == "" {
		return nil
	}
	return strings.Split(t.Mono, atomSep)
}

func (t Term) HashCode() uint64 {
	h := fnv.New64a()
	h.Write([]byte(t.Mono))
	return h.Sum64() ^ uint64(t.Coeff)*998244353
}

func (t Term) Degree() int {
	if t.Mono == "" {
		return 0
	}
	return strings.Count(t.Mono, atomSep) + 1
}

func mulMono(a, b string) string {
	if a == "" {
		return b
	}
	if b == "" {
		return a
	}
	return joinAtoms(append(strings.Split(a, atomSep), strings.Split(b, atomSep)...))
}

func (t Term) monoString() string {
	return strings.Join(t.Atoms(), "*")
}
