// Package bloq provides the composable quantum operation ("bloq") model:
// - registers and signatures, typed by package dtype
// - a builder that wires bloqs together through soquets and checks the declared types on every wire
// - composite bloqs, the finalized result of a builder, with validation and classical simulation
// - the Adjoint and Controlled wrappers
package bloq

import (
	"errors"
	"fmt"
	"hash/fnv"
	"math/big"
	"reflect"

	"github.com/PolyhedraZK/BloqCostCollection/utils"
)

// Bloq is a quantum operation with a declared signature.
// Bloqs are immutable values; String must identify the bloq and all of its parameters.
type Bloq interface {
	Signature() Signature
	String() string
}

// Decomposer is a bloq that can be expressed in terms of other bloqs
type Decomposer interface {
	Bloq
	// BuildComposite adds sub bloqs to bb, consuming the input soquets (one per left register),
	// and returns one soquet per right register
	BuildComposite(bb *Builder, in map[string]Soquet) (map[string]Soquet, error)
}

// Adjointer is a bloq that knows its own inverse
type Adjointer interface {
	Bloq
	Adjoint() Bloq
}

// TComplexityReporter is a bloq that reports its T complexity directly
type TComplexityReporter interface {
	Bloq
	TComplexity() TComplexity
}

// ClassicalActor is a bloq that acts on computational basis states as a classical function.
// vals has one entry per left register and the result has one entry per right register.
type ClassicalActor interface {
	Bloq
	OnClassicalVals(vals map[string]*big.Int) (map[string]*big.Int, error)
}

var (
	ErrNotDecomposable   = errors.New("bloq has no decomposition")
	ErrNoClassicalAction = errors.New("bloq has no classical action")
)

// AdjointOf returns the inverse of b
func AdjointOf(b Bloq) Bloq {
	if a, ok := b.(Adjointer); ok {
		return a.Adjoint()
	}
	return Adjoint{Sub: b}
}

// Decompose builds the composite bloq of a Decomposer
func Decompose(b Bloq) (*CompositeBloq, error) {
	if cb, ok := b.(*CompositeBloq); ok {
		return cb, nil
	}
	d, ok := b.(Decomposer)
	if !ok {
		return nil, fmt.Errorf("%s: %w", b, ErrNotDecomposable)
	}
	bb, in := NewBuilder(b.Signature())
	out, err := d.BuildComposite(bb, in)
	if err != nil {
		return nil, fmt.Errorf("decompose %s: %w", b, err)
	}
	cb, err := bb.Finalize(out)
	if err != nil {
		return nil, fmt.Errorf("decompose %s: %w", b, err)
	}
	return cb, nil
}

// Equal returns true if a and b are the same bloq
func Equal(a, b Bloq) (eq bool) {
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb {
		return false
	}
	if ta.Kind() == reflect.Struct && ta.Comparable() {
		// comparable struct types may still hold incomparable values behind interfaces
		defer func() {
			if recover() != nil {
				eq = a.String() == b.String()
			}
		}()
		return a == b
	}
	return a.String() == b.String()
}

type key struct {
	b Bloq
}

// Key wraps b so that it can be saved in a utils.Map
func Key(b Bloq) utils.Hashable {
	return key{b: b}
}

// FromKey is the inverse of Key
func FromKey(k utils.Hashable) Bloq {
	return k.(key).b
}

func (k key) HashCode() uint64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "%T:%s", k.b, k.b.String())
	return h.Sum64()
}

func (k key) EqualI(o utils.Hashable) bool {
	ok, isKey := o.(key)
	return isKey && Equal(k.b, ok.b)
}
