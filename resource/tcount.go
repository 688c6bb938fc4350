// Package resource estimates the fault tolerant cost of bloqs, measured in T gates.
package resource

import (
	"errors"
	"fmt"
	"math"

	"github.com/PolyhedraZK/BloqCostCollection/bloq"
	"github.com/PolyhedraZK/BloqCostCollection/bloqs/basic"
	"github.com/PolyhedraZK/BloqCostCollection/symbolic"
)

// ControlledTCost is the T cost of adding a control to a bloq
const ControlledTCost = 4

// rotation synthesis cost ceil(a*log2(1/eps) + b)
const (
	rotationCostA = 1.149
	rotationCostB = 9.2
)

var (
	ErrMissingPrecision = errors.New("rotation has no synthesis precision")
	ErrInvalidPrecision = errors.New("rotation precision must be positive")
	ErrNoTComplexity    = errors.New("bloq has no T complexity")
)

// RotationCost returns the number of T gates needed to synthesize an arbitrary rotation to precision eps.
// A numeric eps must be positive; precisions so coarse that the formula goes negative cost 0.
func RotationCost(eps symbolic.Float) symbolic.Expression {
	c := symbolic.CeilAffineLog2Inv(rotationCostA, rotationCostB, eps)
	if v, ok := c.Int(); ok && v < 0 {
		return symbolic.Const(0)
	}
	return c
}

// CheckPrecision returns ErrInvalidPrecision when eps is numeric and not a positive finite number
func CheckPrecision(eps symbolic.Float) error {
	v, ok := eps.Value()
	if ok && (!(v > 0) || math.IsInf(v, 1)) {
		return fmt.Errorf("eps=%s: %w", eps, ErrInvalidPrecision)
	}
	return nil
}

// TCountForGate returns the T count of a single bloq:
//  1. the adjoint of a bloq costs as much as the bloq
//  2. a controlled bloq costs ControlledTCost more than the bloq
//  3. a T gate costs 1
//  4. a Clifford gate costs 0
//  5. a rotation that is not Clifford equivalent costs RotationCost of its precision, which must be positive
//  6. anything else costs the T part of its T complexity
func TCountForGate(b bloq.Bloq) (symbolic.Expression, error) {
	switch g := b.(type) {
	case bloq.Adjoint:
		return TCountForGate(g.Sub)
	case bloq.Controlled:
		t, err := TCountForGate(g.Sub)
		if err != nil {
			return nil, err
		}
		return t.Add(symbolic.Const(ControlledTCost)), nil
	case basic.TGate:
		return symbolic.Const(1), nil
	}
	if IsClifford(b) {
		return symbolic.Const(0), nil
	}
	if IsRotation(b) && !HasStabilizerEffect(b) {
		p, ok := b.(Precisioned)
		if !ok {
			return nil, fmt.Errorf("%s: %w", b, ErrMissingPrecision)
		}
		if err := CheckPrecision(p.Precision()); err != nil {
			return nil, fmt.Errorf("%s: %w", b, err)
		}
		return RotationCost(p.Precision()), nil
	}
	tc, err := TComplexityOf(b)
	if err != nil {
		return nil, err
	}
	return tc.T, nil
}

// TCountsFromSigma returns the sum of count * TCountForGate(bloq) over all entries
func TCountsFromSigma(sigma *Sigma) (symbolic.Expression, error) {
	res := symbolic.Const(0)
	for _, e := range sigma.Entries() {
		t, err := TCountForGate(e.Bloq)
		if err != nil {
			return nil, err
		}
		res = res.Add(e.Count.Mul(t))
	}
	return res, nil
}

// TComplexityOf returns the T complexity reported by b, or the sum over its decomposition
func TComplexityOf(b bloq.Bloq) (bloq.TComplexity, error) {
	if r, ok := b.(bloq.TComplexityReporter); ok {
		return r.TComplexity(), nil
	}
	switch g := b.(type) {
	case bloq.Adjoint:
		return TComplexityOf(g.Sub)
	case bloq.Controlled:
		tc, err := TComplexityOf(g.Sub)
		if err != nil {
			return bloq.TComplexity{}, err
		}
		return tc.Add(bloq.TOnly(ControlledTCost)), nil
	}
	cb, err := bloq.Decompose(b)
	if errors.Is(err, bloq.ErrNotDecomposable) {
		return bloq.TComplexity{}, fmt.Errorf("%s: %w", b, ErrNoTComplexity)
	}
	if err != nil {
		return bloq.TComplexity{}, err
	}
	res := bloq.TComplexity{}
	for _, callee := range cb.Callees() {
		tc, err := TComplexityOf(callee)
		if err != nil {
			return bloq.TComplexity{}, err
		}
		res = res.Add(tc)
	}
	return res, nil
}
