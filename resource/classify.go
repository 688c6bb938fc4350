package resource

import (
	"github.com/PolyhedraZK/BloqCostCollection/bloq"
	"github.com/PolyhedraZK/BloqCostCollection/bloqs/basic"
	"github.com/PolyhedraZK/BloqCostCollection/symbolic"
)

// Rotation is implemented by single axis rotations defined outside package basic
type Rotation interface {
	bloq.Bloq
	IsRotation() bool
}

// Precisioned is a bloq that is synthesized up to an error of Precision()
type Precisioned interface {
	bloq.Bloq
	Precision() symbolic.Float
}

// StabilizerEffecter is a bloq that knows whether it maps stabilizer states to stabilizer states
type StabilizerEffecter interface {
	bloq.Bloq
	HasStabilizerEffect() bool
}

// IsClifford returns true for the Clifford gates, and their adjoints
func IsClifford(b bloq.Bloq) bool {
	switch g := b.(type) {
	case basic.Hadamard, basic.XGate, basic.YGate, basic.ZGate, basic.SGate,
		basic.CNOT, basic.CZ, basic.TwoBitSwap:
		return true
	case bloq.Adjoint:
		return IsClifford(g.Sub)
	}
	return false
}

// IsRotation returns true for single axis rotations by an arbitrary angle
func IsRotation(b bloq.Bloq) bool {
	switch g := b.(type) {
	case basic.Rz, basic.Rx, basic.Ry, basic.ZPowGate, basic.XPowGate, basic.YPowGate:
		return true
	case bloq.Adjoint:
		return IsRotation(g.Sub)
	case Rotation:
		return g.IsRotation()
	}
	return false
}

// HasStabilizerEffect returns true if b is known to be Clifford equivalent
func HasStabilizerEffect(b bloq.Bloq) bool {
	switch g := b.(type) {
	case StabilizerEffecter:
		return g.HasStabilizerEffect()
	case bloq.Adjoint:
		return HasStabilizerEffect(g.Sub)
	}
	return IsClifford(b)
}
