package basic

import (
	"fmt"
	"math"

	"github.com/PolyhedraZK/BloqCostCollection/bloq"
	"github.com/PolyhedraZK/BloqCostCollection/symbolic"
)

// DefaultEps is the synthesis precision of rotations built without an explicit one
const DefaultEps = 1e-11

func defaultEps() symbolic.Float {
	return symbolic.FloatValue(DefaultEps)
}

func rotationTComplexity(stabilizer bool) bloq.TComplexity {
	if stabilizer {
		return oneClifford()
	}
	return bloq.TComplexity{Rotations: symbolic.Const(1)}
}

// Rz is exp(-i Z Angle/2), synthesized to precision Eps
type Rz struct {
	Angle symbolic.Float
	Eps   symbolic.Float
}

func NewRz(angle float64) Rz {
	return Rz{Angle: symbolic.FloatValue(angle), Eps: defaultEps()}
}

func (Rz) Signature() bloq.Signature { return bloq.Qubits("q") }

func (g Rz) String() string {
	return fmt.Sprintf("Rz(%s, eps=%s)", g.Angle, g.Eps)
}

func (g Rz) Adjoint() bloq.Bloq { return Rz{Angle: g.Angle.Neg(), Eps: g.Eps} }

func (g Rz) Precision() symbolic.Float { return g.Eps }

// HasStabilizerEffect is true when the angle is a multiple of π/2
func (g Rz) HasStabilizerEffect() bool { return g.Angle.IsMultipleOf(math.Pi / 2) }

func (g Rz) TComplexity() bloq.TComplexity { return rotationTComplexity(g.HasStabilizerEffect()) }

// Rx is exp(-i X Angle/2), synthesized to precision Eps
type Rx struct {
	Angle symbolic.Float
	Eps   symbolic.Float
}

func NewRx(angle float64) Rx {
	return Rx{Angle: symbolic.FloatValue(angle), Eps: defaultEps()}
}

func (Rx) Signature() bloq.Signature { return bloq.Qubits("q") }

func (g Rx) String() string {
	return fmt.Sprintf("Rx(%s, eps=%s)", g.Angle, g.Eps)
}

func (g Rx) Adjoint() bloq.Bloq { return Rx{Angle: g.Angle.Neg(), Eps: g.Eps} }

func (g Rx) Precision() symbolic.Float { return g.Eps }

func (g Rx) HasStabilizerEffect() bool { return g.Angle.IsMultipleOf(math.Pi / 2) }

func (g Rx) TComplexity() bloq.TComplexity { return rotationTComplexity(g.HasStabilizerEffect()) }

// Ry is exp(-i Y Angle/2), synthesized to precision Eps
type Ry struct {
	Angle symbolic.Float
	Eps   symbolic.Float
}

func NewRy(angle float64) Ry {
	return Ry{Angle: symbolic.FloatValue(angle), Eps: defaultEps()}
}

func (Ry) Signature() bloq.Signature { return bloq.Qubits("q") }

func (g Ry) String() string {
	return fmt.Sprintf("Ry(%s, eps=%s)", g.Angle, g.Eps)
}

func (g Ry) Adjoint() bloq.Bloq { return Ry{Angle: g.Angle.Neg(), Eps: g.Eps} }

func (g Ry) Precision() symbolic.Float { return g.Eps }

func (g Ry) HasStabilizerEffect() bool { return g.Angle.IsMultipleOf(math.Pi / 2) }

func (g Ry) TComplexity() bloq.TComplexity { return rotationTComplexity(g.HasStabilizerEffect()) }

// ZPowGate is Z^Exponent, synthesized to precision Eps.
// Exponents that are multiples of 1/2 are powers of S.
type ZPowGate struct {
	Exponent symbolic.Float
	Eps      symbolic.Float
}

func NewZPowGate(exponent float64) ZPowGate {
	return ZPowGate{Exponent: symbolic.FloatValue(exponent), Eps: defaultEps()}
}

func (ZPowGate) Signature() bloq.Signature { return bloq.Qubits("q") }

func (g ZPowGate) String() string {
	return fmt.Sprintf("Z**%s(eps=%s)", g.Exponent, g.Eps)
}

func (g ZPowGate) Adjoint() bloq.Bloq { return ZPowGate{Exponent: g.Exponent.Neg(), Eps: g.Eps} }

func (g ZPowGate) Precision() symbolic.Float { return g.Eps }

func (g ZPowGate) HasStabilizerEffect() bool { return g.Exponent.IsMultipleOf(0.5) }

func (g ZPowGate) TComplexity() bloq.TComplexity {
	return rotationTComplexity(g.HasStabilizerEffect())
}

// XPowGate is X^Exponent, synthesized to precision Eps
type XPowGate struct {
	Exponent symbolic.Float
	Eps      symbolic.Float
}

func NewXPowGate(exponent float64) XPowGate {
	return XPowGate{Exponent: symbolic.FloatValue(exponent), Eps: defaultEps()}
}

func (XPowGate) Signature() bloq.Signature { return bloq.Qubits("q") }

func (g XPowGate) String() string {
	return fmt.Sprintf("X**%s(eps=%s)", g.Exponent, g.Eps)
}

func (g XPowGate) Adjoint() bloq.Bloq { return XPowGate{Exponent: g.Exponent.Neg(), Eps: g.Eps} }

func (g XPowGate) Precision() symbolic.Float { return g.Eps }

func (g XPowGate) HasStabilizerEffect() bool { return g.Exponent.IsMultipleOf(0.5) }

func (g XPowGate) TComplexity() bloq.TComplexity {
	return rotationTComplexity(g.HasStabilizerEffect())
}

// YPowGate is Y^Exponent, synthesized to precision Eps
type YPowGate struct {
	Exponent symbolic.Float
	Eps      symbolic.Float
}

func NewYPowGate(exponent float64) YPowGate {
	return YPowGate{Exponent: symbolic.FloatValue(exponent), Eps: defaultEps()}
}

func (YPowGate) Signature() bloq.Signature { return bloq.Qubits("q") }

func (g YPowGate) String() string {
	return fmt.Sprintf("Y**%s(eps=%s)", g.Exponent, g.Eps)
}

func (g YPowGate) Adjoint() bloq.Bloq { return YPowGate{Exponent: g.Exponent.Neg(), Eps: g.Eps} }

func (g YPowGate) Precision() symbolic.Float { return g.Eps }

func (g YPowGate) HasStabilizerEffect() bool { return g.Exponent.IsMultipleOf(0.5) }

func (g YPowGate) TComplexity() bloq.TComplexity {
	return rotationTComplexity(g.HasStabilizerEffect())
}

// GlobalPhase multiplies the state by e^{iπ Exponent}. It acts on no qubits.
type GlobalPhase struct {
	Exponent symbolic.Float
	Eps      symbolic.Float
}

func (GlobalPhase) Signature() bloq.Signature { return bloq.Signature{} }

func (g GlobalPhase) String() string {
	return fmt.Sprintf("GPhase(%s)", g.Exponent)
}

func (g GlobalPhase) Adjoint() bloq.Bloq {
	return GlobalPhase{Exponent: g.Exponent.Neg(), Eps: g.Eps}
}

func (GlobalPhase) TComplexity() bloq.TComplexity { return bloq.TComplexity{} }
