package basic

import (
	"fmt"
	"math"

	"github.com/PolyhedraZK/BloqCostCollection/bloq"
	"github.com/PolyhedraZK/BloqCostCollection/symbolic"
)

// SU2RotationGate is the single qubit rotation
//
//	e^{iα} [[e^{i(λ+φ)} cos θ, e^{iφ} sin θ], [e^{iλ} sin θ, -cos θ]]
//
// with θ = Theta, φ = Phi, λ = Lambda and α = GlobalShift.
// See Motlagh and Wiebe, Generalized Quantum Signal Processing (2023), Eq. 7.
type SU2RotationGate struct {
	Theta       symbolic.Float
	Phi         symbolic.Float
	Lambda      symbolic.Float
	GlobalShift symbolic.Float
	Eps         symbolic.Float
}

func NewSU2RotationGate(theta, phi, lambda, globalShift float64) SU2RotationGate {
	return SU2RotationGate{
		Theta:       symbolic.FloatValue(theta),
		Phi:         symbolic.FloatValue(phi),
		Lambda:      symbolic.FloatValue(lambda),
		GlobalShift: symbolic.FloatValue(globalShift),
		Eps:         defaultEps(),
	}
}

func (SU2RotationGate) Signature() bloq.Signature { return bloq.Qubits("q") }

func (g SU2RotationGate) String() string {
	return fmt.Sprintf("SU_2(%s,%s,%s,%s, eps=%s)", g.Theta, g.Phi, g.Lambda, g.GlobalShift, g.Eps)
}

func (g SU2RotationGate) IsSymbolic() bool {
	return g.Theta.IsSymbolic() || g.Phi.IsSymbolic() || g.Lambda.IsSymbolic() || g.GlobalShift.IsSymbolic()
}

func (g SU2RotationGate) Adjoint() bloq.Bloq {
	return SU2RotationGate{
		Theta:       g.Theta,
		Phi:         g.Lambda.Neg(),
		Lambda:      g.Phi.Neg(),
		GlobalShift: g.GlobalShift.Neg(),
		Eps:         g.Eps,
	}
}

// BuildComposite applies the global phase, then Rz Rx Rz, each rotation with a third of the precision
func (g SU2RotationGate) BuildComposite(bb *bloq.Builder, in map[string]bloq.Soquet) (map[string]bloq.Soquet, error) {
	halfPi := symbolic.FloatValue(math.Pi / 2)
	exponent := symbolic.FloatValue(0.5).
		Add(g.GlobalShift.Scale(1 / math.Pi)).
		Add(g.Lambda.Scale(1 / (2 * math.Pi))).
		Add(g.Phi.Scale(1 / (2 * math.Pi)))
	eps := g.Eps.Div(3)

	bb.Add(GlobalPhase{Exponent: exponent, Eps: eps}, nil)
	q := in["q"]
	q = bb.Add1(Rz{Angle: halfPi.Sub(g.Lambda), Eps: eps}, map[string]bloq.Soquet{"q": q})
	q = bb.Add1(Rx{Angle: g.Theta.Scale(2), Eps: eps}, map[string]bloq.Soquet{"q": q})
	q = bb.Add1(Rz{Angle: halfPi.Sub(g.Phi), Eps: eps}, map[string]bloq.Soquet{"q": q})
	return map[string]bloq.Soquet{"q": q}, nil
}
