// Package basic provides single and two qubit gates: the T gate, Clifford gates,
// rotations and the global phase.
package basic

import (
	"github.com/PolyhedraZK/BloqCostCollection/bloq"
)

// TGate is the non-Clifford gate diag(1, e^{iπ/4}), or its inverse
type TGate struct {
	IsAdjoint bool
}

func (TGate) Signature() bloq.Signature {
	return bloq.Qubits("q")
}

func (g TGate) String() string {
	if g.IsAdjoint {
		return "T†"
	}
	return "T"
}

func (g TGate) Adjoint() bloq.Bloq {
	return TGate{IsAdjoint: !g.IsAdjoint}
}

func (TGate) TComplexity() bloq.TComplexity {
	return bloq.TOnly(1)
}
