package basic

import (
	"math/big"

	"github.com/PolyhedraZK/BloqCostCollection/bloq"
	"github.com/PolyhedraZK/BloqCostCollection/symbolic"
)

func oneClifford() bloq.TComplexity {
	return bloq.TComplexity{Clifford: symbolic.Const(1)}
}

type Hadamard struct{}

func (Hadamard) Signature() bloq.Signature     { return bloq.Qubits("q") }
func (Hadamard) String() string                { return "H" }
func (g Hadamard) Adjoint() bloq.Bloq          { return g }
func (Hadamard) TComplexity() bloq.TComplexity { return oneClifford() }

type XGate struct{}

func (XGate) Signature() bloq.Signature     { return bloq.Qubits("q") }
func (XGate) String() string                { return "X" }
func (g XGate) Adjoint() bloq.Bloq          { return g }
func (XGate) TComplexity() bloq.TComplexity { return oneClifford() }

func (XGate) OnClassicalVals(vals map[string]*big.Int) (map[string]*big.Int, error) {
	return map[string]*big.Int{"q": new(big.Int).Xor(vals["q"], big.NewInt(1))}, nil
}

type YGate struct{}

func (YGate) Signature() bloq.Signature     { return bloq.Qubits("q") }
func (YGate) String() string                { return "Y" }
func (g YGate) Adjoint() bloq.Bloq          { return g }
func (YGate) TComplexity() bloq.TComplexity { return oneClifford() }

type ZGate struct{}

func (ZGate) Signature() bloq.Signature     { return bloq.Qubits("q") }
func (ZGate) String() string                { return "Z" }
func (g ZGate) Adjoint() bloq.Bloq          { return g }
func (ZGate) TComplexity() bloq.TComplexity { return oneClifford() }

// SGate is diag(1, i), or its inverse
type SGate struct {
	IsAdjoint bool
}

func (SGate) Signature() bloq.Signature { return bloq.Qubits("q") }

func (g SGate) String() string {
	if g.IsAdjoint {
		return "S†"
	}
	return "S"
}

func (g SGate) Adjoint() bloq.Bloq          { return SGate{IsAdjoint: !g.IsAdjoint} }
func (SGate) TComplexity() bloq.TComplexity { return oneClifford() }

type CNOT struct{}

func (CNOT) Signature() bloq.Signature     { return bloq.Qubits("ctrl", "target") }
func (CNOT) String() string                { return "CNOT" }
func (g CNOT) Adjoint() bloq.Bloq          { return g }
func (CNOT) TComplexity() bloq.TComplexity { return oneClifford() }

func (CNOT) OnClassicalVals(vals map[string]*big.Int) (map[string]*big.Int, error) {
	ctrl := vals["ctrl"]
	return map[string]*big.Int{
		"ctrl":   ctrl,
		"target": new(big.Int).Xor(vals["target"], ctrl),
	}, nil
}

type CZ struct{}

func (CZ) Signature() bloq.Signature     { return bloq.Qubits("q1", "q2") }
func (CZ) String() string                { return "CZ" }
func (g CZ) Adjoint() bloq.Bloq          { return g }
func (CZ) TComplexity() bloq.TComplexity { return oneClifford() }

type TwoBitSwap struct{}

func (TwoBitSwap) Signature() bloq.Signature     { return bloq.Qubits("x", "y") }
func (TwoBitSwap) String() string                { return "SWAP" }
func (g TwoBitSwap) Adjoint() bloq.Bloq          { return g }
func (TwoBitSwap) TComplexity() bloq.TComplexity { return oneClifford() }

func (TwoBitSwap) OnClassicalVals(vals map[string]*big.Int) (map[string]*big.Int, error) {
	return map[string]*big.Int{"x": vals["y"], "y": vals["x"]}, nil
}

// Toffoli is the doubly controlled NOT
type Toffoli struct{}

func (Toffoli) Signature() bloq.Signature { return bloq.Qubits("ctrl1", "ctrl2", "target") }
func (Toffoli) String() string            { return "Toffoli" }
func (g Toffoli) Adjoint() bloq.Bloq      { return g }

func (Toffoli) TComplexity() bloq.TComplexity {
	return bloq.TOnly(4)
}

func (Toffoli) OnClassicalVals(vals map[string]*big.Int) (map[string]*big.Int, error) {
	c1, c2 := vals["ctrl1"], vals["ctrl2"]
	return map[string]*big.Int{
		"ctrl1":  c1,
		"ctrl2":  c2,
		"target": new(big.Int).Xor(vals["target"], new(big.Int).And(c1, c2)),
	}, nil
}
