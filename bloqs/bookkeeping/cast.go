// Package bookkeeping provides bloqs that only relabel qubits.
package bookkeeping

import (
	"fmt"
	"math/big"

	"github.com/PolyhedraZK/BloqCostCollection/bloq"
	"github.com/PolyhedraZK/BloqCostCollection/dtype"
)

// Cast reinterprets the qubits of register reg from type In to type Out. The bit pattern is
// unchanged, so the adjoint, Cast{Out, In}, exactly undoes the relabeling.
type Cast struct {
	In  dtype.QDType
	Out dtype.QDType
}

func NewCast(in, out dtype.QDType) (Cast, error) {
	if in.NumQubits() != out.NumQubits() {
		return Cast{}, fmt.Errorf("cast from %s to %s changes the number of qubits", in, out)
	}
	return Cast{In: in, Out: out}, nil
}

func (c Cast) Signature() bloq.Signature {
	return bloq.NewSignature(
		bloq.Register{Name: "reg", DType: c.In, Side: bloq.Left},
		bloq.Register{Name: "reg", DType: c.Out, Side: bloq.Right},
	)
}

func (c Cast) String() string {
	return fmt.Sprintf("Cast(%s -> %s)", c.In, c.Out)
}

func (c Cast) Adjoint() bloq.Bloq {
	return Cast{In: c.Out, Out: c.In}
}

func (Cast) TComplexity() bloq.TComplexity {
	return bloq.TComplexity{}
}

func (c Cast) OnClassicalVals(vals map[string]*big.Int) (map[string]*big.Int, error) {
	return map[string]*big.Int{"reg": vals["reg"]}, nil
}
