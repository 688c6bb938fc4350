// Package arithmetic provides quantum arithmetic bloqs.
package arithmetic

import (
	"fmt"
	"math/big"

	"github.com/PolyhedraZK/BloqCostCollection/bloq"
	"github.com/PolyhedraZK/BloqCostCollection/dtype"
	"github.com/PolyhedraZK/BloqCostCollection/symbolic"
)

// Add is the in-place adder b ← a + b mod 2^n, for integer types of n bits.
// The T complexity is that of Gidney's adder, n-1 temporary AND gates of 4 T each.
type Add struct {
	DType dtype.QDType
}

func NewAdd(t dtype.QDType) Add {
	if !dtype.IsInteger(t) {
		panic(fmt.Sprintf("Add requires an integer type, got %s", t))
	}
	return Add{DType: t}
}

func (a Add) Signature() bloq.Signature {
	return bloq.NewSignature(
		bloq.NewRegister("a", a.DType),
		bloq.NewRegister("b", a.DType),
	)
}

func (a Add) String() string {
	return fmt.Sprintf("Add(%s)", a.DType)
}

func (a Add) TComplexity() bloq.TComplexity {
	n := int64(a.DType.NumQubits())
	if n <= 1 {
		return bloq.TComplexity{Clifford: symbolic.Const(1)}
	}
	return bloq.TOnly(4 * (n - 1))
}

func (a Add) OnClassicalVals(vals map[string]*big.Int) (map[string]*big.Int, error) {
	x, y := vals["a"], vals["b"]
	sum := new(big.Int).Add(x, y)
	sum.Mod(sum, dtype.Modulus(a.DType))
	return map[string]*big.Int{"a": x, "b": sum}, nil
}
