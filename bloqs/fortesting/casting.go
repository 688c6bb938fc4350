// Package fortesting provides small composite bloqs that exercise the builder.
package fortesting

import (
	"fmt"

	"github.com/PolyhedraZK/BloqCostCollection/bloq"
	"github.com/PolyhedraZK/BloqCostCollection/bloqs/arithmetic"
	"github.com/PolyhedraZK/BloqCostCollection/bloqs/bookkeeping"
	"github.com/PolyhedraZK/BloqCostCollection/dtype"
)

// TestCastToFrom adds a fixed point register into an unsigned integer register.
// b is cast to the type of a, added to, and cast back, so both registers keep their
// declared types at the boundary.
type TestCastToFrom struct {
	Bitsize int
}

func NewTestCastToFrom() TestCastToFrom {
	return TestCastToFrom{Bitsize: 4}
}

func (t TestCastToFrom) Signature() bloq.Signature {
	return bloq.NewSignature(
		bloq.NewRegister("a", dtype.QUInt{Bitsize: t.Bitsize}),
		bloq.NewRegister("b", dtype.QFxp{Bitsize: t.Bitsize, NumFrac: t.Bitsize}),
	)
}

func (t TestCastToFrom) String() string {
	return fmt.Sprintf("TestCastToFrom(%d)", t.Bitsize)
}

func (t TestCastToFrom) BuildComposite(bb *bloq.Builder, in map[string]bloq.Soquet) (map[string]bloq.Soquet, error) {
	a, b := in["a"], in["b"]
	cast, err := bookkeeping.NewCast(b.Reg.DType, a.Reg.DType)
	if err != nil {
		return nil, err
	}
	b = bb.Add1(cast, map[string]bloq.Soquet{"reg": b})
	if !dtype.IsInteger(a.Reg.DType) {
		panic(fmt.Sprintf("%s: register a must be an integer type, got %s", t, a.Reg.DType))
	}
	out := bb.Add(arithmetic.NewAdd(a.Reg.DType), map[string]bloq.Soquet{"a": a, "b": b})
	a, b = out[0], out[1]
	b = bb.Add1(bloq.AdjointOf(cast), map[string]bloq.Soquet{"reg": b})
	return map[string]bloq.Soquet{"a": a, "b": b}, nil
}
