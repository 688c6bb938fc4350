package bloq

import (
	"fmt"

	"github.com/PolyhedraZK/BloqCostCollection/symbolic"
)

// TComplexity counts the T gates, Clifford gates and arbitrary rotations of a bloq
type TComplexity struct {
	T         symbolic.Expression
	Clifford  symbolic.Expression
	Rotations symbolic.Expression
}

// TOnly returns a TComplexity of t T gates
func TOnly(t int64) TComplexity {
	return TComplexity{T: symbolic.Const(t)}
}

func (tc TComplexity) Add(o TComplexity) TComplexity {
	return TComplexity{
		T:         tc.T.Add(o.T),
		Clifford:  tc.Clifford.Add(o.Clifford),
		Rotations: tc.Rotations.Add(o.Rotations),
	}
}

// Mul returns n copies of tc
func (tc TComplexity) Mul(n symbolic.Expression) TComplexity {
	return TComplexity{
		T:         tc.T.Mul(n),
		Clifford:  tc.Clifford.Mul(n),
		Rotations: tc.Rotations.Mul(n),
	}
}

func (tc TComplexity) Equal(o TComplexity) bool {
	return tc.T.Equal(o.T) && tc.Clifford.Equal(o.Clifford) && tc.Rotations.Equal(o.Rotations)
}

func (tc TComplexity) String() string {
	return fmt.Sprintf("T: %s, Clifford: %s, Rotations: %s", tc.T, tc.Clifford, tc.Rotations)
}
