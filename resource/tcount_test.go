package resource

import (
	"math"
	"testing"

	"github.com/PolyhedraZK/BloqCostCollection/bloq"
	"github.com/PolyhedraZK/BloqCostCollection/bloqs/arithmetic"
	"github.com/PolyhedraZK/BloqCostCollection/bloqs/basic"
	"github.com/PolyhedraZK/BloqCostCollection/dtype"
	"github.com/PolyhedraZK/BloqCostCollection/symbolic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// a rotation that does not declare its precision
type bareRotation struct{}

func (bareRotation) Signature() bloq.Signature { return bloq.Qubits("q") }
func (bareRotation) String() string            { return "bareRotation" }
func (bareRotation) IsRotation() bool          { return true }

// a bloq with no cost information at all
type opaque struct{}

func (opaque) Signature() bloq.Signature { return bloq.Qubits("q") }
func (opaque) String() string            { return "opaque" }

func requireInt(t *testing.T, want int64, e symbolic.Expression) {
	t.Helper()
	v, ok := e.Int()
	require.True(t, ok, "expected a constant, got %s", e)
	require.Equal(t, want, v)
}

func mustTCount(t *testing.T, b bloq.Bloq) symbolic.Expression {
	t.Helper()
	e, err := TCountForGate(b)
	require.NoError(t, err)
	return e
}

var cliffords = []bloq.Bloq{
	basic.Hadamard{}, basic.XGate{}, basic.YGate{}, basic.ZGate{},
	basic.SGate{}, basic.SGate{IsAdjoint: true}, basic.CNOT{}, basic.CZ{}, basic.TwoBitSwap{},
}

var gates = []bloq.Bloq{
	basic.TGate{},
	basic.TGate{IsAdjoint: true},
	basic.Hadamard{},
	basic.CNOT{},
	basic.Toffoli{},
	basic.NewRz(0.1),
	basic.NewZPowGate(0.5),
	arithmetic.NewAdd(dtype.QUInt{Bitsize: 8}),
	bloq.Control(basic.TGate{}),
}

func TestTGate(t *testing.T) {
	requireInt(t, 1, mustTCount(t, basic.TGate{}))
	requireInt(t, 1, mustTCount(t, basic.TGate{IsAdjoint: true}))
}

func TestCliffords(t *testing.T) {
	for _, g := range cliffords {
		t.Run(g.String(), func(t *testing.T) {
			assert.True(t, IsClifford(g))
			requireInt(t, 0, mustTCount(t, g))
			requireInt(t, 0, mustTCount(t, bloq.Adjoint{Sub: g}))
		})
	}
	assert.False(t, IsClifford(basic.TGate{}))
	assert.False(t, IsClifford(basic.NewRz(0.1)))
}

func TestControlledAndAdjoint(t *testing.T) {
	for _, g := range gates {
		t.Run(g.String(), func(t *testing.T) {
			x := mustTCount(t, g)
			assert.True(t, mustTCount(t, bloq.Control(g)).Equal(x.Add(symbolic.Const(4))))
			assert.True(t, mustTCount(t, bloq.Adjoint{Sub: g}).Equal(x))
			assert.True(t, mustTCount(t, bloq.AdjointOf(g)).Equal(x))
		})
	}
	requireInt(t, 9, mustTCount(t, bloq.Control(bloq.Control(basic.TGate{}))))
}

func TestRotations(t *testing.T) {
	// ceil(1.149*log2(1e11) + 9.2)
	requireInt(t, 52, mustTCount(t, basic.NewRz(0.1)))
	requireInt(t, 52, mustTCount(t, basic.NewRx(0.1)))
	requireInt(t, 52, mustTCount(t, basic.NewRy(0.1)))
	requireInt(t, 52, mustTCount(t, basic.NewXPowGate(0.1)))
	requireInt(t, 52, mustTCount(t, basic.NewYPowGate(0.1)))
	requireInt(t, 11, mustTCount(t, basic.Rz{Angle: symbolic.FloatValue(0.1), Eps: symbolic.FloatValue(0.5)}))

	// Clifford equivalent rotations fall back to their T complexity
	requireInt(t, 0, mustTCount(t, basic.NewRz(math.Pi)))
	requireInt(t, 0, mustTCount(t, basic.NewZPowGate(0.5)))
	requireInt(t, 0, mustTCount(t, basic.NewXPowGate(-1)))

	sym := mustTCount(t, basic.Rz{Angle: symbolic.FloatSymbol("theta"), Eps: symbolic.FloatSymbol("eps")})
	assert.Equal(t, "ceil(1.149*log2(1/eps) + 9.2)", sym.String())
	assert.True(t, sym.Equal(RotationCost(symbolic.FloatSymbol("eps"))))
}

func TestMissingPrecision(t *testing.T) {
	assert.True(t, IsRotation(bareRotation{}))
	_, err := TCountForGate(bareRotation{})
	assert.ErrorIs(t, err, ErrMissingPrecision)
	_, err = TCountForGate(bloq.Control(bareRotation{}))
	assert.ErrorIs(t, err, ErrMissingPrecision)
}

func TestInvalidPrecision(t *testing.T) {
	for _, eps := range []symbolic.Float{
		{},
		symbolic.FloatValue(-1),
		symbolic.FloatValue(math.NaN()),
		symbolic.FloatValue(math.Inf(1)),
	} {
		t.Run(eps.String(), func(t *testing.T) {
			_, err := TCountForGate(basic.Rz{Angle: symbolic.FloatValue(0.1), Eps: eps})
			assert.ErrorIs(t, err, ErrInvalidPrecision)
			_, err = TCountForGate(bloq.Control(basic.ZPowGate{Exponent: symbolic.FloatValue(0.1), Eps: eps}))
			assert.ErrorIs(t, err, ErrInvalidPrecision)
		})
	}

	// coarse precisions never cost a negative number of T gates
	requireInt(t, 0, mustTCount(t, basic.Rz{Angle: symbolic.FloatValue(0.1), Eps: symbolic.FloatValue(1000)}))
	require.NoError(t, CheckPrecision(symbolic.FloatSymbol("eps")))
}

func TestFallback(t *testing.T) {
	requireInt(t, 4, mustTCount(t, basic.Toffoli{}))
	requireInt(t, 28, mustTCount(t, arithmetic.NewAdd(dtype.QUInt{Bitsize: 8})))
	requireInt(t, 0, mustTCount(t, basic.GlobalPhase{Exponent: symbolic.FloatValue(0.25)}))

	_, err := TCountForGate(opaque{})
	assert.ErrorIs(t, err, ErrNoTComplexity)
}

func TestTCountsFromSigma(t *testing.T) {
	e, err := TCountsFromSigma(NewSigma())
	require.NoError(t, err)
	requireInt(t, 0, e)

	var zero Sigma
	e, err = TCountsFromSigma(&zero)
	require.NoError(t, err)
	requireInt(t, 0, e)

	for _, g := range gates {
		t.Run(g.String(), func(t *testing.T) {
			s := NewSigma()
			s.AddInt(g, 3)
			e, err := TCountsFromSigma(s)
			require.NoError(t, err)
			assert.True(t, e.Equal(mustTCount(t, g).Scale(3)))
		})
	}
}

func TestTCountsFromSigmaSymbolic(t *testing.T) {
	n := symbolic.Symbol("n")
	s := NewSigma()
	s.Add(basic.TGate{}, n)
	s.Add(basic.Toffoli{}, n.Mul(n))
	s.AddInt(basic.Hadamard{}, 100)
	s.AddInt(basic.TGate{}, 2)

	e, err := TCountsFromSigma(s)
	require.NoError(t, err)
	assert.Equal(t, "2 + n + 4*n*n", e.String())

	_, err = TCountsFromSigma(func() *Sigma {
		s := NewSigma()
		s.AddInt(bareRotation{}, 1)
		return s
	}())
	assert.ErrorIs(t, err, ErrMissingPrecision)
}

func TestTComplexityOf(t *testing.T) {
	su2 := basic.NewSU2RotationGate(math.Pi/4, math.Pi/2, math.Pi/2, 0)
	tc, err := TComplexityOf(su2)
	require.NoError(t, err)
	// Rz(0) and Rz(0) are Clifford equivalent, Rx(π/2) too
	assert.True(t, tc.Equal(bloq.TComplexity{Clifford: symbolic.Const(3)}), tc.String())

	tc, err = TComplexityOf(basic.NewSU2RotationGate(0.1, 0.2, 0.3, 0))
	require.NoError(t, err)
	requireInt(t, 3, tc.Rotations)

	tc, err = TComplexityOf(bloq.Control(basic.Toffoli{}))
	require.NoError(t, err)
	requireInt(t, 8, tc.T)
}
