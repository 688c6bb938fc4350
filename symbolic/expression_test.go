package symbolic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstArithmetic(t *testing.T) {
	e := Const(3).Add(Const(4)).Mul(Const(2))
	v, ok := e.Int()
	require.True(t, ok)
	assert.Equal(t, int64(14), v)

	z := Const(5).Sub(Const(5))
	assert.True(t, z.IsZero())
	v, ok = z.Int()
	require.True(t, ok)
	assert.Equal(t, int64(0), v)
	assert.Equal(t, "0", z.String())
}

func TestSymbolicArithmetic(t *testing.T) {
	n := Symbol("N")
	m := Symbol("M")

	e := n.Mul(m).Scale(4).Sub(Const(8))
	assert.False(t, e.IsConstant())
	assert.Equal(t, 2, e.Degree())
	assert.Equal(t, []string{"M", "N"}, e.Symbols())
	assert.Equal(t, "-8 + 4*M*N", e.String())

	// commutative and order independent
	assert.True(t, m.Mul(n).Equal(n.Mul(m)))
	assert.True(t, Sum(n, m, Const(1)).Equal(Sum(Const(1), m, n)))
	assert.Equal(t, Sum(n, m).HashCode(), Sum(m, n).HashCode())

	// cancellation drops the term
	assert.True(t, n.Add(m).Sub(n).Equal(m))

	v, ok := e.Substitute("N", 2).Substitute("M", 3).Int()
	require.True(t, ok)
	assert.Equal(t, int64(16), v)
}

func TestPowers(t *testing.T) {
	n := Symbol("n")
	sq := n.Mul(n)
	assert.Equal(t, 2, sq.Degree())
	assert.Equal(t, "n*n", sq.String())
	v, ok := sq.Substitute("n", 7).Int()
	require.True(t, ok)
	assert.Equal(t, int64(49), v)
}

func TestCeilAffineLog2Inv(t *testing.T) {
	v, ok := CeilAffineLog2Inv(1.149, 9.2, FloatValue(1e-11)).Int()
	require.True(t, ok)
	assert.Equal(t, int64(52), v)

	v, ok = CeilAffineLog2Inv(1.149, 9.2, FloatValue(0.5)).Int()
	require.True(t, ok)
	assert.Equal(t, int64(11), v)

	e := CeilAffineLog2Inv(1.149, 9.2, FloatSymbol("eps"))
	assert.False(t, e.IsConstant())
	assert.Equal(t, "ceil(1.149*log2(1/eps) + 9.2)", e.String())
	assert.Equal(t, "ceil(1.149*log2(1/(eps/3)) + 9.2)",
		CeilAffineLog2Inv(1.149, 9.2, FloatSymbol("eps").Div(3)).String())
}

func TestFloat(t *testing.T) {
	f := FloatValue(0.3).Div(3)
	v, ok := f.Value()
	require.True(t, ok)
	assert.InDelta(t, 0.1, v, 1e-12)

	s := FloatSymbol("theta")
	assert.True(t, s.IsSymbolic())
	assert.Equal(t, "-theta", s.Neg().String())
	assert.Equal(t, s, s.Neg().Neg())
	sum := s.Add(FloatSymbol("phi"))
	assert.Equal(t, "-(theta + phi)", sum.Neg().String())
	assert.Equal(t, sum, sum.Neg().Neg())
	assert.Equal(t, "-(-x + y)", FloatSymbol("-x + y").Neg().String())
	assert.Equal(t, "-((a) + (b))", FloatSymbol("(a) + (b)").Neg().String())
	assert.Equal(t, FloatSymbol("(a) + (b)"), FloatSymbol("(a) + (b)").Neg().Neg())
	assert.Equal(t, "2*theta", s.Scale(2).String())
	assert.Equal(t, s, s.Add(FloatValue(0)))

	assert.True(t, FloatValue(1.5).IsMultipleOf(0.5))
	assert.False(t, FloatValue(0.25).IsMultipleOf(0.5))
	assert.False(t, s.IsMultipleOf(0.5))
}
