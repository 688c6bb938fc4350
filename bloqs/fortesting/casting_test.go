package fortesting

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/PolyhedraZK/BloqCostCollection/bloq"
	"github.com/PolyhedraZK/BloqCostCollection/bloqs/arithmetic"
	"github.com/PolyhedraZK/BloqCostCollection/bloqs/bookkeeping"
	"github.com/PolyhedraZK/BloqCostCollection/dtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCastToFromDecomposition(t *testing.T) {
	for _, n := range []int{1, 2, 4, 7} {
		t.Run(fmt.Sprintf("bitsize=%d", n), func(t *testing.T) {
			fixture := TestCastToFrom{Bitsize: n}
			cb, err := bloq.Decompose(fixture)
			require.NoError(t, err)
			require.NoError(t, cb.Validate())

			// the boundary keeps the declared types
			assert.Equal(t, fixture.Signature(), cb.Signature())
			rights := cb.Signature().Rights()
			require.Len(t, cb.Output, len(rights))
			for i, r := range rights {
				assert.Equal(t, r.DType, cb.Output[i].Reg.DType)
			}

			u := dtype.QUInt{Bitsize: n}
			f := dtype.QFxp{Bitsize: n, NumFrac: n}
			assert.Equal(t, []bloq.Bloq{
				bookkeeping.Cast{In: f, Out: u},
				arithmetic.Add{DType: u},
				bookkeeping.Cast{In: u, Out: f},
			}, cb.Callees())
		})
	}
}

func TestCastRoundTrip(t *testing.T) {
	for n := 1; n <= 16; n++ {
		u := dtype.QUInt{Bitsize: n}
		f := dtype.QFxp{Bitsize: n, NumFrac: n}
		cast, err := bookkeeping.NewCast(f, u)
		require.NoError(t, err)

		bb, in := bloq.NewBuilder(bloq.NewSignature(bloq.NewRegister("x", f)))
		x := bb.Add1(cast, map[string]bloq.Soquet{"reg": in["x"]})
		assert.Equal(t, dtype.QDType(u), x.Reg.DType)
		x = bb.Add1(bloq.AdjointOf(cast), map[string]bloq.Soquet{"reg": x})
		assert.Equal(t, dtype.QDType(f), x.Reg.DType)

		cb, err := bb.Finalize(map[string]bloq.Soquet{"x": x})
		require.NoError(t, err)

		v := big.NewInt(int64(n*37) % (1 << n))
		out, err := cb.CallClassically(map[string]*big.Int{"x": v})
		require.NoError(t, err)
		assert.Equal(t, 0, v.Cmp(out["x"]))
	}
}

func TestCastWithoutInverse(t *testing.T) {
	f := dtype.QFxp{Bitsize: 4, NumFrac: 4}
	u := dtype.QUInt{Bitsize: 4}
	bb, in := bloq.NewBuilder(bloq.NewSignature(bloq.NewRegister("x", f)))
	x := bb.Add1(bookkeeping.Cast{In: f, Out: u}, map[string]bloq.Soquet{"reg": in["x"]})
	_, err := bb.Finalize(map[string]bloq.Soquet{"x": x})
	assert.Error(t, err)
}

func TestCastToFromClassical(t *testing.T) {
	fixture := NewTestCastToFrom()
	for a := int64(0); a < 16; a++ {
		for b := int64(0); b < 16; b++ {
			out, err := bloq.CallClassically(fixture, map[string]*big.Int{
				"a": big.NewInt(a),
				"b": big.NewInt(b),
			})
			require.NoError(t, err)
			assert.Equal(t, a, out["a"].Int64())
			assert.Equal(t, (a+b)%16, out["b"].Int64())
		}
	}
}

func TestNewCastRejectsWidthChange(t *testing.T) {
	_, err := bookkeeping.NewCast(dtype.QUInt{Bitsize: 4}, dtype.QUInt{Bitsize: 5})
	assert.Error(t, err)
}
