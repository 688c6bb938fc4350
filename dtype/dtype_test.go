package dtype

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsInteger(t *testing.T) {
	testCases := []struct {
		t    QDType
		want bool
	}{
		{QInt{4}, true},
		{QUInt{4}, true},
		{QMontgomeryUInt{4}, true},
		{QFxp{4, 4, false}, false},
		{QAny{4}, false},
		{QBit{}, false},
	}
	for _, tc := range testCases {
		t.Run(tc.t.String(), func(t *testing.T) {
			assert.Equal(t, tc.want, IsInteger(tc.t))
		})
	}
}

func TestComparable(t *testing.T) {
	var a, b QDType = QUInt{4}, QUInt{4}
	assert.True(t, a == b)
	assert.False(t, a == QDType(QInt{4}))
	assert.False(t, QDType(QFxp{4, 4, false}) == QDType(QFxp{4, 3, false}))
	assert.Equal(t, 4, QFxp{4, 4, false}.NumQubits())
}

func TestBits(t *testing.T) {
	bits, err := ToBits(QUInt{4}, big.NewInt(6))
	require.NoError(t, err)
	assert.Equal(t, []uint{0, 1, 1, 0}, bits)

	x, err := FromBits(QUInt{4}, bits)
	require.NoError(t, err)
	assert.Equal(t, int64(6), x.Int64())

	_, err = ToBits(QUInt{4}, big.NewInt(16))
	assert.Error(t, err)
	_, err = FromBits(QUInt{3}, bits)
	assert.Error(t, err)
}
