// Package dtype defines the quantum data types carried by registers.
package dtype

import (
	"fmt"
	"math/big"
)

// QDType is the declared type of a register. Implementations are comparable values,
// two registers have the same type iff their QDType values are ==.
type QDType interface {
	NumQubits() int
	String() string
}

// QBit is a single qubit
type QBit struct{}

// QAny is an opaque bag of qubits
type QAny struct {
	Bitsize int
}

// QInt is a two's complement signed integer
type QInt struct {
	Bitsize int
}

// QUInt is an unsigned integer
type QUInt struct {
	Bitsize int
}

// QMontgomeryUInt is an unsigned integer in Montgomery form
type QMontgomeryUInt struct {
	Bitsize int
}

// QFxp is a fixed point number with NumFrac fractional bits
type QFxp struct {
	Bitsize int
	NumFrac int
	Signed  bool
}

func (QBit) NumQubits() int              { return 1 }
func (t QAny) NumQubits() int            { return t.Bitsize }
func (t QInt) NumQubits() int            { return t.Bitsize }
func (t QUInt) NumQubits() int           { return t.Bitsize }
func (t QMontgomeryUInt) NumQubits() int { return t.Bitsize }
func (t QFxp) NumQubits() int            { return t.Bitsize }

func (QBit) String() string              { return "QBit()" }
func (t QAny) String() string            { return fmt.Sprintf("QAny(%d)", t.Bitsize) }
func (t QInt) String() string            { return fmt.Sprintf("QInt(%d)", t.Bitsize) }
func (t QUInt) String() string           { return fmt.Sprintf("QUInt(%d)", t.Bitsize) }
func (t QMontgomeryUInt) String() string { return fmt.Sprintf("QMontgomeryUInt(%d)", t.Bitsize) }
func (t QFxp) String() string {
	return fmt.Sprintf("QFxp(%d, %d, %t)", t.Bitsize, t.NumFrac, t.Signed)
}

// IsInteger returns true for QInt, QUInt and QMontgomeryUInt
func IsInteger(t QDType) bool {
	switch t.(type) {
	case QInt, QUInt, QMontgomeryUInt:
		return true
	}
	return false
}

// Modulus returns 2^NumQubits(t)
func Modulus(t QDType) *big.Int {
	return new(big.Int).Lsh(big.NewInt(1), uint(t.NumQubits()))
}

// CheckClassical returns an error if x is not a valid bit pattern of t
func CheckClassical(t QDType, x *big.Int) error {
	if x.Sign() < 0 || x.Cmp(Modulus(t)) >= 0 {
		return fmt.Errorf("classical value %v out of range for %s", x, t)
	}
	return nil
}

// ToBits returns the big endian bits of x
func ToBits(t QDType, x *big.Int) ([]uint, error) {
	if err := CheckClassical(t, x); err != nil {
		return nil, err
	}
	n := t.NumQubits()
	res := make([]uint, n)
	for i := 0; i < n; i++ {
		res[i] = x.Bit(n - 1 - i)
	}
	return res, nil
}

// FromBits is the inverse of ToBits
func FromBits(t QDType, bits []uint) (*big.Int, error) {
	if len(bits) != t.NumQubits() {
		return nil, fmt.Errorf("got %d bits for %s", len(bits), t)
	}
	x := new(big.Int)
	for _, b := range bits {
		if b > 1 {
			return nil, fmt.Errorf("invalid bit %d", b)
		}
		x.Lsh(x, 1)
		x.SetBit(x, 0, b)
	}
	return x, nil
}
