package bloq

import (
	"fmt"
	"strings"

	"github.com/PolyhedraZK/BloqCostCollection/dtype"
)

// Side tells whether a register is an input, an output, or both
type Side int

const (
	Thru Side = iota
	Left
	Right
)

func (s Side) String() string {
	switch s {
	case Thru:
		return "THRU"
	case Left:
		return "LEFT"
	case Right:
		return "RIGHT"
	}
	return fmt.Sprintf("Side(%d)", int(s))
}

// Register is a named, typed group of qubits in a bloq's signature
type Register struct {
	Name  string
	DType dtype.QDType
	Side  Side
}

// NewRegister returns a THRU register
func NewRegister(name string, t dtype.QDType) Register {
	return Register{Name: name, DType: t, Side: Thru}
}

func (r Register) IsLeft() bool {
	return r.Side == Thru || r.Side == Left
}

func (r Register) IsRight() bool {
	return r.Side == Thru || r.Side == Right
}

// Adjoint swaps LEFT and RIGHT
func (r Register) Adjoint() Register {
	switch r.Side {
	case Left:
		r.Side = Right
	case Right:
		r.Side = Left
	}
	return r
}

func (r Register) String() string {
	if r.Side == Thru {
		return fmt.Sprintf("%s: %s", r.Name, r.DType)
	}
	return fmt.Sprintf("%s: %s %s", r.Name, r.DType, r.Side)
}

// Signature is the ordered list of registers of a bloq. A name appears at most once
// among the left registers and at most once among the right registers.
type Signature []Register

func NewSignature(regs ...Register) Signature {
	return Signature(regs)
}

// Qubits returns a signature of single qubit THRU registers
func Qubits(names ...string) Signature {
	s := make(Signature, len(names))
	for i, n := range names {
		s[i] = NewRegister(n, dtype.QBit{})
	}
	return s
}

func (s Signature) Lefts() []Register {
	res := make([]Register, 0, len(s))
	for _, r := range s {
		if r.IsLeft() {
			res = append(res, r)
		}
	}
	return res
}

func (s Signature) Rights() []Register {
	res := make([]Register, 0, len(s))
	for _, r := range s {
		if r.IsRight() {
			res = append(res, r)
		}
	}
	return res
}

func (s Signature) GetLeft(name string) (Register, bool) {
	for _, r := range s {
		if r.IsLeft() && r.Name == name {
			return r, true
		}
	}
	return Register{}, false
}

func (s Signature) GetRight(name string) (Register, bool) {
	for _, r := range s {
		if r.IsRight() && r.Name == name {
			return r, true
		}
	}
	return Register{}, false
}

// Adjoint swaps the sides of all registers
func (s Signature) Adjoint() Signature {
	res := make(Signature, len(s))
	for i, r := range s {
		res[i] = r.Adjoint()
	}
	return res
}

// NumQubits returns the larger of the total input and total output widths
func (s Signature) NumQubits() int {
	l, r := 0, 0
	for _, reg := range s {
		if reg.IsLeft() {
			l += reg.DType.NumQubits()
		}
		if reg.IsRight() {
			r += reg.DType.NumQubits()
		}
	}
	if l > r {
		return l
	}
	return r
}

// Validate checks that names are unique per side
func (s Signature) Validate() error {
	lefts := map[string]bool{}
	rights := map[string]bool{}
	for _, r := range s {
		if r.DType == nil {
			return fmt.Errorf("register %s has no dtype", r.Name)
		}
		if r.IsLeft() {
			if lefts[r.Name] {
				return fmt.Errorf("duplicate left register %s", r.Name)
			}
			lefts[r.Name] = true
		}
		if r.IsRight() {
			if rights[r.Name] {
				return fmt.Errorf("duplicate right register %s", r.Name)
			}
			rights[r.Name] = true
		}
	}
	return nil
}

func (s Signature) String() string {
	strs := make([]string, len(s))
	for i, r := range s {
		strs[i] = r.String()
	}
	return "[" + strings.Join(strs, ", ") + "]"
}
