package bloq

import (
	"fmt"
	"math/big"

	"github.com/PolyhedraZK/BloqCostCollection/dtype"
)

// Adjoint is the inverse of Sub. Prefer AdjointOf, which uses a specialized inverse when
// the bloq has one.
type Adjoint struct {
	Sub Bloq
}

func (a Adjoint) Signature() Signature {
	return a.Sub.Signature().Adjoint()
}

func (a Adjoint) String() string {
	return a.Sub.String() + "†"
}

func (a Adjoint) Adjoint() Bloq {
	return a.Sub
}

// BuildComposite inverts the decomposition of Sub
func (a Adjoint) BuildComposite(bb *Builder, in map[string]Soquet) (map[string]Soquet, error) {
	cb, err := Decompose(a.Sub)
	if err != nil {
		return nil, err
	}
	return bb.AddFrom(cb.Adjoint().(*CompositeBloq), in), nil
}

// CtrlSpec is the control register type and the value that activates the controlled bloq
type CtrlSpec struct {
	QDType    dtype.QDType
	CtrlValue int64
}

// DefaultCtrlSpec is a single qubit control, active on |1>
func DefaultCtrlSpec() CtrlSpec {
	return CtrlSpec{QDType: dtype.QBit{}, CtrlValue: 1}
}

const CtrlRegisterName = "ctrl"

// Controlled applies Sub when the ctrl register holds Ctrl.CtrlValue
type Controlled struct {
	Sub  Bloq
	Ctrl CtrlSpec
}

// Control returns b controlled by a single qubit
func Control(b Bloq) Controlled {
	return Controlled{Sub: b, Ctrl: DefaultCtrlSpec()}
}

// CtrlRegister returns the name of the control register: CtrlRegisterName, or
// CtrlRegisterName followed by the first free index when Sub already uses that name
func (c Controlled) CtrlRegister() string {
	sub := c.Sub.Signature()
	used := func(name string) bool {
		for _, r := range sub {
			if r.Name == name {
				return true
			}
		}
		return false
	}
	name := CtrlRegisterName
	for i := 2; used(name); i++ {
		name = fmt.Sprintf("%s%d", CtrlRegisterName, i)
	}
	return name
}

func (c Controlled) Signature() Signature {
	sub := c.Sub.Signature()
	res := make(Signature, 0, len(sub)+1)
	res = append(res, NewRegister(c.CtrlRegister(), c.Ctrl.QDType))
	return append(res, sub...)
}

func (c Controlled) String() string {
	if c.Ctrl == DefaultCtrlSpec() {
		return "C[" + c.Sub.String() + "]"
	}
	return fmt.Sprintf("C[%s=%d][%s]", c.Ctrl.QDType, c.Ctrl.CtrlValue, c.Sub)
}

func (c Controlled) Adjoint() Bloq {
	return Controlled{Sub: AdjointOf(c.Sub), Ctrl: c.Ctrl}
}

// BuildComposite controls every instance of the decomposition of Sub
func (c Controlled) BuildComposite(bb *Builder, in map[string]Soquet) (map[string]Soquet, error) {
	cb, err := Decompose(c.Sub)
	if err != nil {
		return nil, err
	}
	name := c.CtrlRegister()
	ctrl := in[name]
	soqs := make(map[Soquet]Soquet)
	for _, r := range cb.signature.Lefts() {
		soqs[Soquet{Binst: LeftDangle, Reg: r}] = in[r.Name]
	}
	for _, inst := range cb.Instances {
		cc := Controlled{Sub: inst.Bloq, Ctrl: c.Ctrl}
		args := map[string]Soquet{cc.CtrlRegister(): ctrl}
		for i, r := range inst.Bloq.Signature().Lefts() {
			args[r.Name] = soqs[inst.Inputs[i]]
		}
		out := bb.Add(cc, args)
		ctrl = out[0]
		for i, s := range inst.Outputs {
			soqs[s] = out[i+1]
		}
	}
	res := map[string]Soquet{name: ctrl}
	for i, r := range cb.signature.Rights() {
		res[r.Name] = soqs[cb.Output[i]]
	}
	return res, nil
}

func (c Controlled) OnClassicalVals(vals map[string]*big.Int) (map[string]*big.Int, error) {
	name := c.CtrlRegister()
	ctrl := vals[name]
	sub := make(map[string]*big.Int, len(vals))
	for k, v := range vals {
		if k != name {
			sub[k] = v
		}
	}
	var res map[string]*big.Int
	if ctrl.Cmp(big.NewInt(c.Ctrl.CtrlValue)) == 0 {
		var err error
		res, err = CallClassically(c.Sub, sub)
		if err != nil {
			return nil, err
		}
	} else {
		for _, r := range c.Sub.Signature() {
			if r.Side != Thru {
				return nil, fmt.Errorf("%s: inactive control with non-THRU register %s", c, r.Name)
			}
		}
		res = sub
	}
	out := make(map[string]*big.Int, len(res)+1)
	for k, v := range res {
		out[k] = v
	}
	out[name] = ctrl
	return out, nil
}
