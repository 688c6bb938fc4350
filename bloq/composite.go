package bloq

import (
	"fmt"
	"io"
	"math/big"
	"strings"

	"github.com/PolyhedraZK/BloqCostCollection/dtype"
)

// CompositeBloq is a bloq given by a list of sub bloq instances, in topological order
type CompositeBloq struct {
	signature Signature
	// each instance consumes soquets of earlier instances or of the left dangle
	Instances []Instance
	// one soquet per right register
	Output []Soquet
}

func (cb *CompositeBloq) Signature() Signature {
	return cb.signature
}

func (cb *CompositeBloq) String() string {
	strs := make([]string, len(cb.Instances))
	for i, inst := range cb.Instances {
		strs[i] = inst.Bloq.String()
	}
	return "CompositeBloq(" + strings.Join(strs, "; ") + ")"
}

// Callees returns the called bloqs, in order, with repetition
func (cb *CompositeBloq) Callees() []Bloq {
	res := make([]Bloq, len(cb.Instances))
	for i, inst := range cb.Instances {
		res[i] = inst.Bloq
	}
	return res
}

// Validate checks that every soquet is produced before it is consumed, consumed exactly
// once, and consumed by a register of the same type
func (cb *CompositeBloq) Validate() error {
	if err := cb.signature.Validate(); err != nil {
		return err
	}
	available := make(map[Soquet]bool)
	for _, r := range cb.signature.Lefts() {
		available[Soquet{Binst: LeftDangle, Reg: r}] = true
	}
	use := func(where string, r Register, s Soquet) error {
		if !available[s] {
			return fmt.Errorf("%s: soquet %s is unknown or already consumed", where, s)
		}
		if s.Reg.DType != r.DType {
			return fmt.Errorf("%s: register %s expects %s, got %s", where, r.Name, r.DType, s.Reg.DType)
		}
		delete(available, s)
		return nil
	}
	for id, inst := range cb.Instances {
		lefts := inst.Bloq.Signature().Lefts()
		if len(lefts) != len(inst.Inputs) {
			return fmt.Errorf("instance %d (%s): %d inputs for %d registers", id, inst.Bloq, len(inst.Inputs), len(lefts))
		}
		for i, r := range lefts {
			if err := use(fmt.Sprintf("instance %d (%s)", id, inst.Bloq), r, inst.Inputs[i]); err != nil {
				return err
			}
		}
		rights := inst.Bloq.Signature().Rights()
		if len(rights) != len(inst.Outputs) {
			return fmt.Errorf("instance %d (%s): %d outputs for %d registers", id, inst.Bloq, len(inst.Outputs), len(rights))
		}
		for i, r := range rights {
			s := inst.Outputs[i]
			if s.Binst != id || s.Reg != r {
				return fmt.Errorf("instance %d (%s): output %d is %s", id, inst.Bloq, i, s)
			}
			available[s] = true
		}
	}
	rights := cb.signature.Rights()
	if len(rights) != len(cb.Output) {
		return fmt.Errorf("%d outputs for %d registers", len(cb.Output), len(rights))
	}
	for i, r := range rights {
		if err := use("output", r, cb.Output[i]); err != nil {
			return err
		}
	}
	if len(available) > 0 {
		return fmt.Errorf("%d dangling soquets", len(available))
	}
	return nil
}

// CallClassically evaluates b on computational basis values, one per left register
func CallClassically(b Bloq, vals map[string]*big.Int) (map[string]*big.Int, error) {
	for _, r := range b.Signature().Lefts() {
		x, ok := vals[r.Name]
		if !ok {
			return nil, fmt.Errorf("%s: missing classical value for register %s", b, r.Name)
		}
		if err := dtype.CheckClassical(r.DType, x); err != nil {
			return nil, fmt.Errorf("%s: register %s: %w", b, r.Name, err)
		}
	}
	var (
		res map[string]*big.Int
		err error
	)
	if ca, ok := b.(ClassicalActor); ok {
		res, err = ca.OnClassicalVals(vals)
	} else if _, ok := b.(Decomposer); ok {
		var cb *CompositeBloq
		cb, err = Decompose(b)
		if err == nil {
			res, err = cb.CallClassically(vals)
		}
	} else if cb, ok := b.(*CompositeBloq); ok {
		res, err = cb.CallClassically(vals)
	} else {
		err = fmt.Errorf("%s: %w", b, ErrNoClassicalAction)
	}
	if err != nil {
		return nil, err
	}
	for _, r := range b.Signature().Rights() {
		x, ok := res[r.Name]
		if !ok {
			return nil, fmt.Errorf("%s: no classical result for register %s", b, r.Name)
		}
		if err := dtype.CheckClassical(r.DType, x); err != nil {
			return nil, fmt.Errorf("%s: result register %s: %w", b, r.Name, err)
		}
	}
	return res, nil
}

// CallClassically evaluates the instances one by one
func (cb *CompositeBloq) CallClassically(vals map[string]*big.Int) (map[string]*big.Int, error) {
	values := make(map[Soquet]*big.Int)
	for _, r := range cb.signature.Lefts() {
		x, ok := vals[r.Name]
		if !ok {
			return nil, fmt.Errorf("missing classical value for register %s", r.Name)
		}
		values[Soquet{Binst: LeftDangle, Reg: r}] = x
	}
	for _, inst := range cb.Instances {
		in := make(map[string]*big.Int, len(inst.Inputs))
		for i, r := range inst.Bloq.Signature().Lefts() {
			x, ok := values[inst.Inputs[i]]
			if !ok {
				panic("unexpected: unfilled values")
			}
			in[r.Name] = x
		}
		out, err := CallClassically(inst.Bloq, in)
		if err != nil {
			return nil, err
		}
		for _, s := range inst.Outputs {
			if _, ok := values[s]; ok {
				panic("unexpected: filled twice")
			}
			values[s] = out[s.Reg.Name]
		}
	}
	res := make(map[string]*big.Int, len(cb.Output))
	for i, r := range cb.signature.Rights() {
		res[r.Name] = values[cb.Output[i]]
	}
	return res, nil
}

// Adjoint returns the composite of the adjoints of the instances, in reverse order
func (cb *CompositeBloq) Adjoint() Bloq {
	bb, in := NewBuilder(cb.signature.Adjoint())
	soqs := make(map[Soquet]Soquet)
	for i, r := range cb.signature.Rights() {
		soqs[cb.Output[i]] = in[r.Name]
	}
	for i := len(cb.Instances) - 1; i >= 0; i-- {
		inst := cb.Instances[i]
		adj := AdjointOf(inst.Bloq)
		args := make(map[string]Soquet, len(inst.Outputs))
		for _, s := range inst.Outputs {
			args[s.Reg.Name] = soqs[s]
		}
		out := bb.Add(adj, args)
		for j, s := range inst.Inputs {
			soqs[s] = out[j]
		}
	}
	final := make(map[string]Soquet)
	for _, r := range cb.signature.Lefts() {
		final[r.Name] = soqs[Soquet{Binst: LeftDangle, Reg: r}]
	}
	res, err := bb.Finalize(final)
	if err != nil {
		panic(err)
	}
	return res
}

// Print writes one line per instance
func (cb *CompositeBloq) Print(w io.Writer) {
	soqsToStr := func(s []Soquet) string {
		strs := make([]string, len(s))
		for i, x := range s {
			strs[i] = x.String()
		}
		return strings.Join(strs, ",")
	}
	for id, inst := range cb.Instances {
		outs := make([]string, len(inst.Outputs))
		for i, s := range inst.Outputs {
			outs[i] = fmt.Sprintf("b%d.%s", id, s.Reg.Name)
		}
		fmt.Fprintf(w, "%s = %s(%s)\n", strings.Join(outs, ","), inst.Bloq, soqsToStr(inst.Inputs))
	}
	rights := cb.signature.Rights()
	for i, r := range rights {
		fmt.Fprintf(w, "out.%s = %s\n", r.Name, cb.Output[i])
	}
}
