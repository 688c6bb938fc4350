package bloq

import (
	"fmt"
	"sort"
)

// LeftDangle is the instance id of the soquets that enter a composite bloq
const LeftDangle = -1

// Soquet is one end of a wire: the register of an instance that produced it
type Soquet struct {
	Binst int
	Reg   Register
}

func (s Soquet) String() string {
	if s.Binst == LeftDangle {
		return "in." + s.Reg.Name
	}
	return fmt.Sprintf("b%d.%s", s.Binst, s.Reg.Name)
}

// Instance is a bloq called inside a composite bloq.
// Inputs are aligned with Bloq.Signature().Lefts() and Outputs with Rights().
type Instance struct {
	Bloq    Bloq
	Inputs  []Soquet
	Outputs []Soquet
}

// Builder builds a CompositeBloq. Every soquet must be consumed exactly once, and the
// declared type of a soquet must equal the type of the register consuming it.
// Violations are programming errors and panic, like malformed input to the circuit builder.
type Builder struct {
	signature Signature

	instances []Instance

	// soquets produced but not yet consumed
	available map[Soquet]bool
}

// NewBuilder returns a builder for a composite bloq with the given signature, and the soquets
// of its left registers
func NewBuilder(sig Signature) (*Builder, map[string]Soquet) {
	if err := sig.Validate(); err != nil {
		panic(err)
	}
	bb := &Builder{
		signature: sig,
		available: make(map[Soquet]bool),
	}
	in := make(map[string]Soquet)
	for _, r := range sig.Lefts() {
		s := Soquet{Binst: LeftDangle, Reg: r}
		bb.available[s] = true
		in[r.Name] = s
	}
	return bb, in
}

func (bb *Builder) consume(b Bloq, reg Register, s Soquet) {
	if !bb.available[s] {
		panic(fmt.Sprintf("%s: soquet %s for register %s is unknown or already consumed", b, s, reg.Name))
	}
	if s.Reg.DType != reg.DType {
		panic(fmt.Sprintf("%s: register %s expects %s, got soquet %s of %s", b, reg.Name, reg.DType, s, s.Reg.DType))
	}
	delete(bb.available, s)
}

// Add calls b on the given soquets (keyed by left register name) and returns the new
// soquets of its right registers, in signature order
func (bb *Builder) Add(b Bloq, in map[string]Soquet) []Soquet {
	lefts := b.Signature().Lefts()
	if len(in) != len(lefts) {
		panic(fmt.Sprintf("%s: expected %d input soquets, got %d", b, len(lefts), len(in)))
	}
	inst := Instance{
		Bloq:   b,
		Inputs: make([]Soquet, len(lefts)),
	}
	for i, r := range lefts {
		s, ok := in[r.Name]
		if !ok {
			panic(fmt.Sprintf("%s: missing soquet for register %s", b, r.Name))
		}
		bb.consume(b, r, s)
		inst.Inputs[i] = s
	}
	id := len(bb.instances)
	for _, r := range b.Signature().Rights() {
		s := Soquet{Binst: id, Reg: r}
		bb.available[s] = true
		inst.Outputs = append(inst.Outputs, s)
	}
	bb.instances = append(bb.instances, inst)
	return inst.Outputs
}

// Add1 is like Add for bloqs with exactly one right register
func (bb *Builder) Add1(b Bloq, in map[string]Soquet) Soquet {
	out := bb.Add(b, in)
	if len(out) != 1 {
		panic(fmt.Sprintf("%s: expected 1 output soquet, got %d", b, len(out)))
	}
	return out[0]
}

// Finalize checks the output soquets and returns the composite bloq.
// out must have one soquet per right register, and no other soquet may be left unconsumed.
func (bb *Builder) Finalize(out map[string]Soquet) (*CompositeBloq, error) {
	rights := bb.signature.Rights()
	if len(out) != len(rights) {
		return nil, fmt.Errorf("expected %d output soquets, got %d", len(rights), len(out))
	}
	final := make([]Soquet, len(rights))
	for i, r := range rights {
		s, ok := out[r.Name]
		if !ok {
			return nil, fmt.Errorf("missing output soquet for register %s", r.Name)
		}
		if !bb.available[s] {
			return nil, fmt.Errorf("output soquet %s for register %s is unknown or already consumed", s, r.Name)
		}
		if s.Reg.DType != r.DType {
			return nil, fmt.Errorf("output register %s expects %s, got soquet %s of %s", r.Name, r.DType, s, s.Reg.DType)
		}
		delete(bb.available, s)
		final[i] = s
	}
	if len(bb.available) > 0 {
		dangling := make([]string, 0, len(bb.available))
		for s := range bb.available {
			dangling = append(dangling, s.String())
		}
		sort.Strings(dangling)
		return nil, fmt.Errorf("dangling soquets %v", dangling)
	}
	return &CompositeBloq{
		signature: bb.signature,
		Instances: bb.instances,
		Output:    final,
	}, nil
}

// AddFrom inlines the instances of cb, consuming the given soquets (keyed by left register
// name) and returning the soquets of its right registers
func (bb *Builder) AddFrom(cb *CompositeBloq, in map[string]Soquet) map[string]Soquet {
	lefts := cb.signature.Lefts()
	if len(in) != len(lefts) {
		panic(fmt.Sprintf("%s: expected %d input soquets, got %d", cb, len(lefts), len(in)))
	}
	soqs := make(map[Soquet]Soquet)
	for _, r := range lefts {
		s, ok := in[r.Name]
		if !ok {
			panic(fmt.Sprintf("%s: missing soquet for register %s", cb, r.Name))
		}
		soqs[Soquet{Binst: LeftDangle, Reg: r}] = s
	}
	for _, inst := range cb.Instances {
		args := make(map[string]Soquet, len(inst.Inputs))
		for i, r := range inst.Bloq.Signature().Lefts() {
			args[r.Name] = soqs[inst.Inputs[i]]
		}
		out := bb.Add(inst.Bloq, args)
		for i, s := range inst.Outputs {
			soqs[s] = out[i]
		}
	}
	res := make(map[string]Soquet, len(cb.Output))
	for i, r := range cb.signature.Rights() {
		res[r.Name] = soqs[cb.Output[i]]
	}
	return res
}
