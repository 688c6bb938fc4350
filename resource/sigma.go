package resource

import (
	"errors"
	"sort"

	"github.com/PolyhedraZK/BloqCostCollection/bloq"
	"github.com/PolyhedraZK/BloqCostCollection/bloqs/basic"
	"github.com/PolyhedraZK/BloqCostCollection/symbolic"
	"github.com/PolyhedraZK/BloqCostCollection/utils"
	"github.com/consensys/gnark/logger"
	"github.com/rs/zerolog"
)

// Sigma is a weighted multiset of bloqs, the aggregated resource profile of a larger bloq.
// The zero value is an empty sigma.
type Sigma struct {
	// map from bloq.Key to *SigmaEntry
	m utils.Map
}

type SigmaEntry struct {
	Bloq  bloq.Bloq
	Count symbolic.Expression
}

func NewSigma() *Sigma {
	return &Sigma{m: make(utils.Map)}
}

// Add adds n occurrences of b
func (s *Sigma) Add(b bloq.Bloq, n symbolic.Expression) {
	if s.m == nil {
		s.m = make(utils.Map)
	}
	e := s.m.Add(bloq.Key(b), &SigmaEntry{Bloq: b, Count: symbolic.Const(0)}).(*SigmaEntry)
	e.Count = e.Count.Add(n)
}

func (s *Sigma) AddInt(b bloq.Bloq, n int64) {
	s.Add(b, symbolic.Const(n))
}

// Merge adds factor copies of every entry of o
func (s *Sigma) Merge(o *Sigma, factor symbolic.Expression) {
	for _, e := range o.Entries() {
		s.Add(e.Bloq, e.Count.Mul(factor))
	}
}

// Get returns the count of b, 0 if absent
func (s *Sigma) Get(b bloq.Bloq) symbolic.Expression {
	v, ok := s.m.Find(bloq.Key(b))
	if !ok {
		return symbolic.Const(0)
	}
	return v.(*SigmaEntry).Count
}

func (s *Sigma) Len() int {
	return s.m.Len()
}

// Entries returns the entries sorted by bloq name
func (s *Sigma) Entries() []SigmaEntry {
	res := make([]SigmaEntry, 0, s.Len())
	s.m.Range(func(_ utils.Hashable, v interface{}) bool {
		res = append(res, *v.(*SigmaEntry))
		return true
	})
	sort.Slice(res, func(i, j int) bool {
		return res[i].Bloq.String() < res[j].Bloq.String()
	})
	return res
}

// SigmaConfig controls how GetSigma decomposes bloqs
type SigmaConfig struct {
	// bloqs for which Leaf returns true are not decomposed
	Leaf   func(bloq.Bloq) bool
	Logger zerolog.Logger
}

type SigmaOption func(opt *SigmaConfig) error

// WithLeaf stops the decomposition at bloqs for which f returns true, in addition to the default leaves
func WithLeaf(f func(bloq.Bloq) bool) SigmaOption {
	return func(opt *SigmaConfig) error {
		prev := opt.Leaf
		opt.Leaf = func(b bloq.Bloq) bool {
			return f(b) || prev(b)
		}
		return nil
	}
}

func WithLogger(l zerolog.Logger) SigmaOption {
	return func(opt *SigmaConfig) error {
		opt.Logger = l
		return nil
	}
}

// DefaultLeaf returns true for bloqs whose T count is known without decomposition:
// T gates, Clifford gates, rotations, and wrappers of those
func DefaultLeaf(b bloq.Bloq) bool {
	switch g := b.(type) {
	case bloq.Adjoint:
		return DefaultLeaf(g.Sub)
	case bloq.Controlled:
		return DefaultLeaf(g.Sub)
	}
	return isTGate(b) || IsClifford(b) || IsRotation(b)
}

func isTGate(b bloq.Bloq) bool {
	_, ok := b.(basic.TGate)
	return ok
}

type sigmaContext struct {
	conf *SigmaConfig
	m    utils.Map
}

// GetSigma decomposes b recursively down to leaves and returns the number of times each
// leaf is called. Bloqs without a decomposition are leaves.
func GetSigma(b bloq.Bloq, opts ...SigmaOption) (*Sigma, error) {
	conf := &SigmaConfig{
		Leaf:   DefaultLeaf,
		Logger: logger.Logger(),
	}
	for _, o := range opts {
		if err := o(conf); err != nil {
			return nil, err
		}
	}
	sc := &sigmaContext{
		conf: conf,
		m:    make(utils.Map),
	}
	res, err := sc.calcSigma(b)
	if err != nil {
		return nil, err
	}
	conf.Logger.Debug().
		Str("bloq", b.String()).
		Int("nbLeaves", res.Len()).
		Int("nbVisited", sc.m.Len()).
		Msg("sigma computed")
	return res, nil
}

func (sc *sigmaContext) calcSigma(b bloq.Bloq) (*Sigma, error) {
	k := bloq.Key(b)
	if r, ok := sc.m.Find(k); ok {
		return r.(*Sigma), nil
	}
	r := NewSigma()
	if sc.conf.Leaf(b) {
		r.AddInt(b, 1)
		sc.m.Set(k, r)
		return r, nil
	}
	cb, err := bloq.Decompose(b)
	if errors.Is(err, bloq.ErrNotDecomposable) {
		r.AddInt(b, 1)
		sc.m.Set(k, r)
		return r, nil
	}
	if err != nil {
		return nil, err
	}
	for _, callee := range cb.Callees() {
		sub, err := sc.calcSigma(callee)
		if err != nil {
			return nil, err
		}
		r.Merge(sub, symbolic.Const(1))
	}
	sc.m.Set(k, r)
	return r, nil
}
