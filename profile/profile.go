// Package profile reads sigma profiles: YAML documents listing gates and how many times
// each one is called.
//
//	gates:
//	  - gate: T
//	    count: 12
//	  - gate: C(Rz(0.1, 1e-9))
//	    count: n
//	expand:
//	  - gate: TestCastToFrom(4)
//
// Entries under expand are decomposed into their own sigma before being added.
package profile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/PolyhedraZK/BloqCostCollection/bloq"
	"github.com/PolyhedraZK/BloqCostCollection/resource"
	"github.com/PolyhedraZK/BloqCostCollection/symbolic"
	"github.com/consensys/gnark/logger"
	"gopkg.in/yaml.v3"
)

type Document struct {
	Gates  []Entry `yaml:"gates"`
	Expand []Entry `yaml:"expand,omitempty"`
}

type Entry struct {
	Gate  string `yaml:"gate"`
	Count Count  `yaml:"count,omitempty"`
}

// Count is an integer or a symbol name. The zero value counts once.
type Count struct {
	text string
}

func (c *Count) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: count must be a scalar", value.Line)
	}
	c.text = value.Value
	return nil
}

func (c Count) MarshalYAML() (interface{}, error) {
	if c.text == "" {
		return 1, nil
	}
	if v, err := strconv.ParseInt(c.text, 10, 64); err == nil {
		return v, nil
	}
	return c.text, nil
}

// Expression returns the count as a symbolic expression
func (c Count) Expression() (symbolic.Expression, error) {
	if c.text == "" {
		return symbolic.Const(1), nil
	}
	if v, err := strconv.ParseInt(c.text, 10, 64); err == nil {
		if v < 0 {
			return nil, fmt.Errorf("negative count %d", v)
		}
		return symbolic.Const(v), nil
	}
	if !isIdent(c.text) {
		return nil, fmt.Errorf("count %q is neither an integer nor a symbol", c.text)
	}
	return symbolic.Symbol(c.text), nil
}

// Decode parses a profile document. Unknown fields are rejected.
func Decode(r io.Reader) (*Document, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return &doc, nil
		}
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return &doc, nil
}

// Sigma builds the sigma described by the document.
// opts are passed to resource.GetSigma for expanded entries.
func (doc *Document) Sigma(opts ...resource.SigmaOption) (*resource.Sigma, error) {
	log := logger.Logger()
	res := resource.NewSigma()
	for i, e := range doc.Gates {
		b, n, err := e.parse()
		if err != nil {
			return nil, fmt.Errorf("gates[%d]: %w", i, err)
		}
		res.Add(b, n)
	}
	for i, e := range doc.Expand {
		b, n, err := e.parse()
		if err != nil {
			return nil, fmt.Errorf("expand[%d]: %w", i, err)
		}
		sub, err := resource.GetSigma(b, opts...)
		if err != nil {
			return nil, fmt.Errorf("expand[%d]: %w", i, err)
		}
		log.Debug().Str("gate", e.Gate).Int("nbLeaves", sub.Len()).Msg("profile entry expanded")
		res.Merge(sub, n)
	}
	return res, nil
}

func (e Entry) parse() (b bloq.Bloq, n symbolic.Expression, err error) {
	if b, err = ParseGate(e.Gate); err != nil {
		return nil, nil, err
	}
	if n, err = e.Count.Expression(); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", e.Gate, err)
	}
	return b, n, nil
}

// Load decodes a profile and builds its sigma
func Load(r io.Reader, opts ...resource.SigmaOption) (*resource.Sigma, error) {
	doc, err := Decode(r)
	if err != nil {
		return nil, err
	}
	return doc.Sigma(opts...)
}

func LoadFile(path string, opts ...resource.SigmaOption) (*resource.Sigma, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile: %w", err)
	}
	defer f.Close()
	return Load(f, opts...)
}
