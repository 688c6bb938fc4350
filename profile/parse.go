package profile

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/PolyhedraZK/BloqCostCollection/bloq"
	"github.com/PolyhedraZK/BloqCostCollection/bloqs/arithmetic"
	"github.com/PolyhedraZK/BloqCostCollection/bloqs/basic"
	"github.com/PolyhedraZK/BloqCostCollection/bloqs/fortesting"
	"github.com/PolyhedraZK/BloqCostCollection/dtype"
	"github.com/PolyhedraZK/BloqCostCollection/resource"
	"github.com/PolyhedraZK/BloqCostCollection/symbolic"
)

var ErrBadGate = errors.New("bad gate")

var simpleGates = map[string]bloq.Bloq{
	"T":       basic.TGate{},
	"H":       basic.Hadamard{},
	"X":       basic.XGate{},
	"Y":       basic.YGate{},
	"Z":       basic.ZGate{},
	"S":       basic.SGate{},
	"CNOT":    basic.CNOT{},
	"CZ":      basic.CZ{},
	"SWAP":    basic.TwoBitSwap{},
	"Toffoli": basic.Toffoli{},
}

// ParseGate parses a gate description such as "T", "C(T)", "Adj(Toffoli)", "S†",
// "Rz(0.1, 1e-9)", "ZPow(t, eps)", "Add(8)" or "TestCastToFrom(4)".
// Angles, exponents and precisions are numbers or symbol names. The precision of a
// rotation defaults to basic.DefaultEps.
func ParseGate(s string) (bloq.Bloq, error) {
	b, err := parseGate(strings.TrimSpace(s))
	if err != nil {
		return nil, fmt.Errorf("%q: %w", s, err)
	}
	return b, nil
}

func parseGate(s string) (bloq.Bloq, error) {
	if strings.HasSuffix(s, "†") {
		b, err := parseGate(strings.TrimSpace(strings.TrimSuffix(s, "†")))
		if err != nil {
			return nil, err
		}
		return bloq.AdjointOf(b), nil
	}
	name, args, err := splitCall(s)
	if err != nil {
		return nil, err
	}
	if args == nil {
		if b, ok := simpleGates[name]; ok {
			return b, nil
		}
		return nil, fmt.Errorf("%w: unknown gate %s", ErrBadGate, name)
	}

	switch name {
	case "C", "Adj":
		if len(args) != 1 {
			return nil, fmt.Errorf("%w: %s takes one gate", ErrBadGate, name)
		}
		sub, err := parseGate(args[0])
		if err != nil {
			return nil, err
		}
		if name == "C" {
			return bloq.Control(sub), nil
		}
		return bloq.AdjointOf(sub), nil
	case "Rz", "Rx", "Ry", "ZPow", "XPow", "YPow":
		v, eps, err := rotationArgs(name, args)
		if err != nil {
			return nil, err
		}
		switch name {
		case "Rz":
			return basic.Rz{Angle: v, Eps: eps}, nil
		case "Rx":
			return basic.Rx{Angle: v, Eps: eps}, nil
		case "Ry":
			return basic.Ry{Angle: v, Eps: eps}, nil
		case "ZPow":
			return basic.ZPowGate{Exponent: v, Eps: eps}, nil
		case "XPow":
			return basic.XPowGate{Exponent: v, Eps: eps}, nil
		default:
			return basic.YPowGate{Exponent: v, Eps: eps}, nil
		}
	case "Add", "TestCastToFrom":
		if len(args) != 1 {
			return nil, fmt.Errorf("%w: %s takes a bitsize", ErrBadGate, name)
		}
		n, err := strconv.Atoi(args[0])
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("%w: invalid bitsize %q", ErrBadGate, args[0])
		}
		if name == "Add" {
			return arithmetic.NewAdd(dtype.QUInt{Bitsize: n}), nil
		}
		return fortesting.TestCastToFrom{Bitsize: n}, nil
	}
	return nil, fmt.Errorf("%w: unknown gate %s", ErrBadGate, name)
}

// splitCall splits "name(a, b(c, d))" into name and its top level arguments.
// args is nil when s has no argument list.
func splitCall(s string) (name string, args []string, err error) {
	i := strings.IndexByte(s, '(')
	if i < 0 {
		if s == "" {
			return "", nil, fmt.Errorf("%w: empty gate", ErrBadGate)
		}
		return s, nil, nil
	}
	if !strings.HasSuffix(s, ")") {
		return "", nil, fmt.Errorf("%w: missing closing parenthesis", ErrBadGate)
	}
	name = strings.TrimSpace(s[:i])
	body := s[i+1 : len(s)-1]
	args = []string{}
	depth, start := 0, 0
	for j, c := range body {
		switch c {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return "", nil, fmt.Errorf("%w: unbalanced parentheses", ErrBadGate)
			}
		case ',':
			if depth == 0 {
				args = append(args, strings.TrimSpace(body[start:j]))
				start = j + 1
			}
		}
	}
	if depth != 0 {
		return "", nil, fmt.Errorf("%w: unbalanced parentheses", ErrBadGate)
	}
	if last := strings.TrimSpace(body[start:]); last != "" || len(args) > 0 {
		args = append(args, last)
	}
	return name, args, nil
}

func rotationArgs(name string, args []string) (v, eps symbolic.Float, err error) {
	if len(args) < 1 || len(args) > 2 {
		return v, eps, fmt.Errorf("%w: %s takes an angle and an optional precision", ErrBadGate, name)
	}
	if v, err = parseFloat(args[0]); err != nil {
		return v, eps, err
	}
	eps = symbolic.FloatValue(basic.DefaultEps)
	if len(args) == 2 {
		if eps, err = parseFloat(args[1]); err != nil {
			return v, eps, err
		}
		if err = resource.CheckPrecision(eps); err != nil {
			return v, eps, fmt.Errorf("%w: %v", ErrBadGate, err)
		}
	}
	return v, eps, nil
}

func parseFloat(s string) (symbolic.Float, error) {
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return symbolic.FloatValue(f), nil
	}
	if !isIdent(s) {
		return symbolic.Float{}, fmt.Errorf("%w: %q is neither a number nor a symbol", ErrBadGate, s)
	}
	return symbolic.FloatSymbol(s), nil
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, c := range s {
		if c == '_' || unicode.IsLetter(c) || (i > 0 && unicode.IsDigit(c)) {
			continue
		}
		return false
	}
	return true
}
