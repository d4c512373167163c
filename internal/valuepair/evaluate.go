package valuepair

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samestrin/valuepair-fixture/pkg/valuepair"
)

// Kind selects the numeric type operands are parsed into.
type Kind string

const (
	KindAuto  Kind = "auto"
	KindInt   Kind = "int"
	KindFloat Kind = "float"
)

// ValidKinds returns the accepted kind names.
func ValidKinds() []string {
	return []string{string(KindAuto), string(KindInt), string(KindFloat)}
}

// ParseKind parses a kind name. Empty means auto.
func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case "", KindAuto:
		return KindAuto, nil
	case KindInt:
		return KindInt, nil
	case KindFloat:
		return KindFloat, nil
	default:
		return "", ErrInvalidKind(s)
	}
}

// Resolve picks int or float for auto: int when every non-empty value
// parses as an integer, float otherwise.
func (k Kind) Resolve(values ...string) Kind {
	if k != KindAuto && k != "" {
		return k
	}
	for _, v := range values {
		if v != "" && !isInt(v) {
			return KindFloat
		}
	}
	return KindInt
}

func isInt(s string) bool {
	_, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	return err == nil
}

// Result is the outcome of one Add call.
type Result struct {
	Kind Kind        `json:"kind"`
	A    interface{} `json:"a"`
	B    interface{} `json:"b"`
	Sum  interface{} `json:"sum"`
}

// Operands are two parsed values of the same kind. Only the fields for Kind
// are meaningful.
type Operands struct {
	Kind       Kind
	IntA, IntB int64
	FltA, FltB float64
}

// ParseOperands parses a and b for kind, resolving auto first.
func ParseOperands(kind Kind, a, b string) (Operands, error) {
	kind = kind.Resolve(a, b)
	ops := Operands{Kind: kind}

	switch kind {
	case KindInt:
		var err error
		if ops.IntA, err = strconv.ParseInt(strings.TrimSpace(a), 10, 64); err != nil {
			return Operands{}, ErrInvalidOperand("a", a, err)
		}
		if ops.IntB, err = strconv.ParseInt(strings.TrimSpace(b), 10, 64); err != nil {
			return Operands{}, ErrInvalidOperand("b", b, err)
		}
	case KindFloat:
		var err error
		if ops.FltA, err = strconv.ParseFloat(strings.TrimSpace(a), 64); err != nil {
			return Operands{}, ErrInvalidOperand("a", a, err)
		}
		if ops.FltB, err = strconv.ParseFloat(strings.TrimSpace(b), 64); err != nil {
			return Operands{}, ErrInvalidOperand("b", b, err)
		}
	default:
		return Operands{}, ErrInvalidKind(string(kind))
	}

	return ops, nil
}

// Add constructs the ValuePair for the operands and returns its sum.
func (o Operands) Add() Result {
	if o.Kind == KindInt {
		p := valuepair.New(o.IntA, o.IntB)
		return Result{Kind: KindInt, A: p.A(), B: p.B(), Sum: p.Add()}
	}
	p := valuepair.New(o.FltA, o.FltB)
	return Result{Kind: KindFloat, A: p.A(), B: p.B(), Sum: p.Add()}
}

// Env returns the operands as an expression environment with keys a and b.
func (o Operands) Env() map[string]interface{} {
	if o.Kind == KindInt {
		return map[string]interface{}{"a": o.IntA, "b": o.IntB}
	}
	return map[string]interface{}{"a": o.FltA, "b": o.FltB}
}

// Evaluate parses a and b for kind and adds them.
func Evaluate(kind Kind, a, b string) (Result, error) {
	ops, err := ParseOperands(kind, a, b)
	if err != nil {
		return Result{}, err
	}
	return ops.Add(), nil
}

// FormatNumber renders a sum for text output.
func FormatNumber(v interface{}) string {
	switch n := v.(type) {
	case int64:
		return strconv.FormatInt(n, 10)
	case int:
		return strconv.Itoa(n)
	case float64:
		return strconv.FormatFloat(n, 'g', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}
