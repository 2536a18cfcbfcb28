package godual

import (
	"errors"
	"fmt"
)

// ============================================================
// Value / derivative extraction
// ============================================================

// ErrUnsupportedType is returned by ValueOf for inputs outside
// {Number, Scalar, plain numeric, []float64}.
var ErrUnsupportedType = errors.New("godual: unsupported type")

// ValueOf returns the numeric payload of v: a Number's value field, a
// Scalar as-is, or a plain numeric wrapped as one. No other coercion is
// attempted.
func ValueOf(v any) (Scalar, error) {
	switch t := v.(type) {
	case Number:
		return t.x, nil
	case Real:
		return t, nil
	case Vector:
		return Vec(t...), nil
	case float64:
		return Real(t), nil
	case float32:
		return Real(t), nil
	case int:
		return Real(t), nil
	case int64:
		return Real(t), nil
	case []float64:
		return Vec(t...), nil
	}
	return nil, fmt.Errorf("cannot convert %T to a value: %w", v, ErrUnsupportedType)
}

// Func is a scalar function expressed with dual-number operations, so
// that its derivative is well-defined by construction.
type Func func(Number) Number

// Derivative turns f into its derivative function without symbolic
// manipulation: the returned g evaluates f at a seeded variable and
// extracts the propagated derivative, so g(x) = f'(x) exactly.
func Derivative(f Func) func(Scalar) Scalar {
	return func(x Scalar) Scalar {
		return f(VarOf(x)).Deriv()
	}
}

// DerivativeN is Derivative with an order request. Repeated requests do
// not compose: a single dual number only carries first-order
// information, so every n >= 1 yields the first derivative. A true n-th
// order function would need nested (hyper-) duals.
func DerivativeN(f Func, n int) func(Scalar) Scalar {
	if n > 1 {
		return DerivativeN(f, n-1)
	}
	return Derivative(f)
}
