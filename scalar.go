// Package godual provides forward-mode automatic differentiation for Go.
//
// Design goals:
//   - Dual-number arithmetic whose rules exactly mirror calculus
//   - Works over plain reals and element-wise float64 vectors
//   - Deterministic, allocation-light, no mutation after construction
//   - AI/LLM friendly: JSON expressions, tool-call and MCP-ready APIs
//   - Embeddable in Go services, CLI tools, and agent backends
package godual

import (
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
)

// ============================================================
// Scalar — numeric payload carried by dual numbers
// ============================================================

// Scalar is the numeric payload of a dual number: either a single real
// (Real) or an element-wise vector (Vector). A Real broadcasts over a
// Vector in mixed operations, the way a plain float broadcasts over an
// array. Every method returns a fresh value.
type Scalar interface {
	Add(Scalar) Scalar
	Sub(Scalar) Scalar
	Mul(Scalar) Scalar
	Div(Scalar) Scalar
	Pow(Scalar) Scalar
	Neg() Scalar
	Abs() Scalar
	IsZero() bool
	// AllLess reports whether every element is strictly below tol.
	AllLess(tol float64) bool
	String() string
}

// ============================================================
// Real — single float64
// ============================================================

type Real float64

// R wraps a float64 as a Scalar.
func R(x float64) Scalar { return Real(x) }

func (r Real) Add(o Scalar) Scalar {
	switch v := o.(type) {
	case Real:
		return r + v
	case Vector:
		return v.addConst(float64(r))
	}
	panic(badScalar(o))
}

func (r Real) Sub(o Scalar) Scalar {
	switch v := o.(type) {
	case Real:
		return r - v
	case Vector:
		return v.scale(-1).addConst(float64(r))
	}
	panic(badScalar(o))
}

func (r Real) Mul(o Scalar) Scalar {
	switch v := o.(type) {
	case Real:
		return r * v
	case Vector:
		return v.scale(float64(r))
	}
	panic(badScalar(o))
}

func (r Real) Div(o Scalar) Scalar {
	switch v := o.(type) {
	case Real:
		return r / v
	case Vector:
		out := make(Vector, len(v))
		for i, y := range v {
			out[i] = float64(r) / y
		}
		return out
	}
	panic(badScalar(o))
}

func (r Real) Pow(o Scalar) Scalar {
	switch v := o.(type) {
	case Real:
		return Real(math.Pow(float64(r), float64(v)))
	case Vector:
		out := make(Vector, len(v))
		for i, y := range v {
			out[i] = math.Pow(float64(r), y)
		}
		return out
	}
	panic(badScalar(o))
}

func (r Real) Neg() Scalar              { return -r }
func (r Real) Abs() Scalar              { return Real(math.Abs(float64(r))) }
func (r Real) IsZero() bool             { return r == 0 }
func (r Real) AllLess(tol float64) bool { return float64(r) < tol }
func (r Real) Float64() float64         { return float64(r) }
func (r Real) String() string           { return fmt.Sprintf("%v", float64(r)) }

// ============================================================
// Vector — element-wise []float64
// ============================================================

type Vector []float64

// Vec copies xs into a Vector Scalar.
func Vec(xs ...float64) Scalar { return Vector(slices.Clone(xs)) }

func (v Vector) Add(o Scalar) Scalar {
	switch w := o.(type) {
	case Real:
		return v.addConst(float64(w))
	case Vector:
		out := make(Vector, v.sameLen(w))
		floats.AddTo(out, v, w)
		return out
	}
	panic(badScalar(o))
}

func (v Vector) Sub(o Scalar) Scalar {
	switch w := o.(type) {
	case Real:
		return v.addConst(-float64(w))
	case Vector:
		out := make(Vector, v.sameLen(w))
		floats.SubTo(out, v, w)
		return out
	}
	panic(badScalar(o))
}

func (v Vector) Mul(o Scalar) Scalar {
	switch w := o.(type) {
	case Real:
		return v.scale(float64(w))
	case Vector:
		out := make(Vector, v.sameLen(w))
		floats.MulTo(out, v, w)
		return out
	}
	panic(badScalar(o))
}

func (v Vector) Div(o Scalar) Scalar {
	switch w := o.(type) {
	case Real:
		return v.scale(1 / float64(w))
	case Vector:
		out := make(Vector, v.sameLen(w))
		floats.DivTo(out, v, w)
		return out
	}
	panic(badScalar(o))
}

func (v Vector) Pow(o Scalar) Scalar {
	switch w := o.(type) {
	case Real:
		out := make(Vector, len(v))
		for i, x := range v {
			out[i] = math.Pow(x, float64(w))
		}
		return out
	case Vector:
		out := make(Vector, v.sameLen(w))
		for i, x := range v {
			out[i] = math.Pow(x, w[i])
		}
		return out
	}
	panic(badScalar(o))
}

func (v Vector) Neg() Scalar { return v.scale(-1) }

func (v Vector) Abs() Scalar {
	out := make(Vector, len(v))
	for i, x := range v {
		out[i] = math.Abs(x)
	}
	return out
}

func (v Vector) IsZero() bool {
	for _, x := range v {
		if x != 0 {
			return false
		}
	}
	return true
}

func (v Vector) AllLess(tol float64) bool {
	for _, x := range v {
		if x >= tol {
			return false
		}
	}
	return true
}

func (v Vector) String() string { return fmt.Sprintf("%v", []float64(v)) }

func (v Vector) addConst(c float64) Vector {
	out := Vector(slices.Clone(v))
	floats.AddConst(c, out)
	return out
}

func (v Vector) scale(c float64) Vector {
	out := make(Vector, len(v))
	floats.ScaleTo(out, c, v)
	return out
}

func (v Vector) sameLen(w Vector) int {
	if len(v) != len(w) {
		panic(fmt.Sprintf("godual: vector length mismatch: %d vs %d", len(v), len(w)))
	}
	return len(v)
}

// Float64 extracts the float64 behind a Real Scalar.
func Float64(s Scalar) (float64, bool) {
	r, ok := s.(Real)
	return float64(r), ok
}

func badScalar(s Scalar) string {
	return fmt.Sprintf("godual: unknown scalar kind %T", s)
}
