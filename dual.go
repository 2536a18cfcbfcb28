package godual

import "math"

// ============================================================
// Number — dual number (value, derivative)
// ============================================================

// Number is an immutable dual number: a first-order Taylor expansion
// value + derivative·ε with ε² = 0. Arithmetic on Numbers propagates
// the derivative by the matching calculus rule, so evaluating an
// expression built from the ...Of operations yields the expression's
// exact derivative alongside its value.
type Number struct {
	x  Scalar
	dx Scalar
}

// NumOf makes a dual number from an explicit value and derivative.
func NumOf(x, dx Scalar) Number { return Number{x: x, dx: dx} }

// ConOf makes a constant: derivative 0.
func ConOf(x Scalar) Number { return Number{x: x, dx: Real(0)} }

// VarOf makes a seed variable: derivative 1, denoting the variable with
// respect to which differentiation proceeds.
func VarOf(x Scalar) Number { return Number{x: x, dx: Real(1)} }

// C is shorthand for ConOf(R(x)).
func C(x float64) Number { return ConOf(Real(x)) }

// V is shorthand for VarOf(R(x)).
func V(x float64) Number { return VarOf(Real(x)) }

// Value is the explicit lossy conversion back to a plain Scalar: it
// drops the derivative.
func (n Number) Value() Scalar { return n.x }

// Deriv returns the stored derivative.
func (n Number) Deriv() Scalar { return n.dx }

// Float64 extracts the value as a float64 when it is a Real.
func (n Number) Float64() (float64, bool) { return Float64(n.x) }

func (n Number) String() string { return n.x.String() }

// ============================================================
// Arithmetic engine
// ============================================================

// AddOf sums terms: (x+y, dx+dy). AddOf() is the additive identity.
func AddOf(terms ...Number) Number {
	out := C(0)
	for _, t := range terms {
		out = Number{x: out.x.Add(t.x), dx: out.dx.Add(t.dx)}
	}
	return out
}

// SubOf is (x−y, dx−dy).
func SubOf(a, b Number) Number {
	return Number{x: a.x.Sub(b.x), dx: a.dx.Sub(b.dx)}
}

// NegOf is multiplication by −1.
func NegOf(a Number) Number { return MulOf(a, C(-1)) }

// MulOf multiplies factors by the product rule: (x·y, dx·y + x·dy).
// MulOf() is the multiplicative identity.
func MulOf(factors ...Number) Number {
	out := C(1)
	for _, f := range factors {
		out = Number{
			x:  out.x.Mul(f.x),
			dx: out.dx.Mul(f.x).Add(out.x.Mul(f.dx)),
		}
	}
	return out
}

// DivOf is the quotient rule: (x/y, (dx·y − x·dy)/y²). Division by a
// zero-valued divisor never fails: the result is the (+Inf, +Inf)
// sentinel, which callers let propagate.
func DivOf(a, b Number) Number {
	if b.x.IsZero() {
		inf := Real(math.Inf(1))
		return Number{x: inf, dx: inf}
	}
	num := a.dx.Mul(b.x).Sub(a.x.Mul(b.dx))
	return Number{
		x:  a.x.Div(b.x),
		dx: num.Div(b.x.Mul(b.x)),
	}
}

// PowOf is x^y with the exponent treated as a constant: the derivative
// is y·x^(y−1)·dx. The exponent's own derivative is deliberately not
// folded in, so d/dx[x^y] is only correct for constant y; the full rule
// would add x^y·ln(x)·dy.
func PowOf(a, b Number) Number {
	y := b.x
	return Number{
		x:  a.x.Pow(y),
		dx: y.Mul(a.x.Pow(y.Sub(Real(1)))).Mul(a.dx),
	}
}
