package godual

import "fmt"

// ============================================================
// Newton–Raphson root finder
// ============================================================

// Solver messages. Callers branch on Result.Ok, not on these strings.
const (
	msgConverged = "converged."
	msgMaxIter   = "max iterations reached."
)

// Result is the diagnostic record of one Newton solve. It is built once
// and never mutated; failure travels in Success/Message rather than as
// an error.
type Result struct {
	Message string
	Success bool
	NIt     int
	NFev    int
	X       Scalar
}

// Ok reports the record's truthiness: true only for a successful solve.
// The zero Result is falsy.
func (r Result) Ok() bool { return r.Success }

// String lists every field alphabetically by name, one "name: value"
// line per field.
func (r Result) String() string {
	return fmt.Sprintf("message: %s\nnfev: %d\nnit: %d\nsuccess: %t\nx: %v",
		r.Message, r.NFev, r.NIt, r.Success, r.X)
}

// Newton finds a root of f starting from x0, deriving f' automatically
// through the dual-number engine; no manual derivative and no finite
// differences. atol <= 0 defaults to 1e-8, maxIter <= 0 defaults to 200.
//
// Each iteration evaluates f(x0); if |f(x0)| < atol element-wise the
// solve converged, otherwise the iterate advances by the Newton step
// x0 − f(x0)/f'(x0). There is no guard against a zero or near-zero
// derivative: the step goes infinite or undefined and propagates into
// the next iteration. NFev reports twice the direct evaluations of f,
// because every f' evaluation re-evaluates f at a seeded point.
func Newton(f Func, x0 Scalar, atol float64, maxIter int) Result {
	if atol <= 0 {
		atol = 1e-8
	}
	if maxIter <= 0 {
		maxIter = 200
	}

	fprime := Derivative(f)

	nit := 0
	nfev := 0
	success := false
	msg := msgMaxIter
	for nit < maxIter {
		nfev++
		fx := f(ConOf(x0)).Value()
		if fx.Abs().AllLess(atol) {
			success = true
			msg = msgConverged
			break
		}
		nit++
		x0 = x0.Sub(fx.Div(fprime(x0)))
	}

	return Result{Message: msg, Success: success, NIt: nit, NFev: 2 * nfev, X: x0}
}
