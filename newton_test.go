package godual_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/njchilds90/godual"
)

func TestNewton_Converges(t *testing.T) {
	res := godual.Newton(cubic, godual.R(3), 1e-1, 200)

	require.True(t, res.Ok())
	assert.Equal(t, "converged.", res.Message)
	assert.Equal(t, 3, res.NIt)
	assert.Equal(t, 8, res.NFev)
	x, ok := godual.Float64(res.X)
	require.True(t, ok)
	assert.InDelta(t, 1.6807929652716966, x, 1e-9)
}

func TestNewton_TighterToleranceNeedsMoreIterations(t *testing.T) {
	loose := godual.Newton(cubic, godual.R(3), 1e-1, 200)
	tight := godual.Newton(cubic, godual.R(3), 1e-10, 200)

	require.True(t, tight.Ok())
	assert.Equal(t, 6, tight.NIt)
	assert.GreaterOrEqual(t, tight.NIt, loose.NIt)
}

func TestNewton_MaxIterationsReached(t *testing.T) {
	res := godual.Newton(cubic, godual.R(-2), 1e-2, 15)

	assert.False(t, res.Ok())
	assert.Equal(t, "max iterations reached.", res.Message)
	assert.Equal(t, 15, res.NIt)
	assert.Equal(t, 30, res.NFev, "nfev is twice the direct evaluations")
	x, ok := godual.Float64(res.X)
	require.True(t, ok)
	assert.InDelta(t, 4.603428431640553, x, 1e-9)
}

func TestNewton_StartValueMatters(t *testing.T) {
	res := godual.Newton(cubic, godual.R(-2), 1e-2, 200)

	require.True(t, res.Ok())
	assert.Equal(t, 20, res.NIt)
}

func TestNewton_Defaults(t *testing.T) {
	// atol <= 0 and maxIter <= 0 fall back to 1e-8 and 200.
	res := godual.Newton(cubic, godual.R(3), 0, 0)
	explicit := godual.Newton(cubic, godual.R(3), 1e-8, 200)

	require.True(t, res.Ok())
	assert.Equal(t, explicit.NIt, res.NIt)
	assert.Equal(t, explicit.X, res.X)
}

func TestNewton_ImmediateConvergence(t *testing.T) {
	// Already at a root: zero iterations, one evaluation.
	f := func(x godual.Number) godual.Number {
		return godual.SubOf(godual.MulOf(x, x), godual.C(4))
	}
	res := godual.Newton(f, godual.R(2), 1e-8, 200)

	require.True(t, res.Ok())
	assert.Equal(t, 0, res.NIt)
	assert.Equal(t, 2, res.NFev)
	assert.Equal(t, godual.R(2), res.X)
}

func TestNewton_VectorIterate(t *testing.T) {
	// x^2 - 4 element-wise from different starts; every element must be
	// within atol before the solve converges.
	f := func(x godual.Number) godual.Number {
		return godual.SubOf(godual.MulOf(x, x), godual.C(4))
	}
	res := godual.Newton(f, godual.Vec(1, 5), 1e-8, 200)

	require.True(t, res.Ok())
	v, ok := res.X.(godual.Vector)
	require.True(t, ok)
	require.Len(t, v, 2)
	assert.InDelta(t, 2, v[0], 1e-6)
	assert.InDelta(t, 2, v[1], 1e-6)
}

func TestNewton_ZeroDerivativeIsUnguarded(t *testing.T) {
	// f'(x0) == 0: the step is infinite and propagates; the solver must
	// report failure through the Result rather than panicking.
	f := func(x godual.Number) godual.Number {
		return godual.AddOf(godual.MulOf(x, x), godual.C(1))
	}
	res := godual.Newton(f, godual.R(0), 1e-8, 10)

	assert.False(t, res.Ok())
	assert.Equal(t, 10, res.NIt)
}

func TestResult_Truthiness(t *testing.T) {
	assert.True(t, godual.Result{Success: true}.Ok())
	assert.False(t, godual.Result{Success: false}.Ok())
	assert.False(t, godual.Result{}.Ok(), "zero value is falsy")
}

func TestResult_String_SortedFields(t *testing.T) {
	res := godual.Result{
		Message: "max iterations reached.",
		Success: false,
		NIt:     15,
		NFev:    30,
		X:       godual.R(4.603428431640553),
	}
	want := "message: max iterations reached.\n" +
		"nfev: 30\n" +
		"nit: 15\n" +
		"success: false\n" +
		"x: 4.603428431640553"
	assert.Equal(t, want, res.String())
}
