package godual_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/njchilds90/godual"
)

func TestReal_Arithmetic(t *testing.T) {
	a, b := godual.R(6), godual.R(4)

	assert.Equal(t, godual.R(10), a.Add(b))
	assert.Equal(t, godual.R(2), a.Sub(b))
	assert.Equal(t, godual.R(24), a.Mul(b))
	assert.Equal(t, godual.R(1.5), a.Div(b))
	assert.Equal(t, godual.R(36), a.Pow(godual.R(2)))
	assert.Equal(t, godual.R(-6), a.Neg())
	assert.Equal(t, godual.R(6), a.Neg().Abs())
}

func TestReal_Predicates(t *testing.T) {
	assert.True(t, godual.R(0).IsZero())
	assert.False(t, godual.R(0.5).IsZero())
	assert.True(t, godual.R(0.5).AllLess(1))
	assert.False(t, godual.R(1).AllLess(1), "strictly below")
}

func TestVector_Arithmetic(t *testing.T) {
	v, w := godual.Vec(1, 2, 3), godual.Vec(4, 5, 6)

	assert.Equal(t, godual.Vec(5, 7, 9), v.Add(w))
	assert.Equal(t, godual.Vec(-3, -3, -3), v.Sub(w))
	assert.Equal(t, godual.Vec(4, 10, 18), v.Mul(w))
	assert.Equal(t, godual.Vec(2, 2.5, 3), w.Div(godual.Vec(2, 2, 2)))
	assert.Equal(t, godual.Vec(1, 4, 9), v.Pow(godual.R(2)))
	assert.Equal(t, godual.Vec(-1, -2, -3), v.Neg())
	assert.Equal(t, godual.Vec(1, 2, 3), v.Neg().Abs())
}

func TestVector_Broadcast(t *testing.T) {
	v := godual.Vec(1, 2, 3)
	c := godual.R(10)

	assert.Equal(t, godual.Vec(11, 12, 13), v.Add(c))
	assert.Equal(t, godual.Vec(11, 12, 13), c.Add(v), "commutes")
	assert.Equal(t, godual.Vec(9, 8, 7), c.Sub(v))
	assert.Equal(t, godual.Vec(-9, -8, -7), v.Sub(c))
	assert.Equal(t, godual.Vec(10, 20, 30), c.Mul(v))
	assert.Equal(t, godual.Vec(10, 5, 2.5), godual.R(10).Div(godual.Vec(1, 2, 4)))
	assert.Equal(t, godual.Vec(0.5, 1, 2), godual.Vec(5, 10, 20).Div(godual.R(10)))
	assert.Equal(t, godual.Vec(2, 4, 8), godual.R(2).Pow(v))
}

func TestVector_Predicates(t *testing.T) {
	assert.True(t, godual.Vec(0, 0).IsZero())
	assert.False(t, godual.Vec(0, 1).IsZero())
	assert.True(t, godual.Vec(0.1, 0.2).AllLess(0.3))
	assert.False(t, godual.Vec(0.1, 0.4).AllLess(0.3))
}

func TestVector_OpsDoNotMutate(t *testing.T) {
	v := godual.Vec(1, 2, 3)
	_ = v.Add(godual.R(100))
	_ = v.Mul(godual.Vec(7, 7, 7))
	_ = v.Neg()
	assert.Equal(t, godual.Vec(1, 2, 3), v)
}

func TestVector_LengthMismatchPanics(t *testing.T) {
	assert.Panics(t, func() {
		godual.Vec(1, 2).Add(godual.Vec(1, 2, 3))
	})
}

func TestVec_CopiesInput(t *testing.T) {
	xs := []float64{1, 2}
	v := godual.Vec(xs...)
	xs[0] = 99
	assert.Equal(t, godual.Vec(1, 2), v)
}

func TestFloat64(t *testing.T) {
	f, ok := godual.Float64(godual.R(2.5))
	assert.True(t, ok)
	assert.Equal(t, 2.5, f)

	_, ok = godual.Float64(godual.Vec(1, 2))
	assert.False(t, ok)
}

func TestScalar_String(t *testing.T) {
	assert.Equal(t, "1.5", godual.R(1.5).String())
	assert.Equal(t, "[1 2 3]", godual.Vec(1, 2, 3).String())
}
