// Package vector_test contains unit tests for the immutable Vector type.
package vector_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/linalg/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-9

// randomVector builds a d-dimensional vector with components in [-10, 10).
func randomVector(tb testing.TB, rng *rand.Rand, d int) vector.Vector {
	tb.Helper()
	c := make([]float64, d)
	for i := range c {
		c[i] = rng.Float64()*20 - 10
	}
	v, err := vector.New(c...)
	require.NoError(tb, err)

	return v
}

func TestNew(t *testing.T) {
	t.Parallel()

	v, err := vector.New(3, 4)
	require.NoError(t, err)
	assert.Equal(t, 2, v.Dimension())
	assert.InDelta(t, 5.0, v.Magnitude(), tol)
	assert.Equal(t, []float64{3, 4}, v.Coordinates())

	v, err = vector.New(1, 2, 2, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, v.Dimension())
	assert.InDelta(t, 5.0, v.Magnitude(), tol)
}

func TestNew_Errors(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name string
		in   []float64
		want error
	}{
		{"none", nil, vector.ErrInvalidDimension},
		{"one", []float64{1}, vector.ErrInvalidDimension},
		{"nan", []float64{1, math.NaN()}, vector.ErrNaNInf},
		{"inf", []float64{math.Inf(-1), 0, 1}, vector.ErrNaNInf},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := vector.New(tc.in...)
			require.ErrorIs(t, err, tc.want)
		})
	}

	require.Panics(t, func() { vector.MustNew(1) })
}

func TestNew_CopiesInput(t *testing.T) {
	t.Parallel()

	in := []float64{1, 2, 3}
	v, err := vector.New(in...)
	require.NoError(t, err)
	in[0] = 100
	assert.Equal(t, []float64{1, 2, 3}, v.Coordinates())
}

func TestCoordinates_DefensiveCopy(t *testing.T) {
	t.Parallel()

	v := vector.MustNew(1, 2, 3)
	c := v.Coordinates()
	c[1] = -7
	assert.Equal(t, []float64{1, 2, 3}, v.Coordinates())
	assert.InDelta(t, math.Sqrt(14), v.Magnitude(), tol)
}

func TestZeroValue(t *testing.T) {
	t.Parallel()

	var v vector.Vector
	assert.Equal(t, 0, v.Dimension())
	assert.Equal(t, 0.0, v.Magnitude())
	assert.Empty(t, v.Coordinates())
	assert.Equal(t, "()", v.String())

	_, err := v.Add(vector.MustNew(1, 2))
	require.ErrorIs(t, err, vector.ErrDimensionMismatch)
}

func TestZero(t *testing.T) {
	t.Parallel()

	z, err := vector.Zero(3)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0}, z.Coordinates())
	assert.Equal(t, 0.0, z.Magnitude())

	_, err = vector.Zero(1)
	require.ErrorIs(t, err, vector.ErrInvalidDimension)
}

func TestCopy(t *testing.T) {
	t.Parallel()

	v := vector.MustNew(1, -2, 3.5)
	c := vector.Copy(v)
	assert.True(t, c.Equal(v))
	assert.Equal(t, v.Magnitude(), c.Magnitude())
	assert.Equal(t, v.Dimension(), c.Dimension())
}

func TestWithMagnitude(t *testing.T) {
	t.Parallel()

	v := vector.MustNew(3, 4)
	w, err := vector.WithMagnitude(v, 10)
	require.NoError(t, err)
	assert.True(t, w.ApproxEqual(vector.MustNew(6, 8), vector.WithEpsilon(tol)))
	assert.InDelta(t, 10.0, w.Magnitude(), tol)

	neg, err := vector.WithMagnitude(v, -5)
	require.NoError(t, err)
	assert.True(t, neg.ApproxEqual(vector.MustNew(-3, -4), vector.WithEpsilon(tol)))

	z, _ := vector.Zero(2)
	_, err = vector.WithMagnitude(z, 1)
	require.ErrorIs(t, err, vector.ErrZeroVector)
}

func TestAt(t *testing.T) {
	t.Parallel()

	v := vector.MustNew(7, 8, 9)
	x, err := v.At(2)
	require.NoError(t, err)
	assert.Equal(t, 9.0, x)

	_, err = v.At(3)
	require.ErrorIs(t, err, vector.ErrOutOfRange)
	_, err = v.At(-1)
	require.ErrorIs(t, err, vector.ErrOutOfRange)
}

func TestString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "(1, -2.5, 0)", vector.MustNew(1, -2.5, 0).String())
}

func TestOptions(t *testing.T) {
	t.Parallel()

	assert.Equal(t, vector.DefaultEpsilon, vector.NewOptions().Epsilon())
	assert.Equal(t, 0.5, vector.NewOptions(vector.WithEpsilon(0.5)).Epsilon())
	assert.Panics(t, func() { vector.WithEpsilon(-1) })
	assert.Panics(t, func() { vector.WithEpsilon(math.NaN()) })
	assert.Panics(t, func() { vector.WithEpsilon(math.Inf(1)) })
}
