package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hedge(t *testing.T) Piecewise {
	t.Helper()
	pw, err := NewPiecewise([4]ControlPoint{{S: 0., U: 4.}, {S: 0.2, U: 15.}, {S: 0.8, U: 15.}, {S: 1., U: 40.}})
	require.NoError(t, err)
	return pw
}

func TestPiecewiseRelease(t *testing.T) {
	pw := hedge(t)

	u, err := pw.Release(0.5)
	require.NoError(t, err)
	assert.InDelta(t, 15., u, 1e-12) // flat band

	u, err = pw.Release(0.1)
	require.NoError(t, err)
	assert.InDelta(t, 9.5, u, 1e-12) // 4 + (15-4)*0.1/0.2

	u, err = pw.Release(0.9)
	require.NoError(t, err)
	assert.InDelta(t, 27.5, u, 1e-12)

	u, err = pw.Release(0.)
	require.NoError(t, err)
	assert.InDelta(t, 4., u, 1e-12)

	u, err = pw.Release(1.)
	require.NoError(t, err)
	assert.InDelta(t, 40., u, 1e-12)
}

func TestPiecewiseEndClamps(t *testing.T) {
	pw, err := NewPiecewise([4]ControlPoint{{S: 0.1, U: 5.}, {S: 0.3, U: 10.}, {S: 0.7, U: 10.}, {S: 0.9, U: 25.}})
	require.NoError(t, err)

	u, err := pw.Release(0.05)
	require.NoError(t, err)
	assert.InDelta(t, 5., u, 1e-12)

	u, err = pw.Release(0.95)
	require.NoError(t, err)
	assert.InDelta(t, 25., u, 1e-12)
}

func TestPiecewiseMonotone(t *testing.T) {
	pw := hedge(t)
	prev := -1.
	for i := 0; i <= 100; i++ {
		u, err := pw.Release(float64(i) / 100.)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, u, prev)
		prev = u
	}
}

func TestPiecewiseZeroWidthSegment(t *testing.T) {
	pw, err := NewPiecewise([4]ControlPoint{{S: 0., U: 2.}, {S: 0.5, U: 10.}, {S: 0.5, U: 10.}, {S: 1., U: 20.}})
	require.NoError(t, err)
	u, err := pw.Release(0.5)
	require.NoError(t, err)
	assert.InDelta(t, 10., u, 1e-12)
}

func TestPiecewiseInvalid(t *testing.T) {
	_, err := NewPiecewise([4]ControlPoint{{S: 0.3, U: 4.}, {S: 0.2, U: 15.}, {S: 0.8, U: 15.}, {S: 1., U: 40.}})
	assert.ErrorIs(t, err, ErrInvalidParameter) // unsorted

	_, err = NewPiecewise([4]ControlPoint{{S: -0.1, U: 4.}, {S: 0.2, U: 15.}, {S: 0.8, U: 15.}, {S: 1., U: 40.}})
	assert.ErrorIs(t, err, ErrInvalidParameter) // fraction out of range

	_, err = NewPiecewise([4]ControlPoint{{S: 0., U: -4.}, {S: 0.2, U: 15.}, {S: 0.8, U: 15.}, {S: 1., U: 40.}})
	assert.ErrorIs(t, err, ErrInvalidParameter) // negative release

	pw := hedge(t)
	_, err = pw.Release(-0.01)
	assert.ErrorIs(t, err, ErrInvalidParameter)
	_, err = pw.Release(1.01)
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

func TestPiecewiseReleaseAll(t *testing.T) {
	pw := hedge(t)
	u, err := pw.ReleaseAll([]float64{0., 0.1, 0.5, 1.})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{4., 9.5, 15., 40.}, u, 1e-12)

	_, err = pw.ReleaseAll([]float64{0.5, 2.})
	assert.ErrorIs(t, err, ErrInvalidParameter)
}
