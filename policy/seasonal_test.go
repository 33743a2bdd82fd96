package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seasonalPts(band, s1, s2 float64) [4]ControlPoint {
	return [4]ControlPoint{{S: 0., U: 4.}, {S: s1, U: band}, {S: s2, U: band}, {S: 1., U: 40.}}
}

func TestSeasonalAtAnchors(t *testing.T) {
	sp, err := NewSeasonal([]Anchor{
		{DOY: 1, Points: seasonalPts(10., 0.2, 0.8)},
		{DOY: 121, Points: seasonalPts(20., 0.3, 0.7)},
		{DOY: 244, Points: seasonalPts(30., 0.2, 0.8)},
	})
	require.NoError(t, err)

	pw, err := sp.CurveAt(121)
	require.NoError(t, err)
	assert.InDelta(t, 20., pw[1].U, 1e-12)
	assert.InDelta(t, 0.3, pw[1].S, 1e-12)

	u, err := sp.Release(1, 0.5)
	require.NoError(t, err)
	assert.InDelta(t, 10., u, 1e-12)
}

func TestSeasonalInterpolates(t *testing.T) {
	sp, err := NewSeasonal([]Anchor{
		{DOY: 1, Points: seasonalPts(10., 0.2, 0.8)},
		{DOY: 201, Points: seasonalPts(30., 0.4, 0.6)},
	})
	require.NoError(t, err)

	// halfway between anchors, every coordinate blends
	pw, err := sp.CurveAt(101)
	require.NoError(t, err)
	assert.InDelta(t, 20., pw[1].U, 1e-9)
	assert.InDelta(t, 0.3, pw[1].S, 1e-9)
	assert.InDelta(t, 0.7, pw[2].S, 1e-9)

	u, err := sp.Release(101, 0.5)
	require.NoError(t, err)
	assert.InDelta(t, 20., u, 1e-9) // inside the blended band
}

func TestSeasonalWrapsCalendar(t *testing.T) {
	sp, err := NewSeasonal([]Anchor{
		{DOY: 100, Points: seasonalPts(10., 0.2, 0.8)},
		{DOY: 200, Points: seasonalPts(30., 0.2, 0.8)},
	})
	require.NoError(t, err)

	// period-366 wrap: doy 200 -> 100(+366) spans 266 days
	pw, err := sp.CurveAt(333)
	require.NoError(t, err)
	f := float64(333-200) / 266.
	assert.InDelta(t, 30.+(10.-30.)*f, pw[1].U, 1e-9)

	pw, err = sp.CurveAt(50)
	require.NoError(t, err)
	f = float64(50+366-200) / 266.
	assert.InDelta(t, 30.+(10.-30.)*f, pw[1].U, 1e-9)

	// continuity approaching an anchor from both sides
	lo, _ := sp.CurveAt(99)
	at, _ := sp.CurveAt(100)
	hi, _ := sp.CurveAt(101)
	assert.InDelta(t, at[1].U, lo[1].U, 0.1)
	assert.InDelta(t, at[1].U, hi[1].U, 0.3)
}

func TestSeasonalInvalid(t *testing.T) {
	_, err := NewSeasonal([]Anchor{{DOY: 1, Points: seasonalPts(10., 0.2, 0.8)}})
	assert.ErrorIs(t, err, ErrInvalidParameter) // too few anchors

	_, err = NewSeasonal([]Anchor{
		{DOY: 100, Points: seasonalPts(10., 0.2, 0.8)},
		{DOY: 100, Points: seasonalPts(20., 0.2, 0.8)},
	})
	assert.ErrorIs(t, err, ErrInvalidParameter) // non-increasing days

	_, err = NewSeasonal([]Anchor{
		{DOY: 0, Points: seasonalPts(10., 0.2, 0.8)},
		{DOY: 100, Points: seasonalPts(20., 0.2, 0.8)},
	})
	assert.ErrorIs(t, err, ErrInvalidParameter) // day out of range

	_, err = NewSeasonal([]Anchor{
		{DOY: 1, Points: seasonalPts(10., 0.8, 0.2)}, // unsorted inner points
		{DOY: 100, Points: seasonalPts(20., 0.2, 0.8)},
	})
	assert.ErrorIs(t, err, ErrInvalidParameter)

	sp, err := NewSeasonal([]Anchor{
		{DOY: 1, Points: seasonalPts(10., 0.2, 0.8)},
		{DOY: 100, Points: seasonalPts(20., 0.2, 0.8)},
	})
	require.NoError(t, err)
	_, err = sp.CurveAt(400)
	assert.ErrorIs(t, err, ErrInvalidParameter)
}
