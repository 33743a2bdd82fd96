package policy

import (
	"fmt"
	"math"
)

// LogExponential is a two-branch operating curve: logarithmic drawdown below
// a reference storage fraction, exponential ramp at and above it. Both
// branches evaluate to Uref at SfracRef, so the curve is continuous by
// construction.
type LogExponential struct {
	UfracMin float64 // minimum release fraction (0,1)
	SfracRef float64 // reference storage fraction (0,1)
	Alpha    float64 // logarithmic shape, > 0
	B        float64 // exponential shape
	Uref     float64 // reference release, > 0

	k float64 // log-branch scale, set so the branch meets Uref at SfracRef
}

// NewLogExponential validates the shape parameters and caches the log-branch
// scale k = (e^(1-UfracMin)-1)/SfracRef^Alpha.
func NewLogExponential(ufracMin, sfracRef, alpha, b, uref float64) (*LogExponential, error) {
	if ufracMin <= 0. || ufracMin >= 1. || math.IsNaN(ufracMin) {
		return nil, fmt.Errorf("%w: minimum release fraction %g outside (0,1)", ErrInvalidParameter, ufracMin)
	}
	if sfracRef <= 0. || sfracRef >= 1. || math.IsNaN(sfracRef) {
		return nil, fmt.Errorf("%w: reference storage fraction %g outside (0,1)", ErrInvalidParameter, sfracRef)
	}
	if alpha <= 0. || math.IsNaN(alpha) {
		return nil, fmt.Errorf("%w: logarithmic shape %g not positive", ErrInvalidParameter, alpha)
	}
	if uref <= 0. || math.IsNaN(uref) {
		return nil, fmt.Errorf("%w: reference release %g not positive", ErrInvalidParameter, uref)
	}
	return &LogExponential{
		UfracMin: ufracMin,
		SfracRef: sfracRef,
		Alpha:    alpha,
		B:        b,
		Uref:     uref,
		k:        (math.Exp(1.-ufracMin) - 1.) / math.Pow(sfracRef, alpha),
	}, nil
}

// Release evaluates the curve at a storage fraction.
func (le *LogExponential) Release(sfrac float64) (float64, error) {
	if sfrac < 0. || sfrac > 1. || math.IsNaN(sfrac) {
		return 0., fmt.Errorf("%w: storage fraction %g outside [0,1]", ErrInvalidParameter, sfrac)
	}
	if sfrac < le.SfracRef {
		return le.Uref * (le.UfracMin + math.Log(le.k*math.Pow(sfrac, le.Alpha)+1.)), nil
	}
	d := sfrac - le.SfracRef
	return le.Uref * math.Exp(le.B*d*d), nil
}
