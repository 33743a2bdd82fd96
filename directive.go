package resop

import "github.com/maseology/resop/policy"

// Evaluator maps a storage fraction to a requested release
// (policy.Piecewise and *policy.LogExponential both satisfy it).
type Evaluator interface {
	Release(sfrac float64) (float64, error)
}

// ReleaseDirective supplies the requested regulated release at each step of
// a simulation. The simulator clamps the request to the water physically
// available; it never fails on an infeasible request.
type ReleaseDirective interface {
	Release(step int, sfrac float64) (float64, error)
}

// FixedRelease follows a prescribed target-release series, one value per
// step (demand-following mode).
type FixedRelease []float64

func (f FixedRelease) Release(step int, _ float64) (float64, error) { return f[step], nil }

// PolicyRelease queries a storage-indexed operating policy each step with
// the current storage fraction.
type PolicyRelease struct {
	P Evaluator
}

func (pr PolicyRelease) Release(_ int, sfrac float64) (float64, error) { return pr.P.Release(sfrac) }

// SeasonalRelease pairs a date-varying operating policy with the day of
// year of each simulation step.
type SeasonalRelease struct {
	P   *policy.Seasonal
	DOY []int // day of year per step
}

func (sr SeasonalRelease) Release(step int, sfrac float64) (float64, error) {
	return sr.P.Release(sr.DOY[step], sfrac)
}
