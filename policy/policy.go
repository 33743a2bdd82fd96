// Package policy defines parametric reservoir operating policies: pure
// mappings from a storage state (and optionally a day of year) to a target
// release. Policies are validated on construction and evaluated without
// reference to any live simulation step.
package policy

import (
	"errors"
	"fmt"
	"math"

	"github.com/maseology/mmaths"
)

// ErrInvalidParameter reports a malformed policy shape or an out-of-range
// storage fraction.
var ErrInvalidParameter = errors.New("policy: invalid parameter")

// ControlPoint pins a release U to a storage fraction S on an operating curve.
type ControlPoint struct {
	S float64 // storage fraction [0,1]
	U float64 // release [volume/timestep]
}

// Piecewise is a 4-point piecewise-linear operating curve. The typical
// configuration holds the two inner releases equal, giving the classic
// low/normal/high hedging shape, but any non-decreasing storage ordering
// is accepted.
type Piecewise [4]ControlPoint

// NewPiecewise validates the control points: storage fractions within [0,1]
// and non-decreasing, releases non-negative.
func NewPiecewise(pts [4]ControlPoint) (Piecewise, error) {
	for i, p := range pts {
		if p.S < 0. || p.S > 1. || math.IsNaN(p.S) {
			return Piecewise{}, fmt.Errorf("%w: control point %d storage fraction %g outside [0,1]", ErrInvalidParameter, i, p.S)
		}
		if p.U < 0. || math.IsNaN(p.U) {
			return Piecewise{}, fmt.Errorf("%w: control point %d release %g negative", ErrInvalidParameter, i, p.U)
		}
		if i > 0 && p.S < pts[i-1].S {
			return Piecewise{}, fmt.Errorf("%w: control points not sorted by storage fraction (%g < %g)", ErrInvalidParameter, p.S, pts[i-1].S)
		}
	}
	return Piecewise(pts), nil
}

// Release evaluates the curve at a storage fraction. Below the first control
// point the release clamps to its level; above the last, likewise.
func (pw Piecewise) Release(sfrac float64) (float64, error) {
	if sfrac < 0. || sfrac > 1. || math.IsNaN(sfrac) {
		return 0., fmt.Errorf("%w: storage fraction %g outside [0,1]", ErrInvalidParameter, sfrac)
	}
	switch {
	case sfrac <= pw[0].S:
		return pw[0].U, nil
	case sfrac >= pw[3].S:
		return pw[3].U, nil
	}
	for i := 0; i < 3; i++ {
		if sfrac <= pw[i+1].S {
			if pw[i+1].S == pw[i].S {
				return pw[i+1].U, nil
			}
			f := (sfrac - pw[i].S) / (pw[i+1].S - pw[i].S)
			return mmaths.LinearTransform(pw[i].U, pw[i+1].U, f), nil
		}
	}
	return pw[3].U, nil
}

// ReleaseAll evaluates the curve over a set of storage fractions.
func (pw Piecewise) ReleaseAll(sfrac []float64) ([]float64, error) {
	u := make([]float64, len(sfrac))
	for i, s := range sfrac {
		v, err := pw.Release(s)
		if err != nil {
			return nil, err
		}
		u[i] = v
	}
	return u, nil
}
