// Package resop simulates regulated reservoir operations: a discrete-time
// water-balance stepping engine that resolves environmental-flow, supply-
// release and spill constraints in a fixed priority order, driven either by
// a prescribed release series or by an operating policy queried with the
// current storage fraction each step. The engine is purely computational;
// every call is self-contained and safe to run concurrently with others.
package resop

import (
	"errors"
	"fmt"
)

// ErrInvalidInput reports malformed simulation arguments; no partial
// trajectory is returned.
var ErrInvalidInput = errors.New("resop: invalid input")

const nearzero = 1e-10

// Reservoir holds the physical limits, constant over a simulation horizon.
type Reservoir struct {
	Smin   float64 // dead storage [volume]
	Smax   float64 // storage capacity [volume]
	EnvMin float64 // minimum environmental compensation flow [volume/timestep]
}

func (r *Reservoir) check(s0 float64) error {
	if r.Smin < 0. {
		return fmt.Errorf("%w: dead storage %g negative", ErrInvalidInput, r.Smin)
	}
	if r.Smin > r.Smax {
		return fmt.Errorf("%w: dead storage %g exceeds capacity %g", ErrInvalidInput, r.Smin, r.Smax)
	}
	if r.EnvMin < 0. {
		return fmt.Errorf("%w: environmental flow %g negative", ErrInvalidInput, r.EnvMin)
	}
	if s0 < r.Smin || s0 > r.Smax {
		return fmt.Errorf("%w: initial storage %g outside [%g,%g]", ErrInvalidInput, s0, r.Smin, r.Smax)
	}
	return nil
}

// StorageFraction rescales a storage volume to [0,1] by active capacity,
// clamped so floating-point drift at the bounds never leaves the policy
// domain. A reservoir with no active capacity is always full.
func (r *Reservoir) StorageFraction(s float64) float64 {
	if r.Smax <= r.Smin {
		return 1.
	}
	f := (s - r.Smin) / (r.Smax - r.Smin)
	if f < 0. {
		return 0.
	}
	if f > 1. {
		return 1.
	}
	return f
}
