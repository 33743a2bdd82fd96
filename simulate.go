package resop

import "fmt"

// Simulate advances the water balance over the full horizon, one step per
// inflow/evaporation entry, resolving constraints in priority order:
// environmental compensation first (capped by inflow, then by the total
// water resource), then the requested supply release (capped by what
// remains), then spill of any excess above capacity. Infeasible requests
// are clamped, never failed — deficits are an expected outcome for the
// caller's objective functions to measure.
func (r *Reservoir) Simulate(inflow, evap []float64, dir ReleaseDirective, s0 float64) (*Trajectory, error) {
	n := len(inflow)
	if n == 0 {
		return nil, fmt.Errorf("%w: empty horizon", ErrInvalidInput)
	}
	if len(evap) != n {
		return nil, fmt.Errorf("%w: evaporation series length %d != inflow length %d", ErrInvalidInput, len(evap), n)
	}
	if err := r.check(s0); err != nil {
		return nil, err
	}
	switch d := dir.(type) {
	case nil:
		return nil, fmt.Errorf("%w: nil release directive", ErrInvalidInput)
	case FixedRelease:
		if len(d) != n {
			return nil, fmt.Errorf("%w: fixed release series length %d != inflow length %d", ErrInvalidInput, len(d), n)
		}
	case SeasonalRelease:
		if len(d.DOY) != n {
			return nil, fmt.Errorf("%w: day-of-year series length %d != inflow length %d", ErrInvalidInput, len(d.DOY), n)
		}
	}

	tr := &Trajectory{
		Sto:   make([]float64, n+1),
		Env:   make([]float64, n),
		Spill: make([]float64, n),
		Rel:   make([]float64, n),
	}
	tr.Sto[0] = s0

	for t := 0; t < n; t++ {
		s, q, e := tr.Sto[t], inflow[t], evap[t]

		// environmental compensation: capped at inflow when the mandate
		// meets or exceeds it, then at the total water resource. The
		// two-stage cascade is deliberate; the stages are not equivalent
		// at boundary values.
		env := r.EnvMin
		if r.EnvMin >= q {
			env = q
		}
		if r.EnvMin > s+q-e {
			env = s + q - e
			if env < 0. {
				env = 0.
			}
		}

		ureq, err := dir.Release(t, r.StorageFraction(s))
		if err != nil {
			return nil, err
		}

		// supply release: the request, no more than what remains after
		// the environmental draw
		u := ureq
		if avail := s + q - e - env; u > avail {
			u = avail
			if u < 0. {
				u = 0.
			}
		}
		if u < 0. {
			u = 0.
		}

		// uncontrolled spill of any excess above capacity
		spill := s + q - u - env - e - r.Smax
		if spill < 0. {
			spill = 0.
		}

		tr.Env[t], tr.Rel[t], tr.Spill[t] = env, u, spill
		tr.Sto[t+1] = s + q - u - env - e - spill
	}
	return tr, nil
}
