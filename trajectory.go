package resop

import "math"

// Trajectory bundles the simulated series. Sto holds states at interval
// boundaries and so carries one more entry than the flux series.
type Trajectory struct {
	Sto   []float64 // storage [volume], length n+1
	Env   []float64 // environmental compensation released [volume/timestep]
	Spill []float64 // uncontrolled spill [volume/timestep]
	Rel   []float64 // regulated (supply) release [volume/timestep]
}

// Steps returns the simulated horizon length.
func (tr *Trajectory) Steps() int { return len(tr.Rel) }

// MassBalance returns the largest absolute per-step closure residual
// S[t] + I[t] - Rel[t] - Env[t] - E[t] - Spill[t] - S[t+1] against the
// forcing that produced the trajectory.
func (tr *Trajectory) MassBalance(inflow, evap []float64) float64 {
	wbal := 0.
	for t := range tr.Rel {
		res := tr.Sto[t] + inflow[t] - tr.Rel[t] - tr.Env[t] - evap[t] - tr.Spill[t] - tr.Sto[t+1]
		if math.Abs(res) > wbal {
			wbal = math.Abs(res)
		}
	}
	return wbal
}

// Closes reports whether every step's water balance closes to within
// floating tolerance.
func (tr *Trajectory) Closes(inflow, evap []float64) bool {
	return tr.MassBalance(inflow, evap) < nearzero
}
