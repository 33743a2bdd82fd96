// Package objective reduces simulated trajectories to the scalar values an
// optimization driver trades off: supply-deficit severity against storage
// drawdown risk.
package objective

import "github.com/maseology/objfunc"

// TSD is the total squared deficit Σ max(0, d-q)²; squaring penalizes a few
// large shortfalls more than many small ones, which is what hedging
// policies exploit.
func TSD(demand, rel []float64) float64 {
	s := 0.
	for i := range demand {
		if d := demand[i] - rel[i]; d > 0. {
			s += d * d
		}
	}
	return s
}

// CSV is the critical-storage violation Σ max(0, scrit-S) over the storage
// trajectory.
func CSV(sto []float64, scrit float64) float64 {
	s := 0.
	for _, v := range sto {
		if d := scrit - v; d > 0. {
			s += d
		}
	}
	return s
}

// Reliability is the fraction of steps on which demand was fully met.
func Reliability(demand, rel []float64) float64 {
	if len(demand) == 0 {
		return 0.
	}
	n := 0
	for i := range demand {
		if rel[i] >= demand[i] {
			n++
		}
	}
	return float64(n) / float64(len(demand))
}

// MaxDeficit is the largest single-step shortfall.
func MaxDeficit(demand, rel []float64) float64 {
	x := 0.
	for i := range demand {
		if d := demand[i] - rel[i]; d > x {
			x = d
		}
	}
	return x
}

// Summary scores regulated release against target demand.
type Summary struct {
	RMSE, NSE, Bias float64
}

func Score(demand, rel []float64) Summary {
	return Summary{
		RMSE: objfunc.RMSE(demand, rel),
		NSE:  objfunc.NSE(demand, rel),
		Bias: objfunc.Bias(demand, rel),
	}
}
