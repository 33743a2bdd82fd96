package opt

import (
	"fmt"
	"math"
	"math/rand"
	"runtime"
	"time"

	"github.com/maseology/glbopt"
	mrg63k3a "github.com/maseology/pnrg/MRG63k3a"
	"github.com/maseology/resop"
	"github.com/maseology/resop/forcing"
	"github.com/maseology/resop/objective"
	"github.com/maseology/resop/policy"
)

// OptimizePiecewise searches the hedging-curve space with SCE, minimizing
// the weighted sum of total squared deficit and critical-storage violation
// (weight wcsv). umax bounds every release on the curve; scrit is the
// critical storage. Returns the best curve and its objective value.
func OptimizePiecewise(res *resop.Reservoir, frc *forcing.Forcing, s0, scrit, umax, wcsv float64) (policy.Piecewise, float64, error) {
	if err := frc.Check(); err != nil {
		return policy.Piecewise{}, 0., err
	}
	eval := func(u []float64) float64 {
		pw := ParHedge(u, umax)
		tr, err := res.Simulate(frc.Inflow, frc.Evap, resop.PolicyRelease{P: pw}, s0)
		if err != nil {
			return math.MaxFloat64
		}
		return objective.TSD(frc.Demand, tr.Rel) + wcsv*objective.CSV(tr.Sto, scrit)
	}

	rng := rand.New(mrg63k3a.New())
	rng.Seed(time.Now().UnixNano())
	uFinal, _ := glbopt.SCE(runtime.GOMAXPROCS(0), NDimHedge, rng, eval, true)

	of := eval(uFinal)
	if of == math.MaxFloat64 {
		return policy.Piecewise{}, 0., fmt.Errorf("opt.OptimizePiecewise: no feasible curve found")
	}
	return ParHedge(uFinal, umax), of, nil
}
