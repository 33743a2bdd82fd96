package opt

import (
	"math/rand"
	"time"

	"github.com/gosuri/uiprogress"
	"github.com/maseology/montecarlo/smpln"
	mrg63k3a "github.com/maseology/pnrg/MRG63k3a"
	"github.com/maseology/resop"
	"github.com/maseology/resop/forcing"
	"github.com/maseology/resop/objective"
)

// SampleHedge sweeps the hedging-curve space with a Latin-hypercube plan,
// returning every sampled parameter vector with its (TSD, CSV) objective
// pair, for trade-off analysis.
func SampleHedge(res *resop.Reservoir, frc *forcing.Forcing, s0, scrit, umax float64, nsmpl int) (u [][]float64, tsd, csv []float64, err error) {
	if err = frc.Check(); err != nil {
		return
	}

	rng := rand.New(mrg63k3a.New())
	rng.Seed(time.Now().UnixNano())
	sp := smpln.NewLHC(rng, nsmpl, NDimHedge, false)

	u = make([][]float64, nsmpl)
	tsd, csv = make([]float64, nsmpl), make([]float64, nsmpl)

	uiprogress.Start()
	bar := uiprogress.AddBar(nsmpl).AppendCompleted().PrependElapsed()
	defer uiprogress.Stop()
	for k := 0; k < nsmpl; k++ {
		ut := make([]float64, NDimHedge)
		for j := 0; j < NDimHedge; j++ {
			ut[j] = sp.U[j][k]
		}
		pw := ParHedge(ut, umax)
		tr, serr := res.Simulate(frc.Inflow, frc.Evap, resop.PolicyRelease{P: pw}, s0)
		if serr != nil {
			err = serr
			return
		}
		u[k] = ut
		tsd[k] = objective.TSD(frc.Demand, tr.Rel)
		csv[k] = objective.CSV(tr.Sto, scrit)
		bar.Incr()
	}
	return
}

// ParetoFront returns the indices of the non-dominated (f1, f2) pairs,
// minimizing both, sorted as encountered.
func ParetoFront(f1, f2 []float64) []int {
	var front []int
	for i := range f1 {
		dominated := false
		for j := range f1 {
			if j == i {
				continue
			}
			if f1[j] <= f1[i] && f2[j] <= f2[i] && (f1[j] < f1[i] || f2[j] < f2[i]) {
				dominated = true
				break
			}
		}
		if !dominated {
			front = append(front, i)
		}
	}
	return front
}
