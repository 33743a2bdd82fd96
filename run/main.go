package main

import (
	"fmt"
	"log"
	"runtime"

	"github.com/maseology/mmio"
	"github.com/maseology/resop"
	"github.com/maseology/resop/forcing"
	"github.com/maseology/resop/objective"
	"github.com/maseology/resop/opt"
)

func main() {

	const (
		frcfp  = "dat/forcing.csv"
		smin   = 0.   // dead storage [Mm³]
		smax   = 150. // capacity [Mm³]
		envMin = 2.   // compensation flow [Mm³/wk]
		s0     = 80.  // initial storage [Mm³]
		scrit  = 30.  // critical storage [Mm³]
		umax   = 40.  // release cap on sampled curves [Mm³/wk]
		wcsv   = 100. // critical-storage weight in the scalarized objective
		nsmpl  = 2000
	)

	fmt.Println("")
	tt := mmio.NewTimer()
	defer tt.Lap(fmt.Sprintf("\nrun complete. n processes: %v", runtime.GOMAXPROCS(0)))

	frc, err := forcing.FromCsv(frcfp)
	if err != nil {
		log.Fatalf(" forcing load failed: %v", err)
	}
	tt.Print("forcing load complete\n")

	res := &resop.Reservoir{Smin: smin, Smax: smax, EnvMin: envMin}

	// baseline: follow demand directly
	tr, err := res.Simulate(frc.Inflow, frc.Evap, resop.FixedRelease(frc.Demand), s0)
	if err != nil {
		log.Fatalf(" baseline simulation failed: %v", err)
	}
	sc := objective.Score(frc.Demand, tr.Rel)
	fmt.Printf(" baseline: TSD %.1f  CSV %.1f  reliability %.3f  bias %.3f\n",
		objective.TSD(frc.Demand, tr.Rel), objective.CSV(tr.Sto, scrit),
		objective.Reliability(frc.Demand, tr.Rel), sc.Bias)

	// optimize the hedging curve
	pw, of, err := opt.OptimizePiecewise(res, frc, s0, scrit, umax, wcsv)
	if err != nil {
		log.Fatalf(" optimization failed: %v", err)
	}
	fmt.Printf("\nfinal operating curve (objective %.1f):\n", of)
	for _, p := range pw {
		fmt.Printf("\tsfrac %.3f\trelease %.3f\n", p.S, p.U)
	}

	tr, err = res.Simulate(frc.Inflow, frc.Evap, resop.PolicyRelease{P: pw}, s0)
	if err != nil {
		log.Fatalf(" optimized simulation failed: %v", err)
	}
	fmt.Printf(" optimized: TSD %.1f  CSV %.1f  reliability %.3f\n",
		objective.TSD(frc.Demand, tr.Rel), objective.CSV(tr.Sto, scrit),
		objective.Reliability(frc.Demand, tr.Rel))
	mmio.WriteCsvDateFloats("hdgrph.csv", "date,demand,release,storage", frc.T, frc.Demand, tr.Rel, tr.Sto[1:])
	tt.Lap("optimization complete")

	// sample the deficit/drawdown trade-off
	us, tsd, csv, err := opt.SampleHedge(res, frc, s0, scrit, umax, nsmpl)
	if err != nil {
		log.Fatalf(" sampling failed: %v", err)
	}
	front := opt.ParetoFront(tsd, csv)
	lns := make([]string, 0, len(front)+1)
	lns = append(lns, "tsd,csv,u0,u1,u2,u3,u4")
	for _, i := range front {
		lns = append(lns, fmt.Sprintf("%f,%f,%f,%f,%f,%f,%f", tsd[i], csv[i], us[i][0], us[i][1], us[i][2], us[i][3], us[i][4]))
	}
	mmio.WriteLines("pareto.csv", lns)
	fmt.Printf(" %s samples, %d non-dominated\n", mmio.Thousands(int64(nsmpl)), len(front))
}
