// Package forcing carries the time series driving a reservoir simulation:
// inflow, open-water evaporation and demand, all expressed as volumes per
// time step. The simulator is resolution-agnostic; dates matter only to
// date-varying operating policies, which take the day-of-year index built
// here.
package forcing

import (
	"fmt"
	"time"
)

type Forcing struct {
	T      []time.Time // [date ID]
	Inflow []float64   // reservoir inflow [volume/timestep]
	Evap   []float64   // open-water evaporation [volume/timestep]
	Demand []float64   // target release [volume/timestep]
}

// Check verifies the series are non-empty and of equal length.
func (frc *Forcing) Check() error {
	n := len(frc.T)
	if n == 0 {
		return fmt.Errorf("forcing.Check: no dates")
	}
	if len(frc.Inflow) != n || len(frc.Evap) != n || len(frc.Demand) != n {
		return fmt.Errorf("forcing.Check: series length mismatch: %d dates, %d inflow, %d evap, %d demand",
			n, len(frc.Inflow), len(frc.Evap), len(frc.Demand))
	}
	return nil
}

// DOY returns the day-of-year index of every step, for date-varying
// operating policies.
func (frc *Forcing) DOY() []int {
	doy := make([]int, len(frc.T))
	for i, t := range frc.T {
		doy[i] = t.YearDay()
	}
	return doy
}
