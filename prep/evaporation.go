// Package prep builds forcing series the reservoir simulator consumes but
// does not compute itself.
package prep

import (
	"time"

	"github.com/maseology/goHydro/pet"
	"github.com/maseology/goHydro/solirrad"
)

// MakkinkEvaporation builds a daily open-water evaporation series
// [volume/day] from daily mean air temperature [°C], at a given latitude
// and reservoir surface area [m²]. Global radiation is taken from
// extraterrestrial irradiation through a Prescott-type adjustment
// Kg = Ke*(a+b*n/N) (Novák, 2012); nN is the sunshine-hour ratio, 1 for
// clear sky. Standard Makkink coefficients: alpha=0.61, beta=-0.012.
func MakkinkEvaporation(lat, area float64, t []time.Time, tm []float64, a, b, nN, alpha, beta float64) []float64 {
	si := solirrad.New(lat, 0., 0.)
	ev := make([]float64, len(t))
	for i, dt := range t {
		Kg := si.PSIdaily(dt.YearDay()) * (a + b*nN)
		d := pet.Makkink(Kg, tm[i], 101300., alpha, beta)
		if d < 0. {
			d = 0.
		}
		ev[i] = d * area
	}
	return ev
}
