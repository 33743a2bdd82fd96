// Package opt searches reservoir operating-policy parameter spaces:
// unit-hypercube transforms, SCE optimization and Latin-hypercube sampling
// over the simulator treated as a black-box objective evaluator.
package opt

import (
	"github.com/maseology/mmaths"
	"github.com/maseology/resop/policy"
)

// NDimHedge is the dimension of the hedging-curve sample space.
const NDimHedge = 5

// ParHedge transforms a unit-hypercube sample to a valid 4-point hedging
// curve: a flat normal-operation band between two free band edges, a
// reduced low-storage release and an increased flood-control release, all
// bounded by umax.
func ParHedge(u []float64, umax float64) policy.Piecewise {
	s1 := mmaths.LinearTransform(0., 1., u[0])
	s2 := mmaths.LinearTransform(s1, 1., u[1]) // band edges keep their order
	uband := mmaths.LinearTransform(0., umax, u[2])
	ulow := mmaths.LinearTransform(0., uband, u[3])
	uhigh := mmaths.LinearTransform(uband, umax, u[4])
	pw, _ := policy.NewPiecewise([4]policy.ControlPoint{{S: 0., U: ulow}, {S: s1, U: uband}, {S: s2, U: uband}, {S: 1., U: uhigh}})
	return pw
}
