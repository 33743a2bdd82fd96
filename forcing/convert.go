package forcing

// Cum2Inst transforms an ensemble of cumulative series (e.g. cumulative
// streamflow forecasts, indexed [step][member]) into instantaneous values:
// successive differences floored at zero, first step passed through.
func Cum2Inst(cum [][]float64) [][]float64 {
	inst := make([][]float64, len(cum))
	if len(cum) == 0 {
		return inst
	}
	inst[0] = append([]float64{}, cum[0]...)
	for i := 1; i < len(cum); i++ {
		inst[i] = make([]float64, len(cum[i]))
		for j := range cum[i] {
			if d := cum[i][j] - cum[i-1][j]; d > 0. {
				inst[i][j] = d
			}
		}
	}
	return inst
}
