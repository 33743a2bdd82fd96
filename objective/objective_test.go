package objective

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTSD(t *testing.T) {
	assert.InDelta(t, 4., TSD([]float64{5., 5.}, []float64{3., 6.}), 1e-12)
	assert.InDelta(t, 0., TSD([]float64{5.}, []float64{5.}), 1e-12)
}

func TestCSV(t *testing.T) {
	assert.InDelta(t, 5., CSV([]float64{30., 20., 40.}, 25.), 1e-12)
	assert.InDelta(t, 0., CSV([]float64{30., 40.}, 25.), 1e-12)
}

func TestReliability(t *testing.T) {
	assert.InDelta(t, 0.5, Reliability([]float64{5., 5.}, []float64{3., 6.}), 1e-12)
	assert.InDelta(t, 1., Reliability([]float64{5.}, []float64{5.}), 1e-12)
	assert.InDelta(t, 0., Reliability(nil, nil), 1e-12)
}

func TestMaxDeficit(t *testing.T) {
	assert.InDelta(t, 2., MaxDeficit([]float64{5., 5., 5.}, []float64{3., 6., 4.}), 1e-12)
	assert.InDelta(t, 0., MaxDeficit([]float64{5.}, []float64{6.}), 1e-12)
}

func TestScore(t *testing.T) {
	s := Score([]float64{5., 6., 7., 8.}, []float64{5., 6., 7., 8.})
	assert.InDelta(t, 0., s.RMSE, 1e-9)
	assert.InDelta(t, 1., s.NSE, 1e-9)
}
