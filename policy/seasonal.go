package policy

import (
	"fmt"

	"github.com/maseology/mmaths"
)

// Anchor fixes an operating curve to a day of year.
type Anchor struct {
	DOY    int // day of year [1,366]
	Points [4]ControlPoint
}

// Seasonal varies a piecewise-linear operating curve smoothly through the
// year: control-point coordinates are interpolated between anchor days,
// cyclically across the calendar boundary, so the synthesized curve has no
// discontinuity at any anchor.
type Seasonal struct {
	anchors []Anchor
}

// NewSeasonal validates the anchors: at least two, strictly increasing days
// of year within [1,366], each carrying a valid 4-point curve.
func NewSeasonal(anchors []Anchor) (*Seasonal, error) {
	if len(anchors) < 2 {
		return nil, fmt.Errorf("%w: seasonal policy needs at least 2 anchors, got %d", ErrInvalidParameter, len(anchors))
	}
	for i, a := range anchors {
		if a.DOY < 1 || a.DOY > 366 {
			return nil, fmt.Errorf("%w: anchor %d day of year %d outside [1,366]", ErrInvalidParameter, i, a.DOY)
		}
		if i > 0 && a.DOY <= anchors[i-1].DOY {
			return nil, fmt.Errorf("%w: anchor days of year not increasing (%d <= %d)", ErrInvalidParameter, a.DOY, anchors[i-1].DOY)
		}
		if _, err := NewPiecewise(a.Points); err != nil {
			return nil, fmt.Errorf("anchor %d: %w", i, err)
		}
	}
	s := &Seasonal{anchors: make([]Anchor, len(anchors))}
	copy(s.anchors, anchors)
	return s, nil
}

// CurveAt synthesizes the operating curve for a given day of year. Between
// bracketing anchors every control-point coordinate is blended linearly;
// outside the anchor span the last and first anchors wrap (period 366).
// Coordinate-wise blending of two valid curves preserves ordering and range,
// so the result is always a valid curve.
func (sp *Seasonal) CurveAt(doy int) (Piecewise, error) {
	if doy < 1 || doy > 366 {
		return Piecewise{}, fmt.Errorf("%w: day of year %d outside [1,366]", ErrInvalidParameter, doy)
	}
	n := len(sp.anchors)
	lo, hi := sp.anchors[n-1], sp.anchors[0]
	span, off := float64(hi.DOY+366-lo.DOY), 0.
	if doy < hi.DOY { // before first anchor
		off = float64(doy + 366 - lo.DOY)
	} else if doy >= sp.anchors[n-1].DOY { // at/after last anchor
		off = float64(doy - lo.DOY)
	} else {
		for i := 1; i < n; i++ {
			if doy < sp.anchors[i].DOY {
				lo, hi = sp.anchors[i-1], sp.anchors[i]
				span, off = float64(hi.DOY-lo.DOY), float64(doy-lo.DOY)
				break
			}
		}
	}
	f := off / span
	var pw Piecewise
	for i := 0; i < 4; i++ {
		pw[i].S = mmaths.LinearTransform(lo.Points[i].S, hi.Points[i].S, f)
		pw[i].U = mmaths.LinearTransform(lo.Points[i].U, hi.Points[i].U, f)
	}
	return pw, nil
}

// Release evaluates the date-specific curve at a storage fraction.
func (sp *Seasonal) Release(doy int, sfrac float64) (float64, error) {
	pw, err := sp.CurveAt(doy)
	if err != nil {
		return 0., err
	}
	return pw.Release(sfrac)
}
