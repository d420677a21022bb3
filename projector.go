package nextfinance

// DefaultPadding is the fraction added around the series extremes when plotting.
const DefaultPadding = 0.05

// ProjectedPoint is a sample mapped into a 100x100 viewport.
// YPct grows downward: the highest value has the smallest YPct.
type ProjectedPoint struct {
	XPct float64 `json:"x"`
	YPct float64 `json:"y"`
}

// Bounds returns the padded vertical bounds used to project s.
//
// Padding is multiplicative: min*(1-padding) and max*(1+padding). With
// negative values this shrinks the margin instead of growing it, and
// projected points can leave the [0,100] band.
func Bounds(s Series, padding float64) (minY, maxY float64, ok bool) {
	if s.IsEmpty() {
		return 0, 0, false
	}
	lo, hi := s.samples[0].Value, s.samples[0].Value
	for _, sample := range s.samples[1:] {
		lo = min(lo, sample.Value)
		hi = max(hi, sample.Value)
	}
	return lo * (1 - padding), hi * (1 + padding), true
}

// Project maps s into percentage coordinates. It returns false when s is
// empty, in which case there is nothing to draw and a placeholder should be
// shown instead.
func Project(s Series, padding float64) ([]ProjectedPoint, bool) {
	minY, maxY, ok := Bounds(s, padding)
	if !ok {
		return nil, false
	}
	rangeY := maxY - minY
	n := len(s.samples)

	points := make([]ProjectedPoint, n)
	for i, sample := range s.samples {
		var p ProjectedPoint
		if n > 1 {
			p.XPct = float64(i) / float64(n-1) * 100
		}
		if rangeY == 0 {
			p.YPct = 50
		} else {
			p.YPct = 100 - (sample.Value-minY)/rangeY*100
		}
		points[i] = p
	}
	return points, true
}
