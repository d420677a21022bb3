package nextfinance

// Trend classifies the direction of a change.
type Trend int

const (
	Flat Trend = iota
	Up
	Down
)

// Chart colours.
const (
	UpColor   = "#34D399"
	DownColor = "#F87171"
)

// TrendOf maps the sign of a value to a Trend.
func TrendOf(sign int) Trend {
	switch {
	case sign > 0:
		return Up
	case sign < 0:
		return Down
	}
	return Flat
}

// Color returns the chart colour. A flat change is drawn like a rising one.
func (t Trend) Color() string {
	if t == Down {
		return DownColor
	}
	return UpColor
}

// Arrow is the glyph shown next to a change.
func (t Trend) Arrow() string {
	if t == Down {
		return "▼"
	}
	return "▲"
}

func (t Trend) String() string {
	switch t {
	case Up:
		return "up"
	case Down:
		return "down"
	}
	return "flat"
}
