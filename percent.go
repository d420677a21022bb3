package nextfinance

import "fmt"

// Percent is a percentage value: 1.24 means 1.24%.
type Percent float64

// String returns the value with exactly two decimals: "1.24%".
func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", float64(p))
}

// SignedString is like String with an explicit sign for non-negative values: "+0.62%", "+0.00%", "-0.85%".
func (p Percent) SignedString() string {
	return fmt.Sprintf("%+.2f%%", float64(p))
}

func (p Percent) Trend() Trend {
	switch {
	case p > 0:
		return Up
	case p < 0:
		return Down
	}
	return Flat
}
