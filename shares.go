package nextfinance

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Shares is a, possibly fractional, number of shares.
type Shares struct {
	value decimal.Decimal
}

func S[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) Shares {
	return Shares{value: newDecimal(value)}
}

// ParseShares parses a share amount typed by the user.
// Empty or non numeric input is rejected.
func ParseShares(text string) (Shares, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Shares{}, fmt.Errorf("empty amount: %w", ErrInvalidTradeAmount)
	}
	d, err := decimal.NewFromString(text)
	if err != nil {
		return Shares{}, fmt.Errorf("amount %q is not a number: %w", text, ErrInvalidTradeAmount)
	}
	return Shares{value: d}, nil
}

func (s Shares) String() string { return s.value.String() }

func (s Shares) MarshalJSON() ([]byte, error) {
	return s.value.MarshalJSON()
}

func (s *Shares) UnmarshalJSON(decimalBytes []byte) error {
	return s.value.UnmarshalJSON(decimalBytes)
}
