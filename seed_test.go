package nextfinance

import (
	"strings"
	"testing"
)

func TestDefaultSeed(t *testing.T) {
	s := DefaultSeed()
	if got := s.Portfolio().Value.Currency(); got != "USD" {
		t.Errorf("portfolio currency = %q, want USD", got)
	}
	if got := s.Portfolio().Value.String(); got != "$12,534.56" {
		t.Errorf("portfolio value = %s, want $12,534.56", got)
	}

	stocks := s.Stocks()
	if len(stocks) != 7 {
		t.Fatalf("got %d stocks, want 7", len(stocks))
	}
	tsla := stocks[0]
	if tsla.ID != "TSLA" || tsla.Name != "Tesla, Inc." || tsla.Price.String() != "$923.45" || tsla.Held != 5 || tsla.MarketCap != "870B" {
		t.Errorf("unexpected first stock: %+v", tsla)
	}
	if got := stocks[1].Change.String(); got != "-$1.50" {
		t.Errorf("AAPL change = %s, want -$1.50", got)
	}
	if len(s.News()) != 4 {
		t.Errorf("got %d news, want 4", len(s.News()))
	}
}

func TestStock_HeldLabel(t *testing.T) {
	stocks := DefaultSeed().Stocks()
	if got := stocks[0].HeldLabel(); got != "5 Shares" {
		t.Errorf("HeldLabel() = %q, want 5 Shares", got)
	}
	if got := stocks[2].HeldLabel(); got != "Trade" {
		t.Errorf("HeldLabel() = %q, want Trade", got)
	}
}

func TestDecodeSeed(t *testing.T) {
	testCases := []struct {
		name    string
		doc     string
		wantErr string
	}{
		{"empty", "", ""},
		{"default currency", "stocks:\n  - {id: X, price: 1}\n", ""},
		{"unknown currency", "currency: XXXX\n", "unknown currency"},
		{"missing id", "stocks:\n  - {name: nameless}\n", "has no id"},
		{"duplicate id", "stocks:\n  - {id: A}\n  - {id: A}\n", "duplicate stock"},
		{"invalid yaml", "stocks: [", "parse seed"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := DecodeSeed(strings.NewReader(tc.doc))
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("DecodeSeed() error: %v", err)
				}
				if got := s.Portfolio().Value.Currency(); got != "USD" {
					t.Errorf("portfolio currency = %q, want USD", got)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("DecodeSeed() error = %v, want %q", err, tc.wantErr)
			}
		})
	}
}

func TestLoadSeed_Missing(t *testing.T) {
	if _, err := LoadSeed("does/not/exist.yaml"); err == nil {
		t.Error("LoadSeed() of a missing file succeeded")
	}
	s, err := LoadSeed("")
	if err != nil || s != DefaultSeed() {
		t.Errorf("LoadSeed(\"\") = %v, %v, want the default seed", s, err)
	}
}
