package nextfinance

import (
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func aapl(t *testing.T) Stock {
	t.Helper()
	s, err := NewSession(DefaultSeed()).Stock("AAPL")
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestParseSide(t *testing.T) {
	testCases := []struct {
		in      string
		want    Side
		wantErr bool
	}{
		{"buy", Buy, false},
		{"Sell", Sell, false},
		{" BUY ", Buy, false},
		{"hold", "", true},
		{"", "", true},
	}
	for _, tc := range testCases {
		got, err := ParseSide(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseSide(%q) error = %v, want error: %v", tc.in, err, tc.wantErr)
		}
		if err != nil && !errors.Is(err, ErrInvalidSide) {
			t.Errorf("ParseSide(%q) error %v is not ErrInvalidSide", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("ParseSide(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestParseShares(t *testing.T) {
	testCases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"3", "3", false},
		{"2.50", "2.5", false},
		{"0.01", "0.01", false},
		{"", "", true},
		{"abc", "", true},
		{"12abc", "", true},
	}
	for _, tc := range testCases {
		got, err := ParseShares(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseShares(%q) error = %v, want error: %v", tc.in, err, tc.wantErr)
			continue
		}
		if err != nil {
			if !errors.Is(err, ErrInvalidTradeAmount) {
				t.Errorf("ParseShares(%q) error %v is not ErrInvalidTradeAmount", tc.in, err)
			}
			continue
		}
		if got.String() != tc.want {
			t.Errorf("ParseShares(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestTradeTicket_EstimatedCost(t *testing.T) {
	ticket := NewTradeTicket(aapl(t))
	if got := ticket.EstimatedCost().String(); got != "$0.00" {
		t.Errorf("EstimatedCost() with no amount = %s, want $0.00", got)
	}
	ticket.SetAmount("3")
	if got := ticket.EstimatedCost().String(); got != "$527.40" {
		t.Errorf("EstimatedCost() = %s, want $527.40", got)
	}
	ticket.SetAmount("many")
	if got := ticket.EstimatedCost().String(); got != "$0.00" {
		t.Errorf("EstimatedCost() with a bad amount = %s, want $0.00", got)
	}
}

func TestTradeTicket_Submit(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	log := zap.New(core)

	ticket := NewTradeTicket(aapl(t))
	ticket.SetSide(Sell)
	ticket.SetAmount("3")
	o, err := ticket.Submit(log)
	if err != nil {
		t.Fatalf("Submit() error: %v", err)
	}

	want := "Simulated Transaction: Sell 3 shares of AAPL at $175.80"
	if o.String() != want {
		t.Errorf("Order = %q, want %q", o, want)
	}
	if !o.Total.Equal(USD(527.4)) {
		t.Errorf("Total = %s, want $527.40", o.Total)
	}
	if n := logs.FilterMessage(want).Len(); n != 1 {
		t.Errorf("logged %d simulated transactions, want 1", n)
	}
}

func TestTradeTicket_SubmitInvalid(t *testing.T) {
	for _, amount := range []string{"", "ten"} {
		core, logs := observer.New(zap.InfoLevel)
		ticket := NewTradeTicket(aapl(t))
		ticket.SetAmount(amount)

		_, err := ticket.Submit(zap.New(core))
		if !errors.Is(err, ErrInvalidTradeAmount) {
			t.Errorf("Submit(%q) error = %v, want ErrInvalidTradeAmount", amount, err)
		}
		if ticket.Side() != Buy || ticket.Amount() != amount {
			t.Errorf("Submit(%q) changed the ticket", amount)
		}
		if logs.FilterLevelExact(zap.ErrorLevel).Len() != 1 {
			t.Errorf("Submit(%q) did not log the error", amount)
		}
	}
}
