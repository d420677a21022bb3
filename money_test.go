package nextfinance

import (
	"encoding/json"
	"testing"
)

func TestMoney_String(t *testing.T) {
	testCases := []struct {
		name string
		m    Money
		want string
	}{
		{"portfolio value", USD(12534.56), "$12,534.56"},
		{"negative change", USD(-1.50), "-$1.50"},
		{"zero", USD(0), "$0.00"},
		{"millions", USD(1234567.891), "$1,234,567.89"},
		{"rounding", USD(0.005), "$0.01"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.m.String(); got != tc.want {
				t.Errorf("String() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestMoney_Mul(t *testing.T) {
	if got := USD(175.80).Mul(S(3)); !got.Equal(USD(527.4)) {
		t.Errorf("Mul() = %v, want $527.40", got)
	}
}

func TestMoney_Trend(t *testing.T) {
	if USD(10.12).Trend() != Up || USD(-0.8).Trend() != Down || USD(0).Trend() != Flat {
		t.Error("unexpected trend classification")
	}
}

func TestMoney_MarshalJSON(t *testing.T) {
	got, err := json.Marshal(USD(175.80))
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	if want := `{"currency":"USD","amount":"175.8"}`; string(got) != want {
		t.Errorf("Marshal() = %s, want %s", got, want)
	}
}

func TestPercent(t *testing.T) {
	testCases := []struct {
		p      Percent
		plain  string
		signed string
		trend  Trend
	}{
		{1.24, "1.24%", "+1.24%", Up},
		{0.62, "0.62%", "+0.62%", Up},
		{0, "0.00%", "+0.00%", Flat},
		{-0.85, "-0.85%", "-0.85%", Down},
		{38.456, "38.46%", "+38.46%", Up},
	}
	for _, tc := range testCases {
		if got := tc.p.String(); got != tc.plain {
			t.Errorf("Percent(%v).String() = %q, want %q", float64(tc.p), got, tc.plain)
		}
		if got := tc.p.SignedString(); got != tc.signed {
			t.Errorf("Percent(%v).SignedString() = %q, want %q", float64(tc.p), got, tc.signed)
		}
		if got := tc.p.Trend(); got != tc.trend {
			t.Errorf("Percent(%v).Trend() = %v, want %v", float64(tc.p), got, tc.trend)
		}
	}
}

func TestTrend_Color(t *testing.T) {
	if Up.Color() != UpColor || Flat.Color() != UpColor || Down.Color() != DownColor {
		t.Error("unexpected trend colours")
	}
}
