package nextfinance

import "fmt"

// Portfolio is the account overview.
type Portfolio struct {
	Value             Money   `json:"value"`
	TodayChange       Money   `json:"todayChange"`
	TodayPercent      Percent `json:"todayPercent"`
	SinceStart        Money   `json:"sinceStart"`
	SinceStartPercent Percent `json:"sinceStartPercent"`
}

// Stock is a watchlist entry.
type Stock struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Price     Money   `json:"price"`
	Change    Money   `json:"change"`
	Percent   Percent `json:"percent"`
	Held      int     `json:"held"`
	MarketCap string  `json:"marketCap"`
}

// Trend of the day's change. A zero change counts as rising, the way the watchlist shows it.
func (s Stock) Trend() Trend {
	if s.Change.IsNegative() {
		return Down
	}
	return Up
}

// HeldLabel is the action shown on a watchlist row.
func (s Stock) HeldLabel() string {
	if s.Held > 0 {
		return fmt.Sprintf("%d Shares", s.Held)
	}
	return "Trade"
}

// NewsItem is a headline of the news sidebar.
type NewsItem struct {
	ID     int    `json:"id" yaml:"id"`
	Title  string `json:"title" yaml:"title"`
	Source string `json:"source" yaml:"source"`
	Time   string `json:"time" yaml:"time"`
}
