package renderer

import (
	"github.com/etnz/nextfinance"
)

// StockDetail is the data of the detail view of a stock.
type StockDetail struct {
	Stock         nextfinance.Stock            `json:"stock"`
	Chart         []nextfinance.ProjectedPoint `json:"chart"`
	HasChart      bool                         `json:"hasChart"`
	ChartColor    string                       `json:"chartColor"`
	Side          nextfinance.Side             `json:"side"`
	Amount        string                       `json:"amount"`
	EstimatedCost nextfinance.Money            `json:"estimatedCost"`
	ActiveRange   string                       `json:"activeRange"`
}

// NewStockDetail builds the detail view of the ticket's stock charted with series.
func NewStockDetail(t *nextfinance.TradeTicket, series nextfinance.Series, padding float64) *StockDetail {
	chart, ok := nextfinance.Project(series, padding)
	return &StockDetail{
		Stock:         t.Stock(),
		Chart:         chart,
		HasChart:      ok,
		ChartColor:    t.Stock().Trend().Color(),
		Side:          t.Side(),
		Amount:        t.Amount(),
		EstimatedCost: t.EstimatedCost(),
		ActiveRange:   "1D",
	}
}

// Plot is the terminal chart of the detail view.
func (d *StockDetail) Plot() string { return chartBlock(d.Chart, d.HasChart) }

// Ranges is the time range selector of the detail view.
func (d *StockDetail) Ranges() string { return RangeSelector(d.ActiveRange) }

// Arrow of the day's change.
func (d *StockDetail) Arrow() string { return d.Stock.Trend().Arrow() }

// StockDetailMarkdown renders the detail view of a stock.
func StockDetailMarkdown(d *StockDetail) string {
	return renderTemplate("stock_detail", "stock_detail.md", map[string]string{
		"title":  "stock_detail_title.md",
		"ticket": "stock_detail_ticket.md",
	}, d)
}
