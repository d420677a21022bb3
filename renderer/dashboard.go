package renderer

import (
	"bytes"
	"fmt"
	"io"

	"github.com/etnz/nextfinance"
	md "github.com/nao1215/markdown"
)

// Disclaimer is printed at the bottom of every dashboard.
const Disclaimer = "**Disclaimer:** This is a conceptual trading site replica for demonstration purposes only. " +
	"The domain 'nextfinance.biz' and all data displayed are fictional. Investing involves risk."

// Dashboard is the data of the main page.
type Dashboard struct {
	Portfolio   nextfinance.Portfolio        `json:"portfolio"`
	Chart       []nextfinance.ProjectedPoint `json:"chart"`
	HasChart    bool                         `json:"hasChart"`
	ChartColor  string                       `json:"chartColor"`
	Query       string                       `json:"query,omitempty"`
	Stocks      []nextfinance.Stock          `json:"stocks"`
	News        []nextfinance.NewsItem       `json:"news"`
	ActiveRange string                       `json:"activeRange"`
}

// NewDashboard captures the current state of a session.
func NewDashboard(s *nextfinance.Session) *Dashboard {
	p := s.Portfolio()
	chart, ok := nextfinance.Project(s.PortfolioSeries(), s.Padding())
	color := nextfinance.UpColor
	if p.TodayChange.IsNegative() {
		color = nextfinance.DownColor
	}
	return &Dashboard{
		Portfolio:   p,
		Chart:       chart,
		HasChart:    ok,
		ChartColor:  color,
		Query:       s.Store().Query(),
		Stocks:      s.Visible(),
		News:        s.News(),
		ActiveRange: "1D",
	}
}

// DashboardMarkdown renders the main page.
func DashboardMarkdown(d *Dashboard) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("NextFinance")

	doc.H2("Portfolio Value")
	doc.PlainText(md.Bold(d.Portfolio.Value.String())).LF()
	doc.PlainText(fmt.Sprintf("%s (%s) Today %s",
		d.Portfolio.TodayChange, d.Portfolio.TodayPercent, d.Portfolio.TodayPercent.Trend().Arrow())).LF()
	doc.PlainText(fmt.Sprintf("%s (%s) Since Start",
		d.Portfolio.SinceStart, d.Portfolio.SinceStartPercent)).LF()
	doc.PlainText(chartBlock(d.Chart, d.HasChart))
	doc.PlainText(RangeSelector(d.ActiveRange))

	doc.H2("Stocks You Own & Watchlist")
	if d.Query != "" {
		doc.PlainText(md.Italic(fmt.Sprintf("Search: %q", d.Query)))
	}
	if len(d.Stocks) == 0 {
		doc.PlainText("No results found for your search query.")
	} else {
		table := md.TableSet{
			Header: []string{"Ticker", "Name", "Price", "Change", ""},
		}
		for _, s := range d.Stocks {
			table.Rows = append(table.Rows, []string{
				md.Bold(s.ID),
				s.Name,
				s.Price.String(),
				s.Percent.SignedString() + " " + s.Trend().Arrow(),
				s.HeldLabel(),
			})
		}
		doc.Table(table)
	}

	var news bytes.Buffer
	ConditionalBlock(&news, func(w io.Writer) bool {
		items := make([]string, 0, len(d.News))
		for _, n := range d.News {
			items = append(items, fmt.Sprintf("%s (%s, %s)", md.Bold(n.Title), n.Source, n.Time))
		}
		sub := md.NewMarkdown(w)
		sub.H2("Latest News")
		sub.BulletList(items...)
		io.WriteString(w, sub.String())
		return len(items) > 0
	})
	doc.PlainText(news.String())

	doc.PlainText("---")
	doc.PlainText(Disclaimer)
	return doc.String()
}

// LoadingMarkdown is shown while the dashboard loads.
func LoadingMarkdown() string {
	return "_Loading NextFinance Dashboard..._\n"
}

// chartBlock renders a terminal chart or its placeholder.
func chartBlock(points []nextfinance.ProjectedPoint, ok bool) string {
	if !ok {
		return md.Italic("No data available")
	}
	return fence(Plot(points, PlotWidth, PlotHeight))
}
