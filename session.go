package nextfinance

import (
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrUnknownStock reports an id that is not in the session's stocks.
var ErrUnknownStock = errors.New("unknown stock")

// Session is one dashboard instance. It owns copies of the seed data, the
// generated chart series, and the selection state.
type Session struct {
	ID string

	mu        sync.Mutex
	portfolio Portfolio
	stocks    []Stock
	news      []NewsItem
	store     *SelectionStore

	rnd     RandomSource
	length  int
	padding float64
	log     *zap.Logger

	portfolioSeries Series
	series          map[string]Series // per stock, regenerated on each selection
}

// SessionOption configures a Session.
type SessionOption func(*Session)

func WithRandomSource(src RandomSource) SessionOption {
	return func(s *Session) { s.rnd = src }
}

func WithSeriesLength(n int) SessionOption {
	return func(s *Session) { s.length = n }
}

func WithPadding(p float64) SessionOption {
	return func(s *Session) { s.padding = p }
}

func WithLogger(l *zap.Logger) SessionOption {
	return func(s *Session) { s.log = l }
}

// NewSession starts a dashboard from seed. The portfolio series is generated immediately.
func NewSession(seed *Seed, opts ...SessionOption) *Session {
	s := &Session{
		ID:        uuid.NewString(),
		portfolio: seed.Portfolio(),
		stocks:    seed.Stocks(),
		news:      seed.News(),
		store:     NewSelectionStore(),
		length:    DefaultSeriesLength,
		padding:   DefaultPadding,
		log:       zap.NewNop(),
		series:    make(map[string]Series),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rnd == nil {
		s.rnd = NewRandomSource(0)
	}
	s.log = s.log.With(zap.String("session", s.ID))
	s.portfolioSeries = GenerateSeries(s.rnd, s.portfolio.Value.Float64(), s.length)
	return s
}

func (s *Session) Portfolio() Portfolio    { return s.portfolio }
func (s *Session) Stocks() []Stock         { return slices.Clone(s.stocks) }
func (s *Session) News() []NewsItem        { return slices.Clone(s.news) }
func (s *Session) Store() *SelectionStore  { return s.store }
func (s *Session) Padding() float64        { return s.padding }
func (s *Session) PortfolioSeries() Series { return s.portfolioSeries }
func (s *Session) Logger() *zap.Logger     { return s.log }
func (s *Session) SetQuery(q string)       { s.store.SetQuery(q) }
func (s *Session) Visible() []Stock        { return s.store.Visible(s.stocks) }

// Load starts the simulated initial load.
func (s *Session) Load(delay time.Duration) <-chan struct{} {
	s.store.StartLoading(delay)
	return s.store.Loaded()
}

// Stock looks up id among all the stocks, whatever the query.
func (s *Session) Stock(id string) (Stock, error) {
	for _, st := range s.stocks {
		if st.ID == id {
			return st, nil
		}
	}
	return Stock{}, fmt.Errorf("%q: %w", id, ErrUnknownStock)
}

// Select opens the detail view of id with a freshly generated chart.
// The selection is kept when the query later filters the stock out.
func (s *Session) Select(id string) error {
	st, err := s.Stock(id)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.series[id] = GenerateSeries(s.rnd, st.Price.Float64(), s.length)
	s.mu.Unlock()
	s.store.Select(id)
	s.log.Debug("stock selected", zap.String("stock", id))
	return nil
}

// Selected returns the stock of the detail view, if any.
func (s *Session) Selected() (Stock, bool) {
	id, ok := s.store.Selected()
	if !ok {
		return Stock{}, false
	}
	st, err := s.Stock(id)
	return st, err == nil
}

// Clear closes the detail view.
func (s *Session) Clear() { s.store.Clear() }

// StockSeries returns the chart series of a stock, generating it on first use.
func (s *Session) StockSeries(id string) (Series, error) {
	st, err := s.Stock(id)
	if err != nil {
		return Series{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	series, ok := s.series[id]
	if !ok {
		series = GenerateSeries(s.rnd, st.Price.Float64(), s.length)
		s.series[id] = series
	}
	return series, nil
}

// DetailSeries is the chart of the selected stock, empty when nothing is selected.
func (s *Session) DetailSeries() Series {
	id, ok := s.store.Selected()
	if !ok {
		return Series{}
	}
	series, _ := s.StockSeries(id)
	return series
}

// Ticket opens a trade ticket on the selected stock.
func (s *Session) Ticket() (*TradeTicket, error) {
	st, ok := s.Selected()
	if !ok {
		return nil, errors.New("no stock selected")
	}
	return NewTradeTicket(st), nil
}

// Submit sends a ticket and closes the detail view on success.
func (s *Session) Submit(t *TradeTicket) (Order, error) {
	o, err := t.Submit(s.log)
	if err != nil {
		return Order{}, err
	}
	s.Clear()
	return o, nil
}

// Close cancels the pending load.
func (s *Session) Close() { s.store.Close() }
