package nextfinance

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"sync"

	"github.com/Rhymond/go-money"
	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var defaultSeed []byte

// Seed is the immutable mock data a dashboard starts from.
// Accessors return copies so that sessions never share mutable state.
type Seed struct {
	portfolio Portfolio
	stocks    []Stock
	news      []NewsItem
}

// seedFile is the YAML representation of a Seed.
type seedFile struct {
	Currency  string `yaml:"currency"`
	Portfolio struct {
		Value             float64 `yaml:"value"`
		TodayChange       float64 `yaml:"today_change"`
		TodayPercent      float64 `yaml:"today_percent"`
		SinceStart        float64 `yaml:"since_start"`
		SinceStartPercent float64 `yaml:"since_start_percent"`
	} `yaml:"portfolio"`
	Stocks []struct {
		ID        string  `yaml:"id"`
		Name      string  `yaml:"name"`
		Price     float64 `yaml:"price"`
		Change    float64 `yaml:"change"`
		Percent   float64 `yaml:"percent"`
		Held      int     `yaml:"held"`
		MarketCap string  `yaml:"market_cap"`
	} `yaml:"stocks"`
	News []NewsItem `yaml:"news"`
}

var defaultSeedOnce = sync.OnceValues(func() (*Seed, error) {
	return DecodeSeed(bytes.NewReader(defaultSeed))
})

// DefaultSeed returns the built-in mock data.
func DefaultSeed() *Seed {
	s, err := defaultSeedOnce()
	if err != nil {
		panic("invalid embedded seed: " + err.Error())
	}
	return s
}

// LoadSeed reads a seed file. An empty path means the built-in seed.
func LoadSeed(path string) (*Seed, error) {
	if path == "" {
		return DefaultSeed(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open seed: %w", err)
	}
	defer f.Close()
	s, err := DecodeSeed(f)
	if err != nil {
		return nil, fmt.Errorf("seed %q: %w", path, err)
	}
	return s, nil
}

// DecodeSeed decodes and validates a YAML seed document.
func DecodeSeed(r io.Reader) (*Seed, error) {
	var f seedFile
	if err := yaml.NewDecoder(r).Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse seed: %w", err)
	}
	cur := f.Currency
	if cur == "" {
		cur = DefaultCurrency
	}
	if money.GetCurrency(cur) == nil {
		return nil, fmt.Errorf("unknown currency %q", cur)
	}

	s := &Seed{}
	s.portfolio = Portfolio{
		Value:             M(f.Portfolio.Value, cur),
		TodayChange:       M(f.Portfolio.TodayChange, cur),
		TodayPercent:      Percent(f.Portfolio.TodayPercent),
		SinceStart:        M(f.Portfolio.SinceStart, cur),
		SinceStartPercent: Percent(f.Portfolio.SinceStartPercent),
	}

	seen := make(map[string]bool)
	for i, st := range f.Stocks {
		if st.ID == "" {
			return nil, fmt.Errorf("stock #%d has no id", i)
		}
		if seen[st.ID] {
			return nil, fmt.Errorf("duplicate stock %q", st.ID)
		}
		seen[st.ID] = true
		s.stocks = append(s.stocks, Stock{
			ID:        st.ID,
			Name:      st.Name,
			Price:     M(st.Price, cur),
			Change:    M(st.Change, cur),
			Percent:   Percent(st.Percent),
			Held:      st.Held,
			MarketCap: st.MarketCap,
		})
	}
	s.news = f.News
	return s, nil
}

func (s *Seed) Portfolio() Portfolio { return s.portfolio }
func (s *Seed) Stocks() []Stock      { return slices.Clone(s.stocks) }
func (s *Seed) News() []NewsItem     { return slices.Clone(s.news) }
