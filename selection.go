package nextfinance

import (
	"strings"
	"sync"
	"time"
)

// DefaultLoadDelay is the simulated initial load time of a dashboard.
const DefaultLoadDelay = time.Second

// SelectionState is a snapshot of a SelectionStore.
type SelectionState struct {
	Query      string `json:"query"`
	SelectedID string `json:"selectedId,omitempty"` // empty when nothing is selected
	IsLoading  bool   `json:"isLoading"`
}

// SelectionStore holds the ephemeral search, selection and loading state of a dashboard.
//
// The store does not check that the selected id exists, nor does it clear the
// selection when the query filters the selected stock out.
type SelectionStore struct {
	mu       sync.Mutex
	query    string
	selected string
	loading  bool
	loaded   chan struct{}
	timer    *time.Timer
	closed   bool
}

// NewSelectionStore returns a store with an empty query, no selection, and loading in progress.
func NewSelectionStore() *SelectionStore {
	return &SelectionStore{
		loading: true,
		loaded:  make(chan struct{}),
	}
}

func (s *SelectionStore) State() SelectionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return SelectionState{Query: s.query, SelectedID: s.selected, IsLoading: s.loading}
}

func (s *SelectionStore) Query() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.query
}

// SetQuery replaces the query verbatim.
func (s *SelectionStore) SetQuery(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.query = text
}

// Visible returns the stocks matching the current query.
func (s *SelectionStore) Visible(stocks []Stock) []Stock {
	return Filter(stocks, s.Query())
}

func (s *SelectionStore) Select(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = id
}

func (s *SelectionStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = ""
}

// Selected returns the selected id, if any.
func (s *SelectionStore) Selected() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selected, s.selected != ""
}

func (s *SelectionStore) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// FinishLoading ends the loading phase. Further calls do nothing.
func (s *SelectionStore) FinishLoading() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.finishLocked()
}

func (s *SelectionStore) finishLocked() {
	if !s.loading {
		return
	}
	s.loading = false
	close(s.loaded)
}

// Loaded is closed once loading has finished.
func (s *SelectionStore) Loaded() <-chan struct{} { return s.loaded }

// StartLoading schedules FinishLoading after delay. A non positive delay finishes immediately.
func (s *SelectionStore) StartLoading(delay time.Duration) {
	if delay <= 0 {
		s.FinishLoading()
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loading || s.closed {
		return
	}
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(delay, s.loadTimeout)
}

// loadTimeout runs on the timer goroutine. It may already be waiting on the
// lock when Close stops the timer, hence the closed check.
func (s *SelectionStore) loadTimeout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.closed {
		s.finishLocked()
	}
}

// Close cancels a pending load so that the store is not updated after teardown.
func (s *SelectionStore) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

// Filter returns the stocks whose ID or Name contains query, ignoring case.
// The relative order is preserved and an empty query matches everything.
func Filter(stocks []Stock, query string) []Stock {
	q := strings.ToLower(query)
	out := make([]Stock, 0, len(stocks))
	for _, s := range stocks {
		if strings.Contains(strings.ToLower(s.ID), q) || strings.Contains(strings.ToLower(s.Name), q) {
			out = append(out, s)
		}
	}
	return out
}
