package nextfinance

import (
	"testing"
	"time"
)

func stockIDs(stocks []Stock) []string {
	ids := make([]string, len(stocks))
	for i, s := range stocks {
		ids[i] = s.ID
	}
	return ids
}

func equalIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestFilter(t *testing.T) {
	stocks := DefaultSeed().Stocks()
	testCases := []struct {
		query string
		want  []string
	}{
		{"", []string{"TSLA", "AAPL", "AMZN", "GOOG", "MSFT", "NVDA", "META"}},
		{"aapl", []string{"AAPL"}},
		{"AAPL", []string{"AAPL"}},
		{"inc", []string{"TSLA", "AAPL", "AMZN", "GOOG", "META"}},
		{"CORP", []string{"MSFT", "NVDA"}},
		{"a", []string{"TSLA", "AAPL", "AMZN", "GOOG", "NVDA", "META"}},
		{" apple", []string{}},
		{"xyz", []string{}},
	}
	for _, tc := range testCases {
		t.Run(tc.query, func(t *testing.T) {
			got := stockIDs(Filter(stocks, tc.query))
			if !equalIDs(got, tc.want) {
				t.Errorf("Filter(%q) = %v, want %v", tc.query, got, tc.want)
			}
		})
	}
}

func TestSelectionStore_Defaults(t *testing.T) {
	s := NewSelectionStore()
	want := SelectionState{Query: "", SelectedID: "", IsLoading: true}
	if got := s.State(); got != want {
		t.Errorf("State() = %+v, want %+v", got, want)
	}
}

func TestSelectionStore_QueryAndVisible(t *testing.T) {
	s := NewSelectionStore()
	stocks := DefaultSeed().Stocks()

	s.SetQuery("  Tes ")
	if got := s.Query(); got != "  Tes " {
		t.Errorf("Query() = %q, the query must be kept verbatim", got)
	}
	if got := s.Visible(stocks); len(got) != 0 {
		t.Errorf("Visible() = %v, want nothing for an untrimmed query", stockIDs(got))
	}

	s.SetQuery("tes")
	if got := stockIDs(s.Visible(stocks)); !equalIDs(got, []string{"TSLA"}) {
		t.Errorf("Visible() = %v, want [TSLA]", got)
	}
}

func TestSelectionStore_Selection(t *testing.T) {
	s := NewSelectionStore()
	if _, ok := s.Selected(); ok {
		t.Fatal("a new store has a selection")
	}

	s.Select("NOPE") // not validated
	if id, ok := s.Selected(); !ok || id != "NOPE" {
		t.Errorf("Selected() = %q, %v, want NOPE, true", id, ok)
	}

	s.SetQuery("zzz")
	if id, _ := s.Selected(); id != "NOPE" {
		t.Errorf("filtering cleared the selection")
	}

	s.Clear()
	if _, ok := s.Selected(); ok {
		t.Error("Clear() kept the selection")
	}
}

func TestSelectionStore_FinishLoadingIsIdempotent(t *testing.T) {
	s := NewSelectionStore()
	s.FinishLoading()
	s.FinishLoading() // must not panic on the closed channel
	if s.IsLoading() {
		t.Error("IsLoading() after FinishLoading()")
	}
	select {
	case <-s.Loaded():
	default:
		t.Error("Loaded() is not closed")
	}
}

func TestSelectionStore_StartLoading(t *testing.T) {
	s := NewSelectionStore()
	s.StartLoading(10 * time.Millisecond)
	if !s.IsLoading() {
		t.Fatal("loading finished before the delay")
	}
	select {
	case <-s.Loaded():
	case <-time.After(time.Second):
		t.Fatal("loading did not finish")
	}
	if s.IsLoading() {
		t.Error("IsLoading() after the delay")
	}
}

func TestSelectionStore_StartLoadingWithoutDelay(t *testing.T) {
	s := NewSelectionStore()
	s.StartLoading(0)
	if s.IsLoading() {
		t.Error("a zero delay must finish immediately")
	}
}

func TestSelectionStore_CloseCancelsLoading(t *testing.T) {
	s := NewSelectionStore()
	s.StartLoading(20 * time.Millisecond)
	s.Close()
	time.Sleep(60 * time.Millisecond)
	if !s.IsLoading() {
		t.Error("the load completed after Close()")
	}
}

func TestSelectionStore_TimerFiredBeforeClose(t *testing.T) {
	s := NewSelectionStore()
	s.StartLoading(time.Hour)
	s.Close()
	// The timer callback was already running when Close stopped the timer.
	s.loadTimeout()
	if !s.IsLoading() {
		t.Error("the load completed after Close()")
	}
	s.StartLoading(time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	if !s.IsLoading() {
		t.Error("StartLoading() after Close() completed the load")
	}
}
