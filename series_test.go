package nextfinance

import "testing"

func TestGenerateSeries(t *testing.T) {
	src := newFixedSource(0.9, 0.1, 0.5, 0.2, 0.8)
	s := GenerateSeries(src, 100, 5)

	want := []float64{100.8, 100.0, 100.0, 99.4, 100.0}
	if s.Len() != len(want) {
		t.Fatalf("GenerateSeries() len = %d, want %d", s.Len(), len(want))
	}
	for i, w := range want {
		got := s.At(i)
		if got.Index != i {
			t.Errorf("sample %d has index %d", i, got.Index)
		}
		if !near(got.Value, w) {
			t.Errorf("sample %d = %v, want %v", i, got.Value, w)
		}
	}
}

func TestGenerateSeries_Length(t *testing.T) {
	testCases := []struct {
		name   string
		length int
		want   int
	}{
		{"default", DefaultSeriesLength, 100},
		{"single", 1, 1},
		{"zero", 0, 0},
		{"negative", -3, 0},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := GenerateSeries(NewRandomSource(7), 50, tc.length)
			if s.Len() != tc.want {
				t.Fatalf("GenerateSeries(%d) len = %d, want %d", tc.length, s.Len(), tc.want)
			}
			for i := 0; i < s.Len(); i++ {
				if s.At(i).Index != i {
					t.Errorf("sample %d has index %d", i, s.At(i).Index)
				}
			}
		})
	}
}

func TestGenerateSeries_StepBounds(t *testing.T) {
	s := GenerateSeries(NewRandomSource(3), 10, 500)
	prev := 10.0
	for i := 0; i < s.Len(); i++ {
		v := s.At(i).Value
		if step := v - prev; step < -1-1e-9 || step > 1+1e-9 {
			t.Fatalf("step %d = %v, out of [-1, 1)", i, step)
		}
		prev = v
	}
}

func TestGenerateSeries_NoClamping(t *testing.T) {
	// always stepping down by almost 1 drives a small start below zero.
	s := GenerateSeries(newFixedSource(0), 2, 5)
	if last := s.Last(); !near(last, -3) {
		t.Errorf("Last() = %v, want -3", last)
	}
}

func TestGenerateSeries_Reproducible(t *testing.T) {
	a := GenerateSeries(NewRandomSource(42), 100, 20)
	b := GenerateSeries(NewRandomSource(42), 100, 20)
	for i := 0; i < a.Len(); i++ {
		if a.At(i) != b.At(i) {
			t.Fatalf("sample %d differs: %v != %v", i, a.At(i), b.At(i))
		}
	}
}

func TestSeries_CopiesAreOwned(t *testing.T) {
	s := NewSeries(1, 2, 3)
	samples := s.Samples()
	samples[0].Value = 99
	values := s.Values()
	values[1] = 99
	if s.At(0).Value != 1 || s.At(1).Value != 2 {
		t.Errorf("series was mutated through a copy: %v", s.Values())
	}
}

func TestSeries_MarshalJSON(t *testing.T) {
	got, err := NewSeries(1.5, 2).MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON() error: %v", err)
	}
	if want := `[{"x":0,"y":1.5},{"x":1,"y":2}]`; string(got) != want {
		t.Errorf("MarshalJSON() = %s, want %s", got, want)
	}

	got, err = Series{}.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON() error: %v", err)
	}
	if string(got) != "[]" {
		t.Errorf("empty MarshalJSON() = %s, want []", got)
	}
}
