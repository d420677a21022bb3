package nextfinance

import "testing"

func TestProject(t *testing.T) {
	testCases := []struct {
		name    string
		values  []float64
		padding float64
		want    []ProjectedPoint
	}{
		{
			name:    "peak",
			values:  []float64{10, 20, 10},
			padding: 0,
			want:    []ProjectedPoint{{0, 100}, {50, 0}, {100, 100}},
		},
		{
			name:    "flat",
			values:  []float64{5, 5, 5, 5},
			padding: 0,
			want:    []ProjectedPoint{{0, 50}, {100.0 / 3, 50}, {200.0 / 3, 50}, {100, 50}},
		},
		{
			name:    "single point",
			values:  []float64{100},
			padding: DefaultPadding,
			want:    []ProjectedPoint{{0, 50}},
		},
		{
			name:    "single negative point",
			values:  []float64{-100},
			padding: DefaultPadding,
			want:    []ProjectedPoint{{0, 50}},
		},
		{
			name:    "zero padding collapses on zero",
			values:  []float64{0, 0},
			padding: DefaultPadding,
			want:    []ProjectedPoint{{0, 50}, {100, 50}},
		},
		{
			name:    "default padding",
			values:  []float64{100, 200},
			padding: DefaultPadding,
			// minY=95 maxY=210 rangeY=115
			want: []ProjectedPoint{{0, 100 - 5.0/115*100}, {100, 100 - 105.0/115*100}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Project(NewSeries(tc.values...), tc.padding)
			if !ok {
				t.Fatal("Project() reported no data")
			}
			if len(got) != len(tc.want) {
				t.Fatalf("Project() returned %d points, want %d", len(got), len(tc.want))
			}
			for i := range got {
				if !near(got[i].XPct, tc.want[i].XPct) || !near(got[i].YPct, tc.want[i].YPct) {
					t.Errorf("point %d = %+v, want %+v", i, got[i], tc.want[i])
				}
			}
		})
	}
}

func TestProject_Empty(t *testing.T) {
	points, ok := Project(Series{}, DefaultPadding)
	if ok || points != nil {
		t.Errorf("Project(empty) = %v, %v, want nil, false", points, ok)
	}
}

func TestProject_PureAndIdempotent(t *testing.T) {
	s := GenerateSeries(NewRandomSource(11), 300, 50)
	before := s.Values()

	a, _ := Project(s, DefaultPadding)
	b, _ := Project(s, DefaultPadding)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("point %d differs between calls: %v != %v", i, a[i], b[i])
		}
	}
	for i, v := range s.Values() {
		if v != before[i] {
			t.Fatalf("input sample %d changed from %v to %v", i, before[i], v)
		}
	}
}

func TestProject_PositiveSeriesStaysInViewport(t *testing.T) {
	s := GenerateSeries(NewRandomSource(5), 175.8, DefaultSeriesLength)
	points, _ := Project(s, DefaultPadding)
	for i, p := range points {
		if p.XPct < 0 || p.XPct > 100 || p.YPct < 0 || p.YPct > 100 {
			t.Errorf("point %d = %+v is outside the viewport", i, p)
		}
	}
}

func TestBounds(t *testing.T) {
	minY, maxY, ok := Bounds(NewSeries(10, 30, 20), 0.1)
	if !ok {
		t.Fatal("Bounds() reported no data")
	}
	if !near(minY, 9) || !near(maxY, 33) {
		t.Errorf("Bounds() = %v, %v, want 9, 33", minY, maxY)
	}
	if _, _, ok := Bounds(Series{}, 0.1); ok {
		t.Error("Bounds(empty) reported data")
	}
}
