package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestRectCentered(t *testing.T) {
	outer := NewRect(0, 0, 80, 24)
	inner := outer.Centered(22, 22)

	if inner.X != 29 || inner.Y != 1 {
		t.Errorf("Centered() origin = (%d, %d), expected (29, 1)", inner.X, inner.Y)
	}
	if inner.W != 22 || inner.H != 22 {
		t.Errorf("Centered() size = %dx%d, expected 22x22", inner.W, inner.H)
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestTickDelta(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.TickDelta(); got != 1.0/60.0 {
		t.Errorf("TickDelta() = %f, expected 1/60", got)
	}

	cfg.TickRate = 0
	if got := cfg.TickDelta(); got != 1.0/60.0 {
		t.Errorf("TickDelta() with zero rate = %f, expected 1/60 fallback", got)
	}

	cfg.TickRate = 20
	if got := cfg.TickDelta(); got != 0.05 {
		t.Errorf("TickDelta() at 20 fps = %f, expected 0.05", got)
	}
}

func TestActionString(t *testing.T) {
	if ActionSoftDrop.String() != "SoftDrop" {
		t.Errorf("ActionSoftDrop.String() = %q", ActionSoftDrop.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("Action(99).String() = %q, expected Unknown", Action(99).String())
	}
}

func TestInputFrame(t *testing.T) {
	var f InputFrame
	if f.Has(ActionLeft) {
		t.Error("zero frame should have no actions")
	}

	f.Set(ActionLeft)
	clone := f.Clone()
	f.Clear()

	if f.Has(ActionLeft) {
		t.Error("Clear should remove actions")
	}
	if !clone.Has(ActionLeft) {
		t.Error("Clone should be independent of the original")
	}
}

func TestMultiReporter(t *testing.T) {
	var got []Result
	rec := ReporterFunc(func(r Result) { got = append(got, r) })

	m := MultiReporter{rec, nil, rec}
	m.ReportScore(Result{GameID: "blockfall", Score: 300})

	if len(got) != 2 {
		t.Fatalf("MultiReporter delivered %d results, expected 2", len(got))
	}
	if got[0].Score != 300 || got[1].GameID != "blockfall" {
		t.Errorf("unexpected results: %+v", got)
	}
}
