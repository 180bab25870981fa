package layout

import (
	"math"
	"testing"
)

func TestConstraint_Clamp(t *testing.T) {
	type tc struct {
		c        Constraint
		in       Size
		expected Size
	}

	tests := map[string]tc{
		"inside bounds": {
			c:        NewConstraint(Size{10, 10}, Size{100, 100}),
			in:       Size{50, 60},
			expected: Size{50, 60},
		},
		"below min": {
			c:        NewConstraint(Size{10, 10}, Size{100, 100}),
			in:       Size{1, 2},
			expected: Size{10, 10},
		},
		"above max": {
			c:        NewConstraint(Size{10, 10}, Size{100, 100}),
			in:       Size{500, 500},
			expected: Size{100, 100},
		},
		"unbounded": {
			c:        Unbounded(),
			in:       Size{1e9, 3},
			expected: Size{1e9, 3},
		},
		"tight": {
			c:        Tight(Size{7, 8}),
			in:       Size{0, 100},
			expected: Size{7, 8},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.c.Clamp(tt.in); got != tt.expected {
				t.Errorf("Clamp(%+v) = %+v, want %+v", tt.in, got, tt.expected)
			}
		})
	}
}

func TestConstraint_InsetNeverInverts(t *testing.T) {
	type tc struct {
		c     Constraint
		edges Edges
	}

	tests := map[string]tc{
		"inset larger than max": {
			c:     NewConstraint(Size{40, 40}, Size{50, 50}),
			edges: EdgeAll(100),
		},
		"tight": {
			c:     Tight(Size{20, 20}),
			edges: EdgeAll(5),
		},
		"unbounded": {
			c:     Unbounded(),
			edges: EdgeAll(5),
		},
		"no minimum with finite max": {
			c:     Loose(Size{10, 10}),
			edges: EdgeSymmetric(20, 1),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := tt.c.Inset(tt.edges)
			if !got.IsValid() {
				t.Fatalf("Inset() = %s, min exceeds max", got)
			}
			if got.Max.Width < 0 || got.Max.Height < 0 {
				t.Errorf("Inset() = %s, negative max", got)
			}
		})
	}
}

func TestConstraint_InsetKeepsSentinels(t *testing.T) {
	got := Unbounded().Inset(EdgeAll(10))

	if !math.IsInf(got.Max.Width, 1) || !math.IsInf(got.Max.Height, 1) {
		t.Errorf("Inset() max = %+v, want +Inf", got.Max)
	}
	if got.Min.Width != NoMin || got.Min.Height != NoMin {
		t.Errorf("Inset() min = %+v, want NoMin", got.Min)
	}
}

func TestConstraint_NewNormalizes(t *testing.T) {
	c := NewConstraint(Size{200, 5}, Size{100, 100})

	if c.Min.Width != 100 {
		t.Errorf("Min.Width = %g, want 100", c.Min.Width)
	}
	if !c.IsValid() {
		t.Errorf("constraint %s is not valid", c)
	}
}

func TestConstraint_WithMain(t *testing.T) {
	c := NewConstraint(Size{0, 0}, Size{300, 50})
	got := c.WithMain(Horizontal, 200, 200)

	if got.Min.Width != 200 || got.Max.Width != 200 {
		t.Errorf("WithMain width = [%g, %g], want [200, 200]", got.Min.Width, got.Max.Width)
	}
	if got.Max.Height != 50 {
		t.Errorf("WithMain cross max = %g, want 50", got.Max.Height)
	}

	clamped := c.WithMain(Horizontal, 500, 900)
	if clamped.Max.Width != 300 || clamped.Min.Width != 300 {
		t.Errorf("WithMain clamp = [%g, %g], want [300, 300]", clamped.Min.Width, clamped.Max.Width)
	}
}

func TestSize_IsFinite(t *testing.T) {
	if !(Size{1, 2}).IsFinite() {
		t.Error("finite size reported non-finite")
	}
	if (Size{Inf, 2}).IsFinite() {
		t.Error("infinite size reported finite")
	}
	if (Size{math.NaN(), 2}).IsFinite() {
		t.Error("NaN size reported finite")
	}
}
