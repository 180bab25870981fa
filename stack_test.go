package compose

import (
	"testing"
)

func TestStack_RowWithFlexibleChild(t *testing.T) {
	f := &leafFactory{}
	row := HStack(f.leaf("a", 100, 50), Flexible(f.leaf("b", 10, 20), 1))

	node := row.Layout(Loose(NewSize(300, Inf)))

	if got := node.Size(); got != NewSize(300, 50) {
		t.Fatalf("row size = %v, want (300, 50)", got)
	}
	if got := node.Children()[1].Size().Width; got != 200 {
		t.Errorf("B.width = %g, want 200", got)
	}
	if got := node.Positions()[1]; got != (Point{X: 100}) {
		t.Errorf("B position = %v, want (100, 0)", got)
	}
}

func TestStack_Justify(t *testing.T) {
	type tc struct {
		justify   Justify
		expectedX []float64
		width     float64
	}

	tests := map[string]tc{
		"start keeps natural width": {
			justify:   JustifyStart,
			expectedX: []float64{0, 10, 20},
			width:     30,
		},
		"end": {
			justify:   JustifyEnd,
			expectedX: []float64{70, 80, 90},
			width:     100,
		},
		"center": {
			justify:   JustifyCenter,
			expectedX: []float64{35, 45, 55},
			width:     100,
		},
		"space between": {
			justify:   JustifySpaceBetween,
			expectedX: []float64{0, 45, 90},
			width:     100,
		},
		"space around": {
			justify:   JustifySpaceAround,
			expectedX: []float64{70.0 / 6, 10 + 70.0/6 + 70.0/3, 20 + 70.0/6 + 140.0/3},
			width:     100,
		},
		"space evenly": {
			justify:   JustifySpaceEvenly,
			expectedX: []float64{17.5, 45, 72.5},
			width:     100,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			f := &leafFactory{}
			row := HStack(f.leaf("a", 10, 10), f.leaf("b", 10, 10), f.leaf("c", 10, 10)).Justify(tt.justify)
			node := row.Layout(Loose(NewSize(100, 10)))

			if got := node.Size().Width; !approx(got, tt.width) {
				t.Errorf("width = %g, want %g", got, tt.width)
			}
			for i, want := range tt.expectedX {
				if got := node.Positions()[i].X; !approx(got, want) {
					t.Errorf("child %d x = %g, want %g", i, got, want)
				}
			}
		})
	}
}

func TestStack_JustifyIgnoredWhenUnbounded(t *testing.T) {
	f := &leafFactory{}
	row := HStack(f.leaf("a", 10, 10), f.leaf("b", 10, 10)).Justify(JustifyEnd)

	node := row.Layout(Unbounded())

	if got := node.Size(); got != NewSize(20, 10) {
		t.Errorf("size = %v, want (20, 10)", got)
	}
	if got := node.Positions()[0].X; got != 0 {
		t.Errorf("first x = %g, want 0", got)
	}
}

func TestStack_FlexWeights(t *testing.T) {
	type tc struct {
		children []Component
		spacing  float64
		max      Size
		widths   []float64
	}

	f := &leafFactory{}
	tests := map[string]tc{
		"weights split leftover proportionally": {
			children: []Component{Flexible(f.leaf("a", 0, 10), 1), Flexible(f.leaf("b", 0, 10), 2)},
			max:      NewSize(300, Inf),
			widths:   []float64{100, 200},
		},
		"fixed children are subtracted first": {
			children: []Component{f.leaf("a", 60, 10), Flexible(f.leaf("b", 0, 10), 1), Flexible(f.leaf("c", 0, 10), 1)},
			max:      NewSize(300, Inf),
			widths:   []float64{60, 120, 120},
		},
		"spacing is subtracted from the leftover": {
			children: []Component{Flexible(f.leaf("a", 0, 10), 1), Flexible(f.leaf("b", 0, 10), 1)},
			spacing:  10,
			max:      NewSize(110, Inf),
			widths:   []float64{50, 50},
		},
		"weight sum below one divides by one": {
			children: []Component{Flexible(f.leaf("a", 0, 10), 0.5)},
			max:      NewSize(300, Inf),
			widths:   []float64{150},
		},
		"overconsumed row leaves flexible children empty": {
			children: []Component{f.leaf("a", 80, 10), f.leaf("b", 80, 10), Flexible(f.leaf("c", 30, 10), 1)},
			max:      NewSize(100, Inf),
			widths:   []float64{80, 80, 0},
		},
		"unbounded main axis lays flexible children out naturally": {
			children: []Component{Flexible(f.leaf("a", 40, 10), 1)},
			max:      NewSize(Inf, Inf),
			widths:   []float64{40},
		},
		"natural fill keeps a smaller child": {
			children: []Component{Flexible(f.leaf("a", 50, 10), 1).Fill(FlexFillNatural)},
			max:      NewSize(300, Inf),
			widths:   []float64{50},
		},
		"always fill expands to the share": {
			children: []Component{Flexible(f.leaf("a", 50, 10), 1)},
			max:      NewSize(300, Inf),
			widths:   []float64{300},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			node := HStack(tt.children...).Spacing(tt.spacing).Layout(Loose(tt.max))
			for i, want := range tt.widths {
				if got := node.Children()[i].Size().Width; !approx(got, want) {
					t.Errorf("child %d width = %g, want %g", i, got, want)
				}
			}
		})
	}
}

func TestStack_Spacing(t *testing.T) {
	f := &leafFactory{}
	row := HStack(f.leaf("a", 10, 10), f.leaf("b", 10, 10), f.leaf("c", 10, 10)).Spacing(5)

	node := row.Layout(Unbounded())

	if got := node.Size(); got != NewSize(40, 10) {
		t.Errorf("size = %v, want (40, 10)", got)
	}
	for i, want := range []float64{0, 15, 30} {
		if got := node.Positions()[i].X; got != want {
			t.Errorf("child %d x = %g, want %g", i, got, want)
		}
	}
}

func TestStack_CrossAxis(t *testing.T) {
	type tc struct {
		stack    Component
		max      Size
		size     Size
		child    int
		position Point
		extent   Size
	}

	f := &leafFactory{}
	tests := map[string]tc{
		"stretch fills a bounded cross axis": {
			stack:    VStack(f.leaf("a", 30, 10)).Align(AlignStretch),
			max:      NewSize(120, Inf),
			size:     NewSize(120, 10),
			position: Point{},
			extent:   NewSize(120, 10),
		},
		"center": {
			stack:    VStack(f.leaf("a", 20, 10)).Align(AlignCenter),
			max:      NewSize(100, Inf),
			size:     NewSize(100, 10),
			position: Point{X: 40},
			extent:   NewSize(20, 10),
		},
		"unbounded cross takes the tallest child": {
			stack:    HStack(f.leaf("a", 10, 40), Flexible(f.leaf("b", 10, 10), 0).AlignSelf(AlignEnd)),
			max:      NewSize(100, Inf),
			size:     NewSize(20, 40),
			child:    1,
			position: Point{X: 10, Y: 30},
			extent:   NewSize(10, 10),
		},
		"bounded cross uses the offered maximum": {
			stack:    HStack(f.leaf("a", 10, 10)).Align(AlignEnd),
			max:      NewSize(100, 50),
			size:     NewSize(10, 50),
			position: Point{Y: 40},
			extent:   NewSize(10, 10),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			node := tt.stack.Layout(Loose(tt.max))
			if got := node.Size(); got != tt.size {
				t.Errorf("size = %v, want %v", got, tt.size)
			}
			if got := node.Positions()[tt.child]; got != tt.position {
				t.Errorf("position = %v, want %v", got, tt.position)
			}
			if got := node.Children()[tt.child].Size(); got != tt.extent {
				t.Errorf("child size = %v, want %v", got, tt.extent)
			}
		})
	}
}

func TestStack_MinimumGrowsSize(t *testing.T) {
	f := &leafFactory{}
	node := VStack(f.leaf("a", 10, 10)).Layout(NewConstraint(NewSize(0, 50), NewSize(100, Inf)))

	if got := node.Size(); got != NewSize(100, 50) {
		t.Errorf("size = %v, want (100, 50)", got)
	}
}

func TestStack_ConcurrentMatchesSequential(t *testing.T) {
	f := &leafFactory{}
	children := make([]Component, 0, 40)
	for i := range 40 {
		if i%7 == 0 {
			children = append(children, Flexible(f.leaf("flex", 5, float64(i)), float64(i%3+1)))
			continue
		}
		children = append(children, f.leaf("fixed", float64(i%5+1), float64(i%11+1)))
	}
	c := Loose(NewSize(500, Inf))

	seq := HStack(children...).Spacing(2).Layout(c)
	par := HStack(children...).Spacing(2).Concurrent(4).Layout(c)

	if seq.Size() != par.Size() {
		t.Fatalf("size: sequential %v, concurrent %v", seq.Size(), par.Size())
	}
	for i := range seq.Children() {
		if seq.Positions()[i] != par.Positions()[i] {
			t.Errorf("child %d position: sequential %v, concurrent %v", i, seq.Positions()[i], par.Positions()[i])
		}
		if seq.Children()[i].Size() != par.Children()[i].Size() {
			t.Errorf("child %d size: sequential %v, concurrent %v", i, seq.Children()[i].Size(), par.Children()[i].Size())
		}
	}
}

func TestStack_Empty(t *testing.T) {
	node := HStack().Layout(Loose(NewSize(300, Inf)))

	if got := node.Size(); got != (Size{}) {
		t.Errorf("size = %v, want (0, 0)", got)
	}
	if len(node.Children()) != 0 {
		t.Errorf("children = %d, want 0", len(node.Children()))
	}
}
