package compose

import (
	"math"
	"strconv"
	"testing"

	"github.com/grindlemire/go-compose/internal/debug"
)

// leafFactory builds mock-backed leaves and counts what the engine does
// with them.
type leafFactory struct {
	MockMaker
	updates int
}

func (f *leafFactory) leaf(kind string, w, h float64, opts ...ViewOption) *ViewComponent {
	return NewView(kind, f.Make(kind), func(View) { f.updates++ }, append([]ViewOption{WithSize(w, h)}, opts...)...)
}

func (f *leafFactory) text(kind, text string, w, h float64) *ViewComponent {
	return NewView(kind, f.Make(kind), func(v View) {
		f.updates++
		v.(*MockView).Text = text
	}, WithSize(w, h))
}

// rows builds n keyed leaves of the given height named prefix-i.
func (f *leafFactory) rows(prefix string, n int, h float64) []Component {
	return Repeat(n, func(i int) Component {
		return Keyed(prefix+"-"+strconv.Itoa(i), f.leaf("row", 100, h))
	})
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func approxPoint(a, b Point) bool {
	return approx(a.X, b.X) && approx(a.Y, b.Y)
}

// setStrict switches assertion mode for the duration of a test.
func setStrict(t *testing.T, on bool) {
	t.Helper()
	t.Cleanup(debug.SetStrict(on))
}

// expectContractPanic fails the test unless fn panics with a contract error.
func expectContractPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if _, ok := r.(*debug.ContractError); !ok {
			t.Fatalf("expected contract panic, got %v", r)
		}
	}()
	fn()
}

func keysAndFrames(rs []Renderable) ([]string, []Rect) {
	keys := make([]string, len(rs))
	frames := make([]Rect, len(rs))
	for i, r := range rs {
		keys[i] = r.Key
		frames[i] = r.Frame
	}
	return keys, frames
}
