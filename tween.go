package compose

// Ticker is advanced once per loop tick.
type Ticker interface {
	Advance()
}

// TweenAnimator moves views to their new frames over a fixed number of
// ticks and holds deleted views on screen for the same duration. Attach it
// to a Loop so it is advanced every tick.
type TweenAnimator struct {
	steps   int
	tweens  map[View]*tween
	deletes []*pendingDelete
}

type tween struct {
	from, to Rect
	step     int
}

type pendingDelete struct {
	view       View
	remaining  int
	completion func()
}

var (
	_ Animator = (*TweenAnimator)(nil)
	_ Ticker   = (*TweenAnimator)(nil)
)

// NewTweenAnimator creates an animator whose transitions take steps ticks.
func NewTweenAnimator(steps int) *TweenAnimator {
	return &TweenAnimator{steps: max(1, steps), tweens: make(map[View]*tween)}
}

// Insert places the view at its frame immediately.
func (t *TweenAnimator) Insert(_ Host, view View, frame Rect) {
	delete(t.tweens, view)
	view.SetFrame(frame)
}

// Update starts or retargets a transition towards frame.
func (t *TweenAnimator) Update(_ Host, view View, frame Rect) {
	if tw, ok := t.tweens[view]; ok {
		if tw.to != frame {
			*tw = tween{from: view.Frame(), to: frame}
		}
		return
	}
	if view.Frame() == frame {
		return
	}
	t.tweens[view] = &tween{from: view.Frame(), to: frame}
}

// Delete keeps the view for steps ticks, then calls completion.
func (t *TweenAnimator) Delete(_ Host, view View, completion func()) {
	delete(t.tweens, view)
	t.deletes = append(t.deletes, &pendingDelete{view: view, remaining: t.steps, completion: completion})
}

// Shift moves the view and any transition in flight by delta.
func (t *TweenAnimator) Shift(_ Host, delta Point, view View) {
	view.SetFrame(view.Frame().Offset(delta))
	if tw, ok := t.tweens[view]; ok {
		tw.from = tw.from.Offset(delta)
		tw.to = tw.to.Offset(delta)
	}
}

// Advance moves every transition one step and completes expired deletions.
func (t *TweenAnimator) Advance() {
	for view, tw := range t.tweens {
		tw.step++
		if tw.step >= t.steps {
			view.SetFrame(tw.to)
			delete(t.tweens, view)
			continue
		}
		view.SetFrame(lerpRect(tw.from, tw.to, float64(tw.step)/float64(t.steps)))
	}

	live := t.deletes[:0]
	var done []*pendingDelete
	for _, d := range t.deletes {
		d.remaining--
		if d.remaining <= 0 {
			done = append(done, d)
			continue
		}
		live = append(live, d)
	}
	t.deletes = live
	for _, d := range done {
		d.completion()
	}
}

// Active reports whether any transition or deletion is in flight.
func (t *TweenAnimator) Active() bool {
	return len(t.tweens) > 0 || len(t.deletes) > 0
}

func lerpRect(a, b Rect, f float64) Rect {
	lerp := func(x, y float64) float64 { return x + (y-x)*f }
	return Rect{
		X:      lerp(a.X, b.X),
		Y:      lerp(a.Y, b.Y),
		Width:  lerp(a.Width, b.Width),
		Height: lerp(a.Height, b.Height),
	}
}
