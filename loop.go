package compose

import (
	"context"
	"sync"
	"time"

	"github.com/grindlemire/go-compose/internal/debug"
)

// Loop is a single-threaded frame loop driving one or more engines. Work
// from other goroutines enters through QueueUpdate; work scheduled from
// the loop itself through Defer runs on the following tick.
type Loop struct {
	engines []*Engine
	tickers []Ticker

	queue chan func()

	deferMu  sync.Mutex
	deferred []func()

	frameDuration time.Duration
	queueSize     int
	ticks         int

	stopCh   chan struct{}
	stopOnce sync.Once
}

var (
	_ Scheduler = (*Loop)(nil)
	_ Queuer    = (*Loop)(nil)
)

// NewLoop creates a loop. Defaults are 60 fps and a queue of 256.
func NewLoop(opts ...LoopOption) (*Loop, error) {
	l := &Loop{
		frameDuration: time.Second / 60,
		queueSize:     256,
		stopCh:        make(chan struct{}),
	}
	for _, opt := range opts {
		if err := opt(l); err != nil {
			return nil, err
		}
	}
	l.queue = make(chan func(), l.queueSize)
	return l, nil
}

// Attach adds an engine laid out on every tick.
func (l *Loop) Attach(e *Engine) {
	l.engines = append(l.engines, e)
}

// AttachTicker adds a ticker (such as a TweenAnimator) advanced on every tick.
func (l *Loop) AttachTicker(t Ticker) {
	l.tickers = append(l.tickers, t)
}

// QueueUpdate enqueues fn to run on the loop. Safe to call from any
// goroutine. It blocks while the queue is full and drops fn once the loop
// is stopped; never call it from the loop itself, use Defer there.
func (l *Loop) QueueUpdate(fn func()) {
	select {
	case l.queue <- fn:
	case <-l.stopCh:
	}
}

// Defer schedules fn for the start of the next tick. Safe to call from
// layout running on other goroutines, such as a concurrent Stack.
func (l *Loop) Defer(fn func()) {
	l.deferMu.Lock()
	l.deferred = append(l.deferred, fn)
	l.deferMu.Unlock()
}

// Tick runs one frame: deferred work, queued updates, tickers, then any
// pending engine passes.
func (l *Loop) Tick() {
	l.ticks++

	l.deferMu.Lock()
	deferred := l.deferred
	l.deferred = nil
	l.deferMu.Unlock()
	for _, fn := range deferred {
		fn()
	}

drain:
	for {
		select {
		case fn := <-l.queue:
			fn()
		default:
			break drain
		}
	}

	for _, t := range l.tickers {
		t.Advance()
	}
	for _, e := range l.engines {
		e.LayoutIfNeeded()
	}
}

// Ticks returns how many ticks have run.
func (l *Loop) Ticks() int { return l.ticks }

// Run ticks at the configured frame rate until Stop is called or ctx is
// done. It returns ctx.Err() when ctx ended the loop.
func (l *Loop) Run(ctx context.Context) error {
	debug.Log("loop: running at %v per frame", l.frameDuration)
	for {
		frameStart := time.Now()
		l.Tick()

		wait := l.frameDuration - time.Since(frameStart)
		if wait < 0 {
			wait = 0
		}
		select {
		case <-time.After(wait):
		case <-l.stopCh:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Stop ends Run. Stop is idempotent.
func (l *Loop) Stop() {
	l.stopOnce.Do(func() {
		close(l.stopCh)
	})
}
