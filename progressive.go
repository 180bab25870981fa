package compose

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/grindlemire/go-compose/internal/debug"
)

// Scheduler runs work on the UI thread after the current tick.
type Scheduler interface {
	Defer(fn func())
}

// Queuer accepts work from any goroutine to run on the UI thread.
type Queuer interface {
	QueueUpdate(fn func())
}

type progressiveKey struct {
	key string
	c   Constraint
}

// ProgressiveCache remembers render nodes of expensive content so that
// Progressive components can show a placeholder first and the real layout
// on a later pass.
type ProgressiveCache struct {
	scheduler Scheduler
	onReady   func(key string)

	mu      sync.Mutex
	entries map[progressiveKey]RenderNode
	pending map[progressiveKey]struct{}
}

// NewProgressiveCache creates a cache that defers layout work through s.
// onReady is called on the UI thread whenever a new layout is stored; it
// typically marks an engine as needing a reload.
func NewProgressiveCache(s Scheduler, onReady func(key string)) *ProgressiveCache {
	return &ProgressiveCache{
		scheduler: s,
		onReady:   onReady,
		entries:   make(map[progressiveKey]RenderNode),
		pending:   make(map[progressiveKey]struct{}),
	}
}

// Lookup returns the cached node for key laid out against c.
func (pc *ProgressiveCache) Lookup(key string, c Constraint) (RenderNode, bool) {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	node, ok := pc.entries[progressiveKey{key, c}]
	return node, ok
}

// Store caches node and notifies onReady.
func (pc *ProgressiveCache) Store(key string, c Constraint, node RenderNode) {
	pc.mu.Lock()
	pk := progressiveKey{key, c}
	pc.entries[pk] = node
	delete(pc.pending, pk)
	pc.mu.Unlock()

	if pc.onReady != nil {
		pc.onReady(key)
	}
}

// Invalidate drops every cached layout of key.
func (pc *ProgressiveCache) Invalidate(key string) {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	for pk := range pc.entries {
		if pk.key == key {
			delete(pc.entries, pk)
		}
	}
}

// Len returns the number of cached layouts.
func (pc *ProgressiveCache) Len() int {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	return len(pc.entries)
}

// request schedules a deferred layout of content unless one is pending.
func (pc *ProgressiveCache) request(key string, c Constraint, content func() Component) {
	pk := progressiveKey{key, c}
	pc.mu.Lock()
	if _, busy := pc.pending[pk]; busy {
		pc.mu.Unlock()
		return
	}
	pc.pending[pk] = struct{}{}
	pc.mu.Unlock()

	pc.scheduler.Defer(func() {
		pc.Store(key, c, layoutChild(content(), c))
	})
}

// ProgressiveJob is one layout to compute ahead of time.
type ProgressiveJob struct {
	Key        string
	Constraint Constraint
	Content    Component
}

// Preload lays jobs out on up to limit goroutines and hands each result
// back through q, so Store and onReady run on the UI thread. Content laid
// out here must not touch UI state. Preload returns when every job has been
// queued or ctx is done.
func (pc *ProgressiveCache) Preload(ctx context.Context, q Queuer, limit int, jobs []ProgressiveJob) error {
	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for _, job := range jobs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			node := layoutChild(job.Content, job.Constraint)
			q.QueueUpdate(func() {
				pc.Store(job.Key, job.Constraint, node)
			})
			return nil
		})
	}
	err := g.Wait()
	if err != nil {
		debug.Warnf("progressive preload stopped: %v", err)
	}
	return err
}

// ProgressiveComponent shows a placeholder until its content's layout has
// been computed on a later tick.
type ProgressiveComponent struct {
	cache       *ProgressiveCache
	key         string
	placeholder Component
	content     func() Component
}

// Progressive creates a component keyed by key in cache. content is called
// only when the layout is actually computed.
func Progressive(cache *ProgressiveCache, key string, placeholder Component, content func() Component) ProgressiveComponent {
	return ProgressiveComponent{cache: cache, key: key, placeholder: placeholder, content: content}
}

// Layout returns the cached layout for c, or lays out the placeholder and
// schedules the real layout.
func (p ProgressiveComponent) Layout(c Constraint) RenderNode {
	if node, ok := p.cache.Lookup(p.key, c); ok {
		return node
	}
	p.cache.request(p.key, c, p.content)
	return layoutChild(p.placeholder, c)
}
