package compose

// DefaultReusePoolLimit is the number of idle views kept per reuse key.
const DefaultReusePoolLimit = 32

// reusePool holds detached views keyed by reuse key. It is owned by one
// engine and only touched on the engine's thread.
type reusePool struct {
	views map[string][]View
	limit int
}

func newReusePool(limit int) *reusePool {
	return &reusePool{views: make(map[string][]View), limit: limit}
}

// enqueue stores v for later reuse. It reports false when v was dropped
// because the key disables pooling or the pool for the key is full.
func (p *reusePool) enqueue(key string, v View) bool {
	if key == NoReuse || len(p.views[key]) >= p.limit {
		return false
	}
	p.views[key] = append(p.views[key], v)
	return true
}

// dequeue returns the most recently stored view for key.
func (p *reusePool) dequeue(key string) (View, bool) {
	if key == NoReuse {
		return nil, false
	}
	vs := p.views[key]
	if len(vs) == 0 {
		return nil, false
	}
	v := vs[len(vs)-1]
	vs[len(vs)-1] = nil
	p.views[key] = vs[:len(vs)-1]
	return v, true
}

func (p *reusePool) count(key string) int {
	return len(p.views[key])
}
