package compose

// ContextKey names an entry in a render node's Context.
type ContextKey string

const (
	// ContextID is the identity key used to match renderables across passes.
	ContextID ContextKey = "id"
	// ContextAnimator overrides the engine's animator for a subtree.
	ContextAnimator ContextKey = "animator"
	// ContextReuseKey overrides the reuse-pool key for a subtree.
	ContextReuseKey ContextKey = "reuseKey"
)

// NoReuse is the reuse key that disables pooling of a view.
const NoReuse = ""

// Context holds free-form key/value overrides attached to a render node.
// A Context is never mutated after creation; Merge returns a new value.
type Context map[ContextKey]any

// Merge returns a Context holding c's entries with overrides applied on top.
func (c Context) Merge(overrides Context) Context {
	if len(overrides) == 0 {
		return c
	}
	if len(c) == 0 {
		return overrides
	}
	out := make(Context, len(c)+len(overrides))
	for k, v := range c {
		out[k] = v
	}
	for k, v := range overrides {
		out[k] = v
	}
	return out
}

// With returns a copy of c with key set to value.
func (c Context) With(key ContextKey, value any) Context {
	return c.Merge(Context{key: value})
}

// ID returns the identity key, if set.
func (c Context) ID() (string, bool) {
	id, ok := c[ContextID].(string)
	return id, ok
}

// Animator returns the animator override, if set.
func (c Context) Animator() Animator {
	a, _ := c[ContextAnimator].(Animator)
	return a
}

// ReuseKey returns the reuse key override, if set.
func (c Context) ReuseKey() (string, bool) {
	k, ok := c[ContextReuseKey].(string)
	return k, ok
}

// inheritable drops the entries that only apply to the node they are set on.
// An identity key names one node; animators and reuse keys flow to every
// leaf below.
func (c Context) inheritable() Context {
	if _, ok := c[ContextID]; !ok {
		return c
	}
	out := make(Context, len(c))
	for k, v := range c {
		if k != ContextID {
			out[k] = v
		}
	}
	return out
}
