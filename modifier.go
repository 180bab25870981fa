package compose

// contextComponent attaches context entries to whatever its child lays out.
type contextComponent struct {
	child Component
	ctx   Context
}

func (m contextComponent) Layout(c Constraint) RenderNode {
	return withContext(layoutChild(m.child, c), m.ctx)
}

// Keyed gives child a stable identity key. Views with the same key are
// matched across render passes. The key reaches a view through wrappers
// (insets, offsets, other modifiers) but is not inherited by the children
// of a container.
func Keyed(key string, child Component) Component {
	return contextComponent{child: child, ctx: Context{ContextID: key}}
}

// Animated sets the animator used for every view below child.
func Animated(animator Animator, child Component) Component {
	return contextComponent{child: child, ctx: Context{ContextAnimator: animator}}
}

// Reuse sets the reuse-pool key for every view below child. NoReuse
// disables pooling.
func Reuse(reuseKey string, child Component) Component {
	return contextComponent{child: child, ctx: Context{ContextReuseKey: reuseKey}}
}

// WithContextValue attaches an arbitrary context entry to child.
func WithContextValue(key ContextKey, value any, child Component) Component {
	return contextComponent{child: child, ctx: Context{key: value}}
}

// AnimateInsert overrides only the insertion animation of views below child.
func AnimateInsert(child Component, fn func(host Host, view View, frame Rect)) Component {
	return animateWith(child, func(w *WrapperAnimator) { w.OnInsert = fn })
}

// AnimateUpdate overrides only the update animation of views below child.
func AnimateUpdate(child Component, fn func(host Host, view View, frame Rect)) Component {
	return animateWith(child, func(w *WrapperAnimator) { w.OnUpdate = fn })
}

// AnimateDelete overrides only the deletion animation of views below child.
// fn must call completion exactly once when the view may be removed.
func AnimateDelete(child Component, fn func(host Host, view View, completion func())) Component {
	return animateWith(child, func(w *WrapperAnimator) { w.OnDelete = fn })
}

// animateWith wraps the animator already set on child's node, if any.
func animateWith(child Component, set func(w *WrapperAnimator)) Component {
	return ComponentFunc(func(c Constraint) RenderNode {
		node := layoutChild(child, c)
		w := &WrapperAnimator{Base: node.Context().Animator()}
		set(w)
		return withContext(node, Context{ContextAnimator: w})
	})
}
