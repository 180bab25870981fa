package compose

// Animator applies frame changes to views. Engines call Insert for new
// views, Update for every visible view on each pass, Shift when a reload
// moved the content offset, and Delete for views that left the window.
//
// Delete must eventually call completion exactly once; the engine removes
// the view from its host and recycles it only then. Until completion runs
// the view stays in the host, so a deletion may outlive the pass that
// started it.
type Animator interface {
	Insert(host Host, view View, frame Rect)
	Update(host Host, view View, frame Rect)
	Delete(host Host, view View, completion func())
	Shift(host Host, delta Point, view View)
}

// DefaultAnimator applies every change immediately.
type DefaultAnimator struct{}

var _ Animator = DefaultAnimator{}

func (DefaultAnimator) Insert(_ Host, view View, frame Rect) {
	view.SetFrame(frame)
}

func (DefaultAnimator) Update(_ Host, view View, frame Rect) {
	if view.Frame() != frame {
		view.SetFrame(frame)
	}
}

func (DefaultAnimator) Delete(_ Host, _ View, completion func()) {
	completion()
}

func (DefaultAnimator) Shift(_ Host, delta Point, view View) {
	view.SetFrame(view.Frame().Offset(delta))
}

// WrapperAnimator overrides individual operations of a base animator. Nil
// hooks fall through to Base, and a nil Base behaves as DefaultAnimator.
type WrapperAnimator struct {
	Base     Animator
	OnInsert func(host Host, view View, frame Rect)
	OnUpdate func(host Host, view View, frame Rect)
	OnDelete func(host Host, view View, completion func())
	OnShift  func(host Host, delta Point, view View)
}

var _ Animator = (*WrapperAnimator)(nil)

func (w *WrapperAnimator) base() Animator {
	if w.Base == nil {
		return DefaultAnimator{}
	}
	return w.Base
}

func (w *WrapperAnimator) Insert(host Host, view View, frame Rect) {
	if w.OnInsert != nil {
		w.OnInsert(host, view, frame)
		return
	}
	w.base().Insert(host, view, frame)
}

func (w *WrapperAnimator) Update(host Host, view View, frame Rect) {
	if w.OnUpdate != nil {
		w.OnUpdate(host, view, frame)
		return
	}
	w.base().Update(host, view, frame)
}

func (w *WrapperAnimator) Delete(host Host, view View, completion func()) {
	if w.OnDelete != nil {
		w.OnDelete(host, view, completion)
		return
	}
	w.base().Delete(host, view, completion)
}

func (w *WrapperAnimator) Shift(host Host, delta Point, view View) {
	if w.OnShift != nil {
		w.OnShift(host, delta, view)
		return
	}
	w.base().Shift(host, delta, view)
}
