package compose

import "slices"

// MockView is a View that records what the engine did to it.
type MockView struct {
	// Kind is the reuse key the view was made for.
	Kind string
	// Serial numbers views in the order they were made by a MockMaker.
	Serial int
	// Text is free-form content pushed by update functions.
	Text string

	frame      Rect
	frameSets  int
	frameTrail []Rect
}

// Ensure MockView implements View.
var _ View = (*MockView)(nil)

// Frame returns the current frame.
func (v *MockView) Frame() Rect { return v.frame }

// SetFrame records and applies frame.
func (v *MockView) SetFrame(frame Rect) {
	v.frame = frame
	v.frameSets++
	v.frameTrail = append(v.frameTrail, frame)
}

// FrameSets returns how many times SetFrame was called.
func (v *MockView) FrameSets() int { return v.frameSets }

// FrameTrail returns every frame set on the view, oldest first.
func (v *MockView) FrameTrail() []Rect { return append([]Rect(nil), v.frameTrail...) }

// MockMaker counts the views it makes.
type MockMaker struct {
	made int
}

// Make returns a constructor for views of kind.
func (m *MockMaker) Make(kind string) func() View {
	return func() View {
		m.made++
		return &MockView{Kind: kind, Serial: m.made}
	}
}

// Made returns how many views have been constructed.
func (m *MockMaker) Made() int { return m.made }

// MockHost is a Host that keeps its views in an ordered slice.
type MockHost struct {
	views   []View
	inserts int
	removes int
}

// Ensure MockHost implements Host.
var _ Host = (*MockHost)(nil)

// NewMockHost creates an empty host.
func NewMockHost() *MockHost {
	return &MockHost{}
}

// InsertView places v at index, moving it if already present.
func (h *MockHost) InsertView(v View, index int) {
	if i := slices.Index(h.views, v); i >= 0 {
		h.views = slices.Delete(h.views, i, i+1)
	} else {
		h.inserts++
	}
	index = min(max(index, 0), len(h.views))
	h.views = slices.Insert(h.views, index, v)
}

// RemoveView detaches v.
func (h *MockHost) RemoveView(v View) {
	if i := slices.Index(h.views, v); i >= 0 {
		h.views = slices.Delete(h.views, i, i+1)
		h.removes++
	}
}

// Views returns the attached views in order.
func (h *MockHost) Views() []View { return append([]View(nil), h.views...) }

// Len returns the number of attached views.
func (h *MockHost) Len() int { return len(h.views) }

// Contains reports whether v is attached.
func (h *MockHost) Contains(v View) bool { return slices.Contains(h.views, v) }

// Counts returns how many views were newly attached and removed.
func (h *MockHost) Counts() (inserts, removes int) { return h.inserts, h.removes }
