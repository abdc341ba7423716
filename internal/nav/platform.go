package nav

import "strings"

// Section is the geometry of one content section, in document coordinates.
type Section struct {
	ID     string
	Top    int
	Height int
}

// Document resolves sections. Sections returns them in document order.
type Document interface {
	Section(id string) (Section, bool)
	Sections() []Section
}

// Viewport reports the current window metrics.
type Viewport interface {
	Width() int
	Height() int
	ScrollY() int
	DocumentHeight() int
}

// Behavior selects how a scroll is animated.
type Behavior int

const (
	Instant Behavior = iota
	Smooth
)

// Scroller moves the window. Smooth scrolls are not cancellable by the
// caller; a later user scroll simply overrides them.
type Scroller interface {
	ScrollTo(y int, behavior Behavior)
}

// FrameScheduler runs fn before the next repaint.
type FrameScheduler interface {
	RequestFrame(fn func())
}

// ActiveLink is the "currently active" navigation link. The navigator,
// scroll-spy and keyboard controller share one instance.
type ActiveLink struct {
	id string
}

// ID returns the active section id, or "" when none is active.
func (a *ActiveLink) ID() string { return a.id }

// Set marks id active and reports whether the state changed.
func (a *ActiveLink) Set(id string) bool {
	if a.id == id {
		return false
	}
	a.id = id
	return true
}

// Layout is a static Document built from known section geometry.
type Layout []Section

func (l Layout) Sections() []Section { return l }

func (l Layout) Section(id string) (Section, bool) {
	for _, s := range l {
		if s.ID == id {
			return s, true
		}
	}
	return Section{}, false
}

// Stack lays sections out back to back from y=0 with the given heights.
func Stack(ids []string, heights []int) Layout {
	l := make(Layout, len(ids))
	top := 0
	for i, id := range ids {
		h := 0
		if i < len(heights) {
			h = heights[i]
		}
		l[i] = Section{ID: id, Top: top, Height: h}
		top += h
	}
	return l
}

// targetID normalizes an anchor href ("#about") to a section id.
func targetID(href string) string {
	return strings.TrimPrefix(strings.TrimSpace(href), "#")
}
