package nav

// Navigator handles clicks on anchor navigation links.
type Navigator struct {
	cfg      Config
	doc      Document
	view     Viewport
	scroller Scroller
	active   *ActiveLink
}

// NewNavigator wires a Navigator to its collaborators.
func NewNavigator(cfg Config, doc Document, view Viewport, scroller Scroller, active *ActiveLink) *Navigator {
	return &Navigator{cfg: cfg, doc: doc, view: view, scroller: scroller, active: active}
}

// Offset is the fixed-header compensation for a viewport width: zero on
// desktop, MobileHeaderOffset at or below the breakpoint.
func (n *Navigator) Offset(width int) int {
	if n.cfg.IsMobile(width) {
		return n.cfg.MobileHeaderOffset
	}
	return 0
}

// Click scrolls smoothly to the section named by href ("#id" or "id") and
// marks its link active right away, before the scroll-spy catches up.
// An unknown target is a no-op and reports false.
func (n *Navigator) Click(href string) bool {
	id := targetID(href)
	sec, ok := n.doc.Section(id)
	if !ok {
		return false
	}
	n.scroller.ScrollTo(sec.Top-n.Offset(n.view.Width()), Smooth)
	n.active.Set(id)
	return true
}
