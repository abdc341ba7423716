package nav

// Page bundles the controllers of one document around a shared active link.
type Page struct {
	Active    *ActiveLink
	Navigator *Navigator
	Spy       *ScrollSpy
	Tabs      *Tabs
	Keyboard  *Keyboard
}

// NewPage builds every controller for a document. Call Init once the
// content has been rendered and before handling events.
func NewPage(cfg Config, doc Document, view Viewport, scroller Scroller, frames FrameScheduler, tabIDs []string) *Page {
	active := &ActiveLink{}
	n := NewNavigator(cfg, doc, view, scroller, active)
	return &Page{
		Active:    active,
		Navigator: n,
		Spy:       NewScrollSpy(cfg, doc, view, frames, active),
		Tabs:      NewTabs(tabIDs, cfg.DefaultTab),
		Keyboard:  NewKeyboard(cfg, doc, n, active),
	}
}

// Init runs the scroll-spy once so the initial active link is correct
// without user interaction.
func (p *Page) Init() {
	p.Spy.Init()
}
