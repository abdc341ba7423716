package nav

// Position is a snapshot of the viewport used for section selection.
type Position struct {
	ScrollY        int
	ViewportWidth  int
	ViewportHeight int
	DocumentHeight int
}

// SpyOffset is the header allowance used by the scroll-spy. Mobile layouts
// have a taller fixed header, so the offset is larger there.
func (c Config) SpyOffset(width int) int {
	if c.IsMobile(width) {
		return c.SpyOffsetMobile
	}
	return c.SpyOffsetDesktop
}

// SelectSection picks the section the reader is looking at:
//
//  1. within BottomThreshold of the document end, the last section;
//  2. otherwise the last section whose offset-adjusted extent contains ScrollY;
//  3. otherwise, within TopThreshold of the top, the first section.
//
// ok is false when nothing qualifies and the active link should not change.
func (c Config) SelectSection(sections []Section, p Position) (id string, ok bool) {
	if len(sections) == 0 {
		return "", false
	}
	if p.ScrollY+p.ViewportHeight >= p.DocumentHeight-c.BottomThreshold {
		return sections[len(sections)-1].ID, true
	}

	offset := c.SpyOffset(p.ViewportWidth)
	for _, s := range sections {
		top := s.Top - offset
		if top <= p.ScrollY && p.ScrollY < top+s.Height {
			id, ok = s.ID, true
		}
	}
	if ok {
		return id, true
	}

	if p.ScrollY < c.TopThreshold {
		return sections[0].ID, true
	}
	return "", false
}

// ScrollSpy keeps the active link in step with the scroll position,
// recomputing at most once per animation frame.
type ScrollSpy struct {
	cfg     Config
	doc     Document
	view    Viewport
	frames  FrameScheduler
	active  *ActiveLink
	pending bool
}

// NewScrollSpy wires a ScrollSpy to its collaborators.
func NewScrollSpy(cfg Config, doc Document, view Viewport, frames FrameScheduler, active *ActiveLink) *ScrollSpy {
	return &ScrollSpy{cfg: cfg, doc: doc, view: view, frames: frames, active: active}
}

// Init computes the initial active link before any scroll event arrives.
func (s *ScrollSpy) Init() {
	s.Update()
}

// OnScroll handles a scroll or resize event. If a frame is already pending
// the event is dropped, not queued, and OnScroll reports false.
func (s *ScrollSpy) OnScroll() bool {
	if s.pending {
		return false
	}
	s.pending = true
	s.frames.RequestFrame(func() {
		s.pending = false
		s.Update()
	})
	return true
}

// Update recomputes the active link from the current viewport.
func (s *ScrollSpy) Update() {
	id, ok := s.cfg.SelectSection(s.doc.Sections(), Position{
		ScrollY:        s.view.ScrollY(),
		ViewportWidth:  s.view.Width(),
		ViewportHeight: s.view.Height(),
		DocumentHeight: s.view.DocumentHeight(),
	})
	if ok {
		s.active.Set(id)
	}
}
