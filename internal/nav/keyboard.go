package nav

// Keyboard moves between sections with the next/previous keys.
//
// The current position comes from the active link, not the scroll offset,
// so after a manual scroll that the spy has not yet reflected the keys
// move relative to the last known link.
type Keyboard struct {
	cfg    Config
	doc    Document
	nav    *Navigator
	active *ActiveLink
}

// NewKeyboard wires a Keyboard to the navigator it delegates scrolling to.
func NewKeyboard(cfg Config, doc Document, nav *Navigator, active *ActiveLink) *Keyboard {
	return &Keyboard{cfg: cfg, doc: doc, nav: nav, active: active}
}

// OnKey handles a keydown and reports whether it caused a scroll. Keys typed
// into a text input are ignored.
func (k *Keyboard) OnKey(key string, inTextInput bool) bool {
	if inTextInput {
		return false
	}

	var step int
	switch key {
	case k.cfg.NextKey:
		step = 1
	case k.cfg.PrevKey:
		step = -1
	default:
		return false
	}

	sections := k.doc.Sections()
	current := -1
	for i, s := range sections {
		if s.ID == k.active.ID() {
			current = i
			break
		}
	}

	next := current + step
	if next < 0 || next >= len(sections) {
		return false
	}
	return k.nav.Click(sections[next].ID)
}
