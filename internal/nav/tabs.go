package nav

// PanelID returns the id of the panel shown by the given tab.
func PanelID(tab string) string {
	return tab + "-panel"
}

// Tabs toggles a set of mutually exclusive panels. Exactly one tab is
// active at a time.
type Tabs struct {
	ids    []string
	active string
}

// NewTabs creates a tab set. An unknown initial tab falls back to the first.
func NewTabs(ids []string, initial string) *Tabs {
	t := &Tabs{ids: append([]string(nil), ids...)}
	if t.has(initial) {
		t.active = initial
	} else if len(ids) > 0 {
		t.active = ids[0]
	}
	return t
}

func (t *Tabs) has(id string) bool {
	for _, v := range t.ids {
		if v == id {
			return true
		}
	}
	return false
}

// Activate makes id the active tab and reports whether anything changed.
// Unknown ids and re-activating the current tab are no-ops.
func (t *Tabs) Activate(id string) bool {
	if id == t.active || !t.has(id) {
		return false
	}
	t.active = id
	return true
}

// Active returns the active tab id.
func (t *Tabs) Active() string { return t.active }

// IDs returns the tab ids in display order.
func (t *Tabs) IDs() []string { return append([]string(nil), t.ids...) }

// Visible returns the ids of the visible panels.
func (t *Tabs) Visible() []string {
	if t.active == "" {
		return nil
	}
	return []string{PanelID(t.active)}
}
