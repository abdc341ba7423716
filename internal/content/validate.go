package content

import (
	"fmt"
	"strings"
)

// Warning is a non-fatal problem found in the content. Rendering still
// succeeds; the affected piece degrades to plain or unstyled text.
type Warning struct {
	Path    string
	Message string
}

func (w Warning) String() string {
	return w.Path + ": " + w.Message
}

// Validate inspects the store and reports everything that will render
// degraded. It never rejects content.
func (s *Store) Validate() []Warning {
	if s == nil {
		return []Warning{{Path: "", Message: "content store is empty"}}
	}

	var ws []Warning
	add := func(path, format string, args ...any) {
		ws = append(ws, Warning{Path: path, Message: fmt.Sprintf(format, args...)})
	}

	if strings.TrimSpace(s.Profile.Name) == "" {
		add("profile.name", "name is empty")
	}

	known := make(map[Platform]bool, len(Platforms))
	for _, p := range Platforms {
		known[p] = true
	}
	for p, v := range s.Socials {
		if !known[p] {
			add("socials."+string(p), "unknown platform, it will not be rendered")
			continue
		}
		if strings.TrimSpace(v) == "" {
			add("socials."+string(p), "empty address")
		}
	}

	for i, a := range s.Achievements {
		for j, h := range a.Highlights {
			path := fmt.Sprintf("achievements[%d].highlights[%d]", i, j)
			if h.Word == "" {
				add(path, "empty highlight word")
				continue
			}
			if !h.Color.Valid() {
				add(path, "unknown color %q, highlight will be unstyled", h.Color)
			}
			if h.Start != nil {
				st := *h.Start
				if st < 0 || st > len(a.Text)-len(h.Word) || a.Text[st:st+len(h.Word)] != h.Word {
					add(path, "word %q not found at offset %d", h.Word, st)
				}
			} else if !strings.Contains(a.Text, h.Word) {
				add(path, "word %q not found in text", h.Word)
			}
		}
	}

	for i, e := range s.Experience {
		if e.OrgURL == "" {
			add(fmt.Sprintf("experience[%d].org_url", i), "missing url, organization renders as plain text")
		}
	}
	checkEntries := func(name string, entries []Entry) {
		for i, e := range entries {
			path := fmt.Sprintf("%s[%d]", name, i)
			if e.URL == "" {
				add(path+".url", "missing url, entry renders as plain text")
			}
			if e.Color != "" && !e.Color.Valid() {
				add(path+".color", "unknown color %q", e.Color)
			}
		}
	}
	checkEntries("projects", s.Projects)
	checkEntries("community", s.Community)

	for i, t := range s.Thoughts {
		if t.URL == "" {
			add(fmt.Sprintf("thoughts[%d].url", i), "missing url, title renders as plain text")
		}
	}
	for i, c := range s.Consumption {
		if c.URL == "" {
			add(fmt.Sprintf("consumption[%d].url", i), "missing url, title renders as plain text")
		}
	}

	return ws
}
