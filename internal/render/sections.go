package render

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ziadkadry99/folio/internal/content"
)

// SectionIDs are the page sections in document order. The navigation bar,
// scroll-spy and keyboard navigation all walk this list.
var SectionIDs = []string{
	"about",
	"experience",
	"projects",
	"thoughts",
	"philosophy",
	"consumption",
	"fun-facts",
}

// TabIDs are the tabs of the projects section, in button order.
var TabIDs = []string{"all", "projects", "community"}

// NavLink is one entry of the navigation bar.
type NavLink struct {
	ID    string
	Label string
}

// Href is the in-page anchor for the link.
func (l NavLink) Href() string { return "#" + l.ID }

// Label turns a section or tab id into its display label: "fun-facts"
// becomes "Fun Facts".
func Label(id string) string {
	// Casers are stateful, so each call gets its own.
	return cases.Title(language.English).String(strings.ReplaceAll(id, "-", " "))
}

// NavLinks returns the navigation bar entries for sections that have
// something to show. About is always present.
func NavLinks(s *content.Store) []NavLink {
	var out []NavLink
	for _, id := range SectionIDs {
		if s != nil && !sectionHasContent(s, id) {
			continue
		}
		out = append(out, NavLink{ID: id, Label: Label(id)})
	}
	return out
}

func sectionHasContent(s *content.Store, id string) bool {
	switch id {
	case "experience":
		return len(s.Experience) > 0
	case "projects":
		return len(s.Projects)+len(s.Community) > 0
	case "thoughts":
		return len(s.Thoughts) > 0
	case "philosophy":
		return s.Philosophy.Quote != "" || len(s.Philosophy.Paragraphs) > 0
	case "consumption":
		return len(s.Consumption) > 0
	case "fun-facts":
		return len(s.FunFacts) > 0
	}
	return true
}
