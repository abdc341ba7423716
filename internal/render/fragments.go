package render

import (
	"fmt"
	"html"
	"strconv"
	"strings"

	"github.com/ziadkadry99/folio/internal/content"
)

var socialLabels = map[content.Platform]string{
	content.PlatformLinkedIn:   "LinkedIn",
	content.PlatformTwitter:    "Twitter",
	content.PlatformNewsletter: "Newsletter",
	content.PlatformEmail:      "Email",
	content.PlatformResume:     "Resume",
}

func esc(s string) string { return html.EscapeString(s) }

// isExternal reports whether url leaves the site and should open in a new tab.
func isExternal(url string) bool {
	return strings.HasPrefix(url, "http")
}

func targetAttrs(url string) string {
	if isExternal(url) {
		return ` target="_blank" rel="noopener noreferrer"`
	}
	return ""
}

// link renders inner as an anchor to url. Without a url it degrades to
// plain text so no empty href is ever emitted.
func link(url, inner, class string) string {
	if url == "" {
		if class == "" {
			return inner
		}
		return `<span class="` + class + `">` + inner + `</span>`
	}
	var b strings.Builder
	b.WriteString(`<a`)
	if class != "" {
		b.WriteString(` class="` + class + `"`)
	}
	b.WriteString(` href="` + esc(url) + `"` + targetAttrs(url) + `>`)
	b.WriteString(inner)
	b.WriteString(`</a>`)
	return b.String()
}

func (r *Renderer) name(s *content.Store) (string, error) {
	return esc(s.Profile.Name), nil
}

func (r *Renderer) nameAlt(s *content.Store) (string, error) {
	return esc(s.Profile.NameAlt), nil
}

func (r *Renderer) intro(s *content.Store) (string, error) {
	return r.md.Block(s.Profile.Intro)
}

func (r *Renderer) socials(s *content.Store) (string, error) {
	var b strings.Builder
	for _, p := range content.Platforms {
		v := strings.TrimSpace(s.Socials[p])
		if v == "" {
			continue
		}
		if p == content.PlatformEmail && !strings.HasPrefix(v, "mailto:") {
			v = "mailto:" + v
		}
		b.WriteString(link(v, esc(socialLabels[p]), "social-link social-"+string(p)))
	}
	return b.String(), nil
}

func (r *Renderer) achievements(s *content.Store) (string, error) {
	var b strings.Builder
	for _, a := range s.Achievements {
		b.WriteString(`<li class="achievement">`)
		b.WriteString(Highlight(a.Text, a.Highlights))
		b.WriteString("</li>")
	}
	return b.String(), nil
}

func (r *Renderer) experience(s *content.Store) (string, error) {
	var b strings.Builder
	for _, e := range s.Experience {
		detail, err := r.md.Block(e.Detail)
		if err != nil {
			return "", fmt.Errorf("experience %q: %w", e.Title, err)
		}
		b.WriteString(`<article class="experience-item">`)
		b.WriteString(`<div class="experience-header">`)
		fmt.Fprintf(&b, `<h3 class="experience-title">%s</h3>`, esc(e.Title))
		fmt.Fprintf(&b, `<span class="experience-org">%s</span>`, link(e.OrgURL, esc(e.Org), ""))
		fmt.Fprintf(&b, `<span class="experience-dates">%s</span>`, esc(e.Dates))
		b.WriteString(`</div>`)
		if e.Summary != "" {
			fmt.Fprintf(&b, `<p class="experience-summary">%s</p>`, esc(e.Summary))
		}
		if detail != "" {
			fmt.Fprintf(&b, `<details class="experience-detail"><summary>More</summary>%s</details>`, detail)
		}
		b.WriteString(`</article>`)
	}
	return b.String(), nil
}

func (r *Renderer) entries(kind string, list []content.Entry) (string, error) {
	var b strings.Builder
	for _, e := range list {
		detail, err := r.md.Block(e.Detail)
		if err != nil {
			return "", fmt.Errorf("%s %q: %w", kind, e.Name, err)
		}
		class := "entry-card entry-" + kind
		if c := e.Color.Class(); c != "" {
			class += " " + c
		}
		fmt.Fprintf(&b, `<article class="%s">`, class)
		fmt.Fprintf(&b, `<h3 class="entry-name">%s</h3>`, link(e.URL, esc(e.Name), ""))
		if e.Summary != "" {
			fmt.Fprintf(&b, `<p class="entry-summary">%s</p>`, esc(e.Summary))
		}
		if detail != "" {
			fmt.Fprintf(&b, `<div class="entry-detail">%s</div>`, detail)
		}
		b.WriteString(`</article>`)
	}
	return b.String(), nil
}

func (r *Renderer) projects(s *content.Store) (string, error) {
	return r.entries("project", s.Projects)
}

func (r *Renderer) community(s *content.Store) (string, error) {
	return r.entries("community", s.Community)
}

// all is every project followed by every community entry.
func (r *Renderer) all(s *content.Store) (string, error) {
	p, err := r.projects(s)
	if err != nil {
		return "", err
	}
	c, err := r.community(s)
	if err != nil {
		return "", err
	}
	return p + c, nil
}

func (r *Renderer) thoughts(s *content.Store) (string, error) {
	var b strings.Builder
	for _, t := range s.Thoughts {
		b.WriteString(`<li class="thought">`)
		if t.Year != 0 {
			fmt.Fprintf(&b, `<span class="thought-year">%d</span>`, t.Year)
		}
		b.WriteString(link(t.URL, esc(t.Title), "thought-title"))
		b.WriteString(`</li>`)
	}
	return b.String(), nil
}

func (r *Renderer) philosophyQuote(s *content.Store) (string, error) {
	return esc(s.Philosophy.Quote), nil
}

func (r *Renderer) philosophy(s *content.Store) (string, error) {
	var b strings.Builder
	for i, p := range s.Philosophy.Paragraphs {
		out, err := r.md.Block(p)
		if err != nil {
			return "", fmt.Errorf("philosophy paragraph %d: %w", i, err)
		}
		b.WriteString(out)
	}
	return b.String(), nil
}

func (r *Renderer) consumption(s *content.Store) (string, error) {
	var b strings.Builder
	for _, c := range s.Consumption {
		b.WriteString(`<li class="consumption-item">`)
		if c.Category != "" {
			fmt.Fprintf(&b, `<span class="consumption-category">%s</span>`, esc(c.Category))
		}
		b.WriteString(link(c.URL, esc(c.Title), "consumption-title"))
		if c.Author != "" {
			fmt.Fprintf(&b, `<span class="consumption-author">%s</span>`, esc(c.Author))
		}
		b.WriteString(`</li>`)
	}
	return b.String(), nil
}

func (r *Renderer) funFacts(s *content.Store) (string, error) {
	var b strings.Builder
	for i, f := range s.FunFacts {
		text, err := r.md.Inline(f.Text)
		if err != nil {
			return "", fmt.Errorf("fun fact %d: %w", i, err)
		}
		b.WriteString(`<li class="fun-fact">`)
		fmt.Fprintf(&b, `<span class="fun-fact-emoji" aria-hidden="true">%s</span>`, esc(f.Emoji))
		fmt.Fprintf(&b, `<span class="fun-fact-text">%s</span>`, text)
		b.WriteString(`</li>`)
	}
	return b.String(), nil
}

// photos and calendar have a record shape but no markup yet.
func (r *Renderer) photos(s *content.Store) (string, error) {
	if len(s.Photos) > 0 {
		r.logger.Debug("photos are not rendered yet")
	}
	return "", nil
}

func (r *Renderer) calendar(s *content.Store) (string, error) {
	if len(s.Calendar) > 0 {
		r.logger.Debug("calendar is not rendered yet")
	}
	return "", nil
}

func (r *Renderer) year(*content.Store) (string, error) {
	return strconv.Itoa(r.now().Year()), nil
}
