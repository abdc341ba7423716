package render

import (
	"sort"
	"strings"

	"github.com/ziadkadry99/folio/internal/content"
)

type span struct {
	start, end int
}

func (s span) overlaps(o span) bool {
	return s.start < o.end && o.start < s.end
}

// element is a region of markup the highlighter must not wrap inside: a
// tag, or a whole <a>/<span> element together with its text. wrapper is
// set for elements carrying the highlight class, which Highlight itself
// emits.
type element struct {
	span
	inner   string
	wrapper bool
}

// Highlight wraps the words named by hs in colored links.
//
// Descriptors apply in order. Without a Start offset the first textual
// occurrence wins, even inside a longer word. Occurrences already inside
// an <a> or <span> are skipped, so a repeated descriptor for the same word
// takes the next occurrence. A word already wrapped in a highlight element
// counts as applied, which makes Highlight idempotent; the author's own
// links only block the occurrence they contain. Words that cannot be
// placed leave the text unchanged.
func Highlight(text string, hs []content.Highlight) string {
	if len(hs) == 0 || text == "" {
		return text
	}

	elems := scanElements(text)
	applied := make(map[string]int)
	for _, e := range elems {
		if e.wrapper {
			applied[e.inner]++
		}
	}

	type claim struct {
		span
		h content.Highlight
	}
	var claims []claim
	free := func(sp span) bool {
		for _, e := range elems {
			if sp.overlaps(e.span) {
				return false
			}
		}
		for _, c := range claims {
			if sp.overlaps(c.span) {
				return false
			}
		}
		return true
	}

	for _, h := range hs {
		w := h.Word
		if w == "" {
			continue
		}
		if applied[w] > 0 {
			applied[w]--
			continue
		}

		found := -1
		if h.Start != nil {
			st := *h.Start
			if st >= 0 && st <= len(text)-len(w) && text[st:st+len(w)] == w && free(span{st, st + len(w)}) {
				found = st
			}
		} else {
			for from := 0; from <= len(text)-len(w); {
				i := strings.Index(text[from:], w)
				if i < 0 {
					break
				}
				i += from
				if free(span{i, i + len(w)}) {
					found = i
					break
				}
				from = i + 1
			}
		}
		if found < 0 {
			continue
		}
		claims = append(claims, claim{span{found, found + len(w)}, h})
	}

	if len(claims) == 0 {
		return text
	}
	sort.Slice(claims, func(i, j int) bool { return claims[i].start < claims[j].start })

	var b strings.Builder
	last := 0
	for _, c := range claims {
		b.WriteString(text[last:c.start])
		b.WriteString(wrapWord(text[c.start:c.end], c.h))
		last = c.end
	}
	b.WriteString(text[last:])
	return b.String()
}

// wrapWord renders one highlighted word. The word is trusted HTML like the
// rest of the achievement text, so it is not escaped.
func wrapWord(word string, h content.Highlight) string {
	class := "highlight"
	if c := h.Color.Class(); c != "" {
		class += " " + c
	}
	if h.URL == "" {
		return `<span class="` + class + `">` + word + `</span>`
	}
	return `<a class="` + class + `" href="` + esc(h.URL) + `"` + targetAttrs(h.URL) + `>` + word + `</a>`
}

// scanElements finds every tag in s. <a> and <span> elements are extended
// to their closing tag; nesting is not tracked.
func scanElements(s string) []element {
	var out []element
	i := 0
	for i < len(s) {
		lt := strings.IndexByte(s[i:], '<')
		if lt < 0 {
			break
		}
		lt += i
		gt := strings.IndexByte(s[lt:], '>')
		if gt < 0 {
			out = append(out, element{span: span{lt, len(s)}})
			break
		}
		gt += lt
		end := gt + 1

		e := element{}
		if name := tagName(s[lt+1 : gt]); name == "a" || name == "span" {
			closing := "</" + name + ">"
			if c := strings.Index(s[end:], closing); c >= 0 {
				e.inner = s[end : end+c]
				e.wrapper = hasHighlightClass(s[lt+1 : gt])
				end += c + len(closing)
			}
		}
		e.span = span{lt, end}
		out = append(out, e)
		i = end
	}
	return out
}

func tagName(tag string) string {
	end := strings.IndexAny(tag, " \t\n/>")
	if end < 0 {
		end = len(tag)
	}
	return strings.ToLower(tag[:end])
}

// hasHighlightClass reports whether an opening tag's class attribute lists
// "highlight".
func hasHighlightClass(tag string) bool {
	i := strings.Index(tag, "class=")
	if i < 0 {
		return false
	}
	v := tag[i+len("class="):]
	if v == "" {
		return false
	}
	if q := v[0]; q == '"' || q == '\'' {
		v = v[1:]
		if end := strings.IndexByte(v, q); end >= 0 {
			v = v[:end]
		}
	} else if end := strings.IndexAny(v, " \t\n>"); end >= 0 {
		v = v[:end]
	}
	for _, c := range strings.Fields(v) {
		if c == "highlight" {
			return true
		}
	}
	return false
}
