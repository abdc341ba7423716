package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// Markdown converts the rich-text fields of the content store.
type Markdown struct {
	md goldmark.Markdown
}

// NewMarkdown returns a converter with GFM and syntax highlighting. Raw HTML
// in content is passed through: the content file is authored by the site
// owner.
func NewMarkdown() *Markdown {
	return &Markdown{md: goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle("github"),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithUnsafe(),
		),
	)}
}

// Block renders src as block-level HTML.
func (m *Markdown) Block(src string) (string, error) {
	if strings.TrimSpace(src) == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := m.md.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("converting markdown: %w", err)
	}
	return buf.String(), nil
}

// Inline renders src and drops the paragraph wrapper when the result is a
// single paragraph, so it can sit inside a <span> or <li>.
func (m *Markdown) Inline(src string) (string, error) {
	out, err := m.Block(src)
	if err != nil {
		return "", err
	}
	return unwrapParagraph(out), nil
}

func unwrapParagraph(s string) string {
	t := strings.TrimSpace(s)
	if !strings.HasPrefix(t, "<p>") || !strings.HasSuffix(t, "</p>") {
		return s
	}
	inner := t[len("<p>") : len(t)-len("</p>")]
	if strings.Contains(inner, "<p>") {
		return s
	}
	return inner
}
