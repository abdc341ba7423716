package site

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/ziadkadry99/folio/internal/content"
	"github.com/ziadkadry99/folio/internal/nav"
	"github.com/ziadkadry99/folio/internal/render"
)

// documentData holds the data passed to the built-in document template.
type documentData struct {
	Title      string
	BaseURL    string
	NavJSON    string
	LiveReload bool
	Links      []render.NavLink
	Tabs       []render.NavLink
	// Show marks sections that have content; the rest are hidden.
	Show map[string]bool
}

var documentTmpl = template.Must(template.New("document").Parse(documentTemplate))

// DefaultDocument renders the built-in page skeleton. Its placeholder
// elements hold fallback text that stays in place when rendering fails.
func DefaultDocument(title, baseURL string, cfg nav.Config, store *content.Store, liveReload bool) ([]byte, error) {
	navJSON, err := navConfigJSON(cfg)
	if err != nil {
		return nil, err
	}

	links := render.NavLinks(store)
	show := make(map[string]bool, len(links))
	for _, l := range links {
		show[l.ID] = true
	}
	tabs := make([]render.NavLink, len(render.TabIDs))
	for i, id := range render.TabIDs {
		tabs[i] = render.NavLink{ID: id, Label: render.Label(id)}
	}

	data := documentData{
		Title:      title,
		BaseURL:    baseURL,
		NavJSON:    navJSON,
		LiveReload: liveReload,
		Links:      links,
		Tabs:       tabs,
		Show:       show,
	}

	var buf bytes.Buffer
	if err := documentTmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing document template: %w", err)
	}
	return buf.Bytes(), nil
}

// documentTemplate is the html/template for the built-in page. Element ids
// match the renderer's placeholder table.
const documentTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}}</title>
  {{- if .BaseURL}}
  <link rel="canonical" href="{{.BaseURL}}">
  {{- end}}
  <link rel="stylesheet" href="style.css">
</head>
<body data-nav="{{.NavJSON}}"{{if .LiveReload}} data-livereload="true"{{end}}>
  <header class="site-header">
    <a class="site-title" href="#about">{{.Title}}</a>
    <nav class="site-nav">
      {{- range .Links}}
      <a class="nav-link" href="{{.Href}}">{{.Label}}</a>
      {{- end}}
    </nav>
  </header>
  <main class="page">
    <section id="about" class="section">
      <h1 id="name" class="name">{{.Title}}</h1>
      <p id="name-alt" class="name-alt"></p>
      <div id="intro" class="intro"><p>Content is on its way.</p></div>
      <div id="socials" class="socials"></div>
      <ul id="achievements" class="achievements"></ul>
    </section>
    <section id="experience" class="section"{{if not (index .Show "experience")}} hidden{{end}}>
      <h2>Experience</h2>
      <div id="experience-list" class="experience-list"></div>
    </section>
    <section id="projects" class="section"{{if not (index .Show "projects")}} hidden{{end}}>
      <h2>Projects</h2>
      <div class="tabs" role="tablist">
        {{- range .Tabs}}
        <button class="tab" type="button" role="tab" data-tab="{{.ID}}">{{.Label}}</button>
        {{- end}}
      </div>
      {{- range .Tabs}}
      <div id="{{.ID}}-panel" class="tab-panel" role="tabpanel">
        <div id="{{.ID}}-list" class="entry-grid"></div>
      </div>
      {{- end}}
    </section>
    <section id="thoughts" class="section"{{if not (index .Show "thoughts")}} hidden{{end}}>
      <h2>Thoughts</h2>
      <ul id="thoughts-list" class="thoughts-list"></ul>
    </section>
    <section id="philosophy" class="section"{{if not (index .Show "philosophy")}} hidden{{end}}>
      <h2>Philosophy</h2>
      <blockquote id="philosophy-quote" class="philosophy-quote"></blockquote>
      <div id="philosophy-body" class="philosophy-body"></div>
    </section>
    <section id="consumption" class="section"{{if not (index .Show "consumption")}} hidden{{end}}>
      <h2>Consumption</h2>
      <ul id="consumption-list" class="consumption-list"></ul>
    </section>
    <section id="fun-facts" class="section"{{if not (index .Show "fun-facts")}} hidden{{end}}>
      <h2>Fun Facts</h2>
      <ul id="fun-facts-list" class="fun-facts-list"></ul>
    </section>
    <div id="photos-list" class="photos-list" hidden></div>
    <div id="calendar-list" class="calendar-list" hidden></div>
  </main>
  <footer class="site-footer">
    <p>&copy; <span id="year"></span> {{.Title}}</p>
  </footer>
  <script src="script.js"></script>
</body>
</html>
`
