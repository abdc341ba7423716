package site

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/ziadkadry99/folio/internal/content"
	"github.com/ziadkadry99/folio/internal/db"
	"github.com/ziadkadry99/folio/internal/history"
	"github.com/ziadkadry99/folio/internal/nav"
)

var buildTime = time.Date(2031, 3, 14, 9, 0, 0, 0, time.UTC)

type fixture struct {
	dir     string
	content string
	out     string
	hist    *history.Store
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	dir := t.TempDir()
	f := &fixture{
		dir:     dir,
		content: filepath.Join(dir, "content.yml"),
		out:     filepath.Join(dir, "public"),
	}
	require.NoError(t, os.WriteFile(f.content, content.SampleYAML(), 0o644))

	database, err := db.OpenMemory()
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	f.hist = history.NewStore(database)
	return f
}

func (f *fixture) options() Options {
	return Options{
		ContentFile: f.content,
		OutputDir:   f.out,
		SiteTitle:   "Mira Okafor",
		Nav:         nav.DefaultConfig(),
		Now:         func() time.Time { return buildTime },
	}
}

// parsePage indexes the generated document's elements by id.
func parsePage(t *testing.T, page []byte) map[string]*html.Node {
	t.Helper()
	root, err := html.Parse(bytes.NewReader(page))
	require.NoError(t, err)
	byID := make(map[string]*html.Node)
	walk(root, func(n *html.Node) {
		if id, ok := attr(n, "id"); ok {
			byID[id] = n
		}
	})
	return byID
}

func text(n *html.Node) string {
	var b strings.Builder
	var visit func(*html.Node)
	visit = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	visit(n)
	return b.String()
}

func navLinks(t *testing.T, page []byte) map[string]*html.Node {
	t.Helper()
	root, err := html.Parse(bytes.NewReader(page))
	require.NoError(t, err)
	links := make(map[string]*html.Node)
	walk(root, func(n *html.Node) {
		if hasClass(n, "nav-link") {
			href, _ := attr(n, "href")
			links[strings.TrimPrefix(href, "#")] = n
		}
	})
	return links
}

func TestBuildSample(t *testing.T) {
	f := newFixture(t)
	g := New(f.options(), nil, nil, f.hist)

	rep, err := g.Build(context.Background(), history.SourceBuild)
	require.NoError(t, err)
	assert.Equal(t, history.StatusOK, rep.Status)
	assert.Empty(t, rep.Failures)
	assert.Empty(t, rep.Missing)
	assert.Empty(t, rep.Errors)
	assert.Len(t, rep.Injected, len(g.Renderer().IDs()))
	assert.Equal(t, "about", rep.ActiveSection)
	assert.Equal(t, "all", rep.ActiveTab)
	assert.Equal(t, "built-in", rep.Template)

	page, err := os.ReadFile(filepath.Join(f.out, IndexFile))
	require.NoError(t, err)
	byID := parsePage(t, page)

	assert.Equal(t, "Mira Okafor", text(byID["name"]))
	assert.Equal(t, "2031", text(byID["year"]))
	assert.NotContains(t, text(byID["intro"]), "Content is on its way.")
	assert.NotEmpty(t, text(byID["all-list"]))

	_, hidden := attr(byID["all-panel"], "hidden")
	assert.False(t, hidden, "default tab panel should be visible")
	for _, id := range []string{"projects-panel", "community-panel"} {
		_, hidden := attr(byID[id], "hidden")
		assert.True(t, hidden, "%s should be hidden", id)
	}

	links := navLinks(t, page)
	require.Contains(t, links, "about")
	assert.True(t, hasClass(links["about"], "active"))
	for id, n := range links {
		if id != "about" {
			assert.False(t, hasClass(n, "active"), "%s should not be active", id)
		}
	}

	for _, name := range []string{StyleFile, ScriptFile, ContentFile, ReportFile} {
		assert.FileExists(t, filepath.Join(f.out, name))
	}

	script, err := os.ReadFile(filepath.Join(f.out, ScriptFile))
	require.NoError(t, err)
	assert.Contains(t, string(script), `window.addEventListener("scroll", schedule`)
	assert.Contains(t, string(script), `window.addEventListener("resize", schedule)`)

	onDisk, err := ReadReport(filepath.Join(f.out, ReportFile))
	require.NoError(t, err)
	assert.Equal(t, rep.BuildID, onDisk.BuildID)
	assert.Equal(t, history.StatusOK, onDisk.Status)

	builds, err := f.hist.List(context.Background(), history.Filter{})
	require.NoError(t, err)
	require.Len(t, builds, 1)
	assert.Equal(t, rep.BuildID, builds[0].ID)
	assert.Equal(t, history.SourceBuild, builds[0].Source)
	assert.Equal(t, history.StatusOK, builds[0].Status)

	snap, ok := g.Last()
	require.True(t, ok)
	assert.Equal(t, "Mira Okafor", snap.Fragments["name"])
	assert.NotNil(t, snap.Store)
}

func TestBuildMissingContentKeepsDefaults(t *testing.T) {
	f := newFixture(t)
	opts := f.options()
	opts.ContentFile = filepath.Join(f.dir, "absent.yml")
	g := New(opts, nil, nil, f.hist)

	rep, err := g.Build(context.Background(), history.SourceBuild)
	require.NoError(t, err)
	assert.Equal(t, history.StatusPartial, rep.Status)
	require.Len(t, rep.Errors, 1)
	assert.Contains(t, rep.Errors[0], "content file not found")
	assert.Empty(t, rep.Injected)

	page, err := os.ReadFile(filepath.Join(f.out, IndexFile))
	require.NoError(t, err)
	byID := parsePage(t, page)
	assert.Equal(t, "Content is on its way.", text(byID["intro"]))
	assert.Equal(t, "Mira Okafor", text(byID["name"]), "title fallback stays in place")

	assert.NoFileExists(t, filepath.Join(f.out, ContentFile))

	snap, ok := g.Last()
	require.True(t, ok)
	assert.Nil(t, snap.Store)
}

func TestBuildUserTemplateMissingPlaceholders(t *testing.T) {
	f := newFixture(t)
	tmpl := filepath.Join(f.dir, "page.html")
	require.NoError(t, os.WriteFile(tmpl, []byte(`<!DOCTYPE html>
<html><head><title>x</title></head>
<body>
<h1 id="name">placeholder</h1>
<footer><span id="year"></span></footer>
</body></html>`), 0o644))

	opts := f.options()
	opts.Template = tmpl
	g := New(opts, nil, nil, f.hist)

	rep, err := g.Build(context.Background(), history.SourceBuild)
	require.NoError(t, err)
	assert.Equal(t, history.StatusPartial, rep.Status)
	assert.ElementsMatch(t, []string{"name", "year"}, rep.Injected)
	assert.Contains(t, rep.Missing, "intro")
	assert.Contains(t, rep.Missing, "all-list")
	assert.NotContains(t, rep.Missing, "photos-list", "empty placeholders need no element")
	assert.NotContains(t, rep.Missing, "calendar-list")
	assert.Equal(t, tmpl, rep.Template)

	page, err := os.ReadFile(filepath.Join(f.out, IndexFile))
	require.NoError(t, err)
	byID := parsePage(t, page)
	assert.Equal(t, "Mira Okafor", text(byID["name"]))
	assert.Equal(t, "2031", text(byID["year"]))

	s := string(page)
	assert.Contains(t, s, `href="style.css"`)
	assert.Contains(t, s, `src="script.js"`)
	assert.Contains(t, s, `data-nav=`)

	builds, err := f.hist.List(context.Background(), history.Filter{Status: history.StatusPartial})
	require.NoError(t, err)
	require.Len(t, builds, 1)
	assert.Equal(t, len(rep.Missing), builds[0].Missing)
}

func TestBuildCancelledContext(t *testing.T) {
	f := newFixture(t)
	g := New(f.options(), nil, nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := g.Build(ctx, history.SourceBuild)
	assert.ErrorIs(t, err, context.Canceled)
	assert.NoFileExists(t, filepath.Join(f.out, IndexFile))
}

func TestBuildCopiesStatic(t *testing.T) {
	f := newFixture(t)
	static := filepath.Join(f.dir, "static")
	require.NoError(t, os.MkdirAll(static, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(static, "resume.pdf"), []byte("%PDF"), 0o644))

	opts := f.options()
	opts.StaticDir = static
	g := New(opts, nil, nil, nil)

	rep, err := g.Build(context.Background(), history.SourceBuild)
	require.NoError(t, err)
	assert.Equal(t, 1, rep.Assets.Copied)
	assert.FileExists(t, filepath.Join(f.out, StaticPrefix, "resume.pdf"))

	rep, err = g.Build(context.Background(), history.SourceWatch)
	require.NoError(t, err)
	assert.Equal(t, 0, rep.Assets.Copied)
	assert.Equal(t, 1, rep.Assets.Unchanged)
}

func TestDefaultDocument(t *testing.T) {
	store := content.Sample()
	store.Thoughts = nil

	doc, err := DefaultDocument("Mira", "https://mira.dev", nav.DefaultConfig(), store, true)
	require.NoError(t, err)
	byID := parsePage(t, doc)

	for _, id := range []string{"name", "intro", "socials", "achievements", "all-list", "projects-list",
		"community-list", "photos-list", "calendar-list", "year"} {
		assert.Contains(t, byID, id)
	}
	_, hidden := attr(byID["thoughts"], "hidden")
	assert.True(t, hidden, "section without content is hidden")
	_, hidden = attr(byID["experience"], "hidden")
	assert.False(t, hidden)

	links := navLinks(t, doc)
	assert.NotContains(t, links, "thoughts")
	assert.Contains(t, links, "about")

	s := string(doc)
	assert.Contains(t, s, `data-livereload="true"`)
	assert.Contains(t, s, `data-tab="community"`)
}

func TestAPIRoutes(t *testing.T) {
	f := newFixture(t)
	g := New(f.options(), nil, nil, nil)

	r := chi.NewRouter()
	RegisterRoutes(r, g, nil)

	get := func(path string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest("GET", path, nil))
		return w
	}

	assert.Equal(t, http.StatusServiceUnavailable, get("/api/fragments").Code)
	assert.Equal(t, http.StatusServiceUnavailable, get("/api/content").Code)

	_, err := g.Build(context.Background(), history.SourceServe)
	require.NoError(t, err)

	w := get("/api/fragments")
	require.Equal(t, http.StatusOK, w.Code)
	var frags fragmentsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &frags))
	assert.Equal(t, "Mira Okafor", frags.Fragments["name"])
	assert.Equal(t, g.Renderer().IDs(), frags.Order)

	w = get("/api/content")
	require.Equal(t, http.StatusOK, w.Code)
	var store content.Store
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &store))
	assert.Equal(t, "Mira Okafor", store.Profile.Name)

	w = get("/api/report")
	require.Equal(t, http.StatusOK, w.Code)
	var rep Report
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rep))
	assert.Equal(t, history.SourceServe, rep.Source)

	assert.Equal(t, http.StatusNotFound, get("/livereload").Code, "no hub, no socket route")
}
