package site

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ziadkadry99/folio/internal/content"
	"github.com/ziadkadry99/folio/internal/history"
	"github.com/ziadkadry99/folio/internal/logging"
	"github.com/ziadkadry99/folio/internal/nav"
	"github.com/ziadkadry99/folio/internal/progress"
	"github.com/ziadkadry99/folio/internal/render"
)

// Output file names inside the output directory.
const (
	IndexFile   = "index.html"
	StyleFile   = "style.css"
	ScriptFile  = "script.js"
	ContentFile = "content.json"
	ReportFile  = "report.json"
)

// Options configures a Generator.
type Options struct {
	ContentFile string
	// Template is a user HTML document; empty selects the built-in one.
	Template      string
	OutputDir     string
	StaticDir     string
	StaticInclude []string
	StaticExclude []string
	SiteTitle     string
	BaseURL       string
	Nav           nav.Config
	// LiveReload makes the page connect to the dev server's /livereload.
	LiveReload bool
	// Now returns the build time. Defaults to time.Now.
	Now func() time.Time
}

// Generator builds the portfolio page. Builds are serialized; the dev
// server calls Build from its watcher goroutine while HTTP handlers read
// the last snapshot.
type Generator struct {
	opts     Options
	logger   logging.Logger
	reporter progress.Reporter
	history  *history.Store
	renderer *render.Renderer

	mu      sync.Mutex
	done    int
	current progress.Reporter

	snapMu sync.RWMutex
	last   *Snapshot
}

// Snapshot is the outcome of the latest build.
type Snapshot struct {
	Store     *content.Store
	Fragments map[string]string
	Report    Report
}

// New creates a Generator. reporter and hist may be nil.
func New(opts Options, logger logging.Logger, reporter progress.Reporter, hist *history.Store) *Generator {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if logger == nil {
		logger = logging.Nop()
	}
	if reporter == nil {
		reporter = progress.Nop{}
	}
	g := &Generator{
		opts:     opts,
		logger:   logger,
		reporter: reporter,
		history:  hist,
	}
	g.renderer = render.New(render.Options{
		Now:    opts.Now,
		Logger: logger,
		Progress: func(id string) {
			g.done++
			g.current.Update(g.done, id)
		},
	})
	return g
}

// Renderer exposes the placeholder table.
func (g *Generator) Renderer() *render.Renderer { return g.renderer }

// Last returns the most recent successful build, if any.
func (g *Generator) Last() (Snapshot, bool) {
	g.snapMu.RLock()
	defer g.snapMu.RUnlock()
	if g.last == nil {
		return Snapshot{}, false
	}
	return *g.last, true
}

// Build renders the content into the output directory.
//
// A missing or undecodable content file is logged and the page is still
// written with the document's fallback text. Placeholder failures and
// missing placeholder elements make the build partial, not failed. Only
// problems writing the page itself return an error.
func (g *Generator) Build(ctx context.Context, source history.Source) (*Report, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rep := &Report{
		BuildID:     uuid.New().String(),
		StartedAt:   g.opts.Now(),
		ContentFile: g.opts.ContentFile,
		Template:    g.opts.Template,
		Source:      source,
	}
	if rep.Template == "" {
		rep.Template = "built-in"
	}
	log := g.logger.With(logging.String("build_id", rep.BuildID))

	store, err := content.Load(g.opts.ContentFile)
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			log.Error("content file not found, writing template defaults", logging.String("path", g.opts.ContentFile))
		} else {
			log.Error("content file unreadable, writing template defaults", logging.Err(err))
		}
		rep.Errors = append(rep.Errors, err.Error())
		store = nil
	}
	if store != nil {
		for _, w := range store.Validate() {
			log.Warn("content warning", logging.String("path", w.Path), logging.String("message", w.Message))
			rep.Warnings = append(rep.Warnings, w.String())
		}
	}

	// Watch rebuilds are logged; a progress bar per keystroke is noise.
	g.current = g.reporter
	if source == history.SourceWatch {
		g.current = progress.Nop{}
	}
	g.done = 0
	g.current.Start(len(g.renderer.IDs()))
	result := g.renderer.Render(store)
	g.current.Finish()

	rep.Rendered = result.Order
	for _, f := range result.Failures {
		rep.Failures = append(rep.Failures, FailureReport{Placeholder: f.ID, Error: f.Err.Error()})
	}

	if err := g.writePage(store, result, rep); err != nil {
		rep.Errors = append(rep.Errors, err.Error())
		g.finish(ctx, log, rep, false)
		return rep, err
	}

	g.finish(ctx, log, rep, true)
	if err := writeJSON(filepath.Join(g.opts.OutputDir, ReportFile), rep); err != nil {
		return rep, err
	}

	g.snapMu.Lock()
	g.last = &Snapshot{Store: store, Fragments: result.Fragments, Report: *rep}
	g.snapMu.Unlock()

	return rep, nil
}

// writePage produces every file of the output directory except the report.
func (g *Generator) writePage(store *content.Store, result render.Result, rep *Report) error {
	doc, err := g.document(store)
	if err != nil {
		return err
	}

	page, inj, err := Inject(doc, result.Fragments, result.Order, InjectOptions{
		Nav:        g.opts.Nav,
		Tabs:       render.TabIDs,
		LiveReload: g.opts.LiveReload,
		Logger:     g.logger,
	})
	if err != nil {
		return err
	}
	rep.Injected = inj.Injected
	rep.Missing = inj.Missing
	rep.Invalid = inj.Invalid
	rep.ActiveSection = inj.ActiveSection
	rep.ActiveTab = inj.ActiveTab

	if err := os.MkdirAll(g.opts.OutputDir, 0o755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}
	files := map[string][]byte{
		IndexFile:  page,
		StyleFile:  []byte(cssContent),
		ScriptFile: []byte(jsContent),
	}
	for name, data := range files {
		if err := os.WriteFile(filepath.Join(g.opts.OutputDir, name), data, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", name, err)
		}
	}
	if store != nil {
		if err := writeJSON(filepath.Join(g.opts.OutputDir, ContentFile), store); err != nil {
			return err
		}
	}

	assets, err := CopyStatic(g.opts.StaticDir, g.opts.OutputDir, g.opts.StaticInclude, g.opts.StaticExclude)
	if err != nil {
		return err
	}
	rep.Assets = assets
	return nil
}

func (g *Generator) document(store *content.Store) ([]byte, error) {
	if g.opts.Template == "" {
		return DefaultDocument(g.opts.SiteTitle, g.opts.BaseURL, g.opts.Nav, store, g.opts.LiveReload)
	}
	doc, err := os.ReadFile(g.opts.Template)
	if err != nil {
		return nil, fmt.Errorf("reading template: %w", err)
	}
	return doc, nil
}

// finish stamps the report and records it in the build history.
func (g *Generator) finish(ctx context.Context, log logging.Logger, rep *Report, written bool) {
	rep.FinishedAt = g.opts.Now()
	rep.Status = history.StatusFor(written, len(rep.Failures), len(rep.Missing)+len(rep.Invalid))

	log.Info("build finished",
		logging.String("status", string(rep.Status)),
		logging.Int("rendered", len(rep.Rendered)),
		logging.Int("failed", len(rep.Failures)),
		logging.Int("missing", len(rep.Missing)),
		logging.Duration("took", rep.FinishedAt.Sub(rep.StartedAt)),
	)

	if g.history == nil {
		return
	}
	if _, err := g.history.Record(ctx, rep.historyBuild(g.opts.OutputDir)); err != nil {
		log.Warn("recording build history", logging.Err(err))
	}
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", filepath.Base(path), err)
	}
	return nil
}
