// Package render turns a content.Store into HTML fragments keyed by the id
// of the placeholder element each fragment fills.
package render

import (
	"errors"
	"fmt"
	"time"

	"github.com/ziadkadry99/folio/internal/content"
	"github.com/ziadkadry99/folio/internal/logging"
)

// ErrNoContent is recorded when Render is given no store.
var ErrNoContent = errors.New("no content store")

// Placeholder ids.
const (
	IDName            = "name"
	IDNameAlt         = "name-alt"
	IDIntro           = "intro"
	IDSocials         = "socials"
	IDAchievements    = "achievements"
	IDExperience      = "experience-list"
	IDAll             = "all-list"
	IDProjects        = "projects-list"
	IDCommunity       = "community-list"
	IDThoughts        = "thoughts-list"
	IDPhilosophyQuote = "philosophy-quote"
	IDPhilosophy      = "philosophy-body"
	IDConsumption     = "consumption-list"
	IDFunFacts        = "fun-facts-list"
	IDPhotos          = "photos-list"
	IDCalendar        = "calendar-list"
	IDYear            = "year"
)

// Placeholder binds a placeholder id to the function producing its fragment.
type Placeholder struct {
	ID     string
	Render func(*content.Store) (string, error)
}

// Failure records a placeholder whose render function returned an error or
// panicked.
type Failure struct {
	ID  string `json:"id"`
	Err error  `json:"-"`
}

func (f Failure) Error() string {
	if f.ID == "" {
		return f.Err.Error()
	}
	return f.ID + ": " + f.Err.Error()
}

func (f Failure) Unwrap() error { return f.Err }

// Result is the outcome of one render pass.
type Result struct {
	// Fragments maps placeholder id to HTML. Failed placeholders are absent.
	Fragments map[string]string
	// Order lists the rendered ids in table order.
	Order    []string
	Failures []Failure
}

// OK reports whether every placeholder rendered.
func (r Result) OK() bool { return len(r.Failures) == 0 }

// Options configures a Renderer.
type Options struct {
	// Now returns the build time. Defaults to time.Now.
	Now    func() time.Time
	Logger logging.Logger
	// Progress is called after each placeholder with its id.
	Progress func(id string)
}

// Renderer owns the placeholder table.
type Renderer struct {
	md     *Markdown
	now    func() time.Time
	logger logging.Logger
	notify func(string)
	table  []Placeholder
}

// New creates a Renderer with the built-in placeholder table.
func New(opts Options) *Renderer {
	r := &Renderer{
		md:     NewMarkdown(),
		now:    opts.Now,
		logger: opts.Logger,
		notify: opts.Progress,
	}
	if r.now == nil {
		r.now = time.Now
	}
	if r.logger == nil {
		r.logger = logging.Nop()
	}
	r.table = []Placeholder{
		{IDName, r.name},
		{IDNameAlt, r.nameAlt},
		{IDIntro, r.intro},
		{IDSocials, r.socials},
		{IDAchievements, r.achievements},
		{IDExperience, r.experience},
		{IDAll, r.all},
		{IDProjects, r.projects},
		{IDCommunity, r.community},
		{IDThoughts, r.thoughts},
		{IDPhilosophyQuote, r.philosophyQuote},
		{IDPhilosophy, r.philosophy},
		{IDConsumption, r.consumption},
		{IDFunFacts, r.funFacts},
		{IDPhotos, r.photos},
		{IDCalendar, r.calendar},
		{IDYear, r.year},
	}
	return r
}

// Placeholders returns the placeholder table in render order.
func (r *Renderer) Placeholders() []Placeholder {
	out := make([]Placeholder, len(r.table))
	copy(out, r.table)
	return out
}

// IDs returns the placeholder ids in render order.
func (r *Renderer) IDs() []string {
	ids := make([]string, len(r.table))
	for i, p := range r.table {
		ids[i] = p.ID
	}
	return ids
}

// Render runs every placeholder against store. A failing placeholder is
// recorded and skipped; the rest still render.
func (r *Renderer) Render(store *content.Store) Result {
	res := Result{Fragments: make(map[string]string, len(r.table))}
	if store == nil {
		r.logger.Warn("no content store, leaving template defaults")
		res.Failures = append(res.Failures, Failure{Err: ErrNoContent})
		return res
	}

	for _, p := range r.table {
		html, err := r.renderOne(p, store)
		if r.notify != nil {
			r.notify(p.ID)
		}
		if err != nil {
			r.logger.Warn("placeholder failed",
				logging.String("placeholder", p.ID),
				logging.Err(err),
			)
			res.Failures = append(res.Failures, Failure{ID: p.ID, Err: err})
			continue
		}
		res.Fragments[p.ID] = html
		res.Order = append(res.Order, p.ID)
	}
	return res
}

func (r *Renderer) renderOne(p Placeholder, store *content.Store) (html string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("panic rendering %s: %v", p.ID, rec)
		}
	}()
	return p.Render(store)
}
