package site

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// fragmentsResponse is the JSON body of /api/fragments.
type fragmentsResponse struct {
	BuildID   string            `json:"build_id"`
	Order     []string          `json:"order"`
	Fragments map[string]string `json:"fragments"`
}

// RegisterRoutes mounts the dev server endpoints that expose the latest
// build, plus the live reload socket when hub is non-nil.
func RegisterRoutes(r chi.Router, g *Generator, hub *Hub) {
	r.Get("/api/content", handleContent(g))
	r.Get("/api/fragments", handleFragments(g))
	r.Get("/api/report", handleReport(g))
	if hub != nil {
		r.Handle("/livereload", hub)
	}
}

func handleContent(g *Generator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap, ok := g.Last()
		if !ok || snap.Store == nil {
			http.Error(w, `{"error":"no content loaded"}`, http.StatusServiceUnavailable)
			return
		}
		respondJSON(w, snap.Store)
	}
}

func handleFragments(g *Generator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap, ok := g.Last()
		if !ok {
			http.Error(w, `{"error":"no build yet"}`, http.StatusServiceUnavailable)
			return
		}
		respondJSON(w, fragmentsResponse{
			BuildID:   snap.Report.BuildID,
			Order:     snap.Report.Rendered,
			Fragments: snap.Fragments,
		})
	}
}

func handleReport(g *Generator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap, ok := g.Last()
		if !ok {
			http.Error(w, `{"error":"no build yet"}`, http.StatusServiceUnavailable)
			return
		}
		respondJSON(w, snap.Report)
	}
}

func respondJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
