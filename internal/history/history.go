// Package history records every site build in the folio state database.
package history

import "time"

// Status summarises how a build went.
type Status string

const (
	// StatusOK means every placeholder rendered and was injected.
	StatusOK Status = "ok"
	// StatusPartial means the page was written but some placeholders failed
	// or were missing from the document.
	StatusPartial Status = "partial"
	// StatusFailed means no page was written.
	StatusFailed Status = "failed"
)

// Source says what started a build.
type Source string

const (
	SourceBuild Source = "build"
	SourceServe Source = "serve"
	SourceWatch Source = "watch"
)

// Build is one row of build history.
type Build struct {
	ID          string    `json:"id"`
	StartedAt   time.Time `json:"started_at"`
	FinishedAt  time.Time `json:"finished_at"`
	ContentPath string    `json:"content_path"`
	OutputDir   string    `json:"output_dir"`
	Source      Source    `json:"source"`
	Rendered    int       `json:"rendered"`
	Failed      int       `json:"failed"`
	Missing     int       `json:"missing"`
	Status      Status    `json:"status"`
	Errors      []string  `json:"errors"`
}

// Duration is how long the build took.
func (b Build) Duration() time.Duration {
	return b.FinishedAt.Sub(b.StartedAt)
}

// StatusFor derives the status from the build counters.
func StatusFor(written bool, failed, missing int) Status {
	switch {
	case !written:
		return StatusFailed
	case failed > 0 || missing > 0:
		return StatusPartial
	default:
		return StatusOK
	}
}
