package site

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/ziadkadry99/folio/internal/history"
)

// Report describes one build. It is written to report.json in the output
// directory and summarised in the build history.
type Report struct {
	BuildID     string         `json:"build_id"`
	StartedAt   time.Time      `json:"started_at"`
	FinishedAt  time.Time      `json:"finished_at"`
	Source      history.Source `json:"source"`
	Status      history.Status `json:"status"`
	ContentFile string         `json:"content_file"`
	Template    string         `json:"template"`

	Rendered []string        `json:"rendered"`
	Failures []FailureReport `json:"failures,omitempty"`
	Injected []string        `json:"injected"`
	Missing  []string        `json:"missing,omitempty"`
	Invalid  []string        `json:"invalid,omitempty"`

	ActiveSection string     `json:"active_section,omitempty"`
	ActiveTab     string     `json:"active_tab,omitempty"`
	Assets        AssetStats `json:"assets"`

	Warnings []string `json:"warnings,omitempty"`
	Errors   []string `json:"errors,omitempty"`
}

// FailureReport is a placeholder whose render function failed.
type FailureReport struct {
	Placeholder string `json:"placeholder"`
	Error       string `json:"error"`
}

// ReadReport loads the report.json written by a previous build.
func ReadReport(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading report: %w", err)
	}
	var r Report
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("decoding report: %w", err)
	}
	return &r, nil
}

func (r *Report) historyBuild(outputDir string) history.Build {
	var errs []string
	for _, f := range r.Failures {
		if f.Placeholder == "" {
			errs = append(errs, f.Error)
			continue
		}
		errs = append(errs, f.Placeholder+": "+f.Error)
	}
	for _, id := range r.Missing {
		errs = append(errs, id+": placeholder element missing")
	}
	for _, id := range r.Invalid {
		errs = append(errs, id+": fragment is not valid HTML")
	}
	errs = append(errs, r.Errors...)

	return history.Build{
		ID:          r.BuildID,
		StartedAt:   r.StartedAt,
		FinishedAt:  r.FinishedAt,
		ContentPath: r.ContentFile,
		OutputDir:   outputDir,
		Source:      r.Source,
		Rendered:    len(r.Rendered),
		Failed:      len(r.Failures),
		Missing:     len(r.Missing) + len(r.Invalid),
		Status:      r.Status,
		Errors:      errs,
	}
}
