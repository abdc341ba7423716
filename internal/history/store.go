package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ziadkadry99/folio/internal/db"
)

// Store reads and writes build history.
type Store struct {
	db *db.DB
}

// NewStore creates a Store backed by the given database.
func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// Record inserts a build. If b.ID is empty a UUID is generated; the
// stored build is returned.
func (s *Store) Record(ctx context.Context, b Build) (Build, error) {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	if b.Status == "" {
		b.Status = StatusFor(true, b.Failed, b.Missing)
	}
	if b.Source == "" {
		b.Source = SourceBuild
	}
	if b.Errors == nil {
		b.Errors = []string{}
	}

	errs, err := json.Marshal(b.Errors)
	if err != nil {
		return b, fmt.Errorf("marshalling build errors: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO builds (
			id, started_at, finished_at, content_path, output_dir, source,
			rendered, failed, missing, status, errors
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		b.ID,
		b.StartedAt.UTC().Format(timeLayout),
		b.FinishedAt.UTC().Format(timeLayout),
		b.ContentPath,
		b.OutputDir,
		string(b.Source),
		b.Rendered,
		b.Failed,
		b.Missing,
		string(b.Status),
		string(errs),
	)
	if err != nil {
		return b, fmt.Errorf("inserting build: %w", err)
	}
	return b, nil
}

// Get retrieves a single build by id.
func (s *Store) Get(ctx context.Context, id string) (*Build, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+columns+" FROM builds WHERE id = ?", id)
	return scanInto(row)
}

// Filter controls which builds List returns.
type Filter struct {
	Status Status
	Since  *time.Time
	Limit  int
}

// List returns builds newest first.
func (s *Store) List(ctx context.Context, filter Filter) ([]Build, error) {
	var (
		clauses []string
		args    []any
	)
	if filter.Status != "" {
		clauses = append(clauses, "status = ?")
		args = append(args, string(filter.Status))
	}
	if filter.Since != nil {
		clauses = append(clauses, "started_at >= ?")
		args = append(args, filter.Since.UTC().Format(timeLayout))
	}

	query := "SELECT " + columns + " FROM builds"
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY started_at DESC"
	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying builds: %w", err)
	}
	defer rows.Close()

	var builds []Build
	for rows.Next() {
		b, err := scanInto(rows)
		if err != nil {
			return nil, err
		}
		builds = append(builds, *b)
	}
	return builds, rows.Err()
}

// Prune keeps the newest keep builds and deletes the rest. Returns the
// number of deleted rows.
func (s *Store) Prune(ctx context.Context, keep int) (int64, error) {
	res, err := s.db.ExecContext(ctx, `
		DELETE FROM builds WHERE id NOT IN (
			SELECT id FROM builds ORDER BY started_at DESC LIMIT ?
		)`, keep)
	if err != nil {
		return 0, fmt.Errorf("pruning builds: %w", err)
	}
	return res.RowsAffected()
}

// timeLayout is fixed width so stored timestamps sort as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

const columns = "id, started_at, finished_at, content_path, output_dir, source, rendered, failed, missing, status, errors"

// scanner is implemented by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanInto(sc scanner) (*Build, error) {
	var (
		b                 Build
		started, finished string
		source, status    string
		errsJSON          string
	)
	err := sc.Scan(
		&b.ID, &started, &finished, &b.ContentPath, &b.OutputDir, &source,
		&b.Rendered, &b.Failed, &b.Missing, &status, &errsJSON,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("build not found: %w", err)
	}
	if err != nil {
		return nil, err
	}

	b.Source = Source(source)
	b.Status = Status(status)
	if t, parseErr := time.Parse(timeLayout, started); parseErr == nil {
		b.StartedAt = t
	}
	if t, parseErr := time.Parse(timeLayout, finished); parseErr == nil {
		b.FinishedAt = t
	}
	if err := json.Unmarshal([]byte(errsJSON), &b.Errors); err != nil {
		b.Errors = nil
	}
	return &b, nil
}
