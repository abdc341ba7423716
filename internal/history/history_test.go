package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ziadkadry99/folio/internal/db"
)

func setupStore(t *testing.T) *Store {
	t.Helper()
	database, err := db.OpenMemory()
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return NewStore(database)
}

var epoch = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

func buildAt(offset time.Duration, failed, missing int) Build {
	start := epoch.Add(offset)
	return Build{
		StartedAt:   start,
		FinishedAt:  start.Add(40 * time.Millisecond),
		ContentPath: "content.yml",
		OutputDir:   "public",
		Rendered:    17 - failed,
		Failed:      failed,
		Missing:     missing,
	}
}

func TestRecordAndGet(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	b := buildAt(0, 1, 0)
	b.Errors = []string{"fun-facts-list: converting markdown: boom"}
	saved, err := store.Record(ctx, b)
	require.NoError(t, err)
	require.NotEmpty(t, saved.ID, "a UUID is generated")
	assert.Equal(t, StatusPartial, saved.Status)
	assert.Equal(t, SourceBuild, saved.Source)

	got, err := store.Get(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, saved.ID, got.ID)
	assert.True(t, got.StartedAt.Equal(b.StartedAt))
	assert.Equal(t, 40*time.Millisecond, got.Duration())
	assert.Equal(t, 16, got.Rendered)
	assert.Equal(t, b.Errors, got.Errors)
}

func TestGetMissing(t *testing.T) {
	_, err := setupStore(t).Get(context.Background(), "nope")
	require.Error(t, err)
	assert.True(t, errors.Is(err, sql.ErrNoRows))
}

func TestListNewestFirstAndFilter(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	for i, b := range []Build{buildAt(0, 0, 0), buildAt(time.Minute, 0, 2), buildAt(2*time.Minute, 0, 0)} {
		b.ID = []string{"first", "second", "third"}[i]
		_, err := store.Record(ctx, b)
		require.NoError(t, err)
	}

	all, err := store.List(ctx, Filter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"third", "second", "first"}, []string{all[0].ID, all[1].ID, all[2].ID})

	partial, err := store.List(ctx, Filter{Status: StatusPartial})
	require.NoError(t, err)
	require.Len(t, partial, 1)
	assert.Equal(t, "second", partial[0].ID)

	since := epoch.Add(30 * time.Second)
	recent, err := store.List(ctx, Filter{Since: &since, Limit: 1})
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, "third", recent[0].ID)
}

func TestPrune(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()
	for i := 0; i < 5; i++ {
		_, err := store.Record(ctx, buildAt(time.Duration(i)*time.Second, 0, 0))
		require.NoError(t, err)
	}

	n, err := store.Prune(ctx, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 3, n)

	left, err := store.List(ctx, Filter{})
	require.NoError(t, err)
	assert.Len(t, left, 2)
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, StatusOK, StatusFor(true, 0, 0))
	assert.Equal(t, StatusPartial, StatusFor(true, 1, 0))
	assert.Equal(t, StatusPartial, StatusFor(true, 0, 1))
	assert.Equal(t, StatusFailed, StatusFor(false, 0, 0))
}

func TestRoutes(t *testing.T) {
	store := setupStore(t)
	saved, err := store.Record(context.Background(), buildAt(0, 0, 0))
	require.NoError(t, err)

	r := chi.NewRouter()
	RegisterRoutes(r, store)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/builds/", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var builds []Build
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &builds))
	require.Len(t, builds, 1)
	assert.Equal(t, saved.ID, builds[0].ID)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/builds/"+saved.ID, nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/builds/missing", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
