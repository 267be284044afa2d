package exercisedb

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const payload = `[
  {"id": "Side_Bridge", "name": "Side Bridge", "images": ["Side_Bridge/0.jpg", "Side_Bridge/1.jpg"], "instructions": ["Lie on your side.", "Raise your hips."]},
  {"id": "Plank", "name": "Plank", "images": ["Plank/0.jpg"]}
]`

const imageBase = "https://img.example/"

type memCache struct {
	fetched time.Time
	data    []byte
	writes  int
}

func (m *memCache) ReadCache(string) ([]byte, time.Time, error) {
	return m.data, m.fetched, nil
}

func (m *memCache) WriteCache(_ string, data []byte, fetched time.Time) error {
	m.data = data
	m.fetched = fetched
	m.writes++

	return nil
}

func newServer(t *testing.T, status int, body string) (*httptest.Server, *atomic.Int32) {
	t.Helper()

	var hits atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))

	t.Cleanup(srv.Close)

	return srv, &hits
}

func fixedNow() time.Time {
	return time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC)
}

func TestDecode(t *testing.T) {
	table, err := Decode([]byte(payload), imageBase)
	require.NoError(t, err)

	assert.Equal(t, []string{"side bridge", "plank"}, table.Keys())

	e, ok := table.Lookup("Side Bridge")
	require.True(t, ok)
	assert.Equal(t, "Side_Bridge", e.ID)
	assert.True(t, e.HasPoses())

	start, end := e.Poses()
	assert.Equal(t, "https://img.example/Side_Bridge/0.jpg", start)
	assert.Equal(t, "https://img.example/Side_Bridge/1.jpg", end)

	plank, ok := table.Lookup("plank")
	require.True(t, ok)
	assert.False(t, plank.HasPoses())
	assert.Empty(t, plank.Instructions)
	assert.NotNil(t, plank.Instructions)
}

func TestDecodeInvalid(t *testing.T) {
	_, err := Decode([]byte(`{"not": "a list"}`), imageBase)

	assert.ErrorIs(t, err, errDecode)
}

func TestLoadFetchesAndCaches(t *testing.T) {
	srv, hits := newServer(t, http.StatusOK, payload)
	cache := &memCache{}

	l := NewLoader(srv.URL, imageBase, time.Second, time.Hour, cache)
	l.Now = fixedNow

	table := l.Load(context.Background())

	assert.Equal(t, 2, table.Len())
	assert.Equal(t, int32(1), hits.Load())
	assert.Equal(t, 1, cache.writes)
	assert.Equal(t, fixedNow(), cache.fetched)

	// a fresh cache short-circuits the request
	table = l.Load(context.Background())

	assert.Equal(t, 2, table.Len())
	assert.Equal(t, int32(1), hits.Load())
}

func TestLoadRefetchesExpiredCache(t *testing.T) {
	srv, hits := newServer(t, http.StatusOK, payload)
	cache := &memCache{
		data:    []byte(`[{"id": "Old", "name": "Old Entry", "images": []}]`),
		fetched: fixedNow().Add(-48 * time.Hour),
	}

	l := NewLoader(srv.URL, imageBase, time.Second, 24*time.Hour, cache)
	l.Now = fixedNow

	table := l.Load(context.Background())

	assert.Equal(t, int32(1), hits.Load())
	assert.Equal(t, []string{"side bridge", "plank"}, table.Keys())
}

func TestLoadFallsBackToStaleCache(t *testing.T) {
	srv, _ := newServer(t, http.StatusInternalServerError, "boom")
	cache := &memCache{
		data:    []byte(payload),
		fetched: fixedNow().Add(-48 * time.Hour),
	}

	l := NewLoader(srv.URL, imageBase, time.Second, 24*time.Hour, cache)
	l.Now = fixedNow

	table := l.Load(context.Background())

	assert.Equal(t, 2, table.Len())
	assert.Equal(t, 0, cache.writes)
}

func TestLoadFailureYieldsEmptyTable(t *testing.T) {
	cases := []struct {
		name   string
		status int
		body   string
	}{
		{name: "server error", status: http.StatusBadGateway, body: "bad gateway"},
		{name: "malformed payload", status: http.StatusOK, body: "<html>"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv, _ := newServer(t, tc.status, tc.body)

			l := NewLoader(srv.URL, imageBase, time.Second, time.Hour, nil)

			table := l.Load(context.Background())

			require.NotNil(t, table)
			assert.Zero(t, table.Len())

			_, ok := table.Lookup("Plank")
			assert.False(t, ok)
		})
	}
}
