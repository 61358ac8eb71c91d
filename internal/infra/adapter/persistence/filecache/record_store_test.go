package filecache_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"briefing-proxy/internal/domain/entity"
	"briefing-proxy/internal/infra/adapter/persistence/filecache"
	"briefing-proxy/internal/repository"
)

var _ repository.BriefingCache = (*filecache.RecordStore)(nil)

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

func newStore(t *testing.T, clock *fakeClock) (*filecache.RecordStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cache", "briefing.json")
	store := filecache.NewRecordStore(filecache.Config{
		Path: path,
		TTL:  4 * time.Hour,
		Now:  clock.Now,
	})
	return store, path
}

func writeRecord(t *testing.T, path string, record entity.CacheRecord) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	data, err := json.Marshal(record)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o600))
}

func TestRecordStore_SaveThenGet(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
	store, path := newStore(t, clock)
	ctx := context.Background()

	saved, err := store.Save(ctx, "Markets steady; watch chip controls.")
	require.NoError(t, err)
	assert.Equal(t, "Markets steady; watch chip controls.", saved.Summary)
	assert.True(t, saved.Timestamp.Equal(clock.now))
	assert.Equal(t, 4.0, saved.TTLHours)

	got, ok := store.Get(ctx)
	require.True(t, ok)
	assert.Equal(t, saved.Summary, got.Summary)
	assert.True(t, saved.Timestamp.Equal(got.Timestamp))
	assert.Equal(t, saved.TTLHours, got.TTLHours)

	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestRecordStore_FileShape(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)}
	store, path := newStore(t, clock)

	_, err := store.Save(context.Background(), "brief")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"summary":"brief","timestamp":"2026-03-01T09:30:00Z","ttlHours":4}`, string(data))
}

func TestRecordStore_Get_Expiry(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		timestamp time.Time
		ttlHours  float64
		wantHit   bool
	}{
		{"one hour old", base.Add(-1 * time.Hour), 4, true},
		{"five hours old", base.Add(-5 * time.Hour), 4, false},
		{"exactly expired", base.Add(-4 * time.Hour), 4, false},
		{"record ttl is honoured over configured ttl", base.Add(-5 * time.Hour), 6, true},
		{"timestamp in the future", base.Add(1 * time.Hour), 4, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock := &fakeClock{now: base}
			store, path := newStore(t, clock)
			writeRecord(t, path, entity.CacheRecord{Summary: "cached", Timestamp: tt.timestamp, TTLHours: tt.ttlHours})

			record, ok := store.Get(context.Background())

			assert.Equal(t, tt.wantHit, ok)
			if tt.wantHit {
				require.NotNil(t, record)
				assert.Equal(t, "cached", record.Summary)
			} else {
				assert.Nil(t, record)
			}
		})
	}
}

func TestRecordStore_Get_ReadFailuresAreMisses(t *testing.T) {
	tests := []struct {
		name    string
		content string
		write   bool
	}{
		{"missing file", "", false},
		{"empty file", "", true},
		{"malformed json", "{not json", true},
		{"wrong types", `{"summary":1,"timestamp":"yesterday","ttlHours":"4"}`, true},
		{"missing timestamp", `{"summary":"s","ttlHours":4}`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock := &fakeClock{now: time.Now()}
			store, path := newStore(t, clock)
			if tt.write {
				require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
				require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o600))
			}

			record, ok := store.Get(context.Background())

			assert.False(t, ok)
			assert.Nil(t, record)
		})
	}
}

func TestRecordStore_SaveOverwrites(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
	store, path := newStore(t, clock)
	ctx := context.Background()

	_, err := store.Save(ctx, "first")
	require.NoError(t, err)

	clock.now = clock.now.Add(5 * time.Hour)
	_, ok := store.Get(ctx)
	require.False(t, ok, "first record should have expired")

	second, err := store.Save(ctx, "second")
	require.NoError(t, err)

	got, ok := store.Get(ctx)
	require.True(t, ok)
	assert.Equal(t, "second", got.Summary)
	assert.True(t, second.Timestamp.Equal(got.Timestamp))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files must not be left behind")
}

func TestRecordStore_Load_IgnoresExpiry(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	store, path := newStore(t, clock)
	writeRecord(t, path, entity.CacheRecord{Summary: "old", Timestamp: clock.now.Add(-48 * time.Hour), TTLHours: 4})

	record, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "old", record.Summary)
	assert.False(t, record.IsValidAt(clock.now))
	assert.Equal(t, path, store.Path())
}

func TestRecordStore_Save_UnwritableDirectory(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	store := filecache.NewRecordStore(filecache.Config{
		Path: filepath.Join(blocker, "briefing.json"),
		TTL:  time.Hour,
	})

	_, err := store.Save(context.Background(), "s")
	assert.Error(t, err)
}
