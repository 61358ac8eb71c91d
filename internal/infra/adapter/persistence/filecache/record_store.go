// Package filecache persists the briefing cache as a single JSON file.
// The file is read and written wholesale; there is no locking, so
// concurrent writers race and the last rename wins.
package filecache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"briefing-proxy/internal/domain/entity"
)

// Config holds the settings for a RecordStore.
type Config struct {
	// Path of the JSON file holding the record.
	Path string
	// TTL stamped onto newly saved records.
	TTL time.Duration
	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// RecordStore is a file-backed implementation of repository.BriefingCache.
type RecordStore struct {
	path string
	ttl  time.Duration
	now  func() time.Time
}

// NewRecordStore creates a RecordStore. The file is not touched until the
// first Get or Save.
func NewRecordStore(cfg Config) *RecordStore {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &RecordStore{
		path: cfg.Path,
		ttl:  cfg.TTL,
		now:  now,
	}
}

// Path returns the location of the cache file.
func (s *RecordStore) Path() string {
	return s.path
}

// Load reads the stored record regardless of its expiry.
// It is used by Get and by operator tooling that reports the cache state.
func (s *RecordStore) Load() (*entity.CacheRecord, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read cache file: %w", err)
	}

	var record entity.CacheRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("decode cache file: %w", err)
	}

	return &record, nil
}

// Get returns the stored record when now is strictly before its expiry.
func (s *RecordStore) Get(ctx context.Context) (*entity.CacheRecord, bool) {
	record, err := s.Load()
	if err != nil {
		level := slog.LevelWarn
		if errors.Is(err, fs.ErrNotExist) {
			level = slog.LevelDebug
		}
		slog.Log(ctx, level, "briefing cache unavailable, treating as miss",
			slog.String("path", s.path),
			slog.String("error", err.Error()))
		return nil, false
	}

	now := s.now()
	if !record.IsValidAt(now) {
		slog.DebugContext(ctx, "briefing cache expired",
			slog.String("path", s.path),
			slog.Time("timestamp", record.Timestamp),
			slog.Time("expires_at", record.ExpiresAt()))
		return nil, false
	}

	return record, true
}

// Save writes a new record for summary, replacing any previous one.
// The file is written to a temporary sibling and renamed into place so a
// reader never observes a partially written record.
func (s *RecordStore) Save(ctx context.Context, summary string) (*entity.CacheRecord, error) {
	record := entity.NewCacheRecord(summary, s.now(), s.ttl)

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode cache record: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create cache dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return nil, fmt.Errorf("create temp cache file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return nil, fmt.Errorf("write temp cache file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return nil, fmt.Errorf("close temp cache file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return nil, fmt.Errorf("replace cache file: %w", err)
	}

	slog.InfoContext(ctx, "briefing cache updated",
		slog.String("path", s.path),
		slog.Time("timestamp", record.Timestamp),
		slog.Float64("ttl_hours", record.TTLHours))

	return record, nil
}
