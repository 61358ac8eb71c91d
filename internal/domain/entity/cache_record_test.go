package entity_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"briefing-proxy/internal/domain/entity"
)

func TestCacheRecord_IsValidAt(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		record *entity.CacheRecord
		want   bool
	}{
		{
			name:   "fresh record",
			record: &entity.CacheRecord{Summary: "s", Timestamp: now.Add(-1 * time.Hour), TTLHours: 4},
			want:   true,
		},
		{
			name:   "five hours old with four hour ttl",
			record: &entity.CacheRecord{Summary: "s", Timestamp: now.Add(-5 * time.Hour), TTLHours: 4},
			want:   false,
		},
		{
			name:   "exactly at expiration",
			record: &entity.CacheRecord{Summary: "s", Timestamp: now.Add(-4 * time.Hour), TTLHours: 4},
			want:   false,
		},
		{
			name:   "one nanosecond before expiration",
			record: &entity.CacheRecord{Summary: "s", Timestamp: now.Add(-4*time.Hour + time.Nanosecond), TTLHours: 4},
			want:   true,
		},
		{
			name:   "fractional ttl",
			record: &entity.CacheRecord{Summary: "s", Timestamp: now.Add(-20 * time.Minute), TTLHours: 0.5},
			want:   true,
		},
		{
			name:   "zero ttl",
			record: &entity.CacheRecord{Summary: "s", Timestamp: now, TTLHours: 0},
			want:   false,
		},
		{
			name:   "zero timestamp",
			record: &entity.CacheRecord{Summary: "s", TTLHours: 4},
			want:   false,
		},
		{
			name:   "nil record",
			record: nil,
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.record.IsValidAt(now))
		})
	}
}

func TestNewCacheRecord(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.FixedZone("JST", 9*60*60))

	record := entity.NewCacheRecord("briefing", now, 4*time.Hour)

	assert.Equal(t, "briefing", record.Summary)
	assert.Equal(t, 4.0, record.TTLHours)
	assert.True(t, record.Timestamp.Equal(now))
	assert.Equal(t, time.UTC, record.Timestamp.Location())
	assert.Equal(t, now.Add(4*time.Hour), record.ExpiresAt().In(now.Location()))
}

func TestCacheRecord_JSONShape(t *testing.T) {
	raw := `{"summary":"Markets calm","timestamp":"2026-03-01T12:00:00.000Z","ttlHours":4}`

	var record entity.CacheRecord
	require.NoError(t, json.Unmarshal([]byte(raw), &record))

	assert.Equal(t, "Markets calm", record.Summary)
	assert.Equal(t, 4.0, record.TTLHours)
	assert.True(t, record.Timestamp.Equal(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)))

	out, err := json.Marshal(record)
	require.NoError(t, err)
	assert.JSONEq(t, `{"summary":"Markets calm","timestamp":"2026-03-01T12:00:00Z","ttlHours":4}`, string(out))
}
