package entity

import "time"

// CacheRecord is the single persisted briefing.
// Exactly one record exists at a time; it is overwritten on every successful
// generation and expires purely by comparison at read time.
type CacheRecord struct {
	Summary   string    `json:"summary"`
	Timestamp time.Time `json:"timestamp"`
	TTLHours  float64   `json:"ttlHours"`
}

// NewCacheRecord builds a record stamped at now with the given time-to-live.
func NewCacheRecord(summary string, now time.Time, ttl time.Duration) *CacheRecord {
	return &CacheRecord{
		Summary:   summary,
		Timestamp: now.UTC(),
		TTLHours:  ttl.Hours(),
	}
}

// TTL returns the record's time-to-live as a duration.
func (r *CacheRecord) TTL() time.Duration {
	return time.Duration(r.TTLHours * float64(time.Hour))
}

// ExpiresAt returns the instant at which the record stops being served.
func (r *CacheRecord) ExpiresAt() time.Time {
	return r.Timestamp.Add(r.TTL())
}

// IsValidAt reports whether the record may still be served at now.
// The comparison is strict: a record is expired at exactly timestamp+ttl.
func (r *CacheRecord) IsValidAt(now time.Time) bool {
	if r == nil || r.Timestamp.IsZero() {
		return false
	}
	return now.Before(r.ExpiresAt())
}
