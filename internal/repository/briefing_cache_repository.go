package repository

import (
	"context"

	"briefing-proxy/internal/domain/entity"
)

// BriefingCache stores the single briefing that gates calls to the language model.
type BriefingCache interface {
	// Get returns the stored record if it exists and has not expired.
	// Read or decode failures are reported as a miss, never as an error.
	Get(ctx context.Context) (*entity.CacheRecord, bool)
	// Save overwrites the stored record with summary stamped at the current
	// time and returns the record that was written.
	Save(ctx context.Context, summary string) (*entity.CacheRecord, error)
}
