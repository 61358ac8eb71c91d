package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/spf13/cobra"

	"briefing-proxy/internal/config"
	"briefing-proxy/internal/infra/adapter/persistence/filecache"
)

// cacheStatus is printed by `brief cache`.
type cacheStatus struct {
	Path      string    `json:"path"`
	Exists    bool      `json:"exists"`
	Valid     bool      `json:"valid"`
	Timestamp time.Time `json:"timestamp,omitzero"`
	ExpiresAt time.Time `json:"expiresAt,omitzero"`
	TTLHours  float64   `json:"ttlHours,omitempty"`
	Summary   string    `json:"summary,omitempty"`
}

func newCacheCmd() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Show the cached briefing and whether it is still valid",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if path == "" {
				cfg, err := config.Load()
				if err != nil {
					return err
				}
				path = cfg.Cache.Path
			}

			status, err := inspectCache(filecache.NewRecordStore(filecache.Config{Path: path}), time.Now())
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(status)
		},
	}

	cmd.Flags().StringVar(&path, "file", "", "cache file (default: CACHE_FILE)")
	return cmd
}

func inspectCache(store *filecache.RecordStore, now time.Time) (cacheStatus, error) {
	status := cacheStatus{Path: store.Path()}

	record, err := store.Load()
	if errors.Is(err, fs.ErrNotExist) {
		return status, nil
	}
	if err != nil {
		return status, fmt.Errorf("read cache: %w", err)
	}

	status.Exists = true
	status.Valid = record.IsValidAt(now)
	status.Timestamp = record.Timestamp
	status.ExpiresAt = record.ExpiresAt()
	status.TTLHours = record.TTLHours
	status.Summary = record.Summary
	return status, nil
}
