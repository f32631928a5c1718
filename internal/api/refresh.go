package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"hideout-tracker/internal/catalog"
	"hideout-tracker/internal/ingest"
	"hideout-tracker/internal/logger"
)

// ApplyRefresh installs a completed ingestion result: atomic catalog
// replace, residual duration correction, persist, and the daily price
// snapshot. Used by both the refresh endpoint and the startup refresh.
func (s *Server) ApplyRefresh(next map[string][]catalog.Craft) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.catalog.ReplaceAll(next)
	if corrected := s.catalog.NormalizeDurations(); corrected > 0 {
		logger.Warn("INGEST", fmt.Sprintf("Corrected %d implausible craft durations", corrected))
	}
	if err := s.persistCatalog(); err != nil {
		return fmt.Errorf("persist catalog: %w", err)
	}
	s.lastRefresh = time.Now()

	if s.tracker != nil {
		if _, err := s.tracker.RecordSnapshot(s.catalog.Snapshot()); err != nil {
			logger.Warn("HISTORY", fmt.Sprintf("Snapshot failed: %v", err))
		}
	}
	return nil
}

// handleRefresh runs one ingestion pass. The fetch happens outside the
// server mutex so reads stay responsive; the catalog is only locked for the
// atomic replace at the end. A concurrent request gets 409, a failed fetch
// gets 502 with the catalog untouched.
func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	if s.ingestor == nil {
		writeError(w, 503, "refresh not available")
		return
	}

	next, count, err := s.ingestor.Refresh(r.Context())
	if err != nil {
		if errors.Is(err, ingest.ErrRefreshInFlight) {
			writeError(w, 409, "refresh already in progress")
			return
		}
		logger.Warn("INGEST", fmt.Sprintf("Refresh failed: %v", err))
		writeError(w, 502, "pricing source unavailable")
		return
	}

	if err := s.ApplyRefresh(next); err != nil {
		writeError(w, 500, err.Error())
		return
	}
	logger.Success("INGEST", fmt.Sprintf("Refreshed %d crafts", count))
	writeJSON(w, map[string]interface{}{"crafts": count})
}
