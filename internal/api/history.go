package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"hideout-tracker/internal/catalog"
)

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	stationID, name := q.Get("station"), q.Get("name")
	if stationID == "" || name == "" {
		writeError(w, 400, "station and name are required")
		return
	}
	days := 30
	if raw := q.Get("days"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v <= 0 {
			writeError(w, 400, "days must be a positive integer")
			return
		}
		days = v
	}

	s.mu.Lock()
	points := s.tracker.History(stationID, name, days)
	s.mu.Unlock()
	writeJSON(w, points)
}

func (s *Server) handleAddCompletion(w http.ResponseWriter, r *http.Request) {
	var req struct {
		StationID string `json:"station_id"`
		CraftID   string `json:"craft_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, 400, "invalid json")
		return
	}
	if _, ok := catalog.StationByID(req.StationID); !ok {
		writeError(w, 404, "unknown station")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.catalog.Find(req.StationID, req.CraftID)
	if !ok {
		writeError(w, 404, "craft not found")
		return
	}
	ev, err := s.tracker.RecordCompletion(req.StationID, c)
	if err != nil {
		writeError(w, 500, err.Error())
		return
	}
	writeJSON(w, ev)
}

func (s *Server) handleGetCompletions(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	events := s.tracker.Completions()
	s.mu.Unlock()
	writeJSON(w, events)
}

func (s *Server) handleCompletionStats(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	stats := s.tracker.Stats()
	s.mu.Unlock()
	writeJSON(w, stats)
}

// handleClearCompletions wipes the completion log. The caller must send
// confirm=true; the destructive step and the confirmation are separate on
// purpose.
func (s *Server) handleClearCompletions(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Confirm bool `json:"confirm"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, 400, "invalid json")
		return
	}
	if !req.Confirm {
		writeError(w, 400, "confirmation required")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.tracker.ClearCompletions(); err != nil {
		writeError(w, 500, err.Error())
		return
	}
	writeJSON(w, map[string]bool{"ok": true})
}
