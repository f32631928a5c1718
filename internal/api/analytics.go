package api

import (
	"math"
	"net/http"
	"strconv"

	"hideout-tracker/internal/engine"
)

func (s *Server) handleRanking(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	snap := s.catalog.Snapshot()
	hot, warm := s.cfg.HotTierThreshold, s.cfg.WarmTierThreshold
	s.mu.Unlock()
	writeJSON(w, engine.RankStations(snap, hot, warm))
}

func (s *Server) handleDeals(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	snap := s.catalog.Snapshot()
	long, count := s.cfg.LongCraftMinutes, s.cfg.HotDealCount
	s.mu.Unlock()
	writeJSON(w, engine.HotDeals(snap, long, count))
}

// budgetMinutes reads the hours query parameter, falling back to the
// configured default. Fractional hours are allowed ("1.5").
func (s *Server) budgetMinutes(r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("hours")
	if raw == "" {
		return s.cfg.DefaultBudgetHours * 60, true
	}
	hours, err := strconv.ParseFloat(raw, 64)
	if err != nil || hours <= 0 {
		return 0, false
	}
	return int(math.Round(hours * 60)), true
}

func (s *Server) handlePlan(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	budget, ok := s.budgetMinutes(r)
	if !ok {
		s.mu.Unlock()
		writeError(w, 400, "hours must be a positive number")
		return
	}
	snap := s.catalog.Snapshot()
	s.mu.Unlock()
	writeJSON(w, engine.PlanBudget(snap, budget))
}

func (s *Server) handlePlanOffline(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	budget, ok := s.budgetMinutes(r)
	if !ok {
		s.mu.Unlock()
		writeError(w, 400, "hours must be a positive number")
		return
	}
	snap := s.catalog.Snapshot()
	long := s.cfg.LongCraftMinutes
	s.mu.Unlock()
	writeJSON(w, engine.PlanOffline(snap, budget, long))
}
