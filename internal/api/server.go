package api

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"hideout-tracker/internal/catalog"
	"hideout-tracker/internal/config"
	"hideout-tracker/internal/db"
	"hideout-tracker/internal/history"
	"hideout-tracker/internal/ingest"
	"hideout-tracker/internal/market"
)

// Server is the HTTP API server. It owns the catalog, sort state, history
// tracker, and ingestor; one mutex serializes every access so catalog
// operations run as a single logical actor.
type Server struct {
	mu       sync.Mutex
	cfg      *config.Config
	catalog  *catalog.Catalog
	sorts    catalog.SortState
	tracker  *history.Tracker
	ingestor *ingest.Ingestor
	market   *market.Client
	db       *db.DB

	lastRefresh time.Time
}

// NewServer wires the controller together.
func NewServer(cfg *config.Config, cat *catalog.Catalog, tracker *history.Tracker, ingestor *ingest.Ingestor, marketClient *market.Client, database *db.DB) *Server {
	return &Server{
		cfg:      cfg,
		catalog:  cat,
		sorts:    make(catalog.SortState),
		tracker:  tracker,
		ingestor: ingestor,
		market:   marketClient,
		db:       database,
	}
}

// Handler returns the HTTP handler with all API routes and CORS middleware.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/status", s.handleStatus)
	mux.HandleFunc("GET /api/config", s.handleGetConfig)
	mux.HandleFunc("POST /api/config", s.handleSetConfig)
	mux.HandleFunc("GET /api/theme", s.handleGetTheme)
	mux.HandleFunc("POST /api/theme", s.handleSetTheme)
	mux.HandleFunc("GET /api/stations", s.handleGetStations)
	mux.HandleFunc("GET /api/stations/{stationID}/crafts", s.handleGetCrafts)
	mux.HandleFunc("POST /api/stations/{stationID}/crafts", s.handleAddCraft)
	mux.HandleFunc("GET /api/stations/{stationID}/crafts/{craftID}", s.handleGetCraft)
	mux.HandleFunc("PUT /api/stations/{stationID}/crafts/{craftID}", s.handleEditCraft)
	mux.HandleFunc("DELETE /api/stations/{stationID}/crafts/{craftID}", s.handleDeleteCraft)
	mux.HandleFunc("POST /api/stations/{stationID}/crafts/{craftID}/favorite", s.handleToggleFavorite)
	mux.HandleFunc("POST /api/compare", s.handleCompare)
	mux.HandleFunc("GET /api/ranking", s.handleRanking)
	mux.HandleFunc("GET /api/deals", s.handleDeals)
	mux.HandleFunc("GET /api/plan", s.handlePlan)
	mux.HandleFunc("GET /api/plan/offline", s.handlePlanOffline)
	mux.HandleFunc("POST /api/refresh", s.handleRefresh)
	mux.HandleFunc("GET /api/history", s.handleHistory)
	mux.HandleFunc("POST /api/completions", s.handleAddCompletion)
	mux.HandleFunc("GET /api/completions", s.handleGetCompletions)
	mux.HandleFunc("GET /api/completions/stats", s.handleCompletionStats)
	mux.HandleFunc("POST /api/completions/clear", s.handleClearCompletions)
	mux.HandleFunc("GET /api/export/{stationID}/csv", s.handleExportCSV)
	mux.HandleFunc("GET /api/export/{stationID}/xlsx", s.handleExportXLSX)
	return corsMiddleware(mux)
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(204)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

// persistCatalog writes the current catalog through to SQLite. Skipped when
// the server runs without a database (tests).
func (s *Server) persistCatalog() error {
	if s.db == nil {
		return nil
	}
	return s.db.SaveCatalog(s.catalog.Snapshot())
}

// --- Handlers ---

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	count := s.catalog.Count()
	last := s.lastRefresh
	s.mu.Unlock()

	apiOK := false
	if s.market != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
		defer cancel()
		apiOK = s.market.HealthCheck(ctx)
	}

	result := map[string]interface{}{
		"crafts":     count,
		"refreshing": s.ingestor != nil && s.ingestor.Refreshing(),
		"api_ok":     apiOK,
	}
	if !last.IsZero() {
		result["last_refresh"] = last.Unix()
	}
	writeJSON(w, result)
}

func (s *Server) handleGetConfig(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, s.cfg)
}

func (s *Server) handleSetConfig(w http.ResponseWriter, r *http.Request) {
	var patch map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, 400, "invalid json")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	next := *s.cfg
	if v, ok := patch["market_api_url"]; ok {
		json.Unmarshal(v, &next.MarketAPIURL)
	}
	if v, ok := patch["request_timeout_sec"]; ok {
		json.Unmarshal(v, &next.RequestTimeoutSec)
	}
	if v, ok := patch["hot_tier_threshold"]; ok {
		json.Unmarshal(v, &next.HotTierThreshold)
	}
	if v, ok := patch["warm_tier_threshold"]; ok {
		json.Unmarshal(v, &next.WarmTierThreshold)
	}
	if v, ok := patch["long_craft_minutes"]; ok {
		json.Unmarshal(v, &next.LongCraftMinutes)
	}
	if v, ok := patch["hot_deal_count"]; ok {
		json.Unmarshal(v, &next.HotDealCount)
	}
	if v, ok := patch["snapshot_retention_days"]; ok {
		json.Unmarshal(v, &next.SnapshotRetentionDays)
	}
	if v, ok := patch["default_budget_hours"]; ok {
		json.Unmarshal(v, &next.DefaultBudgetHours)
	}

	if next.WarmTierThreshold > next.HotTierThreshold {
		writeError(w, 400, "warm threshold above hot threshold")
		return
	}
	if s.db != nil {
		if err := s.db.SaveConfig(&next); err != nil {
			writeError(w, 500, err.Error())
			return
		}
	}
	*s.cfg = next
	writeJSON(w, s.cfg)
}

func (s *Server) handleGetTheme(w http.ResponseWriter, r *http.Request) {
	theme := "dark"
	if s.db != nil {
		theme = s.db.Theme()
	}
	writeJSON(w, map[string]string{"theme": theme})
}

func (s *Server) handleSetTheme(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Theme string `json:"theme"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, 400, "invalid json")
		return
	}
	if req.Theme != "light" && req.Theme != "dark" {
		writeError(w, 400, "theme must be light or dark")
		return
	}
	if s.db != nil {
		if err := s.db.SetTheme(req.Theme); err != nil {
			writeError(w, 500, err.Error())
			return
		}
	}
	writeJSON(w, map[string]string{"theme": req.Theme})
}

func (s *Server) handleGetStations(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, catalog.Stations)
}
