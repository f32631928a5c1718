package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"hideout-tracker/internal/catalog"
	"hideout-tracker/internal/engine"
	"hideout-tracker/internal/logger"
)

func validCategory(c string) bool {
	switch c {
	case "", catalog.FilterAll, catalog.FilterProfitable, catalog.FilterLosses, catalog.FilterFavorites:
		return true
	}
	return false
}

func validSortField(f string) bool {
	switch f {
	case catalog.SortByName, catalog.SortByMaterialCost, catalog.SortBySellPrice,
		catalog.SortByProfit, catalog.SortByCraftTime, catalog.SortByProfitPerHour:
		return true
	}
	return false
}

// craftView augments a craft with its derived metrics for the UI.
type craftView struct {
	catalog.Craft
	Profit        int      `json:"profit"`
	ProfitPerHour *float64 `json:"profitPerHour"`
	Duration      string   `json:"duration"`
}

func viewOf(c catalog.Craft) craftView {
	v := craftView{Craft: c, Profit: c.Profit(), Duration: catalog.FormatDuration(c.CraftTime)}
	if rate, ok := c.ProfitPerHour(); ok {
		v.ProfitPerHour = &rate
	}
	return v
}

func viewsOf(list []catalog.Craft) []craftView {
	out := make([]craftView, len(list))
	for i, c := range list {
		out[i] = viewOf(c)
	}
	return out
}

func (s *Server) handleGetCrafts(w http.ResponseWriter, r *http.Request) {
	stationID := r.PathValue("stationID")
	if _, ok := catalog.StationByID(stationID); !ok {
		writeError(w, 404, "unknown station")
		return
	}
	q := r.URL.Query()
	category := q.Get("filter")
	if !validCategory(category) {
		writeError(w, 400, "unknown filter category")
		return
	}
	sortField := q.Get("sort")
	if sortField != "" && !validSortField(sortField) {
		writeError(w, 400, "unknown sort field")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	list := s.catalog.Filter(stationID, category, q.Get("search"))
	if sortField != "" {
		asc := s.sorts.Toggle(sortField)
		catalog.SortCrafts(list, sortField, asc)
	}
	writeJSON(w, viewsOf(list))
}

func (s *Server) handleGetCraft(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	c, ok := s.catalog.Find(r.PathValue("stationID"), r.PathValue("craftID"))
	s.mu.Unlock()
	if !ok {
		writeError(w, 404, "craft not found")
		return
	}
	writeJSON(w, viewOf(c))
}

func decodeCraftInput(r *http.Request) (catalog.CraftInput, string) {
	var in catalog.CraftInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		return in, "invalid json"
	}
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return in, "name is required"
	}
	if in.MaterialCost < 0 {
		return in, "material cost must be non-negative"
	}
	if in.CraftTime < 0 {
		return in, "craft time must be non-negative"
	}
	return in, ""
}

func (s *Server) handleAddCraft(w http.ResponseWriter, r *http.Request) {
	stationID := r.PathValue("stationID")
	if _, ok := catalog.StationByID(stationID); !ok {
		writeError(w, 404, "unknown station")
		return
	}
	in, msg := decodeCraftInput(r)
	if msg != "" {
		writeError(w, 400, msg)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.catalog.AddCraft(stationID, in)
	if err := s.persistCatalog(); err != nil {
		writeError(w, 500, err.Error())
		return
	}
	logger.Info("CATALOG", "Added craft "+c.Name+" to "+stationID)
	writeJSON(w, viewOf(c))
}

func (s *Server) handleEditCraft(w http.ResponseWriter, r *http.Request) {
	in, msg := decodeCraftInput(r)
	if msg != "" {
		writeError(w, 400, msg)
		return
	}
	stationID, craftID := r.PathValue("stationID"), r.PathValue("craftID")

	s.mu.Lock()
	defer s.mu.Unlock()
	// A miss is a stale reference after a refresh replaced the catalog;
	// treat it as a no-op, not a failure.
	if s.catalog.EditCraft(stationID, craftID, in) {
		if err := s.persistCatalog(); err != nil {
			writeError(w, 500, err.Error())
			return
		}
	}
	writeJSON(w, map[string]bool{"ok": true})
}

func (s *Server) handleDeleteCraft(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.catalog.DeleteCraft(r.PathValue("stationID"), r.PathValue("craftID")) {
		if err := s.persistCatalog(); err != nil {
			writeError(w, 500, err.Error())
			return
		}
	}
	writeJSON(w, map[string]bool{"ok": true})
}

func (s *Server) handleToggleFavorite(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.catalog.ToggleFavorite(r.PathValue("stationID"), r.PathValue("craftID")) {
		if err := s.persistCatalog(); err != nil {
			writeError(w, 500, err.Error())
			return
		}
	}
	writeJSON(w, map[string]bool{"ok": true})
}

func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	var req struct {
		StationA string `json:"station_a"`
		CraftA   string `json:"craft_a"`
		StationB string `json:"station_b"`
		CraftB   string `json:"craft_b"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, 400, "invalid json")
		return
	}

	s.mu.Lock()
	a, okA := s.catalog.Find(req.StationA, req.CraftA)
	b, okB := s.catalog.Find(req.StationB, req.CraftB)
	s.mu.Unlock()
	if !okA || !okB {
		writeError(w, 404, "craft not found")
		return
	}
	writeJSON(w, engine.Compare(a, b))
}
