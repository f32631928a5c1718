package api

import (
	"net/http"

	"hideout-tracker/internal/catalog"
	"hideout-tracker/internal/export"
)

func (s *Server) stationCrafts(w http.ResponseWriter, r *http.Request) (catalog.Station, []catalog.Craft, bool) {
	station, ok := catalog.StationByID(r.PathValue("stationID"))
	if !ok {
		writeError(w, 404, "unknown station")
		return catalog.Station{}, nil, false
	}
	s.mu.Lock()
	crafts := s.catalog.Crafts(station.ID)
	s.mu.Unlock()
	return station, crafts, true
}

func (s *Server) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	station, crafts, ok := s.stationCrafts(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="`+export.Filename(station.ID, "csv")+`"`)
	if err := export.CSV(w, crafts); err != nil {
		writeError(w, 500, err.Error())
	}
}

func (s *Server) handleExportXLSX(w http.ResponseWriter, r *http.Request) {
	station, crafts, ok := s.stationCrafts(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="`+export.Filename(station.ID, "xlsx")+`"`)
	if err := export.XLSX(w, station.Name, crafts); err != nil {
		writeError(w, 500, err.Error())
	}
}
