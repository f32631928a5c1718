package catalog

import "strings"

// Stations is the fixed set of hideout stations, in display order.
// Reference data, not user-editable.
var Stations = []Station{
	{ID: "workbench", Name: "Workbench", MarketName: "Workbench"},
	{ID: "medstation", Name: "Medstation", MarketName: "Medstation"},
	{ID: "lavatory", Name: "Lavatory", MarketName: "Lavatory"},
	{ID: "water-collector", Name: "Water Collector", MarketName: "Water Collector"},
	{ID: "nutrition-unit", Name: "Nutrition Unit", MarketName: "Nutrition Unit"},
	{ID: "intelligence-center", Name: "Intelligence Center", MarketName: "Intelligence Center"},
}

// StationByID looks up a station by its stable identifier.
func StationByID(id string) (Station, bool) {
	for _, s := range Stations {
		if s.ID == id {
			return s, true
		}
	}
	return Station{}, false
}

// StationByMarketName maps an external-source station name to a Station.
// The match is case-insensitive. Unknown names return false; callers drop
// such records rather than treating them as errors.
func StationByMarketName(name string) (Station, bool) {
	name = strings.TrimSpace(name)
	for _, s := range Stations {
		if strings.EqualFold(s.MarketName, name) {
			return s, true
		}
	}
	return Station{}, false
}

// StationName returns the display name for a station ID, or the ID itself
// when unknown (stale references should still render something).
func StationName(id string) string {
	if s, ok := StationByID(id); ok {
		return s.Name
	}
	return id
}
