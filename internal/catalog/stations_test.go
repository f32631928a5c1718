package catalog

import "testing"

func TestStationByMarketName_CaseInsensitive(t *testing.T) {
	for _, name := range []string{"Water Collector", "water collector", "WATER COLLECTOR", " Water Collector "} {
		s, ok := StationByMarketName(name)
		if !ok {
			t.Errorf("StationByMarketName(%q) not found", name)
			continue
		}
		if s.ID != "water-collector" {
			t.Errorf("StationByMarketName(%q) = %q, want water-collector", name, s.ID)
		}
	}
}

func TestStationByMarketName_UnknownMisses(t *testing.T) {
	for _, name := range []string{"Bitcoin Farm", "Scav Case", ""} {
		if _, ok := StationByMarketName(name); ok {
			t.Errorf("StationByMarketName(%q) should miss", name)
		}
	}
}

func TestStationByID(t *testing.T) {
	if _, ok := StationByID("workbench"); !ok {
		t.Error("workbench should exist")
	}
	if _, ok := StationByID("bitcoin-farm"); ok {
		t.Error("bitcoin-farm should not exist")
	}
}

func TestStationName_FallsBackToID(t *testing.T) {
	if got := StationName("medstation"); got != "Medstation" {
		t.Errorf("StationName(medstation) = %q", got)
	}
	if got := StationName("gone"); got != "gone" {
		t.Errorf("StationName(gone) = %q, want the ID back", got)
	}
}
