package engine

import (
	"testing"

	"hideout-tracker/internal/catalog"
)

func craft(id, name string, cost, price, minutes int) catalog.Craft {
	return catalog.Craft{
		ID:             id,
		Name:           name,
		MaterialCost:   cost,
		SellPrice:      price,
		OutputQuantity: 1,
		CraftTime:      minutes,
		Source:         catalog.SourceAPI,
	}
}

func emptySnapshot() map[string][]catalog.Craft {
	m := make(map[string][]catalog.Craft, len(catalog.Stations))
	for _, s := range catalog.Stations {
		m[s.ID] = []catalog.Craft{}
	}
	return m
}

func TestRankStations_AveragesProfitableOnly(t *testing.T) {
	snap := emptySnapshot()
	snap["workbench"] = []catalog.Craft{
		craft("api-1", "Good", 0, 10000, 30),  // 20000/h
		craft("api-2", "Loss", 5000, 1000, 30), // excluded: profit <= 0
		craft("api-3", "Stuck", 0, 9999, 0),    // excluded: zero duration
	}

	ranks := RankStations(snap, 15000, 8000)
	if len(ranks) != 1 {
		t.Fatalf("len(ranks) = %d, want 1", len(ranks))
	}
	r := ranks[0]
	if r.StationID != "workbench" || r.CraftCount != 1 {
		t.Errorf("rank = %+v, want workbench with 1 counted craft", r)
	}
	if r.AvgProfitPerHour != 20000 {
		t.Errorf("AvgProfitPerHour = %v, want 20000", r.AvgProfitPerHour)
	}
}

func TestRankStations_ExcludesStationsWithNoProfitableCrafts(t *testing.T) {
	snap := emptySnapshot()
	snap["lavatory"] = []catalog.Craft{craft("api-1", "Loss", 100, 50, 30)}

	ranks := RankStations(snap, 15000, 8000)
	if len(ranks) != 0 {
		t.Errorf("len(ranks) = %d, want 0 (no zero-scored entries)", len(ranks))
	}
}

func TestRankStations_TiersAndTopFlag(t *testing.T) {
	snap := emptySnapshot()
	// 30000/h, 20000/h, 10000/h, 2000/h
	snap["workbench"] = []catalog.Craft{craft("api-1", "A", 0, 15000, 30)}
	snap["medstation"] = []catalog.Craft{craft("api-2", "B", 0, 10000, 30)}
	snap["lavatory"] = []catalog.Craft{craft("api-3", "C", 0, 5000, 30)}
	snap["water-collector"] = []catalog.Craft{craft("api-4", "D", 0, 1000, 30)}

	ranks := RankStations(snap, 15000, 8000)
	if len(ranks) != 4 {
		t.Fatalf("len(ranks) = %d, want 4", len(ranks))
	}
	wantTiers := []string{TierHot, TierHot, TierWarm, TierCold}
	wantIDs := []string{"workbench", "medstation", "lavatory", "water-collector"}
	for i, r := range ranks {
		if r.StationID != wantIDs[i] {
			t.Errorf("ranks[%d].StationID = %q, want %q", i, r.StationID, wantIDs[i])
		}
		if r.Tier != wantTiers[i] {
			t.Errorf("ranks[%d].Tier = %q, want %q", i, r.Tier, wantTiers[i])
		}
	}
	if !ranks[0].Top {
		t.Error("top-ranked hot station should carry the top flag")
	}
	if ranks[1].Top {
		t.Error("only the single best hot station is flagged top")
	}
}

func TestRankStations_NoTopFlagBelowHotThreshold(t *testing.T) {
	snap := emptySnapshot()
	snap["workbench"] = []catalog.Craft{craft("api-1", "A", 0, 5000, 30)} // 10000/h, warm

	ranks := RankStations(snap, 15000, 8000)
	if len(ranks) != 1 {
		t.Fatalf("len(ranks) = %d, want 1", len(ranks))
	}
	if ranks[0].Top {
		t.Error("a warm leader must not be flagged top")
	}
}

func TestHotDeals_ThreeIndependentLists(t *testing.T) {
	snap := emptySnapshot()
	snap["workbench"] = []catalog.Craft{
		craft("api-1", "Quick A", 0, 10000, 30),  // 20000/h, quick
		craft("api-2", "Quick B", 0, 7500, 30),   // 15000/h, quick
		craft("api-3", "Long A", 0, 30000, 120),  // 15000/h, long
		craft("api-4", "Quick C", 0, 5000, 30),   // 10000/h, quick
		craft("api-5", "Quick D", 0, 2500, 30),   // 5000/h, quick
		craft("api-6", "Loss", 9000, 1000, 30),   // excluded
	}
	snap["lavatory"] = []catalog.Craft{
		craft("api-7", "Long B", 0, 12000, 90), // 8000/h, long
	}

	board := HotDeals(snap, 60, 3)

	wantOverall := []string{"Quick A", "Quick B", "Long A"}
	if got := dealNames(board.Overall); !equalNames(got, wantOverall) {
		t.Errorf("Overall = %v, want %v", got, wantOverall)
	}
	wantQuick := []string{"Quick A", "Quick B", "Quick C"}
	if got := dealNames(board.Quick); !equalNames(got, wantQuick) {
		t.Errorf("Quick = %v, want %v", got, wantQuick)
	}
	wantLong := []string{"Long A", "Long B"}
	if got := dealNames(board.Long); !equalNames(got, wantLong) {
		t.Errorf("Long = %v, want %v", got, wantLong)
	}
}

func TestHotDeals_CraftMayAppearOnTwoLists(t *testing.T) {
	snap := emptySnapshot()
	snap["workbench"] = []catalog.Craft{craft("api-1", "Long A", 0, 30000, 120)}

	board := HotDeals(snap, 60, 3)
	if len(board.Overall) != 1 || len(board.Long) != 1 {
		t.Fatalf("Overall = %d, Long = %d, want 1 and 1", len(board.Overall), len(board.Long))
	}
	if board.Overall[0].Craft.ID != board.Long[0].Craft.ID {
		t.Error("same craft should top both the overall and long lists")
	}
	if len(board.Quick) != 0 {
		t.Errorf("Quick = %d deals, want 0", len(board.Quick))
	}
}

func dealNames(ds []Deal) []string {
	out := make([]string, len(ds))
	for i, d := range ds {
		out[i] = d.Craft.Name
	}
	return out
}

func equalNames(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}
