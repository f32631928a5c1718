package ingest

import (
	"testing"

	"hideout-tracker/internal/catalog"
	"hideout-tracker/internal/market"
)

func fptr(v float64) *float64 { return &v }

func listing(station string, durationSec int, required, rewards []market.ItemStack) market.CraftListing {
	return market.CraftListing{
		Station:       market.StationRef{Name: station},
		Duration:      durationSec,
		RequiredItems: required,
		RewardItems:   rewards,
	}
}

func stack(name string, avg, base *float64, count int) market.ItemStack {
	return market.ItemStack{
		Item:  market.ItemPrice{Name: name, Avg24hPrice: avg, BasePrice: base},
		Count: count,
	}
}

func TestNormalize_StationMappingCaseInsensitive(t *testing.T) {
	out := Normalize([]market.CraftListing{
		listing("water collector", 3300,
			[]market.ItemStack{stack("Filter", fptr(40000), nil, 1)},
			[]market.ItemStack{stack("Aquamari", fptr(95000), nil, 1)}),
	})
	if len(out["water-collector"]) != 1 {
		t.Fatalf("water-collector has %d crafts, want 1", len(out["water-collector"]))
	}
	got := out["water-collector"][0]
	if got.Name != "Aquamari" {
		t.Errorf("craft name = %q", got.Name)
	}
}

func TestNormalize_UnmappedStationDroppedSilently(t *testing.T) {
	out := Normalize([]market.CraftListing{
		listing("Bitcoin Farm", 600,
			nil,
			[]market.ItemStack{stack("Bitcoin", fptr(300000), nil, 1)}),
	})
	total := 0
	for _, list := range out {
		total += len(list)
	}
	if total != 0 {
		t.Errorf("unmapped station produced %d crafts, want 0", total)
	}
	// Every station key must still be present, even if empty.
	for _, s := range catalog.Stations {
		if _, ok := out[s.ID]; !ok {
			t.Errorf("station key %q missing", s.ID)
		}
	}
}

func TestNormalize_NoRewardDropped(t *testing.T) {
	out := Normalize([]market.CraftListing{
		listing("Workbench", 600,
			[]market.ItemStack{stack("Wires", fptr(1000), nil, 2)},
			nil),
	})
	if len(out["workbench"]) != 0 {
		t.Errorf("rewardless record produced %d crafts, want 0", len(out["workbench"]))
	}
}

func TestNormalize_PriceFallbackChain(t *testing.T) {
	out := Normalize([]market.CraftListing{
		listing("Workbench", 1200,
			[]market.ItemStack{
				stack("Has avg", fptr(100), fptr(999), 2), // avg preferred: 200
				stack("Base only", nil, fptr(50), 3),      // fallback: 150
				stack("Unpriced", nil, nil, 5),            // 0
			},
			[]market.ItemStack{stack("Output", nil, fptr(400), 2)}),
	})
	got := out["workbench"][0]
	if got.MaterialCost != 350 {
		t.Errorf("MaterialCost = %d, want 350", got.MaterialCost)
	}
	if got.SellPrice != 800 {
		t.Errorf("SellPrice = %d, want 800 (base 400 x qty 2)", got.SellPrice)
	}
	if len(got.Materials) != 3 {
		t.Fatalf("materials = %d lines, want 3", len(got.Materials))
	}
	if got.Materials[0].TotalCost != 200 || got.Materials[1].TotalCost != 150 || got.Materials[2].TotalCost != 0 {
		t.Errorf("material line costs = %+v", got.Materials)
	}
	if got.Materials[2].UnitPrice != 0 {
		t.Errorf("unpriced material should cost 0, got %d", got.Materials[2].UnitPrice)
	}
}

func TestNormalize_SecondsToMinutesRounded(t *testing.T) {
	cases := []struct {
		seconds, wantMin int
	}{
		{3300, 55},
		{3630, 61}, // 60.5 rounds up
		{29, 0},
		{30, 1}, // 0.5 rounds up
	}
	for _, tc := range cases {
		out := Normalize([]market.CraftListing{
			listing("Lavatory", tc.seconds, nil,
				[]market.ItemStack{stack("Soap", fptr(42000), nil, 1)}),
		})
		got := out["lavatory"][0]
		if got.CraftTime != tc.wantMin {
			t.Errorf("duration %ds → %d min, want %d", tc.seconds, got.CraftTime, tc.wantMin)
		}
	}
}

func TestNormalize_FirstRewardOnly(t *testing.T) {
	out := Normalize([]market.CraftListing{
		listing("Medstation", 2700,
			nil,
			[]market.ItemStack{
				stack("Salewa", fptr(16666), nil, 1),
				stack("Bandage", fptr(5000), nil, 3),
			}),
	})
	if len(out["medstation"]) != 1 {
		t.Fatalf("got %d crafts, want 1", len(out["medstation"]))
	}
	got := out["medstation"][0]
	if got.Name != "Salewa" {
		t.Errorf("craft should be the first reward, got %q", got.Name)
	}
	if got.SellPrice != 16666 {
		t.Errorf("SellPrice = %d, want 16666", got.SellPrice)
	}
}

func TestNormalize_RewardQuantityMultiplies(t *testing.T) {
	out := Normalize([]market.CraftListing{
		listing("Nutrition Unit", 1800,
			nil,
			[]market.ItemStack{stack("Sugar", fptr(42500.4), nil, 2)}),
	})
	got := out["nutrition-unit"][0]
	if got.SellPrice != 85001 {
		t.Errorf("SellPrice = %d, want 85001 (rounded)", got.SellPrice)
	}
	if got.OutputQuantity != 2 {
		t.Errorf("OutputQuantity = %d, want 2", got.OutputQuantity)
	}
}

func TestNormalize_SequentialAPIIdentifiers(t *testing.T) {
	out := Normalize([]market.CraftListing{
		listing("Workbench", 600, nil, []market.ItemStack{stack("A", fptr(100), nil, 1)}),
		listing("Lavatory", 600, nil, []market.ItemStack{stack("B", fptr(100), nil, 1)}),
	})
	ids := map[string]bool{}
	for _, list := range out {
		for _, c := range list {
			ids[c.ID] = true
			if c.Source != catalog.SourceAPI {
				t.Errorf("craft %s source = %q, want api", c.ID, c.Source)
			}
			if c.Favorite {
				t.Errorf("craft %s should not start as favorite", c.ID)
			}
		}
	}
	if !ids["api-1"] || !ids["api-2"] {
		t.Errorf("expected sequential api-N identifiers, got %v", ids)
	}
}

func TestNormalize_StationListsSortedByRate(t *testing.T) {
	out := Normalize([]market.CraftListing{
		// 1000 profit / 60 min = 1000/h
		listing("Workbench", 3600,
			[]market.ItemStack{stack("In", fptr(1000), nil, 1)},
			[]market.ItemStack{stack("Slow", fptr(2000), nil, 1)}),
		// 1000 profit / 30 min = 2000/h
		listing("Workbench", 1800,
			[]market.ItemStack{stack("In", fptr(1000), nil, 1)},
			[]market.ItemStack{stack("Fast", fptr(2000), nil, 1)}),
	})
	list := out["workbench"]
	if len(list) != 2 {
		t.Fatalf("got %d crafts, want 2", len(list))
	}
	if list[0].Name != "Fast" {
		t.Errorf("best rate should sort first, got %q", list[0].Name)
	}
}
