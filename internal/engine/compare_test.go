package engine

import "testing"

func TestCompare_PerMetricWinners(t *testing.T) {
	a := craft("manual-1", "Cheap", 1000, 5000, 60)  // profit 4000, 4000/h
	b := craft("manual-2", "Pricey", 3000, 9000, 30) // profit 6000, 12000/h

	c := Compare(a, b)
	if c.MaterialCost != WinnerA {
		t.Errorf("MaterialCost winner = %q, want a (lower cost wins)", c.MaterialCost)
	}
	if c.SellPrice != WinnerB {
		t.Errorf("SellPrice winner = %q, want b", c.SellPrice)
	}
	if c.Profit != WinnerB {
		t.Errorf("Profit winner = %q, want b", c.Profit)
	}
	if c.CraftTime != WinnerB {
		t.Errorf("CraftTime winner = %q, want b (shorter wins)", c.CraftTime)
	}
	if c.ProfitPerHour != WinnerB {
		t.Errorf("ProfitPerHour winner = %q, want b", c.ProfitPerHour)
	}
}

func TestCompare_Ties(t *testing.T) {
	a := craft("manual-1", "Left", 2000, 6000, 45)
	b := craft("manual-2", "Right", 2000, 6000, 45)

	c := Compare(a, b)
	for name, w := range map[string]Winner{
		"MaterialCost":  c.MaterialCost,
		"SellPrice":     c.SellPrice,
		"Profit":        c.Profit,
		"CraftTime":     c.CraftTime,
		"ProfitPerHour": c.ProfitPerHour,
	} {
		if w != WinnerTie {
			t.Errorf("%s winner = %q, want tie", name, w)
		}
	}
}

func TestCompare_DefinedRateBeatsUndefined(t *testing.T) {
	a := craft("manual-1", "Timed", 0, 1000, 30)
	b := craft("manual-2", "Untimed", 0, 5000, 0)

	if got := Compare(a, b).ProfitPerHour; got != WinnerA {
		t.Errorf("ProfitPerHour winner = %q, want a (defined rate)", got)
	}
	if got := Compare(b, b).ProfitPerHour; got != WinnerTie {
		t.Errorf("both undefined should tie, got %q", got)
	}
}
