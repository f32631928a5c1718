package engine

import (
	"sort"

	"hideout-tracker/internal/catalog"
)

// PlanRow is one station's contribution to a budget plan: its single best
// craft repeated as many whole times as the budget allows.
type PlanRow struct {
	StationID     string        `json:"stationId"`
	StationName   string        `json:"stationName"`
	Craft         catalog.Craft `json:"craft"`
	Repetitions   int           `json:"repetitions"`
	TimeUsed      int           `json:"timeUsed"`
	TotalProfit   int           `json:"totalProfit"`
	ProfitPerHour float64       `json:"profitPerHour"`
	Best          bool          `json:"best"`
}

// Plan is the result of a budget run over the whole catalog.
type Plan struct {
	BudgetMinutes int       `json:"budgetMinutes"`
	Rows          []PlanRow `json:"rows"`
}

// PlanBudget picks, per station, the profitable craft with the highest
// profit/hour and repeats it within the budget. Stations whose best craft
// does not fit even once are excluded. Rows come back sorted by rate, and
// the overall best rate carries the best flag.
//
// This is deliberately one craft type per station, not a mixed schedule.
func PlanBudget(snapshot map[string][]catalog.Craft, budgetMinutes int) Plan {
	return plan(snapshot, budgetMinutes, 0, byRate)
}

// PlanOffline is the long-craft variant: only crafts of at least longMinutes
// qualify (runs left unattended), and stations rank by total profit for the
// whole window rather than by rate.
func PlanOffline(snapshot map[string][]catalog.Craft, budgetMinutes, longMinutes int) Plan {
	return plan(snapshot, budgetMinutes, longMinutes, byTotalProfit)
}

func byRate(a, b PlanRow) bool        { return a.ProfitPerHour > b.ProfitPerHour }
func byTotalProfit(a, b PlanRow) bool { return a.TotalProfit > b.TotalProfit }

func plan(snapshot map[string][]catalog.Craft, budgetMinutes, minCraftTime int, less func(a, b PlanRow) bool) Plan {
	p := Plan{BudgetMinutes: budgetMinutes, Rows: []PlanRow{}}
	if budgetMinutes <= 0 {
		return p
	}

	for _, s := range catalog.Stations {
		best, rate, found := bestCraft(snapshot[s.ID], minCraftTime)
		if !found {
			continue
		}
		reps := budgetMinutes / best.CraftTime
		if reps == 0 {
			continue
		}
		p.Rows = append(p.Rows, PlanRow{
			StationID:     s.ID,
			StationName:   s.Name,
			Craft:         best,
			Repetitions:   reps,
			TimeUsed:      reps * best.CraftTime,
			TotalProfit:   reps * best.Profit(),
			ProfitPerHour: rate,
		})
	}

	sort.SliceStable(p.Rows, func(i, j int) bool { return less(p.Rows[i], p.Rows[j]) })
	if len(p.Rows) > 0 {
		p.Rows[0].Best = true
	}
	return p
}

// bestCraft returns the highest-rate profitable craft with craftTime of at
// least minCraftTime. Ties keep the first in input order.
func bestCraft(crafts []catalog.Craft, minCraftTime int) (catalog.Craft, float64, bool) {
	var best catalog.Craft
	bestRate := 0.0
	found := false
	for _, c := range crafts {
		rate, ok := c.ProfitPerHour()
		if !ok || c.Profit() <= 0 || c.CraftTime < minCraftTime {
			continue
		}
		if !found || rate > bestRate {
			best, bestRate, found = c, rate, true
		}
	}
	return best, bestRate, found
}
