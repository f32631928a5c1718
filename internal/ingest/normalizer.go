package ingest

import (
	"fmt"
	"math"

	"hideout-tracker/internal/catalog"
	"hideout-tracker/internal/market"
)

// Normalize transforms raw craft listings into a full catalog replacement.
// Records for unmapped stations are dropped silently (out-of-domain), as are
// records with no reward. Every station key is present in the result even
// when nothing mapped to it.
//
// Identifiers are sequential and scoped to this pass; they live in the
// "api-" namespace, disjoint from user-created "manual-" IDs.
func Normalize(listings []market.CraftListing) map[string][]catalog.Craft {
	out := make(map[string][]catalog.Craft, len(catalog.Stations))
	for _, s := range catalog.Stations {
		out[s.ID] = []catalog.Craft{}
	}

	seq := 0
	for _, l := range listings {
		station, ok := catalog.StationByMarketName(l.Station.Name)
		if !ok {
			continue
		}
		if len(l.RewardItems) == 0 {
			continue
		}
		// Single-output model: the first reward is the produced item,
		// the rest are ignored.
		reward := l.RewardItems[0]
		qty := reward.Count
		if qty <= 0 {
			qty = 1
		}

		var totalCost float64
		materials := make([]catalog.Material, 0, len(l.RequiredItems))
		for _, req := range l.RequiredItems {
			price := req.UnitPrice()
			lineCost := price * float64(req.Count)
			totalCost += lineCost
			materials = append(materials, catalog.Material{
				Name:      req.Item.Name,
				Quantity:  req.Count,
				UnitPrice: roundPrice(price),
				TotalCost: roundPrice(lineCost),
			})
		}

		seq++
		craft := catalog.Craft{
			ID:             fmt.Sprintf("api-%d", seq),
			Name:           reward.Item.Name,
			MaterialCost:   roundPrice(totalCost),
			SellPrice:      roundPrice(reward.UnitPrice() * float64(qty)),
			OutputQuantity: qty,
			CraftTime:      minutesFromSeconds(l.Duration),
			Source:         catalog.SourceAPI,
			Materials:      materials,
		}
		out[station.ID] = append(out[station.ID], craft)
	}

	for id := range out {
		catalog.SortByProfitPerHourDesc(out[id])
	}
	return out
}

func roundPrice(v float64) int {
	return int(math.Round(v))
}

// minutesFromSeconds converts the source's duration to whole minutes.
// This is the declared-unit conversion; catalog.NormalizeDuration separately
// catches values that skipped it.
func minutesFromSeconds(seconds int) int {
	return int(math.Round(float64(seconds) / 60))
}
