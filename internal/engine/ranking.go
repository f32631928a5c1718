package engine

import (
	"sort"

	"hideout-tracker/internal/catalog"
)

// Station tiers, derived from average profit/hour over profitable crafts.
const (
	TierHot  = "hot"
	TierWarm = "warm"
	TierCold = "cold"
)

// StationRank is one station's standing in the profitability ranking.
type StationRank struct {
	StationID        string  `json:"stationId"`
	StationName      string  `json:"stationName"`
	AvgProfitPerHour float64 `json:"avgProfitPerHour"`
	CraftCount       int     `json:"craftCount"`
	Tier             string  `json:"tier"`
	Top              bool    `json:"top"`
}

// RankStations ranks every station by the average profit/hour of its
// profitable crafts (profit > 0 and positive duration). Stations with no
// profitable crafts are left out entirely rather than ranked at zero.
// The single best station above the hot threshold carries the top flag.
func RankStations(snapshot map[string][]catalog.Craft, hotThreshold, warmThreshold float64) []StationRank {
	ranks := make([]StationRank, 0, len(catalog.Stations))
	for _, s := range catalog.Stations {
		var sum float64
		count := 0
		for _, c := range snapshot[s.ID] {
			rate, ok := c.ProfitPerHour()
			if !ok || c.Profit() <= 0 {
				continue
			}
			sum += rate
			count++
		}
		if count == 0 {
			continue
		}
		avg := sum / float64(count)
		ranks = append(ranks, StationRank{
			StationID:        s.ID,
			StationName:      s.Name,
			AvgProfitPerHour: avg,
			CraftCount:       count,
			Tier:             tierFor(avg, hotThreshold, warmThreshold),
		})
	}

	sort.SliceStable(ranks, func(i, j int) bool {
		return ranks[i].AvgProfitPerHour > ranks[j].AvgProfitPerHour
	})
	if len(ranks) > 0 && ranks[0].Tier == TierHot {
		ranks[0].Top = true
	}
	return ranks
}

func tierFor(avg, hot, warm float64) string {
	switch {
	case avg > hot:
		return TierHot
	case avg >= warm:
		return TierWarm
	default:
		return TierCold
	}
}

// Deal is one craft surfaced on a hot-deal list.
type Deal struct {
	StationID     string        `json:"stationId"`
	StationName   string        `json:"stationName"`
	Craft         catalog.Craft `json:"craft"`
	ProfitPerHour float64       `json:"profitPerHour"`
}

// DealBoard holds the three independent top-N lists. A craft may appear on
// more than one of them.
type DealBoard struct {
	Overall []Deal `json:"overall"`
	Quick   []Deal `json:"quick"`
	Long    []Deal `json:"long"`
}

// HotDeals scans every station's profitable crafts and returns the top
// `count` by profit/hour: overall, among crafts shorter than longMinutes,
// and among crafts at least longMinutes.
func HotDeals(snapshot map[string][]catalog.Craft, longMinutes, count int) DealBoard {
	var all []Deal
	for _, s := range catalog.Stations {
		for _, c := range snapshot[s.ID] {
			rate, ok := c.ProfitPerHour()
			if !ok || c.Profit() <= 0 || rate <= 0 {
				continue
			}
			all = append(all, Deal{
				StationID:     s.ID,
				StationName:   s.Name,
				Craft:         c,
				ProfitPerHour: rate,
			})
		}
	}
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].ProfitPerHour > all[j].ProfitPerHour
	})

	board := DealBoard{
		Overall: topDeals(all, func(Deal) bool { return true }, count),
		Quick:   topDeals(all, func(d Deal) bool { return d.Craft.CraftTime < longMinutes }, count),
		Long:    topDeals(all, func(d Deal) bool { return d.Craft.CraftTime >= longMinutes }, count),
	}
	return board
}

func topDeals(sorted []Deal, keep func(Deal) bool, count int) []Deal {
	out := []Deal{}
	for _, d := range sorted {
		if !keep(d) {
			continue
		}
		out = append(out, d)
		if len(out) == count {
			break
		}
	}
	return out
}
