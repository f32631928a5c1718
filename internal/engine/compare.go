package engine

import "hideout-tracker/internal/catalog"

// Winner marks which side of a comparison takes a metric.
type Winner string

const (
	WinnerA   Winner = "a"
	WinnerB   Winner = "b"
	WinnerTie Winner = "tie"
)

// Comparison is a two-craft side-by-side with a per-metric winner.
// Lower wins for costs and time, higher wins everywhere else.
type Comparison struct {
	A catalog.Craft `json:"a"`
	B catalog.Craft `json:"b"`

	MaterialCost  Winner `json:"materialCost"`
	SellPrice     Winner `json:"sellPrice"`
	Profit        Winner `json:"profit"`
	CraftTime     Winner `json:"craftTime"`
	ProfitPerHour Winner `json:"profitPerHour"`
}

// Compare evaluates two crafts metric by metric.
func Compare(a, b catalog.Craft) Comparison {
	return Comparison{
		A:             a,
		B:             b,
		MaterialCost:  lowerWins(a.MaterialCost, b.MaterialCost),
		SellPrice:     higherWins(a.SellPrice, b.SellPrice),
		Profit:        higherWins(a.Profit(), b.Profit()),
		CraftTime:     lowerWins(a.CraftTime, b.CraftTime),
		ProfitPerHour: rateWinner(a, b),
	}
}

func lowerWins(a, b int) Winner {
	switch {
	case a < b:
		return WinnerA
	case b < a:
		return WinnerB
	default:
		return WinnerTie
	}
}

func higherWins(a, b int) Winner {
	switch {
	case a > b:
		return WinnerA
	case b > a:
		return WinnerB
	default:
		return WinnerTie
	}
}

// rateWinner treats a defined rate as beating an undefined one; two
// undefined rates tie.
func rateWinner(a, b catalog.Craft) Winner {
	ra, okA := a.ProfitPerHour()
	rb, okB := b.ProfitPerHour()
	switch {
	case okA && !okB:
		return WinnerA
	case okB && !okA:
		return WinnerB
	case !okA && !okB:
		return WinnerTie
	case ra > rb:
		return WinnerA
	case rb > ra:
		return WinnerB
	default:
		return WinnerTie
	}
}
