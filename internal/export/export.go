package export

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"hideout-tracker/internal/catalog"
)

var columns = []string{
	"name", "materialCost", "sellPrice", "profit",
	"craftTime", "profitPerHour", "favorite", "materials",
}

// row flattens one craft into its export cells. Undefined rate and absent
// materials both render as "-".
func row(c catalog.Craft) []string {
	rate := "-"
	if r, ok := c.ProfitPerHour(); ok {
		rate = strconv.Itoa(int(math.Round(r)))
	}
	fav := "no"
	if c.Favorite {
		fav = "yes"
	}
	return []string{
		c.Name,
		strconv.Itoa(c.MaterialCost),
		strconv.Itoa(c.SellPrice),
		strconv.Itoa(c.Profit()),
		strconv.Itoa(c.CraftTime),
		rate,
		fav,
		materialsCell(c.Materials),
	}
}

func materialsCell(materials []catalog.Material) string {
	if len(materials) == 0 {
		return "-"
	}
	parts := make([]string, len(materials))
	for i, m := range materials {
		parts[i] = fmt.Sprintf("%s x%d", m.Name, m.Quantity)
	}
	return strings.Join(parts, "; ")
}

// Filename suggests a download name for one station's export.
func Filename(stationID, ext string) string {
	return "hideout-" + stationID + "-crafts." + ext
}
