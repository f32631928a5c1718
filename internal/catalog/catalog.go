package catalog

import (
	"sort"
	"strings"

	"github.com/google/uuid"
)

// Catalog maps station IDs to their ordered craft lists. Insertion order is
// the display order: bulk ingestion sorts by descending profit/hour, user
// edits never reorder.
//
// Catalog is not safe for concurrent use; the owning controller serializes
// access.
type Catalog struct {
	crafts map[string][]Craft
}

// New returns an empty catalog with every station key present, so consumers
// never index into a missing list.
func New() *Catalog {
	c := &Catalog{crafts: make(map[string][]Craft, len(Stations))}
	for _, s := range Stations {
		c.crafts[s.ID] = []Craft{}
	}
	return c
}

// FromMap builds a catalog from a station→crafts map (e.g. loaded state),
// filling in any missing station keys.
func FromMap(m map[string][]Craft) *Catalog {
	c := New()
	for id, list := range m {
		c.crafts[id] = append([]Craft{}, list...)
	}
	return c
}

// Crafts returns a copy of one station's ordered craft list.
func (c *Catalog) Crafts(stationID string) []Craft {
	return append([]Craft{}, c.crafts[stationID]...)
}

// Snapshot returns a deep copy of the whole catalog for read-only consumers.
func (c *Catalog) Snapshot() map[string][]Craft {
	out := make(map[string][]Craft, len(c.crafts))
	for id, list := range c.crafts {
		cp := make([]Craft, len(list))
		copy(cp, list)
		out[id] = cp
	}
	return out
}

// Count returns the total number of crafts across all stations.
func (c *Catalog) Count() int {
	n := 0
	for _, list := range c.crafts {
		n += len(list)
	}
	return n
}

// AddCraft appends a user-entered craft to a station. The generated ID lives
// in a namespace disjoint from API-sourced IDs.
func (c *Catalog) AddCraft(stationID string, in CraftInput) Craft {
	craft := Craft{
		ID:             "manual-" + uuid.NewString(),
		Name:           in.Name,
		MaterialCost:   in.MaterialCost,
		SellPrice:      in.SellPrice,
		OutputQuantity: 1,
		CraftTime:      in.CraftTime,
		Source:         SourceManual,
	}
	c.crafts[stationID] = append(c.crafts[stationID], craft)
	return craft
}

// EditCraft replaces the editable fields of a craft. The identifier and
// favorite flag survive; the source becomes manual since the stored prices
// no longer track the market. Returns false (and does nothing) when the
// craft is not found, e.g. a stale reference after a refresh.
func (c *Catalog) EditCraft(stationID, craftID string, in CraftInput) bool {
	list := c.crafts[stationID]
	for i := range list {
		if list[i].ID == craftID {
			list[i].Name = in.Name
			list[i].MaterialCost = in.MaterialCost
			list[i].SellPrice = in.SellPrice
			list[i].CraftTime = in.CraftTime
			list[i].Source = SourceManual
			return true
		}
	}
	return false
}

// DeleteCraft removes a craft by identity. No-op when absent.
func (c *Catalog) DeleteCraft(stationID, craftID string) bool {
	list := c.crafts[stationID]
	for i := range list {
		if list[i].ID == craftID {
			c.crafts[stationID] = append(list[:i], list[i+1:]...)
			return true
		}
	}
	return false
}

// ToggleFavorite flips the favorite flag. No-op when absent.
func (c *Catalog) ToggleFavorite(stationID, craftID string) bool {
	list := c.crafts[stationID]
	for i := range list {
		if list[i].ID == craftID {
			list[i].Favorite = !list[i].Favorite
			return true
		}
	}
	return false
}

// Find returns a craft by identity.
func (c *Catalog) Find(stationID, craftID string) (Craft, bool) {
	for _, craft := range c.crafts[stationID] {
		if craft.ID == craftID {
			return craft, true
		}
	}
	return Craft{}, false
}

// ReplaceAll swaps in a fresh station→crafts map wholesale (bulk ingestion).
// Every station key is present afterwards even if its list is empty.
func (c *Catalog) ReplaceAll(next map[string][]Craft) {
	fresh := New()
	for id, list := range next {
		fresh.crafts[id] = append([]Craft{}, list...)
	}
	c.crafts = fresh.crafts
}

// NormalizeDurations applies the seconds-as-minutes correction to every
// stored craft and reports how many changed, so the caller can re-persist
// the corrected state.
func (c *Catalog) NormalizeDurations() int {
	changed := 0
	for _, list := range c.crafts {
		for i := range list {
			if fixed := NormalizeDuration(list[i].CraftTime); fixed != list[i].CraftTime {
				list[i].CraftTime = fixed
				changed++
			}
		}
	}
	return changed
}

// Filter categories.
const (
	FilterAll        = "all"
	FilterProfitable = "profitable"
	FilterLosses     = "losses"
	FilterFavorites  = "favorites"
)

// Filter returns a new slice of one station's crafts matching the category
// and a case-insensitive substring search on the name. Stored order is
// preserved and never mutated.
func (c *Catalog) Filter(stationID, category, search string) []Craft {
	search = strings.ToLower(strings.TrimSpace(search))
	var out []Craft
	for _, craft := range c.crafts[stationID] {
		if search != "" && !strings.Contains(strings.ToLower(craft.Name), search) {
			continue
		}
		switch category {
		case FilterProfitable:
			if craft.SellPrice <= craft.MaterialCost {
				continue
			}
		case FilterLosses:
			if craft.SellPrice > craft.MaterialCost {
				continue
			}
		case FilterFavorites:
			if !craft.Favorite {
				continue
			}
		}
		out = append(out, craft)
	}
	return out
}

// Sortable fields.
const (
	SortByName          = "name"
	SortByMaterialCost  = "materialCost"
	SortBySellPrice     = "sellPrice"
	SortByProfit        = "profit"
	SortByCraftTime     = "craftTime"
	SortByProfitPerHour = "profitPerHour"
)

// SortState tracks the last direction used per field so repeated sorts on
// the same field toggle between descending and ascending. First sort on a
// field is descending.
type SortState map[string]bool // field -> ascending

// Toggle flips and returns the direction for a field: true = ascending.
func (s SortState) Toggle(field string) bool {
	prev, seen := s[field]
	asc := false
	if seen {
		asc = !prev
	}
	s[field] = asc
	return asc
}

// SortCrafts orders a slice in place by the given field. Crafts with an
// undefined profit/hour (zero duration) sort to the end regardless of
// direction. Tie order is unspecified.
func SortCrafts(list []Craft, field string, ascending bool) {
	key := func(c Craft) float64 {
		switch field {
		case SortByMaterialCost:
			return float64(c.MaterialCost)
		case SortBySellPrice:
			return float64(c.SellPrice)
		case SortByProfit:
			return float64(c.Profit())
		case SortByCraftTime:
			return float64(c.CraftTime)
		case SortByProfitPerHour:
			pph, ok := c.ProfitPerHour()
			if !ok {
				if ascending {
					return 1e18
				}
				return -1e18
			}
			return pph
		default:
			return 0
		}
	}

	if field == SortByName {
		sort.Slice(list, func(i, j int) bool {
			a, b := strings.ToLower(list[i].Name), strings.ToLower(list[j].Name)
			if ascending {
				return a < b
			}
			return a > b
		})
		return
	}

	sort.Slice(list, func(i, j int) bool {
		if ascending {
			return key(list[i]) < key(list[j])
		}
		return key(list[i]) > key(list[j])
	})
}

// SortByProfitPerHourDesc orders crafts by descending profit/hour, used
// after bulk ingestion. Zero-duration crafts land at the end.
func SortByProfitPerHourDesc(list []Craft) {
	SortCrafts(list, SortByProfitPerHour, false)
}
