package market

// ItemPrice carries the two alternative market price fields for an item.
// Both are optional in the source; resolution order is UnitPrice's concern.
type ItemPrice struct {
	Name        string   `json:"name"`
	Avg24hPrice *float64 `json:"avg24hPrice"`
	BasePrice   *float64 `json:"basePrice"`
}

// ItemStack is an item with a quantity, as a craft input or output.
type ItemStack struct {
	Item  ItemPrice `json:"item"`
	Count int       `json:"count"`
}

// UnitPrice resolves the price of one unit: 24h average when present,
// base price as fallback, 0 when the source has neither.
func (s ItemStack) UnitPrice() float64 {
	if s.Item.Avg24hPrice != nil {
		return *s.Item.Avg24hPrice
	}
	if s.Item.BasePrice != nil {
		return *s.Item.BasePrice
	}
	return 0
}

// StationRef names the hideout station a craft belongs to, as the source
// spells it.
type StationRef struct {
	Name string `json:"name"`
}

// CraftListing mirrors one craft record from the pricing source.
// Duration is in seconds.
type CraftListing struct {
	Station       StationRef  `json:"station"`
	Level         int         `json:"level"`
	Duration      int         `json:"duration"`
	RequiredItems []ItemStack `json:"requiredItems"`
	RewardItems   []ItemStack `json:"rewardItems"`
}

// craftsQuery asks the pricing source for every hideout craft with the
// per-item price fields the normalizer needs.
const craftsQuery = `{
  crafts {
    station { name }
    level
    duration
    requiredItems { item { name avg24hPrice basePrice } count }
    rewardItems { item { name avg24hPrice basePrice } count }
  }
}`
