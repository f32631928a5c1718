package catalog

// Craft sources. Manually edited API crafts lose their "api" tag since
// their prices no longer track the market.
const (
	SourceAPI    = "api"
	SourceManual = "manual"
)

// Material is one required input line of an API-sourced craft.
type Material struct {
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice int    `json:"unit_price"`
	TotalCost int    `json:"total_cost"`
}

// Craft represents one producible item at one station.
// MaterialCost and SellPrice are in roubles; CraftTime is in minutes.
type Craft struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	MaterialCost   int        `json:"material_cost"`
	SellPrice      int        `json:"sell_price"`
	OutputQuantity int        `json:"output_quantity"`
	CraftTime      int        `json:"craft_time"`
	Favorite       bool       `json:"favorite"`
	Source         string     `json:"source"`
	Materials      []Material `json:"materials,omitempty"`
}

// CraftInput carries the user-editable fields of a craft.
type CraftInput struct {
	Name         string `json:"name"`
	MaterialCost int    `json:"material_cost"`
	SellPrice    int    `json:"sell_price"`
	CraftTime    int    `json:"craft_time"`
}

// Station is a fixed production location. MarketName is the name the
// external pricing source uses for it.
type Station struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	MarketName string `json:"-"`
}
