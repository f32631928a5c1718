package config

// Config holds application settings (in-memory representation).
// Persistence is handled by the internal/db package.
type Config struct {
	// MarketAPIURL is the external pricing endpoint queried on refresh.
	MarketAPIURL string `json:"market_api_url"`
	// RequestTimeoutSec bounds a single refresh fetch.
	RequestTimeoutSec int `json:"request_timeout_sec"`

	// Station tier thresholds on average profit/hour.
	HotTierThreshold  float64 `json:"hot_tier_threshold"`
	WarmTierThreshold float64 `json:"warm_tier_threshold"`

	// LongCraftMinutes splits quick from long/offline crafts.
	LongCraftMinutes int `json:"long_craft_minutes"`
	// HotDealCount is the size of each hot-deal list.
	HotDealCount int `json:"hot_deal_count"`
	// SnapshotRetentionDays bounds the daily price snapshot log.
	SnapshotRetentionDays int `json:"snapshot_retention_days"`
	// DefaultBudgetHours pre-fills the crafting planner.
	DefaultBudgetHours int `json:"default_budget_hours"`
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		MarketAPIURL:          "https://api.tarkov.dev/graphql",
		RequestTimeoutSec:     15,
		HotTierThreshold:      15000,
		WarmTierThreshold:     8000,
		LongCraftMinutes:      60,
		HotDealCount:          3,
		SnapshotRetentionDays: 30,
		DefaultBudgetHours:    8,
	}
}
