package config

import "testing"

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.MarketAPIURL == "" {
		t.Error("MarketAPIURL should have a default")
	}
	if cfg.RequestTimeoutSec != 15 {
		t.Errorf("RequestTimeoutSec = %d, want 15", cfg.RequestTimeoutSec)
	}
	if cfg.HotTierThreshold <= cfg.WarmTierThreshold {
		t.Errorf("hot threshold (%v) must exceed warm threshold (%v)",
			cfg.HotTierThreshold, cfg.WarmTierThreshold)
	}
	if cfg.SnapshotRetentionDays != 30 {
		t.Errorf("SnapshotRetentionDays = %d, want 30", cfg.SnapshotRetentionDays)
	}
	if cfg.HotDealCount != 3 {
		t.Errorf("HotDealCount = %d, want 3", cfg.HotDealCount)
	}
}
