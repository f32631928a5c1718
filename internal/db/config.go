package db

import (
	"fmt"
	"strconv"

	"hideout-tracker/internal/config"
)

// LoadConfig reads config from SQLite. If empty, returns defaults.
func (d *DB) LoadConfig() *config.Config {
	cfg := config.Default()

	rows, err := d.sql.Query("SELECT key, value FROM config")
	if err != nil {
		return cfg
	}
	defer rows.Close()

	m := make(map[string]string)
	for rows.Next() {
		var k, v string
		rows.Scan(&k, &v)
		m[k] = v
	}

	if v, ok := m["market_api_url"]; ok {
		cfg.MarketAPIURL = v
	}
	if v, ok := m["request_timeout_sec"]; ok {
		cfg.RequestTimeoutSec, _ = strconv.Atoi(v)
	}
	if v, ok := m["hot_tier_threshold"]; ok {
		cfg.HotTierThreshold, _ = strconv.ParseFloat(v, 64)
	}
	if v, ok := m["warm_tier_threshold"]; ok {
		cfg.WarmTierThreshold, _ = strconv.ParseFloat(v, 64)
	}
	if v, ok := m["long_craft_minutes"]; ok {
		cfg.LongCraftMinutes, _ = strconv.Atoi(v)
	}
	if v, ok := m["hot_deal_count"]; ok {
		cfg.HotDealCount, _ = strconv.Atoi(v)
	}
	if v, ok := m["snapshot_retention_days"]; ok {
		cfg.SnapshotRetentionDays, _ = strconv.Atoi(v)
	}
	if v, ok := m["default_budget_hours"]; ok {
		cfg.DefaultBudgetHours, _ = strconv.Atoi(v)
	}
	return cfg
}

// SaveConfig writes all config values to SQLite.
func (d *DB) SaveConfig(cfg *config.Config) error {
	kv := map[string]string{
		"market_api_url":          cfg.MarketAPIURL,
		"request_timeout_sec":     strconv.Itoa(cfg.RequestTimeoutSec),
		"hot_tier_threshold":      strconv.FormatFloat(cfg.HotTierThreshold, 'f', -1, 64),
		"warm_tier_threshold":     strconv.FormatFloat(cfg.WarmTierThreshold, 'f', -1, 64),
		"long_craft_minutes":      strconv.Itoa(cfg.LongCraftMinutes),
		"hot_deal_count":          strconv.Itoa(cfg.HotDealCount),
		"snapshot_retention_days": strconv.Itoa(cfg.SnapshotRetentionDays),
		"default_budget_hours":    strconv.Itoa(cfg.DefaultBudgetHours),
	}

	tx, err := d.sql.Begin()
	if err != nil {
		return fmt.Errorf("begin config save: %w", err)
	}
	defer tx.Rollback()

	for k, v := range kv {
		if _, err := tx.Exec(
			"INSERT INTO config (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
			k, v,
		); err != nil {
			return fmt.Errorf("save config %s: %w", k, err)
		}
	}
	return tx.Commit()
}

// Theme returns the persisted theme preference, defaulting to "dark".
func (d *DB) Theme() string {
	theme := "dark"
	d.sql.QueryRow("SELECT value FROM config WHERE key = 'theme'").Scan(&theme)
	return theme
}

// SetTheme persists the theme preference.
func (d *DB) SetTheme(theme string) error {
	_, err := d.sql.Exec(
		"INSERT INTO config (key, value) VALUES ('theme', ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		theme,
	)
	if err != nil {
		return fmt.Errorf("save theme: %w", err)
	}
	return nil
}
