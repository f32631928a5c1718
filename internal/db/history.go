package db

import (
	"fmt"
	"time"

	"hideout-tracker/internal/history"
)

// The DB satisfies history.Store.
var _ history.Store = (*DB)(nil)

// SaveSnapshot writes one day's price snapshot in a single transaction.
func (d *DB) SaveSnapshot(s history.Snapshot) error {
	tx, err := d.sql.Begin()
	if err != nil {
		return fmt.Errorf("begin snapshot save: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM price_snapshots WHERE date = ?", s.Date); err != nil {
		return fmt.Errorf("clear snapshot %s: %w", s.Date, err)
	}
	for key, m := range s.Entries {
		if _, err := tx.Exec(`
			INSERT INTO price_snapshots (date, craft_key, sell_price, material_cost, profit, profit_per_hour)
			VALUES (?, ?, ?, ?, ?, ?)`,
			s.Date, key, m.SellPrice, m.MaterialCost, m.Profit, m.ProfitPerHour,
		); err != nil {
			return fmt.Errorf("insert snapshot entry %s/%s: %w", s.Date, key, err)
		}
	}
	return tx.Commit()
}

// DeleteSnapshot removes one day's snapshot (retention pruning).
func (d *DB) DeleteSnapshot(date string) error {
	if _, err := d.sql.Exec("DELETE FROM price_snapshots WHERE date = ?", date); err != nil {
		return fmt.Errorf("delete snapshot %s: %w", date, err)
	}
	return nil
}

// LoadSnapshots reads the full snapshot log, oldest first.
func (d *DB) LoadSnapshots() ([]history.Snapshot, error) {
	rows, err := d.sql.Query(`
		SELECT date, craft_key, sell_price, material_cost, profit, profit_per_hour
		FROM price_snapshots ORDER BY date`)
	if err != nil {
		return nil, fmt.Errorf("load snapshots: %w", err)
	}
	defer rows.Close()

	byDate := make(map[string]history.Snapshot)
	var dates []string
	for rows.Next() {
		var date, key string
		var m history.Metrics
		if err := rows.Scan(&date, &key, &m.SellPrice, &m.MaterialCost, &m.Profit, &m.ProfitPerHour); err != nil {
			return nil, fmt.Errorf("scan snapshot: %w", err)
		}
		s, ok := byDate[date]
		if !ok {
			s = history.Snapshot{Date: date, Entries: make(map[string]history.Metrics)}
			dates = append(dates, date)
		}
		s.Entries[key] = m
		byDate[date] = s
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load snapshots: %w", err)
	}

	out := make([]history.Snapshot, 0, len(dates))
	for _, date := range dates {
		out = append(out, byDate[date])
	}
	return out, nil
}

// AppendCompletion persists one completion event.
func (d *DB) AppendCompletion(ev history.CompletionEvent) error {
	_, err := d.sql.Exec(`
		INSERT INTO completions (id, craft_id, station_id, name, profit, craft_time, material_cost, sell_price, timestamp)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		ev.ID, ev.CraftID, ev.StationID, ev.Name, ev.Profit, ev.CraftTime,
		ev.MaterialCost, ev.SellPrice, ev.Timestamp.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("append completion %s: %w", ev.ID, err)
	}
	return nil
}

// ClearCompletions wipes the completion log.
func (d *DB) ClearCompletions() error {
	if _, err := d.sql.Exec("DELETE FROM completions"); err != nil {
		return fmt.Errorf("clear completions: %w", err)
	}
	return nil
}

// LoadCompletions reads the completion log in append order.
func (d *DB) LoadCompletions() ([]history.CompletionEvent, error) {
	rows, err := d.sql.Query(`
		SELECT id, craft_id, station_id, name, profit, craft_time, material_cost, sell_price, timestamp
		FROM completions ORDER BY timestamp, id`)
	if err != nil {
		return nil, fmt.Errorf("load completions: %w", err)
	}
	defer rows.Close()

	var out []history.CompletionEvent
	for rows.Next() {
		var ev history.CompletionEvent
		var ts string
		if err := rows.Scan(&ev.ID, &ev.CraftID, &ev.StationID, &ev.Name, &ev.Profit,
			&ev.CraftTime, &ev.MaterialCost, &ev.SellPrice, &ts); err != nil {
			return nil, fmt.Errorf("scan completion: %w", err)
		}
		ev.Timestamp, _ = time.Parse(time.RFC3339, ts)
		out = append(out, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load completions: %w", err)
	}
	return out, nil
}
