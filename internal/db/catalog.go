package db

import (
	"fmt"

	"hideout-tracker/internal/catalog"
)

// SaveCatalog replaces the persisted catalog wholesale inside one
// transaction. A crash mid-save leaves the previous catalog intact.
func (d *DB) SaveCatalog(crafts map[string][]catalog.Craft) error {
	tx, err := d.sql.Begin()
	if err != nil {
		return fmt.Errorf("begin catalog save: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM craft_materials"); err != nil {
		return fmt.Errorf("clear materials: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM crafts"); err != nil {
		return fmt.Errorf("clear crafts: %w", err)
	}

	// Marks that a catalog has been persisted at least once, so an empty
	// table later means "user deleted everything", not "first run".
	if _, err := tx.Exec(
		"INSERT INTO config (key, value) VALUES ('catalog_saved', '1') ON CONFLICT(key) DO UPDATE SET value = excluded.value",
	); err != nil {
		return fmt.Errorf("mark catalog saved: %w", err)
	}

	for stationID, list := range crafts {
		for pos, c := range list {
			if _, err := tx.Exec(`
				INSERT INTO crafts (station_id, craft_id, position, name, material_cost,
					sell_price, output_quantity, craft_time, favorite, source)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				stationID, c.ID, pos, c.Name, c.MaterialCost,
				c.SellPrice, c.OutputQuantity, c.CraftTime, boolToInt(c.Favorite), c.Source,
			); err != nil {
				return fmt.Errorf("insert craft %s/%s: %w", stationID, c.ID, err)
			}
			for mpos, m := range c.Materials {
				if _, err := tx.Exec(`
					INSERT INTO craft_materials (station_id, craft_id, position, name, quantity, unit_price, total_cost)
					VALUES (?, ?, ?, ?, ?, ?, ?)`,
					stationID, c.ID, mpos, m.Name, m.Quantity, m.UnitPrice, m.TotalCost,
				); err != nil {
					return fmt.Errorf("insert material %s/%s/%d: %w", stationID, c.ID, mpos, err)
				}
			}
		}
	}
	return tx.Commit()
}

// LoadCatalog reads the persisted catalog. A database that has never seen
// a catalog save returns (nil, nil) so the caller can fall back to seed
// data; a deliberately emptied catalog comes back as an empty map.
func (d *DB) LoadCatalog() (map[string][]catalog.Craft, error) {
	rows, err := d.sql.Query(`
		SELECT station_id, craft_id, name, material_cost, sell_price,
			output_quantity, craft_time, favorite, source
		FROM crafts ORDER BY station_id, position`)
	if err != nil {
		return nil, fmt.Errorf("load crafts: %w", err)
	}
	defer rows.Close()

	crafts := make(map[string][]catalog.Craft)
	count := 0
	for rows.Next() {
		var stationID string
		var c catalog.Craft
		var fav int
		if err := rows.Scan(&stationID, &c.ID, &c.Name, &c.MaterialCost, &c.SellPrice,
			&c.OutputQuantity, &c.CraftTime, &fav, &c.Source); err != nil {
			return nil, fmt.Errorf("scan craft: %w", err)
		}
		c.Favorite = fav != 0
		crafts[stationID] = append(crafts[stationID], c)
		count++
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load crafts: %w", err)
	}
	if count == 0 && !d.catalogSaved() {
		return nil, nil
	}

	if err := d.loadMaterials(crafts); err != nil {
		return nil, err
	}
	// Stations that had nothing persisted still get a key.
	for _, s := range catalog.Stations {
		if _, ok := crafts[s.ID]; !ok {
			crafts[s.ID] = []catalog.Craft{}
		}
	}
	return crafts, nil
}

func (d *DB) loadMaterials(crafts map[string][]catalog.Craft) error {
	rows, err := d.sql.Query(`
		SELECT station_id, craft_id, name, quantity, unit_price, total_cost
		FROM craft_materials ORDER BY station_id, craft_id, position`)
	if err != nil {
		return fmt.Errorf("load materials: %w", err)
	}
	defer rows.Close()

	type key struct{ station, craft string }
	byCraft := make(map[key][]catalog.Material)
	for rows.Next() {
		var k key
		var m catalog.Material
		if err := rows.Scan(&k.station, &k.craft, &m.Name, &m.Quantity, &m.UnitPrice, &m.TotalCost); err != nil {
			return fmt.Errorf("scan material: %w", err)
		}
		byCraft[k] = append(byCraft[k], m)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("load materials: %w", err)
	}

	for stationID, list := range crafts {
		for i := range list {
			list[i].Materials = byCraft[key{stationID, list[i].ID}]
		}
	}
	return nil
}

func (d *DB) catalogSaved() bool {
	var v string
	d.sql.QueryRow("SELECT value FROM config WHERE key = 'catalog_saved'").Scan(&v)
	return v == "1"
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
