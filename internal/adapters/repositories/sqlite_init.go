package repositories

import (
	"database/sql"
	"errors"
	"fmt"
)

// Initialize the SQLite database schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createCitiesQuery := `
	CREATE TABLE IF NOT EXISTS cities (
		name TEXT PRIMARY KEY,
		is_warehouse INTEGER NOT NULL DEFAULT 0
	);
	`

	createRoutesQuery := `
	CREATE TABLE IF NOT EXISTS routes (
		from_city TEXT NOT NULL,
		to_city TEXT NOT NULL,
		distance REAL NOT NULL,
		PRIMARY KEY (from_city, to_city)
	);
	`

	createPackagesQuery := `
	CREATE TABLE IF NOT EXISTS packages (
		package_id INTEGER PRIMARY KEY,
		weight REAL NOT NULL,
		value REAL NOT NULL,
		destination TEXT NOT NULL
	);
	`

	createDronesQuery := `
	CREATE TABLE IF NOT EXISTS drones (
		drone_id INTEGER PRIMARY KEY,
		max_weight REAL NOT NULL,
		max_distance REAL NOT NULL
	);
	`

	statements := []string{
		createCitiesQuery,
		createRoutesQuery,
		createPackagesQuery,
		createDronesQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// Populate the SQLite database with scenario data from a JSON file.
func SeedFromJSON(db *sql.DB, jsonPath string) error {
	seed, err := readSeed(jsonPath)
	if err != nil {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed scenario: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, c := range seed.Cities {
		if _, err := tx.Exec(
			`INSERT OR REPLACE INTO cities (name, is_warehouse) VALUES (?, ?);`,
			c.Name, c.IsWarehouse,
		); err != nil {
			return fmt.Errorf("seed scenario: insert city %q: %w", c.Name, err)
		}
	}

	for _, r := range seed.Routes {
		if _, err := tx.Exec(
			`INSERT OR REPLACE INTO routes (from_city, to_city, distance) VALUES (?, ?, ?);`,
			r.From, r.To, r.Distance,
		); err != nil {
			return fmt.Errorf("seed scenario: insert route %q -> %q: %w", r.From, r.To, err)
		}
	}

	for _, p := range seed.Packages {
		if _, err := tx.Exec(
			`INSERT OR REPLACE INTO packages (package_id, weight, value, destination) VALUES (?, ?, ?, ?);`,
			p.PackageID, p.Weight, p.Value, p.Destination,
		); err != nil {
			return fmt.Errorf("seed scenario: insert package_id=%d: %w", p.PackageID, err)
		}
	}

	for _, d := range seed.Drones {
		if _, err := tx.Exec(
			`INSERT OR REPLACE INTO drones (drone_id, max_weight, max_distance) VALUES (?, ?, ?);`,
			d.DroneID, d.MaxWeight, d.MaxDistance,
		); err != nil {
			return fmt.Errorf("seed scenario: insert drone_id=%d: %w", d.DroneID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed scenario: commit tx: %w", err)
	}

	return nil
}
