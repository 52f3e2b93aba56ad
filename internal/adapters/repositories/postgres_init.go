package repositories

import (
	"database/sql"
	"errors"
	"fmt"
)

// Initialize the Postgres database schema.
func InitPostgresSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init postgres schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init postgres schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	statements := []string{
		`CREATE TABLE IF NOT EXISTS cities (
			name TEXT PRIMARY KEY,
			is_warehouse BOOLEAN NOT NULL DEFAULT FALSE
		);`,
		`CREATE TABLE IF NOT EXISTS routes (
			from_city TEXT NOT NULL,
			to_city TEXT NOT NULL,
			distance DOUBLE PRECISION NOT NULL,
			PRIMARY KEY (from_city, to_city)
		);`,
		`CREATE TABLE IF NOT EXISTS packages (
			package_id INTEGER PRIMARY KEY,
			weight DOUBLE PRECISION NOT NULL,
			value DOUBLE PRECISION NOT NULL,
			destination TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS drones (
			drone_id INTEGER PRIMARY KEY,
			max_weight DOUBLE PRECISION NOT NULL,
			max_distance DOUBLE PRECISION NOT NULL
		);`,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init postgres schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init postgres schema: commit tx: %w", err)
	}

	return nil
}

// Populate the Postgres database with scenario data from a JSON file.
func SeedPostgresFromJSON(db *sql.DB, jsonPath string) error {
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
			`INSERT INTO cities (name, is_warehouse) VALUES ($1, $2)
			 ON CONFLICT (name) DO UPDATE SET is_warehouse = EXCLUDED.is_warehouse;`,
			c.Name, c.IsWarehouse,
		); err != nil {
			return fmt.Errorf("seed scenario: insert city %q: %w", c.Name, err)
		}
	}

	for _, r := range seed.Routes {
		if _, err := tx.Exec(
			`INSERT INTO routes (from_city, to_city, distance) VALUES ($1, $2, $3)
			 ON CONFLICT (from_city, to_city) DO UPDATE SET distance = EXCLUDED.distance;`,
			r.From, r.To, r.Distance,
		); err != nil {
			return fmt.Errorf("seed scenario: insert route %q -> %q: %w", r.From, r.To, err)
		}
	}

	for _, p := range seed.Packages {
		if _, err := tx.Exec(
			`INSERT INTO packages (package_id, weight, value, destination) VALUES ($1, $2, $3, $4)
			 ON CONFLICT (package_id) DO UPDATE SET
				weight = EXCLUDED.weight,
				value = EXCLUDED.value,
				destination = EXCLUDED.destination;`,
			p.PackageID, p.Weight, p.Value, p.Destination,
		); err != nil {
			return fmt.Errorf("seed scenario: insert package_id=%d: %w", p.PackageID, err)
		}
	}

	for _, d := range seed.Drones {
		if _, err := tx.Exec(
			`INSERT INTO drones (drone_id, max_weight, max_distance) VALUES ($1, $2, $3)
			 ON CONFLICT (drone_id) DO UPDATE SET
				max_weight = EXCLUDED.max_weight,
				max_distance = EXCLUDED.max_distance;`,
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
