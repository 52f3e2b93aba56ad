package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"drone-delivery-planner/internal/domain"
)

// SQL-backed implementation of the ScenarioRepository port. The queries are
// placeholder-free SELECTs, so the store works against both the SQLite and
// Postgres schemas.
type ScenarioStore struct{ DB *sql.DB }

func NewScenarioStore(db *sql.DB) *ScenarioStore {
	return &ScenarioStore{DB: db}
}

// Load the full scenario: city, route, package and drone definitions.
func (s *ScenarioStore) LoadScenario(ctx context.Context) (*domain.Scenario, error) {
	if s.DB == nil {
		return nil, errors.New("scenario store: DB is nil")
	}

	scenario := &domain.Scenario{}

	if err := s.loadCities(ctx, scenario); err != nil {
		return nil, err
	}
	if err := s.loadRoutes(ctx, scenario); err != nil {
		return nil, err
	}
	if err := s.loadPackages(ctx, scenario); err != nil {
		return nil, err
	}
	if err := s.loadDrones(ctx, scenario); err != nil {
		return nil, err
	}

	return scenario, nil
}

func (s *ScenarioStore) loadCities(ctx context.Context, scenario *domain.Scenario) error {
	query := `
	SELECT
		name,
		is_warehouse
	FROM cities
	ORDER BY name;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return fmt.Errorf("load scenario: query cities table: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var name string
		var isWarehouse bool
		if err := rows.Scan(&name, &isWarehouse); err != nil {
			return fmt.Errorf("load scenario: scan city row: %w", err)
		}
		scenario.Cities = append(scenario.Cities, &domain.City{Name: name, IsWarehouse: isWarehouse})
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("load scenario: city row iteration: %w", err)
	}

	return nil
}

func (s *ScenarioStore) loadRoutes(ctx context.Context, scenario *domain.Scenario) error {
	query := `
	SELECT
		from_city,
		to_city,
		distance
	FROM routes
	ORDER BY from_city, to_city;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return fmt.Errorf("load scenario: query routes table: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var from, to string
		var distance float64
		if err := rows.Scan(&from, &to, &distance); err != nil {
			return fmt.Errorf("load scenario: scan route row: %w", err)
		}
		scenario.Routes = append(scenario.Routes, domain.RouteDef{From: from, To: to, Distance: distance})
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("load scenario: route row iteration: %w", err)
	}

	return nil
}

func (s *ScenarioStore) loadPackages(ctx context.Context, scenario *domain.Scenario) error {
	query := `
	SELECT
		package_id,
		weight,
		value,
		destination
	FROM packages
	ORDER BY package_id;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return fmt.Errorf("load scenario: query packages table: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id int
		var weight, value float64
		var destination string
		if err := rows.Scan(&id, &weight, &value, &destination); err != nil {
			return fmt.Errorf("load scenario: scan package row: %w", err)
		}
		scenario.Packages = append(scenario.Packages, &domain.Package{
			PackageID:   id,
			Weight:      weight,
			Value:       value,
			Destination: destination,
		})
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("load scenario: package row iteration: %w", err)
	}

	return nil
}

func (s *ScenarioStore) loadDrones(ctx context.Context, scenario *domain.Scenario) error {
	query := `
	SELECT
		drone_id,
		max_weight,
		max_distance
	FROM drones
	ORDER BY drone_id;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return fmt.Errorf("load scenario: query drones table: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id int
		var maxWeight, maxDistance float64
		if err := rows.Scan(&id, &maxWeight, &maxDistance); err != nil {
			return fmt.Errorf("load scenario: scan drone row: %w", err)
		}
		scenario.Drones = append(scenario.Drones, &domain.Drone{
			DroneID:     id,
			MaxWeight:   maxWeight,
			MaxDistance: maxDistance,
		})
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("load scenario: drone row iteration: %w", err)
	}

	return nil
}
