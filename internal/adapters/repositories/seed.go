package repositories

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strings"
)

type CitySeed struct {
	Name        string `json:"name"`
	IsWarehouse bool   `json:"is_warehouse"`
}

type RouteSeed struct {
	From     string  `json:"from"`
	To       string  `json:"to"`
	Distance float64 `json:"distance"`
}

type PackageSeed struct {
	PackageID   int     `json:"package_id"`
	Weight      float64 `json:"weight"`
	Value       float64 `json:"value"`
	Destination string  `json:"destination"`
}

type DroneSeed struct {
	DroneID     int     `json:"drone_id"`
	MaxWeight   float64 `json:"max_weight"`
	MaxDistance float64 `json:"max_distance"`
}

type ScenarioSeed struct {
	Cities   []CitySeed    `json:"cities"`
	Routes   []RouteSeed   `json:"routes"`
	Packages []PackageSeed `json:"packages"`
	Drones   []DroneSeed   `json:"drones"`
}

// readSeed loads and validates a scenario seed file. Validation here covers
// raw file entries only; referential checks (route endpoints exist, package
// destinations exist) happen when the scenario is built into a network.
func readSeed(jsonPath string) (*ScenarioSeed, error) {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("seed scenario: read %q: %w", jsonPath, err)
	}

	var seed ScenarioSeed
	if err := json.Unmarshal(bytes, &seed); err != nil {
		return nil, fmt.Errorf("seed scenario: parse json: %w", err)
	}

	for i, c := range seed.Cities {
		if strings.TrimSpace(c.Name) == "" {
			return nil, fmt.Errorf("seed scenario: city at index %d: name cannot be empty", i+1)
		}
	}

	for i, r := range seed.Routes {
		if strings.TrimSpace(r.From) == "" || strings.TrimSpace(r.To) == "" {
			return nil, fmt.Errorf("seed scenario: route at index %d: endpoints cannot be empty", i+1)
		}
		if r.Distance <= 0 || math.IsInf(r.Distance, 0) || math.IsNaN(r.Distance) {
			return nil, fmt.Errorf("seed scenario: route at index %d: invalid distance %v", i+1, r.Distance)
		}
	}

	for i, p := range seed.Packages {
		if p.PackageID <= 0 {
			return nil, fmt.Errorf("seed scenario: package at index %d: invalid package_id %d", i+1, p.PackageID)
		}
		if p.Weight <= 0 || p.Value <= 0 {
			return nil, fmt.Errorf("seed scenario: package at index %d: weight and value must be positive", i+1)
		}
		if strings.TrimSpace(p.Destination) == "" {
			return nil, fmt.Errorf("seed scenario: package at index %d: destination cannot be empty", i+1)
		}
	}

	for i, d := range seed.Drones {
		if d.DroneID <= 0 {
			return nil, fmt.Errorf("seed scenario: drone at index %d: invalid drone_id %d", i+1, d.DroneID)
		}
		if d.MaxWeight <= 0 || d.MaxDistance <= 0 {
			return nil, fmt.Errorf("seed scenario: drone at index %d: limits must be positive", i+1)
		}
	}

	return &seed, nil
}
