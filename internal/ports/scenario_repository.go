package ports

import (
	"context"

	"drone-delivery-planner/internal/domain"
)

// Port: a boundary for retrieving the planning scenario (cities, routes,
// packages, drones) from a data source.
type ScenarioRepository interface {
	// Load the full scenario available for planning.
	LoadScenario(ctx context.Context) (*domain.Scenario, error)
}
