package domain

import "fmt"

// RouteDef is a stored route definition between two cities.
type RouteDef struct {
	From     string
	To       string
	Distance float64
}

// Scenario is the externally loaded planning record: city, route, package and
// drone definitions as produced by a scenario repository. The core consumes it
// as already-constructed entities; file or database framing is an adapter
// concern.
type Scenario struct {
	Cities   []*City
	Routes   []RouteDef
	Packages []*Package
	Drones   []*Drone
}

// BuildNetwork constructs the city network from the scenario definitions.
// Route definitions referencing unknown cities fail with ErrCityNotFound.
func (s *Scenario) BuildNetwork() (*Network, error) {
	net := NewNetwork()

	for _, c := range s.Cities {
		net.AddCity(c.Name, c.IsWarehouse)
	}

	for _, r := range s.Routes {
		if err := net.AddRoute(r.From, r.To, r.Distance); err != nil {
			return nil, fmt.Errorf("build network: %w", err)
		}
	}

	return net, nil
}

// WarehouseName returns the name of the warehouse-flagged city, or "" if the
// scenario designates none.
func (s *Scenario) WarehouseName() string {
	for _, c := range s.Cities {
		if c.IsWarehouse {
			return c.Name
		}
	}

	return ""
}
