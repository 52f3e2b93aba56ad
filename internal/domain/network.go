package domain

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

var (
	// ErrCityNotFound indicates a referenced city is absent from the network.
	ErrCityNotFound = errors.New("network: city not found")

	// ErrRouteNotFound indicates removal of a route that does not exist.
	ErrRouteNotFound = errors.New("network: route not found")
)

// Network is the city map: a weighted undirected graph of cities connected by
// routes, with at most one city designated as the warehouse.
//
// The adjacency structure is symmetric by construction: adding or removing a
// route always touches both endpoints. Mutation is single-owner during a
// planning run; planners only read.
type Network struct {
	cities    map[string]*City
	routes    map[string]map[string]float64
	warehouse *City
}

func NewNetwork() *Network {
	return &Network{
		cities: make(map[string]*City),
		routes: make(map[string]map[string]float64),
	}
}

// AddCity adds a city or returns the existing one. Re-adding an existing name
// with isWarehouse=true promotes it to warehouse. The latest designation wins;
// the previously flagged city, if any, is demoted so at most one city carries
// the flag.
func (n *Network) AddCity(name string, isWarehouse bool) *City {
	city, ok := n.cities[name]
	if !ok {
		city = &City{Name: name}
		n.cities[name] = city
		n.routes[name] = make(map[string]float64)
	}

	if isWarehouse && n.warehouse != city {
		if n.warehouse != nil {
			n.warehouse.IsWarehouse = false
		}
		city.IsWarehouse = true
		n.warehouse = city
	}

	return city
}

// AddRoute adds a bidirectional route between two existing cities, overwriting
// any previous distance for the pair.
func (n *Network) AddRoute(a, b string, distance float64) error {
	if _, ok := n.cities[a]; !ok {
		return fmt.Errorf("add route: %w: %q", ErrCityNotFound, a)
	}
	if _, ok := n.cities[b]; !ok {
		return fmt.Errorf("add route: %w: %q", ErrCityNotFound, b)
	}
	if distance <= 0 || math.IsInf(distance, 0) || math.IsNaN(distance) {
		return fmt.Errorf("add route: distance between %q and %q must be positive and finite, got %v", a, b, distance)
	}

	n.routes[a][b] = distance
	n.routes[b][a] = distance

	return nil
}

// RemoveRoute removes the route between two cities in both directions.
func (n *Network) RemoveRoute(a, b string) error {
	if _, ok := n.cities[a]; !ok {
		return fmt.Errorf("remove route: %w: %q", ErrCityNotFound, a)
	}
	if _, ok := n.cities[b]; !ok {
		return fmt.Errorf("remove route: %w: %q", ErrCityNotFound, b)
	}
	if _, ok := n.routes[a][b]; !ok {
		return fmt.Errorf("remove route: %w: %q <-> %q", ErrRouteNotFound, a, b)
	}

	delete(n.routes[a], b)
	delete(n.routes[b], a)

	return nil
}

// Neighbors returns the neighbor->distance mapping for a city. The returned
// map is a copy; mutating it does not affect the network.
func (n *Network) Neighbors(name string) (map[string]float64, error) {
	adj, ok := n.routes[name]
	if !ok {
		return nil, fmt.Errorf("neighbors: %w: %q", ErrCityNotFound, name)
	}

	out := make(map[string]float64, len(adj))
	for neighbor, d := range adj {
		out[neighbor] = d
	}

	return out, nil
}

// HasCity reports whether a city with the given name exists.
func (n *Network) HasCity(name string) bool {
	_, ok := n.cities[name]
	return ok
}

// CityNames returns all city names in lexicographic order.
func (n *Network) CityNames() []string {
	names := make([]string, 0, len(n.cities))
	for name := range n.cities {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// CityCount returns the number of cities in the network.
func (n *Network) CityCount() int {
	return len(n.cities)
}

// Warehouse returns the currently designated warehouse city, or nil if unset.
func (n *Network) Warehouse() *City {
	return n.warehouse
}
