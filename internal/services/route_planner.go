package services

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"drone-delivery-planner/internal/domain"
)

// ErrNoFeasibleRoute indicates no ordering of a destination set yields a
// connected closed tour from the start city.
var ErrNoFeasibleRoute = errors.New("route planner: no feasible route")

// Destination counts up to this limit are routed by exhaustive permutation
// search; beyond it the planner falls back to nearest-neighbor construction.
// Exact search costs k! permutations, so the limit must stay small.
const exactSearchLimit = 3

// PlanRoute builds a closed tour start -> destinations -> start over shortest
// paths and returns the visiting order with its total distance.
//
// Duplicates and the start city itself are dropped from the destination set;
// an empty set yields ([start], 0). For small sets the tour is the global
// minimum over all visiting orders; larger sets use a greedy nearest-neighbor
// order that trades optimality for tractability.
func PlanRoute(net *domain.Network, start string, destinations []string) ([]string, float64, error) {
	unique := dedupeDestinations(destinations, start)

	if !net.HasCity(start) {
		return nil, 0, fmt.Errorf("plan route: start %q: %w", start, domain.ErrCityNotFound)
	}
	for _, dest := range unique {
		if !net.HasCity(dest) {
			return nil, 0, fmt.Errorf("plan route: destination %q: %w", dest, domain.ErrCityNotFound)
		}
	}

	if len(unique) == 0 {
		return []string{start}, 0, nil
	}

	if len(unique) <= exactSearchLimit {
		return exactRoute(net, start, unique)
	}

	return greedyRoute(net, start, unique)
}

// DetailedRoute expands each consecutive pair of the high-level route into its
// full shortest path, concatenating intermediate cities and accumulating one
// distance per high-level leg.
func DetailedRoute(net *domain.Network, route []string) ([]string, []float64, float64, error) {
	if len(route) == 0 {
		return nil, nil, 0, errors.New("detailed route: route must not be empty")
	}

	detailed := []string{route[0]}
	segments := make([]float64, 0, len(route)-1)
	total := 0.0

	for i := 0; i < len(route)-1; i++ {
		path, distance, err := ShortestPath(net, route[i], route[i+1])
		if err != nil {
			return nil, nil, 0, fmt.Errorf("detailed route: leg %q -> %q: %w", route[i], route[i+1], err)
		}

		// Skip the junction city already present from the previous leg.
		detailed = append(detailed, path[1:]...)
		segments = append(segments, distance)
		total += distance
	}

	return detailed, segments, total, nil
}

// dedupeDestinations returns the unique destinations minus the start city,
// sorted for deterministic iteration.
func dedupeDestinations(destinations []string, start string) []string {
	seen := make(map[string]struct{}, len(destinations))
	unique := make([]string, 0, len(destinations))
	for _, dest := range destinations {
		if dest == start {
			continue
		}
		if _, ok := seen[dest]; ok {
			continue
		}
		seen[dest] = struct{}{}
		unique = append(unique, dest)
	}
	sort.Strings(unique)

	return unique
}

// exactRoute tries every visiting order and keeps the minimum-distance closed
// tour. An order whose legs are not all connected is discarded; if every order
// is discarded the destination set is infeasible.
func exactRoute(net *domain.Network, start string, destinations []string) ([]string, float64, error) {
	var bestRoute []string
	bestDistance := math.Inf(1)

	for _, perm := range permutations(destinations) {
		route := make([]string, 0, len(perm)+2)
		route = append(route, start)
		route = append(route, perm...)
		route = append(route, start)

		total := 0.0
		connected := true
		for i := 0; i < len(route)-1; i++ {
			_, distance, err := ShortestPath(net, route[i], route[i+1])
			if err != nil {
				connected = false
				break
			}
			total += distance
		}

		if connected && total < bestDistance {
			bestRoute = route
			bestDistance = total
		}
	}

	if bestRoute == nil {
		return nil, 0, fmt.Errorf("%w: through %d destinations from %q", ErrNoFeasibleRoute, len(destinations), start)
	}

	return bestRoute, bestDistance, nil
}

// greedyRoute appends the nearest reachable unvisited destination to the tour
// until all are placed, then closes the tour back to start. Equal distances
// break lexicographically so the result is deterministic.
func greedyRoute(net *domain.Network, start string, destinations []string) ([]string, float64, error) {
	route := []string{start}
	total := 0.0

	remaining := make(map[string]struct{}, len(destinations))
	for _, dest := range destinations {
		remaining[dest] = struct{}{}
	}

	for len(remaining) > 0 {
		current := route[len(route)-1]

		next := ""
		minDistance := math.Inf(1)
		for dest := range remaining {
			_, distance, err := ShortestPath(net, current, dest)
			if err != nil {
				continue
			}
			if distance < minDistance || (distance == minDistance && dest < next) {
				minDistance = distance
				next = dest
			}
		}

		if next == "" {
			return nil, 0, fmt.Errorf("%w: no reachable destination from %q", ErrNoFeasibleRoute, current)
		}

		route = append(route, next)
		total += minDistance
		delete(remaining, next)
	}

	_, returnDistance, err := ShortestPath(net, route[len(route)-1], start)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: no return leg from %q to %q", ErrNoFeasibleRoute, route[len(route)-1], start)
	}
	route = append(route, start)
	total += returnDistance

	return route, total, nil
}

// permutations returns every ordering of items. Only called for sets within
// exactSearchLimit, so the k! blowup stays bounded.
func permutations(items []string) [][]string {
	if len(items) <= 1 {
		return [][]string{append([]string(nil), items...)}
	}

	var out [][]string
	for i := range items {
		rest := make([]string, 0, len(items)-1)
		rest = append(rest, items[:i]...)
		rest = append(rest, items[i+1:]...)

		for _, sub := range permutations(rest) {
			perm := make([]string, 0, len(items))
			perm = append(perm, items[i])
			perm = append(perm, sub...)
			out = append(out, perm)
		}
	}

	return out
}
