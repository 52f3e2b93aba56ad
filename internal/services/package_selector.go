package services

import (
	"fmt"
	"math"
	"sort"

	"drone-delivery-planner/internal/domain"
)

// Selection is the outcome of one package-selection pass: the chosen packages,
// their aggregate value and weight, and the high-level route serving them.
// An empty selection (no packages, empty route) means nothing deliverable fits
// the budgets.
type Selection struct {
	Packages    []*domain.Package
	TotalValue  float64
	TotalWeight float64
	Route       []string
}

// weightScale converts package weights to tenths of a unit so the knapsack
// table can index by integral capacity.
const weightScale = 10

// SelectPackages picks the value-maximizing feasible subset of packages for
// one trip under a weight budget and a route-distance budget.
//
// Packages are grouped by destination and ordered within each group by
// value-to-weight ratio, so "which packages to take from one destination" is
// always a prefix of that order. A knapsack-style pass over destination groups
// finds the weight-optimal combination of prefixes; the optimum is therefore
// relative to that per-group prefix rule, not a full 0/1 knapsack.
//
// If the weight-optimal pick admits no route within maxDistance, selection
// degrades to a greedy pass that grows the route one destination at a time in
// order of warehouse proximity, keeping whatever stays within both budgets.
// Unreachable destinations are skipped, never fatal; only a missing warehouse
// city is an error.
func SelectPackages(packages []*domain.Package, maxWeight float64, net *domain.Network, maxDistance float64, warehouse string) (Selection, error) {
	if !net.HasCity(warehouse) {
		return Selection{}, fmt.Errorf("select packages: warehouse %q: %w", warehouse, domain.ErrCityNotFound)
	}

	empty := Selection{Packages: []*domain.Package{}, Route: []string{}}
	if len(packages) == 0 {
		return empty, nil
	}

	groups, destinations := groupByDestination(packages)

	best := knapsackOverGroups(groups, destinations, maxWeight)
	if len(best.Packages) > 0 {
		route, distance, err := PlanRoute(net, warehouse, selectedDestinations(best.Packages))
		if err == nil && distance <= maxDistance {
			best.Route = route
			return best, nil
		}
		// Weight-optimal pick is not distance-feasible; fall through to the
		// proximity-greedy pass.
	}

	fallback := greedyByProximity(groups, destinations, maxWeight, net, maxDistance, warehouse)
	if len(fallback.Packages) == 0 {
		return empty, nil
	}

	return fallback, nil
}

// groupByDestination splits packages per destination city, each group sorted
// by ratio descending (ties by id for determinism), and returns the sorted
// destination list.
func groupByDestination(packages []*domain.Package) (map[string][]*domain.Package, []string) {
	groups := make(map[string][]*domain.Package)
	for _, pkg := range packages {
		groups[pkg.Destination] = append(groups[pkg.Destination], pkg)
	}

	destinations := make([]string, 0, len(groups))
	for dest, group := range groups {
		destinations = append(destinations, dest)
		sort.SliceStable(group, func(i, j int) bool {
			ri, rj := group[i].Ratio(), group[j].Ratio()
			if ri != rj {
				return ri > rj
			}
			return group[i].PackageID < group[j].PackageID
		})
	}
	sort.Strings(destinations)

	return groups, destinations
}

// dpCell is one knapsack table entry: the best value achievable with the
// groups considered so far at a given scaled weight capacity, and the packages
// realizing it.
type dpCell struct {
	value    float64
	packages []*domain.Package
}

// knapsackOverGroups maximizes total value under the weight budget, choosing
// for each destination group a prefix of its ratio order (0..all packages) as
// one atomic inclusion.
func knapsackOverGroups(groups map[string][]*domain.Package, destinations []string, maxWeight float64) Selection {
	capacity := scaleWeight(maxWeight)
	if capacity < 0 {
		capacity = 0
	}

	prev := make([]dpCell, capacity+1)
	current := make([]dpCell, capacity+1)

	for _, dest := range destinations {
		group := groups[dest]

		// Prefix weights and values for 0..len(group) packages of this group.
		prefixWeight := make([]float64, len(group)+1)
		prefixValue := make([]float64, len(group)+1)
		for k, pkg := range group {
			prefixWeight[k+1] = prefixWeight[k] + pkg.Weight
			prefixValue[k+1] = prefixValue[k] + pkg.Value
		}

		for w := 0; w <= capacity; w++ {
			current[w] = prev[w]

			for k := 1; k <= len(group); k++ {
				scaled := scaleWeight(prefixWeight[k])
				if scaled > w {
					break
				}

				candidate := prev[w-scaled].value + prefixValue[k]
				if candidate > current[w].value {
					taken := make([]*domain.Package, 0, len(prev[w-scaled].packages)+k)
					taken = append(taken, prev[w-scaled].packages...)
					taken = append(taken, group[:k]...)
					current[w] = dpCell{value: candidate, packages: taken}
				}
			}
		}

		prev, current = current, prev
	}

	bestCell := prev[capacity]

	selection := Selection{Packages: bestCell.packages, TotalValue: bestCell.value}
	for _, pkg := range selection.Packages {
		selection.TotalWeight += pkg.Weight
	}

	return selection
}

// greedyByProximity grows a route one destination at a time, closest to the
// warehouse first, keeping an extension only when the replanned tour stays
// within maxDistance. Packages of every kept destination join the selection in
// ratio order while the weight budget allows.
func greedyByProximity(groups map[string][]*domain.Package, destinations []string, maxWeight float64, net *domain.Network, maxDistance float64, warehouse string) Selection {
	type destDistance struct {
		name     string
		distance float64
	}

	reachable := make([]destDistance, 0, len(destinations))
	for _, dest := range destinations {
		_, distance, err := ShortestPath(net, warehouse, dest)
		if err != nil {
			continue
		}
		reachable = append(reachable, destDistance{name: dest, distance: distance})
	}

	sort.Slice(reachable, func(i, j int) bool {
		if reachable[i].distance != reachable[j].distance {
			return reachable[i].distance < reachable[j].distance
		}
		return reachable[i].name < reachable[j].name
	})

	selection := Selection{Packages: []*domain.Package{}, Route: []string{}}
	kept := make([]string, 0, len(reachable))

	for _, candidate := range reachable {
		extended := append(append([]string(nil), kept...), candidate.name)

		route, distance, err := PlanRoute(net, warehouse, extended)
		if err != nil || distance > maxDistance {
			continue
		}

		kept = extended
		selection.Route = route

		for _, pkg := range groups[candidate.name] {
			if selection.TotalWeight+pkg.Weight <= maxWeight {
				selection.Packages = append(selection.Packages, pkg)
				selection.TotalValue += pkg.Value
				selection.TotalWeight += pkg.Weight
			}
		}
	}

	return selection
}

// selectedDestinations returns the distinct destinations of the chosen packages.
func selectedDestinations(packages []*domain.Package) []string {
	seen := make(map[string]struct{}, len(packages))
	destinations := make([]string, 0, len(packages))
	for _, pkg := range packages {
		if _, ok := seen[pkg.Destination]; ok {
			continue
		}
		seen[pkg.Destination] = struct{}{}
		destinations = append(destinations, pkg.Destination)
	}

	return destinations
}

// scaleWeight converts a weight to tenth-of-a-unit integer granularity.
func scaleWeight(weight float64) int {
	return int(math.Round(weight * weightScale))
}
