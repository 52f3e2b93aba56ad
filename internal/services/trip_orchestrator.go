package services

import (
	"drone-delivery-planner/internal/domain"
)

// PlanResult is the outcome of a full planning run: the finalized trips and
// the packages no drone could deliver.
type PlanResult struct {
	Trips     []*domain.TripPlan
	Remaining []*domain.Package
}

// Delivered returns the number of packages placed on a trip.
func (r *PlanResult) Delivered() int {
	count := 0
	for _, trip := range r.Trips {
		count += len(trip.Packages)
	}

	return count
}

// PlanTrips repeatedly selects packages for each drone in turn until a
// selection comes back empty, finalizing one trip plan per non-empty
// selection and removing its packages from the pool.
//
// This is a greedy multi-trip wrapper: it never backtracks across drones or
// trips. A selector failure stops planning for the current drone only, so the
// run always completes even under partial infeasibility.
func PlanTrips(net *domain.Network, drones []*domain.Drone, packages []*domain.Package, warehouse string) *PlanResult {
	remaining := append([]*domain.Package(nil), packages...)
	trips := []*domain.TripPlan{}

	for _, drone := range drones {
		for len(remaining) > 0 {
			selection, err := SelectPackages(remaining, drone.MaxWeight, net, drone.MaxDistance, warehouse)
			if err != nil {
				break
			}
			if len(selection.Packages) == 0 {
				break
			}

			detailed, segments, total, err := DetailedRoute(net, selection.Route)
			if err != nil {
				// The route came from the planner against the same network, so
				// an unreachable leg here means the selection is unusable.
				break
			}

			trips = append(trips, &domain.TripPlan{
				Drone:            drone,
				Packages:         selection.Packages,
				TotalValue:       selection.TotalValue,
				TotalWeight:      selection.TotalWeight,
				Route:            selection.Route,
				DetailedRoute:    detailed,
				SegmentDistances: segments,
				TotalDistance:    total,
			})

			remaining = removePackages(remaining, selection.Packages)
		}
	}

	return &PlanResult{Trips: trips, Remaining: remaining}
}

// removePackages returns pool minus the selected packages, preserving order.
func removePackages(pool, selected []*domain.Package) []*domain.Package {
	taken := make(map[int]struct{}, len(selected))
	for _, pkg := range selected {
		taken[pkg.PackageID] = struct{}{}
	}

	kept := make([]*domain.Package, 0, len(pool)-len(selected))
	for _, pkg := range pool {
		if _, ok := taken[pkg.PackageID]; ok {
			continue
		}
		kept = append(kept, pkg)
	}

	return kept
}
