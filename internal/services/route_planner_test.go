package services

import (
	"errors"
	"math"
	"testing"

	"drone-delivery-planner/internal/domain"
)

// tourNetwork builds a fixture where indirect paths beat several direct edges,
// so route totals depend on real shortest paths rather than raw edge weights.
func tourNetwork(t *testing.T) *domain.Network {
	t.Helper()

	net := domain.NewNetwork()
	net.AddCity("W", true)
	for _, name := range []string{"A", "B", "C"} {
		net.AddCity(name, false)
	}

	for _, r := range []struct {
		a, b string
		d    float64
	}{
		{"W", "A", 10},
		{"W", "B", 20},
		{"W", "C", 30},
		{"A", "B", 5},
		{"B", "C", 8},
		{"A", "C", 25},
	} {
		if err := net.AddRoute(r.a, r.b, r.d); err != nil {
			t.Fatalf("add route %s-%s: %v", r.a, r.b, err)
		}
	}

	return net
}

func TestPlanRouteEmptyDestinations(t *testing.T) {
	net := tourNetwork(t)

	route, distance, err := PlanRoute(net, "W", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(route) != 1 || route[0] != "W" {
		t.Fatalf("route = %v, want [W]", route)
	}
	if distance != 0 {
		t.Fatalf("distance = %v, want 0", distance)
	}
}

func TestPlanRouteDropsStartAndDuplicates(t *testing.T) {
	net := tourNetwork(t)

	route, distance, err := PlanRoute(net, "W", []string{"W", "A", "A", "W"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"W", "A", "W"}
	if len(route) != len(want) {
		t.Fatalf("route = %v, want %v", route, want)
	}
	for i := range want {
		if route[i] != want[i] {
			t.Fatalf("route = %v, want %v", route, want)
		}
	}
	if distance != 20 {
		t.Fatalf("distance = %v, want 20", distance)
	}
}

func TestPlanRouteUnknownCity(t *testing.T) {
	net := tourNetwork(t)

	if _, _, err := PlanRoute(net, "Nowhere", []string{"A"}); !errors.Is(err, domain.ErrCityNotFound) {
		t.Fatalf("expected ErrCityNotFound for start, got %v", err)
	}
	if _, _, err := PlanRoute(net, "W", []string{"Ghost"}); !errors.Is(err, domain.ErrCityNotFound) {
		t.Fatalf("expected ErrCityNotFound for destination, got %v", err)
	}
}

// Exact mode must match a brute-force minimum over every visiting order.
func TestPlanRouteExactIsOptimal(t *testing.T) {
	net := tourNetwork(t)
	destinations := []string{"A", "B", "C"}

	route, distance, err := PlanRoute(net, "W", destinations)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	best := math.Inf(1)
	for _, perm := range permutations(destinations) {
		tour := append([]string{"W"}, perm...)
		tour = append(tour, "W")

		total := 0.0
		ok := true
		for i := 0; i < len(tour)-1; i++ {
			_, d, err := ShortestPath(net, tour[i], tour[i+1])
			if err != nil {
				ok = false
				break
			}
			total += d
		}
		if ok && total < best {
			best = total
		}
	}

	if distance != best {
		t.Fatalf("exact route distance = %v, want brute-force minimum %v", distance, best)
	}
	if route[0] != "W" || route[len(route)-1] != "W" {
		t.Fatalf("route = %v, want closed tour at W", route)
	}
	if len(route) != 5 {
		t.Fatalf("route = %v, want 3 destinations plus start and return", route)
	}
}

func TestPlanRouteExactInfeasible(t *testing.T) {
	net := tourNetwork(t)
	net.AddCity("Island", false)

	_, _, err := PlanRoute(net, "W", []string{"A", "Island"})
	if !errors.Is(err, ErrNoFeasibleRoute) {
		t.Fatalf("expected ErrNoFeasibleRoute, got %v", err)
	}
}

// Beyond three destinations the planner switches to nearest-neighbor. On a
// star graph every leg runs through the hub, so the visiting order follows
// hub distance exactly.
func TestPlanRouteGreedyOrder(t *testing.T) {
	net := domain.NewNetwork()
	net.AddCity("Hub", true)
	spokes := []struct {
		name string
		d    float64
	}{
		{"N1", 1}, {"N2", 2}, {"N3", 3}, {"N4", 4},
	}
	for _, s := range spokes {
		net.AddCity(s.name, false)
		if err := net.AddRoute("Hub", s.name, s.d); err != nil {
			t.Fatalf("add route: %v", err)
		}
	}

	route, distance, err := PlanRoute(net, "Hub", []string{"N4", "N2", "N1", "N3"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"Hub", "N1", "N2", "N3", "N4", "Hub"}
	if len(route) != len(want) {
		t.Fatalf("route = %v, want %v", route, want)
	}
	for i := range want {
		if route[i] != want[i] {
			t.Fatalf("route = %v, want %v", route, want)
		}
	}

	// Legs: 1, 1+2, 2+3, 3+4, 4 = 20.
	if distance != 20 {
		t.Fatalf("distance = %v, want 20", distance)
	}
}

func TestPlanRouteGreedyInfeasible(t *testing.T) {
	net := domain.NewNetwork()
	net.AddCity("Hub", true)
	for _, name := range []string{"N1", "N2", "N3", "N4"} {
		net.AddCity(name, false)
		if err := net.AddRoute("Hub", name, 5); err != nil {
			t.Fatalf("add route: %v", err)
		}
	}
	net.AddCity("Island", false)

	_, _, err := PlanRoute(net, "Hub", []string{"N1", "N2", "N3", "N4", "Island"})
	if !errors.Is(err, ErrNoFeasibleRoute) {
		t.Fatalf("expected ErrNoFeasibleRoute, got %v", err)
	}
}

func TestDetailedRouteExpandsSegments(t *testing.T) {
	net := pathNetwork(t)

	// High-level tour A -> D -> A; each leg expands to the shortest path via E.
	detailed, segments, total, err := DetailedRoute(net, []string{"A", "D", "A"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"A", "E", "D", "E", "A"}
	if len(detailed) != len(want) {
		t.Fatalf("detailed = %v, want %v", detailed, want)
	}
	for i := range want {
		if detailed[i] != want[i] {
			t.Fatalf("detailed = %v, want %v", detailed, want)
		}
	}

	if len(segments) != 2 || segments[0] != 20 || segments[1] != 20 {
		t.Fatalf("segments = %v, want [20 20]", segments)
	}

	sum := 0.0
	for _, s := range segments {
		sum += s
	}
	if total != sum {
		t.Fatalf("total = %v, want sum of segments %v", total, sum)
	}

	if detailed[0] != "A" || detailed[len(detailed)-1] != "A" {
		t.Fatalf("detailed endpoints = %q, %q, want the high-level route's", detailed[0], detailed[len(detailed)-1])
	}
}

func TestDetailedRouteUnreachableLeg(t *testing.T) {
	net := pathNetwork(t)
	net.AddCity("Island", false)

	_, _, _, err := DetailedRoute(net, []string{"A", "Island"})
	if !errors.Is(err, ErrNoPath) {
		t.Fatalf("expected ErrNoPath, got %v", err)
	}
}
