package services

import (
	"errors"
	"testing"

	"drone-delivery-planner/internal/domain"
)

// selectorNetwork is a fully connected triangle around the warehouse:
// Warehouse-City1=10, Warehouse-City2=15, City1-City2=10.
func selectorNetwork(t *testing.T) *domain.Network {
	t.Helper()

	net := domain.NewNetwork()
	net.AddCity("Warehouse", true)
	net.AddCity("City1", false)
	net.AddCity("City2", false)

	for _, r := range []struct {
		a, b string
		d    float64
	}{
		{"Warehouse", "City1", 10},
		{"Warehouse", "City2", 15},
		{"City1", "City2", 10},
	} {
		if err := net.AddRoute(r.a, r.b, r.d); err != nil {
			t.Fatalf("add route %s-%s: %v", r.a, r.b, err)
		}
	}

	return net
}

func selectorPackages() []*domain.Package {
	return []*domain.Package{
		{PackageID: 1, Weight: 2.0, Value: 100, Destination: "City1"},
		{PackageID: 2, Weight: 3.0, Value: 150, Destination: "City1"},
		{PackageID: 3, Weight: 1.0, Value: 50, Destination: "City2"},
		{PackageID: 4, Weight: 4.0, Value: 200, Destination: "City2"},
	}
}

func TestSelectPackagesWeightConstraint(t *testing.T) {
	net := selectorNetwork(t)

	selection, err := SelectPackages(selectorPackages(), 5.0, net, 100, "Warehouse")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(selection.Packages) != 2 {
		t.Fatalf("selected %d packages, want 2", len(selection.Packages))
	}
	if selection.TotalWeight != 5.0 {
		t.Fatalf("total weight = %v, want 5.0", selection.TotalWeight)
	}
	if selection.TotalValue != 250 {
		t.Fatalf("total value = %v, want 250", selection.TotalValue)
	}
	if len(selection.Route) == 0 || selection.Route[0] != "Warehouse" || selection.Route[len(selection.Route)-1] != "Warehouse" {
		t.Fatalf("route = %v, want closed tour at Warehouse", selection.Route)
	}
}

func TestSelectPackagesDistanceConstraint(t *testing.T) {
	net := selectorNetwork(t)

	// Any tour through both destinations costs at least 35, so a 20-unit
	// budget forces the fallback to a single destination.
	selection, err := SelectPackages(selectorPackages(), 10.0, net, 20, "Warehouse")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(selection.Packages) == 0 {
		t.Fatal("expected a non-empty fallback selection")
	}

	first := selection.Packages[0].Destination
	for _, pkg := range selection.Packages {
		if pkg.Destination != first {
			t.Fatalf("fallback selection spans destinations %q and %q, want one", first, pkg.Destination)
		}
	}
}

func TestSelectPackagesEmptyPool(t *testing.T) {
	net := selectorNetwork(t)

	selection, err := SelectPackages(nil, 5.0, net, 100, "Warehouse")
	if err != nil {
		t.Fatalf("empty pool must not error, got %v", err)
	}
	if len(selection.Packages) != 0 || selection.TotalValue != 0 || selection.TotalWeight != 0 || len(selection.Route) != 0 {
		t.Fatalf("expected empty selection, got %+v", selection)
	}
}

func TestSelectPackagesUnknownWarehouse(t *testing.T) {
	net := selectorNetwork(t)

	_, err := SelectPackages(selectorPackages(), 5.0, net, 100, "Nowhere")
	if !errors.Is(err, domain.ErrCityNotFound) {
		t.Fatalf("expected ErrCityNotFound, got %v", err)
	}
}

func TestSelectPackagesUnreachableDestination(t *testing.T) {
	net := selectorNetwork(t)
	net.AddCity("Island", false)

	packages := []*domain.Package{
		{PackageID: 1, Weight: 1.0, Value: 100, Destination: "Island"},
		{PackageID: 2, Weight: 1.0, Value: 10, Destination: "City1"},
	}

	// The weight-optimal pick includes the unreachable island; selection must
	// recover via the fallback and still deliver the reachable package.
	selection, err := SelectPackages(packages, 5.0, net, 100, "Warehouse")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(selection.Packages) != 1 || selection.Packages[0].PackageID != 2 {
		t.Fatalf("selection = %+v, want only the reachable package", selection.Packages)
	}
}

func TestSelectPackagesNothingSalvageable(t *testing.T) {
	net := domain.NewNetwork()
	net.AddCity("Warehouse", true)
	net.AddCity("Island", false)

	packages := []*domain.Package{
		{PackageID: 1, Weight: 1.0, Value: 100, Destination: "Island"},
	}

	selection, err := SelectPackages(packages, 5.0, net, 100, "Warehouse")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(selection.Packages) != 0 || len(selection.Route) != 0 {
		t.Fatalf("expected empty selection, got %+v", selection)
	}
}

func TestSelectPackagesOverweightPool(t *testing.T) {
	net := selectorNetwork(t)

	packages := []*domain.Package{
		{PackageID: 1, Weight: 9.0, Value: 500, Destination: "City1"},
	}

	selection, err := SelectPackages(packages, 5.0, net, 100, "Warehouse")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(selection.Packages) != 0 {
		t.Fatalf("nothing fits the weight budget, got %+v", selection.Packages)
	}
}

func TestSelectPackagesPrefixPerDestination(t *testing.T) {
	net := selectorNetwork(t)

	// Ratio order in City1 is id 3 (50), id 1 (40), id 2 (30); a 3-unit
	// budget fits exactly the top-two prefix.
	packages := []*domain.Package{
		{PackageID: 1, Weight: 1.0, Value: 40, Destination: "City1"},
		{PackageID: 2, Weight: 2.0, Value: 60, Destination: "City1"},
		{PackageID: 3, Weight: 2.0, Value: 100, Destination: "City1"},
	}

	selection, err := SelectPackages(packages, 3.0, net, 100, "Warehouse")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(selection.Packages) != 2 {
		t.Fatalf("selected %d packages, want the top-2 ratio prefix", len(selection.Packages))
	}
	gotIDs := map[int]bool{}
	for _, pkg := range selection.Packages {
		gotIDs[pkg.PackageID] = true
	}
	if !gotIDs[3] || !gotIDs[1] {
		t.Fatalf("selected ids %v, want {3, 1}", gotIDs)
	}
	if selection.TotalValue != 140 {
		t.Fatalf("total value = %v, want 140", selection.TotalValue)
	}
}
