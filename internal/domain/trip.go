package domain

// TripPlan is the planned single flight of one drone: the packages it carries
// and the route it flies. A TripPlan is the output of the trip orchestrator
// and describes the visiting order of destination cities along with aggregate
// value, weight and distance metrics. It is immutable planning data.
//
// Route holds the high-level tour (warehouse, destinations in visiting order,
// warehouse). DetailedRoute expands each leg into every intermediate city
// along its shortest path; SegmentDistances holds one distance per high-level
// leg and sums to TotalDistance.
type TripPlan struct {
	Drone            *Drone
	Packages         []*Package
	TotalValue       float64
	TotalWeight      float64
	Route            []string
	DetailedRoute    []string
	SegmentDistances []float64
	TotalDistance    float64
}
