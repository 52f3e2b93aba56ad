package domain

// Drone is a delivery vehicle with a weight capacity and a per-trip flight
// range. Drones are stateless across trips; trip history lives with the
// orchestrator, not here.
type Drone struct {
	DroneID     int
	MaxWeight   float64
	MaxDistance float64
}

// CanCarry reports whether a load of the given weight fits the drone's capacity.
func (d *Drone) CanCarry(weight float64) bool {
	return weight <= d.MaxWeight
}

// CanTravel reports whether the given distance is within the drone's range.
func (d *Drone) CanTravel(distance float64) bool {
	return distance <= d.MaxDistance
}
