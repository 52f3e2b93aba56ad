package domain

// City is a node in the delivery network, identified by its unique name.
// At most one city in a network carries the warehouse flag; the network
// enforces that invariant on designation.
type City struct {
	Name        string
	IsWarehouse bool
}
