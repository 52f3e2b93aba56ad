package domain

// Package is a single delivery unit with a weight, a declared value and a
// destination city. Packages are immutable once created; a package leaves the
// planning pool when it is included in a finalized trip plan.
type Package struct {
	PackageID   int
	Weight      float64
	Value       float64
	Destination string
}

// Ratio returns the value-to-weight ratio used to order packages within a
// destination group. Weight is always positive for a valid package.
func (p *Package) Ratio() float64 {
	return p.Value / p.Weight
}
