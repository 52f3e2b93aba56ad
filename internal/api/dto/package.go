package dto

type PackageResponse struct {
	PackageID   int     `json:"package_id"`
	Weight      float64 `json:"weight"`
	Value       float64 `json:"value"`
	Destination string  `json:"destination"`
}

type ListPackagesResponse struct {
	Packages []PackageResponse `json:"packages"`
}
