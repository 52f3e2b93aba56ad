package dto

type PlanRequest struct {
	Warehouse string `json:"warehouse"`
}

type TripResponse struct {
	DroneID          int       `json:"drone_id"`
	PackageIDs       []int     `json:"package_ids"`
	TotalValue       float64   `json:"total_value"`
	TotalWeight      float64   `json:"total_weight"`
	Route            []string  `json:"route"`
	DetailedRoute    []string  `json:"detailed_route"`
	SegmentDistances []float64 `json:"segment_distances"`
	TotalDistance    float64   `json:"total_distance"`
}

type PlanResponse struct {
	Trips             []TripResponse `json:"trips"`
	DeliveredPackages int            `json:"delivered_packages"`
	TotalPackages     int            `json:"total_packages"`
}
