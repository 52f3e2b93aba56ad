package dto

type CityResponse struct {
	Name        string `json:"name"`
	IsWarehouse bool   `json:"is_warehouse"`
}

type RouteResponse struct {
	From     string  `json:"from"`
	To       string  `json:"to"`
	Distance float64 `json:"distance"`
}

type NetworkResponse struct {
	Cities []CityResponse  `json:"cities"`
	Routes []RouteResponse `json:"routes"`
}
