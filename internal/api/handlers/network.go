package handlers

import (
	"log"
	"net/http"

	"drone-delivery-planner/internal/api/dto"
	"drone-delivery-planner/internal/ports"
)

// NetworkHandler exposes read-only city and route retrieval endpoints.
type NetworkHandler struct {
	Repo ports.ScenarioRepository
}

func (h *NetworkHandler) Get(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	scenario, err := h.Repo.LoadScenario(r.Context())
	if err != nil {
		log.Printf("load scenario failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.NetworkResponse{
		Cities: make([]dto.CityResponse, 0, len(scenario.Cities)),
		Routes: make([]dto.RouteResponse, 0, len(scenario.Routes)),
	}
	for _, c := range scenario.Cities {
		res.Cities = append(res.Cities, dto.CityResponse{Name: c.Name, IsWarehouse: c.IsWarehouse})
	}
	for _, rt := range scenario.Routes {
		res.Routes = append(res.Routes, dto.RouteResponse{From: rt.From, To: rt.To, Distance: rt.Distance})
	}

	writeJSON(w, r, http.StatusOK, res)
}
