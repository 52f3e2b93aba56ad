package handlers

import (
	"log"
	"net/http"

	"drone-delivery-planner/internal/api/dto"
	"drone-delivery-planner/internal/ports"
)

// PackageHandler exposes read-only package retrieval endpoints.
type PackageHandler struct {
	Repo ports.ScenarioRepository
}

func (h *PackageHandler) List(w http.ResponseWriter, r *http.Request) {
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

	res := dto.ListPackagesResponse{
		Packages: make([]dto.PackageResponse, 0, len(scenario.Packages)),
	}
	for _, p := range scenario.Packages {
		res.Packages = append(res.Packages, dto.PackageResponse{
			PackageID:   p.PackageID,
			Weight:      p.Weight,
			Value:       p.Value,
			Destination: p.Destination,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
