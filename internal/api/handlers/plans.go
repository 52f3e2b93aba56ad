package handlers

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"drone-delivery-planner/internal/api/dto"
	"drone-delivery-planner/internal/domain"
	"drone-delivery-planner/internal/platform/obs"
	"drone-delivery-planner/internal/ports"
	"drone-delivery-planner/internal/services"
)

// PlanHandler runs a full planning pass: load the scenario, build the
// network, and orchestrate trips for every drone in the fleet.
type PlanHandler struct {
	Repo             ports.ScenarioRepository
	Cache            ports.ResultCache
	DefaultWarehouse string
}

// Plan orchestrates package selection and route planning for all drones.
// A planning run always completes: packages no drone can serve are simply
// left out of the trips and reflected in the delivered/total counts.
func (h *PlanHandler) Plan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.PlanRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil && err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	scenario, err := h.Repo.LoadScenario(r.Context())
	if err != nil {
		log.Printf("load scenario failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	warehouse := strings.TrimSpace(req.Warehouse)
	if warehouse == "" {
		warehouse = strings.TrimSpace(h.DefaultWarehouse)
	}
	if warehouse == "" {
		warehouse = scenario.WarehouseName()
	}
	if warehouse == "" {
		writeError(w, r, http.StatusBadRequest, "warehouse is required")
		return
	}

	key := planKey(scenario, warehouse)

	if h.Cache != nil {
		if body, ok, err := h.Cache.Get(r.Context(), key); err != nil {
			log.Printf("plan cache get failed: %v", err)
		} else if ok {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			if _, err := w.Write(body); err != nil {
				log.Printf("write cached plan failed: %v", err)
			}
			return
		}
	}

	res, err := h.planTrips(r.Context(), scenario, warehouse)
	if err != nil {
		log.Printf("plan trips failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	if h.Cache != nil {
		if body, err := json.Marshal(res); err == nil {
			if err := h.Cache.Put(r.Context(), key, body); err != nil {
				log.Printf("plan cache put failed: %v", err)
			}
		}
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *PlanHandler) planTrips(ctx context.Context, scenario *domain.Scenario, warehouse string) (res *dto.PlanResponse, err error) {
	defer obs.Time(ctx, "plan_trips")(&err)

	net, err := scenario.BuildNetwork()
	if err != nil {
		return nil, fmt.Errorf("plan trips: %w", err)
	}

	result := services.PlanTrips(net, scenario.Drones, scenario.Packages, warehouse)

	res = &dto.PlanResponse{
		Trips:             make([]dto.TripResponse, 0, len(result.Trips)),
		DeliveredPackages: result.Delivered(),
		TotalPackages:     len(scenario.Packages),
	}
	for _, trip := range result.Trips {
		ids := make([]int, 0, len(trip.Packages))
		for _, p := range trip.Packages {
			ids = append(ids, p.PackageID)
		}

		res.Trips = append(res.Trips, dto.TripResponse{
			DroneID:          trip.Drone.DroneID,
			PackageIDs:       ids,
			TotalValue:       trip.TotalValue,
			TotalWeight:      trip.TotalWeight,
			Route:            trip.Route,
			DetailedRoute:    trip.DetailedRoute,
			SegmentDistances: trip.SegmentDistances,
			TotalDistance:    trip.TotalDistance,
		})
	}

	return res, nil
}

// planKey fingerprints the scenario content and warehouse choice so a cached
// result is only ever served for the exact inputs it was computed from.
func planKey(scenario *domain.Scenario, warehouse string) string {
	sum := sha256.New()
	_ = json.NewEncoder(sum).Encode(scenario)

	return "plans:" + warehouse + ":" + hex.EncodeToString(sum.Sum(nil))
}
