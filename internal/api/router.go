package api

import (
	"net/http"

	"drone-delivery-planner/internal/api/handlers"
	"drone-delivery-planner/internal/ports"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
// cache may be nil; planning then always recomputes.
func NewRouter(repo ports.ScenarioRepository, cache ports.ResultCache, warehouse string) http.Handler {
	mux := http.NewServeMux()

	networkHandler := &handlers.NetworkHandler{Repo: repo}
	pkgHandler := &handlers.PackageHandler{Repo: repo}
	planHandler := &handlers.PlanHandler{
		Repo:             repo,
		Cache:            cache,
		DefaultWarehouse: warehouse,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/network", networkHandler.Get)
	mux.HandleFunc("/packages", pkgHandler.List)
	mux.HandleFunc("/plans", planHandler.Plan)

	return loggingMiddleware(mux)
}
