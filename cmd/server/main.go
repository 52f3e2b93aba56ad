package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	_ "modernc.org/sqlite"

	"drone-delivery-planner/internal/adapters/cache"
	"drone-delivery-planner/internal/adapters/repositories"
	"drone-delivery-planner/internal/api"
	"drone-delivery-planner/internal/config"
	"drone-delivery-planner/internal/platform/db"
	"drone-delivery-planner/internal/ports"
)

// main is the application composition root.
// It wires concrete adapters (SQLite or Postgres, Redis) behind ports and
// starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	dbPath := config.Get("DB_PATH", "data/app.db")
	seedPath := config.Get("SEED_PATH", "data/seeds/scenario.json")
	warehouse := config.Get("WAREHOUSE", "")
	port := config.Get("PORT", "8080")

	conn, err := openStore(dbPath, seedPath)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	repo := repositories.NewScenarioStore(conn)
	router := api.NewRouter(repo, planCache(), warehouse)

	// Planning a large scenario is CPU bound; the write timeout leaves room
	// for the orchestrator to finish on big fleets.
	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

// openStore connects to Postgres when DATABASE_URL is set, otherwise to a
// local SQLite file initialized and seeded on startup.
func openStore(dbPath, seedPath string) (*sql.DB, error) {
	if databaseURL := os.Getenv("DATABASE_URL"); strings.TrimSpace(databaseURL) != "" {
		conn, err := db.Open(databaseURL)
		if err != nil {
			return nil, err
		}
		return conn, nil
	}

	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("openStore: open sqlite database %q: %w", dbPath, err)
	}
	if err := conn.Ping(); err != nil {
		return nil, fmt.Errorf("openStore: verify sqlite connection to %q: %w", dbPath, err)
	}

	// Initialize schema and seed demo data on startup for local runs.
	if err := repositories.InitSchema(conn); err != nil {
		return nil, err
	}
	if err := repositories.SeedFromJSON(conn, seedPath); err != nil {
		return nil, err
	}

	return conn, nil
}

// planCache returns a Redis-backed result cache when REDIS_ADDR is set.
// Without it planning always recomputes, which is fine for small scenarios.
func planCache() ports.ResultCache {
	addr := strings.TrimSpace(os.Getenv("REDIS_ADDR"))
	if addr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{Addr: addr})

	return cache.NewRedisPlanCache(client, 10*time.Minute)
}
