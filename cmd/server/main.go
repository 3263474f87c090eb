package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	_ "modernc.org/sqlite"

	"etruck-route-service/internal/adapters/cache"
	"etruck-route-service/internal/adapters/repositories"
	"etruck-route-service/internal/adapters/routing"
	"etruck-route-service/internal/api"
	"etruck-route-service/internal/config"
	"etruck-route-service/internal/ports"
	"etruck-route-service/internal/services"
)

// main is the application composition root.
// It wires concrete adapters (SQLite, Redis, TomTom) behind ports and starts
// the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	dbPath := config.Get("DB_PATH", "data/app.db")
	truckSeedPath := config.Get("TRUCK_SEED_PATH", "data/seeds/trucks.json")
	stationSeedPath := config.Get("STATION_SEED_PATH", "data/seeds/stations.json")
	port := config.Get("PORT", "8080")

	tomtomKey := os.Getenv("TOMTOM_API_KEY")
	if strings.TrimSpace(tomtomKey) == "" {
		log.Fatal("TOMTOM_API_KEY is required")
	}

	db, err := openDB(dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	// Initialize schema and seed directory data on startup for local runs.
	if err := initAndSeed(db, truckSeedPath, stationSeedPath); err != nil {
		log.Fatal(err)
	}

	// Routed legs are cached so repeated planning over the same corridors
	// does not burn API quota. Redis when configured, SQLite otherwise.
	routeCache, err := newRouteCache(db)
	if err != nil {
		log.Fatal(err)
	}

	provider, err := routing.NewTomTomRouteProvider(tomtomKey, routeCache)
	if err != nil {
		log.Fatal(err)
	}

	truckRepo := repositories.NewSqliteTruckRepository(db)
	stationRepo := repositories.NewSqliteStationRepository(db)

	// Directories are small and read-only; the planner works off an
	// in-memory snapshot loaded once at startup.
	ctx := context.Background()
	trucks, err := truckRepo.ListTrucks(ctx)
	if err != nil {
		log.Fatal(err)
	}
	stations, err := stationRepo.ListStations(ctx)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("directories loaded trucks=%d stations=%d", len(trucks), len(stations))

	planner := services.NewPlanner(planningConfig(), provider, trucks, stations)
	router := api.NewRouter(planner, truckRepo, stationRepo)

	// Timeouts are tuned for cold-cache fleet planning (external API latency).
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

// planningConfig starts from the defaults and applies the operational
// overrides that tend to differ per deployment.
func planningConfig() services.PlanningConfig {
	cfg := services.DefaultPlanningConfig()
	cfg.AvgSpeedKmh = config.GetFloat("AVG_SPEED_KMH", cfg.AvgSpeedKmh)
	cfg.DriverWagePerHour = config.GetFloat("DRIVER_WAGE_EUR_PER_HOUR", cfg.DriverWagePerHour)
	cfg.ChargingFallbackEUR = config.GetFloat("CHARGING_FALLBACK_EUR_PER_KWH", cfg.ChargingFallbackEUR)
	cfg.TollsPerKm = config.GetFloat("TOLLS_EUR_PER_KM", cfg.TollsPerKm)
	cfg.StationRadiusKm = config.GetFloat("STATION_RADIUS_KM", cfg.StationRadiusKm)
	cfg.RendezvousRadiusKm = config.GetFloat("RENDEZVOUS_RADIUS_KM", cfg.RendezvousRadiusKm)
	cfg.MaxRounds = config.GetInt("MAX_FLEET_ROUNDS", cfg.MaxRounds)
	return cfg
}

func newRouteCache(db *sql.DB) (ports.RouteCache, error) {
	addr := strings.TrimSpace(os.Getenv("REDIS_ADDR"))
	if addr == "" {
		return cache.NewSQLRouteCache(db), nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       config.GetInt("REDIS_DB", 0),
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("connect redis %q: %w", addr, err)
	}

	ttl := time.Duration(config.GetInt("ROUTE_CACHE_TTL_HOURS", 24)) * time.Hour
	return cache.NewRedisRouteCache(client, ttl), nil
}

func openDB(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("openDB: open sqlite database %q: %w", dbPath, err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("openDB: verify sqlite connection to %q: %w", dbPath, err)
	}

	return db, nil
}

func initAndSeed(db *sql.DB, truckSeedPath, stationSeedPath string) error {
	if err := repositories.InitSchema(db); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	if err := repositories.SeedTrucksFromJSON(db, truckSeedPath); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	if err := repositories.SeedStationsFromJSON(db, stationSeedPath); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	return nil
}
