package main

import (
	"database/sql"
	"log"
	"os"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"etruck-route-service/internal/adapters/repositories"
	"etruck-route-service/internal/config"
	"etruck-route-service/internal/platform/db"
)

// dbtool prepares a shared Postgres instance: schema plus the truck and
// charging station directories. Local runs use the SQLite path built into
// the server instead.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	db, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	truckSeedPath := config.Get("TRUCK_SEED_PATH", "data/seeds/trucks.json")
	stationSeedPath := config.Get("STATION_SEED_PATH", "data/seeds/stations.json")
	if err := initAndSeed(db, truckSeedPath, stationSeedPath); err != nil {
		log.Fatal(err)
	}
}

func initAndSeed(db *sql.DB, truckSeedPath, stationSeedPath string) error {
	log.Println("Initializing database schema...")
	if err := repositories.InitPostgresSchema(db); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")

	log.Println("Seeding truck directory...")
	if err := repositories.SeedTrucksPostgres(db, truckSeedPath); err != nil {
		log.Fatalf("truck seeding failed: %v", err)
	}

	log.Println("Seeding charging stations...")
	if err := repositories.SeedStationsPostgres(db, stationSeedPath); err != nil {
		log.Fatalf("station seeding failed: %v", err)
	}
	log.Println("Seeding complete.")

	return nil
}
