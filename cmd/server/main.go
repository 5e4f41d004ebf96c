package main

import (
	"log"

	"github.com/nycdash/taxi-dashboard-go/internal/api"
	"github.com/nycdash/taxi-dashboard-go/internal/config"
	"github.com/nycdash/taxi-dashboard-go/internal/database"
	"github.com/nycdash/taxi-dashboard-go/internal/dataset"
	"github.com/nycdash/taxi-dashboard-go/internal/repository"
	"github.com/nycdash/taxi-dashboard-go/internal/service"
	"github.com/nycdash/taxi-dashboard-go/internal/session"
)

func main() {
	cfg := config.Load()

	// Load the source datasets. Failure here is terminal: the data has
	// to be regenerated upstream before the dashboard can serve.
	loader := dataset.NewLoader(cfg.TripDataPath, cfg.ZoneLookupPath)
	raw, zones, err := loader.Load()
	if err != nil {
		log.Fatal("Cannot load source data, regenerate it upstream and restart: ", err)
	}

	trips := dataset.Clean(raw)
	log.Printf("Cleaned dataset: %d of %d trips retained", len(trips), len(raw))

	// Materialize the cleaned dataset into the in-memory database.
	db, err := database.Open()
	if err != nil {
		log.Fatal("Failed to open database: ", err)
	}
	defer db.Close()

	if err := database.Init(db); err != nil {
		log.Fatal("Failed to initialize schema: ", err)
	}
	if err := database.LoadZones(db, zones); err != nil {
		log.Fatal("Failed to load zones: ", err)
	}
	if err := database.LoadTrips(db, trips); err != nil {
		log.Fatal("Failed to load trips: ", err)
	}

	repo := repository.NewTripRepository(db)
	svc, err := service.NewDashboardService(repo)
	if err != nil {
		log.Fatal("Failed to initialize dashboard service: ", err)
	}

	store := session.NewStore(cfg.SessionTTL)
	tokens := session.NewTokenManager(cfg.SessionSecret)

	router := api.SetupRouter(cfg, svc, store, tokens)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
