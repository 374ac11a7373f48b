package main

import (
	"context"
	"log"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"veristat/adapters/postgres"
	"veristat/app"
	"veristat/internal/config"
	"veristat/ports"
	"veristat/ui"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	service := app.NewVerifyService(cfg.Engine.SignificanceLevel, cfg.Engine.MaxWorkers)

	var store ports.RunStorePort
	if cfg.Database.URL != "" {
		db, err := sqlx.Connect("postgres", cfg.Database.URL)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		repo := postgres.NewRunRepository(db)
		if err := repo.EnsureSchema(context.Background()); err != nil {
			log.Fatalf("Failed to ensure schema: %v", err)
		}
		store = repo
		log.Println("Run persistence enabled")
	} else {
		log.Println("DATABASE_URL not set; running stateless")
	}

	httpApp := ui.NewApp(service, store)
	log.Printf("veristat listening on :%s (alpha = %v)", cfg.Server.Port, cfg.Engine.SignificanceLevel)
	if err := httpApp.Serve(ui.Config{Port: cfg.Server.Port}); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
