package main

import (
	"context"
	"log"

	"qa-review-be/internal/bootstrap"
	"qa-review-be/internal/config"
	"qa-review-be/internal/server"
	"qa-review-be/pkg/database"
	"qa-review-be/pkg/tracer"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Tracer (no-op when OTLP_ENDPOINT is unset)
	shutdownTracer := tracer.InitTracer(cfg.App.OTLPEndpoint, "qa-review-be")
	defer shutdownTracer(context.Background())

	// 3. Initialize Database
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	// 4. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)

	// 5. Start Background Services
	go func() {
		log.Println("Background: Starting Consumer Service...")
		if err := container.ConsumerService.Consume(context.Background()); err != nil {
			log.Printf("Background Consumer Error: %v", err)
		}
	}()

	// 6. Initialize Server
	srv := server.New(cfg, container)

	// 7. Run Server
	log.Fatal(srv.Run())
}
