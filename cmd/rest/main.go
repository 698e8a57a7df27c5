package main

import (
	"context"
	"log"

	"notestack-be/internal/bootstrap"
	"notestack-be/internal/config"
	"notestack-be/internal/server"
	"notestack-be/internal/tracer"
)

func main() {
	// 1. Initialize Tracer (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 2. Load Configuration
	cfg := config.Load()

	// 3. Bootstrap Dependencies (Container)
	// Aborts on a corrupt data file: resetting the user's notes silently is
	// worse than a failed start.
	container, err := bootstrap.NewContainer(context.Background(), cfg)
	if err != nil {
		log.Panicf("Unable to initialize application: %v", err)
	}

	// 4. Initialize Server
	srv := server.New(cfg, container)

	// 5. Run Server
	log.Fatal(srv.Run())
}
