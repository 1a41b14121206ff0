package main

import (
	"log"

	"interview-backend/internal/bootstrap"
	"interview-backend/internal/shared/config"
)

func main() {
	cfg := config.Load()

	app, err := bootstrap.BuildEvaluator(cfg)
	if err != nil {
		log.Fatalf("bootstrap: %v", err)
	}
	defer app.Close()

	addr := bootstrap.Addr(cfg.EvaluatorPort)
	log.Printf("Starting evaluator service on %s", addr)

	if err := app.Router.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
