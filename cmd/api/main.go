package main

import (
	"context"
	"log"

	"agencyx/internal/app/bootstrap"
)

// API process entrypoint.
// Data flow:
// 1) Load config.
// 2) Build app wiring (ports + adapters + use cases).
// 3) Start HTTP server.
//
// @title AgencyX Campaign Platform API
// @version 1.0
// @description Credit-gated AI campaign generation, brand settings, community templates, and the credit ledger.
// @BasePath /
func main() {
	log.Println("agencyx api starting")
	app, err := bootstrap.BuildAPI()
	if err != nil {
		log.Fatalf("bootstrap api failed: %v", err)
	}
	defer func() {
		if err := app.Close(); err != nil {
			log.Printf("api shutdown close failed: %v", err)
		}
	}()

	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("agencyx api stopped with error: %v", err)
	}
}
