package main

import (
	"fmt"
	"log"

	"lecturer-claims/internal/config"
	"lecturer-claims/internal/database"
	"lecturer-claims/internal/server"
)

func main() {
	cfg := config.Load()
	database.Init(cfg.DBDSN)

	r := server.NewRouter(cfg)

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	log.Printf("starting server on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
