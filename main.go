package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/libris-project/libris/internal/config"
	"github.com/libris-project/libris/internal/entrypoint"
)

// Version information - set at build time via ldflags
var (
	Version = "dev"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found, relying on environment variables")
	}

	cfg := config.NewConfig()
	entrypoint.Run(cfg, Version)
}
