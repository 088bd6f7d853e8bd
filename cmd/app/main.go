package main

import (
	"log"

	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/config"
	"github.com/SKARIGA-RPL-XII/project-kik-rakiaih/internal/app"
	_ "github.com/joho/godotenv/autoload"
)

func main() {
	// Configuration
	cfg, err := config.New()
	if err != nil {
		log.Fatalf("Config error: %s", err)
	}

	// Run
	app.Run(cfg)
}
