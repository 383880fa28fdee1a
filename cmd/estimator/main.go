// Roof Troops Estimator
//
// A single-tenant web service that turns an uploaded EagleView roof
// measurement report plus job details into an itemized, downloadable
// PDF quote.
//
// Build:
//   go build -o estimator ./cmd/estimator
//
// Run:
//   ESTIMATOR_ADDR=:8080 ESTIMATOR_CATALOG=price_list.csv ./estimator
//
// Configuration is environment-driven; a .env file in the working
// directory is loaded automatically.

package main

import (
	"log"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/rooftroops/estimator/internal/config"
	"github.com/rooftroops/estimator/internal/model"
	"github.com/rooftroops/estimator/internal/server"
)

func main() {
	cfg := config.Load()
	if err := cfg.EnsureDirs(); err != nil {
		log.Fatalf("startup failed: %v", err)
	}

	profilePath := cfg.ProfilePath
	if profilePath == "" {
		profilePath = model.DefaultProfilePath()
	}
	profile, err := model.LoadCompanyProfile(profilePath)
	if err != nil {
		log.Printf("warning: cannot read company profile %s, using defaults: %v", profilePath, err)
		profile = model.DefaultCompanyProfile()
	}

	if _, err := os.Stat(cfg.CatalogPath); err != nil {
		log.Printf("warning: price catalog %s not found; estimates will fail until it exists", cfg.CatalogPath)
	}

	router := server.New(cfg, profile)

	log.Printf("estimator listening on %s", cfg.Addr)
	log.Printf("catalog: %s | uploads: %s | output: %s", cfg.CatalogPath, cfg.UploadDir, cfg.OutputDir)
	if err := router.Run(cfg.Addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
