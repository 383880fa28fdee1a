// Package config holds the service configuration sourced from
// environment variables.
package config

import (
	"fmt"
	"log"
	"os"
	"strings"
)

const (
	defaultAddr      = ":8080"
	defaultCatalog   = "price_list.csv"
	defaultUploadDir = "uploads"
	defaultOutputDir = "estimates"
)

// Config is the runtime configuration for the estimator service.
type Config struct {
	Addr        string // listen address, e.g. ":8080"
	CatalogPath string // price list source (.csv, .xlsx or .xlsm)
	UploadDir   string // where uploaded roof reports are stored
	OutputDir   string // where rendered quote PDFs are written
	ProfilePath string // company profile JSON; empty means the default path
}

// Load reads environment variables and returns a populated Config.
// Unset variables fall back to defaults.
func Load() Config {
	cfg := Config{
		Addr:        os.Getenv("ESTIMATOR_ADDR"),
		CatalogPath: os.Getenv("ESTIMATOR_CATALOG"),
		UploadDir:   os.Getenv("ESTIMATOR_UPLOAD_DIR"),
		OutputDir:   os.Getenv("ESTIMATOR_OUTPUT_DIR"),
		ProfilePath: os.Getenv("ESTIMATOR_PROFILE"),
	}

	if cfg.Addr == "" {
		cfg.Addr = defaultAddr
	} else if !strings.Contains(cfg.Addr, ":") {
		// A bare port is a common mistake; ":8080" is what gin expects.
		log.Printf("warning: ESTIMATOR_ADDR=%q has no host separator, using %q", cfg.Addr, ":"+cfg.Addr)
		cfg.Addr = ":" + cfg.Addr
	}
	if cfg.CatalogPath == "" {
		cfg.CatalogPath = defaultCatalog
	}
	if cfg.UploadDir == "" {
		cfg.UploadDir = defaultUploadDir
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = defaultOutputDir
	}

	return cfg
}

// EnsureDirs creates the upload and output directories if missing.
func (c Config) EnsureDirs() error {
	for _, dir := range []string{c.UploadDir, c.OutputDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("cannot create directory %s: %w", dir, err)
		}
	}
	return nil
}
