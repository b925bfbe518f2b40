package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/s-hari-haran/vtu-portal-scraper/config"
	"github.com/s-hari-haran/vtu-portal-scraper/filter"
	"github.com/s-hari-haran/vtu-portal-scraper/models"
	"github.com/s-hari-haran/vtu-portal-scraper/scraper/internyet"
	"github.com/s-hari-haran/vtu-portal-scraper/services"
	"github.com/s-hari-haran/vtu-portal-scraper/storage"
	"github.com/s-hari-haran/vtu-portal-scraper/utils"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.ParseFlags(os.Args[1:])
	if err != nil {
		utils.Error("Invalid arguments: %v", err)
		os.Exit(2)
	}

	sel, err := config.LoadSelectors(cfg.SelectorsPath)
	if err != nil {
		utils.Error("Could not load selectors: %v", err)
		os.Exit(1)
	}

	utils.Info("Scraper starting | url=%s max-pages=%d keyword=%q", cfg.StartURL, cfg.MaxPages, cfg.Keyword)

	scraper, err := internyet.NewScraper(cfg, sel)
	if err != nil {
		utils.Error("Could not start scraper: %v", err)
		os.Exit(1)
	}
	defer scraper.Close()

	// CLI semantics follow the portal's convention: 0 means scrape
	// everything. The harvester itself keeps 0 = zero pages.
	maxPages := cfg.MaxPages
	if maxPages == 0 {
		maxPages = internyet.Unbounded
	}

	listings, err := internyet.Harvest(scraper, cfg.StartURL, maxPages)
	if err != nil {
		utils.Error("Harvest failed: %v", err)
		os.Exit(1)
	}

	listings = services.CleanListings(listings)
	listings = filter.Keyword(listings, cfg.Keyword)
	utils.Success("Harvest complete. Total items: %d", len(listings))

	if err := writeResults(cfg, listings); err != nil {
		utils.Error("Failed to write results: %v", err)
		os.Exit(1)
	}

	// Keep stdout machine-readable when JSON goes there.
	if !cfg.JSON || cfg.OutputPath != "" {
		services.PrintReport(services.GenerateReport(listings))
	}
}

func writeResults(cfg *config.Config, listings []models.Listing) error {
	var writer interface {
		Write([]models.Listing) error
	}
	if cfg.JSON {
		writer = storage.NewJSONWriter(cfg.OutputPath)
	} else {
		writer = storage.NewTextWriter(cfg.OutputPath)
	}
	if err := writer.Write(listings); err != nil {
		return err
	}

	if cfg.CSVPath != "" {
		if err := storage.NewCSVWriter(cfg.CSVPath).Write(listings); err != nil {
			return err
		}
	}

	if cfg.SaveToDB {
		pgWriter, err := storage.NewPostgresWriter(cfg)
		if err != nil {
			return err
		}
		defer pgWriter.Close()

		if err := pgWriter.EnsureSchema(); err != nil {
			return err
		}
		if err := pgWriter.WriteBatch(listings); err != nil {
			return err
		}
		utils.Success("Saved %d listings to PostgreSQL", len(listings))
	}

	return nil
}
