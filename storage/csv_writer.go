package storage

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/s-hari-haran/vtu-portal-scraper/models"
	"github.com/s-hari-haran/vtu-portal-scraper/utils"
)

// CSVWriter saves listings to a CSV file, one row per listing.
type CSVWriter struct {
	path string
}

func NewCSVWriter(path string) *CSVWriter {
	return &CSVWriter{path: path}
}

// Write saves all listings to the CSV file, creating the output directory
// if it does not exist.
//
// CSV columns: title, company, location, mode, duration, fees, apply_by, url, page
func (w *CSVWriter) Write(listings []models.Listing) error {
	if len(listings) == 0 {
		utils.Warn("No listings to write")
		return nil
	}

	if dir := filepath.Dir(w.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("could not create output dir: %w", err)
		}
	}

	file, err := os.Create(w.path)
	if err != nil {
		return fmt.Errorf("could not create file: %w", err)
	}
	defer file.Close()

	if err := writeCSV(file, listings); err != nil {
		return fmt.Errorf("csv write error: %w", err)
	}

	utils.Success("Saved %d listings → %s", len(listings), w.path)
	return nil
}

func writeCSV(out io.Writer, listings []models.Listing) error {
	writer := csv.NewWriter(out)

	writer.Write([]string{"title", "company", "location", "mode", "duration", "fees", "apply_by", "url", "page"})

	for _, l := range listings {
		writer.Write([]string{
			l.Title,
			l.Company,
			l.Location,
			l.Mode,
			l.Duration,
			l.Fees,
			l.ApplyBy,
			l.URL,
			strconv.Itoa(l.Page),
		})
	}

	// Flush before the error check so failures surfacing only at flush
	// time are not lost.
	writer.Flush()
	return writer.Error()
}
