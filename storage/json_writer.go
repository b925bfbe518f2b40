package storage

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/s-hari-haran/vtu-portal-scraper/models"
)

// JSONWriter emits listings as an indented JSON array, either to a file
// or to stdout when path is empty. A zero-listing run still emits a valid
// (empty) array so downstream tooling never sees a partial document.
type JSONWriter struct {
	path string
}

func NewJSONWriter(path string) *JSONWriter {
	return &JSONWriter{path: path}
}

func (w *JSONWriter) Write(listings []models.Listing) error {
	var out io.Writer = os.Stdout
	if w.path != "" {
		file, err := os.Create(w.path)
		if err != nil {
			return fmt.Errorf("could not create file: %w", err)
		}
		defer file.Close()
		out = file
	}

	if listings == nil {
		listings = []models.Listing{}
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(listings); err != nil {
		return fmt.Errorf("json write error: %w", err)
	}
	return nil
}
