package storage

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/s-hari-haran/vtu-portal-scraper/models"
)

// TextWriter emits a human-readable, line-oriented listing. This is the
// default output format.
type TextWriter struct {
	path string // "" = stdout
}

func NewTextWriter(path string) *TextWriter {
	return &TextWriter{path: path}
}

func (w *TextWriter) Write(listings []models.Listing) error {
	var out io.Writer = os.Stdout
	if w.path != "" {
		file, err := os.Create(w.path)
		if err != nil {
			return fmt.Errorf("could not create file: %w", err)
		}
		defer file.Close()
		out = file
	}

	if len(listings) == 0 {
		fmt.Fprintln(out, "No internships found.")
		return nil
	}

	for i, l := range listings {
		fmt.Fprintf(out, "%d. %s\n", i+1, formatHeadline(l))
		if detail := formatDetail(l); detail != "" {
			fmt.Fprintf(out, "   %s\n", detail)
		}
		if l.URL != "" {
			fmt.Fprintf(out, "   %s\n", l.URL)
		}
	}
	fmt.Fprintf(out, "\n%d internships total\n", len(listings))
	return nil
}

func formatHeadline(l models.Listing) string {
	switch {
	case l.Title != "" && l.Company != "":
		return l.Title + " — " + l.Company
	case l.Title != "":
		return l.Title
	default:
		return l.Company
	}
}

func formatDetail(l models.Listing) string {
	var parts []string
	if l.Location != "" {
		parts = append(parts, l.Location)
	}
	if l.Mode != "" {
		parts = append(parts, l.Mode)
	}
	if l.Duration != "" {
		parts = append(parts, l.Duration)
	}
	if l.Fees != "" {
		parts = append(parts, "fees: "+l.Fees)
	}
	if l.ApplyBy != "" {
		parts = append(parts, "apply by "+l.ApplyBy)
	}
	return strings.Join(parts, " | ")
}
