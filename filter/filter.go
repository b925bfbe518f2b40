// Package filter narrows a harvested result set by keyword. It runs once,
// after harvesting completes, and never touches the browser.
package filter

import (
	"strings"

	"github.com/s-hari-haran/vtu-portal-scraper/models"
)

// Keyword keeps listings whose title or company contains keyword,
// case-insensitively. The empty keyword keeps everything. Relative order
// is preserved and the input slice is never modified.
func Keyword(listings []models.Listing, keyword string) []models.Listing {
	if keyword == "" {
		return listings
	}

	kw := strings.ToLower(keyword)
	kept := make([]models.Listing, 0, len(listings))
	for _, l := range listings {
		if strings.Contains(strings.ToLower(l.Title), kw) ||
			strings.Contains(strings.ToLower(l.Company), kw) {
			kept = append(kept, l)
		}
	}
	return kept
}
