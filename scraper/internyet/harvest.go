package internyet

import (
	"fmt"

	"github.com/s-hari-haran/vtu-portal-scraper/models"
	"github.com/s-hari-haran/vtu-portal-scraper/utils"
)

// Unbounded disables the page bound: pagination runs until the portal has
// no next-page control left.
const Unbounded = -1

// Pager is the browser surface the harvest loop drives. The chromedp
// Scraper implements it; tests swap in a scripted fake.
type Pager interface {
	// LoadStart navigates to the listing page. Failure here is fatal
	// for the whole run.
	LoadStart(url string) error

	// Listings extracts every listing visible on the current page.
	// An error means the page rendered nothing usable; the run continues.
	Listings() ([]models.Listing, error)

	// NextPage activates the next-page control and waits for the new
	// page. Returns false when no usable control exists.
	NextPage() (bool, error)

	Close()
}

// session is the in-progress state of one harvest run.
type session struct {
	page     int
	listings []models.Listing
	done     bool
}

// Harvest walks the portal's pagination and accumulates listings in page
// order, DOM order within a page. maxPages >= 1 bounds the walk, 0 means
// zero pages (nothing is loaded), Unbounded walks until the next-page
// control disappears.
//
// A page that fails to render counts as zero listings; the loop still
// looks for the next-page control. Failed pages are not retried.
func Harvest(p Pager, startURL string, maxPages int) ([]models.Listing, error) {
	if startURL == "" {
		return nil, fmt.Errorf("start URL must not be empty")
	}
	if maxPages == 0 {
		return nil, nil
	}

	if err := p.LoadStart(startURL); err != nil {
		return nil, fmt.Errorf("could not load start page: %w", err)
	}

	var s session
	for !s.done {
		s.page++

		pageListings, err := p.Listings()
		if err != nil {
			utils.Warn("Page %d yielded no listings: %v", s.page, err)
		}
		for i := range pageListings {
			pageListings[i].Page = s.page
		}
		s.listings = append(s.listings, pageListings...)
		utils.Info("Scraped %d items from page %d", len(pageListings), s.page)

		if maxPages > 0 && s.page >= maxPages {
			utils.Info("Reached page bound (%d)", maxPages)
			s.done = true
			continue
		}

		hasNext, err := p.NextPage()
		if err != nil {
			utils.Warn("Could not advance past page %d: %v", s.page, err)
			hasNext = false
		}
		if !hasNext {
			utils.Info("No next page found; ending pagination")
			s.done = true
		}
	}

	return s.listings, nil
}
