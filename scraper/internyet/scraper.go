package internyet

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/chromedp/chromedp"

	"github.com/s-hari-haran/vtu-portal-scraper/config"
	"github.com/s-hari-haran/vtu-portal-scraper/models"
	"github.com/s-hari-haran/vtu-portal-scraper/utils"
)

// Scraper drives a single Chrome tab through the portal. Pagination on
// the portal happens in-page, so the tab stays open for the whole session
// rather than being recreated per page.
type Scraper struct {
	cfg         *config.Config
	sel         *config.Selectors
	allocCtx    context.Context
	allocCancel context.CancelFunc
	tabCtx      context.Context
	tabCancel   context.CancelFunc
}

// NewScraper launches Chrome and opens the session tab. An error here is
// fatal for the run; there is no browser to fall back to.
func NewScraper(cfg *config.Config, sel *config.Selectors) (*Scraper, error) {
	utils.Info("Launching Chrome browser...")

	allocCtx, allocCancel := chromedp.NewExecAllocator(
		context.Background(),
		utils.BrowserOpts(cfg.Headless)...,
	)
	tabCtx, tabCancel := chromedp.NewContext(allocCtx)

	// Run with no actions forces the browser process to start now, so a
	// broken Chrome install fails the run before any page is requested.
	// The tab context itself is used here: the browser's lifetime is tied
	// to whichever context starts it.
	if err := chromedp.Run(tabCtx); err != nil {
		tabCancel()
		allocCancel()
		return nil, fmt.Errorf("could not start browser: %w", err)
	}

	utils.Success("Browser ready")
	return &Scraper{
		cfg:         cfg,
		sel:         sel,
		allocCtx:    allocCtx,
		allocCancel: allocCancel,
		tabCtx:      tabCtx,
		tabCancel:   tabCancel,
	}, nil
}

func (s *Scraper) Close() {
	utils.Info("Closing browser...")
	s.tabCancel()
	s.allocCancel()
}

// LoadStart navigates to the listing page and waits for the document to
// render. Retried with backoff; if every attempt fails the run is over.
func (s *Scraper) LoadStart(url string) error {
	utils.Info("Opening %s", url)

	return utils.Retry(s.cfg.MaxRetries, func() error {
		ctx, cancel := context.WithTimeout(s.tabCtx, s.cfg.RequestTimeout)
		defer cancel()

		return chromedp.Run(ctx,
			chromedp.Navigate(url),
			chromedp.WaitVisible(`body`, chromedp.ByQuery),
		)
	})
}

// card mirrors the object shape produced by the extraction script.
type card struct {
	Title    string `json:"title"`
	Company  string `json:"company"`
	Location string `json:"location"`
	Mode     string `json:"mode"`
	Duration string `json:"duration"`
	Fees     string `json:"fees"`
	ApplyBy  string `json:"applyBy"`
	URL      string `json:"url"`
}

// Listings extracts every internship card on the current page. Fields the
// markup doesn't carry come back as empty strings; only cards with neither
// a title nor a company are dropped, since the loose card selectors also
// match plain container divs.
func (s *Scraper) Listings() ([]models.Listing, error) {
	ctx, cancel := context.WithTimeout(s.tabCtx, s.cfg.RequestTimeout)
	defer cancel()

	var cards []card
	if err := chromedp.Run(ctx, chromedp.Evaluate(s.extractScript(), &cards)); err != nil {
		return nil, fmt.Errorf("card extraction failed: %w", err)
	}

	listings := make([]models.Listing, 0, len(cards))
	for _, c := range cards {
		listings = append(listings, models.Listing{
			Title:    strings.TrimSpace(c.Title),
			Company:  strings.TrimSpace(c.Company),
			Location: strings.TrimSpace(c.Location),
			Mode:     strings.TrimSpace(c.Mode),
			Duration: strings.TrimSpace(c.Duration),
			Fees:     strings.TrimSpace(c.Fees),
			ApplyBy:  strings.TrimSpace(c.ApplyBy),
			URL:      strings.TrimSpace(c.URL),
		})
	}
	return listings, nil
}

// NextPage clicks the first enabled next-page control. After a click the
// wait for the new page is best-effort: a timeout there shows up as an
// empty page on the next Listings call, not as a fatal error.
func (s *Scraper) NextPage() (bool, error) {
	ctx, cancel := context.WithTimeout(s.tabCtx, s.cfg.RequestTimeout)
	defer cancel()

	var clicked bool
	if err := chromedp.Run(ctx, chromedp.Evaluate(s.nextScript(), &clicked)); err != nil {
		return false, fmt.Errorf("next-page lookup failed: %w", err)
	}
	if !clicked {
		return false, nil
	}

	utils.RandomDelay(s.cfg.MinDelay, s.cfg.MaxDelay)

	waitCtx, waitCancel := context.WithTimeout(s.tabCtx, s.cfg.RequestTimeout)
	defer waitCancel()
	if err := chromedp.Run(waitCtx, chromedp.WaitReady(`body`, chromedp.ByQuery)); err != nil {
		utils.Warn("Next page did not settle in time: %v", err)
	}

	return true, nil
}

// jsList renders a Go selector list as a JS array literal.
func jsList(sels []string) string {
	if len(sels) == 0 {
		return "[]"
	}
	b, _ := json.Marshal(sels)
	return string(b)
}

func (s *Scraper) extractScript() string {
	return fmt.Sprintf(`(() => {
		const pick = (root, sels) => {
			for (const sel of sels) {
				try {
					const el = root.querySelector(sel);
					if (el && el.textContent.trim()) return el.textContent.trim();
				} catch (e) {}
			}
			return '';
		};
		const pickHref = (root, sels) => {
			for (const sel of sels) {
				try {
					const el = root.querySelector(sel);
					if (el && el.getAttribute('href')) {
						return new URL(el.getAttribute('href'), window.location.href).href;
					}
				} catch (e) {}
			}
			return '';
		};

		let cards = [];
		for (const sel of %s) {
			try { cards = Array.from(document.querySelectorAll(sel)); } catch (e) { cards = []; }
			if (cards.length) break;
		}

		return cards.map(card => ({
			title:    pick(card, %s),
			company:  pick(card, %s),
			location: pick(card, %s),
			mode:     pick(card, %s),
			duration: pick(card, %s),
			fees:     pick(card, %s),
			applyBy:  pick(card, %s),
			url:      pickHref(card, %s),
		})).filter(c => c.title || c.company);
	})()`,
		jsList(s.sel.Cards),
		jsList(s.sel.Title),
		jsList(s.sel.Company),
		jsList(s.sel.Location),
		jsList(s.sel.Mode),
		jsList(s.sel.Duration),
		jsList(s.sel.Fees),
		jsList(s.sel.ApplyBy),
		jsList(s.sel.Link),
	)
}

func (s *Scraper) nextScript() string {
	return fmt.Sprintf(`(() => {
		const candidates = [];
		for (const sel of %s) {
			try { candidates.push(...document.querySelectorAll(sel)); } catch (e) {}
		}
		for (const el of document.querySelectorAll('a, button')) {
			candidates.push(el);
		}

		for (const el of candidates) {
			const cls  = (el.getAttribute('class') || '').toLowerCase();
			const aria = (el.getAttribute('aria-disabled') || '').toLowerCase();
			if (aria === 'true' || el.hasAttribute('disabled') || cls.includes('disabled')) continue;

			const text  = (el.textContent || '').trim().toLowerCase();
			const rel   = (el.getAttribute('rel') || '').toLowerCase();
			const label = (el.getAttribute('aria-label') || '').toLowerCase();
			if (rel !== 'next' && !label.includes('next') && !text.includes('next')) continue;

			el.click();
			return true;
		}
		return false;
	})()`, jsList(s.sel.Next))
}
