package services

import (
	"fmt"
	"sort"
	"strings"

	"github.com/s-hari-haran/vtu-portal-scraper/models"
)

type Report struct {
	TotalListings      int
	ListingsByLocation map[string]int
	ListingsByMode     map[string]int
	TopCompanies       []CompanyCount
}

type CompanyCount struct {
	Company string
	Count   int
}

// GenerateReport computes summary insights over an already-cleaned result
// set. Empty locations and modes are bucketed under "Unknown".
func GenerateReport(listings []models.Listing) Report {
	report := Report{
		TotalListings:      len(listings),
		ListingsByLocation: make(map[string]int),
		ListingsByMode:     make(map[string]int),
	}

	companies := make(map[string]int)
	for _, l := range listings {
		report.ListingsByLocation[normalizeField(l.Location)]++
		report.ListingsByMode[normalizeField(l.Mode)]++
		if c := strings.TrimSpace(l.Company); c != "" {
			companies[c]++
		}
	}

	for company, count := range companies {
		report.TopCompanies = append(report.TopCompanies, CompanyCount{company, count})
	}
	sort.Slice(report.TopCompanies, func(i, j int) bool {
		if report.TopCompanies[i].Count == report.TopCompanies[j].Count {
			return report.TopCompanies[i].Company < report.TopCompanies[j].Company
		}
		return report.TopCompanies[i].Count > report.TopCompanies[j].Count
	})
	if len(report.TopCompanies) > 5 {
		report.TopCompanies = report.TopCompanies[:5]
	}

	return report
}

func PrintReport(report Report) {
	fmt.Println()
	fmt.Println("┌──────────────────────────────────────────────────────────────┐")
	fmt.Println("│                   Internship Listing Summary                 │")
	fmt.Println("├───────────────────────────────┬──────────────────────────────┤")
	fmt.Printf("│ %-29s │ %-28d │\n", "Total Listings", report.TotalListings)
	fmt.Println("└───────────────────────────────┴──────────────────────────────┘")

	fmt.Println()
	fmt.Println("┌──────────────────────────────────────────────┬───────────────┐")
	fmt.Println("│ Listings per Location                        │ Count         │")
	fmt.Println("├──────────────────────────────────────────────┼───────────────┤")
	for _, loc := range sortedKeys(report.ListingsByLocation) {
		fmt.Printf("│ %-44s │ %-13d │\n", truncateText(loc, 44), report.ListingsByLocation[loc])
	}
	fmt.Println("└──────────────────────────────────────────────┴───────────────┘")

	fmt.Println()
	fmt.Println("┌──────────────────────────────────────────────┬───────────────┐")
	fmt.Println("│ Listings per Mode                            │ Count         │")
	fmt.Println("├──────────────────────────────────────────────┼───────────────┤")
	for _, mode := range sortedKeys(report.ListingsByMode) {
		fmt.Printf("│ %-44s │ %-13d │\n", truncateText(mode, 44), report.ListingsByMode[mode])
	}
	fmt.Println("└──────────────────────────────────────────────┴───────────────┘")

	if len(report.TopCompanies) > 0 {
		fmt.Println()
		fmt.Println("┌─────┬──────────────────────────────────────────────┬──────────┐")
		fmt.Println("│ #   │ Top Companies                                │ Listings │")
		fmt.Println("├─────┼──────────────────────────────────────────────┼──────────┤")
		for i, c := range report.TopCompanies {
			fmt.Printf("│ %-3d │ %-44s │ %-8d │\n", i+1, truncateText(c.Company, 44), c.Count)
		}
		fmt.Println("└─────┴──────────────────────────────────────────────┴──────────┘")
	}
}

// CleanListings trims whitespace, drops cards that carry neither a title
// nor a company, and removes duplicate detail links. Listings without a
// link are kept as-is since the portal doesn't always render one.
func CleanListings(listings []models.Listing) []models.Listing {
	seen := make(map[string]bool)
	cleaned := make([]models.Listing, 0, len(listings))

	for _, l := range listings {
		l.Title = strings.TrimSpace(l.Title)
		l.Company = strings.TrimSpace(l.Company)
		l.Location = strings.TrimSpace(l.Location)
		l.Mode = strings.TrimSpace(l.Mode)
		l.Duration = strings.TrimSpace(l.Duration)
		l.Fees = strings.TrimSpace(l.Fees)
		l.ApplyBy = strings.TrimSpace(l.ApplyBy)
		l.URL = strings.TrimSpace(l.URL)

		if l.Title == "" && l.Company == "" {
			continue
		}

		if l.URL != "" {
			if seen[l.URL] {
				continue
			}
			seen[l.URL] = true
		}

		cleaned = append(cleaned, l)
	}

	return cleaned
}

func normalizeField(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "Unknown"
	}
	return v
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func truncateText(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
