package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Selectors holds the CSS selector lists used against the portal markup.
// Each list is tried in order until one matches, because the portal's
// layout has changed more than once.
type Selectors struct {
	Cards    []string `yaml:"cards"`
	Title    []string `yaml:"title"`
	Company  []string `yaml:"company"`
	Location []string `yaml:"location"`
	Mode     []string `yaml:"mode"`
	Duration []string `yaml:"duration"`
	Fees     []string `yaml:"fees"`
	ApplyBy  []string `yaml:"apply_by"`
	Link     []string `yaml:"link"`
	Next     []string `yaml:"next"`
}

func DefaultSelectors() *Selectors {
	return &Selectors{
		Cards:    []string{"div[class*='shadow']", "div.card", "article", "div.internship-card", "div[class*='internship']"},
		Title:    []string{"h2", "h3", "a.title"},
		Company:  []string{".company", ".company-name", "p[class*='company']", "div[class*='company']"},
		Location: []string{".location", "span[class*='location']"},
		Mode:     []string{".mode", "div[class*='mode']"},
		Duration: []string{".duration", "div[class*='duration']"},
		Fees:     []string{".fees", ".fee"},
		ApplyBy:  []string{".apply-by", ".apply_by"},
		Link:     []string{"a[href]"},
		Next:     []string{"a[rel='next']", "button[aria-label='Next']", "li.next a", "ul.pagination li a", "nav[role='navigation'] a"},
	}
}

// LoadSelectors reads a YAML override file. Lists left empty in the file
// keep their defaults, so a file only needs the selectors that differ.
func LoadSelectors(path string) (*Selectors, error) {
	sel := DefaultSelectors()
	if path == "" {
		return sel, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read selectors file: %w", err)
	}

	var override Selectors
	if err := yaml.Unmarshal(data, &override); err != nil {
		return nil, fmt.Errorf("failed to parse selectors file: %w", err)
	}

	sel.merge(&override)
	return sel, nil
}

func (s *Selectors) merge(o *Selectors) {
	replace := func(dst *[]string, src []string) {
		if len(src) > 0 {
			*dst = src
		}
	}
	replace(&s.Cards, o.Cards)
	replace(&s.Title, o.Title)
	replace(&s.Company, o.Company)
	replace(&s.Location, o.Location)
	replace(&s.Mode, o.Mode)
	replace(&s.Duration, o.Duration)
	replace(&s.Fees, o.Fees)
	replace(&s.ApplyBy, o.ApplyBy)
	replace(&s.Link, o.Link)
	replace(&s.Next, o.Next)
}
