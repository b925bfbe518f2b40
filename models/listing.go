package models

// Listing is one internship record scraped from the portal.
// Every field is best-effort: a card that is missing a field still
// produces a record with that field left empty.
type Listing struct {
	Title    string `json:"title"`
	Company  string `json:"company"`
	Location string `json:"location"`
	Mode     string `json:"mode"`
	Duration string `json:"duration"`
	Fees     string `json:"fees"`
	ApplyBy  string `json:"apply_by"`
	URL      string `json:"url"`
	Page     int    `json:"page"`
}
