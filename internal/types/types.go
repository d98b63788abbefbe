package types

import "time"

// Summary represents the data extracted from a single article page
type Summary struct {
	URL            string    `json:"url"`
	Title          string    `json:"title"`
	Summary        string    `json:"summary"`
	Disambiguation bool      `json:"disambiguation"`
	FetchedAt      time.Time `json:"fetched_at"`
}
