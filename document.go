package pagetext

import (
	"context"
	"time"
)

// Scrape represents a saved scrape in the history.
type Scrape struct {
	ID            string    `json:"id"`
	URL           string    `json:"url"`
	Host          string    `json:"host"`
	Title         string    `json:"title"`
	TotalElements int       `json:"totalElements"`
	Export        string    `json:"export"` // JSON export of the result
	ContentHash   string    `json:"contentHash"`
	ScrapedAt     time.Time `json:"scrapedAt"`
}

// Validate returns an error if the scrape contains invalid fields.
func (s *Scrape) Validate() error {
	if s.URL == "" {
		return Errorf(EINVALID, "scrape URL required")
	}
	if s.Export == "" {
		return Errorf(EINVALID, "scrape export required")
	}
	return nil
}

// NewScrape builds a history entry from a result, embedding its JSON export.
func NewScrape(r *Result) (*Scrape, error) {
	export, err := RenderJSON(r)
	if err != nil {
		return nil, err
	}
	return &Scrape{
		URL:           r.URL,
		Host:          r.Host(),
		Title:         r.Metadata.Title,
		TotalElements: len(r.Records),
		Export:        string(export),
		ScrapedAt:     r.ScrapedAt,
	}, nil
}

// Result decodes the stored JSON export.
func (s *Scrape) Result() (*Result, error) {
	return DecodeJSON([]byte(s.Export))
}

// ScrapeService represents a service for managing the scrape history.
type ScrapeService interface {
	// CreateScrape saves a scrape, assigning its ID and content hash.
	CreateScrape(ctx context.Context, s *Scrape) error

	// FindScrapeByID retrieves a scrape by ID.
	// Returns ENOTFOUND if the scrape does not exist.
	FindScrapeByID(ctx context.Context, id string) (*Scrape, error)

	// FindScrapes retrieves scrapes matching the filter, newest first.
	FindScrapes(ctx context.Context, filter ScrapeFilter) ([]*Scrape, error)

	// DeleteScrape permanently removes a scrape.
	// Returns ENOTFOUND if the scrape does not exist.
	DeleteScrape(ctx context.Context, id string) error
}

// ScrapeFilter represents a filter for FindScrapes.
type ScrapeFilter struct {
	ID   *string `json:"id"`
	URL  *string `json:"url"`
	Host *string `json:"host"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
