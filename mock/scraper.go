package mock

import (
	"context"

	"github.com/fwojciec/pagetext"
)

var _ pagetext.Scraper = (*Scraper)(nil)

// Scraper is a mock implementation of pagetext.Scraper.
type Scraper struct {
	ScrapeFn func(ctx context.Context, req pagetext.ScrapeRequest) (*pagetext.Result, error)
}

func (s *Scraper) Scrape(ctx context.Context, req pagetext.ScrapeRequest) (*pagetext.Result, error) {
	return s.ScrapeFn(ctx, req)
}
