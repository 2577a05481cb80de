package mock

import (
	"context"

	"github.com/fwojciec/pagetext"
)

var _ pagetext.ScrapeService = (*ScrapeService)(nil)

// ScrapeService is a mock implementation of pagetext.ScrapeService.
type ScrapeService struct {
	CreateScrapeFn   func(ctx context.Context, s *pagetext.Scrape) error
	FindScrapeByIDFn func(ctx context.Context, id string) (*pagetext.Scrape, error)
	FindScrapesFn    func(ctx context.Context, filter pagetext.ScrapeFilter) ([]*pagetext.Scrape, error)
	DeleteScrapeFn   func(ctx context.Context, id string) error
}

func (s *ScrapeService) CreateScrape(ctx context.Context, scrape *pagetext.Scrape) error {
	return s.CreateScrapeFn(ctx, scrape)
}

func (s *ScrapeService) FindScrapeByID(ctx context.Context, id string) (*pagetext.Scrape, error) {
	return s.FindScrapeByIDFn(ctx, id)
}

func (s *ScrapeService) FindScrapes(ctx context.Context, filter pagetext.ScrapeFilter) ([]*pagetext.Scrape, error) {
	return s.FindScrapesFn(ctx, filter)
}

func (s *ScrapeService) DeleteScrape(ctx context.Context, id string) error {
	return s.DeleteScrapeFn(ctx, id)
}
