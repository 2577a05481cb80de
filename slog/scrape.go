package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/pagetext"
)

// Ensure LoggingScrapeService implements pagetext.ScrapeService.
var _ pagetext.ScrapeService = (*LoggingScrapeService)(nil)

// LoggingScrapeService wraps a ScrapeService with logging.
type LoggingScrapeService struct {
	next   pagetext.ScrapeService
	logger *slog.Logger
}

// NewLoggingScrapeService creates a new LoggingScrapeService.
func NewLoggingScrapeService(next pagetext.ScrapeService, logger *slog.Logger) *LoggingScrapeService {
	return &LoggingScrapeService{next: next, logger: logger}
}

// CreateScrape delegates to the wrapped service and logs the operation.
func (s *LoggingScrapeService) CreateScrape(ctx context.Context, scrape *pagetext.Scrape) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("create scrape",
			"url", scrape.URL,
			"id", scrape.ID,
			"elements", scrape.TotalElements,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateScrape(ctx, scrape)
}

// FindScrapeByID delegates to the wrapped service.
func (s *LoggingScrapeService) FindScrapeByID(ctx context.Context, id string) (*pagetext.Scrape, error) {
	return s.next.FindScrapeByID(ctx, id)
}

// FindScrapes delegates to the wrapped service and logs the operation.
func (s *LoggingScrapeService) FindScrapes(ctx context.Context, filter pagetext.ScrapeFilter) (scrapes []*pagetext.Scrape, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find scrapes",
			"count", len(scrapes),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindScrapes(ctx, filter)
}

// DeleteScrape delegates to the wrapped service and logs the operation.
func (s *LoggingScrapeService) DeleteScrape(ctx context.Context, id string) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("delete scrape",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeleteScrape(ctx, id)
}
