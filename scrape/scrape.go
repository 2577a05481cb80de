// Package scrape orchestrates a single-page scrape: fetch, parse, select
// and extract, producing the result consumed by every renderer.
package scrape

import (
	"context"
	"time"

	"github.com/fwojciec/pagetext"
)

// Ensure Scraper implements pagetext.Scraper.
var _ pagetext.Scraper = (*Scraper)(nil)

// Scraper runs the scrape pipeline. Now defaults to time.Now.
type Scraper struct {
	Fetcher   pagetext.Fetcher
	Extractor pagetext.Extractor
	Now       func() time.Time
}

// Scrape fetches req.URL and extracts its records.
// A fetch failure stops the pipeline before parsing and is returned
// unchanged. A result with no records is not an error.
func (s *Scraper) Scrape(ctx context.Context, req pagetext.ScrapeRequest) (*pagetext.Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	raw, err := s.Fetcher.Fetch(ctx, req.URL, req.Headers)
	if err != nil {
		return nil, err
	}

	extracted, err := s.Extractor.Extract(raw, pagetext.ExtractOptions{
		Filter:       req.Filter,
		StripScripts: req.StripScripts,
	})
	if err != nil {
		return nil, err
	}

	return &pagetext.Result{
		URL:         req.URL,
		Metadata:    extracted.Metadata,
		Records:     extracted.Records,
		ScrapedAt:   s.now(),
		ContentHTML: extracted.ContentHTML,
	}, nil
}

func (s *Scraper) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
