package pagetext

import (
	"context"
	"net/url"
	"time"
)

// ScrapeRequest describes one scrape of one page.
type ScrapeRequest struct {
	URL          string
	Headers      map[string]string
	Filter       FilterConfig
	StripScripts bool
}

// Validate returns an error if the request contains invalid fields.
func (r *ScrapeRequest) Validate() error {
	if r.URL == "" {
		return Errorf(EINVALID, "URL required")
	}
	u, err := url.Parse(r.URL)
	if err != nil {
		return Errorf(EINVALID, "invalid URL %q: %v", r.URL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return Errorf(EINVALID, "URL must be absolute http or https: %q", r.URL)
	}
	return r.Filter.Validate()
}

// Result is the outcome of one scrape. It is the single input of every
// renderer.
type Result struct {
	URL       string
	Metadata  PageMetadata
	Records   []ElementRecord
	ScrapedAt time.Time

	// ContentHTML is the cleaned page body, kept for page conversion.
	// It is not part of any structured export.
	ContentHTML string
}

// Host returns the host (including any port) of the scraped URL.
func (r *Result) Host() string {
	u, err := url.Parse(r.URL)
	if err != nil {
		return ""
	}
	return u.Host
}

// Empty reports whether no element matched the filters.
// An empty result is a distinct outcome, not an error.
func (r *Result) Empty() bool {
	return len(r.Records) == 0
}

// Scraper runs the fetch, parse, select and extract pipeline.
type Scraper interface {
	Scrape(ctx context.Context, req ScrapeRequest) (*Result, error)
}
