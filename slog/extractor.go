package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/pagetext"
)

// Ensure LoggingExtractor implements pagetext.Extractor.
var _ pagetext.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with debug logging.
type LoggingExtractor struct {
	next   pagetext.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next pagetext.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the operation.
func (e *LoggingExtractor) Extract(raw []byte, opts pagetext.ExtractOptions) (result *pagetext.ExtractResult, err error) {
	defer func(begin time.Time) {
		var records int
		if result != nil {
			records = len(result.Records)
		}
		e.logger.Debug("extract",
			"bytes", len(raw),
			"tags", len(opts.Filter.Tags),
			"ids", len(opts.Filter.IDs),
			"terms", len(opts.Filter.Terms),
			"strip_scripts", opts.StripScripts,
			"records", records,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(raw, opts)
}
