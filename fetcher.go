package pagetext

import (
	"context"
	"encoding/json"
	"strings"
)

// DefaultUserAgent is sent when the caller supplies no User-Agent header.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// Fetcher retrieves raw page bytes from URLs.
type Fetcher interface {
	// Fetch performs a GET request for url with the given extra headers
	// and returns the response body.
	// Transient failures are retried by the implementation; any error
	// returned is terminal for the request.
	Fetch(ctx context.Context, url string, headers map[string]string) ([]byte, error)
}

// ParseHeaders parses a JSON object of header names to values.
// Blank input yields no headers. Anything other than an object of
// strings is reported as EINVALID; callers are expected to warn and
// continue with default headers.
func ParseHeaders(raw string) (map[string]string, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	var headers map[string]string
	if err := json.Unmarshal([]byte(raw), &headers); err != nil {
		return nil, Errorf(EINVALID, "invalid custom headers: %v", err)
	}
	if headers == nil {
		return nil, Errorf(EINVALID, "invalid custom headers: expected a JSON object")
	}
	return headers, nil
}
