package mock

import "github.com/fwojciec/pagetext"

var _ pagetext.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of pagetext.Extractor.
type Extractor struct {
	ExtractFn func(raw []byte, opts pagetext.ExtractOptions) (*pagetext.ExtractResult, error)
}

func (e *Extractor) Extract(raw []byte, opts pagetext.ExtractOptions) (*pagetext.ExtractResult, error) {
	return e.ExtractFn(raw, opts)
}
