package mock

import (
	"context"

	"github.com/fwojciec/pagetext"
)

var _ pagetext.ArtifactStore = (*ArtifactStore)(nil)

// ArtifactStore is a mock implementation of pagetext.ArtifactStore.
type ArtifactStore struct {
	SaveFn   func(ctx context.Context, a pagetext.Artifact) error
	CommitFn func() error
	AbortFn  func() error
}

func (s *ArtifactStore) Save(ctx context.Context, a pagetext.Artifact) error {
	return s.SaveFn(ctx, a)
}

func (s *ArtifactStore) Commit() error {
	return s.CommitFn()
}

func (s *ArtifactStore) Abort() error {
	return s.AbortFn()
}
