// Package fs provides file-based storage for scrape artifacts.
package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/fwojciec/pagetext"
)

// tempDirName is the staging directory created inside the output directory.
const tempDirName = ".pagetext.tmp"

// Ensure ArtifactStore implements pagetext.ArtifactStore at compile time.
var _ pagetext.ArtifactStore = (*ArtifactStore)(nil)

// ArtifactStore implements pagetext.ArtifactStore with atomic update
// semantics. Artifacts are saved to a temporary directory, then moved
// into the output directory on Commit.
type ArtifactStore struct {
	dir string

	mu    sync.Mutex
	saved []string
}

// NewArtifactStore creates a new ArtifactStore writing into dir.
// Files are staged in dir/.pagetext.tmp until Commit.
func NewArtifactStore(dir string) *ArtifactStore {
	return &ArtifactStore{dir: dir}
}

func (s *ArtifactStore) tempDir() string {
	return filepath.Join(s.dir, tempDirName)
}

// Save stages an artifact. Filenames must not contain path separators.
func (s *ArtifactStore) Save(ctx context.Context, a pagetext.Artifact) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if a.Filename == "" || filepath.Base(a.Filename) != a.Filename || a.Filename == "." || a.Filename == ".." {
		return pagetext.Errorf(pagetext.EINVALID, "invalid artifact filename %q", a.Filename)
	}

	if err := os.MkdirAll(s.tempDir(), 0755); err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(s.tempDir(), a.Filename), a.Content, 0644); err != nil {
		return err
	}

	s.mu.Lock()
	s.saved = append(s.saved, a.Filename)
	s.mu.Unlock()
	return nil
}

// Commit moves every staged artifact into the output directory,
// replacing files of the same name, and removes the staging directory.
func (s *ArtifactStore) Commit() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, name := range s.saved {
		if err := os.Rename(filepath.Join(s.tempDir(), name), filepath.Join(s.dir, name)); err != nil {
			return fmt.Errorf("committing %s: %w", name, err)
		}
	}
	s.saved = nil

	return os.RemoveAll(s.tempDir())
}

// Abort discards every staged artifact.
func (s *ArtifactStore) Abort() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.saved = nil
	return os.RemoveAll(s.tempDir())
}
