// Package objects implements MiniGit's ObjectStore: content-addressed
// blobs and commit records persisted under .minigit/objects.
package objects

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/minigit/minigit/internal/core"
)

// PutBlob writes content under objects/blobs/<hash> if it is not already
// present, and returns its hash. Puts are idempotent: writing existing
// content is a no-op, the same guarantee the teacher's CreateBlob gives.
func PutBlob(repo *core.Repository, content []byte) (string, error) {
	hash := core.Hash(content)
	path := blobPath(repo, hash)
	if core.FileExists(path) {
		return hash, nil
	}
	if err := core.EnsureDirExists(filepath.Dir(path)); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, content, 0644); err != nil {
		return "", fmt.Errorf("failed to write blob %s: %w", hash, err)
	}
	return hash, nil
}

// GetBlob reads a blob's raw content by hash.
func GetBlob(repo *core.Repository, hash string) ([]byte, error) {
	path := blobPath(repo, hash)
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &core.CorruptObjectError{Hash: hash, Err: err}
	}
	return content, nil
}

// HasBlob reports whether a blob with this hash exists.
func HasBlob(repo *core.Repository, hash string) bool {
	return core.FileExists(blobPath(repo, hash))
}

func blobPath(repo *core.Repository, hash string) string {
	return repo.Path("objects", "blobs", hash)
}
