package worktree

import (
	"os"
	"path/filepath"

	"github.com/minigit/minigit/internal/core"
	"github.com/minigit/minigit/internal/objects"
)

// Materialize writes every path in to into the working directory from
// its blob, and removes paths that were present in from but are absent
// from to. This is the shared tree-rewrite step behind checkout,
// revert and fast-forward merge, per spec.md §4.9–§4.11 ("materialize
// the target branch's head commit into the working tree").
func Materialize(repo *core.Repository, from, to map[string]string) error {
	for path, hash := range to {
		content, err := objects.GetBlob(repo, hash)
		if err != nil {
			return err
		}
		absPath := filepath.Join(repo.Root, filepath.FromSlash(path))
		if err := core.EnsureDirExists(filepath.Dir(absPath)); err != nil {
			return err
		}
		if err := os.WriteFile(absPath, content, 0644); err != nil {
			return err
		}
	}

	for path := range from {
		if _, stillPresent := to[path]; stillPresent {
			continue
		}
		absPath := filepath.Join(repo.Root, filepath.FromSlash(path))
		if err := os.Remove(absPath); err != nil && !os.IsNotExist(err) {
			return err
		}
	}
	return nil
}

// WriteFile writes a single path's content into the working tree,
// creating parent directories as needed. Used by merge to lay down
// conflict-marker content for a conflicting path.
func WriteFile(repo *core.Repository, path string, content []byte) error {
	absPath := filepath.Join(repo.Root, filepath.FromSlash(path))
	if err := core.EnsureDirExists(filepath.Dir(absPath)); err != nil {
		return err
	}
	return os.WriteFile(absPath, content, 0644)
}
