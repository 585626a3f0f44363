// Package staging implements the Index: the mapping of working-tree
// paths to the blob hash staged for the next commit.
package staging

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/minigit/minigit/internal/core"
	"github.com/minigit/minigit/internal/objects"
)

// Index is MiniGit's staging area, grounded in shape on the teacher's
// internal/staging.Index but flattened to spec.md §3's schema: a single
// path -> hash map, with no stage-numbered conflict entries (MiniGit
// tracks a conflicted merge via the MERGE_HEAD sentinel instead, see
// internal/merge).
type Index struct {
	repo         *core.Repository
	TrackedFiles map[string]string `json:"tracked_files"`
}

type indexFile struct {
	TrackedFiles map[string]string `json:"tracked_files"`
}

// Load reads .minigit/index.json, returning an empty index if absent.
func Load(repo *core.Repository) (*Index, error) {
	idx := &Index{repo: repo, TrackedFiles: map[string]string{}}
	path := repo.Path("index.json")
	if !core.FileExists(path) {
		return idx, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read index: %w", err)
	}
	var f indexFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse index: %w", err)
	}
	if f.TrackedFiles != nil {
		idx.TrackedFiles = f.TrackedFiles
	}
	return idx, nil
}

// Save persists the index to .minigit/index.json.
func (idx *Index) Save() error {
	data, err := json.MarshalIndent(indexFile{TrackedFiles: idx.TrackedFiles}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize index: %w", err)
	}
	return os.WriteFile(idx.repo.Path("index.json"), data, 0644)
}

// Stage hashes relPath's current on-disk content, writes the blob if new
// and records the mapping. Fails with NoMatchingFile if the path does
// not exist, per spec.md §4.5.
func (idx *Index) Stage(relPath string) error {
	absPath := filepath.Join(idx.repo.Root, filepath.FromSlash(relPath))
	content, err := os.ReadFile(absPath)
	if err != nil {
		return &core.NoMatchingFileError{Path: relPath}
	}
	hash, err := objects.PutBlob(idx.repo, content)
	if err != nil {
		return err
	}
	idx.TrackedFiles[filepath.ToSlash(relPath)] = hash
	return nil
}

// Contains reports whether path is staged.
func (idx *Index) Contains(path string) bool {
	_, ok := idx.TrackedFiles[filepath.ToSlash(path)]
	return ok
}

// HashOf returns the staged hash for path, or "" if unstaged.
func (idx *Index) HashOf(path string) string {
	return idx.TrackedFiles[filepath.ToSlash(path)]
}

// Paths returns every staged path, sorted lexicographically.
func (idx *Index) Paths() []string {
	paths := make([]string, 0, len(idx.TrackedFiles))
	for p := range idx.TrackedFiles {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Clear empties the index.
func (idx *Index) Clear() {
	idx.TrackedFiles = map[string]string{}
}

// Replace swaps the entire tracked-file map, used by checkout/revert/
// fast-forward merge to restore the index to a commit's snapshot.
func (idx *Index) Replace(files map[string]string) {
	copied := make(map[string]string, len(files))
	for k, v := range files {
		copied[filepath.ToSlash(k)] = v
	}
	idx.TrackedFiles = copied
}
