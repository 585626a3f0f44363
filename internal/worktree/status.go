// Package worktree classifies the working directory against the index
// and the current commit, the WorkingTree component of spec.md §4.6.
package worktree

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/minigit/minigit/internal/core"
	"github.com/minigit/minigit/internal/objects"
	"github.com/minigit/minigit/internal/staging"
)

// Status holds the four-way classification spec.md §4.6 defines.
type Status struct {
	Untracked          []string
	ToBeCommitted      []string
	NotStagedForCommit []string
}

// Clean reports whether there is nothing to commit and nothing unstaged,
// the exact condition spec.md's checkout/revert/merge interlocks test.
func (s *Status) Clean() bool {
	return len(s.ToBeCommitted) == 0 && len(s.NotStagedForCommit) == 0
}

// Compute walks the working directory (excluding .minigit) and compares
// it against idx and the current head commit headCommit (nil for an
// unborn branch), per the four rules in spec.md §4.6.
func Compute(repo *core.Repository, idx *staging.Index, headCommit *objects.Commit) (*Status, error) {
	var headFiles map[string]string
	if headCommit != nil {
		headFiles = headCommit.FileHashes
	}

	diskPaths, err := listWorkingFiles(repo)
	if err != nil {
		return nil, err
	}
	diskSet := make(map[string]bool, len(diskPaths))
	for _, p := range diskPaths {
		diskSet[p] = true
	}

	diskHashes, err := hashWorkingFiles(repo, diskPaths)
	if err != nil {
		return nil, err
	}

	status := &Status{}

	// Untracked: on disk, absent from both index and head commit.
	for _, p := range diskPaths {
		_, inIndex := idx.TrackedFiles[p]
		_, inHead := headFiles[p]
		if !inIndex && !inHead {
			status.Untracked = append(status.Untracked, p)
		}
	}

	// Changes to be committed: staged and (new or differs from head).
	for p, stagedHash := range idx.TrackedFiles {
		headHash, inHead := headFiles[p]
		if !inHead || stagedHash != headHash {
			status.ToBeCommitted = append(status.ToBeCommitted, p)
		}
	}

	// Changes not staged for commit: on disk, staged, but disk content
	// hash differs from the staged hash.
	for p, stagedHash := range idx.TrackedFiles {
		if !diskSet[p] {
			continue
		}
		if diskHashes[p] != stagedHash {
			status.NotStagedForCommit = append(status.NotStagedForCommit, p)
		}
	}

	sort.Strings(status.Untracked)
	sort.Strings(status.ToBeCommitted)
	sort.Strings(status.NotStagedForCommit)
	return status, nil
}

// listWorkingFiles returns every file under repo.Root, excluding
// .minigit, as forward-slash relative paths, sorted.
func listWorkingFiles(repo *core.Repository) ([]string, error) {
	var paths []string
	err := filepath.Walk(repo.Root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if path != repo.Root && info.Name() == core.RepoDirName {
				return filepath.SkipDir
			}
			return nil
		}
		rel, err := filepath.Rel(repo.Root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if rel == core.RepoDirName || strings.HasPrefix(rel, core.RepoDirName+"/") {
			return nil
		}
		paths = append(paths, rel)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)
	return paths, nil
}

// hashWorkingFiles computes the content hash of every path concurrently,
// bounded by a small semaphore — grounded on the teacher's
// cmd/status.go compareStatus, which uses the same
// sync.WaitGroup+channel-semaphore pattern for this exact step.
func hashWorkingFiles(repo *core.Repository, paths []string) (map[string]string, error) {
	hashes := make(map[string]string, len(paths))
	var mu sync.Mutex
	var wg sync.WaitGroup
	sem := make(chan struct{}, 10)
	errs := make(chan error, 1)

	for _, p := range paths {
		wg.Add(1)
		sem <- struct{}{}
		go func(relPath string) {
			defer wg.Done()
			defer func() { <-sem }()

			content, err := os.ReadFile(filepath.Join(repo.Root, filepath.FromSlash(relPath)))
			if err != nil {
				select {
				case errs <- err:
				default:
				}
				return
			}
			hash := core.Hash(content)
			mu.Lock()
			hashes[relPath] = hash
			mu.Unlock()
		}(p)
	}
	wg.Wait()

	select {
	case err := <-errs:
		return nil, err
	default:
	}
	return hashes, nil
}
