// Package refs implements RefStore (named branch pointers plus the
// symbolic HEAD) and Reflog (the append-only per-ref journal).
package refs

import (
	"os"
	"sort"
	"strings"

	"github.com/minigit/minigit/internal/core"
)

// ListBranches returns every branch name under refs/heads, lexicographically.
func ListBranches(repo *core.Repository) ([]string, error) {
	entries, err := os.ReadDir(repo.Path("refs", "heads"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// Read returns the commit id a branch points to, or "" if the branch
// has no ref file yet (an unborn branch, per spec.md §3).
func Read(repo *core.Repository, name string) (string, error) {
	path := repo.Path("refs", "heads", name)
	if !core.FileExists(path) {
		return "", nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// Write sets a branch's pointer, creating the ref file if needed.
func Write(repo *core.Repository, name, commitID string) error {
	if err := core.EnsureDirExists(repo.Path("refs", "heads")); err != nil {
		return err
	}
	return os.WriteFile(repo.Path("refs", "heads", name), []byte(commitID), 0644)
}

// Exists reports whether a branch has a ref file on disk.
func Exists(repo *core.Repository, name string) bool {
	return core.FileExists(repo.Path("refs", "heads", name))
}

// HeadBranch returns the branch name HEAD currently points to.
func HeadBranch(repo *core.Repository) (string, error) {
	data, err := os.ReadFile(repo.Path("HEAD"))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// SetHeadBranch rewrites HEAD to name. It does not touch the working
// tree or index; callers combine this with checkout's tree/index
// restoration, per spec.md §4.3.
func SetHeadBranch(repo *core.Repository, name string) error {
	return os.WriteFile(repo.Path("HEAD"), []byte(name), 0644)
}
