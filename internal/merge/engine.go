package merge

import (
	"fmt"
	"sort"

	"github.com/minigit/minigit/internal/core"
	"github.com/minigit/minigit/internal/objects"
)

// Result is the outcome of a three-way (or two-way, when base is nil)
// merge over a set of paths, per spec.md §4.11.
type Result struct {
	// Merged holds the winning hash for every path that merged without
	// conflict. A path deleted by the merge (both sides agree it's gone)
	// is simply absent from this map.
	Merged map[string]string
	// Conflicts holds, for every conflicting path, the conflict-marker
	// content to write to the working tree.
	Conflicts map[string][]byte
}

// HasConflicts reports whether any path conflicted.
func (r *Result) HasConflicts() bool { return len(r.Conflicts) > 0 }

// ConflictPaths returns the conflicting paths, sorted.
func (r *Result) ConflictPaths() []string {
	paths := make([]string, 0, len(r.Conflicts))
	for p := range r.Conflicts {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// ThreeWay merges theirs into ours against base, applying the three
// rules of spec.md §4.11 to the union of paths across all three sides.
// base may be nil, which models the two-way merge case (no common
// ancestor): every rule below degenerates correctly when b is always ""
// in that case.
func ThreeWay(repo *core.Repository, base, ours, theirs map[string]string) (*Result, error) {
	paths := map[string]bool{}
	for p := range base {
		paths[p] = true
	}
	for p := range ours {
		paths[p] = true
	}
	for p := range theirs {
		paths[p] = true
	}

	result := &Result{
		Merged:    map[string]string{},
		Conflicts: map[string][]byte{},
	}

	for path := range paths {
		b := base[path]
		c := ours[path]
		o := theirs[path]

		switch {
		case c == o:
			// Both sides agree (including both having deleted it).
			if c != "" {
				result.Merged[path] = c
			}
		case b == c && b != o:
			// Only theirs changed it: take the incoming change.
			if o != "" {
				result.Merged[path] = o
			}
		case b == o && b != c:
			// Only ours changed it: keep the local change.
			if c != "" {
				result.Merged[path] = c
			}
		default:
			marker, err := conflictMarker(repo, c, o)
			if err != nil {
				return nil, err
			}
			result.Conflicts[path] = marker
		}
	}

	return result, nil
}

// conflictMarker builds the fixed literal conflict block spec.md §4.11
// pins byte-exact: "<<<<<<< HEAD\n<ours>\n=======\n<theirs>\n>>>>>>> MERGE\n".
// Missing sides contribute empty text.
func conflictMarker(repo *core.Repository, oursHash, theirsHash string) ([]byte, error) {
	oursContent, err := blobOrEmpty(repo, oursHash)
	if err != nil {
		return nil, err
	}
	theirsContent, err := blobOrEmpty(repo, theirsHash)
	if err != nil {
		return nil, err
	}
	return []byte(fmt.Sprintf("<<<<<<< HEAD\n%s\n=======\n%s\n>>>>>>> MERGE\n", oursContent, theirsContent)), nil
}

func blobOrEmpty(repo *core.Repository, hash string) ([]byte, error) {
	if hash == "" {
		return nil, nil
	}
	return objects.GetBlob(repo, hash)
}
