// Package merge implements MergeEngine: merge-base discovery,
// fast-forward detection and two-/three-way textual merge with
// conflict marker emission, per spec.md §4.11.
package merge

import (
	"github.com/minigit/minigit/internal/core"
	"github.com/minigit/minigit/internal/objects"
)

// FindMergeBase returns the lowest common ancestor of c and o, found by
// collecting o's full ancestor set and then walking c's ancestry
// breadth-first, returning the first commit seen in both — the exact
// algorithm spec.md §9 prescribes ("BFS over parents from both sides...
// pick the first node seen from both, tie-break by shallower depth from
// the current side"), grounded on the teacher's internal/merge.findMergeBase.
// Returns "" with no error if the two histories share no ancestor (a
// genuine two-way merge, per spec.md §4.11).
func FindMergeBase(repo *core.Repository, c, o string) (string, error) {
	if c == o {
		return c, nil
	}

	ancestorsOfO := map[string]bool{}
	queue := []string{o}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		if id == "" || ancestorsOfO[id] {
			continue
		}
		ancestorsOfO[id] = true
		commit, err := objects.GetCommit(repo, id)
		if err != nil {
			return "", err
		}
		queue = append(queue, parentsOf(commit)...)
	}

	visited := map[string]bool{}
	queue = []string{c}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		if id == "" || visited[id] {
			continue
		}
		if ancestorsOfO[id] {
			return id, nil
		}
		visited[id] = true
		commit, err := objects.GetCommit(repo, id)
		if err != nil {
			return "", err
		}
		queue = append(queue, parentsOf(commit)...)
	}

	return "", nil
}

// IsAncestor reports whether target is reachable from start by walking
// parent_1_id/parent_2_id, used by revert to validate its argument
// (spec.md §4.10). Merge classifies fast-forwards with FindMergeBase.
func IsAncestor(repo *core.Repository, start, target string) (bool, error) {
	visited := map[string]bool{}
	queue := []string{start}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		if id == "" || visited[id] {
			continue
		}
		if id == target {
			return true, nil
		}
		visited[id] = true
		commit, err := objects.GetCommit(repo, id)
		if err != nil {
			return false, err
		}
		queue = append(queue, parentsOf(commit)...)
	}
	return false, nil
}

func parentsOf(c *objects.Commit) []string {
	parents := []string{c.Parent1ID}
	if c.Parent2ID != "" {
		parents = append(parents, c.Parent2ID)
	}
	return parents
}
