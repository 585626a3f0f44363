package objects

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/minigit/minigit/internal/core"
)

// Commit is the immutable snapshot record spec.md §3 defines. Field
// order matches the on-disk JSON object in spec.md §6 exactly, since
// Go's encoding/json emits struct fields in declaration order and that
// order is what the commit id hashes over (see contentForHash).
type Commit struct {
	ID         string            `json:"id"`
	Message    string            `json:"message"`
	Author     string            `json:"author"`
	Date       string            `json:"date"`
	Parent1ID  string            `json:"parent_1_id"`
	Parent2ID  string            `json:"parent_2_id,omitempty"`
	FileHashes map[string]string `json:"file_hashes"`
}

// contentForHash serializes the record with ID blanked (the "id" key is
// still emitted, as ""), canonicalizing it the way the commit id is
// defined to be computed in spec.md §4.1.
func (c *Commit) contentForHash() ([]byte, error) {
	shadow := *c
	shadow.ID = ""
	return json.Marshal(&shadow)
}

// PutCommit computes c.ID from its canonical content, writes
// objects/commits/<id> and returns the id. Puts are idempotent.
func PutCommit(repo *core.Repository, c *Commit) (string, error) {
	if c.FileHashes == nil {
		c.FileHashes = map[string]string{}
	}
	data, err := c.contentForHash()
	if err != nil {
		return "", fmt.Errorf("failed to serialize commit: %w", err)
	}
	id := core.Hash(data)
	c.ID = id

	path := commitPath(repo, id)
	if core.FileExists(path) {
		return id, nil
	}
	if err := core.EnsureDirExists(filepath.Dir(path)); err != nil {
		return "", err
	}

	full, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to serialize commit: %w", err)
	}
	if err := os.WriteFile(path, full, 0644); err != nil {
		return "", fmt.Errorf("failed to write commit %s: %w", id, err)
	}
	return id, nil
}

// GetCommit reads and verifies a commit record by id. It fails with
// CorruptObject if the stored id disagrees with the recomputed hash,
// per spec.md §4.2.
func GetCommit(repo *core.Repository, id string) (*Commit, error) {
	path := commitPath(repo, id)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &core.CorruptObjectError{Hash: id, Err: err}
	}
	var c Commit
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, &core.CorruptObjectError{Hash: id, Err: err}
	}

	check, err := c.contentForHash()
	if err != nil {
		return nil, &core.CorruptObjectError{Hash: id, Err: err}
	}
	if c.ID != id || core.Hash(check) != id {
		return nil, &core.CorruptObjectError{Hash: id, Err: fmt.Errorf("stored id does not match content hash")}
	}
	return &c, nil
}

// HasCommit reports whether a commit record exists for id.
func HasCommit(repo *core.Repository, id string) bool {
	return core.FileExists(commitPath(repo, id))
}

// ChangedPaths returns, in sorted order, the paths whose hash in to
// differs from (or is absent from) from. A nil from commit means every
// path in to changed, matching spec.md §4.7's "first commit" case.
func ChangedPaths(from *Commit, to map[string]string) []string {
	var changed []string
	var fromMap map[string]string
	if from != nil {
		fromMap = from.FileHashes
	}
	for path, hash := range to {
		if fromMap[path] != hash {
			changed = append(changed, path)
		}
	}
	sort.Strings(changed)
	return changed
}

func commitPath(repo *core.Repository, id string) string {
	return repo.Path("objects", "commits", id)
}
