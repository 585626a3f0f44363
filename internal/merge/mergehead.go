package merge

import (
	"encoding/json"
	"os"

	"github.com/minigit/minigit/internal/core"
)

// Head records the state of an in-progress conflicted merge, written to
// .minigit/MERGE_HEAD per spec.md §4.11 and §6. Its presence is also
// the sentinel status.go polls to print the unmerged-paths banner
// (spec.md §4.6).
type Head struct {
	OtherCommitID string `json:"other_commit_id"`
	SourceBranch  string `json:"source_branch"`
}

func headPath(repo *core.Repository) string { return repo.Path("MERGE_HEAD") }

// InProgress reports whether a conflicted merge is awaiting resolution.
func InProgress(repo *core.Repository) bool {
	return core.FileExists(headPath(repo))
}

// WriteHead records a conflicted merge's state.
func WriteHead(repo *core.Repository, h Head) error {
	data, err := json.MarshalIndent(h, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(headPath(repo), data, 0644)
}

// ReadHead loads the in-progress merge's state.
func ReadHead(repo *core.Repository) (Head, error) {
	var h Head
	data, err := os.ReadFile(headPath(repo))
	if err != nil {
		return h, err
	}
	err = json.Unmarshal(data, &h)
	return h, err
}

// ClearHead removes the MERGE_HEAD sentinel after a successful commit.
func ClearHead(repo *core.Repository) error {
	err := os.Remove(headPath(repo))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
