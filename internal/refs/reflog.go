package refs

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/minigit/minigit/internal/core"
)

// Entry is one reflog record, per spec.md §3. OtherCommitID and Merge
// are only set for merge commits (spec.md §4.11).
type Entry struct {
	OldCommitID   string `json:"old_commit_id"`
	NewCommitID   string `json:"new_commit_id"`
	Message       string `json:"message"`
	Merge         bool   `json:"merge,omitempty"`
	OtherCommitID string `json:"other_commit_id,omitempty"`
}

type logFile struct {
	Log []Entry `json:"log"`
}

// HeadLogPath and BranchLogPath return the on-disk location of the two
// kinds of reflog spec.md §6 names.
func HeadLogPath(repo *core.Repository) string { return repo.Path("logs", "HEAD") }
func BranchLogPath(repo *core.Repository, branch string) string {
	return repo.Path("logs", "refs", "heads", branch)
}

// ReadLog returns the ordered entries at path, or an empty slice if the
// file does not exist yet.
func ReadLog(path string) ([]Entry, error) {
	if !core.FileExists(path) {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var lf logFile
	if err := json.Unmarshal(data, &lf); err != nil {
		return nil, err
	}
	return lf.Log, nil
}

// AppendLog appends one entry to the reflog at path, creating it (and
// its parent directory) if necessary.
func AppendLog(path string, entry Entry) error {
	entries, err := ReadLog(path)
	if err != nil {
		return err
	}
	entries = append(entries, entry)

	if err := core.EnsureDirExists(filepath.Dir(path)); err != nil {
		return err
	}
	data, err := json.MarshalIndent(logFile{Log: entries}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
