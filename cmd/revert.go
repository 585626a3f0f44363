package cmd

import (
	"fmt"

	"github.com/minigit/minigit/internal/core"
	"github.com/minigit/minigit/internal/merge"
	"github.com/minigit/minigit/internal/objects"
	"github.com/minigit/minigit/internal/refs"
	"github.com/minigit/minigit/internal/staging"
	"github.com/minigit/minigit/internal/worktree"
)

func init() {
	rootCmd.AddCommand(newRepoCommand("revert <commit id>", "Revert the working tree to a prior commit", revertHandler))
}

// revertHandler implements spec.md §4.10: materialize the target
// commit, replace the index, then record the reversion as a brand new
// commit (not the target's own id) so history only ever grows forward.
func revertHandler(repo *core.Repository, args []string) error {
	if len(args) != 1 {
		return &core.UsageError{Usage: "Usage: minigit revert <commit_id>"}
	}
	targetID := args[0]

	idx, err := requireClean(repo, core.DirtyRevert)
	if err != nil {
		return err
	}

	branch, err := refs.HeadBranch(repo)
	if err != nil {
		return err
	}
	headID, err := refs.Read(repo, branch)
	if err != nil {
		return err
	}

	reachable, err := merge.IsAncestor(repo, headID, targetID)
	if err != nil || !reachable {
		return &core.InvalidCommitForBranchError{}
	}

	targetCommit, err := objects.GetCommit(repo, targetID)
	if err != nil {
		return err
	}

	var headFiles map[string]string
	if headID != "" {
		headCommit, err := objects.GetCommit(repo, headID)
		if err != nil {
			return err
		}
		headFiles = headCommit.FileHashes
	}

	if err := worktree.Materialize(repo, headFiles, targetCommit.FileHashes); err != nil {
		return err
	}
	idx.Replace(targetCommit.FileHashes)
	if err := idx.Save(); err != nil {
		return err
	}

	newCommit := &objects.Commit{
		Message:    fmt.Sprintf("Reverting to %s", targetID),
		Author:     repo.Author(),
		Date:       core.Date(),
		Parent1ID:  headID,
		FileHashes: targetCommit.FileHashes,
	}
	newID, err := objects.PutCommit(repo, newCommit)
	if err != nil {
		return err
	}

	if err := refs.Write(repo, branch, newID); err != nil {
		return err
	}

	entry := refs.Entry{OldCommitID: headID, NewCommitID: newID, Message: newCommit.Message}
	if err := refs.AppendLog(refs.HeadLogPath(repo), entry); err != nil {
		return err
	}
	if err := refs.AppendLog(refs.BranchLogPath(repo, branch), entry); err != nil {
		return err
	}

	return nil
}
