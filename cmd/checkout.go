package cmd

import (
	"fmt"

	"github.com/minigit/minigit/internal/core"
	"github.com/minigit/minigit/internal/objects"
	"github.com/minigit/minigit/internal/refs"
	"github.com/minigit/minigit/internal/staging"
	"github.com/minigit/minigit/internal/worktree"
)

func init() {
	rootCmd.AddCommand(newRepoCommand("checkout <branch>", "Switch to another branch", checkoutHandler))
}

func checkoutHandler(repo *core.Repository, args []string) error {
	if len(args) != 1 {
		return &core.UsageError{Usage: "Usage: minigit checkout <branch name>"}
	}
	target := args[0]

	if !refs.Exists(repo, target) {
		return &core.NoSuchBranchError{Name: target, Verb: "checkout"}
	}

	if _, err := requireClean(repo, core.DirtyCheckout); err != nil {
		return err
	}

	sourceBranch, err := refs.HeadBranch(repo)
	if err != nil {
		return err
	}
	sourceHeadID, err := refs.Read(repo, sourceBranch)
	if err != nil {
		return err
	}
	targetHeadID, err := refs.Read(repo, target)
	if err != nil {
		return err
	}

	var sourceFiles, targetFiles map[string]string
	if sourceHeadID != "" {
		c, err := objects.GetCommit(repo, sourceHeadID)
		if err != nil {
			return err
		}
		sourceFiles = c.FileHashes
	}
	var targetCommit *objects.Commit
	if targetHeadID != "" {
		targetCommit, err = objects.GetCommit(repo, targetHeadID)
		if err != nil {
			return err
		}
		targetFiles = targetCommit.FileHashes
	}

	if err := worktree.Materialize(repo, sourceFiles, targetFiles); err != nil {
		return err
	}

	idx, err := staging.Load(repo)
	if err != nil {
		return err
	}
	idx.Replace(targetFiles)
	if err := idx.Save(); err != nil {
		return err
	}

	if err := refs.SetHeadBranch(repo, target); err != nil {
		return err
	}

	entry := refs.Entry{
		OldCommitID: sourceHeadID,
		NewCommitID: targetHeadID,
		Message:     fmt.Sprintf("Switched to branch %s", target),
	}
	if err := refs.AppendLog(refs.HeadLogPath(repo), entry); err != nil {
		return err
	}

	return nil
}
