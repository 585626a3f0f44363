package cmd

import (
	"fmt"

	"github.com/minigit/minigit/internal/core"
	"github.com/minigit/minigit/internal/objects"
	"github.com/minigit/minigit/internal/refs"
)

func init() {
	rootCmd.AddCommand(newRepoCommand("branch [branch name]", "List or create branches", branchHandler))
}

func branchHandler(repo *core.Repository, args []string) error {
	if len(args) == 0 {
		return listBranches(repo)
	}
	if len(args) > 1 {
		return &core.UsageError{Usage: "Usage: minigit branch <branch name> OR minigit branch"}
	}
	return createBranch(repo, args[0])
}

func listBranches(repo *core.Repository) error {
	names, err := refs.ListBranches(repo)
	if err != nil {
		return err
	}
	for _, name := range names {
		fmt.Fprintln(stdout, name)
	}
	return nil
}

// createBranch requires the current branch to have at least one commit
// (spec.md §4.9) and initializes the new branch's reflog with the
// current head commit's own message, not a synthetic "created branch"
// string (spec.md §9).
func createBranch(repo *core.Repository, name string) error {
	branch, err := refs.HeadBranch(repo)
	if err != nil {
		return err
	}
	headID, err := refs.Read(repo, branch)
	if err != nil {
		return err
	}
	if headID == "" {
		return &core.NoCommitsOnBranchError{}
	}

	headCommit, err := objects.GetCommit(repo, headID)
	if err != nil {
		return err
	}

	if err := refs.Write(repo, name, headID); err != nil {
		return err
	}

	entry := refs.Entry{OldCommitID: "", NewCommitID: headID, Message: headCommit.Message}
	return refs.AppendLog(refs.BranchLogPath(repo, name), entry)
}
