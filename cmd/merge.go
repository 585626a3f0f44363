package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/minigit/minigit/internal/core"
	"github.com/minigit/minigit/internal/merge"
	"github.com/minigit/minigit/internal/objects"
	"github.com/minigit/minigit/internal/refs"
	"github.com/minigit/minigit/internal/staging"
	"github.com/minigit/minigit/internal/worktree"
)

func init() {
	rootCmd.AddCommand(newRepoCommand("merge <branch>", "Merge a branch into the current branch", mergeHandler))
}

// mergeHandler implements spec.md §4.11's fast-forward / equal /
// three-way merge decision tree, grounded on the teacher's
// internal/merge.Merge control flow but driven by MiniGit's whole-blob
// comparison rules instead of line-level diffmatchpatch reconciliation.
func mergeHandler(repo *core.Repository, args []string) error {
	if len(args) != 1 {
		return &core.UsageError{Usage: "Usage: minigit merge <branch name>"}
	}
	sourceBranch := args[0]

	if !refs.Exists(repo, sourceBranch) {
		return &core.NoSuchBranchError{Name: sourceBranch, Verb: "merge"}
	}

	idx, err := requireClean(repo, core.DirtyMerge)
	if err != nil {
		return err
	}

	currentBranch, err := refs.HeadBranch(repo)
	if err != nil {
		return err
	}
	currentHeadID, err := refs.Read(repo, currentBranch)
	if err != nil {
		return err
	}
	sourceHeadID, err := refs.Read(repo, sourceBranch)
	if err != nil {
		return err
	}

	if currentHeadID == sourceHeadID {
		fmt.Fprintln(stdout, "Already up to date.")
		return nil
	}

	baseID, err := merge.FindMergeBase(repo, currentHeadID, sourceHeadID)
	if err != nil {
		return err
	}

	if baseID == currentHeadID {
		return fastForward(repo, idx, currentBranch, currentHeadID, sourceBranch, sourceHeadID)
	}
	if baseID == sourceHeadID {
		fmt.Fprintln(stdout, "Already up to date.")
		return nil
	}

	return threeWayMerge(repo, idx, currentBranch, currentHeadID, sourceBranch, sourceHeadID, baseID)
}

func fastForward(repo *core.Repository, idx *staging.Index, currentBranch, currentHeadID, sourceBranch, sourceHeadID string) error {
	sourceCommit, err := objects.GetCommit(repo, sourceHeadID)
	if err != nil {
		return err
	}
	var currentFiles map[string]string
	if currentHeadID != "" {
		currentCommit, err := objects.GetCommit(repo, currentHeadID)
		if err != nil {
			return err
		}
		currentFiles = currentCommit.FileHashes
	}

	if err := worktree.Materialize(repo, currentFiles, sourceCommit.FileHashes); err != nil {
		return err
	}
	idx.Replace(sourceCommit.FileHashes)
	if err := idx.Save(); err != nil {
		return err
	}
	if err := refs.Write(repo, currentBranch, sourceHeadID); err != nil {
		return err
	}

	entry := refs.Entry{OldCommitID: currentHeadID, NewCommitID: sourceHeadID, Message: sourceCommit.Message}
	if err := refs.AppendLog(refs.HeadLogPath(repo), entry); err != nil {
		return err
	}
	if err := refs.AppendLog(refs.BranchLogPath(repo, currentBranch), entry); err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Fast-forward %s to %s\n", currentHeadID, sourceHeadID)
	return nil
}

func threeWayMerge(repo *core.Repository, idx *staging.Index, currentBranch, currentHeadID, sourceBranch, sourceHeadID, baseID string) error {
	var baseFiles map[string]string
	if baseID != "" {
		baseCommit, err := objects.GetCommit(repo, baseID)
		if err != nil {
			return err
		}
		baseFiles = baseCommit.FileHashes
	}
	currentCommit, err := objects.GetCommit(repo, currentHeadID)
	if err != nil {
		return err
	}
	sourceCommit, err := objects.GetCommit(repo, sourceHeadID)
	if err != nil {
		return err
	}

	result, err := merge.ThreeWay(repo, baseFiles, currentCommit.FileHashes, sourceCommit.FileHashes)
	if err != nil {
		return err
	}

	if result.HasConflicts() {
		for _, path := range result.ConflictPaths() {
			if err := worktree.WriteFile(repo, path, result.Conflicts[path]); err != nil {
				return err
			}
		}
		if err := merge.WriteHead(repo, merge.Head{OtherCommitID: sourceHeadID, SourceBranch: sourceBranch}); err != nil {
			return err
		}
		color.New(color.FgRed).Fprintln(stdout, "Automerge failed. Fix conflicts and then commit the result.")
		return nil
	}

	for path, hash := range result.Merged {
		content, err := objects.GetBlob(repo, hash)
		if err != nil {
			return err
		}
		if err := worktree.WriteFile(repo, path, content); err != nil {
			return err
		}
	}
	idx.Replace(result.Merged)
	if err := idx.Save(); err != nil {
		return err
	}

	message := fmt.Sprintf("Merged %s into %s", sourceBranch, currentBranch)
	mergeCommit := &objects.Commit{
		Message:    message,
		Author:     repo.Author(),
		Date:       core.Date(),
		Parent1ID:  currentHeadID,
		Parent2ID:  sourceHeadID,
		FileHashes: result.Merged,
	}
	id, err := objects.PutCommit(repo, mergeCommit)
	if err != nil {
		return err
	}
	if err := refs.Write(repo, currentBranch, id); err != nil {
		return err
	}

	entry := refs.Entry{
		OldCommitID:   currentHeadID,
		NewCommitID:   id,
		Message:       message,
		Merge:         true,
		OtherCommitID: sourceHeadID,
	}
	if err := refs.AppendLog(refs.HeadLogPath(repo), entry); err != nil {
		return err
	}
	if err := refs.AppendLog(refs.BranchLogPath(repo, currentBranch), entry); err != nil {
		return err
	}

	color.New(color.FgGreen).Fprintf(stdout, "Auto-merge succeeded. %s\n", message)
	return nil
}
