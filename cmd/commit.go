package cmd

import (
	"fmt"

	"github.com/minigit/minigit/internal/core"
	"github.com/minigit/minigit/internal/merge"
	"github.com/minigit/minigit/internal/objects"
	"github.com/minigit/minigit/internal/refs"
	"github.com/minigit/minigit/internal/staging"
	"github.com/spf13/cobra"
)

var commitMessage string

func init() {
	commitCmd := &cobra.Command{
		Use:   "commit",
		Short: "Record staged changes as a new commit",
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := core.Find()
			if err != nil {
				return err
			}
			if err := repo.MustBeInitialized(); err != nil {
				return err
			}
			if !cmd.Flags().Changed("message") {
				return &core.UsageError{Usage: `Usage: minigit commit -m "message"`}
			}
			return commitHandler(repo, args)
		},
	}
	commitCmd.Flags().StringVarP(&commitMessage, "message", "m", "", "Commit message")
	rootCmd.AddCommand(commitCmd)
}

func commitHandler(repo *core.Repository, args []string) error {
	branch, err := refs.HeadBranch(repo)
	if err != nil {
		return err
	}
	parentID, err := refs.Read(repo, branch)
	if err != nil {
		return err
	}

	idx, err := staging.Load(repo)
	if err != nil {
		return err
	}

	var parentCommit *objects.Commit
	if parentID != "" {
		parentCommit, err = objects.GetCommit(repo, parentID)
		if err != nil {
			return err
		}
	}

	changed := objects.ChangedPaths(parentCommit, idx.TrackedFiles)
	if len(changed) == 0 {
		return &core.NothingToCommitError{}
	}

	c := &objects.Commit{
		Message:    commitMessage,
		Author:     repo.Author(),
		Date:       core.Date(),
		Parent1ID:  parentID,
		FileHashes: idx.TrackedFiles,
	}

	inMerge := merge.InProgress(repo)
	var mergeHead merge.Head
	if inMerge {
		mergeHead, err = merge.ReadHead(repo)
		if err != nil {
			return err
		}
		c.Parent2ID = mergeHead.OtherCommitID
	}

	id, err := objects.PutCommit(repo, c)
	if err != nil {
		return err
	}

	if err := refs.Write(repo, branch, id); err != nil {
		return err
	}

	entry := refs.Entry{OldCommitID: parentID, NewCommitID: id, Message: commitMessage}
	if inMerge {
		entry.Merge = true
		entry.OtherCommitID = mergeHead.OtherCommitID
	}
	if err := refs.AppendLog(refs.HeadLogPath(repo), entry); err != nil {
		return err
	}
	if err := refs.AppendLog(refs.BranchLogPath(repo, branch), entry); err != nil {
		return err
	}

	if inMerge {
		if err := merge.ClearHead(repo); err != nil {
			return err
		}
	}

	fmt.Fprintln(stdout, "Committed: ")
	for _, path := range changed {
		fmt.Fprintf(stdout, "\t%s\n", path)
	}
	return nil
}
