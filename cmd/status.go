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
	rootCmd.AddCommand(newRepoCommand("status", "Show the working tree status", statusHandler))
}

func statusHandler(repo *core.Repository, args []string) error {
	branch, err := refs.HeadBranch(repo)
	if err != nil {
		return err
	}
	idx, err := staging.Load(repo)
	if err != nil {
		return err
	}
	headCommit, err := currentHeadCommit(repo, branch)
	if err != nil {
		return err
	}
	st, err := worktree.Compute(repo, idx, headCommit)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "On branch %s\n", branch)

	if merge.InProgress(repo) {
		fmt.Fprintln(stdout, "You have unmerged paths. Fix conflicts, stage to mark resolutions then commit.")
	}

	any := false
	if len(st.ToBeCommitted) > 0 {
		any = true
		headerColor := color.New(color.FgGreen)
		headerColor.Fprintln(stdout, "Changes to be committed:")
		for _, f := range st.ToBeCommitted {
			fmt.Fprintf(stdout, "\t%s\n", f)
		}
	}
	if len(st.NotStagedForCommit) > 0 {
		any = true
		headerColor := color.New(color.FgRed)
		headerColor.Fprintln(stdout, "Changes not staged for commit:")
		for _, f := range st.NotStagedForCommit {
			fmt.Fprintf(stdout, "\t%s\n", f)
		}
	}
	if len(st.Untracked) > 0 {
		any = true
		headerColor := color.New(color.FgRed)
		headerColor.Fprintln(stdout, "Untracked files:")
		for _, f := range st.Untracked {
			fmt.Fprintf(stdout, "\t%s\n", f)
		}
	}
	if !any {
		fmt.Fprintln(stdout, "Nothing to commit, working tree clean.")
	}
	return nil
}

// currentHeadCommit resolves the commit at the tip of branch, or nil if
// the branch is unborn (spec.md §3: "an unborn branch has no ref file").
func currentHeadCommit(repo *core.Repository, branch string) (*objects.Commit, error) {
	id, err := refs.Read(repo, branch)
	if err != nil {
		return nil, err
	}
	if id == "" {
		return nil, nil
	}
	return objects.GetCommit(repo, id)
}
