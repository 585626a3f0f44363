package cmd

import (
	"github.com/minigit/minigit/internal/core"
	"github.com/minigit/minigit/internal/refs"
	"github.com/minigit/minigit/internal/staging"
	"github.com/minigit/minigit/internal/worktree"
)

// requireClean enforces the interlock spec.md §4.9–§4.11 requires before
// checkout, revert and merge: no staged and no unstaged changes.
func requireClean(repo *core.Repository, ctx core.DirtyContext) (*staging.Index, error) {
	branch, err := refs.HeadBranch(repo)
	if err != nil {
		return nil, err
	}
	idx, err := staging.Load(repo)
	if err != nil {
		return nil, err
	}
	headCommit, err := currentHeadCommit(repo, branch)
	if err != nil {
		return nil, err
	}
	st, err := worktree.Compute(repo, idx, headCommit)
	if err != nil {
		return nil, err
	}
	if !st.Clean() {
		return nil, &core.DirtyWorkingTreeError{
			Context:            ctx,
			ToBeCommitted:      st.ToBeCommitted,
			NotStagedForCommit: st.NotStagedForCommit,
		}
	}
	return idx, nil
}
