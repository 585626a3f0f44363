package cmd

import (
	"errors"

	"github.com/minigit/minigit/internal/core"
)

// asHandledMessage recognizes every user-facing error kind spec.md §7
// lists and returns its contractual message. CorruptObject and plain
// I/O errors are not handled here — Execute lets those fall through to
// stderr with a nonzero exit, since spec.md §7 calls those fatal.
func asHandledMessage(err error) (string, bool) {
	var usage *core.UsageError
	if errors.As(err, &usage) {
		return usage.Usage, true
	}
	var notInit *core.NotInitializedError
	if errors.As(err, &notInit) {
		return notInit.Error(), true
	}
	var alreadyInit *core.AlreadyInitializedError
	if errors.As(err, &alreadyInit) {
		return alreadyInit.Error(), true
	}
	var noMatch *core.NoMatchingFileError
	if errors.As(err, &noMatch) {
		return noMatch.Error(), true
	}
	var nothing *core.NothingToCommitError
	if errors.As(err, &nothing) {
		return nothing.Error(), true
	}
	var noCommits *core.NoCommitsOnBranchError
	if errors.As(err, &noCommits) {
		return noCommits.Error(), true
	}
	var noBranch *core.NoSuchBranchError
	if errors.As(err, &noBranch) {
		return noBranch.Error(), true
	}
	var unborn *core.UnbornBranchError
	if errors.As(err, &unborn) {
		return unborn.Error(), true
	}
	var dirty *core.DirtyWorkingTreeError
	if errors.As(err, &dirty) {
		return dirty.Error(), true
	}
	var invalidCommit *core.InvalidCommitForBranchError
	if errors.As(err, &invalidCommit) {
		return invalidCommit.Error(), true
	}
	return "", false
}
