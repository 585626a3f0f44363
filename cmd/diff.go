package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/minigit/minigit/internal/core"
	"github.com/minigit/minigit/internal/objects"
	"github.com/minigit/minigit/internal/refs"
	"github.com/minigit/minigit/internal/staging"
	"github.com/sergi/go-diff/diffmatchpatch"
)

func init() {
	rootCmd.AddCommand(newRepoCommand("diff [file...]", "Show line-level changes against the index and HEAD", diffHandler))
}

// diffHandler is a supplemental, read-only command (SPEC_FULL.md §5):
// it renders a line diff of the staged-vs-HEAD and worktree-vs-staged
// state of each path, unlike MergeEngine which always compares whole
// blobs. It never touches persisted state.
func diffHandler(repo *core.Repository, args []string) error {
	branch, err := refs.HeadBranch(repo)
	if err != nil {
		return err
	}
	headCommit, err := currentHeadCommit(repo, branch)
	if err != nil {
		return err
	}
	idx, err := staging.Load(repo)
	if err != nil {
		return err
	}

	paths := args
	if len(paths) == 0 {
		paths = idx.Paths()
	}

	dmp := diffmatchpatch.New()
	for _, path := range paths {
		var headContent []byte
		if headCommit != nil {
			if hash, ok := headCommit.FileHashes[path]; ok {
				headContent, err = objects.GetBlob(repo, hash)
				if err != nil {
					return err
				}
			}
		}
		var stagedContent []byte
		if hash := idx.HashOf(path); hash != "" {
			stagedContent, err = objects.GetBlob(repo, hash)
			if err != nil {
				return err
			}
		}
		workingContent, _ := os.ReadFile(filepath.Join(repo.Root, filepath.FromSlash(path)))

		printDiff(dmp, "diff --staged "+path, headContent, stagedContent)
		printDiff(dmp, "diff --worktree "+path, stagedContent, workingContent)
	}
	return nil
}

func printDiff(dmp *diffmatchpatch.DiffMatchPatch, header string, a, b []byte) {
	chars1, chars2, lines := dmp.DiffLinesToChars(string(a), string(b))
	diffs := dmp.DiffMain(chars1, chars2, false)
	diffs = dmp.DiffCleanupSemantic(diffs)
	diffs = dmp.DiffCharsToLines(diffs, lines)

	hasChange := false
	for _, d := range diffs {
		if d.Type != diffmatchpatch.DiffEqual {
			hasChange = true
			break
		}
	}
	if !hasChange {
		return
	}

	fmt.Fprintln(stdout, header)
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			for _, line := range strings.Split(strings.TrimSuffix(d.Text, "\n"), "\n") {
				color.New(color.FgGreen).Fprintf(stdout, "+%s\n", line)
			}
		case diffmatchpatch.DiffDelete:
			for _, line := range strings.Split(strings.TrimSuffix(d.Text, "\n"), "\n") {
				color.New(color.FgRed).Fprintf(stdout, "-%s\n", line)
			}
		}
	}
}
