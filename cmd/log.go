package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/minigit/minigit/internal/core"
	"github.com/minigit/minigit/internal/objects"
	"github.com/minigit/minigit/internal/refs"
	"github.com/spf13/cobra"
)

var logOneline bool

func init() {
	logCmd := &cobra.Command{
		Use:   "log",
		Short: "Show commit logs",
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := core.Find()
			if err != nil {
				return err
			}
			if err := repo.MustBeInitialized(); err != nil {
				return err
			}
			return logHandler(repo, args)
		},
	}
	logCmd.Flags().BoolVar(&logOneline, "oneline", false, "Print one line per commit")
	rootCmd.AddCommand(logCmd)
}

// logHandler walks commits from the current branch head via
// parent_1_id to the root, printing newest first, per spec.md §4.8.
// Merge commits are not descended into via parent_2_id (spec.md §9:
// "follow parent_1_id only").
func logHandler(repo *core.Repository, args []string) error {
	branch, err := refs.HeadBranch(repo)
	if err != nil {
		return err
	}
	id, err := refs.Read(repo, branch)
	if err != nil {
		return err
	}

	yellow := color.New(color.FgYellow)
	for id != "" {
		c, err := objects.GetCommit(repo, id)
		if err != nil {
			return err
		}

		if logOneline {
			fmt.Fprintf(stdout, "%s %s\n", shortID(c.ID), c.Message)
		} else {
			fmt.Fprintf(stdout, "%s\n\n", c.Message)
			yellow.Fprintf(stdout, "commit %s\n", c.ID)
			fmt.Fprintf(stdout, "Author: %s\n", c.Author)
			fmt.Fprintf(stdout, "Date: %s\n\n", c.Date)
		}

		id = c.Parent1ID
	}
	return nil
}

func shortID(id string) string {
	if len(id) > 7 {
		return id[:7]
	}
	return id
}
