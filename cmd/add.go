package cmd

import (
	"fmt"

	"github.com/minigit/minigit/internal/core"
	"github.com/minigit/minigit/internal/staging"
)

func init() {
	rootCmd.AddCommand(newRepoCommand("add <file1> <file2> <file3>", "Add file contents to the index", addHandler))
}

func addHandler(repo *core.Repository, args []string) error {
	if len(args) < 1 {
		return &core.UsageError{Usage: "Usage: minigit add <file1> <file2> <file3>"}
	}

	idx, err := staging.Load(repo)
	if err != nil {
		return err
	}

	for _, path := range args {
		if err := idx.Stage(path); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Added %s\n", path)
	}

	return idx.Save()
}
