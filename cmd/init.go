package cmd

import (
	"fmt"

	"github.com/minigit/minigit/internal/core"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new, empty MiniGit repository",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, err := core.Find()
		if err != nil {
			return err
		}
		if err := repo.Init(); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Initialized empty MiniGit repository in %s\n", repo.Dir)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
