package cmd

import (
	"github.com/minigit/minigit/internal/core"
	"github.com/spf13/cobra"
)

// HandlerFunc is the signature every verb's implementation follows,
// mirroring the teacher's cmd/factory.go HandlerFunc.
type HandlerFunc func(repo *core.Repository, args []string) error

// newRepoCommand builds a cobra.Command that resolves the repository,
// requires it to be initialized, and dispatches to handler. Handlers
// that need a usage failure return *core.UsageError directly with the
// verb's contractual usage string (spec.md §6).
func newRepoCommand(use, short string, handler HandlerFunc) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := core.Find()
			if err != nil {
				return err
			}
			if err := repo.MustBeInitialized(); err != nil {
				return err
			}
			return handler(repo, args)
		},
	}
}
