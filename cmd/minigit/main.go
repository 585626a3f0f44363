// Command minigit is the CLI entry point. It does no work itself beyond
// dispatching to the cmd package, per spec.md §1's "thin dispatcher"
// scope note.
package main

import "github.com/minigit/minigit/cmd"

func main() {
	cmd.Execute()
}
