// Command rootfind locates zeros of scalar functions from the command
// line, one subcommand per iterative method plus a YAML batch runner.
package main

import (
	"fmt"
	"os"

	"github.com/cunkin375/rootfind/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "rootfind:", err)
		os.Exit(cli.ExitCode(err))
	}
}
