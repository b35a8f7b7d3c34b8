package commands

import (
	"fmt"
	"os"

	"github.com/fmc-dev/fmc/internals/merrors"
	"github.com/spf13/cobra"
)

type Command struct {
	*cobra.Command
	runner Runner
}

type Runner interface {
	RunE(cmd *cobra.Command, args []string) error
}

// New wires run into cmd. Errors returned by run are printed to stderr
// and end the process with the exit code of their kind
func New(cmd *cobra.Command, run Runner) *Command {
	build := &Command{
		cmd,
		run,
	}
	build.Command.Run = func(cmd *cobra.Command, args []string) {
		err := run.RunE(cmd, args)
		if err != nil {
			fmt.Fprintln(os.Stderr, RichError(err))
			os.Exit(merrors.ExitCode(err))
		}
	}

	return build
}
