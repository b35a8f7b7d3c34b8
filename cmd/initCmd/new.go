package initCmd

import (
	"os"

	"github.com/fmc-dev/fmc/internals/commands"
	"github.com/fmc-dev/fmc/internals/merrors"
	"github.com/fmc-dev/fmc/internals/moddir"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// NewProject returns the "new" command
func NewProject() *cobra.Command {
	cmd := commands.New(&cobra.Command{
		Use:   "new <name>",
		Short: "Creates a directory with a new Factorio mod in it",
		Args:  cobra.MinimumNArgs(1),
	}, &newRunner{})

	return cmd.Command
}

type newRunner struct{}

func (n *newRunner) RunE(cmd *cobra.Command, args []string) error {
	name := args[0]

	if err := os.Mkdir(name, 0755); err != nil {
		return merrors.New(merrors.IoFailure, errors.Wrapf(err, "could not create directory %s", name))
	}
	if err := os.Chdir(name); err != nil {
		return merrors.New(merrors.IoFailure, errors.Wrapf(err, "could not enter directory %s", name))
	}

	dir, err := moddir.NewFromWd()
	if err != nil {
		return err
	}
	return initialize(dir, newAuthorSource())
}
