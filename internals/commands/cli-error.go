package commands

import (
	"errors"

	"github.com/fmc-dev/fmc/internals/merrors"
)

// RichError renders err for the terminal, including help text of a merrors.CliError
func RichError(err error) string {
	var cliErr *merrors.CliError
	if errors.As(err, &cliErr) {
		return ErrorBox(err.Error(), cliErr.Help)
	}
	return ErrorBox(err.Error(), "")
}
