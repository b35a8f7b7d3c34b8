package update

import (
	"github.com/fmc-dev/fmc/internals/commands"
	"github.com/fmc-dev/fmc/internals/globals"
	"github.com/fmc-dev/fmc/internals/merrors"
	"github.com/fmc-dev/fmc/internals/moddir"
	"github.com/fmc-dev/fmc/internals/utils"
	"github.com/fmc-dev/fmc/pkg/manifest"
	"github.com/spf13/cobra"
)

var logger = globals.Logger

func New() *cobra.Command {
	cmd := commands.New(&cobra.Command{
		Use:   "update [minor|middle|major|set-version <version>]",
		Short: "Rewrites info.json, optionally changing the version",
		Long: `Validates and rewrites info.json in the current directory.

  minor                  increments the third version component
  middle                 increments the second version component
  major                  increments the first version component
  set-version <version>  replaces the version (at most three components are kept)

Other components are never reset.`,
		Example: `
  fmc update
  fmc update minor
  fmc update set-version 1.0.0`,
		Args: cobra.ArbitraryArgs,
	}, &updateRunner{})

	return cmd.Command
}

// ParseMutation turns the update arguments into a mutation.
// Unknown words mean a plain rewrite, everything after the mutation is ignored
func ParseMutation(args []string) (manifest.Mutation, error) {
	if len(args) == 0 {
		return manifest.Mutation{Op: manifest.Normalize}, nil
	}

	switch args[0] {
	case "minor":
		return manifest.Mutation{Op: manifest.BumpMinor}, nil
	case "middle":
		return manifest.Mutation{Op: manifest.BumpMiddle}, nil
	case "major":
		return manifest.Mutation{Op: manifest.BumpMajor}, nil
	case "set-version":
		if len(args) < 2 {
			return manifest.Mutation{}, merrors.Newf(merrors.UsageError, "set-version needs a version").
				WithHelp("Use \"fmc update set-version 1.2.3\"")
		}
		mu := manifest.NewSetVersion(args[1])
		if len(mu.Version) == 0 {
			return manifest.Mutation{}, merrors.Newf(merrors.UsageError, "%q is not a version", args[1]).
				WithHelp("Versions are numbers separated by dots, like 1.2.3")
		}
		return mu, nil
	default:
		logger.Warn("unknown update mode, only rewriting "+moddir.ManifestFile, "mode", args[0])
		return manifest.Mutation{Op: manifest.Normalize}, nil
	}
}

type updateRunner struct{}

func (u *updateRunner) RunE(cmd *cobra.Command, args []string) error {
	mu, err := ParseMutation(args)
	if err != nil {
		return err
	}

	dir, err := moddir.NewFromWd()
	if err != nil {
		return err
	}

	result, err := dir.Update(mu)
	if result != nil {
		for _, problem := range result.Warnings {
			logger.Warn(problem.Error())
		}
	}
	if err != nil {
		return err
	}

	if result.HasVersion {
		logger.Info("version " + utils.PrettyVersionChange(result.Before, result.After))
	}
	logger.Success("Updated " + moddir.ManifestFile)
	return nil
}
