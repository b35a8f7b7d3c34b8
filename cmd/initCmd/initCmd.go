package initCmd

import (
	"github.com/fmc-dev/fmc/internals/author"
	"github.com/fmc-dev/fmc/internals/commands"
	"github.com/fmc-dev/fmc/internals/globals"
	"github.com/fmc-dev/fmc/internals/moddir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var logger = globals.Logger

// authorSource provides the author of new mods
type authorSource interface {
	Author() (string, error)
}

func New() *cobra.Command {
	cmd := commands.New(&cobra.Command{
		Use:   "init",
		Short: "Creates a new Factorio mod in the current directory",
		Long:  "Creates info.json and data.lua in the current directory. An existing info.json is never overwritten",
		Args:  cobra.ArbitraryArgs,
	}, &initRunner{})

	return cmd.Command
}

type initRunner struct{}

func (i *initRunner) RunE(cmd *cobra.Command, args []string) error {
	dir, err := moddir.NewFromWd()
	if err != nil {
		return err
	}
	return initialize(dir, newAuthorSource())
}

func newAuthorSource() authorSource {
	return author.NewSource(viper.GetString("authorFile"))
}

// initialize writes the template manifest and data.lua into dir.
// Nothing happens if dir already has a manifest
func initialize(dir *moddir.ModDir, authors authorSource) error {
	exists, err := dir.HasManifest()
	if err != nil {
		return err
	}
	if exists {
		logger.Info(moddir.ManifestFile + " already exists, leaving it alone")
		return nil
	}

	modAuthor, err := authors.Author()
	if err != nil {
		return err
	}

	created, err := dir.CreateManifest(defaultManifest(dir.Name(), modAuthor))
	if err != nil {
		return err
	}
	if !created {
		// someone else was faster
		logger.Info(moddir.ManifestFile + " already exists, leaving it alone")
		return nil
	}
	logger.Success("Created " + moddir.ManifestFile)

	return dir.CreateData()
}
