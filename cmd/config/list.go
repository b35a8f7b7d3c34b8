package config

import (
	"fmt"

	"github.com/fmc-dev/fmc/internals/commands"
	"github.com/pelletier/go-toml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	cmd := commands.New(&cobra.Command{
		Use:   "list",
		Short: "Lists all global config values",
		Args:  cobra.NoArgs,
	}, &listRunner{})

	SubCmd.AddCommand(cmd.Command)
}

type listRunner struct{}

func (i *listRunner) RunE(cmd *cobra.Command, args []string) error {
	tree, err := toml.TreeFromMap(viper.AllSettings())
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), tree.String())
	return nil
}
