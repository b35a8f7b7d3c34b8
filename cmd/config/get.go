package config

import (
	"fmt"

	"github.com/fmc-dev/fmc/internals/author"
	"github.com/fmc-dev/fmc/internals/commands"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	cmd := commands.New(&cobra.Command{
		Use:   "get <key>",
		Short: "Gets a global config value",
		Args:  cobra.ExactArgs(1),
	}, &getRunner{})

	SubCmd.AddCommand(cmd.Command)
}

type getRunner struct{}

func (i *getRunner) RunE(cmd *cobra.Command, args []string) error {
	key, _, err := lookup(args[0])
	if err != nil {
		return err
	}

	var value interface{}
	if key == authorKey {
		value, err = author.NewSource(viper.GetString("authorFile")).Author()
		if err != nil {
			return err
		}
	} else {
		value = viper.Get(key)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s: %v\n", key, value)
	return nil
}
