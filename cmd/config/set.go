package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fmc-dev/fmc/internals/author"
	"github.com/fmc-dev/fmc/internals/commands"
	"github.com/fmc-dev/fmc/internals/merrors"
	"github.com/jwalton/gchalk"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	cmd := commands.New(&cobra.Command{
		Use:   "set <key> <value>",
		Short: "Sets a global config value",
		Args:  cobra.ExactArgs(2),
	}, &setRunner{})

	SubCmd.AddCommand(cmd.Command)
}

type setRunner struct{}

func (i *setRunner) RunE(cmd *cobra.Command, args []string) error {
	key, entry, err := lookup(args[0])
	if err != nil {
		return err
	}
	value := args[1]

	if key == authorKey {
		previous, err := author.NewSource(viper.GetString("authorFile")).Author()
		if err != nil {
			previous = ""
		}
		if err := author.Write(viper.GetString("authorFile"), value); err != nil {
			return err
		}
		printChange(cmd, key, previous, value)
		return nil
	}

	var newValue interface{}
	switch entry.kind {
	case configKindBool:
		val, err := parseBool(value)
		if err != nil {
			return merrors.New(merrors.UsageError, err)
		}
		newValue = val
	case configKindString:
		newValue = value
	default:
		return fmt.Errorf("what? uncovered config values type")
	}

	previousValue := viper.Get(key)
	viper.Set(key, newValue)

	path, err := settingsPath()
	if err != nil {
		return merrors.New(merrors.IoFailure, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return merrors.New(merrors.IoFailure, errors.Wrap(err, "could not create config directory"))
	}
	if err := viper.WriteConfigAs(path); err != nil {
		return merrors.New(merrors.IoFailure, errors.Wrap(err, "could not write settings"))
	}

	printChange(cmd, key, previousValue, newValue)
	return nil
}

func printChange(cmd *cobra.Command, key string, previous interface{}, next interface{}) {
	previousString := fmt.Sprintf("%v", previous)
	if previous == nil || previous == "" {
		previousString = "(unset)"
	}
	fmt.Fprintf(
		cmd.OutOrStdout(),
		"Changing config entry:\n  %s: %s → %v\n",
		key,
		gchalk.Strikethrough(previousString),
		gchalk.Bold(fmt.Sprintf("%v", next)),
	)
}

func parseBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "true", "yes", "ja", "on", "1":
		return true, nil
	case "false", "no", "nein", "off", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean value. Use \"true\" or \"false\"")
	}
}
