package cmd

import (
	"fmt"
	"os"

	"github.com/fmc-dev/fmc/cmd/config"
	"github.com/fmc-dev/fmc/cmd/initCmd"
	"github.com/fmc-dev/fmc/cmd/update"
	"github.com/fmc-dev/fmc/internals/cmdlog"
	"github.com/fmc-dev/fmc/internals/commands"
	"github.com/fmc-dev/fmc/internals/globals"
	"github.com/fmc-dev/fmc/internals/merrors"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Version is the fmc version, set by main
var Version = "dev"

var logger = globals.Logger

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "fmc",
	Short: "Factorio mod scaffolding",
	Long:  "Create Factorio mods and keep their info.json in shape",
	Args:  cobra.ArbitraryArgs,

	Example: `
  fmc new my-mod
  fmc update minor
  fmc update set-version 1.0.0`,

	SilenceErrors: true,
	SilenceUsage:  true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	FParseErrWhitelist: cobra.FParseErrWhitelist{
		UnknownFlags: true,
	},
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			cmd.Help()
			return
		}
		// unknown commands do nothing
		logger.Debug("ignoring unknown command", "command", args[0])
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.Version = Version
	if err := rootCmd.Execute(); err != nil {
		// runners exit on their own, anything left is an argument or flag error
		err = merrors.New(merrors.UsageError, err)
		fmt.Fprintln(os.Stderr, commands.RichError(err))
		os.Exit(merrors.ExitCode(err))
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.AddCommand(initCmd.New())
	rootCmd.AddCommand(initCmd.NewProject())
	rootCmd.AddCommand(update.New())
	rootCmd.AddCommand(config.SubCmd)
}

// initConfig reads the settings file if there is one
func initConfig() {
	config.SetDefaults()

	settingsFile, err := homedir.Expand(config.SettingsFile)
	if err != nil {
		logger.Warn("could not find settings file", "err", err)
		return
	}
	viper.SetConfigFile(settingsFile)
	viper.SetConfigType("toml")

	if _, err := os.Stat(settingsFile); err == nil {
		if err := viper.ReadInConfig(); err != nil {
			logger.Warn("could not read settings", "file", settingsFile, "err", err)
		}
	}

	if viper.GetBool("noColor") {
		cmdlog.DisableColor()
	}
	logger.SetVerbose(viper.GetBool("verboseLogging"))
}
