package config

import (
	"sort"
	"strings"

	"github.com/fmc-dev/fmc/internals/author"
	"github.com/fmc-dev/fmc/internals/merrors"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stoewer/go-strcase"
)

const (
	// SettingsFile is the optional settings file read on startup
	SettingsFile = "~/.config/fmc/settings.toml"
	// DefaultFactorioVersion is the factorio_version of new mods
	DefaultFactorioVersion = "1.1"
)

const (
	configKindString = iota
	configKindBool
)

type configEntry struct {
	kind int
	help string
}

// authorKey is not a setting, it lives in the author file
const authorKey = "author"

var config = map[string]configEntry{
	authorKey:         {configKindString, "author of new mods, stored in the author file"},
	"authorFile":      {configKindString, "file containing the author"},
	"factorioVersion": {configKindString, "factorio_version of new mods"},
	"noColor":         {configKindBool, "disable colored output"},
	"verboseLogging":  {configKindBool, "print debug output"},
}

var SubCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage global config options",
}

// SetDefaults registers the default value of every setting
func SetDefaults() {
	viper.SetDefault("authorFile", author.DefaultPath)
	viper.SetDefault("factorioVersion", DefaultFactorioVersion)
	viper.SetDefault("noColor", false)
	viper.SetDefault("verboseLogging", false)
}

// lookup finds the entry for key. "author-file", "author_file" and "AuthorFile" all mean "authorFile"
func lookup(key string) (string, configEntry, error) {
	normalized := strcase.LowerCamelCase(key)
	for name, entry := range config {
		if strings.EqualFold(name, normalized) {
			return name, entry, nil
		}
	}
	return "", configEntry{}, merrors.Newf(merrors.UsageError, "config key \"%s\" does not exist", key).
		WithHelp("Valid keys are " + strings.Join(keys(), ", "))
}

func keys() []string {
	names := make([]string, 0, len(config))
	for name := range config {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// settingsPath returns the file settings are written to
func settingsPath() (string, error) {
	if used := viper.ConfigFileUsed(); used != "" {
		return used, nil
	}
	return homedir.Expand(SettingsFile)
}
