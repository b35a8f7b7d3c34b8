package initCmd

import (
	"github.com/fmc-dev/fmc/cmd/config"
	"github.com/fmc-dev/fmc/pkg/manifest"
	"github.com/spf13/viper"
)

// initialVersion is the version of every new mod
const initialVersion = "0.0.1"

func defaultManifest(name string, author string) *manifest.Manifest {
	factorioVersion := viper.GetString("factorioVersion")
	if factorioVersion == "" {
		factorioVersion = config.DefaultFactorioVersion
	}

	man := manifest.New()
	man.SetString(manifest.KeyName, name)
	man.SetString(manifest.KeyVersion, initialVersion)
	man.SetString(manifest.KeyTitle, name)
	man.SetString(manifest.KeyAuthor, author)
	man.SetString(manifest.KeyFactorioVersion, factorioVersion)
	man.Set(manifest.KeyDependencies, manifest.StringsValue([]string{"base"}))

	return man
}
