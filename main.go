package main

import (
	"github.com/fmc-dev/fmc/cmd"
)

// set by goreleaser
var version string

func main() {
	if version != "" {
		cmd.Version = version
	}
	cmd.Execute()
}
