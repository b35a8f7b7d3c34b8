package globals

import (
	"github.com/fmc-dev/fmc/internals/cmdlog"
)

var (
	Logger = cmdlog.New()
)
