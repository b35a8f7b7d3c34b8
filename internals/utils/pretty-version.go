package utils

import (
	"strings"

	"github.com/jwalton/gchalk"
)

// PrettyVersionChange returns "before → after" for terminal printing.
// Components of after that differ from before are highlighted
func PrettyVersionChange(before string, after string) string {
	if before == after {
		return after + gchalk.Dim(" (unchanged)")
	}

	beforeParts := strings.Split(before, ".")
	afterParts := strings.Split(after, ".")
	for i, part := range afterParts {
		if i >= len(beforeParts) || beforeParts[i] != part {
			afterParts[i] = gchalk.Bold(gchalk.Green(part))
		}
	}

	return gchalk.Dim(before) + " → " + strings.Join(afterParts, ".")
}
