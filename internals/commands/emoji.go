package commands

import "github.com/fmc-dev/fmc/internals/cmdlog"

// Emoji returns the given string (usually a emoji) if the current terminal
// (probably) supports it
func Emoji(e string) string {
	if cmdlog.EmojiSupported() {
		return e
	}
	return ""
}
