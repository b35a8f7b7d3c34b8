package cmdlog

import (
	"os"
	"runtime"
)

var emojiSupport = detectEmojiSupport(runtime.GOOS, os.Getenv)

// detectEmojiSupport guesses if the terminal can draw emojis
func detectEmojiSupport(goos string, getenv func(string) string) bool {
	// everything that is not windows usually has emoji support
	if goos != "windows" {
		return true
	}

	// raw cmd and powershell set this, windows terminal does not
	return getenv("SESSIONNAME") == ""
}

// EmojiSupported reports whether the current terminal (probably) supports emojis
func EmojiSupported() bool {
	return emojiSupport
}
