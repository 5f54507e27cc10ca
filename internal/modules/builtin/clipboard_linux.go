//go:build linux

package builtin

import "errors"

// clipboardAvailable reports whether this platform has clipboard
// support compiled in. The clipboard library needs X11 headers on
// Linux, so builds there fall back to variable storage.
const clipboardAvailable = false

var errNoClipboard = errors.New("clipboard not available on this platform")

func initClipboard() error {
	return errNoClipboard
}

func writeToClipboard(_ string) error {
	return errNoClipboard
}
