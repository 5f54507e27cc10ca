//go:build !linux

package builtin

import "golang.design/x/clipboard"

// clipboardAvailable reports whether this platform has clipboard
// support compiled in.
const clipboardAvailable = true

func initClipboard() error {
	return clipboard.Init()
}

func writeToClipboard(text string) error {
	clipboard.Write(clipboard.FmtText, []byte(text))
	return nil
}
