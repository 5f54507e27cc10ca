package builtin

import (
	"fmt"

	"github.com/mtimmerkamp/littlecalc/internal/core"
	"github.com/mtimmerkamp/littlecalc/pkg/number"
)

// copyToClipboard copies X to the system clipboard. When no clipboard
// is available the value is stored under the _clipboard variable
// instead, so it stays reachable through recall.
func copyToClipboard(_ *core.Module, c *core.Calculator) error {
	v, err := c.Stack().Peek()
	if err != nil {
		return err
	}

	if !clipboardAvailable {
		return fallbackToVariable(c, v, "clipboard not available on this platform")
	}
	if err := initClipboard(); err != nil {
		return fallbackToVariable(c, v, fmt.Sprintf("clipboard initialization failed: %v", err))
	}
	if err := writeToClipboard(v.String()); err != nil {
		return fallbackToVariable(c, v, fmt.Sprintf("writing to clipboard failed: %v", err))
	}
	c.Output(fmt.Sprintf("copied %s to clipboard", v))
	return nil
}

func fallbackToVariable(c *core.Calculator, v number.Value, reason string) error {
	c.Store("_clipboard", v)
	c.Output(fmt.Sprintf("%s; stored %s under \"_clipboard\"", reason, v))
	return nil
}
