package shell

import (
	"strings"

	"github.com/mtimmerkamp/littlecalc/internal/core"
	"github.com/mtimmerkamp/littlecalc/internal/logger"
)

// printer is the subset of ishell's context the input handler prints
// through.
type printer interface {
	Println(values ...interface{})
}

// ProcessInput evaluates one line of user input and prints the topmost
// stack registers. Empty lines and comment lines starting with "#" are
// skipped.
func ProcessInput(calc *core.Calculator, p printer, raw string) {
	line := strings.TrimSpace(raw)
	if line == "" || strings.HasPrefix(line, "#") {
		return
	}

	// Every error was already reported through the calculator's output
	// sink; the joined error only feeds the dispatch trace.
	if err := calc.Evaluate(line); err != nil {
		logger.Debug("line finished with errors", "line", line, "error", err)
	}

	if display := FormatRegisters(calc.Stack(), registerDepth); display != "" {
		p.Println(display)
	}
}
