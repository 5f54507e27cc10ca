package shell

import (
	"strings"

	"github.com/mtimmerkamp/littlecalc/internal/core"
	"github.com/mtimmerkamp/littlecalc/internal/modules/constants"
)

// Completer suggests operation names, variable names, module names and
// constant ids. It satisfies readline's AutoCompleter interface, which
// ishell accepts as a custom completer.
type Completer struct {
	calc *core.Calculator
}

// NewCompleter builds a completer over the calculator's loaded
// operations.
func NewCompleter(calc *core.Calculator) *Completer {
	return &Completer{calc: calc}
}

// Do completes the word under the cursor. The candidate set depends on
// the word before it: store and recall complete variable names,
// loadmod completes registered factories, unloadmod loaded modules and
// const the catalog ids. It returns the completion suffixes and the
// length of the word being completed.
func (cp *Completer) Do(line []rune, pos int) ([][]rune, int) {
	head := string(line[:pos])
	start := strings.LastIndexByte(head, ' ') + 1
	word := head[start:]

	prev := ""
	if fields := strings.Fields(head[:start]); len(fields) > 0 {
		prev = fields[len(fields)-1]
	}

	var candidates []string
	switch prev {
	case "sto", "store", "rcl", "recall":
		candidates = cp.calc.Variables()
	case "loadmod":
		candidates = core.GlobalRegistry.Names()
	case "unloadmod":
		for _, m := range cp.calc.Modules() {
			candidates = append(candidates, m.Name())
		}
	case "const":
		candidates = constants.CatalogIDs()
	default:
		candidates = cp.calc.OperationNames()
	}

	var suffixes [][]rune
	for _, cand := range candidates {
		if strings.HasPrefix(cand, word) {
			suffixes = append(suffixes, []rune(cand[len(word):]))
		}
	}
	return suffixes, len([]rune(word))
}
