package shell

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/mtimmerkamp/littlecalc/internal/core"
)

// registerDepth is how many stack levels the shell shows after each
// evaluation.
const registerDepth = 4

// registerNames labels the shown stack levels, X being the top.
var registerNames = [registerDepth]string{"T", "Z", "Y", "X"}

var registerLabelStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))

// FormatRegisters renders the topmost stack values one per line, the
// deepest shown register first and X last. An empty stack renders as
// the empty string. Labels are colored only when the terminal supports
// it.
func FormatRegisters(s *core.Stack, depth int) string {
	values := s.Values()
	if depth > len(values) {
		depth = len(values)
	}
	if depth <= 0 {
		return ""
	}

	styled := lipgloss.ColorProfile() != termenv.Ascii
	names := registerNames[registerDepth-depth:]
	lines := make([]string, depth)
	for i, v := range values[len(values)-depth:] {
		label := names[i] + ":"
		if styled {
			label = registerLabelStyle.Render(label)
		}
		lines[i] = label + " " + v.String()
	}
	return strings.Join(lines, "\n")
}
