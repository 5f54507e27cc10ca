// Package shell provides the interactive calculator session. It wires
// the evaluation engine into an ishell loop: every input line routes
// through the dispatch engine and the topmost stack registers are
// printed after each evaluation.
package shell

import (
	"strings"

	"github.com/abiosoft/ishell/v2"

	"github.com/mtimmerkamp/littlecalc/internal/core"
	"github.com/mtimmerkamp/littlecalc/internal/version"
)

// Shell is an interactive calculator session.
type Shell struct {
	calc *core.Calculator
	ish  *ishell.Shell
}

// New builds the interactive shell around calc and takes over its
// output, so operation results print through the readline loop.
func New(calc *core.Calculator) *Shell {
	s := &Shell{calc: calc, ish: ishell.New()}
	calc.SetOutput(s)

	s.ish.SetPrompt(">>> ")

	// ishell's own exit, help and clear would shadow calculator input
	s.ish.DeleteCmd("exit")
	s.ish.DeleteCmd("help")
	s.ish.DeleteCmd("clear")

	s.ish.AddCmd(&ishell.Cmd{
		Name: "exit",
		Help: "leave the calculator",
		Func: func(c *ishell.Context) { c.Stop() },
	})
	s.ish.AddCmd(&ishell.Cmd{
		Name: "quit",
		Help: "leave the calculator",
		Func: func(c *ishell.Context) { c.Stop() },
	})

	s.ish.NotFound(func(c *ishell.Context) {
		ProcessInput(s.calc, c, strings.Join(c.RawArgs, " "))
	})
	s.ish.CustomCompleter(NewCompleter(s.calc))

	return s
}

// Output implements core.OutputWriter by printing through the shell, so
// operation output and readline redraws do not interleave.
func (s *Shell) Output(text string) {
	s.ish.Println(text)
}

// Run starts the interactive loop and blocks until the user exits.
func (s *Shell) Run() {
	s.ish.Println(version.GetFormattedVersion())
	s.ish.Println("Enter RPN expressions; 'help' lists operations, 'exit' quits.")
	s.ish.Run()
}
