// Package builtin provides the calculator-management operations:
// variable storage, stack manipulation, module loading, precision
// control and the help listing.
package builtin

import (
	"fmt"
	"strings"

	"github.com/mtimmerkamp/littlecalc/internal/core"
	"github.com/mtimmerkamp/littlecalc/pkg/number"
)

// ModuleName is the name the module factory is registered under.
const ModuleName = "builtin"

func init() {
	if err := core.RegisterFactory(ModuleName, NewModules); err != nil {
		panic(fmt.Sprintf("failed to register %s module factory: %v", ModuleName, err))
	}
}

// NewModules is the module factory registered under ModuleName.
func NewModules(_ *core.Calculator) ([]*core.Module, error) {
	return []*core.Module{New()}, nil
}

// New builds the builtin module.
func New() *core.Module {
	m := core.NewModule(ModuleName)
	m.MustRegister(
		core.NewOperation("store", "sto").Prompt(store),
		core.NewOperation("recall", "rcl").Prompt(recall),
		core.NewOperation("clear", "clr").Prompt(clearStack),
		core.NewOperation("clearall").Prompt(clearAll),
		core.NewOperation("xchy").Prompt(exchangeXY),
		core.NewOperation("rolup", "rlu").Prompt(rollUp),
		core.NewOperation("roldown", "rld").Prompt(rollDown),
		core.NewOperation("push").Prompt(duplicateTop),
		core.NewOperation("pop").Prompt(dropTop),
		core.NewOperation("lastx").Prompt(pushLastX),
		core.NewOperation("depth").Prompt(pushDepth),
		core.NewOperation("loadmod").Prompt(loadModule),
		core.NewOperation("unloadmod").Prompt(unloadModule),
		core.NewOperation("prec").Prompt(setPrecision),
		core.NewOperation("prec?").Prompt(reportPrecision),
		core.NewOperation("help", "ops").Prompt(listOperations),
		core.NewOperation("clip").Prompt(copyToClipboard),
	)
	return m
}

// store consumes the next input token as a variable name and moves the
// top of the stack into it.
func store(_ *core.Module, c *core.Calculator) error {
	name, err := c.NextArg("store")
	if err != nil {
		return err
	}
	args, err := c.Stack().PopN(1)
	if err != nil {
		return err
	}
	c.Store(name, args[0])
	return nil
}

// recall consumes the next input token as a variable name and pushes
// the stored value.
func recall(_ *core.Module, c *core.Calculator) error {
	name, err := c.NextArg("recall")
	if err != nil {
		return err
	}
	v, err := c.Recall(name)
	if err != nil {
		return err
	}
	c.Stack().Push(v)
	return nil
}

func clearStack(_ *core.Module, c *core.Calculator) error {
	c.Stack().Clear()
	return nil
}

func clearAll(_ *core.Module, c *core.Calculator) error {
	c.Stack().Clear()
	c.ClearStorage()
	return nil
}

// exchangeXY swaps the X and Y registers. Fewer than two values is a
// no-op.
func exchangeXY(_ *core.Module, c *core.Calculator) error {
	if c.Stack().Len() < 2 {
		return nil
	}
	args, err := c.Stack().PopN(2)
	if err != nil {
		return err
	}
	c.Stack().Push(args[0], args[1])
	return nil
}

func rollUp(_ *core.Module, c *core.Calculator) error {
	c.Stack().Rotate(-1)
	return nil
}

func rollDown(_ *core.Module, c *core.Calculator) error {
	c.Stack().Rotate(1)
	return nil
}

// duplicateTop pushes a copy of X. An empty stack is a no-op.
func duplicateTop(_ *core.Module, c *core.Calculator) error {
	v, err := c.Stack().Peek()
	if err != nil {
		return nil
	}
	c.Stack().Push(v)
	return nil
}

// dropTop discards X. An empty stack is a no-op.
func dropTop(_ *core.Module, c *core.Calculator) error {
	_, _ = c.Stack().PopN(1)
	return nil
}

func pushLastX(_ *core.Module, c *core.Calculator) error {
	if v, ok := c.Stack().LastX(); ok {
		c.Stack().Push(v)
	}
	return nil
}

func pushDepth(_ *core.Module, c *core.Calculator) error {
	c.Stack().Push(number.FromInt64(int64(c.Stack().Len())))
	return nil
}

func loadModule(_ *core.Module, c *core.Calculator) error {
	name, err := c.NextArg("loadmod")
	if err != nil {
		return err
	}
	return c.LoadModuleByName(name)
}

func unloadModule(_ *core.Module, c *core.Calculator) error {
	name, err := c.NextArg("unloadmod")
	if err != nil {
		return err
	}
	return c.UnloadModuleByName(name)
}

// setPrecision pops X and makes it the ambient precision.
func setPrecision(_ *core.Module, c *core.Calculator) error {
	args, err := c.Stack().PopN(1)
	if err != nil {
		return err
	}
	n, err := args[0].Int64()
	if err != nil {
		return fmt.Errorf("precision must be an integer: %w", err)
	}
	if n < 1 || n > int64(number.MaxPrecision) {
		return fmt.Errorf("precision must be between 1 and %d, got %d", number.MaxPrecision, n)
	}
	return c.SetPrecision(uint32(n))
}

// reportPrecision prints the ambient precision and pushes it.
func reportPrecision(_ *core.Module, c *core.Calculator) error {
	p := c.Precision()
	c.Output(fmt.Sprintf("precision: %d", p))
	c.Stack().Push(number.FromInt64(int64(p)))
	return nil
}

// listOperations renders a table of every loaded module's operations
// and aliases.
func listOperations(_ *core.Module, c *core.Calculator) error {
	var b strings.Builder
	b.WriteString("# Operations\n")
	for _, m := range c.Modules() {
		fmt.Fprintf(&b, "\n## %s\n\n", m.Name())
		b.WriteString("| operation | aliases |\n")
		b.WriteString("|-----------|---------|\n")
		for _, name := range m.OperationNames() {
			fmt.Fprintf(&b, "| %s | %s |\n", name, strings.Join(m.AliasesFor(name), " "))
		}
	}
	c.Output(c.Render(b.String()))
	return nil
}
