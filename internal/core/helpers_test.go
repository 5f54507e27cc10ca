package core

import (
	"github.com/mtimmerkamp/littlecalc/pkg/number"
)

// plainConverter parses ordinary decimal literals; it stands in for the
// decimal module's converter in engine tests.
type plainConverter struct{}

func (plainConverter) Recognizes(token string) bool {
	_, err := number.Parse(token)
	return err == nil
}

func (plainConverter) Parse(token string) (number.Value, error) {
	return number.Parse(token)
}

// newArithModule builds a minimal module with enough operations to
// exercise dispatch: add (aliased "+"), a failing div, an operation
// that consumes a stream token and a nullary stack op.
func newArithModule() *Module {
	m := NewModule("arith")
	m.MustRegister(
		NewOperation("add", "+").StackArgs(2, Binary(func(ctx *number.Context, x, y number.Value) (number.Value, error) {
			return ctx.Add(y, x)
		})),
		NewOperation("div").StackArgs(2, Binary(func(ctx *number.Context, x, y number.Value) (number.Value, error) {
			return ctx.Div(y, x)
		})),
		NewOperation("take").Prompt(func(_ *Module, c *Calculator) error {
			_, err := c.NextArg("take")
			return err
		}),
		NewOperation("clear").Prompt(func(_ *Module, c *Calculator) error {
			c.Stack().Clear()
			return nil
		}),
	)
	return m
}

// newTestCalculator builds a calculator with the arithmetic test module
// and plain converter loaded, reporting into the given sink.
func newTestCalculator(sink OutputWriter, opts ...Option) (*Calculator, *Module) {
	opts = append([]Option{WithOutput(sink)}, opts...)
	c := New(opts...)
	c.RegisterConverter(plainConverter{})
	m := newArithModule()
	if err := c.LoadModule(m); err != nil {
		panic(err)
	}
	return c, m
}
