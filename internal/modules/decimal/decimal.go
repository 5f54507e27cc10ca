// Package decimal provides the arithmetic module: the converter for
// decimal literals and the elementary operations on them.
package decimal

import (
	"fmt"

	"github.com/mtimmerkamp/littlecalc/internal/core"
	"github.com/mtimmerkamp/littlecalc/pkg/number"
	"github.com/mtimmerkamp/littlecalc/pkg/number/algo"
)

// ModuleName is the factory name of the decimal module.
const ModuleName = "decimal"

func init() {
	if err := core.RegisterFactory(ModuleName, NewModules); err != nil {
		panic(fmt.Sprintf("failed to register decimal module factory: %v", err))
	}
}

// Converter recognizes decimal literals, including signs and exponent
// notation. Parsing keeps every digit of the literal; rounding only
// happens in arithmetic.
type Converter struct{}

// Recognizes implements core.NumericConverter.
func (Converter) Recognizes(token string) bool {
	_, err := number.Parse(token)
	return err == nil
}

// Parse implements core.NumericConverter.
func (Converter) Parse(token string) (number.Value, error) {
	return number.Parse(token)
}

// NewModules is the registered factory for the decimal module.
func NewModules(_ *core.Calculator) ([]*core.Module, error) {
	return []*core.Module{New()}, nil
}

// New builds the decimal module. Loading it registers the literal
// converter with the calculator; unloading removes it again.
func New() *core.Module {
	conv := Converter{}
	m := core.NewModule(ModuleName,
		core.WithLoadHook(func(c *core.Calculator) error {
			c.RegisterConverter(conv)
			return nil
		}),
		core.WithUnloadHook(func(c *core.Calculator) error {
			c.DeregisterConverter(conv)
			return nil
		}),
	)

	m.MustRegister(
		core.NewOperation("add", "+").StackArgs(2, core.Binary(add)),
		core.NewOperation("sub", "-").StackArgs(2, core.Binary(sub)),
		core.NewOperation("mul", "*").StackArgs(2, core.Binary(mul)),
		core.NewOperation("div", "/").StackArgs(2, core.Binary(div)),
		core.NewOperation("inv").StackArgs(1, core.Unary(inv)),
		core.NewOperation("neg", "chs").StackArgs(1, core.Unary(neg)),
		core.NewOperation("sqr", "^2").StackArgs(1, core.Unary(sqr)),
		core.NewOperation("sqrt").StackArgs(1, core.Unary(algo.Sqrt)),
		core.NewOperation("pow", "**", "^").StackArgs(2, core.Binary(pow)),
		core.NewOperation("root").StackArgs(2, core.Binary(root)),
		core.NewOperation("exp").StackArgs(1, core.Unary(algo.Exp)),
		core.NewOperation("ln").StackArgs(1, core.Unary(algo.Ln)),
		core.NewOperation("log10", "lg").StackArgs(1, core.Unary(algo.Log10)),
		core.NewOperation("log").StackArgs(2, core.Binary(logBase)),
	)
	registerTrig(m)
	return m
}

// Binary operations receive x (old top) and y (below it) and compute
// "y op x", so "10 4 sub" leaves 6.

func add(ctx *number.Context, x, y number.Value) (number.Value, error) {
	return ctx.Add(y, x)
}

func sub(ctx *number.Context, x, y number.Value) (number.Value, error) {
	return ctx.Sub(y, x)
}

func mul(ctx *number.Context, x, y number.Value) (number.Value, error) {
	return ctx.Mul(y, x)
}

func div(ctx *number.Context, x, y number.Value) (number.Value, error) {
	return ctx.Div(y, x)
}

func inv(ctx *number.Context, x number.Value) (number.Value, error) {
	return ctx.Div(number.FromInt64(1), x)
}

func neg(ctx *number.Context, x number.Value) (number.Value, error) {
	return ctx.Neg(x)
}

func sqr(ctx *number.Context, x number.Value) (number.Value, error) {
	return ctx.Mul(x, x)
}

// pow computes y**x: "2 3 pow" leaves 8.
func pow(ctx *number.Context, x, y number.Value) (number.Value, error) {
	return algo.Pow(ctx, y, x)
}

// root computes the x-th root of y: "27 3 root" leaves 3.
func root(ctx *number.Context, x, y number.Value) (number.Value, error) {
	return algo.Root(ctx, x, y)
}

// logBase computes the logarithm of y to base x: "8 2 log" leaves 3.
func logBase(ctx *number.Context, x, y number.Value) (number.Value, error) {
	return algo.Log(ctx, x, y)
}
