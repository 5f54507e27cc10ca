// Package algo implements the numeric algorithms behind the calculator
// operations: constants, elementary functions, trigonometry and
// hyperbolics on arbitrary-precision decimals.
//
// Every function takes the target precision context explicitly and
// computes internally with guard digits, rounding the result back to
// the target precision. Functions whose result is a quotient of two
// approximated series (tan, cot, tanh, coth) instead re-evaluate at
// growing working precision until two consecutive rounded results
// agree.
package algo

import (
	"github.com/mtimmerkamp/littlecalc/pkg/number"
)

// guardDigits is the number of extra significant digits used for
// intermediate results before rounding back to the target precision.
const guardDigits = 5

var (
	one     = number.FromInt64(1)
	two     = number.FromInt64(2)
	four    = number.FromInt64(4)
	quarter = number.MustParse("0.25")

	// seriesLimit bounds the argument magnitude for the arctangent
	// series; above it the argument is shrunk via the half-angle
	// identity first.
	seriesLimit = number.MustParse("0.9")
)

// calc chains context arithmetic and captures the first error, so that
// series loops read as formulas instead of error plumbing. Modeled on
// apd's ErrDecimal.
type calc struct {
	ctx *number.Context
	err error
}

func (c *calc) run(v number.Value, err error) number.Value {
	if c.err != nil {
		return number.Value{}
	}
	if err != nil {
		c.err = err
		return number.Value{}
	}
	return v
}

func (c *calc) add(x, y number.Value) number.Value { return c.run(c.ctx.Add(x, y)) }
func (c *calc) sub(x, y number.Value) number.Value { return c.run(c.ctx.Sub(x, y)) }
func (c *calc) mul(x, y number.Value) number.Value { return c.run(c.ctx.Mul(x, y)) }
func (c *calc) div(x, y number.Value) number.Value { return c.run(c.ctx.Div(x, y)) }
func (c *calc) neg(x number.Value) number.Value    { return c.run(c.ctx.Neg(x)) }
func (c *calc) abs(x number.Value) number.Value    { return c.run(c.ctx.Abs(x)) }
func (c *calc) sqrt(x number.Value) number.Value   { return c.run(c.ctx.Sqrt(x)) }
func (c *calc) exp(x number.Value) number.Value    { return c.run(c.ctx.Exp(x)) }
func (c *calc) ln(x number.Value) number.Value     { return c.run(c.ctx.Ln(x)) }
func (c *calc) log10(x number.Value) number.Value  { return c.run(c.ctx.Log10(x)) }
func (c *calc) pow(x, y number.Value) number.Value { return c.run(c.ctx.Pow(x, y)) }
func (c *calc) floor(x number.Value) number.Value  { return c.run(c.ctx.Floor(x)) }

// finish rounds a guarded intermediate result back to the target
// precision, propagating any earlier error.
func finish(ctx *number.Context, v number.Value, err error) (number.Value, error) {
	if err != nil {
		return number.Value{}, err
	}
	return ctx.Round(v)
}
