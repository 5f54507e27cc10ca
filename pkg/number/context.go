package number

import (
	"fmt"

	"github.com/cockroachdb/apd/v3"
)

// DefaultPrecision is the ambient precision a fresh context starts with,
// in significant decimal digits.
const DefaultPrecision = 28

// MaxPrecision bounds how far the ambient precision can be raised.
const MaxPrecision = 100000

// Context carries the precision and rounding rules for decimal
// arithmetic. Results of its operations are rounded to the context's
// precision using half-even rounding. Contexts are not safe for
// concurrent use.
type Context struct {
	ctx *apd.Context
}

// NewContext returns a context rounding to prec significant digits.
// Precision values outside [1, MaxPrecision] are clamped.
func NewContext(prec uint32) *Context {
	if prec < 1 {
		prec = 1
	}
	if prec > MaxPrecision {
		prec = MaxPrecision
	}
	c := apd.BaseContext.WithPrecision(prec)
	c.Rounding = apd.RoundHalfEven
	return &Context{ctx: c}
}

// Precision returns the context's precision in significant digits.
func (c *Context) Precision() uint32 {
	return c.ctx.Precision
}

// SetPrecision changes the context's precision. It rejects values
// outside [1, MaxPrecision].
func (c *Context) SetPrecision(prec uint32) error {
	if prec < 1 || prec > MaxPrecision {
		return fmt.Errorf("precision must be between 1 and %d, got %d", MaxPrecision, prec)
	}
	c.ctx.Precision = prec
	return nil
}

// WithGuard derives a context with extra guard digits on top of c's
// precision. The receiver is not modified.
func (c *Context) WithGuard(digits uint32) *Context {
	prec := c.ctx.Precision + digits
	if prec > MaxPrecision {
		prec = MaxPrecision
	}
	return NewContext(prec)
}

// Round rounds v to the context's precision.
func (c *Context) Round(v Value) (Value, error) {
	var out apd.Decimal
	if _, err := c.ctx.Round(&out, v.dec()); err != nil {
		return Value{}, err
	}
	return Value{d: &out}, nil
}

func (c *Context) binary(op string, fn func(d, x, y *apd.Decimal) (apd.Condition, error), x, y Value) (Value, error) {
	var out apd.Decimal
	cond, err := fn(&out, x.dec(), y.dec())
	if err != nil {
		return Value{}, c.classify(op, cond, err)
	}
	if out.Form != apd.Finite {
		return Value{}, c.classify(op, cond, nil)
	}
	return Value{d: &out}, nil
}

func (c *Context) unary(op string, fn func(d, x *apd.Decimal) (apd.Condition, error), x Value) (Value, error) {
	var out apd.Decimal
	cond, err := fn(&out, x.dec())
	if err != nil {
		return Value{}, c.classify(op, cond, err)
	}
	if out.Form != apd.Finite {
		return Value{}, c.classify(op, cond, nil)
	}
	return Value{d: &out}, nil
}

// classify maps apd's conditions onto the calculator's error taxonomy.
// Domain violations become DomainError; anything else (for example
// exponent overflow) passes through annotated with the operation name.
// A nil err means apd produced a non-finite result without trapping,
// which the caller rejects as a domain violation since values never
// carry infinities or NaNs.
func (c *Context) classify(op string, cond apd.Condition, err error) error {
	switch {
	case cond&apd.DivisionByZero != 0:
		return NewDomainError(op, "division by zero")
	case cond&apd.DivisionUndefined != 0:
		return NewDomainError(op, "division undefined")
	case cond&(apd.InvalidOperation|apd.DivisionImpossible) != 0:
		return NewDomainError(op, "argument outside domain")
	case err == nil:
		return NewDomainError(op, "result is not finite")
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

// Add returns x + y.
func (c *Context) Add(x, y Value) (Value, error) {
	return c.binary("add", c.ctx.Add, x, y)
}

// Sub returns x - y.
func (c *Context) Sub(x, y Value) (Value, error) {
	return c.binary("sub", c.ctx.Sub, x, y)
}

// Mul returns x * y.
func (c *Context) Mul(x, y Value) (Value, error) {
	return c.binary("mul", c.ctx.Mul, x, y)
}

// Div returns x / y. Division by zero yields a DomainError.
func (c *Context) Div(x, y Value) (Value, error) {
	return c.binary("div", c.ctx.Quo, x, y)
}

// Rem returns the remainder of x / y with the sign of x.
func (c *Context) Rem(x, y Value) (Value, error) {
	return c.binary("rem", c.ctx.Rem, x, y)
}

// Neg returns -x.
func (c *Context) Neg(x Value) (Value, error) {
	return c.unary("neg", c.ctx.Neg, x)
}

// Abs returns |x|.
func (c *Context) Abs(x Value) (Value, error) {
	return c.unary("abs", c.ctx.Abs, x)
}

// Floor returns the largest integer not greater than x.
func (c *Context) Floor(x Value) (Value, error) {
	return c.unary("floor", c.ctx.Floor, x)
}

// Sqrt returns the square root of x. Negative arguments yield a
// DomainError. Exact results drop apd's padding to full precision, so
// the root of 9 is 3 rather than 3.000...0.
func (c *Context) Sqrt(x Value) (Value, error) {
	if x.Sign() < 0 {
		return Value{}, NewDomainError("sqrt", "square root of negative value")
	}
	var out apd.Decimal
	cond, err := c.ctx.Sqrt(&out, x.dec())
	if err != nil {
		return Value{}, c.classify("sqrt", cond, err)
	}
	if cond&apd.Inexact == 0 {
		out.Reduce(&out)
	}
	return Value{d: &out}, nil
}

// Exp returns e**x.
func (c *Context) Exp(x Value) (Value, error) {
	return c.unary("exp", c.ctx.Exp, x)
}

// Ln returns the natural logarithm of x. Non-positive arguments yield a
// DomainError.
func (c *Context) Ln(x Value) (Value, error) {
	if x.Sign() <= 0 {
		return Value{}, NewDomainError("ln", "logarithm of non-positive value")
	}
	return c.unary("ln", c.ctx.Ln, x)
}

// Log10 returns the base-10 logarithm of x. Non-positive arguments
// yield a DomainError.
func (c *Context) Log10(x Value) (Value, error) {
	if x.Sign() <= 0 {
		return Value{}, NewDomainError("log10", "logarithm of non-positive value")
	}
	return c.unary("log10", c.ctx.Log10, x)
}

// Pow returns x**y. A negative base with a non-integral exponent yields
// a DomainError, as does 0 raised to a negative power.
func (c *Context) Pow(x, y Value) (Value, error) {
	if x.IsZero() && y.Sign() < 0 {
		return Value{}, NewDomainError("pow", "zero raised to a negative power")
	}
	return c.binary("pow", c.ctx.Pow, x, y)
}
