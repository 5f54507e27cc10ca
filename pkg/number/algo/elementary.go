package algo

import (
	"github.com/mtimmerkamp/littlecalc/pkg/number"
)

// Exp computes e**x.
func Exp(ctx *number.Context, x number.Value) (number.Value, error) {
	v, err := ctx.WithGuard(guardDigits).Exp(x)
	return finish(ctx, v, err)
}

// Ln computes the natural logarithm of x.
func Ln(ctx *number.Context, x number.Value) (number.Value, error) {
	v, err := ctx.WithGuard(guardDigits).Ln(x)
	return finish(ctx, v, err)
}

// Log10 computes the base-10 logarithm of x.
func Log10(ctx *number.Context, x number.Value) (number.Value, error) {
	v, err := ctx.WithGuard(guardDigits).Log10(x)
	return finish(ctx, v, err)
}

// Log computes the logarithm of v to the given base as
// log10(v)/log10(base) under guard digits.
func Log(ctx *number.Context, base, v number.Value) (number.Value, error) {
	if base.Sign() <= 0 {
		return number.Value{}, number.NewDomainError("log", "logarithm base must be positive")
	}
	if base.Equal(one) {
		return number.Value{}, number.NewDomainError("log", "logarithm base 1 is undefined")
	}
	if v.Sign() <= 0 {
		return number.Value{}, number.NewDomainError("log", "logarithm of non-positive value")
	}
	w := &calc{ctx: ctx.WithGuard(guardDigits)}
	r := w.div(w.log10(v), w.log10(base))
	return finish(ctx, r, w.err)
}

// Pow computes base**exponent.
func Pow(ctx *number.Context, base, exponent number.Value) (number.Value, error) {
	v, err := ctx.WithGuard(guardDigits).Pow(base, exponent)
	return finish(ctx, v, err)
}

// Sqrt computes the square root of x.
func Sqrt(ctx *number.Context, x number.Value) (number.Value, error) {
	v, err := ctx.WithGuard(guardDigits).Sqrt(x)
	return finish(ctx, v, err)
}

// Root computes the n-th root of x as x**(1/n). Odd integer roots of
// negative values keep the sign; even or non-integer roots of negative
// values are outside the domain.
func Root(ctx *number.Context, n, x number.Value) (number.Value, error) {
	if n.IsZero() {
		return number.Value{}, number.NewDomainError("root", "zeroth root is undefined")
	}
	if x.Sign() < 0 {
		i, err := n.Int64()
		if err != nil || i%2 == 0 {
			return number.Value{}, number.NewDomainError("root", "even or non-integer root of negative value")
		}
		w := &calc{ctx: ctx.WithGuard(guardDigits)}
		r := w.neg(w.pow(w.neg(x), w.div(one, n)))
		return finish(ctx, r, w.err)
	}
	w := &calc{ctx: ctx.WithGuard(guardDigits)}
	r := w.pow(x, w.div(one, n))
	return finish(ctx, r, w.err)
}
