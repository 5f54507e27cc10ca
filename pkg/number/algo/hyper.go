package algo

import (
	"github.com/mtimmerkamp/littlecalc/pkg/number"
)

// Sinh computes the hyperbolic sine (exp(x) - exp(-x)) / 2.
func Sinh(ctx *number.Context, x number.Value) (number.Value, error) {
	w := &calc{ctx: ctx.WithGuard(guardDigits)}
	ex := w.exp(x)
	r := w.div(w.sub(ex, w.div(one, ex)), two)
	return finish(ctx, r, w.err)
}

// Cosh computes the hyperbolic cosine (exp(x) + exp(-x)) / 2.
func Cosh(ctx *number.Context, x number.Value) (number.Value, error) {
	w := &calc{ctx: ctx.WithGuard(guardDigits)}
	ex := w.exp(x)
	r := w.div(w.add(ex, w.div(one, ex)), two)
	return finish(ctx, r, w.err)
}

// Tanh computes the hyperbolic tangent as sinh/cosh under convergent
// refinement.
func Tanh(ctx *number.Context, x number.Value) (number.Value, error) {
	return refine(ctx, func(w *number.Context) (number.Value, error) {
		s, err := Sinh(w, x)
		if err != nil {
			return number.Value{}, err
		}
		c, err := Cosh(w, x)
		if err != nil {
			return number.Value{}, err
		}
		return w.Div(s, c)
	})
}

// Coth computes the hyperbolic cotangent as cosh/sinh under convergent
// refinement.
func Coth(ctx *number.Context, x number.Value) (number.Value, error) {
	if x.IsZero() {
		return number.Value{}, number.NewDomainError("coth", "hyperbolic cotangent undefined at 0")
	}
	return refine(ctx, func(w *number.Context) (number.Value, error) {
		s, err := Sinh(w, x)
		if err != nil {
			return number.Value{}, err
		}
		if s.IsZero() {
			return number.Value{}, number.NewDomainError("coth", "hyperbolic cotangent undefined at 0")
		}
		c, err := Cosh(w, x)
		if err != nil {
			return number.Value{}, err
		}
		return w.Div(c, s)
	})
}

// Asinh computes the inverse hyperbolic sine ln(x + sqrt(x*x + 1)).
// Negative arguments go through asinh(-x) = -asinh(x) to avoid
// cancellation in the sum.
func Asinh(ctx *number.Context, x number.Value) (number.Value, error) {
	if x.Sign() < 0 {
		w := &calc{ctx: ctx.WithGuard(guardDigits)}
		r, err := Asinh(w.ctx, w.neg(x))
		if w.err != nil {
			return number.Value{}, w.err
		}
		if err != nil {
			return number.Value{}, err
		}
		return finish(ctx, w.neg(r), w.err)
	}
	w := &calc{ctx: ctx.WithGuard(guardDigits)}
	r := w.ln(w.add(x, w.sqrt(w.add(w.mul(x, x), one))))
	return finish(ctx, r, w.err)
}

// Acosh computes the inverse hyperbolic cosine ln(x + sqrt(x*x - 1))
// for x >= 1.
func Acosh(ctx *number.Context, x number.Value) (number.Value, error) {
	if x.Cmp(one) < 0 {
		return number.Value{}, number.NewDomainError("acosh", "inverse hyperbolic cosine argument below 1")
	}
	w := &calc{ctx: ctx.WithGuard(guardDigits)}
	r := w.ln(w.add(x, w.sqrt(w.sub(w.mul(x, x), one))))
	return finish(ctx, r, w.err)
}

// Atanh computes the inverse hyperbolic tangent ln((1+x)/(1-x)) / 2 for
// |x| < 1.
func Atanh(ctx *number.Context, x number.Value) (number.Value, error) {
	if x.Cmp(one) >= 0 || x.Cmp(number.FromInt64(-1)) <= 0 {
		return number.Value{}, number.NewDomainError("atanh", "inverse hyperbolic tangent argument outside (-1, 1)")
	}
	w := &calc{ctx: ctx.WithGuard(guardDigits)}
	r := w.div(w.ln(w.div(w.add(one, x), w.sub(one, x))), two)
	return finish(ctx, r, w.err)
}

// Acoth computes the inverse hyperbolic cotangent ln((x+1)/(x-1)) / 2
// for |x| > 1.
func Acoth(ctx *number.Context, x number.Value) (number.Value, error) {
	if x.Cmp(one) <= 0 && x.Cmp(number.FromInt64(-1)) >= 0 {
		return number.Value{}, number.NewDomainError("acoth", "inverse hyperbolic cotangent argument inside [-1, 1]")
	}
	w := &calc{ctx: ctx.WithGuard(guardDigits)}
	r := w.div(w.ln(w.div(w.add(x, one), w.sub(x, one))), two)
	return finish(ctx, r, w.err)
}
