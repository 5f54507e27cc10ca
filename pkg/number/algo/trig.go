package algo

import (
	"github.com/mtimmerkamp/littlecalc/pkg/number"
)

// reduceAngle maps x into [0, 2*pi) by subtracting the nearest lower
// multiple of 2*pi. Very large arguments lose the digits consumed by
// the reduction; that loss is inherent to the representation.
func reduceAngle(w *calc, x number.Value) number.Value {
	pi, err := Pi(w.ctx)
	if err != nil {
		w.err = err
		return number.Value{}
	}
	twoPi := w.mul(two, pi)
	q := w.floor(w.div(x, twoPi))
	return w.sub(x, w.mul(q, twoPi))
}

// Sin computes the sine of x (radians) from the Taylor series after
// range reduction.
func Sin(ctx *number.Context, x number.Value) (number.Value, error) {
	w := &calc{ctx: ctx.WithGuard(guardDigits)}
	r := reduceAngle(w, x)

	sum := r
	term := r
	r2 := w.mul(r, r)
	var last number.Value
	for n := int64(1); w.err == nil && !sum.Equal(last); n++ {
		last = sum
		k := 2 * n
		term = w.div(w.mul(w.neg(term), r2), number.FromInt64(k*(k+1)))
		sum = w.add(sum, term)
	}

	return finish(ctx, sum, w.err)
}

// Cos computes the cosine of x (radians) from the Taylor series after
// range reduction.
func Cos(ctx *number.Context, x number.Value) (number.Value, error) {
	w := &calc{ctx: ctx.WithGuard(guardDigits)}
	r := reduceAngle(w, x)

	sum := one
	term := one
	r2 := w.mul(r, r)
	var last number.Value
	for n := int64(1); w.err == nil && !sum.Equal(last); n++ {
		last = sum
		k := 2 * n
		term = w.div(w.mul(w.neg(term), r2), number.FromInt64(k*(k-1)))
		sum = w.add(sum, term)
	}

	return finish(ctx, sum, w.err)
}

// Tan computes tangent as sin/cos under convergent refinement, since a
// quotient of two rounded series can be off in the last digits at any
// fixed guard precision.
func Tan(ctx *number.Context, x number.Value) (number.Value, error) {
	return refine(ctx, func(w *number.Context) (number.Value, error) {
		s, err := Sin(w, x)
		if err != nil {
			return number.Value{}, err
		}
		c, err := Cos(w, x)
		if err != nil {
			return number.Value{}, err
		}
		if c.IsZero() {
			return number.Value{}, number.NewDomainError("tan", "tangent undefined at odd multiples of pi/2")
		}
		return w.Div(s, c)
	})
}

// Cot computes cotangent as cos/sin under convergent refinement.
func Cot(ctx *number.Context, x number.Value) (number.Value, error) {
	return refine(ctx, func(w *number.Context) (number.Value, error) {
		s, err := Sin(w, x)
		if err != nil {
			return number.Value{}, err
		}
		if s.IsZero() {
			return number.Value{}, number.NewDomainError("cot", "cotangent undefined at multiples of pi")
		}
		c, err := Cos(w, x)
		if err != nil {
			return number.Value{}, err
		}
		return w.Div(c, s)
	})
}
