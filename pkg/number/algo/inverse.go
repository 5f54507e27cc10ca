package algo

import (
	"github.com/mtimmerkamp/littlecalc/pkg/number"
)

// Atan computes the arctangent of x. Arguments with magnitude near or
// above 1 are first shrunk with the identity
//
//	arctan(x) = 2*arctan(x / (1 + sqrt(1 + x*x)))
//
// until the alternating series converges quickly, then the doubling is
// undone.
func Atan(ctx *number.Context, x number.Value) (number.Value, error) {
	w := &calc{ctx: ctx.WithGuard(guardDigits)}

	y := x
	reductions := 0
	for w.err == nil && w.abs(y).Cmp(seriesLimit) >= 0 {
		y = w.div(y, w.add(one, w.sqrt(w.add(one, w.mul(y, y)))))
		reductions++
	}

	sum := y
	term := y
	y2 := w.mul(y, y)
	var last number.Value
	for n := int64(1); w.err == nil && !sum.Equal(last); n++ {
		last = sum
		term = w.mul(w.neg(term), y2)
		sum = w.add(sum, w.div(term, number.FromInt64(2*n+1)))
	}

	for i := 0; i < reductions; i++ {
		sum = w.mul(sum, two)
	}

	return finish(ctx, sum, w.err)
}

// Asin computes the arcsine of x for x in [-1, 1].
func Asin(ctx *number.Context, x number.Value) (number.Value, error) {
	switch {
	case x.Cmp(one) > 0 || x.Cmp(number.FromInt64(-1)) < 0:
		return number.Value{}, number.NewDomainError("asin", "arcsine argument outside [-1, 1]")
	case x.Equal(one) || x.Equal(number.FromInt64(-1)):
		w := &calc{ctx: ctx.WithGuard(guardDigits)}
		pi, err := Pi(w.ctx)
		if err != nil {
			return number.Value{}, err
		}
		half := w.div(pi, two)
		if x.Sign() < 0 {
			half = w.neg(half)
		}
		return finish(ctx, half, w.err)
	}

	// arcsin(x) = arctan(x / sqrt(1 - x*x))
	w := &calc{ctx: ctx.WithGuard(guardDigits)}
	z := w.div(x, w.sqrt(w.sub(one, w.mul(x, x))))
	if w.err != nil {
		return number.Value{}, w.err
	}
	r, err := Atan(w.ctx, z)
	if err != nil {
		return number.Value{}, err
	}
	return ctx.Round(r)
}

// Acos computes the arccosine of x for x in [-1, 1].
func Acos(ctx *number.Context, x number.Value) (number.Value, error) {
	minusOne := number.FromInt64(-1)
	switch {
	case x.Cmp(one) > 0 || x.Cmp(minusOne) < 0:
		return number.Value{}, number.NewDomainError("acos", "arccosine argument outside [-1, 1]")
	case x.Equal(one):
		return number.FromInt64(0), nil
	case x.Equal(minusOne):
		return Pi(ctx)
	}

	// arccos(x) = pi/2 - arcsin(x)
	w := &calc{ctx: ctx.WithGuard(guardDigits)}
	pi, err := Pi(w.ctx)
	if err != nil {
		return number.Value{}, err
	}
	s, err := Asin(w.ctx, x)
	if err != nil {
		return number.Value{}, err
	}
	r := w.sub(w.div(pi, two), s)
	return finish(ctx, r, w.err)
}

// Acot computes the arccotangent of x with range (0, pi).
func Acot(ctx *number.Context, x number.Value) (number.Value, error) {
	w := &calc{ctx: ctx.WithGuard(guardDigits)}
	pi, err := Pi(w.ctx)
	if err != nil {
		return number.Value{}, err
	}
	if x.IsZero() {
		return finish(ctx, w.div(pi, two), w.err)
	}

	r, err := Atan(w.ctx, w.div(one, x))
	if w.err != nil {
		return number.Value{}, w.err
	}
	if err != nil {
		return number.Value{}, err
	}
	if x.Sign() < 0 {
		r = w.add(r, pi)
	}
	return finish(ctx, r, w.err)
}
