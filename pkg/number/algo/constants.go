package algo

import (
	"sync"

	"github.com/mtimmerkamp/littlecalc/pkg/number"
)

// piCache memoizes pi per precision so repeated trigonometric calls at
// the same ambient precision reuse the identical value.
var piCache = struct {
	sync.Mutex
	values map[uint32]number.Value
}{values: make(map[uint32]number.Value)}

func resetPiCache() {
	piCache.Lock()
	piCache.values = make(map[uint32]number.Value)
	piCache.Unlock()
}

// Pi computes pi to the context's precision using the Gauss-Legendre
// iteration, which doubles the number of correct digits per round.
// Results are cached per precision.
func Pi(ctx *number.Context) (number.Value, error) {
	prec := ctx.Precision()

	piCache.Lock()
	cached, ok := piCache.values[prec]
	piCache.Unlock()
	if ok {
		return cached, nil
	}

	w := &calc{ctx: ctx.WithGuard(guardDigits)}

	a := one
	b := w.div(one, w.sqrt(two))
	t := quarter
	p := one

	v := number.FromInt64(0)
	last := one
	for w.err == nil && !v.Equal(last) {
		an := w.div(w.add(a, b), two)
		bn := w.sqrt(w.mul(a, b))
		d := w.sub(a, an)
		t = w.sub(t, w.mul(p, w.mul(d, d)))
		p = w.mul(p, two)
		a, b = an, bn

		last = v
		s := w.add(a, b)
		v = w.div(w.mul(s, s), w.mul(four, t))
	}

	out, err := finish(ctx, v, w.err)
	if err != nil {
		return number.Value{}, err
	}

	piCache.Lock()
	piCache.values[prec] = out
	piCache.Unlock()
	return out, nil
}

// E computes Euler's number to the context's precision by summing the
// Taylor series of exp(1) until the partial sums stop changing.
func E(ctx *number.Context) (number.Value, error) {
	w := &calc{ctx: ctx.WithGuard(guardDigits)}

	sum := one
	last := number.FromInt64(0)
	fact := one
	for i := int64(1); w.err == nil && !sum.Equal(last); i++ {
		last = sum
		fact = w.mul(fact, number.FromInt64(i))
		sum = w.add(sum, w.div(one, fact))
	}

	return finish(ctx, sum, w.err)
}
