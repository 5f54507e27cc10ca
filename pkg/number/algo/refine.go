package algo

import (
	"github.com/mtimmerkamp/littlecalc/pkg/number"
)

// refine evaluates fn at increasing working precision until two
// consecutive results agree after rounding to the target precision, and
// returns that agreed result. fn always runs at least twice. Working
// precision starts at target plus guard digits and doubles per round up
// to number.MaxPrecision; two evaluations at the cap are identical, so
// the loop terminates.
func refine(ctx *number.Context, fn func(*number.Context) (number.Value, error)) (number.Value, error) {
	work := ctx.Precision() + guardDigits
	if work > number.MaxPrecision {
		work = number.MaxPrecision
	}

	var prev number.Value
	for round := 0; ; round++ {
		v, err := fn(number.NewContext(work))
		if err != nil {
			return number.Value{}, err
		}
		cur, err := ctx.Round(v)
		if err != nil {
			return number.Value{}, err
		}
		if round > 0 && cur.Equal(prev) {
			return cur, nil
		}
		prev = cur

		if work >= number.MaxPrecision/2 {
			work = number.MaxPrecision
		} else {
			work *= 2
		}
	}
}
