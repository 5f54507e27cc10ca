// Package number provides the arbitrary-precision decimal values and
// precision contexts used throughout littlecalc. Values are immutable;
// all rounding arithmetic goes through a Context so that the ambient
// precision is an explicit parameter rather than hidden global state.
package number

import (
	"fmt"

	"github.com/cockroachdb/apd/v3"
)

// Value is an immutable arbitrary-precision decimal. The zero Value is
// usable and equal to zero.
type Value struct {
	d *apd.Decimal
}

var zeroDecimal = apd.New(0, 0)

// Parse converts a decimal literal to a Value without rounding: every
// digit of the literal is preserved regardless of any context precision.
// Non-finite forms (NaN, Infinity) are rejected.
func Parse(s string) (Value, error) {
	d, _, err := apd.NewFromString(s)
	if err != nil {
		return Value{}, fmt.Errorf("invalid decimal literal %q", s)
	}
	if d.Form != apd.Finite {
		return Value{}, fmt.Errorf("non-finite decimal literal %q", s)
	}
	return Value{d: d}, nil
}

// MustParse is Parse for literals known to be valid. It panics on error
// and is intended for constant tables and tests.
func MustParse(s string) Value {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

// FromInt64 returns the Value for i.
func FromInt64(i int64) Value {
	return Value{d: apd.New(i, 0)}
}

func (v Value) dec() *apd.Decimal {
	if v.d == nil {
		return zeroDecimal
	}
	return v.d
}

// String renders the value the way it would be typed back in, using
// scientific notation when the exponent calls for it.
func (v Value) String() string {
	return v.dec().String()
}

// Sign returns -1, 0 or 1 depending on the sign of the value.
func (v Value) Sign() int {
	return v.dec().Sign()
}

// IsZero reports whether the value is numerically zero.
func (v Value) IsZero() bool {
	return v.dec().IsZero()
}

// Cmp compares v and o numerically, returning -1, 0 or 1.
func (v Value) Cmp(o Value) int {
	return v.dec().Cmp(o.dec())
}

// Equal reports numeric equality; 1.0 and 1.00 are equal.
func (v Value) Equal(o Value) bool {
	return v.Cmp(o) == 0
}

// Int64 returns the value as an int64 if it is an exact integer in
// range, otherwise an error.
func (v Value) Int64() (int64, error) {
	i, err := v.dec().Int64()
	if err != nil {
		return 0, fmt.Errorf("%s is not an integer in int64 range", v)
	}
	return i, nil
}
