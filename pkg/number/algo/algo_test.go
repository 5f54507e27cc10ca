package algo

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mtimmerkamp/littlecalc/pkg/number"
)

// roundTo re-rounds a computed value to prec significant digits so the
// comparison is insensitive to the last guard digit.
func roundTo(t *testing.T, v number.Value, prec uint32) string {
	t.Helper()
	r, err := number.NewContext(prec).Round(v)
	require.NoError(t, err)
	return r.String()
}

func TestPiKnownDigits(t *testing.T) {
	tests := []struct {
		prec uint32
		want string
	}{
		{10, "3.141592654"},
		{30, "3.14159265358979323846264338328"},
	}

	for _, tt := range tests {
		resetPiCache()
		v, err := Pi(number.NewContext(tt.prec))
		require.NoError(t, err)
		assert.Equal(t, tt.want, v.String(), "precision %d", tt.prec)
	}
}

func TestPiCachePerPrecision(t *testing.T) {
	resetPiCache()

	ctx := number.NewContext(28)
	first, err := Pi(ctx)
	require.NoError(t, err)
	second, err := Pi(ctx)
	require.NoError(t, err)
	assert.Equal(t, first.String(), second.String())

	piCache.Lock()
	assert.Len(t, piCache.values, 1)
	piCache.Unlock()

	_, err = Pi(number.NewContext(10))
	require.NoError(t, err)

	piCache.Lock()
	assert.Len(t, piCache.values, 2)
	piCache.Unlock()
}

func TestEKnownDigits(t *testing.T) {
	tests := []struct {
		prec uint32
		want string
	}{
		{10, "2.718281828"},
		{30, "2.71828182845904523536028747135"},
	}

	for _, tt := range tests {
		v, err := E(number.NewContext(tt.prec))
		require.NoError(t, err)
		assert.Equal(t, tt.want, v.String(), "precision %d", tt.prec)
	}
}

func TestUnaryFunctions(t *testing.T) {
	ctx := number.NewContext(25)

	tests := []struct {
		name string
		fn   func(*number.Context, number.Value) (number.Value, error)
		arg  string
		want string
	}{
		{"sin", Sin, "1", "0.84147098480789650665"},
		{"sin at zero", Sin, "0", "0"},
		{"cos", Cos, "1", "0.54030230586813971740"},
		{"cos at zero", Cos, "0", "1"},
		{"tan", Tan, "1", "1.5574077246549022305"},
		{"atan", Atan, "1", "0.78539816339744830962"},
		{"atan at zero", Atan, "0", "0"},
		{"asin", Asin, "0.5", "0.52359877559829887308"},
		{"acos", Acos, "0.5", "1.0471975511965977462"},
		{"acot", Acot, "1", "0.78539816339744830962"},
		{"sinh", Sinh, "1", "1.1752011936438014569"},
		{"cosh", Cosh, "1", "1.5430806348152437785"},
		{"tanh", Tanh, "1", "0.76159415595576488812"},
		{"coth", Coth, "1", "1.3130352854993313036"},
		{"asinh", Asinh, "1", "0.88137358701954302523"},
		{"asinh negative", Asinh, "-1", "-0.88137358701954302523"},
		{"acosh", Acosh, "2", "1.3169578969248167086"},
		{"atanh", Atanh, "0.5", "0.54930614433405484570"},
		{"acoth", Acoth, "2", "0.54930614433405484570"},
		{"ln", Ln, "2", "0.69314718055994530942"},
		{"log10", Log10, "2", "0.30102999566398119521"},
		{"exp", Exp, "2", "7.3890560989306502272"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := tt.fn(ctx, number.MustParse(tt.arg))
			require.NoError(t, err)
			assert.Equal(t, tt.want, roundTo(t, v, 20))
		})
	}
}

func TestDomainViolations(t *testing.T) {
	ctx := number.NewContext(25)

	tests := []struct {
		name string
		fn   func(*number.Context, number.Value) (number.Value, error)
		arg  string
	}{
		{"asin above 1", Asin, "2"},
		{"asin below -1", Asin, "-1.5"},
		{"acos above 1", Acos, "2"},
		{"acos below -1", Acos, "-2"},
		{"cot at zero", Cot, "0"},
		{"coth at zero", Coth, "0"},
		{"acosh below 1", Acosh, "0.5"},
		{"atanh at 1", Atanh, "1"},
		{"atanh at -1", Atanh, "-1"},
		{"acoth at 1", Acoth, "1"},
		{"acoth inside unit interval", Acoth, "0.5"},
		{"ln of zero", Ln, "0"},
		{"log10 of negative", Log10, "-3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.fn(ctx, number.MustParse(tt.arg))
			require.Error(t, err)
			var domainErr *number.DomainError
			assert.True(t, errors.As(err, &domainErr), "expected DomainError, got %v", err)
		})
	}
}

func TestAsinEdges(t *testing.T) {
	ctx := number.NewContext(20)

	v, err := Asin(ctx, number.FromInt64(1))
	require.NoError(t, err)
	assert.Equal(t, "1.5707963267948966192", v.String())

	v, err = Asin(ctx, number.FromInt64(-1))
	require.NoError(t, err)
	assert.Equal(t, "-1.5707963267948966192", v.String())

	v, err = Acos(ctx, number.FromInt64(1))
	require.NoError(t, err)
	assert.True(t, v.IsZero())

	pi, err := Pi(ctx)
	require.NoError(t, err)
	v, err = Acos(ctx, number.FromInt64(-1))
	require.NoError(t, err)
	assert.True(t, v.Equal(pi))
}

func TestSinAtHalfPi(t *testing.T) {
	ctx := number.NewContext(28)
	pi, err := Pi(ctx)
	require.NoError(t, err)
	half, err := ctx.Div(pi, number.FromInt64(2))
	require.NoError(t, err)

	v, err := Sin(ctx, half)
	require.NoError(t, err)
	assert.True(t, v.Equal(one), "sin(pi/2) = %s", v)
}

func TestRangeReduction(t *testing.T) {
	ctx := number.NewContext(25)

	pi, err := Pi(ctx)
	require.NoError(t, err)
	twoPi, err := ctx.Mul(pi, two)
	require.NoError(t, err)
	shifted, err := ctx.Add(one, twoPi)
	require.NoError(t, err)

	direct, err := Sin(ctx, one)
	require.NoError(t, err)
	wrapped, err := Sin(ctx, shifted)
	require.NoError(t, err)
	assert.Equal(t, roundTo(t, direct, 15), roundTo(t, wrapped, 15))

	// negative arguments reduce into [0, 2*pi) as well
	v, err := Sin(ctx, number.FromInt64(-100))
	require.NoError(t, err)
	assert.Equal(t, "0.506365641110", roundTo(t, v, 12))

	v, err = Sin(ctx, number.FromInt64(100))
	require.NoError(t, err)
	assert.Equal(t, "-0.506365641110", roundTo(t, v, 12))
}

func TestTanAtQuarterPi(t *testing.T) {
	ctx := number.NewContext(20)
	pi, err := Pi(ctx)
	require.NoError(t, err)
	quarterPi, err := ctx.Div(pi, four)
	require.NoError(t, err)

	v, err := Tan(ctx, quarterPi)
	require.NoError(t, err)
	r, err := number.NewContext(15).Round(v)
	require.NoError(t, err)
	assert.True(t, r.Equal(one), "tan(pi/4) = %s", v)
}

func TestRefineRunsAtLeastTwice(t *testing.T) {
	ctx := number.NewContext(10)

	calls := 0
	v, err := refine(ctx, func(w *number.Context) (number.Value, error) {
		calls++
		return w.Div(one, number.FromInt64(3))
	})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, calls, 2)
	assert.Equal(t, "0.3333333333", v.String())
}

func TestRefinePropagatesErrors(t *testing.T) {
	ctx := number.NewContext(10)

	wantErr := number.NewDomainError("tan", "tangent undefined at odd multiples of pi/2")
	_, err := refine(ctx, func(w *number.Context) (number.Value, error) {
		return number.Value{}, wantErr
	})
	require.Error(t, err)
	var domainErr *number.DomainError
	assert.True(t, errors.As(err, &domainErr))
}

func TestRoot(t *testing.T) {
	ctx := number.NewContext(28)

	tests := []struct {
		name string
		n    string
		x    string
		want string
	}{
		{"cube root", "3", "27", "3"},
		{"cube root of negative", "3", "-27", "-3"},
		{"fractional index", "0.5", "4", "16"},
		{"negative index", "-1", "2", "0.5"},
		{"root of zero", "2", "0", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Root(ctx, number.MustParse(tt.n), number.MustParse(tt.x))
			require.NoError(t, err)
			assert.True(t, v.Equal(number.MustParse(tt.want)), "root(%s, %s) = %s", tt.n, tt.x, v)
		})
	}

	for _, tt := range []struct {
		name string
		n    string
		x    string
	}{
		{"even root of negative", "2", "-4"},
		{"non-integer root of negative", "0.5", "-4"},
		{"zeroth root", "0", "5"},
		{"negative root of zero", "-2", "0"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Root(ctx, number.MustParse(tt.n), number.MustParse(tt.x))
			require.Error(t, err)
			var domainErr *number.DomainError
			assert.True(t, errors.As(err, &domainErr), "expected DomainError, got %v", err)
		})
	}
}

func TestLogAndPow(t *testing.T) {
	ctx := number.NewContext(28)

	v, err := Log(ctx, number.FromInt64(2), number.FromInt64(8))
	require.NoError(t, err)
	assert.True(t, v.Equal(number.FromInt64(3)), "log_2(8) = %s", v)

	v, err = Pow(ctx, number.FromInt64(2), number.FromInt64(10))
	require.NoError(t, err)
	assert.True(t, v.Equal(number.FromInt64(1024)))

	_, err = Log(ctx, number.FromInt64(1), number.FromInt64(8))
	assert.Error(t, err)
	_, err = Log(ctx, number.FromInt64(-2), number.FromInt64(8))
	assert.Error(t, err)
	_, err = Log(ctx, number.FromInt64(2), number.FromInt64(0))
	assert.Error(t, err)
}

func TestAlgorithmsLeaveContextPrecisionUntouched(t *testing.T) {
	ctx := number.NewContext(12)

	_, err := Pi(ctx)
	require.NoError(t, err)
	_, err = Sin(ctx, one)
	require.NoError(t, err)
	_, err = Tan(ctx, one)
	require.NoError(t, err)
	_, err = E(ctx)
	require.NoError(t, err)

	assert.Equal(t, uint32(12), ctx.Precision())
}
