package decimal

import (
	"github.com/mtimmerkamp/littlecalc/internal/core"
	"github.com/mtimmerkamp/littlecalc/pkg/number/algo"
)

// registerTrig adds the trigonometric and hyperbolic operations. All of
// them work in radians and delegate to the algo package.
func registerTrig(m *core.Module) {
	m.MustRegister(
		core.NewOperation("sin").StackArgs(1, core.Unary(algo.Sin)),
		core.NewOperation("cos").StackArgs(1, core.Unary(algo.Cos)),
		core.NewOperation("tan").StackArgs(1, core.Unary(algo.Tan)),
		core.NewOperation("cot").StackArgs(1, core.Unary(algo.Cot)),
		core.NewOperation("asin", "arcsin").StackArgs(1, core.Unary(algo.Asin)),
		core.NewOperation("acos", "arccos").StackArgs(1, core.Unary(algo.Acos)),
		core.NewOperation("atan", "arctan").StackArgs(1, core.Unary(algo.Atan)),
		core.NewOperation("acot", "arccot").StackArgs(1, core.Unary(algo.Acot)),

		core.NewOperation("sinh").StackArgs(1, core.Unary(algo.Sinh)),
		core.NewOperation("cosh").StackArgs(1, core.Unary(algo.Cosh)),
		core.NewOperation("tanh").StackArgs(1, core.Unary(algo.Tanh)),
		core.NewOperation("coth").StackArgs(1, core.Unary(algo.Coth)),
		core.NewOperation("asinh", "arsinh").StackArgs(1, core.Unary(algo.Asinh)),
		core.NewOperation("acosh", "arcosh").StackArgs(1, core.Unary(algo.Acosh)),
		core.NewOperation("atanh", "artanh").StackArgs(1, core.Unary(algo.Atanh)),
		core.NewOperation("acoth", "arcoth").StackArgs(1, core.Unary(algo.Acoth)),
	)
}
