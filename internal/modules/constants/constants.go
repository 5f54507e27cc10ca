// Package constants provides named mathematical and physical constants.
// pi and e are computed to the ambient precision on every request; the
// physical constants come from the embedded CODATA catalog and carry a
// fixed number of significant digits. Derived electromagnetic constants
// are computed from their defining relations so they stay consistent
// with the catalog.
package constants

import (
	"fmt"
	"strings"
	"sync"

	"github.com/mtimmerkamp/littlecalc/internal/core"
	"github.com/mtimmerkamp/littlecalc/pkg/number"
	"github.com/mtimmerkamp/littlecalc/pkg/number/algo"
)

// ModuleName is the name the module factory is registered under.
const ModuleName = "constants"

const guardDigits = 5

func init() {
	if err := core.RegisterFactory(ModuleName, NewModules); err != nil {
		panic(fmt.Sprintf("failed to register %s module factory: %v", ModuleName, err))
	}
}

// NewModules is the module factory registered under ModuleName.
func NewModules(_ *core.Calculator) ([]*core.Module, error) {
	m, err := New()
	if err != nil {
		return nil, err
	}
	return []*core.Module{m}, nil
}

// New builds the constants module around the default catalog.
func New() (*core.Module, error) {
	cat, err := NewCatalog()
	if err != nil {
		return nil, err
	}

	m := core.NewModule(ModuleName)
	m.MustRegister(
		core.NewOperation("const").Prompt(constOp(cat)),
		core.NewOperation("pi").StackArgs(0, pushPi),
		core.NewOperation("e").StackArgs(0, pushE),
		core.NewOperation("consts").Prompt(listConstants(cat)),
	)
	return m, nil
}

// constOp consumes the next input token as a constant id and pushes the
// constant's value.
func constOp(cat *Catalog) core.PromptFunc {
	return func(_ *core.Module, c *core.Calculator) error {
		id, err := c.NextArg("const")
		if err != nil {
			return err
		}
		v, err := cat.Get(id, c)
		if err != nil {
			return err
		}
		c.Stack().Push(v)
		return nil
	}
}

func pushPi(ctx *number.Context, _ ...number.Value) ([]number.Value, error) {
	v, err := algo.Pi(ctx)
	if err != nil {
		return nil, err
	}
	return []number.Value{v}, nil
}

func pushE(ctx *number.Context, _ ...number.Value) ([]number.Value, error) {
	v, err := algo.E(ctx)
	if err != nil {
		return nil, err
	}
	return []number.Value{v}, nil
}

func listConstants(cat *Catalog) core.PromptFunc {
	return func(_ *core.Module, c *core.Calculator) error {
		var b strings.Builder
		b.WriteString("# Constants\n\n")
		b.WriteString("| id | description |\n")
		b.WriteString("|----|-------------|\n")
		for _, id := range cat.IDs() {
			fmt.Fprintf(&b, "| %s | %s |\n", id, cat.Describe(id))
		}
		c.Output(c.Render(b.String()))
		return nil
	}
}

func registerComputed(cat *Catalog) {
	cat.AddComputed("pi", "ratio of a circle's circumference to its diameter", calcPi)
	cat.AddComputed("e", "Euler's number", calcE)
	cat.AddComputed("mu0", "magnetic constant (vacuum permeability) [N/A^2]", calcMu0)
	cat.AddComputed("eps0", "electric constant (vacuum permittivity) [F/m]", calcEps0)
	cat.AddComputed("Z0", "characteristic impedance of vacuum [Ohm]", calcZ0)
}

func calcPi(_ *Catalog, c *core.Calculator) (number.Value, error) {
	return algo.Pi(c.NumContext())
}

func calcE(_ *Catalog, c *core.Calculator) (number.Value, error) {
	return algo.E(c.NumContext())
}

// mu0At computes 4*pi*1e-7 without rounding back, so callers can keep
// working at guard precision.
func mu0At(ctx *number.Context) (number.Value, error) {
	pi, err := algo.Pi(ctx)
	if err != nil {
		return number.Value{}, err
	}
	return ctx.Mul(pi, number.MustParse("4e-7"))
}

func speedOfLight(cat *Catalog) (number.Value, error) {
	raw, ok := cat.fixed["c0"]
	if !ok {
		return number.Value{}, &UnknownConstantError{ID: "c0"}
	}
	return number.Parse(raw)
}

func calcMu0(_ *Catalog, c *core.Calculator) (number.Value, error) {
	ctx := c.NumContext()
	v, err := mu0At(ctx.WithGuard(guardDigits))
	if err != nil {
		return number.Value{}, err
	}
	return ctx.Round(v)
}

// calcEps0 evaluates 1/(mu0*c0^2), the defining relation of the
// electric constant.
func calcEps0(cat *Catalog, c *core.Calculator) (number.Value, error) {
	ctx := c.NumContext()
	work := ctx.WithGuard(guardDigits)

	mu0, err := mu0At(work)
	if err != nil {
		return number.Value{}, err
	}
	c0, err := speedOfLight(cat)
	if err != nil {
		return number.Value{}, err
	}
	c0sq, err := work.Mul(c0, c0)
	if err != nil {
		return number.Value{}, err
	}
	den, err := work.Mul(mu0, c0sq)
	if err != nil {
		return number.Value{}, err
	}
	v, err := work.Div(number.FromInt64(1), den)
	if err != nil {
		return number.Value{}, err
	}
	return ctx.Round(v)
}

func calcZ0(cat *Catalog, c *core.Calculator) (number.Value, error) {
	ctx := c.NumContext()
	work := ctx.WithGuard(guardDigits)

	mu0, err := mu0At(work)
	if err != nil {
		return number.Value{}, err
	}
	c0, err := speedOfLight(cat)
	if err != nil {
		return number.Value{}, err
	}
	v, err := work.Mul(mu0, c0)
	if err != nil {
		return number.Value{}, err
	}
	return ctx.Round(v)
}

var (
	catalogIDsOnce sync.Once
	catalogIDs     []string
)

// CatalogIDs returns the constant ids of the default catalog, for tab
// completion.
func CatalogIDs() []string {
	catalogIDsOnce.Do(func() {
		cat, err := NewCatalog()
		if err != nil {
			return
		}
		catalogIDs = cat.IDs()
	})
	return catalogIDs
}
