package core

import (
	"fmt"

	"github.com/mtimmerkamp/littlecalc/pkg/number"
)

// PromptFunc is the interactive calling convention: the operation takes
// its arguments from the calculator's stack and token stream and pushes
// its results itself.
type PromptFunc func(m *Module, c *Calculator) error

// PureFunc is the plain calling convention: values in, values out, with
// the precision context as the only environment. Arguments arrive
// topmost first; results are pushed in slice order, so the last result
// ends up on top.
type PureFunc func(ctx *number.Context, args ...number.Value) ([]number.Value, error)

// BoundFunc is a pure-style function pre-bound to a module/calculator
// pair, usable by other operations without further dispatch.
type BoundFunc func(args ...number.Value) ([]number.Value, error)

// BindFunc builds a BoundFunc for a concrete module/calculator pair.
type BindFunc func(m *Module, c *Calculator) BoundFunc

// Operation is a named calculator operation with up to three calling
// conventions. Operations are built fluently:
//
//	NewOperation("add", "+").StackArgs(2, core.Binary(addFn))
//
// Each convention may be set explicitly; missing ones are derived where
// possible (see Bind). Every operation needs at least the prompt
// variant by the time its module is loaded.
type Operation struct {
	name    string
	aliases []string
	prompt  PromptFunc
	pure    PureFunc
	bind    BindFunc
}

// NewOperation creates an operation with a canonical name and optional
// aliases. The aliases are registered when the operation is added to a
// module.
func NewOperation(name string, aliases ...string) *Operation {
	return &Operation{name: name, aliases: aliases}
}

// Name returns the canonical operation name.
func (op *Operation) Name() string {
	return op.name
}

// Aliases returns the alias names the operation was created with.
func (op *Operation) Aliases() []string {
	out := make([]string, len(op.aliases))
	copy(out, op.aliases)
	return out
}

// Prompt sets the interactive variant.
func (op *Operation) Prompt(fn PromptFunc) *Operation {
	op.prompt = fn
	return op
}

// Pure sets the plain-function variant without deriving a prompt.
func (op *Operation) Pure(fn PureFunc) *Operation {
	op.pure = fn
	return op
}

// Bound sets a custom binding used instead of the derived ones.
func (op *Operation) Bound(fn BindFunc) *Operation {
	op.bind = fn
	return op
}

// StackArgs sets fn as the pure variant and derives the prompt variant
// from it: pop argc values (topmost first), call fn at the ambient
// precision, push all results. The pop is atomic; on underflow nothing
// is consumed. If fn fails after the pop, the arguments stay popped.
func (op *Operation) StackArgs(argc int, fn PureFunc) *Operation {
	op.pure = fn
	op.prompt = func(_ *Module, c *Calculator) error {
		args, err := c.Stack().PopN(argc)
		if err != nil {
			return err
		}
		results, err := fn(c.NumContext(), args...)
		if err != nil {
			return err
		}
		c.Stack().Push(results...)
		return nil
	}
	return op
}

// HasPrompt reports whether the interactive variant is available.
func (op *Operation) HasPrompt() bool {
	return op.prompt != nil
}

// Invoke runs the prompt variant.
func (op *Operation) Invoke(m *Module, c *Calculator) error {
	if op.prompt == nil {
		return &VariantError{Operation: op.name, Variant: VariantPrompt}
	}
	return op.prompt(m, c)
}

// Call runs the pure variant at the given precision.
func (op *Operation) Call(ctx *number.Context, args ...number.Value) ([]number.Value, error) {
	if op.pure == nil {
		return nil, &VariantError{Operation: op.name, Variant: VariantPure}
	}
	return op.pure(ctx, args...)
}

// Bind returns the bound variant for the given module/calculator pair.
// A custom binding wins; otherwise the pure variant is closed over the
// calculator's precision context; as a last resort a prompt variant
// that needs no arguments is wrapped.
func (op *Operation) Bind(m *Module, c *Calculator) (BoundFunc, error) {
	switch {
	case op.bind != nil:
		return op.bind(m, c), nil
	case op.pure != nil:
		return func(args ...number.Value) ([]number.Value, error) {
			return op.pure(c.NumContext(), args...)
		}, nil
	case op.prompt != nil:
		return func(args ...number.Value) ([]number.Value, error) {
			if len(args) != 0 {
				return nil, fmt.Errorf("operation %q takes no direct arguments", op.name)
			}
			return nil, op.prompt(m, c)
		}, nil
	default:
		return nil, &VariantError{Operation: op.name, Variant: VariantBound}
	}
}

// Unary adapts a one-argument function to the pure convention.
func Unary(fn func(ctx *number.Context, x number.Value) (number.Value, error)) PureFunc {
	return func(ctx *number.Context, args ...number.Value) ([]number.Value, error) {
		if len(args) != 1 {
			return nil, fmt.Errorf("expected 1 argument, got %d", len(args))
		}
		v, err := fn(ctx, args[0])
		if err != nil {
			return nil, err
		}
		return []number.Value{v}, nil
	}
}

// Binary adapts a two-argument function to the pure convention. x is
// the value that was on top of the stack, y the one below it.
func Binary(fn func(ctx *number.Context, x, y number.Value) (number.Value, error)) PureFunc {
	return func(ctx *number.Context, args ...number.Value) ([]number.Value, error) {
		if len(args) != 2 {
			return nil, fmt.Errorf("expected 2 arguments, got %d", len(args))
		}
		v, err := fn(ctx, args[0], args[1])
		if err != nil {
			return nil, err
		}
		return []number.Value{v}, nil
	}
}
