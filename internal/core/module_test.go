package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mtimmerkamp/littlecalc/pkg/number"
)

func noopOperation(name string, aliases ...string) *Operation {
	return NewOperation(name, aliases...).Prompt(func(_ *Module, _ *Calculator) error { return nil })
}

func TestModuleResolve(t *testing.T) {
	m := NewModule("test")
	add := noopOperation("add", "+")
	require.NoError(t, m.Register(add))

	op, err := m.Resolve("add")
	require.NoError(t, err)
	assert.Same(t, add, op)

	op, err = m.Resolve("+")
	require.NoError(t, err)
	assert.Same(t, add, op)

	_, err = m.Resolve("missing")
	var noSuchOp *NoSuchOperationError
	require.True(t, errors.As(err, &noSuchOp))
	assert.Equal(t, "missing", noSuchOp.Name)

	assert.True(t, m.Has("add"))
	assert.True(t, m.Has("+"))
	assert.False(t, m.Has("missing"))
}

func TestModuleAliasChains(t *testing.T) {
	m := NewModule("test")
	add := noopOperation("add")
	require.NoError(t, m.Register(add))

	// aliases may be registered before their target exists; once the
	// chain completes, both resolve to the canonical operation
	require.NoError(t, m.Alias("x", "y"))
	require.NoError(t, m.Alias("y", "add"))

	op, err := m.Resolve("x")
	require.NoError(t, err)
	assert.Same(t, add, op)

	op, err = m.Resolve("y")
	require.NoError(t, err)
	assert.Same(t, add, op)
}

func TestModuleAliasRejections(t *testing.T) {
	tests := []struct {
		name  string
		setup func(m *Module) error
	}{
		{"self reference", func(m *Module) error {
			return m.Alias("x", "x")
		}},
		{"two-cycle", func(m *Module) error {
			if err := m.Alias("x", "y"); err != nil {
				return err
			}
			return m.Alias("y", "x")
		}},
		{"three-cycle", func(m *Module) error {
			if err := m.Alias("a", "b"); err != nil {
				return err
			}
			if err := m.Alias("b", "c"); err != nil {
				return err
			}
			return m.Alias("c", "a")
		}},
		{"shadows operation", func(m *Module) error {
			return m.Alias("add", "whatever")
		}},
		{"duplicate alias", func(m *Module) error {
			if err := m.Alias("x", "add"); err != nil {
				return err
			}
			return m.Alias("x", "add")
		}},
		{"empty alias", func(m *Module) error {
			return m.Alias("", "add")
		}},
		{"empty target", func(m *Module) error {
			return m.Alias("x", "")
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewModule("test")
			require.NoError(t, m.Register(noopOperation("add")))

			err := tt.setup(m)
			require.Error(t, err)
			var aliasingErr *AliasingError
			assert.True(t, errors.As(err, &aliasingErr), "expected AliasingError, got %v", err)
		})
	}
}

func TestModuleRegisterRejectsDuplicates(t *testing.T) {
	m := NewModule("test")
	require.NoError(t, m.Register(noopOperation("add", "+")))

	assert.Error(t, m.Register(noopOperation("add")))
	assert.Error(t, m.Register(noopOperation("+")), "an operation must not take an alias's name")
	assert.Error(t, m.Register(NewOperation("")))
}

func TestModuleNames(t *testing.T) {
	m := NewModule("test")
	require.NoError(t, m.Register(
		noopOperation("mul", "*"),
		noopOperation("add", "+", "plus"),
	))

	assert.Equal(t, []string{"add", "mul"}, m.OperationNames())
	assert.Equal(t, []string{"+", "plus"}, m.AliasesFor("add"))
	assert.Empty(t, m.AliasesFor("missing"))
	assert.Equal(t, []string{"*", "+", "add", "mul", "plus"}, m.AllNames())
}

func TestModuleLoadExclusivity(t *testing.T) {
	m := NewModule("solo")
	require.NoError(t, m.Register(noopOperation("nop")))

	c1 := New()
	c2 := New()

	require.NoError(t, c1.LoadModule(m))
	assert.True(t, m.IsLoaded())

	err := c2.LoadModule(m)
	require.Error(t, err)
	var loadErr *ModuleLoadError
	assert.True(t, errors.As(err, &loadErr))

	err = c1.LoadModule(m)
	assert.Error(t, err, "double load into the same calculator is an error")

	require.NoError(t, c1.UnloadModule(m))
	assert.False(t, m.IsLoaded())
	require.NoError(t, c2.LoadModule(m))
}

func TestModuleLoadRequiresPromptVariants(t *testing.T) {
	m := NewModule("broken")
	require.NoError(t, m.Register(NewOperation("orphan").Pure(
		func(ctx *number.Context, args ...number.Value) ([]number.Value, error) { return nil, nil },
	)))

	err := New().LoadModule(m)
	require.Error(t, err)
	var loadErr *ModuleLoadError
	require.True(t, errors.As(err, &loadErr))
	var variantErr *VariantError
	assert.True(t, errors.As(err, &variantErr))
	assert.False(t, m.IsLoaded())
}

func TestModuleLoadHookFailureLeavesModuleUnbound(t *testing.T) {
	hookErr := errors.New("converter clash")
	m := NewModule("hooked", WithLoadHook(func(_ *Calculator) error { return hookErr }))

	err := New().LoadModule(m)
	require.Error(t, err)
	assert.True(t, errors.Is(err, hookErr))
	assert.False(t, m.IsLoaded())
}

func TestModuleHooksRun(t *testing.T) {
	loaded, unloaded := false, false
	m := NewModule("hooked",
		WithLoadHook(func(c *Calculator) error {
			loaded = true
			c.RegisterConverter(plainConverter{})
			return nil
		}),
		WithUnloadHook(func(c *Calculator) error {
			unloaded = true
			c.DeregisterConverter(plainConverter{})
			return nil
		}),
	)

	c := New()
	require.NoError(t, c.LoadModule(m))
	assert.True(t, loaded)
	_, err := c.ToNumeric("12")
	assert.NoError(t, err, "load hook must have registered the converter")

	require.NoError(t, c.UnloadModule(m))
	assert.True(t, unloaded)
	_, err = c.ToNumeric("12")
	assert.Error(t, err, "unload hook must have removed the converter")
}

func TestModuleUnloadWrongCalculator(t *testing.T) {
	m := NewModule("solo")
	c1 := New()
	c2 := New()

	require.NoError(t, c1.LoadModule(m))
	assert.Error(t, m.Unload(c2))
	assert.True(t, m.IsLoaded())
}
