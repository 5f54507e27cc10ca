package core

import (
	"errors"
	"fmt"
	"sort"
)

// Module bundles related operations and their aliases under a name. A
// module can be loaded into at most one calculator at a time; loading
// and unloading run optional hooks, which modules use to register and
// deregister numeric converters.
type Module struct {
	name     string
	ops      map[string]*Operation
	aliases  map[string]string // alias -> canonical operation name
	bound    *Calculator
	onLoad   func(*Calculator) error
	onUnload func(*Calculator) error
}

// ModuleOption configures a module at construction time.
type ModuleOption func(*Module)

// WithLoadHook runs fn after the module is bound to a calculator. A
// hook error aborts the load and leaves the module unbound.
func WithLoadHook(fn func(*Calculator) error) ModuleOption {
	return func(m *Module) { m.onLoad = fn }
}

// WithUnloadHook runs fn when the module is unloaded.
func WithUnloadHook(fn func(*Calculator) error) ModuleOption {
	return func(m *Module) { m.onUnload = fn }
}

// NewModule creates an empty module.
func NewModule(name string, opts ...ModuleOption) *Module {
	m := &Module{
		name:    name,
		ops:     make(map[string]*Operation),
		aliases: make(map[string]string),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Name returns the module name.
func (m *Module) Name() string {
	return m.name
}

// IsLoaded reports whether the module is currently bound to a
// calculator.
func (m *Module) IsLoaded() bool {
	return m.bound != nil
}

// Register adds operations to the module, including their aliases.
func (m *Module) Register(ops ...*Operation) error {
	for _, op := range ops {
		if op.name == "" {
			return fmt.Errorf("operation with empty name in module %q", m.name)
		}
		if _, ok := m.ops[op.name]; ok {
			return fmt.Errorf("operation %q already registered in module %q", op.name, m.name)
		}
		if _, ok := m.aliases[op.name]; ok {
			return fmt.Errorf("operation %q conflicts with an alias in module %q", op.name, m.name)
		}
		m.ops[op.name] = op
		for _, alias := range op.aliases {
			if err := m.Alias(alias, op.name); err != nil {
				return err
			}
		}
	}
	return nil
}

// MustRegister is Register for static operation tables; it panics on
// registration errors.
func (m *Module) MustRegister(ops ...*Operation) {
	if err := m.Register(ops...); err != nil {
		panic(fmt.Sprintf("failed to register operations: %v", err))
	}
}

// Alias registers an alias for target. Targets are resolved through
// existing aliases immediately, so lookups never chase chains; aliases
// that named this alias before it existed are re-pointed to the same
// canonical name. Cycles, self-references and aliases that would shadow
// an operation are rejected.
func (m *Module) Alias(alias, target string) error {
	if alias == "" || target == "" {
		return &AliasingError{Module: m.name, Alias: alias, Target: target, Reason: "empty name"}
	}
	if alias == target {
		return &AliasingError{Module: m.name, Alias: alias, Target: target, Reason: "alias references itself"}
	}
	if _, ok := m.ops[alias]; ok {
		return &AliasingError{Module: m.name, Alias: alias, Target: target, Reason: "would shadow an operation"}
	}
	if _, ok := m.aliases[alias]; ok {
		return &AliasingError{Module: m.name, Alias: alias, Target: target, Reason: "alias already registered"}
	}

	canonical := target
	seen := map[string]bool{alias: true}
	for {
		if seen[canonical] {
			return &AliasingError{Module: m.name, Alias: alias, Target: target, Reason: "aliasing cycle"}
		}
		seen[canonical] = true
		next, ok := m.aliases[canonical]
		if !ok {
			break
		}
		canonical = next
	}

	m.aliases[alias] = canonical
	for a, t := range m.aliases {
		if t == alias {
			m.aliases[a] = canonical
		}
	}
	return nil
}

// Resolve returns the operation registered under name, following at
// most one alias indirection.
func (m *Module) Resolve(name string) (*Operation, error) {
	if op, ok := m.ops[name]; ok {
		return op, nil
	}
	if canonical, ok := m.aliases[name]; ok {
		if op, ok := m.ops[canonical]; ok {
			return op, nil
		}
	}
	return nil, &NoSuchOperationError{Name: name}
}

// Has reports whether name resolves to an operation in this module.
func (m *Module) Has(name string) bool {
	_, err := m.Resolve(name)
	return err == nil
}

// Invoke resolves name and runs its prompt variant.
func (m *Module) Invoke(name string, c *Calculator) error {
	op, err := m.Resolve(name)
	if err != nil {
		return err
	}
	return op.Invoke(m, c)
}

// OperationNames returns the canonical operation names, sorted.
func (m *Module) OperationNames() []string {
	names := make([]string, 0, len(m.ops))
	for name := range m.ops {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// AliasesFor returns the aliases resolving to the given canonical
// operation name, sorted.
func (m *Module) AliasesFor(name string) []string {
	var out []string
	for alias, canonical := range m.aliases {
		if canonical == name {
			out = append(out, alias)
		}
	}
	sort.Strings(out)
	return out
}

// AllNames returns operation names and aliases together, sorted.
func (m *Module) AllNames() []string {
	names := make([]string, 0, len(m.ops)+len(m.aliases))
	for name := range m.ops {
		names = append(names, name)
	}
	for alias := range m.aliases {
		names = append(names, alias)
	}
	sort.Strings(names)
	return names
}

// Load binds the module to a calculator and runs the load hook. A
// module can be bound to one calculator at a time, and every operation
// must provide the prompt variant.
func (m *Module) Load(c *Calculator) error {
	if c == nil {
		return &ModuleLoadError{Module: m.name, Err: errors.New("nil calculator")}
	}
	if m.bound == c {
		return &ModuleLoadError{Module: m.name, Err: errors.New("already loaded by this calculator")}
	}
	if m.bound != nil {
		return &ModuleLoadError{Module: m.name, Err: errors.New("already loaded by another calculator")}
	}
	for name, op := range m.ops {
		if !op.HasPrompt() {
			return &ModuleLoadError{Module: m.name, Err: &VariantError{Operation: name, Variant: VariantPrompt}}
		}
	}
	m.bound = c
	if m.onLoad != nil {
		if err := m.onLoad(c); err != nil {
			m.bound = nil
			return &ModuleLoadError{Module: m.name, Err: err}
		}
	}
	return nil
}

// Unload releases the module from the calculator it is bound to and
// runs the unload hook. The module is unbound even if the hook fails.
func (m *Module) Unload(c *Calculator) error {
	if m.bound != c {
		return fmt.Errorf("module %q is not loaded by this calculator", m.name)
	}
	m.bound = nil
	if m.onUnload != nil {
		return m.onUnload(c)
	}
	return nil
}
