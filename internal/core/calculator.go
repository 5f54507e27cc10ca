package core

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/mtimmerkamp/littlecalc/internal/logger"
	"github.com/mtimmerkamp/littlecalc/pkg/number"
)

// Calculator is the RPN evaluation engine. It owns the stack, the named
// value storage, the loaded modules, the numeric converter chain and
// the ambient precision context. A calculator is not safe for
// concurrent use; all mutation happens from the dispatch loop and the
// operations it invokes.
type Calculator struct {
	stack      *Stack
	storage    map[string]number.Value
	stream     *TokenStream
	modules    []*Module
	converters []NumericConverter
	numctx     *number.Context
	out        OutputWriter
	renderer   Renderer
	strict     bool
	// Custom styled logger
	log *log.Logger
}

// Option configures a calculator at construction time.
type Option func(*Calculator)

// WithPrecision sets the initial ambient precision in significant
// digits.
func WithPrecision(prec uint32) Option {
	return func(c *Calculator) { c.numctx = number.NewContext(prec) }
}

// WithOutput directs user-visible output to w instead of stdout.
func WithOutput(w OutputWriter) Option {
	return func(c *Calculator) { c.out = w }
}

// WithRenderer sets the markdown renderer used for listings and help
// text.
func WithRenderer(r Renderer) Option {
	return func(c *Calculator) { c.renderer = r }
}

// WithStrict makes evaluation stop at the first unknown token instead
// of skipping it.
func WithStrict(strict bool) Option {
	return func(c *Calculator) { c.strict = strict }
}

// New creates a calculator with an empty stack and no modules loaded.
func New(opts ...Option) *Calculator {
	c := &Calculator{
		stack:   NewStack(),
		storage: make(map[string]number.Value),
		numctx:  number.NewContext(number.DefaultPrecision),
		out:     WriterSink(os.Stdout),
		log:     logger.NewStyledLogger("Dispatch"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Stack returns the calculator's value stack.
func (c *Calculator) Stack() *Stack {
	return c.stack
}

// NumContext returns the ambient precision context shared by all
// operations.
func (c *Calculator) NumContext() *number.Context {
	return c.numctx
}

// Precision returns the ambient precision in significant digits.
func (c *Calculator) Precision() uint32 {
	return c.numctx.Precision()
}

// SetPrecision changes the ambient precision.
func (c *Calculator) SetPrecision(prec uint32) error {
	return c.numctx.SetPrecision(prec)
}

// Strict reports whether unknown tokens abort evaluation.
func (c *Calculator) Strict() bool {
	return c.strict
}

// Stream returns the token stream of the line currently being
// evaluated, or nil outside of evaluation.
func (c *Calculator) Stream() *TokenStream {
	return c.stream
}

// NextArg consumes the next token from the input stream as an argument
// for op.
func (c *Calculator) NextArg(op string) (string, error) {
	if c.stream == nil {
		return "", &MissingArgumentError{Operation: op}
	}
	tok, ok := c.stream.Pop()
	if !ok {
		return "", &MissingArgumentError{Operation: op}
	}
	return tok, nil
}

// Store saves a value under a name.
func (c *Calculator) Store(name string, v number.Value) {
	c.storage[name] = v
}

// Recall returns the value stored under name.
func (c *Calculator) Recall(name string) (number.Value, error) {
	v, ok := c.storage[name]
	if !ok {
		return number.Value{}, fmt.Errorf("nothing stored under %q", name)
	}
	return v, nil
}

// Variables returns the names of all stored values, sorted.
func (c *Calculator) Variables() []string {
	names := make([]string, 0, len(c.storage))
	for name := range c.storage {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ClearStorage removes all stored values.
func (c *Calculator) ClearStorage() {
	c.storage = make(map[string]number.Value)
}

// RegisterConverter appends a numeric converter to the chain.
func (c *Calculator) RegisterConverter(cv NumericConverter) {
	c.converters = append(c.converters, cv)
}

// DeregisterConverter removes a previously registered converter.
func (c *Calculator) DeregisterConverter(cv NumericConverter) {
	for i, registered := range c.converters {
		if registered == cv {
			c.converters = append(c.converters[:i], c.converters[i+1:]...)
			return
		}
	}
}

// ToNumeric parses a token through the converter chain.
func (c *Calculator) ToNumeric(token string) (number.Value, error) {
	for _, cv := range c.converters {
		if cv.Recognizes(token) {
			v, err := cv.Parse(token)
			if err != nil {
				return number.Value{}, &NotNumericError{Token: token}
			}
			return v, nil
		}
	}
	return number.Value{}, &NotNumericError{Token: token}
}

func (c *Calculator) converterFor(token string) NumericConverter {
	for _, cv := range c.converters {
		if cv.Recognizes(token) {
			return cv
		}
	}
	return nil
}

func (c *Calculator) moduleFor(token string) *Module {
	for _, m := range c.modules {
		if m.Has(token) {
			return m
		}
	}
	return nil
}

// LoadModule binds m to this calculator and adds it to the dispatch
// order.
func (c *Calculator) LoadModule(m *Module) error {
	if err := m.Load(c); err != nil {
		return err
	}
	c.modules = append(c.modules, m)
	c.log.Debug("module loaded", "module", m.Name())
	return nil
}

// LoadModuleByName builds the modules registered under name in the
// global factory registry and loads them all.
func (c *Calculator) LoadModuleByName(name string) error {
	factory, ok := GlobalRegistry.Lookup(name)
	if !ok {
		return &ModuleLoadError{Module: name, Err: errors.New("no module factory registered under this name")}
	}
	mods, err := factory(c)
	if err != nil {
		return &ModuleLoadError{Module: name, Err: err}
	}
	for _, m := range mods {
		if err := c.LoadModule(m); err != nil {
			return err
		}
	}
	return nil
}

// UnloadModule removes m from the dispatch order and unbinds it. The
// module is removed from the loaded list even if its unload hook fails.
func (c *Calculator) UnloadModule(m *Module) error {
	idx := -1
	for i, loaded := range c.modules {
		if loaded == m {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("module %q is not loaded", m.Name())
	}
	c.modules = append(c.modules[:idx], c.modules[idx+1:]...)
	c.log.Debug("module unloaded", "module", m.Name())
	return m.Unload(c)
}

// UnloadModuleByName unloads the first loaded module with the given
// name.
func (c *Calculator) UnloadModuleByName(name string) error {
	m, ok := c.ModuleByName(name)
	if !ok {
		return fmt.Errorf("module %q is not loaded", name)
	}
	return c.UnloadModule(m)
}

// ModuleByName returns the loaded module with the given name.
func (c *Calculator) ModuleByName(name string) (*Module, bool) {
	for _, m := range c.modules {
		if m.Name() == name {
			return m, true
		}
	}
	return nil, false
}

// Modules returns the loaded modules in dispatch order.
func (c *Calculator) Modules() []*Module {
	out := make([]*Module, len(c.modules))
	copy(out, c.modules)
	return out
}

// OperationNames returns every operation name and alias reachable
// through the loaded modules, sorted and de-duplicated.
func (c *Calculator) OperationNames() []string {
	seen := make(map[string]bool)
	var names []string
	for _, m := range c.modules {
		for _, name := range m.AllNames() {
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	sort.Strings(names)
	return names
}

// Callable resolves name through the loaded modules and returns its
// bound variant, for operations that want to reuse other operations.
func (c *Calculator) Callable(name string) (BoundFunc, error) {
	for _, m := range c.modules {
		if m.Has(name) {
			op, err := m.Resolve(name)
			if err != nil {
				return nil, err
			}
			return op.Bind(m, c)
		}
	}
	return nil, &NoSuchOperationError{Name: name}
}

// Output sends text to the calculator's output sink.
func (c *Calculator) Output(text string) {
	c.out.Output(text)
}

// SetOutput redirects user-visible output to w. The interactive shell
// uses this to take over output once it wraps an existing calculator.
func (c *Calculator) SetOutput(w OutputWriter) {
	c.out = w
}

// Render formats markdown through the configured renderer, falling back
// to the plain text when no renderer is set or rendering fails.
func (c *Calculator) Render(markdown string) string {
	if c.renderer == nil {
		return markdown
	}
	rendered, err := c.renderer.Render(markdown)
	if err != nil {
		c.log.Debug("markdown rendering failed", "error", err)
		return markdown
	}
	return rendered
}

func (c *Calculator) report(err error) {
	c.log.Error("operation failed", "error", err)
	c.Output("error: " + err.Error())
}

// Evaluate runs one line of whitespace-separated tokens. Numeric tokens
// are pushed, operation tokens are dispatched through the loaded
// modules in load order. Unknown tokens are reported and skipped unless
// the calculator is strict, in which case evaluation stops at the first
// one. Operation errors are reported and abort only the operation that
// raised them. The returned error joins everything that was reported.
func (c *Calculator) Evaluate(line string) error {
	stream := NewTokenStream(strings.Fields(line))
	c.stream = stream
	defer func() { c.stream = nil }()

	var errs []error
	for {
		token, ok := stream.Pop()
		if !ok {
			break
		}

		if cv := c.converterFor(token); cv != nil {
			v, err := cv.Parse(token)
			if err != nil {
				numErr := &NotNumericError{Token: token}
				c.report(numErr)
				errs = append(errs, numErr)
				continue
			}
			c.stack.Push(v)
			continue
		}

		if m := c.moduleFor(token); m != nil {
			c.log.Debug("dispatching operation", "operation", token, "module", m.Name())
			if err := m.Invoke(token, c); err != nil {
				c.report(err)
				errs = append(errs, err)
			}
			continue
		}

		unknownErr := &NoSuchOperationError{Name: token}
		errs = append(errs, unknownErr)
		if c.strict {
			c.report(unknownErr)
			return errors.Join(errs...)
		}
		c.Output(fmt.Sprintf("unknown input: %q", token))
	}
	return errors.Join(errs...)
}
