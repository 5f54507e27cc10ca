package core

import "fmt"

// NoSuchOperationError reports a token that is neither numeric nor
// resolvable to an operation or alias in any loaded module.
type NoSuchOperationError struct {
	Name string
}

func (e *NoSuchOperationError) Error() string {
	return fmt.Sprintf("no such operation: %q", e.Name)
}

// NotNumericError reports a token that had to be numeric but could not
// be parsed by any registered converter.
type NotNumericError struct {
	Token string
}

func (e *NotNumericError) Error() string {
	return fmt.Sprintf("not a number: %q", e.Token)
}

// StackUnderflowError reports a pop of more values than the stack
// holds. The stack is left untouched by the failed pop.
type StackUnderflowError struct {
	Requested int
	Available int
}

func (e *StackUnderflowError) Error() string {
	return fmt.Sprintf("stack underflow: need %d value(s), have %d", e.Requested, e.Available)
}

// MissingArgumentError reports an operation that required a token from
// the input stream when none was left.
type MissingArgumentError struct {
	Operation string
}

func (e *MissingArgumentError) Error() string {
	return fmt.Sprintf("missing argument for %q", e.Operation)
}

// AliasingError reports an invalid alias registration, such as a cycle
// or an alias that would shadow an operation.
type AliasingError struct {
	Module string
	Alias  string
	Target string
	Reason string
}

func (e *AliasingError) Error() string {
	return fmt.Sprintf("cannot alias %q to %q in module %q: %s", e.Alias, e.Target, e.Module, e.Reason)
}

// ModuleLoadError reports a failed module load: an unknown factory
// name, a factory error, or a module that cannot bind to the
// calculator.
type ModuleLoadError struct {
	Module string
	Err    error
}

func (e *ModuleLoadError) Error() string {
	return fmt.Sprintf("cannot load module %q: %v", e.Module, e.Err)
}

func (e *ModuleLoadError) Unwrap() error {
	return e.Err
}

// Variant names one of the calling conventions an Operation can
// provide.
type Variant string

const (
	// VariantPrompt is the interactive convention: the operation takes
	// its arguments from the stack and the token stream itself.
	VariantPrompt Variant = "prompt"
	// VariantPure is the plain-function convention: values in, values
	// out, no calculator access.
	VariantPure Variant = "pure"
	// VariantBound is the pre-bound convention: a closure over a
	// module/calculator pair, callable with plain values.
	VariantBound Variant = "bound"
)

// VariantError reports a request for a calling convention an operation
// does not implement.
type VariantError struct {
	Operation string
	Variant   Variant
}

func (e *VariantError) Error() string {
	return fmt.Sprintf("operation %q has no %s variant", e.Operation, e.Variant)
}
