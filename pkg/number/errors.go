package number

import "fmt"

// DomainError reports an argument outside the mathematical domain of an
// operation, such as division by zero or the square root of a negative
// value.
type DomainError struct {
	Op     string // operation name, e.g. "div" or "sqrt"
	Detail string // human-readable description of the violation
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	return fmt.Sprintf("domain error in %s: %s", e.Op, e.Detail)
}

// NewDomainError constructs a DomainError for op with a formatted detail
// message.
func NewDomainError(op, format string, args ...any) *DomainError {
	return &DomainError{Op: op, Detail: fmt.Sprintf(format, args...)}
}
