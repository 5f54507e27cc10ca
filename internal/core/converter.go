package core

import (
	"github.com/mtimmerkamp/littlecalc/pkg/number"
)

// NumericConverter recognizes and parses numeric literal tokens.
// Converters are consulted in registration order; the first converter
// that recognizes a token also parses it. A token recognized by some
// converter is never treated as an operation name.
type NumericConverter interface {
	// Recognizes reports whether token looks like a literal this
	// converter can parse.
	Recognizes(token string) bool
	// Parse converts a recognized token. Parsing must not round: the
	// literal's digits are preserved regardless of the ambient
	// precision.
	Parse(token string) (number.Value, error)
}
