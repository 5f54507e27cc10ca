package core

// TokenStream holds the not-yet-evaluated tokens of the current input
// line. Operations may consume tokens as arguments; a consumed token is
// gone for the dispatch loop as well, since both share the one cursor.
type TokenStream struct {
	tokens []string
}

// NewTokenStream returns a stream over a copy of tokens.
func NewTokenStream(tokens []string) *TokenStream {
	ts := &TokenStream{tokens: make([]string, len(tokens))}
	copy(ts.tokens, tokens)
	return ts
}

// Len returns the number of remaining tokens.
func (ts *TokenStream) Len() int {
	return len(ts.tokens)
}

// Peek returns the next token without consuming it.
func (ts *TokenStream) Peek() (string, bool) {
	if len(ts.tokens) == 0 {
		return "", false
	}
	return ts.tokens[0], true
}

// Pop consumes and returns the next token.
func (ts *TokenStream) Pop() (string, bool) {
	if len(ts.tokens) == 0 {
		return "", false
	}
	tok := ts.tokens[0]
	ts.tokens = ts.tokens[1:]
	return tok, true
}
