// Package core implements the calculator engine: the value stack, the
// consumable token stream, modules with operations and aliases, the
// numeric converter chain and the dispatch loop tying them together.
package core

import (
	"github.com/mtimmerkamp/littlecalc/pkg/number"
)

// Stack is the calculator's value stack. Pops remember the value that
// was on top beforehand, so operations can be undone by pushing "last
// x" back. A failed pop leaves the stack untouched.
type Stack struct {
	values   []number.Value
	lastX    number.Value
	hasLastX bool
}

// NewStack returns an empty stack.
func NewStack() *Stack {
	return &Stack{}
}

// Len returns the number of values on the stack.
func (s *Stack) Len() int {
	return len(s.values)
}

// Push appends values in argument order; the last argument ends up on
// top.
func (s *Stack) Push(values ...number.Value) {
	s.values = append(s.values, values...)
}

// Pop removes and returns the top value, recording it as last x.
func (s *Stack) Pop() (number.Value, error) {
	vals, err := s.PopN(1)
	if err != nil {
		return number.Value{}, err
	}
	return vals[0], nil
}

// PopN removes the top n values and returns them topmost first. The pop
// is atomic: if fewer than n values are available nothing is removed
// and a StackUnderflowError is returned. The value on top before the
// pop becomes last x.
func (s *Stack) PopN(n int) ([]number.Value, error) {
	if n <= 0 {
		return nil, nil
	}
	if n > len(s.values) {
		return nil, &StackUnderflowError{Requested: n, Available: len(s.values)}
	}
	s.lastX = s.values[len(s.values)-1]
	s.hasLastX = true

	out := make([]number.Value, n)
	for i := range out {
		out[i] = s.values[len(s.values)-1-i]
	}
	s.values = s.values[:len(s.values)-n]
	return out, nil
}

// Peek returns the top value without removing it.
func (s *Stack) Peek() (number.Value, error) {
	if len(s.values) == 0 {
		return number.Value{}, &StackUnderflowError{Requested: 1, Available: 0}
	}
	return s.values[len(s.values)-1], nil
}

// LastX returns the value most recently removed from the top of the
// stack, if any pop has happened yet.
func (s *Stack) LastX() (number.Value, bool) {
	return s.lastX, s.hasLastX
}

// Clear removes all values. Last x survives so the cleared top can be
// recovered.
func (s *Stack) Clear() {
	s.values = s.values[:0]
}

// Rotate rotates the stack like a ring buffer: n > 0 moves the top n
// values to the bottom, n < 0 moves the bottom n values to the top.
// Rotating an empty stack is a no-op.
func (s *Stack) Rotate(n int) {
	l := len(s.values)
	if l == 0 {
		return
	}
	n %= l
	if n < 0 {
		n += l
	}
	if n == 0 {
		return
	}
	out := make([]number.Value, 0, l)
	out = append(out, s.values[l-n:]...)
	out = append(out, s.values[:l-n]...)
	s.values = out
}

// Values returns a copy of the stack from bottom to top.
func (s *Stack) Values() []number.Value {
	out := make([]number.Value, len(s.values))
	copy(out, s.values)
	return out
}
