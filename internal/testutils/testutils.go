// Package testutils provides small helpers shared by tests across
// packages.
package testutils

import "strings"

// RecordingSink captures calculator output lines so tests can assert on
// what the user would have seen.
type RecordingSink struct {
	Lines []string
}

// Output implements the calculator's output sink.
func (s *RecordingSink) Output(text string) {
	s.Lines = append(s.Lines, text)
}

// Text joins all captured lines.
func (s *RecordingSink) Text() string {
	return strings.Join(s.Lines, "\n")
}

// Contains reports whether any captured line contains substr.
func (s *RecordingSink) Contains(substr string) bool {
	return strings.Contains(s.Text(), substr)
}

// Reset drops all captured lines.
func (s *RecordingSink) Reset() {
	s.Lines = nil
}
