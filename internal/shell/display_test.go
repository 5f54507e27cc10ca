package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mtimmerkamp/littlecalc/internal/core"
	"github.com/mtimmerkamp/littlecalc/pkg/number"
)

func newStack(values ...int64) *core.Stack {
	s := core.NewStack()
	for _, v := range values {
		s.Push(number.FromInt64(v))
	}
	return s
}

func TestFormatRegisters(t *testing.T) {
	tests := []struct {
		name   string
		values []int64
		want   string
	}{
		{"empty", nil, ""},
		{"single value", []int64{5}, "X: 5"},
		{"two values", []int64{1, 2}, "Y: 1\nX: 2"},
		{"full window", []int64{1, 2, 3, 4}, "T: 1\nZ: 2\nY: 3\nX: 4"},
		{"deep stack shows top four", []int64{1, 2, 3, 4, 5}, "T: 2\nZ: 3\nY: 4\nX: 5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatRegisters(newStack(tt.values...), registerDepth)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatRegistersCustomDepth(t *testing.T) {
	s := newStack(1, 2, 3)
	assert.Equal(t, "X: 3", FormatRegisters(s, 1))
	assert.Equal(t, "", FormatRegisters(s, 0))
}
