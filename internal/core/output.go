package core

import (
	"fmt"
	"io"
)

// OutputWriter receives user-visible calculator output: operation
// results, listings and error reports.
type OutputWriter interface {
	Output(text string)
}

// WriterSink adapts an io.Writer into an OutputWriter, writing one line
// per call.
func WriterSink(w io.Writer) OutputWriter {
	return writerSink{w: w}
}

type writerSink struct {
	w io.Writer
}

func (s writerSink) Output(text string) {
	fmt.Fprintln(s.w, text)
}

// Renderer turns markdown into terminal output. Implementations may
// style the text or pass it through unchanged.
type Renderer interface {
	Render(markdown string) (string, error)
}
