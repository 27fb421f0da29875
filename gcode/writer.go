package gcode

import (
	"bufio"
	"fmt"
	"io"

	"github.com/mastercactapus/gcgen/coord"
)

// Sink is the destination a Writer emits to: anything that accepts
// written bytes and can flush buffered output. The core never opens or
// closes sinks itself.
type Sink interface {
	io.Writer
	Flush() error
}

var _ Sink = (*bufio.Writer)(nil)

// Options carries per-move settings.
type Options struct {
	// FeedRate is the commanded traversal speed. Zero or negative
	// means no feed word is emitted.
	FeedRate float64
}

// Writer emits move commands to a Sink. It holds exclusive ownership
// of the sink until Release.
type Writer struct {
	s Sink
}

func NewWriter(s Sink) *Writer {
	return &Writer{s: s}
}

// MoveTo writes a single move command line, with no trailing newline;
// callers compose lines into a full program. fast selects a rapid
// (G00) over a linear (G01) move. Absent axes emit no word at all.
func (w *Writer) MoveTo(pos coord.Position, opt *Options, fast bool) error {
	code := 1.0
	if fast {
		code = 0
	}
	b := Block{{W: 'G', Arg: code}}
	if v, ok := pos.X(); ok {
		b = append(b, Word{W: 'X', Arg: v})
	}
	if v, ok := pos.Y(); ok {
		b = append(b, Word{W: 'Y', Arg: v})
	}
	if v, ok := pos.Z(); ok {
		b = append(b, Word{W: 'Z', Arg: v})
	}
	if opt != nil && opt.FeedRate > 0 {
		b = append(b, Word{W: 'F', Arg: opt.FeedRate})
	}

	if _, err := io.WriteString(w.s, b.String()); err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	return nil
}

// Flush forces buffered output through to the sink.
func (w *Writer) Flush() error {
	if err := w.s.Flush(); err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	return nil
}

// Release hands the sink back to the caller without closing or
// flushing it. The Writer must not be used afterwards.
func (w *Writer) Release() Sink {
	s := w.s
	w.s = nil
	return s
}
