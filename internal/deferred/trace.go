package deferred

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// Record describes one successful deferred call
type Record struct {
	Message string
	Op      string
	Args    []any
	Kwargs  Kwargs
}

// Text renders the message, filling any verbs with op, args and kwargs
func (r Record) Text() string {
	if !strings.Contains(r.Message, "%") {
		return r.Message
	}
	return fmt.Sprintf(r.Message, r.Op, r.Args, map[string]any(r.Kwargs))
}

// Tracer receives a record for every successful Invoke
type Tracer interface {
	Trace(rec Record)
}

// TracerFunc adapts a function to a Tracer
type TracerFunc func(rec Record)

// Trace calls f(rec)
func (f TracerFunc) Trace(rec Record) {
	f(rec)
}

type nopTracer struct{}

func (nopTracer) Trace(Record) {}

type slogTracer struct {
	logger *slog.Logger
}

// NewSlogTracer returns a tracer that logs records at debug level
func NewSlogTracer(logger *slog.Logger) Tracer {
	if logger == nil {
		return nopTracer{}
	}
	return slogTracer{logger: logger}
}

func (t slogTracer) Trace(rec Record) {
	t.logger.LogAttrs(context.Background(), slog.LevelDebug, rec.Text(),
		slog.String("op", rec.Op),
		slog.Any("args", rec.Args),
		slog.Any("kwargs", map[string]any(rec.Kwargs)),
	)
}
