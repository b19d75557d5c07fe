// Package surface is the window-level controller: it defers building the
// first view until the display signals readiness, then keeps track of the
// active view and the stack of views pushed over it.
package surface

import (
	"io"
	"log/slog"
	"time"

	"github.com/kmacinski/huntgame/internal/deferred"
	"github.com/kmacinski/huntgame/internal/window"
)

// DefaultReadyDelay is how long to wait for the display before building the
// base view.
const DefaultReadyDelay = 100 * time.Millisecond

// Facility is the windowing system a surface runs on
type Facility interface {
	// ScheduleOnce calls fn once, roughly delay from now, with the time
	// that actually elapsed.
	ScheduleOnce(fn func(elapsed time.Duration) error, delay time.Duration)

	// ShowView makes v the view receiving input and draw calls, replacing
	// whatever was active.
	ShowView(v window.View)
}

// State is the base view lifecycle
type State int

const (
	Unscheduled State = iota // no base view was requested
	Scheduled                // waiting for the readiness signal
	Installed                // base view built and shown
)

func (s State) String() string {
	switch s {
	case Unscheduled:
		return "unscheduled"
	case Scheduled:
		return "scheduled"
	case Installed:
		return "installed"
	default:
		return "unknown"
	}
}

// Surface owns the pending base view construction and the active view.
// All methods run on the facility's event loop.
type Surface struct {
	facility Facility
	logger   *slog.Logger
	tracer   deferred.Tracer
	delay    time.Duration

	pending *deferred.Call[window.View]
	active  window.View
	stack   []window.View
	state   State
}

// Option configures a Surface
type Option func(*Surface)

// WithBaseView builds the first view from call once the display is ready
func WithBaseView(call deferred.Call[window.View]) Option {
	return func(s *Surface) {
		s.pending = &call
	}
}

// WithBaseTemplate is WithBaseView for a plain triple
func WithBaseTemplate(t deferred.Template[window.View]) Option {
	return WithBaseView(deferred.FromTemplate(t))
}

// WithReadyDelay sets how long to wait before building the base view
func WithReadyDelay(d time.Duration) Option {
	return func(s *Surface) {
		s.delay = d
	}
}

// WithLogger sets the logger for lifecycle diagnostics
func WithLogger(l *slog.Logger) Option {
	return func(s *Surface) {
		s.logger = l
	}
}

// WithTracer sets the trace sink attached to the base view call
func WithTracer(t deferred.Tracer) Option {
	return func(s *Surface) {
		s.tracer = t
	}
}

// New creates a surface. When a base view was given, exactly one readiness
// callback is scheduled on f.
func New(f Facility, opts ...Option) *Surface {
	s := &Surface{
		facility: f,
		delay:    DefaultReadyDelay,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	if s.pending == nil || s.pending.IsZero() {
		s.pending = nil
		s.logger.Debug("no view scheduled")
		return s
	}

	if s.tracer != nil {
		call := s.pending.WithTracer(s.tracer)
		s.pending = &call
	}
	s.state = Scheduled
	f.ScheduleOnce(s.InstallBaseView, s.delay)
	s.logger.Debug("scheduled deferred view creation",
		slog.Duration("delay", s.delay),
		slog.String("call", s.pending.String()))
	return s
}

// InstallBaseView is the readiness callback. The first call after scheduling
// builds the base view, shows it and drops the pending call; later calls are
// no-ops. If building fails the error is returned and the call stays
// pending, so calling again retries.
func (s *Surface) InstallBaseView(elapsed time.Duration) error {
	if s.pending == nil {
		s.logger.Debug("skipping initialization due to lack of call", slog.Duration("elapsed", elapsed))
		return nil
	}

	s.logger.Debug("processing scheduled view call",
		slog.Duration("elapsed", elapsed),
		slog.String("call", s.pending.String()))

	view, err := s.pending.Invoke("")
	if err != nil {
		s.logger.Error("deferred view creation failed", slog.Any("err", err))
		return err
	}

	s.SetActiveView(view)
	s.facility.ShowView(view)
	s.pending = nil
	s.state = Installed
	return nil
}

// ActiveView returns the view currently shown
func (s *Surface) ActiveView() window.View {
	return s.active
}

// SetActiveView replaces the active view reference without showing it
func (s *Surface) SetActiveView(v window.View) {
	s.active = v
}

// Pending returns the base view call that has not run yet
func (s *Surface) Pending() (deferred.Call[window.View], bool) {
	if s.pending == nil {
		return deferred.Call[window.View]{}, false
	}
	return *s.pending, true
}

// State returns where the base view is in its lifecycle
func (s *Surface) State() State {
	return s.state
}

// PushView shows v over the active view
func (s *Surface) PushView(v window.View) {
	if v == nil {
		return
	}
	if s.active != nil {
		s.stack = append(s.stack, s.active)
	}
	s.SetActiveView(v)
	s.facility.ShowView(v)
	s.logger.Debug("pushed view", slog.String("view", v.Name()), slog.Int("depth", len(s.stack)))
}

// PopView returns to the previous view. It reports false when there is
// nothing to go back to.
func (s *Surface) PopView() bool {
	if len(s.stack) == 0 {
		return false
	}
	prev := s.stack[len(s.stack)-1]
	s.stack[len(s.stack)-1] = nil
	s.stack = s.stack[:len(s.stack)-1]
	s.SetActiveView(prev)
	s.facility.ShowView(prev)
	s.logger.Debug("popped view", slog.String("view", prev.Name()), slog.Int("depth", len(s.stack)))
	return true
}

// Depth returns how many views are stacked under the active one
func (s *Surface) Depth() int {
	return len(s.stack)
}
