package surface

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kmacinski/huntgame/internal/deferred"
	"github.com/kmacinski/huntgame/internal/window"
)

type scheduled struct {
	fn    func(time.Duration) error
	delay time.Duration
}

type fakeFacility struct {
	timers []scheduled
	shown  []window.View
}

func (f *fakeFacility) ScheduleOnce(fn func(time.Duration) error, delay time.Duration) {
	f.timers = append(f.timers, scheduled{fn: fn, delay: delay})
}

func (f *fakeFacility) ShowView(v window.View) {
	f.shown = append(f.shown, v)
}

func (f *fakeFacility) fire(t *testing.T) error {
	t.Helper()
	if len(f.timers) != 1 {
		t.Fatalf("expected exactly one scheduled callback, got %d", len(f.timers))
	}
	return f.timers[0].fn(f.timers[0].delay)
}

type stubView struct {
	name string
}

func (v *stubView) OnShow(window.Context) tea.Cmd         { return nil }
func (v *stubView) OnHide()                               {}
func (v *stubView) Update(tea.Msg) (window.View, tea.Cmd) { return v, nil }
func (v *stubView) View(int, int) string                  { return v.name }
func (v *stubView) Name() string                          { return v.name }

type constructor struct {
	calls int
	fail  int // number of leading calls that fail
	err   error
}

func (c *constructor) build(args []any, kwargs deferred.Kwargs) (window.View, error) {
	c.calls++
	if c.calls <= c.fail {
		return nil, c.err
	}
	name, err := deferred.Arg[string](args, 0)
	if err != nil {
		return nil, err
	}
	return &stubView{name: name}, nil
}

func TestNew_WithoutBaseViewSchedulesNothing(t *testing.T) {
	f := &fakeFacility{}
	s := New(f)

	if len(f.timers) != 0 {
		t.Fatalf("expected no scheduling, got %d", len(f.timers))
	}
	if s.State() != Unscheduled {
		t.Fatalf("state = %s, want unscheduled", s.State())
	}
	if _, ok := s.Pending(); ok {
		t.Fatalf("expected no pending call")
	}

	// a stray readiness tick is a no-op
	if err := s.InstallBaseView(time.Second); err != nil {
		t.Fatalf("install: %v", err)
	}
	if len(f.shown) != 0 || s.ActiveView() != nil {
		t.Fatalf("expected nothing shown, got %v", f.shown)
	}
}

func TestNew_SchedulesOnceWithDelay(t *testing.T) {
	f := &fakeFacility{}
	c := &constructor{}
	s := New(f, WithBaseView(deferred.New(c.build, "Main Menu")), WithReadyDelay(250*time.Millisecond))

	if len(f.timers) != 1 {
		t.Fatalf("expected one timer, got %d", len(f.timers))
	}
	if f.timers[0].delay != 250*time.Millisecond {
		t.Fatalf("delay = %s", f.timers[0].delay)
	}
	if s.State() != Scheduled {
		t.Fatalf("state = %s, want scheduled", s.State())
	}
	if c.calls != 0 {
		t.Fatalf("expected construction to wait for the readiness signal")
	}
}

func TestNew_DefaultDelay(t *testing.T) {
	f := &fakeFacility{}
	New(f, WithBaseView(deferred.New((&constructor{}).build, "x")))
	if f.timers[0].delay != DefaultReadyDelay {
		t.Fatalf("delay = %s, want %s", f.timers[0].delay, DefaultReadyDelay)
	}
}

func TestInstallBaseView_InstallsExactlyOnce(t *testing.T) {
	f := &fakeFacility{}
	c := &constructor{}
	s := New(f, WithBaseView(deferred.New(c.build, "Main Menu")))

	if err := f.fire(t); err != nil {
		t.Fatalf("install: %v", err)
	}
	active, ok := s.ActiveView().(*stubView)
	if !ok || active.name != "Main Menu" {
		t.Fatalf("unexpected active view %#v", s.ActiveView())
	}
	if len(f.shown) != 1 || f.shown[0] != s.ActiveView() {
		t.Fatalf("expected ShowView called once with the active view, got %v", f.shown)
	}
	if _, ok := s.Pending(); ok {
		t.Fatalf("expected pending call cleared")
	}
	if s.State() != Installed {
		t.Fatalf("state = %s, want installed", s.State())
	}

	if err := f.fire(t); err != nil {
		t.Fatalf("second tick: %v", err)
	}
	if c.calls != 1 || len(f.shown) != 1 {
		t.Fatalf("expected second tick to be a no-op, calls=%d shown=%d", c.calls, len(f.shown))
	}
}

func TestInstallBaseView_FailureLeavesCallPending(t *testing.T) {
	boom := errors.New("gl context not ready")
	f := &fakeFacility{}
	c := &constructor{fail: 1, err: boom}
	s := New(f, WithBaseView(deferred.New(c.build, "Main Menu")))

	if err := f.fire(t); !errors.Is(err, boom) {
		t.Fatalf("expected constructor error, got %v", err)
	}
	if _, ok := s.Pending(); !ok {
		t.Fatalf("expected call to stay pending after failure")
	}
	if s.ActiveView() != nil || len(f.shown) != 0 {
		t.Fatalf("expected no view after failure")
	}
	if s.State() != Scheduled {
		t.Fatalf("state = %s, want scheduled", s.State())
	}

	if err := s.InstallBaseView(0); err != nil {
		t.Fatalf("retry: %v", err)
	}
	if c.calls != 2 || s.ActiveView() == nil || len(f.shown) != 1 {
		t.Fatalf("expected retry to build and show, calls=%d shown=%d", c.calls, len(f.shown))
	}
}

func TestWithBaseTemplate(t *testing.T) {
	f := &fakeFacility{}
	c := &constructor{}
	s := New(f, WithBaseTemplate(deferred.Template[window.View]{Op: c.build, Args: []any{"Cave"}}))

	if err := f.fire(t); err != nil {
		t.Fatalf("install: %v", err)
	}
	if s.ActiveView().Name() != "Cave" {
		t.Fatalf("unexpected view %q", s.ActiveView().Name())
	}
}

func TestWithTracer_TracesInstall(t *testing.T) {
	var recs []deferred.Record
	f := &fakeFacility{}
	s := New(f,
		WithBaseView(deferred.New((&constructor{}).build, "Main Menu")),
		WithTracer(deferred.TracerFunc(func(r deferred.Record) { recs = append(recs, r) })),
	)
	if err := s.InstallBaseView(0); err != nil {
		t.Fatalf("install: %v", err)
	}
	if len(recs) != 1 || recs[0].Message != deferred.DefaultTraceMessage {
		t.Fatalf("expected one default trace record, got %v", recs)
	}
	if len(recs[0].Args) != 1 || recs[0].Args[0] != "Main Menu" {
		t.Fatalf("unexpected traced args %v", recs[0].Args)
	}
}

func TestSetActiveView_DoesNotShow(t *testing.T) {
	f := &fakeFacility{}
	s := New(f)
	v := &stubView{name: "manual"}
	s.SetActiveView(v)
	if s.ActiveView() != v || len(f.shown) != 0 {
		t.Fatalf("expected direct assignment without ShowView")
	}
}

func TestPushPopView(t *testing.T) {
	f := &fakeFacility{}
	s := New(f, WithBaseView(deferred.New((&constructor{}).build, "Main Menu")))
	if err := s.InstallBaseView(0); err != nil {
		t.Fatalf("install: %v", err)
	}
	base := s.ActiveView()

	cave := &stubView{name: "cave"}
	s.PushView(cave)
	if s.ActiveView() != cave || s.Depth() != 1 {
		t.Fatalf("expected cave on top, depth=%d", s.Depth())
	}

	if !s.PopView() {
		t.Fatalf("expected pop to succeed")
	}
	if s.ActiveView() != base || s.Depth() != 0 {
		t.Fatalf("expected base view restored")
	}
	if s.PopView() {
		t.Fatalf("expected pop on empty stack to fail")
	}
	if len(f.shown) != 3 {
		t.Fatalf("expected three ShowView calls, got %d", len(f.shown))
	}
}

func TestStateString(t *testing.T) {
	if Scheduled.String() != "scheduled" || State(9).String() != "unknown" {
		t.Fatalf("unexpected state names")
	}
}
