package deferred

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

type recordingOp struct {
	calls  int
	args   []any
	kwargs Kwargs
	result any
	err    error
}

func (r *recordingOp) op(args []any, kwargs Kwargs) (any, error) {
	r.calls++
	r.args = args
	r.kwargs = kwargs
	return r.result, r.err
}

func argSets() [][]any {
	return [][]any{
		{},
		{1, 2, 3},
		{map[int]int{1: 2}},
	}
}

func kwargSets() []Kwargs {
	return []Kwargs{
		{},
		{"str": "dict"},
		{"long": 0, "dict": 1, "with": 2, "many": "values", "values": []int{}},
	}
}

func collect(recs *[]Record) Tracer {
	return TracerFunc(func(rec Record) {
		*recs = append(*recs, rec)
	})
}

func TestMake_StoresComponents(t *testing.T) {
	for _, args := range argSets() {
		for _, kwargs := range kwargSets() {
			rec := &recordingOp{}
			c := Make(rec.op, args, kwargs)

			if funcPointer(c.Op()) != funcPointer(Func[any](rec.op)) {
				t.Fatalf("Op() does not return the wrapped operation")
			}
			if funcPointer(c.At(0).(Func[any])) != funcPointer(c.Op()) {
				t.Fatalf("At(0) disagrees with Op()")
			}
			if !reflect.DeepEqual(c.Args(), args) {
				t.Fatalf("Args() = %v, want %v", c.Args(), args)
			}
			if !reflect.DeepEqual(c.At(1), args) {
				t.Fatalf("At(1) = %v, want %v", c.At(1), args)
			}
			if !reflect.DeepEqual(c.Kwargs(), kwargs) {
				t.Fatalf("Kwargs() = %v, want %v", c.Kwargs(), kwargs)
			}
			if !reflect.DeepEqual(c.At(2), kwargs) {
				t.Fatalf("At(2) = %v, want %v", c.At(2), kwargs)
			}
			if c.Len() != 3 {
				t.Fatalf("Len() = %d, want 3", c.Len())
			}
		}
	}
}

func TestAt_OutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for index 3")
		}
	}()
	New(func([]any, Kwargs) (int, error) { return 0, nil }).At(3)
}

func TestMake_CopiesInputs(t *testing.T) {
	args := []any{"a"}
	kwargs := Kwargs{"k": "v"}
	c := Make(func([]any, Kwargs) (int, error) { return 0, nil }, args, kwargs)

	args[0] = "changed"
	kwargs["k"] = "changed"
	c.Args()[0] = "changed again"

	if c.Args()[0] != "a" {
		t.Fatalf("args mutated through caller slice: %v", c.Args())
	}
	if c.Kwargs()["k"] != "v" {
		t.Fatalf("kwargs mutated through caller map: %v", c.Kwargs())
	}
}

func TestInvoke_ReturnsResultAndPassesArguments(t *testing.T) {
	for _, want := range []any{nil, 1, "string"} {
		for _, args := range argSets() {
			for _, kwargs := range kwargSets() {
				rec := &recordingOp{result: want}
				c := Make(rec.op, args, kwargs)

				got, err := c.Invoke("")
				if err != nil {
					t.Fatalf("invoke: %v", err)
				}
				if got != want {
					t.Fatalf("Invoke() = %v, want %v", got, want)
				}
				if rec.calls != 1 {
					t.Fatalf("operation called %d times, want 1", rec.calls)
				}
				if !reflect.DeepEqual(rec.args, args) || !reflect.DeepEqual(rec.kwargs, kwargs) {
					t.Fatalf("operation got (%v, %v), want (%v, %v)", rec.args, rec.kwargs, args, kwargs)
				}
			}
		}
	}
}

func TestInvoke_TraceMessage(t *testing.T) {
	tests := []struct {
		name string
		msg  string
		want string
	}{
		{name: "default", msg: "", want: DefaultTraceMessage},
		{name: "custom", msg: "Test", want: "Test"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var recs []Record
			rec := &recordingOp{result: 1}
			c := Make(rec.op, []any{1, 2}, Kwargs{"str": "dict"}).WithTracer(collect(&recs))

			if _, err := c.Invoke(tt.msg); err != nil {
				t.Fatalf("invoke: %v", err)
			}
			if len(recs) != 1 {
				t.Fatalf("expected 1 record, got %d", len(recs))
			}
			got := recs[0]
			if got.Message != tt.want {
				t.Fatalf("message = %q, want %q", got.Message, tt.want)
			}
			if got.Op != c.Name() {
				t.Fatalf("op = %q, want %q", got.Op, c.Name())
			}
			if !reflect.DeepEqual(got.Args, c.Args()) || !reflect.DeepEqual(got.Kwargs, c.Kwargs()) {
				t.Fatalf("record fields = (%v, %v), want (%v, %v)", got.Args, got.Kwargs, c.Args(), c.Kwargs())
			}
		})
	}
}

func TestInvoke_ErrorPropagatesWithoutTrace(t *testing.T) {
	boom := errors.New("boom")
	var recs []Record
	rec := &recordingOp{err: boom}
	c := New(rec.op).WithTracer(collect(&recs))

	_, err := c.Invoke("")
	if !errors.Is(err, boom) || err != boom {
		t.Fatalf("expected the operation's error unchanged, got %v", err)
	}
	if len(recs) != 0 {
		t.Fatalf("expected no trace on failure, got %d records", len(recs))
	}
}

func TestInvoke_RunsEveryTime(t *testing.T) {
	rec := &recordingOp{}
	c := New(rec.op, "x")
	for i := 0; i < 2; i++ {
		if _, err := c.Invoke(""); err != nil {
			t.Fatalf("invoke %d: %v", i, err)
		}
	}
	if rec.calls != 2 {
		t.Fatalf("operation called %d times, want 2", rec.calls)
	}
}

func TestInvoke_OperationCannotMutateCall(t *testing.T) {
	op := func(args []any, kwargs Kwargs) (int, error) {
		args[0] = "mutated"
		kwargs["added"] = true
		return 0, nil
	}
	c := Make(op, []any{"orig"}, Kwargs{})
	if _, err := c.Invoke(""); err != nil {
		t.Fatalf("invoke: %v", err)
	}
	if c.Args()[0] != "orig" {
		t.Fatalf("args mutated by operation: %v", c.Args())
	}
	if _, ok := c.Kwargs()["added"]; ok {
		t.Fatalf("kwargs mutated by operation: %v", c.Kwargs())
	}
}

func TestInvoke_NilOperation(t *testing.T) {
	var c Call[int]
	if _, err := c.Invoke(""); !errors.Is(err, ErrArgument) {
		t.Fatalf("expected ErrArgument, got %v", err)
	}
}

func TestEqual(t *testing.T) {
	a := func([]any, Kwargs) (int, error) { return 1, nil }
	b := func([]any, Kwargs) (int, error) { return 2, nil }

	if !Make(a, []any{1}, Kwargs{"k": 1}).Equal(Make(a, []any{1}, Kwargs{"k": 1})) {
		t.Fatalf("expected structurally equal calls to be equal")
	}
	if Make(a, []any{1}, nil).Equal(Make(b, []any{1}, nil)) {
		t.Fatalf("expected different operations to differ")
	}
	if New(a, 1).Equal(New(a, 2)) {
		t.Fatalf("expected different args to differ")
	}
	if Make(a, nil, Kwargs{"k": 1}).Equal(Make(a, nil, Kwargs{"k": 2})) {
		t.Fatalf("expected different kwargs to differ")
	}
}

func TestEqual_MethodValuesShareCode(t *testing.T) {
	a := &recordingOp{result: 1}
	b := &recordingOp{result: 2}
	ca, cb := New(a.op), New(b.op)

	if !ca.Equal(cb) {
		t.Fatalf("expected method values of one method to compare equal")
	}
	ra, _ := ca.Invoke("")
	rb, _ := cb.Invoke("")
	if ra != 1 || rb != 2 {
		t.Fatalf("results = %v, %v; want 1, 2", ra, rb)
	}
}

func TestFromTemplate(t *testing.T) {
	rec := &recordingOp{result: "ok"}
	tmpl := Template[any]{Op: rec.op, Args: []any{1}, Kwargs: Kwargs{"k": "v"}}
	c := FromTemplate(tmpl)

	if !c.Equal(Make(Func[any](rec.op), []any{1}, Kwargs{"k": "v"})) {
		t.Fatalf("template call differs from Make: %v", c)
	}
	back := c.Template()
	if !reflect.DeepEqual(back.Args, tmpl.Args) || !reflect.DeepEqual(back.Kwargs, tmpl.Kwargs) {
		t.Fatalf("Template() = %+v, want %+v", back, tmpl)
	}
}

func TestName(t *testing.T) {
	c := New(sampleOperation)
	if !strings.HasSuffix(c.Name(), "sampleOperation") {
		t.Fatalf("Name() = %q", c.Name())
	}
	if !strings.Contains(c.String(), "sampleOperation(args=") {
		t.Fatalf("String() = %q", c.String())
	}
}

func sampleOperation([]any, Kwargs) (string, error) {
	return "", nil
}
