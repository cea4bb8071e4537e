package executor

import (
	"context"
	"strings"
	"testing"

	"github.com/strategix/strategix/internal/errors"
	"github.com/strategix/strategix/internal/task"
)

func newTestTask(t *testing.T, category task.Category, steps ...*task.Step) *task.Task {
	t.Helper()
	tk := task.New("summarize quarterly revenue numbers for the leadership sync", category, task.PriorityMedium, nil)
	for _, s := range steps {
		if err := tk.AddStep(s); err != nil {
			t.Fatalf("AddStep(%s): %v", s.ID, err)
		}
	}
	tk.MarkEnqueued()
	return tk
}

func TestGenericExecuteResult(t *testing.T) {
	tk := newTestTask(t, task.CategoryAnalysis,
		&task.Step{ID: "step_1", Action: "analyze_requirements", EstimatedDuration: 1})
	step := tk.Steps()[0]

	got, err := NewGeneric(0).Execute(context.Background(), tk, step)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	want := "Executed analyze_requirements for summarize quarterly revenue numbers for the lea..."
	if got != want {
		t.Errorf("result = %q, want %q", got, want)
	}
}

func TestGenericExecuteCancelled(t *testing.T) {
	tk := newTestTask(t, task.CategoryAnalysis,
		&task.Step{ID: "step_1", Action: "analyze", EstimatedDuration: 3600})
	step := tk.Steps()[0]

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewGeneric(1.0).Execute(ctx, tk, step)
	if !errors.Is(err, errors.ErrCanceled) {
		t.Fatalf("error = %v, want ErrCanceled", err)
	}
}

func TestRegistryFallback(t *testing.T) {
	marker := ExecutorFunc(func(context.Context, *task.Task, *task.Step) (string, error) {
		return "coding result", nil
	})
	reg := NewRegistry(NewGeneric(0))
	reg.Register(task.CategoryCoding, marker)

	if _, ok := reg.For(task.CategoryCoding).(ExecutorFunc); !ok {
		t.Errorf("For(coding) = %T, want registered ExecutorFunc", reg.For(task.CategoryCoding))
	}
	if _, ok := reg.For(task.CategoryResearch).(*Generic); !ok {
		t.Errorf("For(research) = %T, want fallback *Generic", reg.For(task.CategoryResearch))
	}

	reg.Register(task.CategoryCoding, nil)
	if _, ok := reg.For(task.CategoryCoding).(*Generic); !ok {
		t.Error("nil registration did not remove the binding")
	}
}

type fakeBackend struct {
	result string
	err    error
	prompt string
}

func (b *fakeBackend) Query(_ context.Context, prompt string) (string, error) {
	b.prompt = prompt
	return b.result, b.err
}

func TestReasoningUsesBackend(t *testing.T) {
	tk := newTestTask(t, task.CategoryResearch,
		&task.Step{ID: "step_1", Description: "Gather sources", Action: "gather_sources"})
	step := tk.Steps()[0]

	backend := &fakeBackend{result: "found 12 relevant sources"}
	exec := NewReasoning(backend, actionPrompt("Research task"), NewGeneric(0))

	got, err := exec.Execute(context.Background(), tk, step)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if got != "found 12 relevant sources" {
		t.Errorf("result = %q, want backend result", got)
	}
	if !strings.HasPrefix(backend.prompt, "Research task: ") {
		t.Errorf("prompt = %q, want Research task prefix", backend.prompt)
	}
}

func TestReasoningFallsBackOnBackendError(t *testing.T) {
	tk := newTestTask(t, task.CategoryResearch,
		&task.Step{ID: "step_1", Action: "gather_sources"})
	step := tk.Steps()[0]

	exec := NewReasoning(&fakeBackend{err: errors.New("backend down")}, actionPrompt("Research task"), NewGeneric(0))

	got, err := exec.Execute(context.Background(), tk, step)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !strings.HasPrefix(got, "Executed gather_sources") {
		t.Errorf("result = %q, want generic fallback output", got)
	}
}

func TestNewDefaultRegistryBindings(t *testing.T) {
	reg := NewDefaultRegistry(&fakeBackend{result: "ok"}, 0)

	for _, cat := range []task.Category{
		task.CategoryResearch, task.CategoryCoding, task.CategoryAnalysis,
		task.CategoryCreative, task.CategoryDecision,
	} {
		if _, ok := reg.For(cat).(*Reasoning); !ok {
			t.Errorf("For(%s) = %T, want *Reasoning", cat, reg.For(cat))
		}
	}
	for _, cat := range []task.Category{
		task.CategorySystem, task.CategoryLearning, task.CategoryCommunication,
	} {
		if _, ok := reg.For(cat).(*Generic); !ok {
			t.Errorf("For(%s) = %T, want *Generic", cat, reg.For(cat))
		}
	}
}
