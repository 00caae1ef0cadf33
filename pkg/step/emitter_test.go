package step_test

import (
	"testing"

	"github.com/goliatone/go-payflow/pkg/step"
)

func TestEmitter_DeliversToEveryListener(t *testing.T) {
	var e step.Emitter

	var first, second int
	e.On(step.EventNextStep, func() { first++ })
	e.On(step.EventNextStep, func() { second++ })

	e.Emit(step.EventNextStep)
	e.Emit(step.EventNextStep)

	if first != 2 || second != 2 {
		t.Fatalf("expected both listeners to see both emissions, got %d and %d", first, second)
	}
}

func TestEmitter_UnknownEventIsNoOp(t *testing.T) {
	var e step.Emitter

	var called bool
	e.On(step.EventNextStep, func() { called = true })

	e.Emit("other-event")

	if called {
		t.Fatalf("listener should not fire for other events")
	}
}

func TestEmitter_NilListenerIgnored(t *testing.T) {
	var e step.Emitter
	e.On(step.EventNextStep, nil)
	e.Emit(step.EventNextStep)
}
