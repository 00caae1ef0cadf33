package step_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goliatone/go-payflow/pkg/resource"
	"github.com/goliatone/go-payflow/pkg/step"
)

type countingHook struct {
	calls int
}

func (h *countingHook) PostRender(_ *step.View) {
	h.calls++
}

func TestRender_NoSourceWritesEmptyContent(t *testing.T) {
	hook := &countingHook{}
	view, err := step.New(step.WithHook(hook))
	if err != nil {
		t.Fatalf("new view: %v", err)
	}

	if err := view.Render(context.Background()); err != nil {
		t.Fatalf("render: %v", err)
	}

	if got := view.Element().Content(); got != "" {
		t.Fatalf("expected empty content, got %q", got)
	}
	if hook.calls != 1 {
		t.Fatalf("expected hook to run exactly once, ran %d times", hook.calls)
	}
}

func TestRender_FetchesOnceAndCaches(t *testing.T) {
	var requests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		_, _ = w.Write([]byte("<p>Hello {{ name }}</p>"))
	}))
	defer server.Close()

	hook := &countingHook{}
	view, err := step.New(
		step.WithSource(resource.SourceFromURL(server.URL)),
		step.WithData(step.Data{"name": "Ada"}),
		step.WithHook(hook),
	)
	if err != nil {
		t.Fatalf("new view: %v", err)
	}

	if err := view.Render(context.Background()); err != nil {
		t.Fatalf("first render: %v", err)
	}
	if got := view.Element().Content(); got != "<p>Hello Ada</p>" {
		t.Fatalf("unexpected content: %q", got)
	}

	if err := view.Render(context.Background()); err != nil {
		t.Fatalf("second render: %v", err)
	}

	if requests != 1 {
		t.Fatalf("expected a single fetch, saw %d", requests)
	}
	if hook.calls != 2 {
		t.Fatalf("expected hook to run on every render, ran %d times", hook.calls)
	}
	if !view.Rendered() {
		t.Fatalf("expected view to report cached output")
	}
}

func TestRender_ContextMergeStepDataWins(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("{{ nextStepNum }}:{{ nextStepTitle }}"))
	}))
	defer server.Close()

	view, err := step.New(
		step.WithSource(resource.SourceFromURL(server.URL)),
		step.WithNext(step.NextStep{Num: "2", Title: "Make Payment"}),
		step.WithData(step.Data{"nextStepTitle": "Overridden"}),
	)
	if err != nil {
		t.Fatalf("new view: %v", err)
	}

	if err := view.Render(context.Background()); err != nil {
		t.Fatalf("render: %v", err)
	}

	if got := view.Element().Content(); got != "2:Overridden" {
		t.Fatalf("step data should win on conflict, got %q", got)
	}
}

func TestRender_FetchFailureLeavesContentAlone(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	hook := &countingHook{}
	el := step.NewElement()
	el.SetContent("<p>stale</p>")

	view, err := step.New(
		step.WithSource(resource.SourceFromURL(server.URL)),
		step.WithElement(el),
		step.WithHook(hook),
	)
	if err != nil {
		t.Fatalf("new view: %v", err)
	}

	if err := view.Render(context.Background()); err == nil {
		t.Fatalf("expected a fetch error")
	}

	if got := el.Content(); got != "<p>stale</p>" {
		t.Fatalf("content should be untouched after a failed fetch, got %q", got)
	}
	if hook.calls != 0 {
		t.Fatalf("hook must not run after a failed fetch, ran %d times", hook.calls)
	}
}

func TestRender_RemoteSanitizerStripsScripts(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<p>ok</p><script>alert("x")</script>`))
	}))
	defer server.Close()

	view, err := step.New(
		step.WithSource(resource.SourceFromURL(server.URL)),
		step.WithRemoteSanitizer(),
	)
	if err != nil {
		t.Fatalf("new view: %v", err)
	}

	if err := view.Render(context.Background()); err != nil {
		t.Fatalf("render: %v", err)
	}

	content := view.Element().Content()
	if strings.Contains(content, "script") {
		t.Fatalf("script should be stripped, got %q", content)
	}
	if !strings.Contains(content, "<p>ok</p>") {
		t.Fatalf("markup should survive sanitizing, got %q", content)
	}
}

func TestNextStepSignal_SingleObservation(t *testing.T) {
	view, err := step.New()
	if err != nil {
		t.Fatalf("new view: %v", err)
	}

	var observed int
	view.OnNextStep(func() {
		observed++
	})

	view.NextStepSignal()

	if observed != 1 {
		t.Fatalf("expected exactly one observation, got %d", observed)
	}
}
