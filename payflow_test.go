package payflow_test

import (
	"context"
	"os"
	"strings"
	"testing"
	"testing/fstest"

	payflow "github.com/goliatone/go-payflow"
	"github.com/goliatone/go-payflow/pkg/flow"
	"github.com/goliatone/go-payflow/pkg/steps"
)

const wizardPage = `<!DOCTYPE html>
<html>
<body>
  <div id="pay-and-verify-container"
       data-display-steps='["intro-step","make-payment-step"]'
       data-current-step="intro-step"
       data-intro-title="Verify Your Identity"
       data-platform-name="Open edX"
       data-course-key="course-v1:edX+DemoX+2026"
       data-min-price="40"
       data-suggested-prices="40,80,120"
       data-currency="usd"></div>
</body>
</html>`

func TestBootstrap(t *testing.T) {
	templates := fstest.MapFS{
		"intro.html":   {Data: []byte("<h1>{{ introTitle }}</h1>")},
		"payment.html": {Data: []byte("<form>{{ minPrice }}</form>")},
	}
	schemas := fstest.MapFS{
		"wizard.yaml": {Data: []byte(
			"steps:\n" +
				"  intro-step:\n    template: intro.html\n" +
				"  make-payment-step:\n    template: payment.html\n",
		)},
	}

	f, err := payflow.Bootstrap(context.Background(), strings.NewReader(wizardPage),
		flow.WithTemplateFS(templates),
		flow.WithSchemaFS(schemas),
	)
	if err != nil {
		t.Fatalf("bootstrap: %v", err)
	}

	if got := f.CurrentStep(); got != steps.Intro {
		t.Fatalf("current step mismatch: %q", got)
	}

	out, err := f.Render(context.Background())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if string(out) != "<h1>Verify Your Identity</h1>" {
		t.Fatalf("unexpected intro markup: %q", string(out))
	}

	f.Advance()
	out, err = f.Render(context.Background())
	if err != nil {
		t.Fatalf("render payment: %v", err)
	}
	if string(out) != "<form>40</form>" {
		t.Fatalf("unexpected payment markup: %q", string(out))
	}
}

func TestRenderStep(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir+"/confirm.html", "<p>Thanks! Next up: {{ nextStepTitle }}</p>")

	out, err := payflow.RenderStep(context.Background(),
		payflow.FileSource(dir+"/confirm.html"),
		payflow.StepData{},
		payflow.NextStep{Num: "4", Title: "Review Photos"},
	)
	if err != nil {
		t.Fatalf("render step: %v", err)
	}
	if out != "<p>Thanks! Next up: Review Photos</p>" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
