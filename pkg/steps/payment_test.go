package steps_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	internalloader "github.com/goliatone/go-payflow/internal/resource/loader"
	"github.com/goliatone/go-payflow/pkg/flow"
	"github.com/goliatone/go-payflow/pkg/resource"
	"github.com/goliatone/go-payflow/pkg/step"
	"github.com/goliatone/go-payflow/pkg/steps"
)

func paymentDeps(t *testing.T) steps.Deps {
	t.Helper()

	fsys := fstest.MapFS{
		"payment.html": {Data: []byte("<form>{{ minPrice }} {{ currency }}</form>")},
	}
	return steps.Deps{
		Loader: internalloader.New(resource.LoaderOptions{FileSystem: fsys}),
		Source: resource.SourceFromFS("payment.html"),
	}
}

func TestPayment_PurchaseRequiresRender(t *testing.T) {
	data := step.Data{
		"courseKey":        "course-v1:edX+DemoX+2026",
		"purchaseEndpoint": "https://pay.example.com/api",
	}

	payment, err := steps.NewPayment(paymentDeps(t), data, step.NextStep{})
	if err != nil {
		t.Fatalf("new payment: %v", err)
	}

	if _, err := payment.Purchase(context.Background(), "learner"); err == nil {
		t.Fatalf("expected purchase before render to fail")
	}
}

func TestPayment_PurchaseEnrollsAndSignals(t *testing.T) {
	endpoint := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]any
		_ = json.NewDecoder(r.Body).Decode(&payload)
		if payload["mode"] != steps.VerifiedMode {
			t.Errorf("mode mismatch: %v", payload["mode"])
		}

		_ = json.NewEncoder(w).Encode(map[string]any{
			"mode":      steps.VerifiedMode,
			"is_active": true,
			"course_details": map[string]any{
				"course_id": payload["course_id"],
			},
		})
	}))
	defer endpoint.Close()

	data := step.Data{
		"courseKey":        "course-v1:edX+DemoX+2026",
		"minPrice":         "40",
		"suggestedPrices":  []string{"40", "80", "120"},
		"currency":         "usd",
		"purchaseEndpoint": endpoint.URL,
	}

	payment, err := steps.NewPayment(paymentDeps(t), data, step.NextStep{Num: "3", Title: "Payment Confirmation"})
	if err != nil {
		t.Fatalf("new payment: %v", err)
	}

	var advanced int
	payment.View().OnNextStep(func() { advanced++ })

	if err := payment.View().Render(context.Background()); err != nil {
		t.Fatalf("render: %v", err)
	}
	if got := payment.View().Element().Content(); got != "<form>40 usd</form>" {
		t.Fatalf("unexpected content: %q", got)
	}

	enrolled, err := payment.Purchase(context.Background(), "learner")
	if err != nil {
		t.Fatalf("purchase: %v", err)
	}
	if enrolled.Mode != steps.VerifiedMode {
		t.Fatalf("mode mismatch: %q", enrolled.Mode)
	}
	if advanced != 1 {
		t.Fatalf("expected one next-step signal, got %d", advanced)
	}

	if diff := cmp.Diff([]string{"40", "80", "120"}, payment.Prices()); diff != "" {
		t.Fatalf("prices mismatch (-want +got):\n%s", diff)
	}
	if payment.MinPrice() != "40" || payment.Currency() != "usd" {
		t.Fatalf("pricing accessors mismatch: %q %q", payment.MinPrice(), payment.Currency())
	}
}

func TestPayment_NoEndpointConfigured(t *testing.T) {
	payment, err := steps.NewPayment(paymentDeps(t), step.Data{"courseKey": "course"}, step.NextStep{})
	if err != nil {
		t.Fatalf("new payment: %v", err)
	}

	if err := payment.View().Render(context.Background()); err != nil {
		t.Fatalf("render: %v", err)
	}
	if _, err := payment.Purchase(context.Background(), "learner"); err == nil {
		t.Fatalf("expected purchase without an endpoint to fail")
	}
}

func TestPaymentFrom(t *testing.T) {
	endpoint := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"mode":      steps.VerifiedMode,
			"is_active": true,
		})
	}))
	defer endpoint.Close()

	templates := fstest.MapFS{
		"payment.html": {Data: []byte("<form>{{ minPrice }}</form>")},
	}
	schemas := fstest.MapFS{
		"wizard.yaml": {Data: []byte("steps:\n  make-payment-step:\n    template: payment.html\n")},
	}

	f, err := flow.New(flow.Config{
		DisplaySteps: []string{steps.MakePayment},
		CurrentStep:  steps.MakePayment,
		StepInfo: map[string]step.Data{
			steps.MakePayment: {
				"courseKey":        "course-v1:edX+DemoX+2026",
				"minPrice":         "40",
				"purchaseEndpoint": endpoint.URL,
			},
		},
	},
		flow.WithTemplateFS(templates),
		flow.WithSchemaFS(schemas),
	)
	if err != nil {
		t.Fatalf("new flow: %v", err)
	}

	view, ok := f.View(steps.MakePayment)
	if !ok {
		t.Fatalf("payment view missing")
	}

	payment, ok := steps.PaymentFrom(view)
	if !ok {
		t.Fatalf("expected payment variant behind flow-built view")
	}
	if payment.MinPrice() != "40" {
		t.Fatalf("min price mismatch: %q", payment.MinPrice())
	}

	if _, err := f.Render(context.Background()); err != nil {
		t.Fatalf("render: %v", err)
	}
	enrolled, err := payment.Purchase(context.Background(), "learner")
	if err != nil {
		t.Fatalf("purchase: %v", err)
	}
	if enrolled.Mode != steps.VerifiedMode {
		t.Fatalf("mode mismatch: %q", enrolled.Mode)
	}

	intro, err := steps.NewIntro(paymentDeps(t), step.Data{}, step.NextStep{})
	if err != nil {
		t.Fatalf("new intro: %v", err)
	}
	if _, ok := steps.PaymentFrom(intro); ok {
		t.Fatalf("intro view must not expose a payment variant")
	}
	if _, ok := steps.PaymentFrom(nil); ok {
		t.Fatalf("nil view must not expose a payment variant")
	}
}

func TestTitle(t *testing.T) {
	if got := steps.Title(steps.MakePayment); got != "Make Payment" {
		t.Fatalf("built-in title mismatch: %q", got)
	}
	if got := steps.Title("face-photo-step"); got != "Face Photo" {
		t.Fatalf("derived title mismatch: %q", got)
	}
}
