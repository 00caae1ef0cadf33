package bootstrap_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-payflow/pkg/bootstrap"
	"github.com/goliatone/go-payflow/pkg/steps"
)

func TestFromReader_EndToEnd(t *testing.T) {
	markup := `<html><body>
		<div id="pay-and-verify-container"
			data-display-steps='["intro-step","make-payment-step"]'
			data-current-step="intro-step"
			data-intro-title="Verify Your Identity">
		</div>
	</body></html>`

	cfg, err := bootstrap.FromReader(strings.NewReader(markup))
	if err != nil {
		t.Fatalf("from reader: %v", err)
	}

	wantSteps := []string{"intro-step", "make-payment-step"}
	if diff := cmp.Diff(wantSteps, cfg.DisplaySteps); diff != "" {
		t.Fatalf("display steps mismatch (-want +got):\n%s", diff)
	}
	if cfg.CurrentStep != "intro-step" {
		t.Fatalf("current step mismatch: %q", cfg.CurrentStep)
	}
	if got := cfg.StepInfo[steps.Intro]["introTitle"]; got != "Verify Your Identity" {
		t.Fatalf("intro title mismatch: %v", got)
	}
}

func TestParse_PaymentAttributes(t *testing.T) {
	markup := `<div id="pay-and-verify-container"
		data-course-key="course-v1:edX+DemoX+2026"
		data-min-price="40"
		data-suggested-prices="10,25,50"
		data-currency="usd"
		data-purchase-endpoint="https://pay.example.com/api"></div>`

	cfg, err := bootstrap.FromReader(strings.NewReader(markup))
	if err != nil {
		t.Fatalf("from reader: %v", err)
	}

	payment := cfg.StepInfo[steps.MakePayment]
	if payment["courseKey"] != "course-v1:edX+DemoX+2026" {
		t.Fatalf("course key mismatch: %v", payment["courseKey"])
	}
	if payment["minPrice"] != "40" {
		t.Fatalf("min price mismatch: %v", payment["minPrice"])
	}
	if payment["currency"] != "usd" {
		t.Fatalf("currency mismatch: %v", payment["currency"])
	}
	if payment["purchaseEndpoint"] != "https://pay.example.com/api" {
		t.Fatalf("purchase endpoint mismatch: %v", payment["purchaseEndpoint"])
	}
	if diff := cmp.Diff([]string{"10", "25", "50"}, payment["suggestedPrices"]); diff != "" {
		t.Fatalf("suggested prices mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_AbsentAttributesYieldEmptyValues(t *testing.T) {
	markup := `<div id="pay-and-verify-container"></div>`

	cfg, err := bootstrap.FromReader(strings.NewReader(markup))
	if err != nil {
		t.Fatalf("from reader: %v", err)
	}

	if len(cfg.DisplaySteps) != 0 {
		t.Fatalf("expected no display steps, got %v", cfg.DisplaySteps)
	}
	if cfg.CurrentStep != "" {
		t.Fatalf("expected empty current step, got %q", cfg.CurrentStep)
	}

	payment := cfg.StepInfo[steps.MakePayment]
	if payment["courseKey"] != "" {
		t.Fatalf("absent attribute should be empty, got %v", payment["courseKey"])
	}
	// Splitting the empty default produces one empty element. Downstream
	// consumers depend on that exact shape.
	if diff := cmp.Diff([]string{""}, payment["suggestedPrices"]); diff != "" {
		t.Fatalf("suggested prices edge case mismatch (-want +got):\n%s", diff)
	}
}

func TestSplitPrices(t *testing.T) {
	if diff := cmp.Diff([]string{"10", "25", "50"}, bootstrap.SplitPrices("10,25,50")); diff != "" {
		t.Fatalf("split mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{""}, bootstrap.SplitPrices("")); diff != "" {
		t.Fatalf("empty split mismatch (-want +got):\n%s", diff)
	}
}

func TestFromReader_MissingContainer(t *testing.T) {
	_, err := bootstrap.FromReader(strings.NewReader("<div id='other'></div>"))
	if err == nil {
		t.Fatalf("expected an error when the container is absent")
	}
}

func TestParse_MalformedDisplaySteps(t *testing.T) {
	markup := `<div id="pay-and-verify-container" data-display-steps="not-json"></div>`

	if _, err := bootstrap.FromReader(strings.NewReader(markup)); err == nil {
		t.Fatalf("expected an error for malformed display steps")
	}
}
