package steps

import (
	"context"
	"errors"
	"fmt"

	"github.com/goliatone/go-payflow/pkg/enrollment"
	"github.com/goliatone/go-payflow/pkg/step"
)

// VerifiedMode is the course mode a successful purchase enrolls the learner
// in.
const VerifiedMode = "verified"

// Payment is the purchase step. Its post-render hook marks the step ready to
// accept a purchase; Purchase itself talks to the configured endpoint and
// emits the next-step signal on success.
type Payment struct {
	view      *step.View
	client    *enrollment.Client
	courseKey string
	currency  string
	minPrice  string
	prices    []string

	ready bool
}

// NewPayment builds the purchase step from its configuration slice. The
// returned Payment keeps the endpoint client and pricing data; View exposes
// the underlying step view for the flow.
func NewPayment(deps Deps, data step.Data, next step.NextStep) (*Payment, error) {
	p := &Payment{
		courseKey: stringValue(data, "courseKey"),
		currency:  stringValue(data, "currency"),
		minPrice:  stringValue(data, "minPrice"),
		prices:    stringSlice(data, "suggestedPrices"),
	}

	if endpoint := stringValue(data, "purchaseEndpoint"); endpoint != "" {
		var clientOptions []enrollment.Option
		if deps.HTTPClient != nil {
			clientOptions = append(clientOptions, enrollment.WithHTTPClient(deps.HTTPClient))
		}
		client, err := enrollment.New(endpoint, clientOptions...)
		if err != nil {
			return nil, fmt.Errorf("steps: payment endpoint: %w", err)
		}
		p.client = client
	}

	options := append(viewOptions(MakePayment, deps, data, next), step.WithHook(p))
	view, err := step.New(options...)
	if err != nil {
		return nil, err
	}
	p.view = view
	return p, nil
}

func paymentFactory(deps Deps, data step.Data, next step.NextStep) (*step.View, error) {
	p, err := NewPayment(deps, data, next)
	if err != nil {
		return nil, err
	}
	return p.View(), nil
}

// PaymentFrom recovers the Payment variant behind a view built by the
// factory table, so flow callers can reach Purchase and the pricing
// accessors. It reports false for views of other steps.
func PaymentFrom(view *step.View) (*Payment, bool) {
	if view == nil {
		return nil, false
	}
	p, ok := view.Hook().(*Payment)
	return p, ok
}

// PostRender implements the hook contract: once content is present the step
// can accept purchases. Safe to run repeatedly.
func (p *Payment) PostRender(_ *step.View) {
	p.ready = true
}

// View returns the underlying step view.
func (p *Payment) View() *step.View {
	return p.view
}

// Prices returns the suggested contribution amounts from configuration, in
// order. The list is passed through untouched, including the single
// empty-string entry produced when no prices were configured.
func (p *Payment) Prices() []string {
	return p.prices
}

// MinPrice returns the configured minimum price, possibly empty.
func (p *Payment) MinPrice() string {
	return p.minPrice
}

// Currency returns the configured currency code, possibly empty.
func (p *Payment) Currency() string {
	return p.currency
}

// Purchase enrolls the learner in the verified mode through the purchase
// endpoint and emits the next-step signal on success. The step must have
// rendered first, mirroring the page flow where the purchase control only
// exists once content is present.
func (p *Payment) Purchase(ctx context.Context, userID string) (enrollment.Enrollment, error) {
	if !p.ready {
		return enrollment.Enrollment{}, errors.New("steps: payment step has not rendered")
	}
	if p.client == nil {
		return enrollment.Enrollment{}, errors.New("steps: no purchase endpoint configured")
	}
	if p.courseKey == "" {
		return enrollment.Enrollment{}, errors.New("steps: no course key configured")
	}

	enrolled, err := p.client.Enroll(ctx, userID, p.courseKey, VerifiedMode)
	if err != nil {
		return enrollment.Enrollment{}, err
	}

	p.view.NextStepSignal()
	return enrolled, nil
}
