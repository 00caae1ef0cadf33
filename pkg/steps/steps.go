// Package steps provides the concrete step variants of the pay-and-verify
// wizard. Variants are not a class hierarchy: each one assembles a base
// step.View and, where it has behavior to attach, implements the post-render
// hook contract.
package steps

import (
	"net/http"

	"github.com/goliatone/go-payflow/pkg/render/template"
	"github.com/goliatone/go-payflow/pkg/resource"
	"github.com/goliatone/go-payflow/pkg/step"
)

// Deps carries the shared dependencies a factory needs to assemble a view.
// Nil fields fall back to the step package's built-ins.
type Deps struct {
	// Loader fetches template fragments.
	Loader resource.Loader
	// Engine merges fragments with context.
	Engine template.TemplateRenderer
	// Source locates this step's template fragment; nil renders empty.
	Source resource.Source
	// HTTPClient is handed to endpoint clients (the payment step's purchase
	// endpoint).
	HTTPClient *http.Client
	// SanitizeRemote applies the shared fragment policy to URL-sourced
	// fragments.
	SanitizeRemote bool
}

// Factory builds a step view from its configuration slice. The flow holds a
// table of these keyed by step name.
type Factory func(deps Deps, data step.Data, next step.NextStep) (*step.View, error)

// Defaults returns the factory table for the built-in steps.
func Defaults() map[string]Factory {
	return map[string]Factory{
		Intro:               NewIntro,
		MakePayment:         paymentFactory,
		PaymentConfirmation: NewPaymentConfirmation,
		ReviewPhotos:        NewReviewPhotos,
	}
}

// NewIntro builds the introduction step. It has no behavior beyond rendering
// its fragment.
func NewIntro(deps Deps, data step.Data, next step.NextStep) (*step.View, error) {
	return newBasicView(Intro, deps, data, next)
}

// NewPaymentConfirmation builds the receipt step shown after a successful
// purchase.
func NewPaymentConfirmation(deps Deps, data step.Data, next step.NextStep) (*step.View, error) {
	return newBasicView(PaymentConfirmation, deps, data, next)
}

// NewReviewPhotos builds the final verification step where the learner
// reviews their submitted photos.
func NewReviewPhotos(deps Deps, data step.Data, next step.NextStep) (*step.View, error) {
	return newBasicView(ReviewPhotos, deps, data, next)
}

// Generic returns a factory producing a plain view for an arbitrary step
// name, used by the flow for steps without a registered factory.
func Generic(name string) Factory {
	return func(deps Deps, data step.Data, next step.NextStep) (*step.View, error) {
		return newBasicView(name, deps, data, next)
	}
}

func newBasicView(name string, deps Deps, data step.Data, next step.NextStep) (*step.View, error) {
	return step.New(viewOptions(name, deps, data, next)...)
}

func viewOptions(name string, deps Deps, data step.Data, next step.NextStep) []step.Option {
	options := []step.Option{
		step.WithName(name),
		step.WithData(data),
		step.WithNext(next),
	}
	if deps.Source != nil {
		options = append(options, step.WithSource(deps.Source))
	}
	if deps.Loader != nil {
		options = append(options, step.WithLoader(deps.Loader))
	}
	if deps.Engine != nil {
		options = append(options, step.WithEngine(deps.Engine))
	}
	if deps.SanitizeRemote {
		options = append(options, step.WithRemoteSanitizer())
	}
	return options
}

func stringValue(data step.Data, key string) string {
	if data == nil {
		return ""
	}
	if value, ok := data[key].(string); ok {
		return value
	}
	return ""
}

func stringSlice(data step.Data, key string) []string {
	if data == nil {
		return nil
	}
	switch value := data[key].(type) {
	case []string:
		return value
	case []any:
		out := make([]string, 0, len(value))
		for _, item := range value {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}
