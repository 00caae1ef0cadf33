// Package payflow renders the steps of a multi-step payment-and-verification
// wizard: configuration is read off a server-rendered container element's
// data attributes, and each step lazily fetches an HTML template fragment,
// merges it with step context, and caches the rendered result.
package payflow

import (
	"context"
	"io"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-payflow/pkg/bootstrap"
	"github.com/goliatone/go-payflow/pkg/flow"
	"github.com/goliatone/go-payflow/pkg/render"
	"github.com/goliatone/go-payflow/pkg/resource"
	"github.com/goliatone/go-payflow/pkg/step"
)

// Config is the wizard configuration the bootstrap assembles; alias exported
// via the root package for convenience.
type Config = flow.Config

// StepData is a step's key/value configuration slice.
type StepData = step.Data

// NextStep carries the metadata a step exposes about the following step.
type NextStep = step.NextStep

// RenderOptions describe per-request data renderers can use.
type RenderOptions = render.RenderOptions

// FileSource locates a template fragment on the local filesystem.
func FileSource(path string) resource.Source {
	return resource.SourceFromFile(path)
}

// FSSource locates a template fragment inside an fs.FS supplied to the flow.
func FSSource(name string) resource.Source {
	return resource.SourceFromFS(name)
}

// URLSource locates a template fragment behind an HTTP endpoint.
func URLSource(rawURL string) resource.Source {
	return resource.SourceFromURL(rawURL)
}

// NewFlow exposes the root flow view constructor from the top-level module.
func NewFlow(cfg Config, options ...flow.Option) (*flow.Flow, error) {
	return flow.New(cfg, options...)
}

// Bootstrap reads the container element's attributes from an HTML document,
// constructs the root flow view, and renders the active step. It is the
// one-shot page-load entry point.
func Bootstrap(ctx context.Context, r io.Reader, options ...flow.Option) (*flow.Flow, error) {
	return bootstrap.Start(ctx, r, options...)
}

// RenderStep fetches a single template fragment, merges it with next-step
// metadata plus step data, and returns the rendered markup. It is the
// simplest entry point for callers that just want one step's output.
func RenderStep(ctx context.Context, source resource.Source, data StepData, next NextStep) (string, error) {
	view, err := step.New(
		step.WithSource(source),
		step.WithData(data),
		step.WithNext(next),
	)
	if err != nil {
		return "", err
	}
	if err := view.Render(ctx); err != nil {
		return "", err
	}
	return view.Element().Content(), nil
}

// WithThemeSelector passes a go-theme selector through to the flow so
// theme/variant choices are resolved ahead of rendering.
func WithThemeSelector(selector theme.ThemeSelector) flow.Option {
	return flow.WithThemeSelector(selector)
}
