package render

import (
	"context"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-payflow/pkg/step"
)

// Renderer converts a rendered step view into a byte representation (HTML,
// plain text, etc.) suitable for a response body or terminal output.
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, view *step.View, options RenderOptions) ([]byte, error)
}

// RenderOptions describe per-request data renderers can use to customise
// their output without touching the step view's own state.
type RenderOptions struct {
	// Theme carries the resolved theme configuration when the flow was
	// constructed with a theme selector. Renderers may ignore it.
	Theme *theme.RendererConfig
	// Values pre-populates step context before rendering, keyed the same way
	// as the step's own data mapping. Step data wins on conflict. Values only
	// take part in a view's first render: once the view holds cached markup
	// the merge is skipped, so later calls with different values reuse the
	// cached output.
	Values map[string]any
}
