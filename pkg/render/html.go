package render

import (
	"context"
	"errors"

	"github.com/goliatone/go-payflow/pkg/step"
)

// HTMLRenderer emits the step element's markup verbatim after bringing the
// view up to date.
type HTMLRenderer struct{}

// NewHTML constructs the default HTML renderer.
func NewHTML() *HTMLRenderer {
	return &HTMLRenderer{}
}

// Name reports the renderer identifier.
func (r *HTMLRenderer) Name() string {
	return "html"
}

// ContentType reports the MIME type of Render output.
func (r *HTMLRenderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render renders the view and returns the element content.
func (r *HTMLRenderer) Render(ctx context.Context, view *step.View, options RenderOptions) ([]byte, error) {
	if view == nil {
		return nil, errors.New("render: view is required")
	}

	if err := view.RenderWith(ctx, baseContext(options)); err != nil {
		return nil, err
	}
	return []byte(view.Element().Content()), nil
}

// baseContext folds render options into the context layer that sits below the
// step's own data.
func baseContext(options RenderOptions) step.Data {
	base := make(step.Data, len(options.Values)+1)
	for key, value := range options.Values {
		base[key] = value
	}
	if options.Theme != nil {
		base["theme"] = themeContext(options.Theme)
	}
	return base
}
