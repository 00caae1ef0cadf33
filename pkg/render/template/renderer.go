package template

import (
	"io"
)

// TemplateRenderer is the engine seam step views rely on to merge a template
// fragment with a context mapping. RenderString handles fragments fetched at
// runtime; RenderTemplate resolves named templates from the engine's own
// storage.
type TemplateRenderer interface {
	Render(name string, data any, out ...io.Writer) (string, error)
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
	RegisterFilter(name string, fn func(input any, param any) (any, error)) error
	GlobalContext(data any) error
}
