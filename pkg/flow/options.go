package flow

import (
	"io/fs"
	"net/http"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-payflow/pkg/render"
	"github.com/goliatone/go-payflow/pkg/render/template"
	"github.com/goliatone/go-payflow/pkg/resource"
	"github.com/goliatone/go-payflow/pkg/steps"
)

// Option customises the flow configuration.
type Option func(*Flow)

// WithLoader injects a custom fragment loader.
func WithLoader(loader resource.Loader) Option {
	return func(f *Flow) {
		f.loader = loader
	}
}

// WithEngine injects a custom template engine.
func WithEngine(engine template.TemplateRenderer) Option {
	return func(f *Flow) {
		f.engine = engine
	}
}

// WithRegistry injects a renderer registry. The built-in html and text
// renderers are registered when their names are still free.
func WithRegistry(registry *render.Registry) Option {
	return func(f *Flow) {
		f.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a render call omits an
// explicit name.
func WithDefaultRenderer(name string) Option {
	return func(f *Flow) {
		f.defaultRenderer = name
	}
}

// WithFactory registers or replaces the factory for one step name.
func WithFactory(name string, factory steps.Factory) Option {
	return func(f *Flow) {
		if name == "" || factory == nil {
			return
		}
		f.factories[name] = factory
	}
}

// WithTemplateFS supplies the filesystem template fragments resolve against
// when a step definition names a non-URL location.
func WithTemplateFS(fsys fs.FS) Option {
	return func(f *Flow) {
		f.templateFS = fsys
	}
}

// WithSchemaFS supplies an fs.FS holding flow schema documents (step titles,
// template locations, extra context).
func WithSchemaFS(fsys fs.FS) Option {
	return func(f *Flow) {
		f.schemaFS = fsys
	}
}

// WithHTTPClient injects the HTTP client shared by the fragment loader and
// the steps' endpoint clients.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(f *Flow) {
		f.httpClient = httpClient
	}
}

// WithThemeSelector registers a go-theme selector so theme name/variant
// choices are resolved ahead of rendering and exposed to templates under the
// `theme` context key.
func WithThemeSelector(selector theme.ThemeSelector) Option {
	return func(f *Flow) {
		f.themeSelector = selector
	}
}

// WithTheme sets the theme name and variant passed to the selector.
func WithTheme(name, variant string) Option {
	return func(f *Flow) {
		f.themeName = name
		f.themeVariant = variant
	}
}

// WithSanitizeRemote applies the shared fragment policy to URL-sourced
// fragments of every step.
func WithSanitizeRemote() Option {
	return func(f *Flow) {
		f.sanitizeRemote = true
	}
}
