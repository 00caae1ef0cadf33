// Package flow implements the root view of the pay-and-verify wizard: it
// owns one step view per displayed step, renders the active one, and advances
// on the next-step signal.
package flow

import (
	"context"
	"fmt"
	"io/fs"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	theme "github.com/goliatone/go-theme"

	internalloader "github.com/goliatone/go-payflow/internal/resource/loader"
	"github.com/goliatone/go-payflow/pkg/flowschema"
	"github.com/goliatone/go-payflow/pkg/render"
	"github.com/goliatone/go-payflow/pkg/render/template"
	"github.com/goliatone/go-payflow/pkg/render/template/pongo2"
	"github.com/goliatone/go-payflow/pkg/resource"
	"github.com/goliatone/go-payflow/pkg/step"
	"github.com/goliatone/go-payflow/pkg/steps"
)

const (
	defaultRendererName   = "html"
	defaultRequestTimeout = 10 * time.Second
)

// Flow coordinates the wizard: it builds a step view per display step from
// the factory table, renders the active step through the renderer registry,
// and moves the active-step pointer when a step signals next-step.
//
// Like the step views it owns, a Flow belongs to a single goroutine.
type Flow struct {
	config          Config
	loader          resource.Loader
	engine          template.TemplateRenderer
	registry        *render.Registry
	defaultRenderer string
	factories       map[string]steps.Factory
	templateFS      fs.FS
	schemaFS        fs.FS
	httpClient      *http.Client
	themeSelector   theme.ThemeSelector
	themeName       string
	themeVariant    string
	themeConfig     *theme.RendererConfig
	sanitizeRemote  bool

	views   map[string]*step.View
	current int
}

// New constructs the root flow view for the given configuration. Missing
// dependencies are initialised with the built-ins so callers can start with a
// single constructor call.
func New(config Config, options ...Option) (*Flow, error) {
	f := &Flow{
		config:          config,
		defaultRenderer: defaultRendererName,
		factories:       steps.Defaults(),
		views:           make(map[string]*step.View),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(f)
	}

	if err := f.applyDefaults(); err != nil {
		return nil, err
	}
	if err := f.resolveTheme(); err != nil {
		return nil, err
	}
	if err := f.buildViews(); err != nil {
		return nil, err
	}

	f.current = f.indexOf(config.CurrentStep)
	return f, nil
}

func (f *Flow) applyDefaults() error {
	if f.loader == nil {
		f.loader = internalloader.New(resource.LoaderOptions{
			FileSystem:        f.templateFS,
			HTTPClient:        f.httpClient,
			AllowHTTPFallback: true,
			RequestTimeout:    defaultRequestTimeout,
		})
	}

	if f.engine == nil {
		var engineOptions []pongo2.Option
		if f.templateFS != nil {
			engineOptions = append(engineOptions, pongo2.WithFS(f.templateFS))
		}
		engine, err := pongo2.New(engineOptions...)
		if err != nil {
			return fmt.Errorf("flow: build engine: %w", err)
		}
		f.engine = engine
	}

	if f.registry == nil {
		f.registry = render.NewRegistry()
	}
	if !f.registry.Has("html") {
		f.registry.MustRegister(render.NewHTML())
	}
	if !f.registry.Has("text") {
		f.registry.MustRegister(render.NewText())
	}
	return nil
}

func (f *Flow) resolveTheme() error {
	if f.themeSelector == nil {
		return nil
	}

	selection, err := f.themeSelector.Select(f.themeName, f.themeVariant)
	if err != nil {
		return fmt.Errorf("flow: resolve theme: %w", err)
	}
	if selection == nil {
		return nil
	}

	cfg := &theme.RendererConfig{
		Theme:   selection.Theme,
		Variant: selection.Variant,
	}
	if selection.Manifest != nil {
		cfg.Tokens = selection.Manifest.Tokens
	}
	f.themeConfig = cfg
	return nil
}

func (f *Flow) buildViews() error {
	schema, err := flowschema.LoadFS(f.schemaFS)
	if err != nil {
		return err
	}

	for i, name := range f.config.DisplaySteps {
		def, _ := schema.Step(name)

		source, err := f.resolveSource(def.Template)
		if err != nil {
			return fmt.Errorf("flow: step %q: %w", name, err)
		}

		data := mergeData(def.Data, f.config.StepInfo[name])
		deps := steps.Deps{
			Loader:         f.loader,
			Engine:         f.engine,
			Source:         source,
			HTTPClient:     f.httpClient,
			SanitizeRemote: f.sanitizeRemote,
		}

		factory, ok := f.factories[name]
		if !ok {
			factory = steps.Generic(name)
		}

		view, err := factory(deps, data, f.nextMetadata(schema, i))
		if err != nil {
			return fmt.Errorf("flow: build step %q: %w", name, err)
		}

		view.OnNextStep(f.advance)
		f.views[name] = view
	}
	return nil
}

// nextMetadata describes the step after position i: its 1-based position and
// display title. The last step gets empty metadata.
func (f *Flow) nextMetadata(schema *flowschema.Store, i int) step.NextStep {
	if i+1 >= len(f.config.DisplaySteps) {
		return step.NextStep{}
	}

	nextName := f.config.DisplaySteps[i+1]
	title := steps.Title(nextName)
	if def, ok := schema.Step(nextName); ok && strings.TrimSpace(def.Title) != "" {
		title = def.Title
	}
	return step.NextStep{
		Num:   strconv.Itoa(i + 2),
		Title: title,
	}
}

// resolveSource maps a schema template location to a fragment source. URL
// locations come from user-supplied documents, so a malformed one is reported
// as an error rather than left to SourceFromURL's panic.
func (f *Flow) resolveSource(location string) (resource.Source, error) {
	trimmed := strings.TrimSpace(location)
	if trimmed == "" {
		return nil, nil
	}
	if strings.HasPrefix(trimmed, "http://") || strings.HasPrefix(trimmed, "https://") {
		if _, err := url.ParseRequestURI(trimmed); err != nil {
			return nil, fmt.Errorf("invalid template URL %q: %w", trimmed, err)
		}
		return resource.SourceFromURL(trimmed), nil
	}
	if f.templateFS != nil {
		return resource.SourceFromFS(trimmed), nil
	}
	return resource.SourceFromFile(trimmed), nil
}

// Render renders the active step with the default renderer.
func (f *Flow) Render(ctx context.Context) ([]byte, error) {
	return f.RenderStep(ctx, f.CurrentStep(), f.defaultRenderer)
}

// RenderWith renders the active step with a named renderer.
func (f *Flow) RenderWith(ctx context.Context, rendererName string) ([]byte, error) {
	return f.RenderStep(ctx, f.CurrentStep(), rendererName)
}

// RenderStep renders a specific step with a named renderer. An empty renderer
// name selects the flow's default.
func (f *Flow) RenderStep(ctx context.Context, stepName, rendererName string) ([]byte, error) {
	view, ok := f.views[stepName]
	if !ok {
		return nil, fmt.Errorf("flow: unknown step %q", stepName)
	}

	if rendererName == "" {
		rendererName = f.defaultRenderer
	}
	renderer, err := f.registry.Get(rendererName)
	if err != nil {
		return nil, err
	}

	return renderer.Render(ctx, view, render.RenderOptions{Theme: f.themeConfig})
}

// advance moves the active-step pointer forward. The next-step signal carries
// no payload and does not render; callers re-render after observing it.
func (f *Flow) advance() {
	if f.current+1 < len(f.config.DisplaySteps) {
		f.current++
	}
}

// Advance moves to the next display step and returns the new active step
// name. At the final step it stays put.
func (f *Flow) Advance() string {
	f.advance()
	return f.CurrentStep()
}

// CurrentStep returns the active step name, or empty when the flow displays
// no steps.
func (f *Flow) CurrentStep() string {
	if len(f.config.DisplaySteps) == 0 {
		return ""
	}
	return f.config.DisplaySteps[f.current]
}

// Steps returns the ordered display steps.
func (f *Flow) Steps() []string {
	return append([]string(nil), f.config.DisplaySteps...)
}

// View returns the step view built for the named step.
func (f *Flow) View(name string) (*step.View, bool) {
	view, ok := f.views[name]
	return view, ok
}

// Renderers lists the names in the flow's renderer registry.
func (f *Flow) Renderers() []string {
	return f.registry.List()
}

func (f *Flow) indexOf(stepName string) int {
	for i, name := range f.config.DisplaySteps {
		if name == stepName {
			return i
		}
	}
	return 0
}

func mergeData(below, above step.Data) step.Data {
	if len(below) == 0 && len(above) == 0 {
		return step.Data{}
	}

	merged := make(step.Data, len(below)+len(above))
	for key, value := range below {
		merged[key] = value
	}
	for key, value := range above {
		merged[key] = value
	}
	return merged
}
