package step

import (
	"context"
	"time"

	"github.com/microcosm-cc/bluemonday"

	internalloader "github.com/goliatone/go-payflow/internal/resource/loader"
	"github.com/goliatone/go-payflow/pkg/render/template"
	"github.com/goliatone/go-payflow/pkg/render/template/pongo2"
	"github.com/goliatone/go-payflow/pkg/resource"
)

// Data is the step-specific context mapping merged into a template fragment.
type Data = map[string]any

// NextStep carries the metadata a step exposes about the step that follows
// it. Both values may be empty when the step is last or the flow does not
// know yet.
type NextStep struct {
	Num   string
	Title string
}

const defaultRequestTimeout = 10 * time.Second

// Option configures a view before first use.
type Option func(*View)

// WithSource sets the template resource the view fetches on first render.
// Views without a source render empty content.
func WithSource(src resource.Source) Option {
	return func(v *View) {
		v.source = src
	}
}

// WithData sets the step-specific context mapping.
func WithData(data Data) Option {
	return func(v *View) {
		v.data = data
	}
}

// WithNext sets the next-step metadata exposed to the template.
func WithNext(next NextStep) Option {
	return func(v *View) {
		v.next = next
	}
}

// WithLoader injects the fragment loader. The default supports files, and
// HTTP URLs with a bounded request timeout.
func WithLoader(loader resource.Loader) Option {
	return func(v *View) {
		v.loader = loader
	}
}

// WithEngine injects the template engine used for the context merge.
func WithEngine(engine template.TemplateRenderer) Option {
	return func(v *View) {
		v.engine = engine
	}
}

// WithElement mounts the view on an existing element instead of a fresh one.
func WithElement(el *Element) Option {
	return func(v *View) {
		if el != nil {
			v.el = el
		}
	}
}

// WithHook sets the post-render hook.
func WithHook(hook Hook) Option {
	return func(v *View) {
		v.hook = hook
	}
}

// WithSanitizer applies a bluemonday policy to fragments fetched from remote
// URLs before caching. Local file and fs.FS fragments are trusted as-is.
func WithSanitizer(policy *bluemonday.Policy) Option {
	return func(v *View) {
		v.sanitizer = policy
	}
}

// WithRemoteSanitizer applies the shared FragmentPolicy to remote fragments.
func WithRemoteSanitizer() Option {
	return WithSanitizer(FragmentPolicy())
}

// WithName labels the view for registries and logging.
func WithName(name string) Option {
	return func(v *View) {
		v.name = name
	}
}

// View lazily fetches a template fragment at most once, merges it with
// next-step metadata plus step-specific data, caches the rendered result, and
// writes it into its mount element.
//
// A view moves through three informal states: uninitialized, fetching, and
// rendered. Rendered is terminal and idempotent: subsequent Render calls
// re-apply the cached markup and re-run the post-render hook without touching
// the network. The cache gate is the rendered string itself, so a fragment
// that renders to empty output is indistinguishable from "never rendered" and
// will be fetched again. A view is owned by a single goroutine; overlapping
// Render calls are not guarded and may fetch twice.
type View struct {
	name      string
	el        *Element
	source    resource.Source
	data      Data
	next      NextStep
	loader    resource.Loader
	engine    template.TemplateRenderer
	sanitizer *bluemonday.Policy
	hook      Hook
	emitter   Emitter

	rendered string
}

// New constructs a view applying any provided options. Missing dependencies
// are initialised with the built-in loader and engine so callers can start
// with a single constructor call.
func New(options ...Option) (*View, error) {
	v := &View{
		el: NewElement(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(v)
	}

	if v.loader == nil {
		v.loader = internalloader.New(resource.LoaderOptions{
			AllowHTTPFallback: true,
			RequestTimeout:    defaultRequestTimeout,
		})
	}
	if v.engine == nil {
		engine, err := pongo2.New()
		if err != nil {
			return nil, err
		}
		v.engine = engine
	}

	return v, nil
}

// Render brings the element up to date. On the first call with a template
// source present it fetches the fragment, merges the context, caches the
// result, writes it into the element, and runs the post-render hook. On
// subsequent calls (or when no source was configured) it re-applies the
// cached, possibly empty, markup and runs the hook again.
//
// A fetch or merge failure is reported to the caller and otherwise left
// unhandled: the element keeps its previous content, the hook does not run,
// and no retry is attempted.
func (v *View) Render(ctx context.Context) error {
	return v.RenderWith(ctx, nil)
}

// RenderWith renders with extra base context (for example theme data from
// the flow). Base keys sit below the next-step metadata, which in turn sits
// below the step-specific data, so step keys always win.
func (v *View) RenderWith(ctx context.Context, base Data) error {
	if v.rendered == "" && v.source != nil {
		frag, err := v.loader.Load(ctx, v.source)
		if err != nil {
			return err
		}

		markup, err := v.engine.RenderString(frag.Text(), v.templateContext(base))
		if err != nil {
			return err
		}

		if v.sanitizer != nil && v.source.Kind() == resource.SourceKindURL {
			markup = v.sanitizer.Sanitize(markup)
		}

		v.rendered = markup
	}

	v.el.SetContent(v.rendered)
	v.postRender()
	return nil
}

func (v *View) templateContext(base Data) Data {
	merged := make(Data, len(base)+len(v.data)+2)
	for key, value := range base {
		merged[key] = value
	}
	merged["nextStepNum"] = v.next.Num
	merged["nextStepTitle"] = v.next.Title
	for key, value := range v.data {
		merged[key] = value
	}
	return merged
}

// postRender runs immediately after element content has been set, in both
// the cached and freshly fetched paths.
func (v *View) postRender() {
	if v.hook != nil {
		v.hook.PostRender(v)
	}
}

// NextStepSignal emits a single next-step signal to registered listeners. It
// mutates nothing and does not itself navigate.
func (v *View) NextStepSignal() {
	v.emitter.Emit(EventNextStep)
}

// OnNextStep registers a listener for the next-step signal.
func (v *View) OnNextStep(fn func()) {
	v.emitter.On(EventNextStep, fn)
}

// Name returns the view's label.
func (v *View) Name() string {
	return v.name
}

// Element returns the view's mount element.
func (v *View) Element() *Element {
	return v.el
}

// Data returns the step-specific context mapping.
func (v *View) Data() Data {
	return v.data
}

// Next returns the next-step metadata.
func (v *View) Next() NextStep {
	return v.next
}

// Hook returns the post-render hook, or nil. Variants register themselves as
// the hook, so callers can recover the variant behind a flow-built view with
// a type assertion.
func (v *View) Hook() Hook {
	return v.hook
}

// Rendered reports whether the view holds cached output.
func (v *View) Rendered() bool {
	return v.rendered != ""
}
