package step

// Hook is the post-render extension point. Step variants implement it to
// attach behavior once content is present in the element. A hook must be safe
// to invoke multiple times: Render re-runs it on every call once the view has
// cached output.
type Hook interface {
	PostRender(v *View)
}

// HookFunc adapts a plain function to the Hook interface.
type HookFunc func(v *View)

// PostRender implements Hook.
func (fn HookFunc) PostRender(v *View) {
	fn(v)
}
