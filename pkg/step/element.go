package step

// Element is a view's mount point: the in-memory stand-in for the page node a
// step renders into. Each view owns its element exclusively, so no locking is
// needed; an element must not be shared across goroutines.
type Element struct {
	content string
}

// NewElement returns an empty mount element.
func NewElement() *Element {
	return &Element{}
}

// SetContent replaces the element's markup.
func (e *Element) SetContent(html string) {
	e.content = html
}

// Content returns the element's current markup.
func (e *Element) Content() string {
	return e.content
}
