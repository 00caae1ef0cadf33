package render

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/net/html"

	"github.com/goliatone/go-payflow/pkg/step"
)

// TextRenderer strips markup from the rendered step so terminal consumers
// (the interactive walker, CLI output) get readable text.
type TextRenderer struct{}

// NewText constructs the plain-text renderer.
func NewText() *TextRenderer {
	return &TextRenderer{}
}

// Name reports the renderer identifier.
func (r *TextRenderer) Name() string {
	return "text"
}

// ContentType reports the MIME type of Render output.
func (r *TextRenderer) ContentType() string {
	return "text/plain; charset=utf-8"
}

// Render renders the view and returns the element content with tags removed
// and whitespace collapsed.
func (r *TextRenderer) Render(ctx context.Context, view *step.View, options RenderOptions) ([]byte, error) {
	if view == nil {
		return nil, errors.New("render: view is required")
	}

	if err := view.RenderWith(ctx, baseContext(options)); err != nil {
		return nil, err
	}
	return []byte(stripTags(view.Element().Content())), nil
}

func stripTags(markup string) string {
	if markup == "" {
		return ""
	}

	tokenizer := html.NewTokenizer(strings.NewReader(markup))
	var parts []string
	skipDepth := 0

	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			return strings.Join(parts, " ")
		case html.StartTagToken:
			name, _ := tokenizer.TagName()
			if isInvisible(string(name)) {
				skipDepth++
			}
		case html.EndTagToken:
			name, _ := tokenizer.TagName()
			if isInvisible(string(name)) && skipDepth > 0 {
				skipDepth--
			}
		case html.TextToken:
			if skipDepth > 0 {
				continue
			}
			text := strings.TrimSpace(string(tokenizer.Text()))
			if text != "" {
				parts = append(parts, strings.Join(strings.Fields(text), " "))
			}
		}
	}
}

func isInvisible(tag string) bool {
	switch tag {
	case "script", "style", "template":
		return true
	default:
		return false
	}
}
