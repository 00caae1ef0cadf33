// Package bootstrap reads the pay-and-verify wizard's configuration off the
// server-rendered container element's data attributes and hands it to the
// root flow view. It runs once per page; the resulting configuration is
// immutable afterward.
package bootstrap

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"golang.org/x/net/html"

	"github.com/goliatone/go-payflow/pkg/flow"
	"github.com/goliatone/go-payflow/pkg/step"
)

// ContainerID names the single designated container element carrying the
// wizard configuration.
const ContainerID = "pay-and-verify-container"

// FromReader parses an HTML document, locates the container element, and
// assembles the flow configuration from its attributes.
func FromReader(r io.Reader) (flow.Config, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return flow.Config{}, fmt.Errorf("bootstrap: parse document: %w", err)
	}

	node := Locate(doc)
	if node == nil {
		return flow.Config{}, fmt.Errorf("bootstrap: container element #%s not found", ContainerID)
	}
	return Parse(node)
}

// Locate walks the document for the container element. It returns nil when
// the element is absent.
func Locate(doc *html.Node) *html.Node {
	if doc == nil {
		return nil
	}
	if doc.Type == html.ElementNode && attr(doc, "id") == ContainerID {
		return doc
	}
	for child := doc.FirstChild; child != nil; child = child.NextSibling {
		if found := Locate(child); found != nil {
			return found
		}
	}
	return nil
}

// Parse assembles the flow configuration from the container element's
// attributes. Absent attributes become empty values; there is no validation,
// that is the contract with the server-rendered markup.
func Parse(node *html.Node) (flow.Config, error) {
	cfg := flow.Config{
		CurrentStep: attr(node, "data-current-step"),
		StepInfo:    make(map[string]step.Data, len(stepAttributes)),
	}

	if raw := attr(node, "data-display-steps"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &cfg.DisplaySteps); err != nil {
			return flow.Config{}, fmt.Errorf("bootstrap: parse data-display-steps: %w", err)
		}
	}

	for stepName, attributes := range stepAttributes {
		data := make(step.Data, len(attributes))
		for _, spec := range attributes {
			raw := attr(node, spec.attr)
			if spec.split {
				data[spec.key] = SplitPrices(raw)
			} else {
				data[spec.key] = raw
			}
		}
		cfg.StepInfo[stepName] = data
	}

	return cfg, nil
}

// Start is the one-shot page-load entry point: read the configuration,
// construct the root flow view, and invoke its render operation.
func Start(ctx context.Context, r io.Reader, options ...flow.Option) (*flow.Flow, error) {
	cfg, err := FromReader(r)
	if err != nil {
		return nil, err
	}

	f, err := flow.New(cfg, options...)
	if err != nil {
		return nil, err
	}

	if _, err := f.Render(ctx); err != nil {
		return nil, err
	}
	return f, nil
}

func attr(node *html.Node, name string) string {
	for _, a := range node.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}
