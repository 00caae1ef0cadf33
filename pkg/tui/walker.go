// Package tui walks a pay-and-verify flow in the terminal: each step renders
// as plain text and a prompt advances the wizard. It exists for demos and
// manual verification of flow configuration without a browser.
package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/goliatone/go-payflow/pkg/flow"
)

// WalkerOption configures a walker.
type WalkerOption func(*Walker)

// WithDriver replaces the survey-backed prompt driver.
func WithDriver(driver PromptDriver) WalkerOption {
	return func(w *Walker) {
		if driver != nil {
			w.driver = driver
		}
	}
}

// WithRenderer names the flow renderer used for step output. Defaults to the
// plain-text renderer.
func WithRenderer(name string) WalkerOption {
	return func(w *Walker) {
		if name != "" {
			w.renderer = name
		}
	}
}

// Walker steps through a flow on the terminal.
type Walker struct {
	flow     *flow.Flow
	driver   PromptDriver
	renderer string
}

// NewWalker constructs a walker for the given flow.
func NewWalker(f *flow.Flow, options ...WalkerOption) (*Walker, error) {
	if f == nil {
		return nil, errors.New("tui: flow is required")
	}

	w := &Walker{
		flow:     f,
		driver:   NewSurveyDriver(),
		renderer: "text",
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(w)
	}
	return w, nil
}

// Walk renders each step in turn, asking for confirmation before advancing.
// It returns nil when the final step has been shown or the user declines to
// continue.
func (w *Walker) Walk(ctx context.Context) error {
	stepNames := w.flow.Steps()
	if len(stepNames) == 0 {
		return w.driver.Info(ctx, "No steps to display.")
	}
	last := stepNames[len(stepNames)-1]

	for {
		current := w.flow.CurrentStep()

		output, err := w.flow.RenderStep(ctx, current, w.renderer)
		if err != nil {
			return fmt.Errorf("tui: render step %q: %w", current, err)
		}

		if err := w.driver.Info(ctx, fmt.Sprintf("== %s ==", current)); err != nil {
			return err
		}
		if len(output) > 0 {
			if err := w.driver.Info(ctx, string(output)); err != nil {
				return err
			}
		}

		if current == last {
			return nil
		}

		ok, err := w.driver.Confirm(ctx, ConfirmConfig{
			Message: "Continue to the next step?",
			Default: true,
		})
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}

		w.flow.Advance()
	}
}
