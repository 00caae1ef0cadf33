package flow

import "github.com/goliatone/go-payflow/pkg/step"

// Config is the per-page wizard configuration the bootstrap assembles from
// the container element's attributes. It is built once at page load and not
// mutated afterward.
type Config struct {
	// DisplaySteps is the ordered sequence of step names to show.
	DisplaySteps []string
	// CurrentStep names the step that is active when the flow starts. When it
	// is empty or not present in DisplaySteps the flow starts at the first
	// step.
	CurrentStep string
	// StepInfo maps each step name to its slice of configuration. Absent
	// attributes surface as empty values; the flow passes them through
	// without validation.
	StepInfo map[string]step.Data
}
