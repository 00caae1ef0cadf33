package flowschema

import "sort"

// Store keeps the parsed step definitions from flow schema documents. It is
// safe for concurrent readers when treated as immutable after construction.
type Store struct {
	steps map[string]StepDefinition
}

// StepDefinition describes one wizard step as declared in a flow document:
// where its template fragment lives, what it is called, and any extra context
// merged beneath the bootstrap's attribute data.
type StepDefinition struct {
	// Title overrides the step's display title.
	Title string `json:"title" yaml:"title"`
	// Template locates the step's fragment. http(s) locations are fetched;
	// anything else resolves against the flow's template filesystem.
	Template string `json:"template" yaml:"template"`
	// Data is merged into the step's context below the attribute-sourced
	// values, so server-rendered configuration wins.
	Data map[string]any `json:"data" yaml:"data"`
}

// Step looks up a step definition by name.
func (s *Store) Step(name string) (StepDefinition, bool) {
	if s == nil {
		return StepDefinition{}, false
	}
	def, ok := s.steps[name]
	return def, ok
}

// Empty reports whether the store holds any definitions.
func (s *Store) Empty() bool {
	return s == nil || len(s.steps) == 0
}

// Names returns the defined step names, sorted.
func (s *Store) Names() []string {
	if s == nil {
		return nil
	}
	names := make([]string, 0, len(s.steps))
	for name := range s.steps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
