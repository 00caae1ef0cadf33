package flowschema

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

type document struct {
	Steps map[string]StepDefinition `json:"steps" yaml:"steps"`
}

// LoadFS walks the provided filesystem and parses JSON/YAML flow schema
// files. When fsys is nil or no schema files are present, the returned store
// is empty.
func LoadFS(fsys fs.FS) (*Store, error) {
	store := &Store{steps: make(map[string]StepDefinition)}
	if fsys == nil {
		return store, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() {
			return nil
		}
		if !isSchemaFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("flowschema: read %s: %w", path, err)
		}

		doc, err := parseDocument(data, path)
		if err != nil {
			return err
		}

		for stepName, def := range doc.Steps {
			name := strings.TrimSpace(stepName)
			if name == "" {
				return fmt.Errorf("flowschema: file %s defines an empty step name", path)
			}
			if _, exists := store.steps[name]; exists {
				return fmt.Errorf("flowschema: duplicate step %q (file %s)", name, path)
			}
			store.steps[name] = def
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return store, nil
}

func parseDocument(data []byte, path string) (document, error) {
	var doc document

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(data, &doc); err != nil {
			return document{}, fmt.Errorf("flowschema: parse %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return document{}, fmt.Errorf("flowschema: parse %s: %w", path, err)
		}
	default:
		return document{}, fmt.Errorf("flowschema: unsupported file %s", path)
	}

	return doc, nil
}

func isSchemaFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
