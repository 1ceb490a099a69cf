package policy

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// overrideSchema constrains policy override files. Every field is optional;
// values outside their sane ranges are rejected before they reach the engine.
var overrideSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"max_new_cards_per_day":    map[string]any{"type": "integer", "minimum": 0, "maximum": 500},
		"max_review_cards_per_day": map[string]any{"type": "integer", "minimum": 0, "maximum": 500},
		"new_card_minutes":         map[string]any{"type": "number", "minimum": 0},
		"review_card_minutes":      map[string]any{"type": "number", "minimum": 0},
		"strength_threshold":       map[string]any{"type": "number", "minimum": 0, "maximum": 100},
		"weakness_threshold":       map[string]any{"type": "number", "minimum": 0, "maximum": 100},
		"min_topic_attempts":       map[string]any{"type": "integer", "minimum": 0},
		"topic_list_size":          map[string]any{"type": "integer", "minimum": 1, "maximum": 20},
		"target_accuracy":          map[string]any{"type": "number", "minimum": 0, "maximum": 100},
		"accuracy_band":            map[string]any{"type": "number", "minimum": 0, "maximum": 50},
		"min_adjust_samples":       map[string]any{"type": "integer", "minimum": 0},
		"questions_per_day":        map[string]any{"type": "integer", "minimum": 1, "maximum": 500},
		"path_question_count":      map[string]any{"type": "integer", "minimum": 1, "maximum": 1000},
		"path_min_difficulty":      map[string]any{"type": "integer", "minimum": 1, "maximum": 10},
		"path_max_difficulty":      map[string]any{"type": "integer", "minimum": 1, "maximum": 10},
	},
	"additionalProperties": false,
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

func compiled() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value (any), not raw
		// bytes. Marshal then unmarshal to get a clean any representation.
		defBytes, err := json.Marshal(overrideSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://policy-override.json"
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(schemaURL)
	})
	return compiledSchema, compileErr
}

// Load reads a JSON override file, validates it, and applies it on top of
// the default policy. Fields absent from the file keep their defaults.
func Load(path string) (Policy, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Policy{}, fmt.Errorf("read policy file: %w", err)
	}
	return Parse(raw)
}

// Parse validates and applies a JSON override on top of the default policy.
func Parse(raw []byte) (Policy, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return Policy{}, fmt.Errorf("invalid policy JSON: %w", err)
	}

	schema, err := compiled()
	if err != nil {
		return Policy{}, fmt.Errorf("compile policy schema: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return Policy{}, fmt.Errorf("policy validation failed: %w", err)
	}

	p := Default()
	if err := json.Unmarshal(raw, &p); err != nil {
		return Policy{}, fmt.Errorf("apply policy overrides: %w", err)
	}
	return p, nil
}
