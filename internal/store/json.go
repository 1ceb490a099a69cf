package store

import (
	"encoding/json"
	"fmt"
)

// Ent stores structured JSON columns as []map[string]any. These helpers
// round-trip between that representation and the typed slices the domain
// packages use.

func toJSONMaps(v any) ([]map[string]any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal: %w", err)
	}
	var maps []map[string]any
	if err := json.Unmarshal(raw, &maps); err != nil {
		return nil, fmt.Errorf("unmarshal to maps: %w", err)
	}
	return maps, nil
}

func fromJSONMaps(maps []map[string]any, target any) error {
	raw, err := json.Marshal(maps)
	if err != nil {
		return fmt.Errorf("marshal maps: %w", err)
	}
	if err := json.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("unmarshal: %w", err)
	}
	return nil
}
