package services

import (
	"encoding/json"
	"fmt"
)

// toMap converts a struct to the map form Ent stores in JSON columns.
func toMap(v any) (map[string]interface{}, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal to JSON: %w", err)
	}
	var out map[string]interface{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("failed to unmarshal into map: %w", err)
	}
	return out, nil
}

// fromMap decodes an Ent JSON column back into a typed struct.
func fromMap(m map[string]interface{}, v any) error {
	raw, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to marshal map: %w", err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("failed to unmarshal from map: %w", err)
	}
	return nil
}
