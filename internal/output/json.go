package output

import (
	"encoding/json"
	"fmt"
)

// JSON marshals any result to indented JSON for machine consumption.
func JSON(v interface{}) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return string(data), nil
}
