package design

import (
	"encoding/json"
	"fmt"
)

// ExportDesign serializes a design to indented JSON. A nil element list
// exports as an empty one; ImportDesign rejects a null elements key.
func ExportDesign(d Design) (string, error) {
	if d.Elements == nil {
		d.Elements = []Element{}
	}
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to serialize design: %w", err)
	}
	return string(data), nil
}

// ImportDesign parses an exported design document. The check is shallow:
// the top-level object must carry version, elements and pageSize. Element
// payloads are not validated any deeper.
func ImportDesign(text string) (Design, error) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal([]byte(text), &probe); err != nil {
		return Design{}, fmt.Errorf("invalid design document: %w", err)
	}

	for _, key := range []string{"version", "elements", "pageSize"} {
		raw, ok := probe[key]
		if !ok || string(raw) == "null" {
			return Design{}, fmt.Errorf("invalid design document: missing %s", key)
		}
	}

	var d Design
	if err := json.Unmarshal([]byte(text), &d); err != nil {
		return Design{}, fmt.Errorf("invalid design document: %w", err)
	}
	return d, nil
}
