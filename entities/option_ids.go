package entities

import (
	"encoding/json"
)

// EncodeOptionIDs serializes the option ids chosen for a line. The ids are
// stored as given and never checked against the catalog.
func EncodeOptionIDs(ids []string) string {
	if len(ids) == 0 {
		return "[]"
	}
	b, err := json.Marshal(ids)
	if err != nil {
		return "[]"
	}
	return string(b)
}

func DecodeOptionIDs(raw string) []string {
	ids := []string{}
	if raw == "" {
		return ids
	}
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return []string{}
	}
	return ids
}
