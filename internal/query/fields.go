package query

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"
)

type Fields []string

func (f Fields) Has(name string) bool { return slices.Contains(f, name) }

// parseFields splits a comma list, drops blanks and duplicates and rejects
// names outside allowed.
func parseFields(raw, def string, allowed []string) (Fields, error) {
	if strings.TrimSpace(raw) == "" {
		raw = def
	}
	out := Fields{}
	for _, name := range strings.Split(raw, ",") {
		name = strings.TrimSpace(name)
		if name == "" || out.Has(name) {
			continue
		}
		if !slices.Contains(allowed, name) {
			return nil, fmt.Errorf("fields: unknown field %q: %w", name, ErrInvalidParameter)
		}
		out = append(out, name)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("fields: empty list: %w", ErrInvalidParameter)
	}
	return out, nil
}

// Project renders v through its JSON form and keeps id plus the selected
// fields. Selected collections that are missing come back as [].
func Project(v any, fields Fields) (map[string]any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var full map[string]any
	if err := json.Unmarshal(raw, &full); err != nil {
		return nil, err
	}

	out := make(map[string]any, len(fields)+1)
	if id, ok := full["id"]; ok {
		out["id"] = id
	}
	for _, name := range fields {
		val, ok := full[name]
		if (!ok || val == nil) && slices.Contains(productAssociations, name) {
			val = []any{}
		}
		out[name] = val
	}
	return out, nil
}
