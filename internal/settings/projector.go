package settings

import (
	"strconv"
	"strings"

	"github.com/amigovet/amigovet-server/internal/db/models"
)

// Project merges the stored rows of one section with the schema's compiled
// defaults and returns the resolved field map. It is a pure function:
// projecting the same rows twice yields the same result, and a nil or
// empty row set yields exactly the defaults.
func Project(rows []models.Setting, schema Schema) map[string]any {
	values := make(map[string]any, len(rows))
	for _, r := range rows {
		values[r.Key] = Decode(r.Kind, r.Value)
	}

	out := make(map[string]any, len(schema.Fields)+len(schema.Composites))

	for _, f := range schema.Fields {
		v, ok := values[f.Key]
		if !ok || IsAbsent(v) {
			out[f.Key] = f.Default
			continue
		}

		out[f.Key] = coerce(v, f)
	}

	for _, c := range schema.Composites {
		out[c.Key] = resolveComposite(values, c)
	}

	return out
}

// coerce shapes a present, truthy value to the field's kind, falling back
// to the default when the shapes are incompatible.
func coerce(v any, f FieldSpec) any {
	switch f.Kind {
	case FieldText:
		if s := stringify(v); s != "" {
			return s
		}
	case FieldNumber:
		switch t := v.(type) {
		case float64:
			return t
		case string:
			if n, err := strconv.ParseFloat(strings.TrimSpace(t), 64); err == nil {
				return n
			}
		}
	case FieldBool:
		switch t := v.(type) {
		case bool:
			return t
		case string:
			if b, err := strconv.ParseBool(strings.TrimSpace(t)); err == nil {
				return b
			}
		}
	case FieldList:
		if list := toList(v); len(list) > 0 {
			return list
		}
	case FieldJSON:
		switch v.(type) {
		case []any, map[string]any:
			return v
		}
	}

	return f.Default
}

// toList accepts a native array or a comma-separated string and returns a
// slice of trimmed, non-empty strings.
func toList(v any) []string {
	var raw []string

	switch t := v.(type) {
	case []string:
		raw = t
	case []any:
		for _, item := range t {
			raw = append(raw, stringify(item))
		}
	case string:
		raw = strings.Split(t, ",")
	default:
		return nil
	}

	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			out = append(out, trimmed)
		}
	}

	return out
}

// resolveComposite implements the fallback chain of a composite field:
// the merged key if present and truthy, else the synthesis of its parts
// joined by newlines with empty parts skipped, else the default.
func resolveComposite(values map[string]any, c CompositeSpec) string {
	if v, ok := values[c.Key]; ok && !IsAbsent(v) {
		if s := stringify(v); s != "" {
			return s
		}
	}

	parts := make([]string, 0, len(c.Parts))

	for _, p := range c.Parts {
		v, ok := values[p.Key]
		if !ok || IsAbsent(v) {
			continue
		}

		if s := stringify(v); s != "" {
			parts = append(parts, p.Prefix+s)
		}
	}

	if len(parts) == 0 {
		return c.Default
	}

	return strings.Join(parts, "\n")
}
