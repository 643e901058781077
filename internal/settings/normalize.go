package settings

import (
	"encoding/json"
	"strings"

	"github.com/rs/zerolog/log"
)

// Normalize decodes a raw stored value written without a type discriminator
// into its in-memory form. It never fails: the worst case returns the
// original string unchanged.
//
// Rules, in order:
//   - a value starting with '[' or '{' is tried as JSON; a parse failure
//     silently degrades to the literal string
//   - a value wrapped in a single matching pair of double quotes loses
//     exactly one leading and one trailing quote
//   - "<br>" markers become newlines (multi-line address/hours fields)
func Normalize(raw string) any {
	s := raw

	if looksJSON(s) {
		var v any
		if err := json.Unmarshal([]byte(s), &v); err == nil {
			return v
		}

		log.Debug().Str("value", s).Msg("value looks like JSON but does not parse, keeping raw string")
	}

	if isQuoted(s) {
		s = s[1 : len(s)-1]
	}

	return strings.ReplaceAll(s, "<br>", "\n")
}

// IsAbsent reports whether a decoded value counts as missing for the
// projector: such values fall back to the compiled default. Empty strings,
// the literal markers "null", "undefined" and "{}", strings made of quote
// characters only, false, zero and empty collections are all absent.
func IsAbsent(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		s := strings.TrimSpace(t)
		if s == "" || s == "null" || s == "undefined" || s == "{}" {
			return true
		}

		return strings.Trim(s, `"`) == ""
	case bool:
		return !t
	case float64:
		return t == 0
	case []any:
		return len(t) == 0
	case []string:
		return len(t) == 0
	case map[string]any:
		return len(t) == 0
	}

	return false
}

func looksJSON(s string) bool {
	return strings.HasPrefix(s, "[") || strings.HasPrefix(s, "{")
}

func isQuoted(s string) bool {
	return len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"'
}
