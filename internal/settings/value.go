// Package settings implements the dynamic settings pipeline of the website:
// a value codec, a central schema registry, the read-side projector that
// merges stored rows with compiled defaults, the write-side encoder, and a
// per-section change notification bus.
package settings

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/amigovet/amigovet-server/internal/db/models"
)

// Encode serializes an in-memory value into its stored form and explicit
// kind discriminator. The payload stays byte-compatible with rows written
// before the discriminator existed: plain strings are quote-wrapped with
// newlines as "<br>", arrays and objects are JSON text.
//
// A string that itself starts with '[' or '{' is stored unwrapped; legacy
// readers will try it as JSON, which is the known ambiguity the kind
// column exists to remove.
func Encode(v any) (models.SettingKind, string) {
	switch t := v.(type) {
	case nil:
		return models.KindString, `""`
	case string:
		if looksJSON(t) {
			return models.KindString, t
		}

		return models.KindString, `"` + strings.ReplaceAll(t, "\n", "<br>") + `"`
	case bool:
		return models.KindBool, strconv.FormatBool(t)
	case int:
		return models.KindNumber, strconv.Itoa(t)
	case int64:
		return models.KindNumber, strconv.FormatInt(t, 10)
	case uint64:
		return models.KindNumber, strconv.FormatUint(t, 10)
	case float64:
		return models.KindNumber, strconv.FormatFloat(t, 'f', -1, 64)
	default:
		b, err := json.Marshal(t)
		if err != nil {
			log.Debug().Err(err).Msg("value is not JSON-encodable, storing its string form")
			return models.KindString, `"` + strings.ReplaceAll(strings.TrimSpace(stringify(t)), "\n", "<br>") + `"`
		}

		return models.KindJSON, string(b)
	}
}

// Decode is the inverse of Encode. Rows with an empty kind predate the
// discriminator and go through the legacy Normalize heuristic. A payload
// that does not match its kind degrades through Normalize as well instead
// of failing.
func Decode(kind models.SettingKind, raw string) any {
	switch kind {
	case models.KindString:
		s := raw
		if isQuoted(s) {
			s = s[1 : len(s)-1]
		}

		return strings.ReplaceAll(s, "<br>", "\n")
	case models.KindNumber:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			log.Debug().Str("value", raw).Msg("number setting does not parse, decoding as legacy value")
			return Normalize(raw)
		}

		return f
	case models.KindBool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			log.Debug().Str("value", raw).Msg("bool setting does not parse, decoding as legacy value")
			return Normalize(raw)
		}

		return b
	case models.KindJSON:
		var v any
		if err := json.Unmarshal([]byte(raw), &v); err != nil {
			log.Debug().Str("value", raw).Msg("json setting does not parse, decoding as legacy value")
			return Normalize(raw)
		}

		return v
	default:
		return Normalize(raw)
	}
}

// stringify renders a decoded scalar back to text. Non-scalar values
// return an empty string.
func stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	}

	return ""
}
