package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/amigovet/amigovet-server/internal/db/models"
)

func TestNormalize(t *testing.T) {
	testCases := []struct {
		name     string
		raw      string
		expected any
	}{
		{
			name:     "plain string passes through",
			raw:      "Dra. Ana Martins",
			expected: "Dra. Ana Martins",
		},
		{
			name:     "quoted string loses exactly one quote pair",
			raw:      `"Sobre nós"`,
			expected: "Sobre nós",
		},
		{
			name:     "double quoted string keeps inner quotes",
			raw:      `""citado""`,
			expected: `"citado"`,
		},
		{
			name:     "json array decodes",
			raw:      `["Carinho","Ética"]`,
			expected: []any{"Carinho", "Ética"},
		},
		{
			name:     "json object decodes",
			raw:      `{"url":"/a.jpg"}`,
			expected: map[string]any{"url": "/a.jpg"},
		},
		{
			name:     "malformed json degrades to the literal string",
			raw:      "[invalid",
			expected: "[invalid",
		},
		{
			name:     "br markers become newlines",
			raw:      `"Rua dos Pinheiros, 123<br>São Paulo - SP"`,
			expected: "Rua dos Pinheiros, 123\nSão Paulo - SP",
		},
		{
			name:     "empty string stays empty",
			raw:      "",
			expected: "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Normalize(tc.raw))
		})
	}
}

func TestIsAbsent(t *testing.T) {
	absent := []any{
		nil,
		"",
		"  ",
		"null",
		"undefined",
		"{}",
		`""`,
		`""""`,
		false,
		0.0,
		[]any{},
		[]string{},
		map[string]any{},
	}

	for _, v := range absent {
		assert.True(t, IsAbsent(v), "expected %#v to be absent", v)
	}

	present := []any{
		"x",
		`"x"`,
		true,
		1.5,
		[]any{"a"},
		[]string{"a"},
		map[string]any{"k": "v"},
	}

	for _, v := range present {
		assert.False(t, IsAbsent(v), "expected %#v to be present", v)
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	testCases := []struct {
		name  string
		value any
	}{
		{name: "plain string", value: "Dra. Ana Martins"},
		{name: "string with quotes inside", value: `disse "olá"`},
		{name: "multi line string", value: "Segunda a Sexta: 8h às 19h\nSábado: 8h às 13h"},
		{name: "number", value: 15.5},
		{name: "bool", value: true},
		{name: "array", value: []any{"a.jpg", "b.jpg"}},
		{name: "object", value: map[string]any{"label": "Vacinas", "url": "/vacinas"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			kind, raw := Encode(tc.value)
			assert.Equal(t, tc.value, Decode(kind, raw))
		})
	}
}

func TestEncodeLegacyCompatiblePayloads(t *testing.T) {
	// payload bytes stay in the pre-discriminator encoding so older readers
	// keep working
	kind, raw := Encode("Sobre nós")
	assert.Equal(t, models.KindString, kind)
	assert.Equal(t, `"Sobre nós"`, raw)
	assert.Equal(t, "Sobre nós", Normalize(raw))

	kind, raw = Encode("linha um\nlinha dois")
	assert.Equal(t, models.KindString, kind)
	assert.Equal(t, `"linha um<br>linha dois"`, raw)
	assert.Equal(t, "linha um\nlinha dois", Normalize(raw))

	kind, raw = Encode([]any{"a"})
	assert.Equal(t, models.KindJSON, kind)
	assert.Equal(t, `["a"]`, raw)
}

func TestEncodeJSONLookingStringStaysUnwrapped(t *testing.T) {
	// the known ambiguous case: free text starting with '[' is stored raw;
	// the kind column disambiguates it for typed readers
	kind, raw := Encode("[invalid")
	assert.Equal(t, models.KindString, kind)
	assert.Equal(t, "[invalid", raw)
	assert.Equal(t, "[invalid", Decode(kind, raw))
}

func TestDecodeMismatchedKindDegrades(t *testing.T) {
	assert.Equal(t, "abc", Decode(models.KindNumber, "abc"))
	assert.Equal(t, "maybe", Decode(models.KindBool, "maybe"))
	assert.Equal(t, "{broken", Decode(models.KindJSON, "{broken"))
}

func TestDecodeLegacyKind(t *testing.T) {
	// rows written before the discriminator go through Normalize
	assert.Equal(t, "Sobre nós", Decode(models.KindLegacy, `"Sobre nós"`))
	assert.Equal(t, []any{"a"}, Decode(models.KindLegacy, `["a"]`))
}
