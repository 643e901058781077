package settings

import "sort"

// FieldKind describes how a schema field is coerced by the projector.
type FieldKind int

const (
	// FieldText is a plain string field.
	FieldText FieldKind = iota
	// FieldNumber is a numeric field projected as float64.
	FieldNumber
	// FieldBool is a boolean field.
	FieldBool
	// FieldList accepts a native array or a comma-separated string and
	// projects a slice of trimmed strings.
	FieldList
	// FieldJSON is a structured field (array or object) kept as decoded JSON.
	FieldJSON
)

// String returns the wire name of the field kind, used by the admin forms.
func (k FieldKind) String() string {
	switch k {
	case FieldText:
		return "text"
	case FieldNumber:
		return "number"
	case FieldBool:
		return "bool"
	case FieldList:
		return "list"
	case FieldJSON:
		return "json"
	default:
		return "text"
	}
}

// FieldSpec declares one field of a section: its key, how to coerce it and
// the compiled default used when the stored value is missing or falsy.
type FieldSpec struct {
	Key     string
	Kind    FieldKind
	Default any
}

// CompositePart is one component of a composite field, rendered with an
// optional prefix.
type CompositePart struct {
	Key    string
	Prefix string
}

// CompositeSpec declares a field resolved through a fallback chain: the
// merged key wins if present, otherwise the value is synthesized from the
// parts joined by newlines (empty parts skipped), otherwise the default.
type CompositeSpec struct {
	Key     string
	Parts   []CompositePart
	Default string
}

// Schema is the full field specification of one section. It is the single
// source of truth for both the read-side projector and the admin settings
// forms.
type Schema struct {
	Section    string
	Fields     []FieldSpec
	Composites []CompositeSpec
}

// Section names. Each corresponds to one area of the public website.
const (
	SectionGeneral      = "general"
	SectionHero         = "hero"
	SectionAbout        = "about"
	SectionContact      = "contact"
	SectionFooter       = "footer"
	SectionVeterinarian = "veterinarian"
)

// registry maps a section name to its schema. Defaults are the compiled
// fallbacks shown on a fresh database and whenever a stored value is
// missing or falsy.
var registry = map[string]Schema{ //nolint:gochecknoglobals
	SectionGeneral: {
		Section: SectionGeneral,
		Fields: []FieldSpec{
			{Key: "site_name", Kind: FieldText, Default: "AmigoVet"},
			{Key: "tagline", Kind: FieldText, Default: "Cuidando de quem cuida de você"},
			{Key: "logo_url", Kind: FieldText, Default: "/img/logo.svg"},
			{Key: "whatsapp", Kind: FieldText, Default: "+55 11 99999-0000"},
			{Key: "instagram", Kind: FieldText, Default: "https://instagram.com/amigovet"},
			{Key: "facebook", Kind: FieldText, Default: "https://facebook.com/amigovet"},
		},
	},
	SectionHero: {
		Section: SectionHero,
		Fields: []FieldSpec{
			{Key: "title", Kind: FieldText, Default: "Bem-vindo à AmigoVet"},
			{Key: "subtitle", Kind: FieldText, Default: "Clínica veterinária completa para o seu melhor amigo"},
			{Key: "cta_text", Kind: FieldText, Default: "Agende uma consulta"},
			{Key: "cta_link", Kind: FieldText, Default: "/contato"},
			{Key: "slides", Kind: FieldJSON, Default: []any{}},
		},
	},
	SectionAbout: {
		Section: SectionAbout,
		Fields: []FieldSpec{
			{Key: "title", Kind: FieldText, Default: "Sobre a AmigoVet"},
			{Key: "description", Kind: FieldText, Default: "Há mais de uma década oferecemos atendimento " +
				"veterinário completo, com estrutura moderna e uma equipe apaixonada por animais."},
			{Key: "image_url", Kind: FieldText, Default: "/img/clinica.jpg"},
			{Key: "values", Kind: FieldList, Default: []string{"Carinho", "Ética", "Excelência"}},
			{Key: "years_experience", Kind: FieldNumber, Default: 15.0},
		},
	},
	SectionContact: {
		Section: SectionContact,
		Fields: []FieldSpec{
			{Key: "phone", Kind: FieldText, Default: "(11) 3333-4444"},
			{Key: "whatsapp", Kind: FieldText, Default: "+55 11 99999-0000"},
			{Key: "email", Kind: FieldText, Default: "contato@amigovet.com.br"},
			{Key: "hours", Kind: FieldText, Default: "Segunda a Sexta: 8h às 19h\nSábado: 8h às 13h"},
			{Key: "latitude", Kind: FieldNumber, Default: -23.561684},
			{Key: "longitude", Kind: FieldNumber, Default: -46.655981},
		},
		Composites: []CompositeSpec{
			{
				Key: "address",
				Parts: []CompositePart{
					{Key: "street"},
					{Key: "city_state"},
					{Key: "cep", Prefix: "CEP: "},
				},
				Default: "Rua dos Pinheiros, 123\nSão Paulo - SP\nCEP: 05422-001",
			},
		},
	},
	SectionFooter: {
		Section: SectionFooter,
		Fields: []FieldSpec{
			{Key: "description", Kind: FieldText, Default: "Clínica veterinária com atendimento completo: " +
				"consultas, vacinas, banho e tosa, dermatologia e cirurgias."},
			{Key: "copyright", Kind: FieldText, Default: "© AmigoVet. Todos os direitos reservados."},
			{Key: "instagram", Kind: FieldText, Default: "https://instagram.com/amigovet"},
			{Key: "facebook", Kind: FieldText, Default: "https://facebook.com/amigovet"},
			{Key: "quick_links", Kind: FieldJSON, Default: []any{}},
		},
	},
	SectionVeterinarian: {
		Section: SectionVeterinarian,
		Fields: []FieldSpec{
			{Key: "name", Kind: FieldText, Default: "Dra. Ana Martins"},
			{Key: "title", Kind: FieldText, Default: "Médica Veterinária"},
			{Key: "crmv", Kind: FieldText, Default: "CRMV-SP 12345"},
			{Key: "bio", Kind: FieldText, Default: "Formada pela USP, com especialização em dermatologia " +
				"veterinária e mais de quinze anos de experiência clínica."},
			{Key: "photo_url", Kind: FieldText, Default: "/img/dra-ana.jpg"},
			{Key: "specialties", Kind: FieldList, Default: []string{"Dermatologia", "Clínica geral"}},
		},
	},
}

// Lookup returns the schema of a section.
func Lookup(section string) (Schema, bool) {
	s, ok := registry[section]
	return s, ok
}

// Sections returns all registered section names, sorted.
func Sections() []string {
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}

	sort.Strings(out)

	return out
}
