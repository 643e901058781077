package settings

import "github.com/amigovet/amigovet-server/internal/db/models"

// GeneralData is the projected view of the general section (header, social
// links, site identity).
type GeneralData struct {
	SiteName  string `json:"site_name"`
	Tagline   string `json:"tagline"`
	LogoURL   string `json:"logo_url"`
	WhatsApp  string `json:"whatsapp"`
	Instagram string `json:"instagram"`
	Facebook  string `json:"facebook"`
}

// HeroData is the projected view of the landing hero section.
type HeroData struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	CTAText  string `json:"cta_text"`
	CTALink  string `json:"cta_link"`
	Slides   []any  `json:"slides"`
}

// AboutData is the projected view of the about section.
type AboutData struct {
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	ImageURL        string   `json:"image_url"`
	Values          []string `json:"values"`
	YearsExperience float64  `json:"years_experience"`
}

// ContactData is the projected view of the contact section.
type ContactData struct {
	Address   string  `json:"address"`
	Phone     string  `json:"phone"`
	WhatsApp  string  `json:"whatsapp"`
	Email     string  `json:"email"`
	Hours     string  `json:"hours"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// FooterData is the projected view of the footer section.
type FooterData struct {
	Description string `json:"description"`
	Copyright   string `json:"copyright"`
	Instagram   string `json:"instagram"`
	Facebook    string `json:"facebook"`
	QuickLinks  []any  `json:"quick_links"`
}

// VeterinarianData is the projected view of the veterinarian profile section.
type VeterinarianData struct {
	Name        string   `json:"name"`
	Title       string   `json:"title"`
	CRMV        string   `json:"crmv"`
	Bio         string   `json:"bio"`
	PhotoURL    string   `json:"photo_url"`
	Specialties []string `json:"specialties"`
}

// ProjectGeneral projects the general section rows into their typed view.
func ProjectGeneral(rows []models.Setting) GeneralData {
	m := Project(rows, registry[SectionGeneral])

	return GeneralData{
		SiteName:  asString(m, "site_name"),
		Tagline:   asString(m, "tagline"),
		LogoURL:   asString(m, "logo_url"),
		WhatsApp:  asString(m, "whatsapp"),
		Instagram: asString(m, "instagram"),
		Facebook:  asString(m, "facebook"),
	}
}

// ProjectHero projects the hero section rows into their typed view.
func ProjectHero(rows []models.Setting) HeroData {
	m := Project(rows, registry[SectionHero])

	return HeroData{
		Title:    asString(m, "title"),
		Subtitle: asString(m, "subtitle"),
		CTAText:  asString(m, "cta_text"),
		CTALink:  asString(m, "cta_link"),
		Slides:   asAnyList(m, "slides"),
	}
}

// ProjectAbout projects the about section rows into their typed view.
func ProjectAbout(rows []models.Setting) AboutData {
	m := Project(rows, registry[SectionAbout])

	return AboutData{
		Title:           asString(m, "title"),
		Description:     asString(m, "description"),
		ImageURL:        asString(m, "image_url"),
		Values:          asStringList(m, "values"),
		YearsExperience: asFloat(m, "years_experience"),
	}
}

// ProjectContact projects the contact section rows into their typed view.
func ProjectContact(rows []models.Setting) ContactData {
	m := Project(rows, registry[SectionContact])

	return ContactData{
		Address:   asString(m, "address"),
		Phone:     asString(m, "phone"),
		WhatsApp:  asString(m, "whatsapp"),
		Email:     asString(m, "email"),
		Hours:     asString(m, "hours"),
		Latitude:  asFloat(m, "latitude"),
		Longitude: asFloat(m, "longitude"),
	}
}

// ProjectFooter projects the footer section rows into their typed view.
func ProjectFooter(rows []models.Setting) FooterData {
	m := Project(rows, registry[SectionFooter])

	return FooterData{
		Description: asString(m, "description"),
		Copyright:   asString(m, "copyright"),
		Instagram:   asString(m, "instagram"),
		Facebook:    asString(m, "facebook"),
		QuickLinks:  asAnyList(m, "quick_links"),
	}
}

// ProjectVeterinarian projects the veterinarian section rows into their typed view.
func ProjectVeterinarian(rows []models.Setting) VeterinarianData {
	m := Project(rows, registry[SectionVeterinarian])

	return VeterinarianData{
		Name:        asString(m, "name"),
		Title:       asString(m, "title"),
		CRMV:        asString(m, "crmv"),
		Bio:         asString(m, "bio"),
		PhotoURL:    asString(m, "photo_url"),
		Specialties: asStringList(m, "specialties"),
	}
}

func asString(m map[string]any, key string) string {
	return stringify(m[key])
}

func asFloat(m map[string]any, key string) float64 {
	if f, ok := m[key].(float64); ok {
		return f
	}

	return 0
}

func asStringList(m map[string]any, key string) []string {
	if l, ok := m[key].([]string); ok {
		return l
	}

	return nil
}

func asAnyList(m map[string]any, key string) []any {
	if l, ok := m[key].([]any); ok {
		return l
	}

	return nil
}
