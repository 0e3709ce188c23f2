package i18n

import "aroma-storefront/internal/domain"

type LanguageOption struct {
	Code domain.Language `json:"code"`
	Name string          `json:"name"`
	Flag string          `json:"flag"`
}

var languageOptions = map[domain.Language]LanguageOption{
	domain.LangEnglish:    {Code: domain.LangEnglish, Name: "English", Flag: "🇬🇧"},
	domain.LangMaltese:    {Code: domain.LangMaltese, Name: "Malti", Flag: "🇲🇹"},
	domain.LangItalian:    {Code: domain.LangItalian, Name: "Italiano", Flag: "🇮🇹"},
	domain.LangFrench:     {Code: domain.LangFrench, Name: "Français", Flag: "🇫🇷"},
	domain.LangSpanish:    {Code: domain.LangSpanish, Name: "Español", Flag: "🇪🇸"},
	domain.LangGerman:     {Code: domain.LangGerman, Name: "Deutsch", Flag: "🇩🇪"},
	domain.LangRussian:    {Code: domain.LangRussian, Name: "Русский", Flag: "🇷🇺"},
	domain.LangPortuguese: {Code: domain.LangPortuguese, Name: "Português", Flag: "🇵🇹"},
	domain.LangDutch:      {Code: domain.LangDutch, Name: "Nederlands", Flag: "🇳🇱"},
	domain.LangPolish:     {Code: domain.LangPolish, Name: "Polski", Flag: "🇵🇱"},
}

// Languages returns the language picker entries in display order.
func Languages() []LanguageOption {
	out := make([]LanguageOption, 0, len(domain.Languages))
	for _, lang := range domain.Languages {
		out = append(out, languageOptions[lang])
	}
	return out
}
