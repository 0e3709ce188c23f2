package i18n

import (
	"aroma-storefront/internal/domain"

	"golang.org/x/text/language"
)

var languageMatcher = func() language.Matcher {
	tags := make([]language.Tag, 0, len(domain.Languages))
	for _, lang := range domain.Languages {
		tags = append(tags, language.Make(string(lang)))
	}
	return language.NewMatcher(tags)
}()

// Negotiate picks the storefront language for an Accept-Language header.
// Headers that match nothing supported resolve to English.
func Negotiate(acceptLanguage string) domain.Language {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return domain.DefaultLanguage
	}
	_, index, confidence := languageMatcher.Match(tags...)
	if confidence == language.No {
		return domain.DefaultLanguage
	}
	return domain.Languages[index]
}
