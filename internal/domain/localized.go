package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

type Language string

const (
	LangEnglish    Language = "en"
	LangMaltese    Language = "mt"
	LangItalian    Language = "it"
	LangFrench     Language = "fr"
	LangSpanish    Language = "es"
	LangGerman     Language = "de"
	LangRussian    Language = "ru"
	LangPortuguese Language = "pt"
	LangDutch      Language = "nl"
	LangPolish     Language = "pl"
)

// DefaultLanguage is used whenever a translation for the requested language is missing.
const DefaultLanguage = LangEnglish

// Languages lists every supported language in picker order.
var Languages = []Language{
	LangEnglish, LangMaltese, LangItalian, LangFrench, LangSpanish,
	LangGerman, LangRussian, LangPortuguese, LangDutch, LangPolish,
}

var ErrUnsupportedLanguage = errors.New("unsupported language")

func ParseLanguage(code string) (Language, error) {
	lang := Language(strings.ToLower(strings.TrimSpace(code)))
	for _, supported := range Languages {
		if supported == lang {
			return lang, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedLanguage, code)
}

// LocalizedText is either a plain string or a per-language mapping.
// The zero value is an empty plain string.
type LocalizedText struct {
	plain        string
	translations map[Language]string
}

func PlainText(s string) LocalizedText {
	return LocalizedText{plain: s}
}

func LocalizedMap(m map[Language]string) LocalizedText {
	translations := make(map[Language]string, len(m))
	for lang, text := range m {
		translations[lang] = text
	}
	return LocalizedText{translations: translations}
}

func (t LocalizedText) IsLocalized() bool {
	return t.translations != nil
}

// Resolve returns the text for lang, then the English text, then "".
func (t LocalizedText) Resolve(lang Language) string {
	if !t.IsLocalized() {
		return t.plain
	}
	if text := t.translations[lang]; text != "" {
		return text
	}
	return t.translations[DefaultLanguage]
}

func (t LocalizedText) MarshalJSON() ([]byte, error) {
	if !t.IsLocalized() {
		return json.Marshal(t.plain)
	}
	return json.Marshal(t.translations)
}

func (t *LocalizedText) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		*t = LocalizedText{}
		return nil
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = PlainText(s)
		return nil
	case data[0] == '{':
		var m map[Language]string
		if err := json.Unmarshal(data, &m); err != nil {
			return fmt.Errorf("localized text: %w", err)
		}
		*t = LocalizedMap(m)
		return nil
	default:
		return fmt.Errorf("localized text: expected string or object, got %s", data)
	}
}
