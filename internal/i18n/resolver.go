// Package i18n resolves menu text and category labels into the diner's language.
package i18n

import (
	"strings"

	"aroma-storefront/internal/domain"
)

// Translations maps a language to a display string.
type Translations map[domain.Language]string

// In returns the translation for lang, falling back to English and then "".
func (t Translations) In(lang domain.Language) string {
	if text := t[lang]; text != "" {
		return text
	}
	return t[domain.DefaultLanguage]
}

// Term is one entry of an ordered dictionary.
type Term struct {
	Key          string
	Translations Translations
}

// Dictionaries are the static lookup tables the resolver is built from.
type Dictionaries struct {
	// Categories is keyed by the exact, case-sensitive category name.
	Categories map[string]Translations
	// CategoryTerms is keyed by lower-case category or cuisine term.
	CategoryTerms map[string]Translations
	// ItemTerms is searched in declaration order when matching by substring.
	ItemTerms []Term
	// UI holds the storefront labels returned by the API.
	UI map[string]Translations
}

type Resolver struct {
	categories    map[string]Translations
	categoryTerms map[string]Translations
	itemTerms     []Term
	itemIndex     map[string]Translations
	ui            map[string]Translations
}

func NewResolver(dict Dictionaries) *Resolver {
	r := &Resolver{
		categories:    make(map[string]Translations, len(dict.Categories)),
		categoryTerms: make(map[string]Translations, len(dict.CategoryTerms)),
		itemTerms:     make([]Term, 0, len(dict.ItemTerms)),
		itemIndex:     make(map[string]Translations, len(dict.ItemTerms)),
		ui:            make(map[string]Translations, len(dict.UI)),
	}
	for name, tr := range dict.Categories {
		r.categories[name] = copyTranslations(tr)
	}
	for term, tr := range dict.CategoryTerms {
		r.categoryTerms[strings.ToLower(term)] = copyTranslations(tr)
	}
	for _, term := range dict.ItemTerms {
		if _, dup := r.itemIndex[term.Key]; dup {
			continue
		}
		tr := copyTranslations(term.Translations)
		r.itemTerms = append(r.itemTerms, Term{Key: term.Key, Translations: tr})
		r.itemIndex[term.Key] = tr
	}
	for key, tr := range dict.UI {
		r.ui[key] = copyTranslations(tr)
	}
	return r
}

func (r *Resolver) ResolveText(field domain.LocalizedText, lang domain.Language) string {
	return field.Resolve(lang)
}

// CategoryName translates a category name on a best-effort basis. Unknown
// names are returned unchanged.
func (r *Resolver) CategoryName(name string, lang domain.Language) string {
	if tr, ok := r.categories[name]; ok {
		if text := tr.In(lang); text != "" {
			return text
		}
		return name
	}
	if tr, ok := r.categoryTerms[strings.ToLower(name)]; ok {
		if text := tr.In(lang); text != "" {
			return text
		}
	}
	return name
}

// ItemTerm translates a food term. An exact key match wins; otherwise the
// first dictionary key contained in term (ignoring case) is used, in
// declaration order. Overlapping keys such as "Cheese" and "Burger" in
// "Cheeseburger" therefore resolve to whichever is declared first.
func (r *Resolver) ItemTerm(term string, lang domain.Language) string {
	if tr, ok := r.itemIndex[term]; ok {
		if text := tr.In(lang); text != "" {
			return text
		}
		return term
	}
	lower := strings.ToLower(term)
	if lower == "" {
		return term
	}
	for _, candidate := range r.itemTerms {
		if strings.Contains(lower, strings.ToLower(candidate.Key)) {
			if text := candidate.Translations.In(lang); text != "" {
				return text
			}
			return term
		}
	}
	return term
}

// CurrentCategoryItems returns the active items of the category whose
// translated label matches active, ignoring case. No match yields no items.
func (r *Resolver) CurrentCategoryItems(categories []domain.Category, items []domain.MenuItem, active string, lang domain.Language) []domain.MenuItem {
	if active == "" {
		return nil
	}
	wanted := strings.ToLower(active)

	categoryID, found := 0, false
	for _, category := range categories {
		if strings.ToLower(r.CategoryName(category.Name, lang)) == wanted {
			categoryID, found = category.ID, true
			break
		}
	}
	if !found {
		return nil
	}

	var out []domain.MenuItem
	for _, item := range items {
		if item.CategoryID == categoryID && item.Active {
			out = append(out, item)
		}
	}
	return out
}

// UIText returns a storefront label, or key itself when it is unknown.
func (r *Resolver) UIText(lang domain.Language, key string) string {
	if tr, ok := r.ui[key]; ok {
		if text := tr.In(lang); text != "" {
			return text
		}
	}
	return key
}

func copyTranslations(tr Translations) Translations {
	out := make(Translations, len(tr))
	for lang, text := range tr {
		out[lang] = text
	}
	return out
}
