package types

import (
	"golang.org/x/text/language"
)

// Language is one of the supported catalog languages.
type Language string

const (
	French  Language = "fr"
	English Language = "en"
	German  Language = "de"
)

var (
	supportedLanguages = []Language{French, English, German}
	languageMatcher    = language.NewMatcher([]language.Tag{language.French, language.English, language.German})
)

// Languages returns the supported languages.
func Languages() []Language {
	out := make([]Language, len(supportedLanguages))
	copy(out, supportedLanguages)
	return out
}

// ParseLanguage maps a BCP 47 tag such as "en-GB" or "fr_CH" onto a
// supported language.
func ParseLanguage(s string) (Language, error) {
	tag, err := language.Parse(s)
	if err != nil {
		return "", WrapErrorf(ErrCodeInvalidInput, err, "invalid language tag %q", s)
	}
	_, idx, conf := languageMatcher.Match(tag)
	if conf == language.No {
		return "", NewReportErrorf(ErrCodeInvalidInput, "unsupported language %q", s)
	}
	return supportedLanguages[idx], nil
}

// Tag returns the BCP 47 tag of the language.
func (l Language) Tag() language.Tag {
	return language.Make(string(l))
}
