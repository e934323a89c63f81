package domain

import (
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// LanguageLevel is a proficiency level on the six-tier CEFR scale.
type LanguageLevel string

// Proficiency levels, lowest to highest.
const (
	LevelA1 LanguageLevel = "A1"
	LevelA2 LanguageLevel = "A2"
	LevelB1 LanguageLevel = "B1"
	LevelB2 LanguageLevel = "B2"
	LevelC1 LanguageLevel = "C1"
	LevelC2 LanguageLevel = "C2"
)

// LanguageLevels lists every valid level in ascending order.
var LanguageLevels = []LanguageLevel{LevelA1, LevelA2, LevelB1, LevelB2, LevelC1, LevelC2}

// ParseLanguageLevel converts a symbolic level name such as "b2" into a LanguageLevel.
func ParseLanguageLevel(s string) (LanguageLevel, error) {
	candidate := LanguageLevel(strings.ToUpper(strings.TrimSpace(s)))
	if !candidate.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidLevel, s)
	}
	return candidate, nil
}

// IsValid reports whether l is one of the six defined levels.
func (l LanguageLevel) IsValid() bool {
	for _, level := range LanguageLevels {
		if l == level {
			return true
		}
	}
	return false
}

// String returns the symbolic name.
func (l LanguageLevel) String() string {
	return string(l)
}

// UnmarshalJSON accepts only the symbolic names, never ordinals.
func (l *LanguageLevel) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: level must be a string", ErrInvalidLevel)
	}
	parsed, err := ParseLanguageLevel(s)
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// Language is a canonical BCP-47 language tag such as "en" or "pt-BR".
// The zero value is not a valid language.
type Language struct {
	tag language.Tag
}

// ParseLanguage parses and canonicalises a BCP-47 tag.
func ParseLanguage(s string) (Language, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Language{}, fmt.Errorf("%w: empty tag", ErrInvalidLanguage)
	}
	tag, err := language.Parse(trimmed)
	if err != nil {
		return Language{}, fmt.Errorf("%w: %q: %v", ErrInvalidLanguage, s, err)
	}
	if tag == language.Und {
		return Language{}, fmt.Errorf("%w: %q is undetermined", ErrInvalidLanguage, s)
	}
	return Language{tag: tag}, nil
}

// MustParseLanguage is like ParseLanguage but panics on error.
// It is meant for package-level tables of known tags.
func MustParseLanguage(s string) Language {
	lang, err := ParseLanguage(s)
	if err != nil {
		panic(err)
	}
	return lang
}

// String returns the canonical tag, or an empty string for the zero value.
func (l Language) String() string {
	if l.IsZero() {
		return ""
	}
	return l.tag.String()
}

// IsZero reports whether l was never set.
func (l Language) IsZero() bool {
	return l.tag == language.Und
}

// MarshalJSON encodes the language as its tag string.
func (l Language) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

// UnmarshalJSON decodes a tag string. An empty string leaves the zero value.
func (l *Language) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: language must be a string", ErrInvalidLanguage)
	}
	if strings.TrimSpace(s) == "" {
		*l = Language{}
		return nil
	}
	parsed, err := ParseLanguage(s)
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// SupportedLanguages is the fixed list of languages offered to clients.
var SupportedLanguages = []Language{
	MustParseLanguage("en"),
	MustParseLanguage("es"),
	MustParseLanguage("pt"),
	MustParseLanguage("fr"),
	MustParseLanguage("de"),
	MustParseLanguage("it"),
	MustParseLanguage("ja"),
	MustParseLanguage("ko"),
	MustParseLanguage("zh"),
	MustParseLanguage("ru"),
}
