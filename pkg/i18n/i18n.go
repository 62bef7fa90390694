// Package i18n provides the static display strings of FarmSecure in English,
// Hindi and Telugu. It is a fixed key lookup, not a localization engine.
package i18n

import (
	"fmt"
	"sort"

	"github.com/farmsecure/farmsecure/pkg/scoring"
)

// Language is a supported display language code.
type Language string

const (
	English Language = "en"
	Hindi   Language = "hi"
	Telugu  Language = "te"
)

// Default is used when no language, or an unknown one, is requested.
const Default = English

// Languages returns the supported languages.
func Languages() []Language {
	return []Language{English, Hindi, Telugu}
}

// ParseLanguage converts a language code to a Language. The empty string
// selects Default.
func ParseLanguage(s string) (Language, error) {
	switch l := Language(s); l {
	case "":
		return Default, nil
	case English, Hindi, Telugu:
		return l, nil
	default:
		return "", fmt.Errorf("unsupported language %q (want en, hi or te)", s)
	}
}

// T returns the translation of key in lang. An unknown lang falls back to
// English; a key without a translation is returned unchanged.
func T(lang Language, key string) string {
	e, ok := translations[key]
	if !ok {
		return key
	}
	switch lang {
	case English, Hindi, Telugu:
	default:
		lang = Default
	}
	if s := e[lang]; s != "" {
		return s
	}
	return key
}

// LevelLabel returns the display label for a risk level, e.g. "High Risk".
func LevelLabel(lang Language, level scoring.RiskLevel) string {
	return T(lang, string(level)+"_risk")
}

// Keys returns every translation key in sorted order.
func Keys() []string {
	keys := make([]string, 0, len(translations))
	for k := range translations {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Has reports whether key has an entry in the table.
func Has(key string) bool {
	_, ok := translations[key]
	return ok
}
