package i18n

import (
	"strings"
	"sync/atomic"
)

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "min" or "expected").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

var dictionaries = map[string]map[string]string{
	"en": {
		"invalid_type":   "invalid type",
		"required":       "required property missing",
		"unknown_key":    "unknown key",
		"too_small":      "too small",
		"too_big":        "too big",
		"too_short":      "too short",
		"too_long":       "too long",
		"pattern":        "does not match pattern",
		"invalid_enum":   "invalid enum value",
		"invalid_format": "invalid format",
		"parse_error":    "parse error",
		"truncated":      "truncated",
	},
	"pl": {
		"invalid_type":   "nieprawidłowy typ",
		"required":       "brak wymaganego pola",
		"unknown_key":    "nieznany klucz",
		"too_small":      "wartość zbyt mała",
		"too_big":        "wartość zbyt duża",
		"too_short":      "zbyt krótkie",
		"too_long":       "zbyt długie",
		"pattern":        "niezgodne z wzorcem",
		"invalid_enum":   "niedozwolona wartość",
		"invalid_format": "nieprawidłowy format",
		"parse_error":    "błąd parsowania",
		"truncated":      "dane obcięte",
	},
}

func (t dictTranslator) Message(code string, data map[string]string) string {
	msg, ok := dictionaries[t.lang][code]
	if !ok {
		return code
	}
	if want := data["expected"]; want != "" {
		msg += " (" + want + ")"
	}
	return msg
}

type holder struct{ tr Translator }

var current atomic.Pointer[holder]

func init() { current.Store(&holder{tr: dictTranslator{lang: "en"}}) }

// Languages lists the built-in dictionary languages.
func Languages() []string { return []string{"en", "pl"} }

// SetLanguage switches the built-in Translator language ("en"/"pl").
// Unsupported languages fall back to English.
func SetLanguage(lang string) {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if _, ok := dictionaries[lang]; !ok {
		lang = "en"
	}
	current.Store(&holder{tr: dictTranslator{lang: lang}})
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		tr = dictTranslator{lang: "en"}
	}
	current.Store(&holder{tr: tr})
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return current.Load().tr.Message(code, data) }
