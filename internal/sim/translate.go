package sim

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissingText is returned when translation input is empty.
var ErrMissingText = errors.New("enter text and select languages")

// Translation is one completed translation request.
type Translation struct {
	Original   string
	Translated string
	FromLang   string
	ToLang     string
	Exact      bool
}

var phraseDictionaries = map[string]map[string]string{
	"en_to_hi": {
		"hello":                   "नमस्ते",
		"how are you":             "आप कैसे हैं",
		"thank you":               "धन्यवाद",
		"good morning":            "सुप्रभात",
		"artificial intelligence": "कृत्रिम बुद्धिमत्ता",
	},
	"en_to_es": {
		"hello":                   "hola",
		"how are you":             "¿cómo estás?",
		"thank you":               "gracias",
		"good morning":            "buenos días",
		"artificial intelligence": "inteligencia artificial",
	},
	"en_to_fr": {
		"hello":                   "bonjour",
		"how are you":             "comment allez-vous",
		"thank you":               "merci",
		"good morning":            "bonjour",
		"artificial intelligence": "intelligence artificielle",
	},
}

var languageNames = map[string]string{
	"en": "English",
	"hi": "Hindi",
	"es": "Spanish",
	"fr": "French",
	"de": "German",
}

// Languages lists the selectable language codes in display order.
var Languages = []string{"en", "es", "fr", "de", "hi"}

// Translate looks text up in the phrase dictionary for the language pair
// and falls back to a canned professional-translation string.
func Translate(text, fromLang, toLang string) (Translation, error) {
	text = strings.TrimSpace(text)
	if text == "" || fromLang == "" || toLang == "" {
		return Translation{}, ErrMissingText
	}

	key := fromLang + "_to_" + toLang
	if dict, ok := phraseDictionaries[key]; ok {
		if translated, ok := dict[strings.ToLower(text)]; ok {
			return Translation{
				Original:   text,
				Translated: translated,
				FromLang:   fromLang,
				ToLang:     toLang,
				Exact:      true,
			}, nil
		}
	}

	return Translation{
		Original:   text,
		Translated: fmt.Sprintf("[AI Translation: %s] - Professional translation by Futuristic AID", text),
		FromLang:   fromLang,
		ToLang:     toLang,
	}, nil
}

// LanguageName resolves a language code to its display name, returning the
// code itself when unknown.
func LanguageName(code string) string {
	if name, ok := languageNames[code]; ok {
		return name
	}
	return code
}
