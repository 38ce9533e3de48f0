package entity

// Language is a display language code.
type Language string

const (
	// LanguageEnglish is the default and fallback language.
	LanguageEnglish Language = "en"
	// LanguageUrdu is the second supported language.
	LanguageUrdu Language = "ur"
)

// String returns the language code.
func (l Language) String() string {
	return string(l)
}

// IsValid reports whether l is supported.
func (l Language) IsValid() bool {
	switch l {
	case LanguageEnglish, LanguageUrdu:
		return true
	default:
		return false
	}
}

// Toggle flips between the two supported languages.
func (l Language) Toggle() Language {
	if l == LanguageUrdu {
		return LanguageEnglish
	}

	return LanguageUrdu
}
