// Package i18n holds the English/Urdu display strings and the lookups screens use at
// render time. The table is embedded and parsed once; every lookup is pure.
package i18n

import (
	_ "embed"
	"strings"

	"growguard/internal/domain/entity"
	"growguard/internal/errors"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
)

//go:embed translations.yaml
var translationsYAML []byte

// Table is the parsed translation data.
type Table struct {
	sections map[string]map[string]map[entity.Language]string
	diseases map[string]map[entity.Language]string
	content  map[string]string
	// contentFold maps lower-cased English phrases to their Urdu text.
	contentFold map[string]string
}

type rawTable struct {
	Sections map[string]map[string]map[string]string `mapstructure:"sections"`
	Diseases []struct {
		Name string `mapstructure:"name"`
		EN   string `mapstructure:"en"`
		UR   string `mapstructure:"ur"`
	} `mapstructure:"diseases"`
	Content []struct {
		EN string `mapstructure:"en"`
		UR string `mapstructure:"ur"`
	} `mapstructure:"content"`
}

// Default parses the embedded table.
func Default() (*Table, error) {
	return Parse(translationsYAML)
}

// Parse builds a Table from YAML with sections, diseases and content blocks.
func Parse(data []byte) (*Table, error) {
	// The parser is used directly rather than through koanf.Load, since content keys
	// are free-form sentences that contain the koanf path delimiter.
	m, err := yaml.Parser().Unmarshal(data)
	if err != nil {
		return nil, errors.Wrap(err, "parse translations")
	}

	var raw rawTable
	if err := mapstructure.Decode(m, &raw); err != nil {
		return nil, errors.Wrap(err, "decode translations")
	}

	t := &Table{
		sections:    make(map[string]map[string]map[entity.Language]string, len(raw.Sections)),
		diseases:    make(map[string]map[entity.Language]string, len(raw.Diseases)),
		content:     make(map[string]string, len(raw.Content)),
		contentFold: make(map[string]string, len(raw.Content)),
	}

	for section, keys := range raw.Sections {
		entries := make(map[string]map[entity.Language]string, len(keys))
		for key, langs := range keys {
			byLang := make(map[entity.Language]string, len(langs))
			for lang, text := range langs {
				byLang[entity.Language(lang)] = text
			}
			entries[key] = byLang
		}
		t.sections[section] = entries
	}

	for _, d := range raw.Diseases {
		t.diseases[d.Name] = map[entity.Language]string{
			entity.LanguageEnglish: d.EN,
			entity.LanguageUrdu:    d.UR,
		}
	}

	for _, c := range raw.Content {
		t.content[c.EN] = c.UR
		fold := strings.ToLower(c.EN)
		if _, exists := t.contentFold[fold]; !exists {
			t.contentFold[fold] = c.UR
		}
	}

	return t, nil
}

// Get returns the display string for (section, key) in lang.
// Fallback order: lang, then English, then the key itself.
func (t *Table) Get(section, key string, lang entity.Language) string {
	byLang := t.sections[section][key]
	if s := byLang[lang]; s != "" {
		return s
	}
	if s := byLang[entity.LanguageEnglish]; s != "" {
		return s
	}

	return key
}

// Section returns every key of a section rendered in lang.
func (t *Table) Section(section string, lang entity.Language) map[string]string {
	keys := t.sections[section]
	out := make(map[string]string, len(keys))
	for key := range keys {
		out[key] = t.Get(section, key, lang)
	}

	return out
}

// DiseaseName translates a disease name, returning it unchanged when unknown.
func (t *Table) DiseaseName(name string, lang entity.Language) string {
	if s := t.diseases[name][lang]; s != "" {
		return s
	}

	return name
}

// DiagnosisContent translates a free-form finding or tip.
// Empty text and English return text as is. Otherwise the trimmed text is looked up
// exactly, then case-insensitively; ok is false when neither matched and text is returned.
func (t *Table) DiagnosisContent(text string, lang entity.Language) (translated string, ok bool) {
	if text == "" || lang == entity.LanguageEnglish {
		return text, true
	}
	if lang != entity.LanguageUrdu {
		return text, false
	}

	cleaned := strings.TrimSpace(text)
	if s, found := t.content[cleaned]; found && s != "" {
		return s, true
	}
	if s, found := t.contentFold[strings.ToLower(cleaned)]; found && s != "" {
		return s, true
	}

	return text, false
}

// DiagnosisContentList translates each entry, reporting the entries without a translation.
func (t *Table) DiagnosisContentList(texts []string, lang entity.Language) (out []string, missing []string) {
	out = make([]string, len(texts))
	for i, text := range texts {
		s, ok := t.DiagnosisContent(text, lang)
		if !ok {
			missing = append(missing, strings.TrimSpace(text))
		}
		out[i] = s
	}

	return out, missing
}

// ContentSize is the number of translated diagnosis phrases.
func (t *Table) ContentSize() int {
	return len(t.content)
}
