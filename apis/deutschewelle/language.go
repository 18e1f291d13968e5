package deutschewelle

import "github.com/felsokning/codeninjas/util"

// LanguageID selects the language edition of the search API.
type LanguageID int

const (
	LanguageNone             LanguageID = 0
	LanguageDeutsch          LanguageID = 1
	LanguageEnglish          LanguageID = 2
	LanguageRussian          LanguageID = 3
	LanguageChinese          LanguageID = 4
	LanguagePortugueseBrazil LanguageID = 5
	LanguageAlbanian         LanguageID = 6
	LanguageArabic           LanguageID = 8
	LanguageBengali          LanguageID = 9
	LanguageSerbian          LanguageID = 10
	LanguageBulgarian        LanguageID = 11
	LanguagePersian          LanguageID = 12
	LanguageFrench           LanguageID = 13
	LanguageGreek            LanguageID = 14
	LanguageHausa            LanguageID = 15
)

// Names are the endonyms used by the API's language switcher.
var languageNames = util.NewEnumNames("language", map[LanguageID]string{
	LanguageNone:             "None",
	LanguageDeutsch:          "Deutsch",
	LanguageEnglish:          "English",
	LanguageRussian:          "Русский",
	LanguageChinese:          "繁",
	LanguagePortugueseBrazil: "PortuguêsDoBrasil",
	LanguageAlbanian:         "Shqip",
	LanguageArabic:           "العربية",
	LanguageBengali:          "বাংলা",
	LanguageSerbian:          "Srpski",
	LanguageBulgarian:        "Български",
	LanguagePersian:          "فارسی",
	LanguageFrench:           "Français",
	LanguageGreek:            "Ελληνικά",
	LanguageHausa:            "Hausa",
})

// ParseLanguage accepts a language name or its numeric id.
func ParseLanguage(s string) (LanguageID, error) {
	return languageNames.Parse(s)
}

func (l LanguageID) String() string { return languageNames.String(l) }

// MarshalText implements encoding.TextMarshaler.
func (l LanguageID) MarshalText() ([]byte, error) { return languageNames.Marshal(l) }

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *LanguageID) UnmarshalText(text []byte) error { return languageNames.Unmarshal(text, l) }
