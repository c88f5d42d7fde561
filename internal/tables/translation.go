package tables

import (
	"encoding/json"
	goerrors "errors"
	"regexp"
	"sort"
	"strconv"

	"golang.org/x/text/language"

	"github.com/babel-tcc/kwtables/errors"
)

// TranslationTable maps keyword IDs to translated text for one natural
// language and one programming language.
type TranslationTable struct {
	Version             string
	LanguageCode        string
	LanguageName        string
	ProgrammingLanguage string
	Translations        map[int64]string
}

type rawTranslationTable struct {
	Version             string            `json:"version"`
	LanguageCode        string            `json:"languageCode"`
	LanguageName        string            `json:"languageName"`
	ProgrammingLanguage string            `json:"programmingLanguage"`
	Translations        map[string]string `json:"translations"`
}

// languageCodePattern is the lowercase-hyphenated form required for
// languageCode values, e.g. "pt" or "pt-br".
var languageCodePattern = regexp.MustCompile(`^[a-z]{2,3}(-[a-z]{2,8})*$`)

// LoadTranslationTable parses a translation document. Failures carry the
// same classes as LoadKeywordTable plus format errors for a malformed
// languageCode, an unparseable ID key, or empty translated text.
func LoadTranslationTable(data []byte) (*TranslationTable, error) {
	var raw rawTranslationTable
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.ValidationList{
			errors.NewValidationf(errors.ErrSyntax, "/", "invalid JSON: %v", err),
		}
	}

	var list errors.ValidationList

	if !validLanguageCode(raw.LanguageCode) {
		list = append(list, errors.NewValidationf(
			errors.ErrFormat, "/languageCode", "languageCode %q is not a lowercase hyphenated language tag", raw.LanguageCode))
	}

	translations := make(map[int64]string, len(raw.Translations))
	for _, key := range sortedKeys(raw.Translations) {
		path := "/translations/" + key
		id, err := strconv.ParseInt(key, 10, 64)
		if err != nil || id < 0 {
			list = append(list, errors.NewValidationf(
				errors.ErrFormat, path, "id key %q is not a non-negative integer", key))
			continue
		}
		// Non-canonical keys like "010" or "+10" would silently alias the
		// canonical key after parsing, dropping a translation.
		if strconv.FormatInt(id, 10) != key {
			list = append(list, errors.NewValidationf(
				errors.ErrFormat, path, "id key %q is not in canonical form (want %q)", key, strconv.FormatInt(id, 10)))
			continue
		}
		text := raw.Translations[key]
		if text == "" {
			list = append(list, errors.NewValidationf(
				errors.ErrFormat, path, "translation for id %d is empty", id))
			continue
		}
		translations[id] = text
	}

	if len(list) > 0 {
		return nil, list
	}
	return &TranslationTable{
		Version:             raw.Version,
		LanguageCode:        raw.LanguageCode,
		LanguageName:        raw.LanguageName,
		ProgrammingLanguage: raw.ProgrammingLanguage,
		Translations:        translations,
	}, nil
}

// validLanguageCode accepts lowercase hyphenated BCP 47 tags. Well-formed
// tags with unknown subtags pass; only syntactically broken tags fail.
func validLanguageCode(code string) bool {
	if !languageCodePattern.MatchString(code) {
		return false
	}
	if _, err := language.Parse(code); err != nil {
		var valueErr language.ValueError
		if !goerrors.As(err, &valueErr) {
			return false
		}
	}
	return true
}

// IDs returns the table's translation IDs in ascending order.
func (t *TranslationTable) IDs() []int64 {
	ids := make([]int64, 0, len(t.Translations))
	for id := range t.Translations {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// IDSet returns the table's translation IDs as a set.
func (t *TranslationTable) IDSet() map[int64]struct{} {
	set := make(map[int64]struct{}, len(t.Translations))
	for id := range t.Translations {
		set[id] = struct{}{}
	}
	return set
}
