// Package tables defines the typed keyword-table and translation-table
// entities and the loaders that produce them from raw document bytes.
// Loaded tables are immutable value objects; loaders report failures as
// errors.ValidationList so every finding carries a JSON-pointer path.
package tables

import (
	"encoding/json"
	"sort"
	"strconv"

	"github.com/babel-tcc/kwtables/errors"
)

// KeywordTable maps a programming language's keywords to unique numeric IDs.
type KeywordTable struct {
	ProgrammingLanguage string
	Keywords            map[string]int64
}

type rawKeywordTable struct {
	Keywords map[string]json.Number `json:"keywords"`
}

// LoadKeywordTable parses a keywords-base document. On success the returned
// table satisfies the ID uniqueness invariant: no two keywords share an ID.
func LoadKeywordTable(programmingLanguage string, data []byte) (*KeywordTable, error) {
	var raw rawKeywordTable
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.ValidationList{
			errors.NewValidationf(errors.ErrSyntax, "/", "invalid JSON: %v", err),
		}
	}

	var list errors.ValidationList
	keywords := make(map[string]int64, len(raw.Keywords))
	owner := make(map[int64]string, len(raw.Keywords))

	for _, keyword := range sortedKeys(raw.Keywords) {
		path := "/keywords/" + keyword
		id, err := strconv.ParseInt(raw.Keywords[keyword].String(), 10, 64)
		if err != nil {
			list = append(list, errors.NewValidationf(
				errors.ErrRange, path, "id %s is not an integer", raw.Keywords[keyword]))
			continue
		}
		if id < 0 {
			list = append(list, errors.NewValidationf(
				errors.ErrRange, path, "id %d is negative", id))
			continue
		}
		if first, ok := owner[id]; ok {
			list = append(list, errors.NewValidationf(
				errors.ErrDuplicateKey, path, "id %d already used by keyword %q", id, first))
			continue
		}
		owner[id] = keyword
		keywords[keyword] = id
	}

	if len(list) > 0 {
		return nil, list
	}
	return &KeywordTable{ProgrammingLanguage: programmingLanguage, Keywords: keywords}, nil
}

// IDs returns the table's keyword IDs in ascending order.
func (t *KeywordTable) IDs() []int64 {
	ids := make([]int64, 0, len(t.Keywords))
	for _, id := range t.Keywords {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// IDSet returns the table's keyword IDs as a set.
func (t *KeywordTable) IDSet() map[int64]struct{} {
	set := make(map[int64]struct{}, len(t.Keywords))
	for _, id := range t.Keywords {
		set[id] = struct{}{}
	}
	return set
}

// MarshalJSON serializes the table back into keywords-base document form.
func (t *KeywordTable) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Keywords map[string]int64 `json:"keywords"`
	}{Keywords: t.Keywords})
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
