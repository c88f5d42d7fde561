// Package checks implements the referential checks that run after a
// translation table has parsed: completeness against its keyword table and
// uniqueness of translated text. Both checks report every finding, never
// just the first, so a contributor can fix a file in one pass.
package checks

import (
	"sort"
	"strconv"
	"strings"

	"github.com/babel-tcc/kwtables/errors"
	"github.com/babel-tcc/kwtables/internal/tables"
)

// Completeness compares a translation table's ID set against its keyword
// table's ID set. It passes iff the sets are equal; otherwise the full
// missing and extra sets are reported.
func Completeness(translation *tables.TranslationTable, keyword *tables.KeywordTable) []errors.Validation {
	keywordIDs := keyword.IDSet()
	translationIDs := translation.IDSet()

	var missing, extra []int64
	for id := range keywordIDs {
		if _, ok := translationIDs[id]; !ok {
			missing = append(missing, id)
		}
	}
	for id := range translationIDs {
		if _, ok := keywordIDs[id]; !ok {
			extra = append(extra, id)
		}
	}
	sortIDs(missing)
	sortIDs(extra)

	var violations []errors.Validation
	if len(missing) > 0 {
		violations = append(violations, errors.NewValidationf(
			errors.ErrMissingIDs, "/translations", "missing ids: %s", formatIDs(missing)))
	}
	if len(extra) > 0 {
		violations = append(violations, errors.NewValidationf(
			errors.ErrExtraIDs, "/translations", "extra ids not present in the keyword table: %s", formatIDs(extra)))
	}
	return violations
}

// Uniqueness detects IDs within one translation table that share identical
// translated text. Comparison is case-insensitive; every duplicate group is
// reported with all of its member IDs.
func Uniqueness(translation *tables.TranslationTable) []errors.Validation {
	groups := make(map[string][]int64)
	for id, text := range translation.Translations {
		folded := strings.ToLower(text)
		groups[folded] = append(groups[folded], id)
	}

	var duplicates []string
	for folded, ids := range groups {
		if len(ids) > 1 {
			duplicates = append(duplicates, folded)
		}
	}
	sort.Strings(duplicates)

	var violations []errors.Validation
	for _, folded := range duplicates {
		ids := groups[folded]
		sortIDs(ids)
		violations = append(violations, errors.NewValidationf(
			errors.ErrDuplicateTranslation, "/translations",
			"translation %q used by ids %s", translation.Translations[ids[0]], formatIDs(ids)))
	}
	return violations
}

func sortIDs(ids []int64) {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
}

func formatIDs(ids []int64) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return strings.Join(parts, ", ")
}
