package kwtables

import (
	"fmt"
	"io/fs"
	"path"
	"slices"
)

// templateFileName is the scaffold file excluded from validation.
const templateFileName = "template.json"

type keywordFile struct {
	path     string
	language string
}

type translationFile struct {
	path         string
	languageCode string
}

// discover walks the expected repository layout and returns every keyword
// table and translation file subject to validation, honoring the language
// filter and skip globs.
func (r *Repository) discover() ([]keywordFile, []translationFile, error) {
	keywordPaths, err := fs.Glob(r.fsys, "programming-languages/*/keywords-base.json")
	if err != nil {
		return nil, nil, fmt.Errorf("discover keyword tables: %w", err)
	}

	keywords := make([]keywordFile, 0, len(keywordPaths))
	for _, p := range keywordPaths {
		keywords = append(keywords, keywordFile{
			path:     p,
			language: path.Base(path.Dir(p)),
		})
	}

	translationPaths, err := fs.Glob(r.fsys, "natural-languages/*/*.json")
	if err != nil {
		return nil, nil, fmt.Errorf("discover translation files: %w", err)
	}

	var translations []translationFile
	for _, p := range translationPaths {
		if path.Base(p) == templateFileName {
			continue
		}
		if r.skipped(p) {
			continue
		}
		code := path.Base(path.Dir(p))
		if len(r.languages) > 0 && !slices.Contains(r.languages, code) {
			continue
		}
		translations = append(translations, translationFile{path: p, languageCode: code})
	}

	return keywords, translations, nil
}

func (r *Repository) skipped(p string) bool {
	for _, glob := range r.skip {
		if ok, _ := path.Match(glob, p); ok {
			return true
		}
		if ok, _ := path.Match(glob, path.Base(p)); ok {
			return true
		}
	}
	return false
}
