package kwtables

import (
	"io/fs"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/babel-tcc/kwtables/errors"
	"github.com/babel-tcc/kwtables/internal/checks"
	"github.com/babel-tcc/kwtables/internal/jsonschema"
	"github.com/babel-tcc/kwtables/internal/tables"
)

// Validate runs the full pipeline over every discovered file and returns the
// aggregated report. Distinct files are validated concurrently; the report
// is assembled only after every per-file pipeline has finished. Validate
// itself fails only on discovery errors; validation findings are reported
// through the returned Report, never as an error.
func (r *Repository) Validate() (*Report, error) {
	keywordFiles, translationFiles, err := r.discover()
	if err != nil {
		return nil, err
	}

	// Keyword tables load first and are read-only for the rest of the run;
	// translation pipelines share them without locking.
	index := make(map[string]*tables.KeywordTable, len(keywordFiles))
	results := make([]FileResult, 0, len(keywordFiles)+len(translationFiles))
	for _, f := range keywordFiles {
		res, table := r.validateKeywordFile(f)
		results = append(results, res)
		if table != nil {
			index[strings.ToLower(f.language)] = table
		}
	}

	partial := make([]FileResult, len(translationFiles))
	var g errgroup.Group
	g.SetLimit(r.workers)
	for i, f := range translationFiles {
		g.Go(func() error {
			partial[i] = r.validateTranslationFile(f, index)
			return nil
		})
	}
	// Barrier: the exit status depends on the full set of files.
	_ = g.Wait()

	results = append(results, partial...)
	sortResults(results)
	return &Report{Files: results}, nil
}

func (r *Repository) validateKeywordFile(f keywordFile) (FileResult, *tables.KeywordTable) {
	data, err := fs.ReadFile(r.fsys, f.path)
	if err != nil {
		return fileFailure(f.path, errors.NewValidationf(errors.ErrIO, "", "cannot read file: %v", err)), nil
	}

	doc, err := jsonschema.Decode(data)
	if err != nil {
		return fileFailure(f.path, errors.NewValidationf(errors.ErrSyntax, "/", "invalid JSON: %v", err)), nil
	}

	if violations := r.keywordSchema.Validate(doc); len(violations) > 0 {
		return fileResult(f.path, violations), nil
	}

	table, err := tables.LoadKeywordTable(f.language, data)
	if err != nil {
		violations, _ := errors.AsValidations(err)
		return fileResult(f.path, violations), nil
	}

	return fileResult(f.path, nil), table
}

func (r *Repository) validateTranslationFile(f translationFile, index map[string]*tables.KeywordTable) FileResult {
	data, err := fs.ReadFile(r.fsys, f.path)
	if err != nil {
		return fileFailure(f.path, errors.NewValidationf(errors.ErrIO, "", "cannot read file: %v", err))
	}

	doc, err := jsonschema.Decode(data)
	if err != nil {
		return fileFailure(f.path, errors.NewValidationf(errors.ErrSyntax, "/", "invalid JSON: %v", err))
	}

	if violations := r.translationSchema.Validate(doc); len(violations) > 0 {
		return fileResult(f.path, violations)
	}

	table, err := tables.LoadTranslationTable(data)
	if err != nil {
		violations, _ := errors.AsValidations(err)
		return fileResult(f.path, violations)
	}

	// The table parsed; completeness and uniqueness both run regardless of
	// each other's outcome so one CI round-trip shows every issue.
	var violations []errors.Validation
	keyword, ok := index[strings.ToLower(table.ProgrammingLanguage)]
	if !ok {
		violations = append(violations, errors.NewValidationf(
			errors.ErrUnknownProgrammingLanguage, "/programmingLanguage",
			"no keyword table for programming language %q", table.ProgrammingLanguage))
	} else {
		violations = append(violations, checks.Completeness(table, keyword)...)
	}
	violations = append(violations, checks.Uniqueness(table)...)

	return fileResult(f.path, violations)
}

func fileFailure(file string, v errors.Validation) FileResult {
	return fileResult(file, []errors.Validation{v})
}

func fileResult(file string, violations []errors.Validation) FileResult {
	for i := range violations {
		violations[i].File = file
	}
	status := StatusPass
	if len(violations) > 0 {
		status = StatusFail
	}
	return FileResult{File: file, Status: status, Diagnostics: violations}
}
