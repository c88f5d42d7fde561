// Package kwtables validates a repository of programming-language keyword
// tables and their natural-language translation tables: JSON syntax, schema
// conformance, completeness of keyword ID coverage, and uniqueness of
// translated text.
package kwtables

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"runtime"

	"github.com/babel-tcc/kwtables/internal/config"
	"github.com/babel-tcc/kwtables/internal/jsonschema"
)

//go:embed schemas/keyword-table.schema.json
var builtinKeywordSchema []byte

//go:embed schemas/translation.schema.json
var builtinTranslationSchema []byte

const (
	keywordSchemaPath     = "schema/keyword-table.schema.json"
	translationSchemaPath = "schema/translation.schema.json"
)

// Repository is an opened data repository ready for validation.
// It is safe for concurrent use by multiple goroutines.
type Repository struct {
	fsys              fs.FS
	workers           int
	languages         []string
	skip              []string
	keywordSchema     *jsonschema.Schema
	translationSchema *jsonschema.Schema
}

// Option configures repository validation.
type Option interface{ apply(*options) }

type options struct {
	workers   int
	languages []string
	skip      []string
}

type optionFunc func(*options)

func (f optionFunc) apply(cfg *options) {
	if cfg == nil {
		return
	}
	f(cfg)
}

// WithWorkers bounds per-file pipeline concurrency. Zero or negative keeps
// the default of one worker per CPU.
func WithWorkers(n int) Option {
	return optionFunc(func(cfg *options) {
		cfg.workers = n
	})
}

// WithLanguages restricts validation to the given natural-language codes.
func WithLanguages(codes ...string) Option {
	return optionFunc(func(cfg *options) {
		cfg.languages = append(cfg.languages, codes...)
	})
}

// WithSkipGlobs excludes translation files matching the given path globs.
func WithSkipGlobs(globs ...string) Option {
	return optionFunc(func(cfg *options) {
		cfg.skip = append(cfg.skip, globs...)
	})
}

// Open prepares a data repository rooted at the given filesystem. Schema
// documents shipped by the repository under schema/ take precedence over the
// built-in ones. An optional kwtables.yml at the root supplies run defaults;
// explicit options are merged on top.
func Open(fsys fs.FS, opts ...Option) (*Repository, error) {
	if fsys == nil {
		return nil, fmt.Errorf("open repository: nil fs")
	}

	cfg, err := config.Load(fsys, config.DefaultFileName)
	if err != nil {
		return nil, fmt.Errorf("open repository: %w", err)
	}

	merged := options{
		workers:   cfg.Workers,
		languages: cfg.Languages,
		skip:      cfg.Skip,
	}
	for _, opt := range opts {
		if opt != nil {
			opt.apply(&merged)
		}
	}
	if merged.workers <= 0 {
		merged.workers = runtime.GOMAXPROCS(0)
	}

	keywordSchema, err := compileSchema(fsys, keywordSchemaPath, builtinKeywordSchema)
	if err != nil {
		return nil, fmt.Errorf("open repository: %w", err)
	}
	translationSchema, err := compileSchema(fsys, translationSchemaPath, builtinTranslationSchema)
	if err != nil {
		return nil, fmt.Errorf("open repository: %w", err)
	}

	return &Repository{
		fsys:              fsys,
		workers:           merged.workers,
		languages:         merged.languages,
		skip:              merged.skip,
		keywordSchema:     keywordSchema,
		translationSchema: translationSchema,
	}, nil
}

// OpenDir prepares a data repository rooted at a directory path.
func OpenDir(path string, opts ...Option) (*Repository, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("open repository %s: %w", path, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("open repository %s: not a directory", path)
	}
	return Open(os.DirFS(path), opts...)
}

func compileSchema(fsys fs.FS, path string, builtin []byte) (*jsonschema.Schema, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read schema %s: %w", path, err)
		}
		data = builtin
	}
	schema, err := jsonschema.Compile(data)
	if err != nil {
		return nil, fmt.Errorf("compile schema %s: %w", path, err)
	}
	return schema, nil
}
