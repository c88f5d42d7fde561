package kwtables

import (
	"sort"

	"github.com/babel-tcc/kwtables/errors"
)

// Status is the terminal state of one file's validation pipeline.
type Status int

const (
	// StatusPass means every check for the file succeeded.
	StatusPass Status = iota
	// StatusFail means at least one check produced a diagnostic.
	StatusFail
)

// String returns a human-readable status name.
func (s Status) String() string {
	switch s {
	case StatusPass:
		return "pass"
	case StatusFail:
		return "fail"
	default:
		return "unknown"
	}
}

// FileResult is the outcome of one file's validation pipeline.
type FileResult struct {
	File        string
	Status      Status
	Diagnostics []errors.Validation
}

// Report aggregates the outcomes of every discovered file for one run.
// It is built once per run and never mutated afterwards.
type Report struct {
	Files []FileResult
}

// Failed reports whether any file failed validation.
func (r *Report) Failed() bool {
	for _, f := range r.Files {
		if f.Status == StatusFail {
			return true
		}
	}
	return false
}

// Diagnostics returns every diagnostic in the report, ordered by file.
func (r *Report) Diagnostics() []errors.Validation {
	var out []errors.Validation
	for _, f := range r.Files {
		out = append(out, f.Diagnostics...)
	}
	return out
}

// CountByCode returns the number of diagnostics per error code.
func (r *Report) CountByCode() map[string]int {
	counts := make(map[string]int)
	for _, f := range r.Files {
		for _, d := range f.Diagnostics {
			counts[d.Code]++
		}
	}
	return counts
}

func sortResults(results []FileResult) {
	sort.Slice(results, func(i, j int) bool { return results[i].File < results[j].File })
}
