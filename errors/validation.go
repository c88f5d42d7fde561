package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCode classifies a validation finding.
type ErrorCode string

const (
	// ErrIO indicates a file could not be read.
	ErrIO ErrorCode = "io-error"
	// ErrSyntax indicates a document is not well-formed JSON.
	ErrSyntax ErrorCode = "syntax-error"
	// ErrSchema indicates a document does not conform to its schema.
	ErrSchema ErrorCode = "schema-violation"

	// ErrDuplicateKey indicates two keywords share the same numeric ID.
	ErrDuplicateKey ErrorCode = "duplicate-key"
	// ErrRange indicates a keyword ID is negative or non-integral.
	ErrRange ErrorCode = "range-error"
	// ErrFormat indicates a malformed languageCode, translation ID key,
	// or empty translated text.
	ErrFormat ErrorCode = "format-error"

	// ErrMissingIDs indicates keyword IDs with no translation.
	ErrMissingIDs ErrorCode = "completeness-missing"
	// ErrExtraIDs indicates translation IDs absent from the keyword table.
	ErrExtraIDs ErrorCode = "completeness-extra"
	// ErrUnknownProgrammingLanguage indicates a translation table references
	// a programming language with no keyword table.
	ErrUnknownProgrammingLanguage ErrorCode = "unknown-programming-language"

	// ErrDuplicateTranslation indicates multiple IDs share the same
	// translated text.
	ErrDuplicateTranslation ErrorCode = "duplicate-translation"
)

// Validation describes a single validation finding with an error code and
// optional file and JSON-pointer context.
//
//nolint:errname // public API name uses the validation domain term.
type Validation struct {
	Code    string
	Message string
	File    string
	Path    string
}

// ValidationList is an error that wraps one or more validation findings.
type ValidationList []Validation //nolint:errname // public API name.

// Error returns a compact summary of the validation findings.
func (v ValidationList) Error() string {
	switch len(v) {
	case 0:
		return "no validation errors"
	case 1:
		return v[0].Error()
	default:
		return fmt.Sprintf("%s (and %d more)", v[0].Error(), len(v)-1)
	}
}

// Error formats the validation for display, including code, message, and context.
func (v *Validation) Error() string {
	if v == nil {
		return "validation <nil>"
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("[%s] %s", v.Code, v.Message))
	if v.Path != "" {
		b.WriteString(fmt.Sprintf(" at %s", v.Path))
	}
	if v.File != "" {
		b.WriteString(fmt.Sprintf(" in %s", v.File))
	}
	return b.String()
}

// NewValidation builds a Validation with a code, message, and optional path.
func NewValidation(code ErrorCode, msg, path string) Validation {
	return Validation{Code: string(code), Message: msg, Path: path}
}

// NewValidationf formats a message and builds a Validation.
func NewValidationf(code ErrorCode, path, format string, args ...any) Validation {
	return NewValidation(code, fmt.Sprintf(format, args...), path)
}

// AsValidations extracts validation findings from an error returned by
// validation helpers.
func AsValidations(err error) ([]Validation, bool) {
	list, ok := asValidationList(err)
	if !ok {
		return nil, false
	}
	return []Validation(list), true
}

func asValidationList(err error) (ValidationList, bool) {
	if err == nil {
		return nil, false
	}
	var list ValidationList
	if errors.As(err, &list) {
		return list, true
	}

	var listPtr *ValidationList
	if errors.As(err, &listPtr) && listPtr != nil {
		return *listPtr, true
	}

	return nil, false
}
