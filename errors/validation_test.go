package errors

import (
	"fmt"
	"testing"
)

func TestValidationErrorFormatting(t *testing.T) {
	tests := []struct {
		name string
		want string
		v    Validation
	}{
		{
			name: "message only",
			v:    Validation{Code: "syntax-error", Message: "unexpected end of input"},
			want: "[syntax-error] unexpected end of input",
		},
		{
			name: "with path",
			v:    Validation{Code: "schema-violation", Message: "missing required property", Path: "/translations"},
			want: "[schema-violation] missing required property at /translations",
		},
		{
			name: "with file",
			v:    Validation{Code: "syntax-error", Message: "unexpected end of input", File: "natural-languages/pt/python.json"},
			want: "[syntax-error] unexpected end of input in natural-languages/pt/python.json",
		},
		{
			name: "with all",
			v: Validation{
				Code:    "schema-violation",
				Message: "missing required property",
				Path:    "/translations",
				File:    "natural-languages/pt/python.json",
			},
			want: "[schema-violation] missing required property at /translations in natural-languages/pt/python.json",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Error(); got != tt.want {
				t.Fatalf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNewValidation(t *testing.T) {
	v := NewValidation(ErrSyntax, "invalid character", "/")
	if v.Code != string(ErrSyntax) {
		t.Fatalf("Code = %q, want %q", v.Code, ErrSyntax)
	}
	if v.Message != "invalid character" {
		t.Fatalf("Message = %q, want %q", v.Message, "invalid character")
	}
	if v.Path != "/" {
		t.Fatalf("Path = %q, want %q", v.Path, "/")
	}
}

func TestNewValidationf(t *testing.T) {
	v := NewValidationf(ErrDuplicateKey, "/keywords", "id %d already used", 10)
	if v.Code != string(ErrDuplicateKey) {
		t.Fatalf("Code = %q, want %q", v.Code, ErrDuplicateKey)
	}
	if v.Message != "id 10 already used" {
		t.Fatalf("Message = %q, want %q", v.Message, "id 10 already used")
	}
	if v.Path != "/keywords" {
		t.Fatalf("Path = %q, want %q", v.Path, "/keywords")
	}
}

func TestValidationListError(t *testing.T) {
	one := Validation{Code: "completeness-missing", Message: "missing ids: 30"}
	two := Validation{Code: "completeness-extra", Message: "extra ids: 40"}

	tests := []struct {
		name string
		want string
		list ValidationList
	}{
		{
			name: "empty",
			list: ValidationList{},
			want: "no validation errors",
		},
		{
			name: "single",
			list: ValidationList{one},
			want: "[completeness-missing] missing ids: 30",
		},
		{
			name: "multiple",
			list: ValidationList{one, two},
			want: "[completeness-missing] missing ids: 30 (and 1 more)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.list.Error(); got != tt.want {
				t.Fatalf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAsValidations(t *testing.T) {
	list := ValidationList{
		{Code: "duplicate-translation", Message: "duplicate translated text"},
		{Code: "format-error", Message: "empty translation"},
	}
	wrapped := fmt.Errorf("validation failed: %w", list)

	got, ok := AsValidations(wrapped)
	if !ok {
		t.Fatalf("AsValidations() ok = false, want true")
	}
	if len(got) != 2 {
		t.Fatalf("AsValidations() len = %d, want 2", len(got))
	}
	if got[0].Code != "duplicate-translation" || got[1].Code != "format-error" {
		t.Fatalf("AsValidations() codes = %v, want [duplicate-translation format-error]", []string{got[0].Code, got[1].Code})
	}
}
