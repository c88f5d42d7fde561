package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeRepo(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, data := range files {
		full := filepath.Join(root, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			t.Fatalf("MkdirAll: %v", err)
		}
		if err := os.WriteFile(full, []byte(data), 0o644); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}
	}
	return root
}

func validRepo(t *testing.T) string {
	t.Helper()
	return writeRepo(t, map[string]string{
		"programming-languages/python/keywords-base.json": `{"keywords": {"class": 10, "if": 30}}`,
		"natural-languages/pt/python.json": `{
  "version": "1.0",
  "languageCode": "pt",
  "languageName": "Português",
  "programmingLanguage": "python",
  "translations": {"10": "classe", "30": "se"}
}`,
	})
}

func TestRunValidatePasses(t *testing.T) {
	root := validRepo(t)

	var stdout, stderr bytes.Buffer
	if got := runWithArgs([]string{"validate", root}, &stdout, &stderr); got != 0 {
		t.Fatalf("exit = %d, want 0; stderr: %s", got, stderr.String())
	}
	if !strings.Contains(stdout.String(), "2 file(s) validate") {
		t.Fatalf("stdout = %q, want success summary", stdout.String())
	}
	if stderr.Len() != 0 {
		t.Fatalf("stderr = %q, want empty", stderr.String())
	}
}

func TestRunValidateFails(t *testing.T) {
	root := writeRepo(t, map[string]string{
		"programming-languages/python/keywords-base.json": `{"keywords": {"class": 10, "if": 30}}`,
		"natural-languages/pt/python.json": `{
  "version": "1.0",
  "languageCode": "pt",
  "languageName": "Português",
  "programmingLanguage": "python",
  "translations": {"10": "classe"}
}`,
	})

	var stdout, stderr bytes.Buffer
	if got := runWithArgs([]string{"validate", "-root", root}, &stdout, &stderr); got != 1 {
		t.Fatalf("exit = %d, want 1", got)
	}
	if !strings.Contains(stderr.String(), "[completeness-missing] missing ids: 30") {
		t.Fatalf("stderr = %q, want missing-ids diagnostic", stderr.String())
	}
	if !strings.Contains(stdout.String(), "completeness  FAILED (1)") {
		t.Fatalf("stdout = %q, want completeness phase failure", stdout.String())
	}
}

func TestRunValidateQuiet(t *testing.T) {
	root := validRepo(t)

	var stdout, stderr bytes.Buffer
	if got := runWithArgs([]string{"validate", "-q", root}, &stdout, &stderr); got != 0 {
		t.Fatalf("exit = %d, want 0; stderr: %s", got, stderr.String())
	}
	if stdout.Len() != 0 {
		t.Fatalf("stdout = %q, want empty with -q", stdout.String())
	}
}

func TestRunValidateLanguageFilter(t *testing.T) {
	root := writeRepo(t, map[string]string{
		"programming-languages/python/keywords-base.json": `{"keywords": {"class": 10}}`,
		"natural-languages/pt/python.json": `{
  "version": "1.0",
  "languageCode": "pt",
  "languageName": "Português",
  "programmingLanguage": "python",
  "translations": {"10": "classe"}
}`,
		"natural-languages/es/python.json": `{broken`,
	})

	var stdout, stderr bytes.Buffer
	if got := runWithArgs([]string{"validate", "-lang", "pt", root}, &stdout, &stderr); got != 0 {
		t.Fatalf("exit = %d, want 0 with -lang pt; stderr: %s", got, stderr.String())
	}
}

func TestRunUsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "no args", args: nil},
		{name: "unknown command", args: []string{"frobnicate"}},
		{name: "unknown flag", args: []string{"validate", "-nope"}},
		{name: "two roots", args: []string{"validate", "a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			if got := runWithArgs(tt.args, &stdout, &stderr); got != 2 {
				t.Fatalf("exit = %d, want 2", got)
			}
		})
	}
}

func TestRunMissingRoot(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if got := runWithArgs([]string{"validate", filepath.Join(t.TempDir(), "missing")}, &stdout, &stderr); got != 2 {
		t.Fatalf("exit = %d, want 2 for unreadable root", got)
	}
	if !strings.Contains(stderr.String(), "error:") {
		t.Fatalf("stderr = %q, want error message", stderr.String())
	}
}
