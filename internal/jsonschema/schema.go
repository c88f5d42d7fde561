// Package jsonschema compiles and evaluates the JSON Schema subset used by
// the keyword-table and translation schema documents: type, required,
// properties, patternProperties, additionalProperties (boolean form),
// pattern, minLength, and minimum.
package jsonschema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"sort"
)

// Schema is a compiled schema document ready for validation.
// It is safe for concurrent use by multiple goroutines.
type Schema struct {
	root *node
}

type node struct {
	typ                  string
	required             []string
	properties           map[string]*node
	patternProperties    []patternProperty
	additionalProperties bool
	hasAdditional        bool
	pattern              *regexp.Regexp
	patternSource        string
	minLength            *int
	minimum              *float64
}

type patternProperty struct {
	source string
	re     *regexp.Regexp
	schema *node
}

type rawSchema struct {
	Type                 string                     `json:"type"`
	Required             []string                   `json:"required"`
	Properties           map[string]json.RawMessage `json:"properties"`
	PatternProperties    map[string]json.RawMessage `json:"patternProperties"`
	AdditionalProperties *bool                      `json:"additionalProperties"`
	Pattern              string                     `json:"pattern"`
	MinLength            *int                       `json:"minLength"`
	Minimum              *float64                   `json:"minimum"`
}

// schemaKeywords lists every keyword a schema object may carry: the
// supported validation keywords plus annotation-only keywords. Anything
// else is an unsupported construct and fails compilation, so a schema
// never silently compiles into a weaker check than its author wrote.
var schemaKeywords = map[string]struct{}{
	"type":                 {},
	"required":             {},
	"properties":           {},
	"patternProperties":    {},
	"additionalProperties": {},
	"pattern":              {},
	"minLength":            {},
	"minimum":              {},
	"$schema":              {},
	"title":                {},
	"description":          {},
}

// Compile parses and compiles a schema document.
func Compile(data []byte) (*Schema, error) {
	root, err := compileNode(data, "")
	if err != nil {
		return nil, err
	}
	return &Schema{root: root}, nil
}

func compileNode(data json.RawMessage, path string) (*node, error) {
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		return nil, fmt.Errorf("parse schema at %s: %w", pointerOrRoot(path), err)
	}
	for _, key := range sortedKeys(keys) {
		if _, ok := schemaKeywords[key]; !ok {
			return nil, fmt.Errorf("compile schema at %s: unsupported keyword %q", pointerOrRoot(path), key)
		}
	}

	var raw rawSchema
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse schema at %s: %w", pointerOrRoot(path), err)
	}

	switch raw.Type {
	case "", "object", "string", "integer", "number":
	default:
		return nil, fmt.Errorf("compile schema at %s: unsupported type %q", pointerOrRoot(path), raw.Type)
	}

	n := &node{
		typ:       raw.Type,
		required:  raw.Required,
		minLength: raw.MinLength,
		minimum:   raw.Minimum,
	}

	if raw.AdditionalProperties != nil {
		n.hasAdditional = true
		n.additionalProperties = *raw.AdditionalProperties
	}

	if raw.Pattern != "" {
		re, err := regexp.Compile(raw.Pattern)
		if err != nil {
			return nil, fmt.Errorf("compile schema at %s: pattern %q: %w", pointerOrRoot(path), raw.Pattern, err)
		}
		n.pattern = re
		n.patternSource = raw.Pattern
	}

	if len(raw.Properties) > 0 {
		n.properties = make(map[string]*node, len(raw.Properties))
		for _, name := range sortedKeys(raw.Properties) {
			child, err := compileNode(raw.Properties[name], path+"/properties/"+escapePointerToken(name))
			if err != nil {
				return nil, err
			}
			n.properties[name] = child
		}
	}

	for _, source := range sortedKeys(raw.PatternProperties) {
		re, err := regexp.Compile(source)
		if err != nil {
			return nil, fmt.Errorf("compile schema at %s: patternProperties %q: %w", pointerOrRoot(path), source, err)
		}
		child, err := compileNode(raw.PatternProperties[source], path+"/patternProperties/"+escapePointerToken(source))
		if err != nil {
			return nil, err
		}
		n.patternProperties = append(n.patternProperties, patternProperty{source: source, re: re, schema: child})
	}

	return n, nil
}

// Decode parses document bytes into a JSON value, preserving numeric
// precision via json.Number. Trailing content after the first value is an
// error.
func Decode(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	if err := ensureEOF(dec); err != nil {
		return nil, err
	}
	return doc, nil
}

func ensureEOF(dec *json.Decoder) error {
	if _, err := dec.Token(); err != io.EOF {
		return fmt.Errorf("decode document: trailing content after top-level value")
	}
	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
