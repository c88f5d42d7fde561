package jsonschema

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/babel-tcc/kwtables/errors"
)

// Validate evaluates a decoded JSON value against the schema and returns the
// full ordered list of violations. An empty list means the document
// conforms. Validate never aborts at the first violation.
func (s *Schema) Validate(doc any) []errors.Validation {
	if s == nil || s.root == nil {
		return []errors.Validation{errors.NewValidation(errors.ErrSchema, "schema not compiled", "")}
	}
	return s.root.validate(doc, "")
}

func (n *node) validate(doc any, path string) []errors.Validation {
	var violations []errors.Validation

	switch n.typ {
	case "object":
		obj, ok := doc.(map[string]any)
		if !ok {
			return append(violations, typeViolation(path, "object", doc))
		}
		violations = append(violations, n.validateObject(obj, path)...)
	case "string":
		str, ok := doc.(string)
		if !ok {
			return append(violations, typeViolation(path, "string", doc))
		}
		violations = append(violations, n.validateString(str, path)...)
	case "integer":
		num, ok := integerValue(doc)
		if !ok {
			return append(violations, typeViolation(path, "integer", doc))
		}
		violations = append(violations, n.validateNumber(float64(num), path)...)
	case "number":
		num, ok := doc.(json.Number)
		if !ok {
			return append(violations, typeViolation(path, "number", doc))
		}
		f, err := num.Float64()
		if err != nil {
			return append(violations, typeViolation(path, "number", doc))
		}
		violations = append(violations, n.validateNumber(f, path)...)
	}

	return violations
}

func (n *node) validateObject(obj map[string]any, path string) []errors.Validation {
	var violations []errors.Validation

	for _, name := range n.required {
		if _, ok := obj[name]; !ok {
			violations = append(violations, errors.NewValidationf(
				errors.ErrSchema, pointerOrRoot(path), "missing required property %q", name))
		}
	}

	for _, key := range sortedKeys(obj) {
		childPath := path + "/" + escapePointerToken(key)

		if child, ok := n.properties[key]; ok {
			violations = append(violations, child.validate(obj[key], childPath)...)
			continue
		}

		matched := false
		for _, pp := range n.patternProperties {
			if pp.re.MatchString(key) {
				matched = true
				violations = append(violations, pp.schema.validate(obj[key], childPath)...)
			}
		}
		if matched {
			continue
		}

		if n.hasAdditional && !n.additionalProperties {
			if len(n.patternProperties) > 0 {
				violations = append(violations, errors.NewValidationf(
					errors.ErrSchema, childPath, "property %q does not match %s", key, patternSources(n.patternProperties)))
			} else {
				violations = append(violations, errors.NewValidationf(
					errors.ErrSchema, childPath, "unexpected property %q", key))
			}
		}
	}

	return violations
}

func (n *node) validateString(str, path string) []errors.Validation {
	var violations []errors.Validation
	if n.minLength != nil && len([]rune(str)) < *n.minLength {
		violations = append(violations, errors.NewValidationf(
			errors.ErrSchema, pointerOrRoot(path), "string is shorter than %d characters", *n.minLength))
	}
	if n.pattern != nil && !n.pattern.MatchString(str) {
		violations = append(violations, errors.NewValidationf(
			errors.ErrSchema, pointerOrRoot(path), "value %q does not match pattern %q", str, n.patternSource))
	}
	return violations
}

func (n *node) validateNumber(f float64, path string) []errors.Validation {
	var violations []errors.Validation
	if n.minimum != nil && f < *n.minimum {
		violations = append(violations, errors.NewValidationf(
			errors.ErrSchema, pointerOrRoot(path), "value %v is below minimum %v", f, *n.minimum))
	}
	return violations
}

func typeViolation(path, want string, doc any) errors.Validation {
	return errors.NewValidationf(errors.ErrSchema, pointerOrRoot(path), "expected %s, found %s", want, typeName(doc))
}

func integerValue(doc any) (int64, bool) {
	num, ok := doc.(json.Number)
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseInt(num.String(), 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func typeName(doc any) string {
	switch doc.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case string:
		return "string"
	case json.Number:
		return "number"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return "unknown"
	}
}

func patternSources(pps []patternProperty) string {
	if len(pps) == 1 {
		return "pattern " + strconv.Quote(pps[0].source)
	}
	sources := make([]string, len(pps))
	for i, pp := range pps {
		sources[i] = strconv.Quote(pp.source)
	}
	return "patterns " + strings.Join(sources, ", ")
}

func escapePointerToken(token string) string {
	token = strings.ReplaceAll(token, "~", "~0")
	return strings.ReplaceAll(token, "/", "~1")
}

func pointerOrRoot(path string) string {
	if path == "" {
		return "/"
	}
	return path
}
