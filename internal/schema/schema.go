// Package schema validates raw provider event payloads before any provider
// adapter reads a field out of them. Two policies are supported: strict
// shapes (a tagged union discriminated by an event-type field; unknown
// event types are rejected here so the adapter never has to) and lenient
// shapes (all fields optional, passthrough, unknown fields ignored).
//
// Schemas are JSON Schema documents, compiled exactly once and cached by
// name — the same caching idiom used by this codebase's existing
// JSON-schema-backed argument validator.
package schema

import (
	"encoding/json"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

// Validator compiles and caches JSON schemas by name.
type Validator struct {
	cache sync.Map // map[string]*gojsonschema.Schema
}

// NewValidator returns an empty Validator. Most callers use the
// package-level Default instead.
func NewValidator() *Validator {
	return &Validator{}
}

var defaultValidator = NewValidator()

// Default returns the process-wide Validator, built lazily and reused by
// every adapter in internal/providers.
func Default() *Validator {
	return defaultValidator
}

// Valid reports whether payload validates against the named schema. Any
// failure — an unknown schema name, a malformed schema document, a
// compilation error, or a genuine validation failure — reports false.
// Schema validation never panics and never surfaces an error to the
// adapter: a rejected payload is simply not worth propagating (§4.3 —
// "adapters never trust raw payload shapes; they always run the schema
// first and bail out to None on failure").
func (v *Validator) Valid(schemaName string, payload []byte) bool {
	schema, err := v.compiled(schemaName)
	if err != nil {
		return false
	}

	result, err := schema.Validate(gojsonschema.NewBytesLoader(payload))
	if err != nil {
		return false
	}
	return result.Valid()
}

func (v *Validator) compiled(name string) (*gojsonschema.Schema, error) {
	if cached, ok := v.cache.Load(name); ok {
		return cached.(*gojsonschema.Schema), nil
	}

	doc, ok := documents[name]
	if !ok {
		return nil, errUnknownSchema(name)
	}

	loader := gojsonschema.NewStringLoader(doc)
	compiled, err := gojsonschema.NewSchema(loader)
	if err != nil {
		return nil, err
	}

	actual, _ := v.cache.LoadOrStore(name, compiled)
	return actual.(*gojsonschema.Schema), nil
}

type errUnknownSchema string

func (e errUnknownSchema) Error() string { return "schema: unknown schema " + string(e) }

// IsKeyedRecord reports whether raw decodes as a JSON object (a "keyed
// record" in the spec's terms) rather than an array, scalar, or null.
// Every adapter's first guard is this check, run before any schema
// validation — a payload that is not a keyed record is never worth
// validating further.
func IsKeyedRecord(raw []byte) bool {
	var probe json.RawMessage
	if err := json.Unmarshal(raw, &probe); err != nil {
		return false
	}
	trimmed := trimLeadingSpace(probe)
	return len(trimmed) > 0 && trimmed[0] == '{'
}

func trimLeadingSpace(b []byte) []byte {
	i := 0
	for i < len(b) {
		switch b[i] {
		case ' ', '\t', '\n', '\r':
			i++
			continue
		}
		break
	}
	return b[i:]
}
