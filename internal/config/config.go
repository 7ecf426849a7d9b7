// Package config loads the small amount of static, human-editable
// configuration this module accepts: operator-supplied provider-alias
// overrides and the default marker table the tag extractor uses for its
// "thought" and "diff" fields. Both load once at process start from
// YAML — there is no file-watching here; a host that wants hot-reload
// is responsible for re-invoking Load itself.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// AliasOverrides is a YAML document of additional provider aliases an
// operator wants registered on top of the default eight dialects, e.g.:
//
//	aliases:
//	  mistral: openai
//	  local-llama: openai
type AliasOverrides struct {
	Aliases map[string]string `yaml:"aliases"`
}

// LoadAliasOverrides reads path and returns the alias -> canonical-name
// overrides it declares. A missing file is not an error: it returns an
// empty AliasOverrides, so the default registry is left untouched.
func LoadAliasOverrides(path string) (*AliasOverrides, error) {
	overrides := &AliasOverrides{Aliases: map[string]string{}}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return overrides, nil
		}
		return nil, fmt.Errorf("reading alias overrides %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, overrides); err != nil {
		return nil, fmt.Errorf("parsing alias overrides %s: %w", path, err)
	}
	if overrides.Aliases == nil {
		overrides.Aliases = map[string]string{}
	}
	if err := validateAliases(overrides); err != nil {
		return nil, fmt.Errorf("invalid alias overrides %s: %w", path, err)
	}

	return overrides, nil
}

func validateAliases(o *AliasOverrides) error {
	for alias, target := range o.Aliases {
		if alias == "" {
			return fmt.Errorf("alias key must not be empty")
		}
		if target == "" {
			return fmt.Errorf("alias %q: target must not be empty", alias)
		}
	}
	return nil
}

// MarkerPair is one open/close delimiter pair for a tag-extracted field.
type MarkerPair struct {
	Field string `yaml:"field"`
	Open  string `yaml:"open"`
	Close string `yaml:"close"`
}

// MarkerTable is a set of default open/close markers for tag-extracted
// fields, expressed as data rather than Go literals.
type MarkerTable struct {
	Markers []MarkerPair `yaml:"markers"`
}

const defaultMarkerYAML = `
markers:
  - field: thought
    open: "<thinking>"
    close: "</thinking>"
  - field: diff
    open: "<diff>"
    close: "</diff>"
`

// DefaultMarkers decodes the built-in marker table from an embedded YAML
// document.
func DefaultMarkers() (*MarkerTable, error) {
	var table MarkerTable
	if err := yaml.Unmarshal([]byte(defaultMarkerYAML), &table); err != nil {
		return nil, fmt.Errorf("parsing default marker table: %w", err)
	}
	return &table, nil
}

// Lookup returns the marker pair registered for field, or false if the
// table has none.
func (t *MarkerTable) Lookup(field string) (MarkerPair, bool) {
	for _, m := range t.Markers {
		if m.Field == field {
			return m, true
		}
	}
	return MarkerPair{}, false
}
