// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"github.com/MKhiriev/go-config-parser/internal/coerce"
)

// JSON keys recognized in a config document. Unknown keys are ignored.
const (
	KeySampleBool   = "sample_bool"
	KeySamplePath   = "sample_path"
	KeySampleString = "sample_string"
	KeySampleInt    = "sample_int"
	KeySimpleList   = "simple_list"
	KeyObjectList   = "object_list"

	KeyObjID   = "obj_id"
	KeyObjDesc = "obj_desc"
)

// Config is the top-level validated record loaded from and saved to JSON.
// Every field is independently optional; absence of one field never implies
// anything about another. A nil pointer (or nil slice) means the source
// document either omitted the key or set it to an explicit null; the two
// are not distinguished after loading, and both serialize back as null.
type Config struct {
	// SampleBool may arrive in JSON as a boolean or as a boolean word
	// ("true"/"yes"/"y", case-insensitive) that is coerced on load.
	SampleBool *bool `json:"sample_bool"`

	// SamplePath, when present, was an existing filesystem path (resolved
	// to absolute form) at the moment of validation. The filesystem may
	// change afterwards; no invariant is maintained beyond load time.
	SamplePath *string `json:"sample_path"`

	// SampleString is a free-form string with no constraint.
	SampleString *string `json:"sample_string"`

	// SampleInt is an integer with no constraint.
	SampleInt *int `json:"sample_int"`

	// SimpleList is an ordered sequence of strings. An empty slice is a
	// present-but-empty list, distinct from a nil (absent) one.
	SimpleList []string `json:"simple_list"`

	// ObjectList is an ordered sequence of nested records. Order is
	// preserved but carries no semantic meaning, and entries never
	// constrain one another.
	ObjectList []ObjectEntry `json:"object_list"`
}

// Serialize produces the JSON-ready mapping of the config: all six keys
// present, nil standing in for absent values. Every field is re-validated
// through the same check chain used on load, guarding against a caller
// having mutated the record into an invalid state since construction.
func (c *Config) Serialize() (map[string]any, error) {
	result := make(map[string]any, 6)

	fields := []struct {
		key    string
		raw    any
		checks []coerce.Check
	}{
		{KeySampleBool, optional(c.SampleBool), []coerce.Check{coerce.Null, coerce.Bool}},
		{KeySamplePath, optional(c.SamplePath), []coerce.Check{coerce.Null, coerce.String}},
		{KeySampleString, optional(c.SampleString), []coerce.Check{coerce.Null, coerce.String}},
		{KeySampleInt, optional(c.SampleInt), []coerce.Check{coerce.Null, coerce.Int}},
		{KeySimpleList, rawStrings(c.SimpleList), []coerce.Check{coerce.List(coerce.String), coerce.Null}},
		{KeyObjectList, rawEntries(c.ObjectList), []coerce.Check{coerce.List(coerce.Record), coerce.Null}},
	}

	for _, f := range fields {
		value, err := coerce.OneOf(f.raw, f.checks...)
		if err != nil {
			return nil, &coerce.FieldError{Field: f.key, Err: err}
		}
		result[f.key] = value
	}

	return result, nil
}

// optional flattens a typed optional field into the raw value shape the
// check chains operate on: nil for absent, the dereferenced value otherwise.
func optional[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}

func rawStrings(values []string) any {
	if values == nil {
		return nil
	}

	raw := make([]any, len(values))
	for i, v := range values {
		raw[i] = v
	}
	return raw
}

func rawEntries(entries []ObjectEntry) any {
	if entries == nil {
		return nil
	}

	raw := make([]any, len(entries))
	for i := range entries {
		raw[i] = &entries[i]
	}
	return raw
}
