// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package coerce validates raw decoded JSON values against expected shapes.
//
// Raw values are expected to come from encoding/json decoding into `any`
// with [json.Decoder.UseNumber] enabled, so the possible input shapes are:
// bool, json.Number, string, nil, []any and map[string]any. Checks also
// accept the corresponding native Go values (bool, int, string), which is
// what the serialization path feeds back in when re-validating an in-memory
// record.
//
// Every check is pure: it either returns the correctly-typed value or a
// *TypeMismatchError naming the expected shape. Deciding what to do with a
// failure is the caller's business.
package coerce

import (
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-config-parser/internal/tools"
)

// Check is a single named alternative in a check chain. Apply returns the
// coerced value on success or a *TypeMismatchError describing the expected
// shape on failure.
type Check struct {
	Name  string
	Apply func(v any) (any, error)
}

// Serializable is the capability of producing a JSON-ready mapping of
// oneself. It is implemented by exactly the record types that participate in
// serialization; there is no runtime probing beyond this interface.
type Serializable interface {
	Serialize() (map[string]any, error)
}

// Bool accepts a JSON boolean.
var Bool = Check{
	Name: "bool",
	Apply: func(v any) (any, error) {
		if b, ok := v.(bool); ok {
			return b, nil
		}
		return nil, mismatch(v, "bool")
	},
}

// Int accepts a JSON number with an integral value, or a native int.
var Int = Check{
	Name: "int",
	Apply: func(v any) (any, error) {
		switch n := v.(type) {
		case int:
			return n, nil
		case json.Number:
			i, err := n.Int64()
			if err != nil {
				return nil, mismatch(v, "int")
			}
			return int(i), nil
		default:
			return nil, mismatch(v, "int")
		}
	},
}

// String accepts a JSON string. json.Number values are rejected even though
// their underlying Go type is a string kind.
var String = Check{
	Name: "string",
	Apply: func(v any) (any, error) {
		if s, ok := v.(string); ok {
			return s, nil
		}
		return nil, mismatch(v, "string")
	},
}

// Null accepts only the absent value (nil), covering both a missing JSON key
// and an explicit JSON null.
var Null = Check{
	Name: "null",
	Apply: func(v any) (any, error) {
		if v == nil {
			return nil, nil
		}
		return nil, mismatch(v, "null")
	},
}

// BoolWord coerces a JSON string to a boolean through the boolean-word
// recognizer: "true", "yes" and "y" (case-insensitive) become true, any
// other string becomes false. Non-string values fail.
var BoolWord = Check{
	Name: "bool word",
	Apply: func(v any) (any, error) {
		s, ok := v.(string)
		if !ok {
			return nil, mismatch(v, "bool word")
		}
		return tools.ParseBool(s), nil
	},
}

// List builds a check that accepts a JSON array whose every element
// satisfies elem. Elements are coerced in order and the first element
// failure is propagated with its index. An empty array is valid and yields
// an empty slice.
func List(elem Check) Check {
	name := fmt.Sprintf("list of %s", elem.Name)
	return Check{
		Name: name,
		Apply: func(v any) (any, error) {
			raw, ok := v.([]any)
			if !ok {
				return nil, mismatch(v, name)
			}

			coerced := make([]any, 0, len(raw))
			for i, item := range raw {
				value, err := elem.Apply(item)
				if err != nil {
					return nil, fmt.Errorf("element %d: %w", i, err)
				}
				coerced = append(coerced, value)
			}

			return coerced, nil
		},
	}
}

// OneOf tries each check in order and returns the first success. When every
// alternative fails, the returned *TypeMismatchError names all attempted
// shapes and keeps each alternative's failure reachable through the error
// chain, so a list element's indexed cause survives for callers.
func OneOf(v any, checks ...Check) (any, error) {
	names := make([]string, 0, len(checks))
	causes := make([]error, 0, len(checks))
	for _, check := range checks {
		value, err := check.Apply(v)
		if err == nil {
			return value, nil
		}
		names = append(names, check.Name)
		causes = append(causes, err)
	}

	return nil, &TypeMismatchError{Value: v, Expected: names, causes: causes}
}

// Record accepts any value exposing the Serializable capability and coerces
// it to its JSON-ready mapping. Used as the element check for lists of
// nested records on the serialization path.
var Record = Check{
	Name: "serializable record",
	Apply: func(v any) (any, error) {
		return Serialized(v)
	},
}

// Serialized requires v to expose the Serializable capability and returns
// its JSON-ready mapping. Fails with a *TypeMismatchError when v does not
// implement Serializable.
func Serialized(v any) (map[string]any, error) {
	s, ok := v.(Serializable)
	if !ok {
		return nil, mismatch(v, "serializable record")
	}
	return s.Serialize()
}

func mismatch(v any, expected string) error {
	return &TypeMismatchError{Value: v, Expected: []string{expected}}
}
