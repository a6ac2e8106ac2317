// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tools provides small filesystem and string helpers shared by the
// config parsing layer: path resolution, boolean-word recognition, and a few
// generic collection utilities.
package tools

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var wordPattern = regexp.MustCompile(`[\w']+`)

// ValidatePath resolves s to an absolute path (following symlinks) and
// verifies that the resulting path exists on the filesystem at call time.
//
// Returns the resolved absolute path, or an error if s is empty or the path
// does not exist. The existence guarantee holds only at the moment of the
// call; the filesystem may change afterwards.
func ValidatePath(s string) (string, error) {
	if s == "" {
		return "", fmt.Errorf("empty path: %w", os.ErrNotExist)
	}

	path, err := filepath.Abs(s)
	if err != nil {
		return "", fmt.Errorf("error resolving path %q: %w", s, err)
	}

	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		path = resolved
	}

	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("path %q: %w", path, err)
	}

	return path, nil
}

// ParseBool recognizes the boolean words "true", "yes" and "y"
// (case-insensitive) as true. Any other string yields false.
func ParseBool(s string) bool {
	switch strings.ToLower(s) {
	case "true", "yes", "y":
		return true
	default:
		return false
	}
}

// Words splits s into its word-like tokens (letters, digits, underscores and
// apostrophes). Returns nil when s contains no words.
func Words(s string) []string {
	return wordPattern.FindAllString(s, -1)
}

// CheckString reports whether s matches one of options.
//
// With exactMatch the comparison is string equality; otherwise s only needs
// to be a substring of an option. caseSensitive controls whether casing is
// significant in either mode.
func CheckString(s string, options []string, caseSensitive, exactMatch bool) bool {
	if !caseSensitive {
		s = strings.ToLower(s)
	}

	for _, option := range options {
		if !caseSensitive {
			option = strings.ToLower(option)
		}

		if exactMatch {
			if s == option {
				return true
			}
		} else if strings.Contains(option, s) {
			return true
		}
	}

	return false
}

// InvertMap returns a new map with keys and values of m swapped.
//
// Returns ErrNotInvertible when the values of m are not unique, since the
// inversion would silently drop entries.
func InvertMap[K, V comparable](m map[K]V) (map[V]K, error) {
	inverted := make(map[V]K, len(m))
	for k, v := range m {
		if _, exists := inverted[v]; exists {
			return nil, ErrNotInvertible
		}
		inverted[v] = k
	}

	return inverted, nil
}
