package tools

import "errors"

// ErrNotInvertible is returned by [InvertMap] when the input map holds
// duplicate values and therefore has no unique inverse. Callers should use
// [errors.Is] to match against this value.
var ErrNotInvertible = errors.New("map cannot be inverted: values are not unique")
