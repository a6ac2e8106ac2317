// Package config implements the schema-driven JSON config round trip:
// deserializing a JSON document into a validated [models.Config] and
// serializing it back out, with every field checked against its
// alternative-check chain.
//
// The package also assembles the tool's own runtime settings from multiple
// sources in the following priority order (earlier sources win for non-zero
// fields):
//  1. Environment variables
//  2. Command-line flags
//  3. Built-in defaults
//
// The main entry points are [NewParser] for the round-trip operations and
// [GetSettings] for runtime settings.
package config
