package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-config-parser/internal/tools"
	"github.com/MKhiriev/go-config-parser/models"
)

// Serialize writes cfg as pretty-printed JSON to dir/filename.
//
// The directory must already exist (resolved to absolute form) or a
// *NotFoundError is returned. Every field is re-validated through its check
// chain before writing, so a record mutated into an invalid state since
// construction is rejected rather than written. The output object always
// carries all six keys, with null for absent values, indented with four
// spaces and stable key order; an existing file is truncated.
func (p *Parser) Serialize(cfg *models.Config, dir, filename string) error {
	resolved, err := tools.ValidatePath(dir)
	if err != nil {
		notFound := &NotFoundError{Path: dir, Err: err}
		p.log.Error().Err(notFound).Msg("output directory not found")
		return notFound
	}

	result, err := cfg.Serialize()
	if err != nil {
		p.log.Error().Err(err).Msg("config failed re-validation before serialization")
		return err
	}

	data, err := json.MarshalIndent(result, "", "    ")
	if err != nil {
		return fmt.Errorf("error marshaling config: %w", err)
	}

	target := filepath.Join(resolved, filename)
	if err := os.WriteFile(target, data, 0o644); err != nil {
		p.log.Error().Err(err).Str("path", target).Msg("error writing config file")
		return fmt.Errorf("error writing config file %q: %w", target, err)
	}

	p.log.Info().Str("path", target).Msg("config serialized")
	return nil
}
