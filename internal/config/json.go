package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/go-config-parser/internal/coerce"
	"github.com/MKhiriev/go-config-parser/internal/logger"
	"github.com/MKhiriev/go-config-parser/internal/tools"
	"github.com/MKhiriev/go-config-parser/models"
)

// Parser performs the config round trip: JSON file to validated
// [models.Config] and back. It holds an injected logger and reports
// validation and IO failures through it before propagating a typed error;
// it never terminates the process itself.
type Parser struct {
	log *logger.Logger
}

// NewParser constructs a Parser writing its diagnostics to log.
func NewParser(log *logger.Logger) *Parser {
	return &Parser{log: log}
}

// Deserialize reads the JSON document at path, validates every recognized
// field through its alternative-check chain, and returns the resulting
// config.
//
// A missing file yields a *NotFoundError; invalid JSON or a non-object
// top-level value yields a *ParseError; a field value satisfying none of
// its alternatives yields a *coerce.FieldError wrapping the underlying
// *coerce.TypeMismatchError. Unknown top-level keys are silently ignored.
func (p *Parser) Deserialize(path string) (*models.Config, error) {
	resolved, err := tools.ValidatePath(path)
	if err != nil {
		notFound := &NotFoundError{Path: path, Err: err}
		p.log.Error().Err(notFound).Msg("config file not found")
		return nil, notFound
	}

	jsonFile, err := os.Open(resolved)
	if err != nil {
		p.log.Error().Err(err).Str("path", resolved).Msg("error opening config file")
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	decoder := json.NewDecoder(jsonFile)
	decoder.UseNumber()

	var raw any
	if err := decoder.Decode(&raw); err != nil {
		parseErr := &ParseError{Path: resolved, Err: err}
		p.log.Error().Err(parseErr).Msg("error decoding json configs")
		return nil, parseErr
	}

	// a valid document is exactly one JSON value; anything after it is a
	// parse failure, not something to silently ignore
	if err := decoder.Decode(new(any)); !errors.Is(err, io.EOF) {
		if err == nil {
			err = ErrTrailingData
		}
		parseErr := &ParseError{Path: resolved, Err: err}
		p.log.Error().Err(parseErr).Msg("error decoding json configs")
		return nil, parseErr
	}

	obj, ok := raw.(map[string]any)
	if !ok {
		parseErr := &ParseError{Path: resolved, Err: ErrNotAnObject}
		p.log.Error().Err(parseErr).Msg("error decoding json configs")
		return nil, parseErr
	}

	return p.deserializeConfig(obj)
}

// deserializeConfig maps the decoded top-level object onto a Config,
// running every field through its alternative-check chain. A missing key
// and an explicit null are both seen as nil here and collapse to "absent".
func (p *Parser) deserializeConfig(obj map[string]any) (*models.Config, error) {
	cfg := &models.Config{}

	v, err := coerce.OneOf(obj[models.KeySampleBool], coerce.BoolWord, coerce.Bool, coerce.Null)
	if err != nil {
		return nil, p.fieldFailure(models.KeySampleBool, err)
	}
	if v != nil {
		b := v.(bool)
		cfg.SampleBool = &b
	}

	v, err = coerce.OneOf(obj[models.KeySamplePath], coerce.Null, coerce.String)
	if err != nil {
		return nil, p.fieldFailure(models.KeySamplePath, err)
	}
	if v != nil {
		resolved, err := tools.ValidatePath(v.(string))
		if err != nil {
			return nil, p.fieldFailure(models.KeySamplePath, &NotFoundError{Path: v.(string), Err: err})
		}
		cfg.SamplePath = &resolved
	}

	v, err = coerce.OneOf(obj[models.KeySampleString], coerce.Null, coerce.String)
	if err != nil {
		return nil, p.fieldFailure(models.KeySampleString, err)
	}
	if v != nil {
		s := v.(string)
		cfg.SampleString = &s
	}

	v, err = coerce.OneOf(obj[models.KeySampleInt], coerce.Null, coerce.Int)
	if err != nil {
		return nil, p.fieldFailure(models.KeySampleInt, err)
	}
	if v != nil {
		i := v.(int)
		cfg.SampleInt = &i
	}

	v, err = coerce.OneOf(obj[models.KeySimpleList], coerce.List(coerce.String), coerce.Null)
	if err != nil {
		return nil, p.fieldFailure(models.KeySimpleList, err)
	}
	if v != nil {
		raw := v.([]any)
		list := make([]string, len(raw))
		for i, item := range raw {
			list[i] = item.(string)
		}
		cfg.SimpleList = list
	}

	v, err = coerce.OneOf(obj[models.KeyObjectList], coerce.List(p.objectEntryCheck()), coerce.Null)
	if err != nil {
		return nil, p.fieldFailure(models.KeyObjectList, err)
	}
	if v != nil {
		raw := v.([]any)
		entries := make([]models.ObjectEntry, len(raw))
		for i, item := range raw {
			entries[i] = item.(models.ObjectEntry)
		}
		cfg.ObjectList = entries
	}

	p.log.Info().
		Any(models.KeySampleBool, cfg.SampleBool).
		Any(models.KeySamplePath, cfg.SamplePath).
		Any(models.KeySampleString, cfg.SampleString).
		Any(models.KeySampleInt, cfg.SampleInt).
		Any(models.KeySimpleList, cfg.SimpleList).
		Any(models.KeyObjectList, cfg.ObjectList).
		Msg("config deserialized")

	return cfg, nil
}

// objectEntryCheck builds the element check for object_list: each element
// must be a JSON object whose two recognized fields independently pass
// their own chains. One entry's shape never constrains another's.
func (p *Parser) objectEntryCheck() coerce.Check {
	return coerce.Check{
		Name: "object entry",
		Apply: func(v any) (any, error) {
			obj, ok := v.(map[string]any)
			if !ok {
				return nil, &coerce.TypeMismatchError{Value: v, Expected: []string{"object entry"}}
			}

			entry := models.ObjectEntry{}

			id, err := coerce.OneOf(obj[models.KeyObjID], coerce.Null, coerce.Int)
			if err != nil {
				return nil, &coerce.FieldError{Field: models.KeyObjID, Err: err}
			}
			if id != nil {
				i := id.(int)
				entry.ObjID = &i
			}

			desc, err := coerce.OneOf(obj[models.KeyObjDesc], coerce.Null, coerce.String)
			if err != nil {
				return nil, &coerce.FieldError{Field: models.KeyObjDesc, Err: err}
			}
			if desc != nil {
				s := desc.(string)
				entry.ObjDesc = &s
			}

			p.log.Info().
				Any(models.KeyObjID, entry.ObjID).
				Any(models.KeyObjDesc, entry.ObjDesc).
				Msg("object entry deserialized")

			return entry, nil
		},
	}
}

func (p *Parser) fieldFailure(field string, err error) error {
	fieldErr := &coerce.FieldError{Field: field, Err: err}
	p.log.Error().Err(fieldErr).Str("field", field).Msg("config field failed validation")
	return fieldErr
}
