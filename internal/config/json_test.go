package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-config-parser/internal/coerce"
	"github.com/MKhiriev/go-config-parser/internal/logger"
	"github.com/MKhiriev/go-config-parser/models"
)

func newTestParser() *Parser {
	return NewParser(logger.Nop())
}

func writeConfigFile(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestDeserialize_Success(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	existing := filepath.Join(dir, "referenced.txt")
	require.NoError(t, os.WriteFile(existing, []byte("x"), 0o600))

	jsonBody := `{
		"sample_bool": true,
		"sample_path": "` + existing + `",
		"sample_string": "hello",
		"sample_int": 42,
		"simple_list": ["a", "b", "c"],
		"object_list": [
			{"obj_id": 1, "obj_desc": "first"},
			{"obj_id": 2, "obj_desc": "second"}
		]
	}`
	p := writeConfigFile(t, jsonBody)

	// Act
	cfg, err := newTestParser().Deserialize(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	require.NotNil(t, cfg.SampleBool)
	assert.True(t, *cfg.SampleBool)

	require.NotNil(t, cfg.SamplePath)
	assert.True(t, filepath.IsAbs(*cfg.SamplePath))

	require.NotNil(t, cfg.SampleString)
	assert.Equal(t, "hello", *cfg.SampleString)

	require.NotNil(t, cfg.SampleInt)
	assert.Equal(t, 42, *cfg.SampleInt)

	assert.Equal(t, []string{"a", "b", "c"}, cfg.SimpleList)

	require.Len(t, cfg.ObjectList, 2)
	assert.Equal(t, 1, *cfg.ObjectList[0].ObjID)
	assert.Equal(t, "first", *cfg.ObjectList[0].ObjDesc)
	assert.Equal(t, 2, *cfg.ObjectList[1].ObjID)
	assert.Equal(t, "second", *cfg.ObjectList[1].ObjDesc)
}

func TestDeserialize_FileNotFound(t *testing.T) {
	// Act
	cfg, err := newTestParser().Deserialize("definitely-does-not-exist.json")

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)

	var notFound *NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestDeserialize_InvalidJSON(t *testing.T) {
	// Arrange
	p := writeConfigFile(t, `{ this is not json }`)

	// Act
	cfg, err := newTestParser().Deserialize(p)

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)

	var parseErr *ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestDeserialize_TrailingDataAfterDocument(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "garbage after object", body: `{"sample_int": 1} this is garbage`},
		{name: "second JSON value", body: `{"sample_int": 1}{}`},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			// Arrange
			p := writeConfigFile(t, test.body)

			// Act
			cfg, err := newTestParser().Deserialize(p)

			// Assert
			require.Error(t, err)
			assert.Nil(t, cfg)

			var parseErr *ParseError
			assert.ErrorAs(t, err, &parseErr)
		})
	}
}

func TestDeserialize_TrailingWhitespaceIsAccepted(t *testing.T) {
	// Arrange
	p := writeConfigFile(t, "{\"sample_int\": 1}\n\t \n")

	// Act
	cfg, err := newTestParser().Deserialize(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)
	require.NotNil(t, cfg.SampleInt)
	assert.Equal(t, 1, *cfg.SampleInt)
}

func TestDeserialize_TopLevelNotAnObject(t *testing.T) {
	// Arrange
	p := writeConfigFile(t, `["just", "an", "array"]`)

	// Act
	cfg, err := newTestParser().Deserialize(p)

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.ErrorIs(t, err, ErrNotAnObject)
}

func TestDeserialize_TypeMismatchNamesFieldAndAlternatives(t *testing.T) {
	// Arrange
	p := writeConfigFile(t, `{"sample_int": "not a number"}`)

	// Act
	cfg, err := newTestParser().Deserialize(p)

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)

	var fieldErr *coerce.FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, models.KeySampleInt, fieldErr.Field)

	var tm *coerce.TypeMismatchError
	require.ErrorAs(t, err, &tm)
	assert.Equal(t, []string{"null", "int"}, tm.Expected)
	assert.Equal(t, "not a number", tm.Value)
}

func TestDeserialize_SamplePathDoesNotExist(t *testing.T) {
	// Arrange
	p := writeConfigFile(t, `{"sample_path": "/definitely/does/not/exist"}`)

	// Act
	cfg, err := newTestParser().Deserialize(p)

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)

	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "/definitely/does/not/exist", notFound.Path)

	var fieldErr *coerce.FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, models.KeySamplePath, fieldErr.Field)
}

func TestDeserialize_BoolWordCoercion(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected bool
	}{
		{"word Yes", `{"sample_bool": "Yes"}`, true},
		{"word true", `{"sample_bool": "true"}`, true},
		{"word y", `{"sample_bool": "y"}`, true},
		{"word no", `{"sample_bool": "no"}`, false},
		{"unrecognized word", `{"sample_bool": "whatever"}`, false},
		{"native true", `{"sample_bool": true}`, true},
		{"native false", `{"sample_bool": false}`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := writeConfigFile(t, tt.body)

			cfg, err := newTestParser().Deserialize(p)

			require.NoError(t, err)
			require.NotNil(t, cfg.SampleBool)
			assert.Equal(t, tt.expected, *cfg.SampleBool)
		})
	}
}

func TestDeserialize_BoolRejectsNumbers(t *testing.T) {
	// Arrange
	p := writeConfigFile(t, `{"sample_bool": 1}`)

	// Act
	cfg, err := newTestParser().Deserialize(p)

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)

	var tm *coerce.TypeMismatchError
	require.ErrorAs(t, err, &tm)
	assert.Equal(t, []string{"bool word", "bool", "null"}, tm.Expected)
}

func TestDeserialize_ObjectListEntriesAreIndependent(t *testing.T) {
	// Arrange
	p := writeConfigFile(t, `{"object_list": [{"obj_id": 1}, {"obj_desc": "x"}]}`)

	// Act
	cfg, err := newTestParser().Deserialize(p)

	// Assert
	require.NoError(t, err)
	require.Len(t, cfg.ObjectList, 2)

	require.NotNil(t, cfg.ObjectList[0].ObjID)
	assert.Equal(t, 1, *cfg.ObjectList[0].ObjID)
	assert.Nil(t, cfg.ObjectList[0].ObjDesc)

	assert.Nil(t, cfg.ObjectList[1].ObjID)
	require.NotNil(t, cfg.ObjectList[1].ObjDesc)
	assert.Equal(t, "x", *cfg.ObjectList[1].ObjDesc)
}

func TestDeserialize_UnknownKeysAreIgnored(t *testing.T) {
	// Arrange
	p := writeConfigFile(t, `{"sample_string": "kept", "unused": 42, "another": {"nested": true}}`)

	// Act
	cfg, err := newTestParser().Deserialize(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg.SampleString)
	assert.Equal(t, "kept", *cfg.SampleString)
}

func TestDeserialize_EmptyListIsDistinctFromAbsent(t *testing.T) {
	// Arrange
	p := writeConfigFile(t, `{"simple_list": []}`)

	// Act
	cfg, err := newTestParser().Deserialize(p)

	// Assert
	require.NoError(t, err)
	assert.NotNil(t, cfg.SimpleList)
	assert.Empty(t, cfg.SimpleList)
}

func TestDeserialize_ExplicitNullAndMissingKeyCollapse(t *testing.T) {
	// Arrange: sample_string null, sample_int missing entirely.
	p := writeConfigFile(t, `{"sample_string": null}`)

	// Act
	cfg, err := newTestParser().Deserialize(p)

	// Assert
	require.NoError(t, err)
	assert.Nil(t, cfg.SampleString)
	assert.Nil(t, cfg.SampleInt)
	assert.Nil(t, cfg.SimpleList)
	assert.Nil(t, cfg.ObjectList)
}

func TestDeserialize_EmptyObject(t *testing.T) {
	// Arrange
	p := writeConfigFile(t, `{}`)

	// Act
	cfg, err := newTestParser().Deserialize(p)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, &models.Config{}, cfg)
}

func TestDeserialize_SimpleListElementMismatch(t *testing.T) {
	// Arrange
	p := writeConfigFile(t, `{"simple_list": ["ok", 5]}`)

	// Act
	cfg, err := newTestParser().Deserialize(p)

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)

	var fieldErr *coerce.FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, models.KeySimpleList, fieldErr.Field)

	// The chain failure names both attempted alternatives and keeps the
	// indexed element cause reachable for diagnostics.
	var tm *coerce.TypeMismatchError
	require.ErrorAs(t, err, &tm)
	assert.Equal(t, []string{"list of string", "null"}, tm.Expected)

	causes := tm.Unwrap()
	require.NotEmpty(t, causes)
	assert.Contains(t, causes[0].Error(), "element 1")
}

func TestDeserialize_ObjectEntryFieldMismatch(t *testing.T) {
	// Arrange
	p := writeConfigFile(t, `{"object_list": [{"obj_id": "not an int"}]}`)

	// Act
	cfg, err := newTestParser().Deserialize(p)

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)

	var fieldErr *coerce.FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, models.KeyObjectList, fieldErr.Field)
}
