package models

import (
	"github.com/MKhiriev/go-config-parser/internal/coerce"
)

// ObjectEntry is the nested record type appearing only inside a Config's
// object_list. Both fields are independently optional and no relationship
// exists between entries.
type ObjectEntry struct {
	ObjID   *int    `json:"obj_id"`
	ObjDesc *string `json:"obj_desc"`
}

// Serialize produces the JSON-ready mapping of the entry with both keys
// present, re-validating each field through its check chain.
func (e *ObjectEntry) Serialize() (map[string]any, error) {
	result := make(map[string]any, 2)

	id, err := coerce.OneOf(optional(e.ObjID), coerce.Null, coerce.Int)
	if err != nil {
		return nil, &coerce.FieldError{Field: KeyObjID, Err: err}
	}
	result[KeyObjID] = id

	desc, err := coerce.OneOf(optional(e.ObjDesc), coerce.Null, coerce.String)
	if err != nil {
		return nil, &coerce.FieldError{Field: KeyObjDesc, Err: err}
	}
	result[KeyObjDesc] = desc

	return result, nil
}
