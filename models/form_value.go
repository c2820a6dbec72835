package models

import (
	"bytes"
	"encoding/json"
)

// FormValue holds the raw text a client typed into a numeric field. It decodes
// from a JSON string, number, or null so that parsing (and coercion of bad
// input) is left to the billing calculator.
type FormValue string

func (v *FormValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*v = ""
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = FormValue(s)
	default:
		*v = FormValue(data)
	}
	return nil
}
