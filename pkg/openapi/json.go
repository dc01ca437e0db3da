package openapi

import (
	"encoding/json"
	"os"
)

// MarshalJSON serializes the document to indented JSON bytes.
func MarshalJSON(spec *Spec) ([]byte, error) {
	return json.MarshalIndent(spec, "", "  ")
}

// WriteJSON serializes the document and writes it to filename.
func WriteJSON(spec *Spec, filename string) error {
	data, err := MarshalJSON(spec)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0o644)
}
