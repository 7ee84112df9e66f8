package icd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// WriteJSON writes the mappings as a JSON array indented by indent spaces.
// Non-ASCII and HTML-sensitive characters are written as they are.
// An empty list is written as [].
func WriteJSON(w io.Writer, mappings []*Mapping, indent int) error {
	if mappings == nil {
		mappings = []*Mapping{}
	}

	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", strings.Repeat(" ", max(indent, 0)))

	if err := encoder.Encode(mappings); err != nil {
		return fmt.Errorf("failed to encode json: %w", err)
	}

	return nil
}

// ReadJSON decodes a JSON array of mappings.
func ReadJSON(r io.Reader) ([]*Mapping, error) {
	var mappings []*Mapping

	if err := json.NewDecoder(r).Decode(&mappings); err != nil {
		return nil, fmt.Errorf("failed to decode json: %w", err)
	}

	return mappings, nil
}
