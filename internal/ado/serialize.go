package ado

import (
	"encoding/json"
	"fmt"
)

// ToJSON serializes the instructions to the plain transport mapping:
// project_name, work_items (each item flattened with work_item_type and
// priority as their string labels, parent_id null for Epics), and the
// organization context passed through unchanged.
//
// The projection is deterministic: serializing, parsing, and serializing
// again produces byte-identical output.
func (ins *Instructions) ToJSON() ([]byte, error) {
	data, err := json.MarshalIndent(ins, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling instructions: %w", err)
	}
	return data, nil
}

// FromJSON parses a transport mapping back into Instructions.
// A parse failure means the input is not an instruction set at all —
// callers report it as a "cannot process" condition, distinct from
// structural validation issues (see Validate).
func FromJSON(data []byte) (*Instructions, error) {
	var ins Instructions
	if err := json.Unmarshal(data, &ins); err != nil {
		return nil, fmt.Errorf("parsing instructions JSON: %w", err)
	}
	return &ins, nil
}
