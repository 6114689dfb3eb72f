package utils

import "encoding/json"

// MarshalCanonical renders v as 2-space-indented JSON with object keys
// sorted, keeping the wire format byte-stable across releases.
func MarshalCanonical(v interface{}) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	// encoding/json sorts map keys, so a round trip through a generic
	// tree canonicalizes the key order.
	var tree interface{}
	if err := json.Unmarshal(raw, &tree); err != nil {
		return nil, err
	}
	return json.MarshalIndent(tree, "", "  ")
}
