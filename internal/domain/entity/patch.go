package entity

import "encoding/json"

// Patch is a three-state input field: absent, explicit null, or a value.
// Plain pointers conflate "omitted" and "null", which breaks update
// semantics for nullable columns like Item.Category (key absent leaves the
// column unchanged, key present with null clears it).
//
// encoding/json only calls UnmarshalJSON for keys present in the payload,
// so a zero Patch means the field was omitted.
type Patch[T any] struct {
	Present bool
	Null    bool
	Value   T
}

// UnmarshalJSON records presence and decodes either null or a value.
func (p *Patch[T]) UnmarshalJSON(data []byte) error {
	p.Present = true
	if string(data) == "null" {
		p.Null = true
		return nil
	}
	return json.Unmarshal(data, &p.Value)
}

// MarshalJSON encodes the value, or null when the field was cleared.
// An absent Patch still encodes as null; callers that need true omission
// should not marshal the field at all.
func (p Patch[T]) MarshalJSON() ([]byte, error) {
	if !p.Present || p.Null {
		return []byte("null"), nil
	}
	return json.Marshal(p.Value)
}

// Ptr returns the value as a pointer, nil when the field is null or absent.
func (p Patch[T]) Ptr() *T {
	if !p.Present || p.Null {
		return nil
	}
	v := p.Value
	return &v
}
