package entities

import (
	"bytes"
	"encoding/json"

	"graphlens/domain/core/valueobjects"
	pkgerrors "graphlens/pkg/errors"
)

// Attributes is an ordered mapping from attribute name to Value.
// Insertion order is preserved so that serialized output stays
// deterministic; overwriting an existing name keeps its position.
type Attributes struct {
	names  []string
	values map[string]valueobjects.Value
}

// NewAttributes creates an empty attribute map
func NewAttributes() *Attributes {
	return &Attributes{values: make(map[string]valueobjects.Value)}
}

// Set adds or overwrites an attribute
func (a *Attributes) Set(name string, value valueobjects.Value) {
	if _, exists := a.values[name]; !exists {
		a.names = append(a.names, name)
	}
	a.values[name] = value
}

// Get looks up an attribute by name
func (a *Attributes) Get(name string) (valueobjects.Value, bool) {
	v, ok := a.values[name]
	return v, ok
}

// Remove deletes an attribute; it fails when the name is absent
func (a *Attributes) Remove(name string) error {
	if _, ok := a.values[name]; !ok {
		return pkgerrors.NewAttributeNotFoundError(name)
	}
	delete(a.values, name)
	for i, n := range a.names {
		if n == name {
			a.names = append(a.names[:i], a.names[i+1:]...)
			break
		}
	}
	return nil
}

// Clone returns an independent copy of the attribute map
func (a *Attributes) Clone() *Attributes {
	clone := &Attributes{
		names:  make([]string, len(a.names)),
		values: make(map[string]valueobjects.Value, len(a.values)),
	}
	copy(clone.names, a.names)
	for name, value := range a.values {
		clone.values[name] = value
	}
	return clone
}

// Names returns the attribute names in insertion order
func (a *Attributes) Names() []string {
	names := make([]string, len(a.names))
	copy(names, a.names)
	return names
}

// Len returns the number of attributes
func (a *Attributes) Len() int {
	return len(a.names)
}

// Range calls fn for each attribute in insertion order until fn
// returns false
func (a *Attributes) Range(fn func(name string, value valueobjects.Value) bool) {
	for _, name := range a.names {
		if !fn(name, a.values[name]) {
			return
		}
	}
}

// MarshalJSON renders the attributes as an object with keys in
// insertion order
func (a *Attributes) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range a.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(a.values[name])
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
