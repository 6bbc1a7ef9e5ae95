package models

import "encoding/json"

// Bindings maps variable names to their current string values while
// remembering insertion order. Substitution order across different variables
// is observable when one value contains another variable's placeholder
// syntax, so a plain map is not enough.
type Bindings struct {
	names  []string
	values map[string]string
}

// NewBindings creates an empty binding set
func NewBindings() *Bindings {
	return &Bindings{
		values: make(map[string]string),
	}
}

// Set binds a variable name to a value. Re-binding an existing name updates
// the value but keeps the name's original position.
func (b *Bindings) Set(name, value string) *Bindings {
	if b.values == nil {
		b.values = make(map[string]string)
	}
	if _, exists := b.values[name]; !exists {
		b.names = append(b.names, name)
	}
	b.values[name] = value
	return b
}

// Get returns the value bound to name, defaulting to the empty string
func (b *Bindings) Get(name string) string {
	if b == nil || b.values == nil {
		return ""
	}
	return b.values[name]
}

// Has reports whether name is bound
func (b *Bindings) Has(name string) bool {
	if b == nil || b.values == nil {
		return false
	}
	_, ok := b.values[name]
	return ok
}

// Names returns the bound names in insertion order
func (b *Bindings) Names() []string {
	if b == nil {
		return nil
	}
	return b.names
}

// Len returns the number of bound names
func (b *Bindings) Len() int {
	if b == nil {
		return 0
	}
	return len(b.names)
}

// bindingPair is the wire representation of a single binding
type bindingPair struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// MarshalJSON encodes bindings as an ordered array of {name, value} pairs
func (b *Bindings) MarshalJSON() ([]byte, error) {
	pairs := make([]bindingPair, 0, len(b.names))
	for _, name := range b.names {
		pairs = append(pairs, bindingPair{Name: name, Value: b.values[name]})
	}
	return json.Marshal(pairs)
}

// UnmarshalJSON decodes an ordered array of {name, value} pairs
func (b *Bindings) UnmarshalJSON(data []byte) error {
	var pairs []bindingPair
	if err := json.Unmarshal(data, &pairs); err != nil {
		return err
	}
	b.names = nil
	b.values = make(map[string]string)
	for _, pair := range pairs {
		b.Set(pair.Name, pair.Value)
	}
	return nil
}
