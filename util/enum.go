package util

import (
	"fmt"
	"strconv"
	"strings"
)

// EnumNames maps the values of an integer enum to the names they carry in
// JSON. Enum types delegate MarshalText and UnmarshalText to it.
type EnumNames[E ~int] struct {
	kind   string
	names  map[E]string
	values map[string]E
}

// NewEnumNames builds the lookup tables for an enum called kind.
func NewEnumNames[E ~int](kind string, names map[E]string) *EnumNames[E] {
	values := make(map[string]E, len(names))
	for v, name := range names {
		values[name] = v
	}
	return &EnumNames[E]{kind: kind, names: names, values: values}
}

// Name returns the name of v.
func (n *EnumNames[E]) Name(v E) (string, bool) {
	name, ok := n.names[v]
	return name, ok
}

// String returns the name of v, or its number when v has no name.
func (n *EnumNames[E]) String(v E) string {
	if name, ok := n.names[v]; ok {
		return name
	}
	return strconv.Itoa(int(v))
}

// Parse accepts a name (exact, then case-insensitive) or a known number.
func (n *EnumNames[E]) Parse(s string) (E, error) {
	if v, ok := n.values[s]; ok {
		return v, nil
	}
	for name, v := range n.values {
		if strings.EqualFold(name, s) {
			return v, nil
		}
	}
	if i, err := strconv.Atoi(s); err == nil {
		if _, ok := n.names[E(i)]; ok {
			return E(i), nil
		}
	}
	var zero E
	return zero, fmt.Errorf("unknown %s %q", n.kind, s)
}

// Marshal returns the name of v as text.
func (n *EnumNames[E]) Marshal(v E) ([]byte, error) {
	name, ok := n.names[v]
	if !ok {
		return nil, fmt.Errorf("%s %d has no name", n.kind, int(v))
	}
	return []byte(name), nil
}

// Unmarshal parses text produced by Marshal.
func (n *EnumNames[E]) Unmarshal(text []byte, v *E) error {
	parsed, err := n.Parse(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
