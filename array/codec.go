package array

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
)

// MarshalJSON encodes the array as a JSON array.
func (a *Array[T]) MarshalJSON() ([]byte, error) {
	if a.items == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(a.items)
}

// UnmarshalJSON replaces the elements with the ones of a JSON array.
func (a *Array[T]) UnmarshalJSON(data []byte) error {
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("unable to decode array from json:\n\t%w", err)
	}
	a.items = items
	return nil
}

// MarshalYAML encodes the array as a YAML sequence.
func (a *Array[T]) MarshalYAML() ([]byte, error) {
	items := a.items
	if items == nil {
		items = []T{}
	}
	return yaml.Marshal(items)
}

// UnmarshalYAML replaces the elements with the ones of a YAML sequence.
func (a *Array[T]) UnmarshalYAML(data []byte) error {
	var items []T
	if err := yaml.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("unable to decode array from yaml:\n\t%w", err)
	}
	a.items = items
	return nil
}
