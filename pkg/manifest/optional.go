package manifest

import "gopkg.in/yaml.v3"

// Optional holds a list that may be missing from the document.
// The zero value is absent; an empty but present list is not.
type Optional[T any] struct {
	items   []T
	present bool
}

// Present wraps items as a present list, even when items is empty
func Present[T any](items []T) Optional[T] {
	if items == nil {
		items = []T{}
	}
	return Optional[T]{items: items, present: true}
}

// Get returns the items and whether the list was present
func (o Optional[T]) Get() ([]T, bool) {
	return o.items, o.present
}

// IsPresent reports whether the list was present
func (o Optional[T]) IsPresent() bool {
	return o.present
}

// Len is zero for absent lists
func (o Optional[T]) Len() int {
	return len(o.items)
}

// UnmarshalYAML is not called by yaml.v3 for null values, so both a
// missing key and an explicit null leave the list absent.
func (o *Optional[T]) UnmarshalYAML(value *yaml.Node) error {
	var items []T
	if value.Kind != yaml.SequenceNode {
		// yields the type error
		if err := value.Decode(&items); err != nil {
			return err
		}
		*o = Present(items)
		return nil
	}

	// Null entries decode to zero values instead of being dropped,
	// so required field checks still see them.
	items = make([]T, len(value.Content))
	for i, n := range value.Content {
		if err := n.Decode(&items[i]); err != nil {
			return err
		}
	}
	*o = Present(items)
	return nil
}
