package find

import "encoding/json"

// Converter maps wire-format records onto domain values. Implementations are
// injected per entity type; the find layer never inspects individual items
// itself.
type Converter[T any] interface {
	// ToTarget converts a single raw record.
	ToTarget(raw json.RawMessage) (T, error)

	// ToTargetArray converts a raw record sequence, preserving order.
	ToTargetArray(raw []json.RawMessage) ([]T, error)
}

// ConvertFunc adapts a single-record conversion function into a Converter.
// The array form applies the function per element and stops at the first
// failure.
type ConvertFunc[T any] func(raw json.RawMessage) (T, error)

// ToTarget implements Converter.
func (fn ConvertFunc[T]) ToTarget(raw json.RawMessage) (T, error) {
	return fn(raw)
}

// ToTargetArray implements Converter.
func (fn ConvertFunc[T]) ToTargetArray(raw []json.RawMessage) ([]T, error) {
	items := make([]T, 0, len(raw))
	for _, r := range raw {
		v, err := fn(r)
		if err != nil {
			return nil, err
		}
		items = append(items, v)
	}
	return items, nil
}
