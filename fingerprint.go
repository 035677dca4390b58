package queueset

import (
	"encoding/json"
	"fmt"
)

// Identity is a fingerprint function for values that are their own key.
//
//	q := queueset.New(queueset.Identity[string])
func Identity[T comparable](v T) T {
	return v
}

// JSON is a fingerprint function that keys a value by its JSON encoding.
// Struct fields are encoded in declaration order and map keys sorted, so equal
// values produce equal keys. Unexported fields are ignored.
//
// JSON panics if v cannot be encoded (channels, functions, cyclic pointers).
// Supply a custom fingerprint function for such types.
func JSON[T any](v T) string {
	b, err := json.Marshal(v)
	if err != nil {
		panic(fmt.Errorf("queueset: json fingerprint of %T: %w", v, err))
	}
	return string(b)
}

// String is a fingerprint function that keys a value by its String method.
func String[T fmt.Stringer](v T) string {
	return v.String()
}
