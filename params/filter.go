package params

import (
	"encoding/json"
	"fmt"
)

type filterKind uint8

const (
	filterMatching filterKind = iota
	filterWildcard
	filterNone
)

// Filter expresses the three states GitHub overloads onto parameters
// like milestone and assignee: a concrete value, the "*" wildcard
// (any value present), or the literal string "none" (explicitly
// absent). Exactly one of the three holds; the zero value is a
// concrete match against T's zero value.
type Filter[T any] struct {
	kind  filterKind
	value T
}

// Matching filters for items whose field equals v.
func Matching[T any](v T) Filter[T] {
	return Filter[T]{kind: filterMatching, value: v}
}

// Wildcard filters for items where the field is set to anything.
func Wildcard[T any]() Filter[T] {
	return Filter[T]{kind: filterWildcard}
}

// None filters for items where the field is not set at all.
func None[T any]() Filter[T] {
	return Filter[T]{kind: filterNone}
}

// ParseFilter interprets the raw sentinel strings the API documents:
// "*" becomes the wildcard, "none" the explicit absence, and anything
// else a concrete match.
func ParseFilter(s string) Filter[string] {
	switch s {
	case "*":
		return Wildcard[string]()
	case "none":
		return None[string]()
	}
	return Matching(s)
}

// Value returns the concrete value and whether the filter holds one.
func (f Filter[T]) Value() (T, bool) {
	return f.value, f.kind == filterMatching
}

// IsWildcard reports whether the filter is the "*" wildcard.
func (f Filter[T]) IsWildcard() bool {
	return f.kind == filterWildcard
}

// IsNone reports whether the filter is the explicit "none".
func (f Filter[T]) IsNone() bool {
	return f.kind == filterNone
}

// MarshalJSON writes the wire form: "*", "none", or the canonical JSON
// encoding of the concrete value.
func (f Filter[T]) MarshalJSON() ([]byte, error) {
	switch f.kind {
	case filterWildcard:
		return []byte(`"*"`), nil
	case filterNone:
		return []byte(`"none"`), nil
	}
	return json.Marshal(f.value)
}

// UnmarshalJSON inverts MarshalJSON. The sentinels take precedence;
// anything else must decode as T.
func (f *Filter[T]) UnmarshalJSON(data []byte) error {
	var sentinel string
	if err := json.Unmarshal(data, &sentinel); err == nil {
		switch sentinel {
		case "*":
			*f = Wildcard[T]()
			return nil
		case "none":
			*f = None[T]()
			return nil
		}
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*f = Matching(v)
	return nil
}

// String renders the wire form without JSON quoting.
func (f Filter[T]) String() string {
	switch f.kind {
	case filterWildcard:
		return "*"
	case filterNone:
		return "none"
	}
	return fmt.Sprint(f.value)
}
