package youtrack

import "encoding/json"

type optState uint8

const (
	optUnset optState = iota
	optNull
	optSet
)

// Opt is an optional entity attribute with three states: unset, null, and
// set. The distinction matters on the wire: the server treats an absent
// attribute and an explicit null differently on update (null clears the
// attribute, absent leaves it untouched). Unset attributes are skipped on
// encode via the omitzero tag; null attributes are emitted as JSON null.
type Opt[T any] struct {
	value T
	state optState
}

// Set returns an Opt holding v.
func Set[T any](v T) Opt[T] {
	return Opt[T]{value: v, state: optSet}
}

// Null returns an Opt in the explicit-null state.
func Null[T any]() Opt[T] {
	return Opt[T]{state: optNull}
}

// IsSet reports whether the attribute holds a value.
func (o Opt[T]) IsSet() bool { return o.state == optSet }

// IsNull reports whether the attribute is an explicit null.
func (o Opt[T]) IsNull() bool { return o.state == optNull }

// IsZero reports whether the attribute is unset. encoding/json consults it
// for the omitzero tag, so unset attributes never reach the output.
func (o Opt[T]) IsZero() bool { return o.state == optUnset }

// Value returns the held value and whether one is set.
func (o Opt[T]) Value() (T, bool) {
	return o.value, o.state == optSet
}

// Or returns the held value, or def when the attribute is unset or null.
func (o Opt[T]) Or(def T) T {
	if o.state == optSet {
		return o.value
	}
	return def
}

func (o Opt[T]) MarshalJSON() ([]byte, error) {
	if o.state != optSet {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}

func (o *Opt[T]) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*o = Opt[T]{state: optNull}
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return codecError(err)
	}
	*o = Opt[T]{value: v, state: optSet}
	return nil
}
