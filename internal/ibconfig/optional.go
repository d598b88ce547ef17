package ibconfig

import (
	"encoding/json"
	"fmt"
)

const notRequiredRepr = "not required for IB"

// Optional holds a broker parameter that some IB contracts do not need.
// The zero value is NotRequired.
type Optional[T any] struct {
	value    T
	required bool
}

func Required[T any](v T) Optional[T] {
	return Optional[T]{value: v, required: true}
}

func NotRequired[T any]() Optional[T] {
	return Optional[T]{}
}

// Get returns the value and whether IB requires it.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.required
}

func (o Optional[T]) IsRequired() bool {
	return o.required
}

func (o Optional[T]) String() string {
	if !o.required {
		return notRequiredRepr
	}
	return fmt.Sprint(o.value)
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.required {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}
