package reified

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/originbyte/ob-sdk-go/movetype"
)

type structInfoer interface {
	structInfo() (typeName string, typeArgs []string, ok bool)
}

// ToJSON renders v through c.ToJSONField. Struct values additionally carry
// $typeName and $typeArgs.
func ToJSON[T any](c Codec[T], v T) ([]byte, error) {
	out := c.ToJSONField(v)
	if s, ok := c.(structInfoer); ok {
		if name, args, isStruct := s.structInfo(); isStruct {
			if m, ok := out.(map[string]any); ok {
				if args == nil {
					args = []string{}
				}
				m["$typeName"] = name
				m["$typeArgs"] = args
			}
		}
	}
	return json.Marshal(out)
}

// FromJSON decodes JSON produced by ToJSON. Structs are checked against
// $typeName and $typeArgs.
func FromJSON[T any](c Codec[T], data []byte) (T, error) {
	var zero T
	if s, ok := c.(interface {
		FromJSONObject(map[string]any) (T, error)
	}); ok && isStruct(c) {
		m, err := decodeJSONObject(data)
		if err != nil {
			return zero, err
		}
		return s.FromJSONObject(m)
	}
	var field any
	if err := decodeJSON(data, &field); err != nil {
		return zero, err
	}
	return c.FromJSONField(field)
}

// isStruct reports whether c renders as a JSON object with $typeName.
// Erased codecs answer for the codec they wrap.
func isStruct(c any) bool {
	s, ok := c.(structInfoer)
	if !ok {
		return false
	}
	_, _, ok = s.structInfo()
	return ok
}

func decodeJSON(data []byte, out any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidField, err)
	}
	return nil
}

func decodeJSONObject(data []byte) (map[string]any, error) {
	var m map[string]any
	if err := decodeJSON(data, &m); err != nil {
		return nil, err
	}
	if m == nil {
		return nil, fmt.Errorf("%w: expected a json object", ErrInvalidField)
	}
	return m, nil
}

// AssertTypeArgsMatch compares the type arguments found on an item against
// the expected ones after compressing both.
func AssertTypeArgsMatch(fullType string, got, want []string) error {
	if len(got) != len(want) {
		return fmt.Errorf("%w: provided item has mismatching number of type arguments %s (expected %d, got %d)",
			ErrTypeArgCount, fullType, len(want), len(got))
	}
	for i := range got {
		if !movetype.SameType(got[i], want[i]) {
			return fmt.Errorf("%w: provided item has mismatching type arguments %s (expected %s, got %s)",
				ErrTypeMismatch, fullType, want[i], got[i])
		}
	}
	return nil
}
