package reified

import (
	"fmt"

	"github.com/originbyte/ob-sdk-go/bcs"
)

type vectorCodec[T any] struct {
	elem Codec[T]
}

// Vector returns the codec of vector<T>.
func Vector[T any](elem Codec[T]) Codec[[]T] {
	return vectorCodec[T]{elem: elem}
}

func (c vectorCodec[T]) TypeString() string {
	return "vector<" + c.elem.TypeString() + ">"
}

func (c vectorCodec[T]) EncodeBCS(e *bcs.Encoder, v []T) error {
	if err := e.WriteLength(len(v)); err != nil {
		return err
	}
	for i := range v {
		if err := c.elem.EncodeBCS(e, v[i]); err != nil {
			return fmt.Errorf("%s[%d]: %w", c.TypeString(), i, err)
		}
	}
	return nil
}

func (c vectorCodec[T]) DecodeBCS(d *bcs.Decoder) ([]T, error) {
	n, err := d.ReadLength()
	if err != nil {
		return nil, err
	}
	// Cap the preallocation so a hostile length fails on EOF instead of OOM.
	out := make([]T, 0, min(n, d.Remaining()))
	for i := 0; i < n; i++ {
		v, err := c.elem.DecodeBCS(d)
		if err != nil {
			return nil, fmt.Errorf("%s[%d]: %w", c.TypeString(), i, err)
		}
		out = append(out, v)
	}
	return out, nil
}

func (c vectorCodec[T]) decodeEach(field any, decode func(any) (T, error)) ([]T, error) {
	items, err := asSlice(field)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", c.TypeString(), err)
	}
	out := make([]T, len(items))
	for i, item := range items {
		if out[i], err = decode(item); err != nil {
			return nil, fmt.Errorf("%s[%d]: %w", c.TypeString(), i, err)
		}
	}
	return out, nil
}

func (c vectorCodec[T]) FromFields(field any) ([]T, error) {
	return c.decodeEach(field, c.elem.FromFields)
}

func (c vectorCodec[T]) FromFieldsWithTypes(item any) ([]T, error) {
	return c.decodeEach(item, c.elem.FromFieldsWithTypes)
}

func (c vectorCodec[T]) FromJSONField(field any) ([]T, error) {
	return c.decodeEach(field, c.elem.FromJSONField)
}

func (c vectorCodec[T]) ToJSONField(v []T) any {
	out := make([]any, len(v))
	for i := range v {
		out[i] = c.elem.ToJSONField(v[i])
	}
	return out
}

// asSlice accepts []any and the byte slices produced for vector<u8>.
func asSlice(v any) ([]any, error) {
	switch x := v.(type) {
	case []any:
		return x, nil
	case []byte:
		out := make([]any, len(x))
		for i, b := range x {
			out[i] = b
		}
		return out, nil
	case nil:
		return nil, nil
	}
	return nil, fmt.Errorf("%w: expected an array, got %T", ErrInvalidField, v)
}

func asMap(v any) (map[string]any, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: expected an object, got %T", ErrInvalidField, v)
	}
	return m, nil
}

type phantomCodec struct {
	typ string
}

// Phantom stands in for a phantom type argument: it only carries the type
// string and has no values.
func Phantom(typ string) Codec[any] {
	return phantomCodec{typ: typ}
}

func (p phantomCodec) TypeString() string { return p.typ }

func (p phantomCodec) EncodeBCS(*bcs.Encoder, any) error {
	return fmt.Errorf("%w: %s", ErrPhantom, p.typ)
}

func (p phantomCodec) DecodeBCS(*bcs.Decoder) (any, error) {
	return nil, fmt.Errorf("%w: %s", ErrPhantom, p.typ)
}

func (p phantomCodec) FromFields(any) (any, error) {
	return nil, fmt.Errorf("%w: %s", ErrPhantom, p.typ)
}

func (p phantomCodec) FromFieldsWithTypes(any) (any, error) {
	return nil, fmt.Errorf("%w: %s", ErrPhantom, p.typ)
}

func (p phantomCodec) FromJSONField(any) (any, error) {
	return nil, fmt.Errorf("%w: %s", ErrPhantom, p.typ)
}

func (p phantomCodec) ToJSONField(any) any { return nil }

type erased[T any] struct {
	c Codec[T]
}

// Erase wraps c so it can be stored next to codecs of other Go types.
func Erase[T any](c Codec[T]) Codec[any] {
	if a, ok := any(c).(Codec[any]); ok {
		return a
	}
	return erased[T]{c: c}
}

func (e erased[T]) TypeString() string { return e.c.TypeString() }

func (e erased[T]) EncodeBCS(enc *bcs.Encoder, v any) error {
	t, ok := v.(T)
	if !ok {
		return fmt.Errorf("%w: %s cannot encode %T", ErrInvalidField, e.c.TypeString(), v)
	}
	return e.c.EncodeBCS(enc, t)
}

func (e erased[T]) DecodeBCS(d *bcs.Decoder) (any, error)     { return e.c.DecodeBCS(d) }
func (e erased[T]) FromFields(field any) (any, error)         { return e.c.FromFields(field) }
func (e erased[T]) FromFieldsWithTypes(item any) (any, error) { return e.c.FromFieldsWithTypes(item) }
func (e erased[T]) FromJSONField(field any) (any, error)      { return e.c.FromJSONField(field) }

func (e erased[T]) ToJSONField(v any) any {
	if t, ok := v.(T); ok {
		return e.c.ToJSONField(t)
	}
	return v
}

func (e erased[T]) structInfo() (string, []string, bool) {
	if s, ok := e.c.(structInfoer); ok {
		return s.structInfo()
	}
	return "", nil, false
}

func (e erased[T]) FromJSONObject(m map[string]any) (any, error) {
	if s, ok := e.c.(interface {
		FromJSONObject(map[string]any) (T, error)
	}); ok {
		return s.FromJSONObject(m)
	}
	return e.c.FromJSONField(m)
}
