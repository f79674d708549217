package reified

import (
	"fmt"
	"unicode/utf8"

	"github.com/originbyte/ob-sdk-go/bcs"
	"github.com/originbyte/ob-sdk-go/movetype"
)

// Framework types that map onto plain Go values instead of struct wrappers.
var (
	// String is 0x1::string::String as a Go string.
	String Codec[string] = stringCodec{typ: movetype.StringTypeName, utf8: true}
	// ASCIIString is 0x1::ascii::String as a Go string.
	ASCIIString Codec[string] = stringCodec{typ: movetype.ASCIIStringTypeName}
	// URL is 0x2::url::Url as a Go string.
	URL Codec[string] = stringCodec{typ: movetype.URLTypeName, nested: "url"}
	// ID is 0x2::object::ID as an address.
	ID Codec[movetype.Address] = idCodec{typ: movetype.IDTypeName}
	// UID is 0x2::object::UID as an address.
	UID Codec[movetype.Address] = idCodec{typ: movetype.UIDTypeName, uid: true}
)

type stringCodec struct {
	typ    string
	utf8   bool
	nested string
}

func (c stringCodec) TypeString() string { return c.typ }

func (c stringCodec) EncodeBCS(e *bcs.Encoder, v string) error {
	if err := c.validate(v); err != nil {
		return err
	}
	return e.WriteString(v)
}

func (c stringCodec) DecodeBCS(d *bcs.Decoder) (string, error) {
	s, err := d.ReadString()
	if err != nil {
		return "", err
	}
	return s, c.validate(s)
}

func (c stringCodec) validate(s string) error {
	if c.utf8 {
		if !utf8.ValidString(s) {
			return fmt.Errorf("%w: %s is not valid utf-8", ErrInvalidField, c.typ)
		}
		return nil
	}
	for i := 0; i < len(s); i++ {
		if s[i] > 0x7f {
			return fmt.Errorf("%w: %s contains non-ascii byte 0x%02x", ErrInvalidField, c.typ, s[i])
		}
	}
	return nil
}

// FromFields expects {"bytes": [...]}, or {"url": {"bytes": [...]}} for Url.
func (c stringCodec) FromFields(field any) (string, error) {
	if c.nested != "" {
		m, err := asMap(field)
		if err != nil {
			return "", fmt.Errorf("%s: %w", c.typ, err)
		}
		field = m[c.nested]
	}
	m, err := asMap(field)
	if err != nil {
		return "", fmt.Errorf("%s: %w", c.typ, err)
	}
	switch b := m["bytes"].(type) {
	case string:
		return b, c.validate(b)
	default:
		raw, err := Vector(U8).FromFields(b)
		if err != nil {
			return "", fmt.Errorf("%s: %w", c.typ, err)
		}
		return string(raw), c.validate(string(raw))
	}
}

func (c stringCodec) FromFieldsWithTypes(item any) (string, error) {
	return c.FromJSONField(item)
}

func (c stringCodec) FromJSONField(field any) (string, error) {
	s, ok := field.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s expects a string, got %T", ErrInvalidField, c.typ, field)
	}
	return s, nil
}

func (c stringCodec) ToJSONField(v string) any { return v }

type idCodec struct {
	typ string
	uid bool
}

func (c idCodec) TypeString() string { return c.typ }

func (c idCodec) EncodeBCS(e *bcs.Encoder, v movetype.Address) error {
	return v.MarshalBCS(e)
}

func (c idCodec) DecodeBCS(d *bcs.Decoder) (movetype.Address, error) {
	return Address.DecodeBCS(d)
}

// FromFields expects {"bytes": hex} for ID and {"id": {"bytes": hex}} for UID.
func (c idCodec) FromFields(field any) (movetype.Address, error) {
	m, err := asMap(field)
	if err != nil {
		return movetype.Address{}, fmt.Errorf("%s: %w", c.typ, err)
	}
	if c.uid {
		if m, err = asMap(m["id"]); err != nil {
			return movetype.Address{}, fmt.Errorf("%s: %w", c.typ, err)
		}
	}
	return Address.FromFields(m["bytes"])
}

// FromFieldsWithTypes expects "0x.." for ID and {"id": "0x.."} for UID.
func (c idCodec) FromFieldsWithTypes(item any) (movetype.Address, error) {
	if c.uid {
		m, err := asMap(item)
		if err != nil {
			return movetype.Address{}, fmt.Errorf("%s: %w", c.typ, err)
		}
		item = m["id"]
	}
	return Address.FromFieldsWithTypes(item)
}

func (c idCodec) FromJSONField(field any) (movetype.Address, error) {
	return Address.FromJSONField(field)
}

func (c idCodec) ToJSONField(v movetype.Address) any { return v.String() }

type optionCodec[T any] struct {
	inner Codec[T]
}

// Option maps 0x1::option::Option<T> onto *T, nil being none.
func Option[T any](inner Codec[T]) Codec[*T] {
	return optionCodec[T]{inner: inner}
}

func (c optionCodec[T]) TypeString() string {
	return movetype.ComposeType(movetype.OptionTypeName, c.inner.TypeString())
}

func (c optionCodec[T]) EncodeBCS(e *bcs.Encoder, v *T) error {
	e.WriteOptionTag(v != nil)
	if v == nil {
		return nil
	}
	return c.inner.EncodeBCS(e, *v)
}

func (c optionCodec[T]) DecodeBCS(d *bcs.Decoder) (*T, error) {
	some, err := d.ReadOptionTag()
	if err != nil || !some {
		return nil, err
	}
	v, err := c.inner.DecodeBCS(d)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// FromFields expects {"vec": []} or {"vec": [value]}.
func (c optionCodec[T]) FromFields(field any) (*T, error) {
	m, err := asMap(field)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", c.TypeString(), err)
	}
	vec, err := asSlice(m["vec"])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", c.TypeString(), err)
	}
	switch len(vec) {
	case 0:
		return nil, nil
	case 1:
		v, err := c.inner.FromFields(vec[0])
		if err != nil {
			return nil, err
		}
		return &v, nil
	}
	return nil, fmt.Errorf("%w: %s holds %d values", ErrInvalidField, c.TypeString(), len(vec))
}

func (c optionCodec[T]) FromFieldsWithTypes(item any) (*T, error) {
	if item == nil {
		return nil, nil
	}
	v, err := c.inner.FromFieldsWithTypes(item)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (c optionCodec[T]) FromJSONField(field any) (*T, error) {
	if field == nil {
		return nil, nil
	}
	v, err := c.inner.FromJSONField(field)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (c optionCodec[T]) ToJSONField(v *T) any {
	if v == nil {
		return nil
	}
	return c.inner.ToJSONField(*v)
}
