package reified

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/originbyte/ob-sdk-go/bcs"
	"github.com/originbyte/ob-sdk-go/movetype"
	"github.com/originbyte/ob-sdk-go/suiclient"
)

// ObjectGetter reads a single object, as suiclient.Client does.
type ObjectGetter interface {
	GetObject(ctx context.Context, id string, opts suiclient.ObjectDataOptions) (*suiclient.ObjectResponse, error)
}

// StructType is the codec of one instantiation of a Move struct, e.g.
// 0x2::coin::Coin<0x2::sui::SUI>.
type StructType[T any] struct {
	typeName string
	typeArgs []string
	fields   func(v *T) []FieldSpec
	bare     bool
}

// NewStructType describes the struct typeName instantiated with typeArgs.
// fields lists the Move fields of v in declaration order.
func NewStructType[T any](typeName string, typeArgs []string, fields func(v *T) []FieldSpec) *StructType[T] {
	if compressed, err := movetype.CompressType(typeName); err == nil {
		typeName = compressed
	}
	return &StructType[T]{typeName: typeName, typeArgs: typeArgs, fields: fields}
}

// Bare marks a single field struct whose RPC projection is the field value
// itself, as 0x2::balance::Balance is rendered.
func (s *StructType[T]) Bare() *StructType[T] {
	c := *s
	c.bare = true
	return &c
}

// TypeName returns the type without arguments.
func (s *StructType[T]) TypeName() string { return s.typeName }

// TypeArgs returns the type arguments of this instantiation.
func (s *StructType[T]) TypeArgs() []string { return slices.Clone(s.typeArgs) }

func (s *StructType[T]) TypeString() string {
	return movetype.ComposeType(s.typeName, s.typeArgs...)
}

func (s *StructType[T]) structInfo() (string, []string, bool) {
	return s.typeName, s.typeArgs, true
}

// IsType reports whether typ names this struct, with any type arguments.
func (s *StructType[T]) IsType(typ string) bool {
	c, err := movetype.CompressType(typ)
	if err != nil {
		return false
	}
	if len(s.typeArgs) == 0 {
		return c == s.typeName
	}
	return strings.HasPrefix(c, s.typeName+"<")
}

func (s *StructType[T]) zero() T {
	var v T
	if p, ok := any(&v).(typeArgsSetter); ok {
		p.setTypeArgs(slices.Clone(s.typeArgs))
	}
	return v
}

func (s *StructType[T]) EncodeBCS(e *bcs.Encoder, v T) error {
	for _, f := range s.fields(&v) {
		if err := f.encode(e); err != nil {
			return fieldError(s.typeName, f, err)
		}
	}
	return nil
}

func (s *StructType[T]) DecodeBCS(d *bcs.Decoder) (T, error) {
	v := s.zero()
	for _, f := range s.fields(&v) {
		if err := f.decode(d); err != nil {
			return v, fieldError(s.typeName, f, err)
		}
	}
	return v, nil
}

// FromBCS decodes a complete BCS payload.
func (s *StructType[T]) FromBCS(data []byte) (T, error) {
	d := bcs.NewDecoder(data)
	v, err := s.DecodeBCS(d)
	if err != nil {
		return v, err
	}
	return v, d.Finish()
}

// ToBCS encodes v.
func (s *StructType[T]) ToBCS(v T) ([]byte, error) {
	e := bcs.NewEncoder()
	if err := s.EncodeBCS(e, v); err != nil {
		return nil, err
	}
	return e.Bytes(), nil
}

// FromFields decodes the record produced by a generic BCS parser, keyed by
// Move field names.
func (s *StructType[T]) FromFields(field any) (T, error) {
	v := s.zero()
	m, err := asMap(field)
	if err != nil {
		return v, fmt.Errorf("%s: %w", shortName(s.typeName), err)
	}
	for _, f := range s.fields(&v) {
		if err := f.fromFields(m[f.Key()]); err != nil {
			return v, fieldError(s.typeName, f, err)
		}
	}
	return v, nil
}

// FromFieldsWithTypes decodes an RPC `{"type": .., "fields": {..}}` item.
func (s *StructType[T]) FromFieldsWithTypes(item any) (T, error) {
	v := s.zero()
	if s.bare {
		if _, isMap := item.(map[string]any); !isMap {
			fs := s.fields(&v)
			if len(fs) != 1 {
				return v, fmt.Errorf("%w: %s is not a single field struct", ErrInvalidField, shortName(s.typeName))
			}
			if err := fs[0].fromFieldsWithTypes(item); err != nil {
				return v, fieldError(s.typeName, fs[0], err)
			}
			return v, nil
		}
	}

	m, err := asMap(item)
	if err != nil {
		return v, fmt.Errorf("%s: %w", shortName(s.typeName), err)
	}
	typ, _ := m["type"].(string)
	if !s.IsType(typ) {
		return v, fmt.Errorf("%w: not a %s type: %q", ErrTypeMismatch, shortName(s.typeName), typ)
	}
	_, args, err := movetype.ParseTypeName(typ)
	if err != nil {
		return v, err
	}
	if err := AssertTypeArgsMatch(typ, args, s.typeArgs); err != nil {
		return v, err
	}
	fields, err := asMap(m["fields"])
	if err != nil {
		return v, fmt.Errorf("%s: %w", shortName(s.typeName), err)
	}
	for _, f := range s.fields(&v) {
		if err := f.fromFieldsWithTypes(fields[f.Key()]); err != nil {
			return v, fieldError(s.typeName, f, err)
		}
	}
	return v, nil
}

// FromJSONField decodes the object produced by ToJSONField.
func (s *StructType[T]) FromJSONField(field any) (T, error) {
	v := s.zero()
	m, err := asMap(field)
	if err != nil {
		return v, fmt.Errorf("%s: %w", shortName(s.typeName), err)
	}
	for _, f := range s.fields(&v) {
		if err := f.fromJSONField(m[f.JSONKey()]); err != nil {
			return v, fieldError(s.typeName, f, err)
		}
	}
	return v, nil
}

func (s *StructType[T]) ToJSONField(v T) any {
	out := make(map[string]any)
	for _, f := range s.fields(&v) {
		out[f.JSONKey()] = f.toJSONField()
	}
	return out
}

// ToJSON renders v with its $typeName and $typeArgs.
func (s *StructType[T]) ToJSON(v T) ([]byte, error) {
	return ToJSON[T](s, v)
}

// FromJSON decodes the output of ToJSON, checking $typeName and $typeArgs.
func (s *StructType[T]) FromJSON(data []byte) (T, error) {
	m, err := decodeJSONObject(data)
	if err != nil {
		var zero T
		return zero, err
	}
	return s.FromJSONObject(m)
}

// FromJSONObject is FromJSON on an already decoded object.
func (s *StructType[T]) FromJSONObject(m map[string]any) (T, error) {
	var zero T
	name, _ := m["$typeName"].(string)
	if !movetype.SameType(name, s.typeName) {
		return zero, fmt.Errorf("%w: not a %s json object: $typeName %q", ErrTypeMismatch, shortName(s.typeName), name)
	}
	raw, err := asSlice(m["$typeArgs"])
	if err != nil {
		return zero, fmt.Errorf("$typeArgs: %w", err)
	}
	args := make([]string, len(raw))
	for i, a := range raw {
		if args[i], _ = a.(string); args[i] == "" {
			return zero, fmt.Errorf("%w: $typeArgs[%d] is not a type", ErrInvalidField, i)
		}
	}
	if err := AssertTypeArgsMatch(s.TypeString(), args, s.typeArgs); err != nil {
		return zero, err
	}
	return s.FromJSONField(m)
}

// FromSuiParsedData decodes the `content` of an object read with showContent.
func (s *StructType[T]) FromSuiParsedData(content *suiclient.ParsedData) (T, error) {
	var zero T
	if content == nil || content.DataType != "moveObject" {
		return zero, fmt.Errorf("%w: not an object", ErrNotMoveObject)
	}
	fields, err := content.FieldsMap()
	if err != nil {
		return zero, err
	}
	if !s.IsType(content.Type) {
		return zero, fmt.Errorf("%w: object at %v is not a %s object", ErrTypeMismatch, objectID(fields), shortName(s.typeName))
	}
	return s.FromFieldsWithTypes(map[string]any{"type": content.Type, "fields": fields})
}

func objectID(fields map[string]any) any {
	if uid, ok := fields["id"].(map[string]any); ok {
		return uid["id"]
	}
	return fields["id"]
}

// Fetch reads the object id and decodes its BCS contents.
func (s *StructType[T]) Fetch(ctx context.Context, getter ObjectGetter, id string) (T, error) {
	var zero T
	name := shortName(s.typeName)
	res, err := getter.GetObject(ctx, id, suiclient.ObjectDataOptions{ShowBcs: true})
	if err != nil {
		return zero, fmt.Errorf("error fetching %s object at id %s: %w", name, id, err)
	}
	if res.Error != nil {
		return zero, fmt.Errorf("error fetching %s object at id %s: %w", name, id, res.Error)
	}
	if res.Data == nil || res.Data.Bcs == nil || res.Data.Bcs.DataType != "moveObject" || !s.IsType(res.Data.Bcs.Type) {
		return zero, fmt.Errorf("%w: object at id %s is not a %s object", ErrNotMoveObject, id, name)
	}
	_, args, err := movetype.ParseTypeName(res.Data.Bcs.Type)
	if err != nil {
		return zero, err
	}
	if err := AssertTypeArgsMatch(res.Data.Bcs.Type, args, s.typeArgs); err != nil {
		return zero, err
	}
	data, err := res.Data.Bcs.Bytes()
	if err != nil {
		return zero, err
	}
	return s.FromBCS(data)
}
