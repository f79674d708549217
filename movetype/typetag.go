package movetype

import (
	"fmt"
	"strings"

	"github.com/originbyte/ob-sdk-go/bcs"
)

// TypeTagKind is the BCS variant index of a Sui TypeTag.
type TypeTagKind uint32

const (
	TagBool    TypeTagKind = 0
	TagU8      TypeTagKind = 1
	TagU64     TypeTagKind = 2
	TagU128    TypeTagKind = 3
	TagAddress TypeTagKind = 4
	TagSigner  TypeTagKind = 5
	TagVector  TypeTagKind = 6
	TagStruct  TypeTagKind = 7
	TagU16     TypeTagKind = 8
	TagU32     TypeTagKind = 9
	TagU256    TypeTagKind = 10
)

var primitiveTags = map[string]TypeTagKind{
	"bool":    TagBool,
	"u8":      TagU8,
	"u16":     TagU16,
	"u32":     TagU32,
	"u64":     TagU64,
	"u128":    TagU128,
	"u256":    TagU256,
	"address": TagAddress,
	"signer":  TagSigner,
}

// TypeTag is a fully resolved Move type as carried in transactions.
type TypeTag struct {
	Kind   TypeTagKind
	Vector *TypeTag
	Struct *StructTag
}

// StructTag identifies a struct type and its type parameters.
type StructTag struct {
	Address    Address
	Module     string
	Name       string
	TypeParams []TypeTag
}

// ParseTypeTag parses a type string into a TypeTag.
func ParseTypeTag(s string) (TypeTag, error) {
	typeName, typeArgs, err := ParseTypeName(s)
	if err != nil {
		return TypeTag{}, err
	}
	if kind, ok := primitiveTags[typeName]; ok {
		if len(typeArgs) != 0 {
			return TypeTag{}, fmt.Errorf("%w: %s takes no type arguments", ErrInvalidTypeTag, typeName)
		}
		return TypeTag{Kind: kind}, nil
	}
	if typeName == "vector" {
		if len(typeArgs) != 1 {
			return TypeTag{}, fmt.Errorf("%w: vector expects 1 type argument, got %d", ErrInvalidTypeTag, len(typeArgs))
		}
		inner, err := ParseTypeTag(typeArgs[0])
		if err != nil {
			return TypeTag{}, err
		}
		return TypeTag{Kind: TagVector, Vector: &inner}, nil
	}
	st, err := ParseStructTag(typeName)
	if err != nil {
		return TypeTag{}, err
	}
	for _, arg := range typeArgs {
		p, err := ParseTypeTag(arg)
		if err != nil {
			return TypeTag{}, err
		}
		st.TypeParams = append(st.TypeParams, p)
	}
	return TypeTag{Kind: TagStruct, Struct: &st}, nil
}

// ParseStructTag parses `address::module::Name` without type arguments.
func ParseStructTag(s string) (StructTag, error) {
	parts := strings.Split(s, "::")
	if len(parts) != 3 {
		return StructTag{}, fmt.Errorf("%w: %q", ErrInvalidTypeTag, s)
	}
	addr, err := ParseAddress(parts[0])
	if err != nil {
		return StructTag{}, err
	}
	if !IsValidIdentifier(parts[1]) || !IsValidIdentifier(parts[2]) {
		return StructTag{}, fmt.Errorf("%w: %q", ErrInvalidIdentifier, s)
	}
	return StructTag{Address: addr, Module: parts[1], Name: parts[2]}, nil
}

// IsValidIdentifier reports whether s is a valid Move identifier.
func IsValidIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, c := range s {
		switch {
		case c == '_', c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}

func (t TypeTag) String() string {
	switch t.Kind {
	case TagVector:
		return "vector<" + t.Vector.String() + ">"
	case TagStruct:
		return t.Struct.String()
	}
	for name, kind := range primitiveTags {
		if kind == t.Kind {
			return name
		}
	}
	return fmt.Sprintf("unknown(%d)", t.Kind)
}

func (s StructTag) String() string {
	name := s.Address.ShortString() + "::" + s.Module + "::" + s.Name
	args := make([]string, len(s.TypeParams))
	for i, p := range s.TypeParams {
		args[i] = p.String()
	}
	return ComposeType(name, args...)
}

func (t TypeTag) MarshalBCS(e *bcs.Encoder) error {
	e.WriteULEB128(uint32(t.Kind))
	switch t.Kind {
	case TagVector:
		if t.Vector == nil {
			return fmt.Errorf("%w: vector without element type", ErrInvalidTypeTag)
		}
		return t.Vector.MarshalBCS(e)
	case TagStruct:
		if t.Struct == nil {
			return fmt.Errorf("%w: struct tag missing", ErrInvalidTypeTag)
		}
		return t.Struct.MarshalBCS(e)
	}
	return nil
}

func (t *TypeTag) UnmarshalBCS(d *bcs.Decoder) error {
	kind, err := d.ReadULEB128()
	if err != nil {
		return err
	}
	t.Kind = TypeTagKind(kind)
	switch t.Kind {
	case TagBool, TagU8, TagU16, TagU32, TagU64, TagU128, TagU256, TagAddress, TagSigner:
		return nil
	case TagVector:
		t.Vector = &TypeTag{}
		return t.Vector.UnmarshalBCS(d)
	case TagStruct:
		t.Struct = &StructTag{}
		return t.Struct.UnmarshalBCS(d)
	}
	return fmt.Errorf("%w: variant %d", ErrInvalidTypeTag, kind)
}

func (s StructTag) MarshalBCS(e *bcs.Encoder) error {
	e.WriteFixedBytes(s.Address[:])
	if err := e.WriteString(s.Module); err != nil {
		return err
	}
	if err := e.WriteString(s.Name); err != nil {
		return err
	}
	if err := e.WriteLength(len(s.TypeParams)); err != nil {
		return err
	}
	for _, p := range s.TypeParams {
		if err := p.MarshalBCS(e); err != nil {
			return err
		}
	}
	return nil
}

func (s *StructTag) UnmarshalBCS(d *bcs.Decoder) error {
	if err := s.Address.UnmarshalBCS(d); err != nil {
		return err
	}
	var err error
	if s.Module, err = d.ReadString(); err != nil {
		return err
	}
	if s.Name, err = d.ReadString(); err != nil {
		return err
	}
	n, err := d.ReadLength()
	if err != nil {
		return err
	}
	// every tag takes at least one byte
	s.TypeParams = make([]TypeTag, 0, min(n, d.Remaining()))
	for i := 0; i < n; i++ {
		var tag TypeTag
		if err := tag.UnmarshalBCS(d); err != nil {
			return err
		}
		s.TypeParams = append(s.TypeParams, tag)
	}
	return nil
}
