package txb

import (
	"fmt"
	"reflect"

	"github.com/originbyte/ob-sdk-go/bcs"
	"github.com/originbyte/ob-sdk-go/movetype"
	"github.com/originbyte/ob-sdk-go/reified"
)

// PureArg is a value passed by BCS encoding: a Go value matching the move
// type, or an Argument already in the transaction.
type PureArg = any

// GenericArg is a value whose type is only known from a type argument. It is
// passed as pure when the type allows and as an object otherwise.
type GenericArg = any

// EncodePure BCS encodes v as a value of the pure move type typ. Supported
// types are the primitives, 0x1::string::String, 0x1::ascii::String,
// 0x2::object::ID, Option and vector of those.
func EncodePure(typ string, v any) ([]byte, error) {
	e := bcs.NewEncoder()
	if err := encodePure(e, typ, v); err != nil {
		return nil, err
	}
	return e.Bytes(), nil
}

func encodePure(e *bcs.Encoder, typ string, v any) error {
	name, typeArgs, err := movetype.ParseTypeName(typ)
	if err != nil {
		return err
	}
	switch name {
	case "bool":
		return encodeWith(e, reified.Bool, v)
	case "u8":
		return encodeWith(e, reified.U8, v)
	case "u16":
		return encodeWith(e, reified.U16, v)
	case "u32":
		return encodeWith(e, reified.U32, v)
	case "u64":
		return encodeWith(e, reified.U64, v)
	case "u128":
		return encodeWith(e, reified.U128, v)
	case "u256":
		return encodeWith(e, reified.U256, v)
	case "address":
		return encodeWith(e, reified.Address, v)
	case "vector":
		if len(typeArgs) != 1 {
			return fmt.Errorf("%w %s", ErrInvalidPrimitive, typ)
		}
		items, ok := toSlice(v)
		if !ok {
			return fmt.Errorf("%w, got %T", ErrExpectedArray, v)
		}
		if err := e.WriteLength(len(items)); err != nil {
			return err
		}
		for i, item := range items {
			if err := encodePure(e, typeArgs[0], item); err != nil {
				return fmt.Errorf("%s[%d]: %w", typ, i, err)
			}
		}
		return nil
	}

	compressed, err := movetype.CompressType(name)
	if err != nil {
		return err
	}
	switch compressed {
	case movetype.StringTypeName:
		return encodeWith(e, reified.String, v)
	case movetype.ASCIIStringTypeName:
		return encodeWith(e, reified.ASCIIString, v)
	case movetype.IDTypeName:
		return encodeWith(e, reified.ID, v)
	case movetype.OptionTypeName:
		if len(typeArgs) != 1 {
			return fmt.Errorf("%w %s", ErrInvalidPrimitive, typ)
		}
		v = deref(v)
		e.WriteOptionTag(v != nil)
		if v == nil {
			return nil
		}
		return encodePure(e, typeArgs[0], v)
	}
	return fmt.Errorf("%w %s", ErrInvalidPrimitive, typ)
}

func encodeWith[T any](e *bcs.Encoder, c reified.Codec[T], v any) error {
	t, err := c.FromJSONField(deref(v))
	if err != nil {
		return err
	}
	return c.EncodeBCS(e, t)
}

// toSlice flattens any Go slice or array into []any.
func toSlice(v any) ([]any, bool) {
	if items, ok := v.([]any); ok {
		return items, true
	}
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

// deref follows pointers, returning nil for nil pointers and interfaces.
func deref(v any) any {
	rv := reflect.ValueOf(v)
	for rv.IsValid() && rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		if _, ok := rv.Interface().(interface{ Dec() string }); ok {
			// *uint256.Int is accepted as is by the u128 and u256 codecs.
			return rv.Interface()
		}
		rv = rv.Elem()
	}
	if !rv.IsValid() {
		return nil
	}
	return rv.Interface()
}

func hasArgument(v any) bool {
	if _, ok := v.(Argument); ok {
		return true
	}
	if items, ok := toSlice(v); ok {
		for _, item := range items {
			if hasArgument(item) {
				return true
			}
		}
	}
	return false
}

// Pure passes v as a pure value of type typ. Vectors whose elements are
// object arguments become a MakeMoveVec command.
func Pure(v PureArg, typ string) Arg {
	return argFunc(func(tx *Transaction) (Argument, error) {
		return tx.pure(v, typ)
	})
}

func (tx *Transaction) pure(v any, typ string) (Argument, error) {
	if a, ok := v.(Argument); ok {
		return a, nil
	}
	name, typeArgs, err := movetype.ParseTypeName(typ)
	if err != nil {
		return Argument{}, err
	}

	if name == "vector" && len(typeArgs) == 1 {
		items, ok := toSlice(v)
		if !ok {
			return Argument{}, fmt.Errorf("%w, got %T", ErrExpectedArray, v)
		}
		if len(items) == 0 {
			return tx.Pure([]byte{0})
		}
		for _, item := range items {
			if _, ok := toSlice(item); ok && hasArgument(item) {
				return Argument{}, ErrNestedArgument
			}
		}
		if first, ok := items[0].(Argument); ok {
			elems := make([]ObjectInput, len(items))
			for i, item := range items {
				a, ok := item.(Argument)
				if !ok {
					return Argument{}, ErrMixedArguments
				}
				elems[i] = a
			}
			if tx.isObjectArgument(first) {
				return tx.MakeMoveVec(typeArgs[0], elems...)
			}
		}
	} else if movetype.HasTypeName(typ, movetype.OptionTypeName) {
		if deref(v) == nil {
			return tx.Pure([]byte{0})
		}
		if hasArgument(deref(v)) {
			return Argument{}, ErrNestedArgument
		}
	}

	b, err := EncodePure(typ, v)
	if err != nil {
		return Argument{}, err
	}
	return tx.Pure(b)
}

// Obj passes v as an object. v is an ObjectInput, an object id string or a
// movetype.Address.
func Obj(v any) Arg {
	return argFunc(func(tx *Transaction) (Argument, error) {
		return tx.obj(v)
	})
}

func (tx *Transaction) obj(v any) (Argument, error) {
	in, err := toObjectInput(v)
	if err != nil {
		return Argument{}, err
	}
	return tx.Object(in)
}

func toObjectInput(v any) (ObjectInput, error) {
	switch o := v.(type) {
	case ObjectInput:
		return o, nil
	case string:
		return ObjectID(o), nil
	case movetype.Address:
		return ObjectID(o.String()), nil
	}
	return nil, fmt.Errorf("%w: %T", ErrNotObject, v)
}

// Option passes v as 0x1::option::Option<typ>. Pure inner types are BCS
// encoded, otherwise the option is built with option::none or option::some.
func Option(typ string, v any) Arg {
	return argFunc(func(tx *Transaction) (Argument, error) {
		if a, ok := v.(Argument); ok {
			return a, nil
		}
		if movetype.IsPure(typ) {
			return tx.pure(v, movetype.ComposeType(movetype.OptionTypeName, typ))
		}
		if deref(v) == nil {
			return tx.MoveCall("0x1::option::none", []string{typ})
		}
		inner, err := tx.generic(typ, v)
		if err != nil {
			return Argument{}, err
		}
		return tx.MoveCall("0x1::option::some", []string{typ}, inner)
	})
}

// Generic passes a value of the type argument typ.
func Generic(typ string, v GenericArg) Arg {
	return argFunc(func(tx *Transaction) (Argument, error) {
		return tx.generic(typ, v)
	})
}

func (tx *Transaction) generic(typ string, v any) (Argument, error) {
	if movetype.IsPure(typ) {
		return tx.pure(v, typ)
	}
	name, typeArgs, err := movetype.ParseTypeName(typ)
	if err != nil {
		return Argument{}, err
	}
	if name == "vector" && len(typeArgs) == 1 {
		if items, ok := toSlice(v); ok {
			return tx.makeObjectVec(typeArgs[0], items)
		}
	}
	return tx.obj(v)
}

func (tx *Transaction) makeObjectVec(itemType string, items []any) (Argument, error) {
	elems := make([]ObjectInput, len(items))
	for i, item := range items {
		in, err := toObjectInput(item)
		if err != nil {
			return Argument{}, fmt.Errorf("vector<%s>[%d]: %w", itemType, i, err)
		}
		elems[i] = in
	}
	return tx.MakeMoveVec(itemType, elems...)
}

// Vector passes items as vector<itemType>.
func Vector(itemType string, items any) Arg {
	return argFunc(func(tx *Transaction) (Argument, error) {
		if movetype.IsPure(itemType) {
			return tx.pure(items, "vector<"+itemType+">")
		}
		if a, ok := items.(Argument); ok {
			return a, nil
		}
		list, ok := toSlice(items)
		if !ok {
			return Argument{}, fmt.Errorf("%w, got %T", ErrExpectedArray, items)
		}
		name, typeArgs, err := movetype.ParseTypeName(itemType)
		if err != nil {
			return Argument{}, err
		}
		if len(typeArgs) == 1 && movetype.SameType(name, movetype.OptionTypeName) {
			elems := make([]ObjectInput, len(list))
			for i, item := range list {
				a, err := Option(typeArgs[0], item).build(tx)
				if err != nil {
					return Argument{}, err
				}
				elems[i] = a
			}
			return tx.MakeMoveVec(itemType, elems...)
		}
		return tx.makeObjectVec(itemType, list)
	})
}
