// Package reified converts Move values between their BCS encoding, the JSON
// shapes returned by Sui nodes and Go types.
//
// Values reach a Codec in three shapes: FromFields takes the record produced
// by a generic BCS parser (addresses without 0x, strings as {"bytes": ...}),
// FromFieldsWithTypes takes the `content` projection of sui_getObject and
// FromJSONField takes the output of ToJSONField.
package reified

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/holiman/uint256"
	"github.com/originbyte/ob-sdk-go/bcs"
	"github.com/originbyte/ob-sdk-go/movetype"
)

// Codec converts values of one Move type.
type Codec[T any] interface {
	TypeString() string
	EncodeBCS(e *bcs.Encoder, v T) error
	DecodeBCS(d *bcs.Decoder) (T, error)
	FromFields(field any) (T, error)
	FromFieldsWithTypes(item any) (T, error)
	FromJSONField(field any) (T, error)
	ToJSONField(v T) any
}

// primitive is a Codec whose three field shapes are handled by one parser.
type primitive[T any] struct {
	name   string
	encode func(e *bcs.Encoder, v T) error
	decode func(d *bcs.Decoder) (T, error)
	parse  func(v any) (T, error)
	toJSON func(v T) any
}

func (p primitive[T]) TypeString() string                      { return p.name }
func (p primitive[T]) EncodeBCS(e *bcs.Encoder, v T) error     { return p.encode(e, v) }
func (p primitive[T]) DecodeBCS(d *bcs.Decoder) (T, error)     { return p.decode(d) }
func (p primitive[T]) FromFields(field any) (T, error)         { return p.parseNamed(field) }
func (p primitive[T]) FromFieldsWithTypes(item any) (T, error) { return p.parseNamed(item) }
func (p primitive[T]) FromJSONField(field any) (T, error)      { return p.parseNamed(field) }
func (p primitive[T]) ToJSONField(v T) any                     { return p.toJSON(v) }

func (p primitive[T]) parseNamed(v any) (T, error) {
	out, err := p.parse(v)
	if err != nil {
		return out, fmt.Errorf("%w: %s: %v", ErrInvalidField, p.name, err)
	}
	return out, nil
}

var (
	Bool Codec[bool] = primitive[bool]{
		name:   "bool",
		encode: func(e *bcs.Encoder, v bool) error {
			e.WriteBool(v)
			return nil
		},
		decode: func(d *bcs.Decoder) (bool, error) { return d.ReadBool() },
		parse:  parseBool,
		toJSON: func(v bool) any { return v },
	}

	U8 Codec[uint8] = primitive[uint8]{
		name:   "u8",
		encode: func(e *bcs.Encoder, v uint8) error {
			e.WriteU8(v)
			return nil
		},
		decode: func(d *bcs.Decoder) (uint8, error) { return d.ReadU8() },
		parse: func(v any) (uint8, error) {
			u, err := parseUint(v, 8)
			return uint8(u), err
		},
		toJSON: func(v uint8) any { return v },
	}

	U16 Codec[uint16] = primitive[uint16]{
		name:   "u16",
		encode: func(e *bcs.Encoder, v uint16) error {
			e.WriteU16(v)
			return nil
		},
		decode: func(d *bcs.Decoder) (uint16, error) { return d.ReadU16() },
		parse: func(v any) (uint16, error) {
			u, err := parseUint(v, 16)
			return uint16(u), err
		},
		toJSON: func(v uint16) any { return v },
	}

	U32 Codec[uint32] = primitive[uint32]{
		name:   "u32",
		encode: func(e *bcs.Encoder, v uint32) error {
			e.WriteU32(v)
			return nil
		},
		decode: func(d *bcs.Decoder) (uint32, error) { return d.ReadU32() },
		parse: func(v any) (uint32, error) {
			u, err := parseUint(v, 32)
			return uint32(u), err
		},
		toJSON: func(v uint32) any { return v },
	}

	// U64 values are rendered as decimal strings in JSON.
	U64 Codec[uint64] = primitive[uint64]{
		name:   "u64",
		encode: func(e *bcs.Encoder, v uint64) error {
			e.WriteU64(v)
			return nil
		},
		decode: func(d *bcs.Decoder) (uint64, error) { return d.ReadU64() },
		parse:  func(v any) (uint64, error) { return parseUint(v, 64) },
		toJSON: func(v uint64) any { return strconv.FormatUint(v, 10) },
	}

	U128 Codec[uint256.Int] = primitive[uint256.Int]{
		name:   "u128",
		encode: func(e *bcs.Encoder, v uint256.Int) error { return e.WriteU128(&v) },
		decode: func(d *bcs.Decoder) (uint256.Int, error) { return d.ReadU128() },
		parse:  func(v any) (uint256.Int, error) { return parseBig(v, 128) },
		toJSON: func(v uint256.Int) any { return v.Dec() },
	}

	U256 Codec[uint256.Int] = primitive[uint256.Int]{
		name:   "u256",
		encode: func(e *bcs.Encoder, v uint256.Int) error {
			e.WriteU256(&v)
			return nil
		},
		decode: func(d *bcs.Decoder) (uint256.Int, error) { return d.ReadU256() },
		parse:  func(v any) (uint256.Int, error) { return parseBig(v, 256) },
		toJSON: func(v uint256.Int) any { return v.Dec() },
	}

	// Address accepts hex with or without the 0x prefix.
	Address Codec[movetype.Address] = primitive[movetype.Address]{
		name:   "address",
		encode: func(e *bcs.Encoder, v movetype.Address) error { return v.MarshalBCS(e) },
		decode: func(d *bcs.Decoder) (movetype.Address, error) {
			var a movetype.Address
			err := a.UnmarshalBCS(d)
			return a, err
		},
		parse:  parseAddress,
		toJSON: func(v movetype.Address) any { return v.String() },
	}
)

func parseBool(v any) (bool, error) {
	switch x := v.(type) {
	case bool:
		return x, nil
	case string:
		return strconv.ParseBool(x)
	}
	return false, fmt.Errorf("unexpected %T", v)
}

// parseUint accepts decimal strings, json.Number, float64 holding an exact
// integer and Go integer types.
func parseUint(v any, bits int) (uint64, error) {
	var u uint64
	switch x := v.(type) {
	case string:
		return strconv.ParseUint(x, 10, bits)
	case json.Number:
		return strconv.ParseUint(string(x), 10, bits)
	case float64:
		if x < 0 || x != math.Trunc(x) || x > 1<<53 {
			return 0, fmt.Errorf("%v is not an unsigned integer", x)
		}
		u = uint64(x)
	case int:
		if x < 0 {
			return 0, fmt.Errorf("%d is negative", x)
		}
		u = uint64(x)
	case int64:
		if x < 0 {
			return 0, fmt.Errorf("%d is negative", x)
		}
		u = uint64(x)
	case uint8:
		u = uint64(x)
	case uint16:
		u = uint64(x)
	case uint32:
		u = uint64(x)
	case uint64:
		u = x
	default:
		return 0, fmt.Errorf("unexpected %T", v)
	}
	if bits < 64 && u >= 1<<bits {
		return 0, fmt.Errorf("%d overflows u%d", u, bits)
	}
	return u, nil
}

func parseBig(v any, bits int) (uint256.Int, error) {
	var out uint256.Int
	switch x := v.(type) {
	case uint256.Int:
		out = x
	case *uint256.Int:
		if x == nil {
			return out, fmt.Errorf("nil value")
		}
		out = *x
	case string, json.Number:
		s := fmt.Sprint(x)
		n, err := uint256.FromDecimal(s)
		if err != nil {
			return out, fmt.Errorf("%q: %w", s, err)
		}
		out = *n
	default:
		u, err := parseUint(v, 64)
		if err != nil {
			return out, err
		}
		out.SetUint64(u)
	}
	if out.BitLen() > bits {
		return out, fmt.Errorf("%s overflows u%d", out.Dec(), bits)
	}
	return out, nil
}

func parseAddress(v any) (movetype.Address, error) {
	switch x := v.(type) {
	case movetype.Address:
		return x, nil
	case string:
		return movetype.ParseAddress(x)
	}
	return movetype.Address{}, fmt.Errorf("unexpected %T", v)
}
