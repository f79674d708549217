package utils

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/originbyte/ob-sdk-go/movetype"
	"github.com/originbyte/ob-sdk-go/txb"
	"github.com/pkg/errors"
)

// GasArg is the command line spelling of the gas coin argument.
const GasArg = "gas"

// SplitTypedValue splits `type:value` at the last single colon, so that
// struct types such as `0x2::coin::Coin<0x2::sui::SUI>:0x5` keep their `::`.
func SplitTypedValue(s string) (string, string, error) {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] != ':' {
			continue
		}
		if (i > 0 && s[i-1] == ':') || (i+1 < len(s) && s[i+1] == ':') {
			i--
			continue
		}
		typ, value := s[:i], s[i+1:]
		if typ == "" {
			break
		}
		return typ, value, nil
	}
	return "", "", errors.Errorf("expected type:value, got %q", s)
}

// ParseValue reads a command line value. JSON arrays, objects and null are
// decoded; anything else is kept as a string for the pure encoder to parse.
func ParseValue(raw string) (any, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "null" || strings.HasPrefix(trimmed, "[") || strings.HasPrefix(trimmed, "{") {
		var v any
		dec := json.NewDecoder(bytes.NewReader([]byte(trimmed)))
		dec.UseNumber()
		if err := dec.Decode(&v); err != nil {
			return nil, errors.WithMessagef(err, "invalid value %q", raw)
		}
		return v, nil
	}
	return raw, nil
}

// ParseCallArg turns `type:value` into a move call argument. Pure types are
// BCS encoded, anything else is treated as object ids.
func ParseCallArg(s string) (txb.Arg, error) {
	if s == GasArg {
		return txb.GasCoin(), nil
	}
	typ, raw, err := SplitTypedValue(s)
	if err != nil {
		return nil, err
	}
	if _, err := movetype.ParseTypeTag(typ); err != nil {
		return nil, errors.WithMessagef(err, "argument %q", s)
	}
	value, err := ParseValue(raw)
	if err != nil {
		return nil, err
	}
	switch {
	case movetype.IsPure(typ):
		return txb.Pure(value, typ), nil
	case movetype.HasTypeName(typ, movetype.OptionTypeName):
		return txb.Option(innerType(typ), value), nil
	case strings.HasPrefix(typ, "vector<"):
		return txb.Vector(innerType(typ), value), nil
	default:
		return txb.Generic(typ, value), nil
	}
}

func innerType(typ string) string {
	_, args, err := movetype.ParseTypeName(typ)
	if err != nil || len(args) != 1 {
		return ""
	}
	return args[0]
}
