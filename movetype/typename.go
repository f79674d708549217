// Package movetype parses and normalises Move type strings such as
// `vector<0x2::object::ID>` and converts them to BCS type tags.
package movetype

import (
	"fmt"
	"strings"
)

// Well known type names used when classifying arguments.
const (
	StringTypeName      = "0x1::string::String"
	ASCIIStringTypeName = "0x1::ascii::String"
	OptionTypeName      = "0x1::option::Option"
	IDTypeName          = "0x2::object::ID"
	UIDTypeName         = "0x2::object::UID"
	URLTypeName         = "0x2::url::Url"
	BalanceTypeName     = "0x2::balance::Balance"
)

// ParseTypeName splits a type string into its name and its top level type
// arguments: `0x2::coin::Coin<0x2::sui::SUI>` -> (`0x2::coin::Coin`,
// [`0x2::sui::SUI`]).
func ParseTypeName(name string) (string, []string, error) {
	name = strings.TrimSpace(name)
	l := strings.IndexByte(name, '<')
	r := strings.LastIndexByte(name, '>')
	if l == -1 && r == -1 {
		return name, nil, nil
	}
	if l == -1 || r == -1 || r < l || r != len(name)-1 {
		return "", nil, fmt.Errorf("%w in name %q", ErrUnclosedGeneric, name)
	}
	params, err := splitGenericParameters(name[l+1 : r])
	if err != nil {
		return "", nil, fmt.Errorf("%w in name %q", err, name)
	}
	return name[:l], params, nil
}

func splitGenericParameters(s string) ([]string, error) {
	var (
		params []string
		depth  int
		start  int
	)
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '<':
			depth++
		case '>':
			depth--
			if depth < 0 {
				return nil, ErrUnclosedGeneric
			}
		case ',':
			if depth == 0 {
				params = append(params, strings.TrimSpace(s[start:i]))
				start = i + 1
			}
		}
	}
	if depth != 0 {
		return nil, ErrUnclosedGeneric
	}
	params = append(params, strings.TrimSpace(s[start:]))
	return params, nil
}

// ComposeType renders `name<a, b>`, or just name without arguments.
func ComposeType(name string, typeArgs ...string) string {
	if len(typeArgs) == 0 {
		return name
	}
	return name + "<" + strings.Join(typeArgs, ", ") + ">"
}

func isPrimitive(typeName string) bool {
	switch typeName {
	case "bool", "u8", "u16", "u32", "u64", "u128", "u256", "address", "signer":
		return true
	}
	return false
}

// CompressType recursively removes leading zeros from every address in a
// type: `0x0002::a::B<0x01::c::D>` -> `0x2::a::B<0x1::c::D>`.
func CompressType(typ string) (string, error) {
	typeName, typeArgs, err := ParseTypeName(typ)
	if err != nil {
		return "", err
	}
	if isPrimitive(typeName) {
		return typeName, nil
	}
	if typeName == "vector" {
		if len(typeArgs) != 1 {
			return "", fmt.Errorf("%w: vector expects 1 type argument, got %d", ErrInvalidTypeTag, len(typeArgs))
		}
		inner, err := CompressType(typeArgs[0])
		if err != nil {
			return "", err
		}
		return "vector<" + inner + ">", nil
	}

	tok := strings.Split(typeName, "::")
	tok[0] = CompressAddress(tok[0])
	compressed := strings.Join(tok, "::")
	if len(typeArgs) == 0 {
		return compressed, nil
	}
	args := make([]string, len(typeArgs))
	for i, arg := range typeArgs {
		if args[i], err = CompressType(arg); err != nil {
			return "", err
		}
	}
	return compressed + "<" + strings.Join(args, ",") + ">", nil
}

// SameType reports whether two type strings denote the same type once
// compressed. Unparsable input never matches.
func SameType(a, b string) bool {
	ca, err := CompressType(a)
	if err != nil {
		return false
	}
	cb, err := CompressType(b)
	if err != nil {
		return false
	}
	return ca == cb
}

// HasTypeName reports whether typ is an instantiation of the generic struct
// typeName, e.g. `0x2::coin::Coin<..>` for `0x2::coin::Coin`.
func HasTypeName(typ, typeName string) bool {
	c, err := CompressType(typ)
	if err != nil {
		return false
	}
	return strings.HasPrefix(c, typeName+"<")
}

// IsPure reports whether values of typ are passed to move calls as pure
// BCS bytes rather than as object references.
func IsPure(typ string) bool {
	typeName, typeArgs, err := ParseTypeName(typ)
	if err != nil {
		return false
	}
	if isPrimitive(typeName) {
		return true
	}
	switch typeName {
	case "vector", OptionTypeName:
		return len(typeArgs) == 1 && IsPure(typeArgs[0])
	case StringTypeName, ASCIIStringTypeName, IDTypeName:
		return true
	}
	c, err := CompressType(typeName)
	if err != nil || c == typeName {
		return false
	}
	return IsPure(ComposeType(c, typeArgs...))
}
