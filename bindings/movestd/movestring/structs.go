// Package movestring binds 0x1::string, whose String maps onto a Go string.
package movestring

import (
	"github.com/originbyte/ob-sdk-go/bindings/addresses"
	"github.com/originbyte/ob-sdk-go/movetype"
	"github.com/originbyte/ob-sdk-go/reified"
)

const StringTypeName = addresses.MoveStdlib + "::string::String"

func IsString(typ string) bool {
	return movetype.SameType(typ, StringTypeName)
}

func StringReified() reified.Codec[string] {
	return reified.String
}

// RegisterClasses adds the structs of this module to l.
func RegisterClasses(l *reified.Loader) {
	l.Register(
		reified.ClassOf(StringTypeName, nil, func([]reified.Codec[any]) reified.Codec[any] {
			return reified.Erase(reified.String)
		}),
	)
}
