// Package object binds 0x2::object. ID and UID are decoded to the address
// they hold.
package object

import (
	"github.com/originbyte/ob-sdk-go/bindings/addresses"
	"github.com/originbyte/ob-sdk-go/movetype"
	"github.com/originbyte/ob-sdk-go/reified"
)

const (
	IDTypeName  = addresses.Sui + "::object::ID"
	UIDTypeName = addresses.Sui + "::object::UID"
)

func IsID(typ string) bool {
	return movetype.SameType(typ, IDTypeName)
}

func IsUID(typ string) bool {
	return movetype.SameType(typ, UIDTypeName)
}

func IDReified() reified.Codec[movetype.Address] {
	return reified.ID
}

func UIDReified() reified.Codec[movetype.Address] {
	return reified.UID
}

// RegisterClasses adds the structs of this module to l.
func RegisterClasses(l *reified.Loader) {
	l.Register(
		reified.ClassOf(IDTypeName, nil, func([]reified.Codec[any]) reified.Codec[any] {
			return reified.Erase(reified.ID)
		}),
		reified.ClassOf(UIDTypeName, nil, func([]reified.Codec[any]) reified.Codec[any] {
			return reified.Erase(reified.UID)
		}),
	)
}
