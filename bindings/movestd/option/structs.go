// Package option binds 0x1::option. Option<T> maps onto *T, nil being none.
package option

import (
	"github.com/originbyte/ob-sdk-go/bindings/addresses"
	"github.com/originbyte/ob-sdk-go/movetype"
	"github.com/originbyte/ob-sdk-go/reified"
)

const OptionTypeName = addresses.MoveStdlib + "::option::Option"

func IsOption(typ string) bool {
	return movetype.HasTypeName(typ, OptionTypeName)
}

func OptionReified[T any](inner reified.Codec[T]) reified.Codec[*T] {
	return reified.Option(inner)
}

// RegisterClasses adds the structs of this module to l.
func RegisterClasses(l *reified.Loader) {
	l.Register(
		reified.ClassOf(OptionTypeName, []bool{false}, func(args []reified.Codec[any]) reified.Codec[any] {
			return reified.Erase(reified.Option(args[0]))
		}),
	)
}
