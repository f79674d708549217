// Package url binds 0x2::url. A Url is decoded to its string.
package url

import (
	"github.com/originbyte/ob-sdk-go/bindings/addresses"
	"github.com/originbyte/ob-sdk-go/movetype"
	"github.com/originbyte/ob-sdk-go/reified"
)

const URLTypeName = addresses.Sui + "::url::Url"

func IsURL(typ string) bool {
	return movetype.SameType(typ, URLTypeName)
}

func URLReified() reified.Codec[string] {
	return reified.URL
}

// RegisterClasses adds the structs of this module to l.
func RegisterClasses(l *reified.Loader) {
	l.Register(
		reified.ClassOf(URLTypeName, nil, func([]reified.Codec[any]) reified.Codec[any] {
			return reified.Erase(reified.URL)
		}),
	)
}
