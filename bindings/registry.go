// Package bindings wires every generated module into a shared reified.Loader
// so that values can be decoded from a runtime type string.
package bindings

import (
	"sync"

	"github.com/originbyte/ob-sdk-go/bindings/launchpad/flatfee"
	"github.com/originbyte/ob-sdk-go/bindings/launchpad/proceeds"
	"github.com/originbyte/ob-sdk-go/bindings/movestd/ascii"
	"github.com/originbyte/ob-sdk-go/bindings/movestd/bitvector"
	"github.com/originbyte/ob-sdk-go/bindings/movestd/fixedpoint32"
	"github.com/originbyte/ob-sdk-go/bindings/movestd/movestring"
	"github.com/originbyte/ob-sdk-go/bindings/movestd/option"
	"github.com/originbyte/ob-sdk-go/bindings/movestd/typename"
	"github.com/originbyte/ob-sdk-go/bindings/nftprotocol/creators"
	"github.com/originbyte/ob-sdk-go/bindings/nftprotocol/displayinfo"
	"github.com/originbyte/ob-sdk-go/bindings/nftprotocol/symbol"
	"github.com/originbyte/ob-sdk-go/bindings/originmate/i64type"
	"github.com/originbyte/ob-sdk-go/bindings/originmate/typedid"
	"github.com/originbyte/ob-sdk-go/bindings/permissions/witness"
	"github.com/originbyte/ob-sdk-go/bindings/pseudorandom/pseudorandom"
	"github.com/originbyte/ob-sdk-go/bindings/sui/bag"
	"github.com/originbyte/ob-sdk-go/bindings/sui/balance"
	"github.com/originbyte/ob-sdk-go/bindings/sui/clock"
	"github.com/originbyte/ob-sdk-go/bindings/sui/coin"
	"github.com/originbyte/ob-sdk-go/bindings/sui/dynamicfield"
	"github.com/originbyte/ob-sdk-go/bindings/sui/object"
	"github.com/originbyte/ob-sdk-go/bindings/sui/sui"
	"github.com/originbyte/ob-sdk-go/bindings/sui/table"
	"github.com/originbyte/ob-sdk-go/bindings/sui/url"
	"github.com/originbyte/ob-sdk-go/bindings/sui/vecmap"
	"github.com/originbyte/ob-sdk-go/bindings/sui/vecset"
	"github.com/originbyte/ob-sdk-go/bindings/utils/sizedvec"
	"github.com/originbyte/ob-sdk-go/bindings/utils/utilssupply"
	"github.com/originbyte/ob-sdk-go/reified"
)

var (
	loader     = reified.NewLoader()
	loaderOnce sync.Once
)

// registrars lists every module in dependency order.
var registrars = []func(*reified.Loader){
	ascii.RegisterClasses,
	movestring.RegisterClasses,
	option.RegisterClasses,
	typename.RegisterClasses,
	fixedpoint32.RegisterClasses,
	bitvector.RegisterClasses,

	object.RegisterClasses,
	balance.RegisterClasses,
	coin.RegisterClasses,
	url.RegisterClasses,
	vecset.RegisterClasses,
	vecmap.RegisterClasses,
	table.RegisterClasses,
	bag.RegisterClasses,
	clock.RegisterClasses,
	dynamicfield.RegisterClasses,
	sui.RegisterClasses,

	flatfee.RegisterClasses,
	proceeds.RegisterClasses,
	i64type.RegisterClasses,
	typedid.RegisterClasses,
	witness.RegisterClasses,
	sizedvec.RegisterClasses,
	utilssupply.RegisterClasses,
	displayinfo.RegisterClasses,
	symbol.RegisterClasses,
	creators.RegisterClasses,
	pseudorandom.RegisterClasses,
}

// RegisterAll adds every bound module to l.
func RegisterAll(l *reified.Loader) {
	for _, register := range registrars {
		register(l)
	}
}

// InitLoaderIfNeeded registers all modules into the shared loader once.
func InitLoaderIfNeeded() {
	loaderOnce.Do(func() {
		RegisterAll(loader)
	})
}

// Loader returns the shared loader, initializing it on first use.
func Loader() *reified.Loader {
	InitLoaderIfNeeded()
	return loader
}

// Reified resolves a full type string against the shared loader.
func Reified(typ string) (reified.Codec[any], error) {
	return Loader().Reified(typ)
}
