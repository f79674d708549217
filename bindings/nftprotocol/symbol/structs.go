package symbol

import (
	"context"

	"github.com/originbyte/ob-sdk-go/bcs"
	"github.com/originbyte/ob-sdk-go/bindings/addresses"
	"github.com/originbyte/ob-sdk-go/reified"
	"github.com/originbyte/ob-sdk-go/suiclient"
)

const SymbolTypeName = addresses.NftProtocol + "::symbol::Symbol"

type Symbol struct {
	Symbol string
}

var symbolType = reified.NewStructType(SymbolTypeName, nil, func(x *Symbol) []reified.FieldSpec {
	return []reified.FieldSpec{
		reified.Field("symbol", reified.String, &x.Symbol),
	}
})

func IsSymbol(typ string) bool {
	return symbolType.IsType(typ)
}

func SymbolReified() *reified.StructType[Symbol] {
	return symbolType
}

func (v Symbol) MarshalBCS(e *bcs.Encoder) error {
	return symbolType.EncodeBCS(e, v)
}

func (v Symbol) ToJSONField() any {
	return symbolType.ToJSONField(v)
}

func (v Symbol) MarshalJSON() ([]byte, error) {
	return symbolType.ToJSON(v)
}

func SymbolFromBCS(data []byte) (Symbol, error) {
	return symbolType.FromBCS(data)
}

func SymbolFromFields(fields any) (Symbol, error) {
	return symbolType.FromFields(fields)
}

func SymbolFromFieldsWithTypes(item any) (Symbol, error) {
	return symbolType.FromFieldsWithTypes(item)
}

func SymbolFromJSONField(field any) (Symbol, error) {
	return symbolType.FromJSONField(field)
}

func SymbolFromJSON(data []byte) (Symbol, error) {
	return symbolType.FromJSON(data)
}

func SymbolFromSuiParsedData(content *suiclient.ParsedData) (Symbol, error) {
	return symbolType.FromSuiParsedData(content)
}

func FetchSymbol(ctx context.Context, getter reified.ObjectGetter, id string) (Symbol, error) {
	return symbolType.Fetch(ctx, getter, id)
}

// RegisterClasses adds the structs of this module to l.
func RegisterClasses(l *reified.Loader) {
	l.Register(
		reified.ClassOf(SymbolTypeName, nil, func([]reified.Codec[any]) reified.Codec[any] {
			return reified.Erase[Symbol](symbolType)
		}),
	)
}
