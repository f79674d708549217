package utilssupply

import (
	"context"

	"github.com/originbyte/ob-sdk-go/bcs"
	"github.com/originbyte/ob-sdk-go/bindings/addresses"
	"github.com/originbyte/ob-sdk-go/reified"
	"github.com/originbyte/ob-sdk-go/suiclient"
)

const SupplyTypeName = addresses.Utils + "::utils_supply::Supply"

type Supply struct {
	Max     uint64
	Current uint64
}

var supplyType = reified.NewStructType(SupplyTypeName, nil, func(x *Supply) []reified.FieldSpec {
	return []reified.FieldSpec{
		reified.Field("max", reified.U64, &x.Max),
		reified.Field("current", reified.U64, &x.Current),
	}
})

func IsSupply(typ string) bool {
	return supplyType.IsType(typ)
}

func SupplyReified() *reified.StructType[Supply] {
	return supplyType
}

func (v Supply) MarshalBCS(e *bcs.Encoder) error {
	return supplyType.EncodeBCS(e, v)
}

func (v Supply) ToJSONField() any {
	return supplyType.ToJSONField(v)
}

func (v Supply) MarshalJSON() ([]byte, error) {
	return supplyType.ToJSON(v)
}

func SupplyFromBCS(data []byte) (Supply, error) {
	return supplyType.FromBCS(data)
}

func SupplyFromFields(fields any) (Supply, error) {
	return supplyType.FromFields(fields)
}

func SupplyFromFieldsWithTypes(item any) (Supply, error) {
	return supplyType.FromFieldsWithTypes(item)
}

func SupplyFromJSONField(field any) (Supply, error) {
	return supplyType.FromJSONField(field)
}

func SupplyFromJSON(data []byte) (Supply, error) {
	return supplyType.FromJSON(data)
}

func SupplyFromSuiParsedData(content *suiclient.ParsedData) (Supply, error) {
	return supplyType.FromSuiParsedData(content)
}

func FetchSupply(ctx context.Context, getter reified.ObjectGetter, id string) (Supply, error) {
	return supplyType.Fetch(ctx, getter, id)
}

// RegisterClasses adds the structs of this module to l.
func RegisterClasses(l *reified.Loader) {
	l.Register(
		reified.ClassOf(SupplyTypeName, nil, func([]reified.Codec[any]) reified.Codec[any] {
			return reified.Erase[Supply](supplyType)
		}),
	)
}
