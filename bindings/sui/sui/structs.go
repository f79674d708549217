package sui

import (
	"context"

	"github.com/originbyte/ob-sdk-go/bcs"
	"github.com/originbyte/ob-sdk-go/bindings/addresses"
	"github.com/originbyte/ob-sdk-go/reified"
	"github.com/originbyte/ob-sdk-go/suiclient"
)

const SUITypeName = addresses.Sui + "::sui::SUI"

type SUI struct {
	DummyField bool
}

var suiType = reified.NewStructType(SUITypeName, nil, func(x *SUI) []reified.FieldSpec {
	return []reified.FieldSpec{
		reified.Field("dummy_field", reified.Bool, &x.DummyField),
	}
})

func IsSUI(typ string) bool {
	return suiType.IsType(typ)
}

func SUIReified() *reified.StructType[SUI] {
	return suiType
}

func (v SUI) MarshalBCS(e *bcs.Encoder) error {
	return suiType.EncodeBCS(e, v)
}

func (v SUI) ToJSONField() any {
	return suiType.ToJSONField(v)
}

func (v SUI) MarshalJSON() ([]byte, error) {
	return suiType.ToJSON(v)
}

func SUIFromBCS(data []byte) (SUI, error) {
	return suiType.FromBCS(data)
}

func SUIFromFields(fields any) (SUI, error) {
	return suiType.FromFields(fields)
}

func SUIFromFieldsWithTypes(item any) (SUI, error) {
	return suiType.FromFieldsWithTypes(item)
}

func SUIFromJSONField(field any) (SUI, error) {
	return suiType.FromJSONField(field)
}

func SUIFromJSON(data []byte) (SUI, error) {
	return suiType.FromJSON(data)
}

func SUIFromSuiParsedData(content *suiclient.ParsedData) (SUI, error) {
	return suiType.FromSuiParsedData(content)
}

func FetchSUI(ctx context.Context, getter reified.ObjectGetter, id string) (SUI, error) {
	return suiType.Fetch(ctx, getter, id)
}

// RegisterClasses adds the structs of this module to l.
func RegisterClasses(l *reified.Loader) {
	l.Register(
		reified.ClassOf(SUITypeName, nil, func([]reified.Codec[any]) reified.Codec[any] {
			return reified.Erase[SUI](suiType)
		}),
	)
}
