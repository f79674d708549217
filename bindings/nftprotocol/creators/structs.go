package creators

import (
	"context"

	"github.com/originbyte/ob-sdk-go/bcs"
	"github.com/originbyte/ob-sdk-go/bindings/addresses"
	"github.com/originbyte/ob-sdk-go/bindings/sui/vecset"
	"github.com/originbyte/ob-sdk-go/movetype"
	"github.com/originbyte/ob-sdk-go/reified"
	"github.com/originbyte/ob-sdk-go/suiclient"
)

const CreatorsTypeName = addresses.NftProtocol + "::creators::Creators"

type Creators struct {
	Creators vecset.VecSet[movetype.Address]
}

var creatorsType = reified.NewStructType(CreatorsTypeName, nil, func(x *Creators) []reified.FieldSpec {
	return []reified.FieldSpec{
		reified.Field("creators", vecset.VecSetReified(reified.Address), &x.Creators),
	}
})

func IsCreators(typ string) bool {
	return creatorsType.IsType(typ)
}

func CreatorsReified() *reified.StructType[Creators] {
	return creatorsType
}

func (v Creators) MarshalBCS(e *bcs.Encoder) error {
	return creatorsType.EncodeBCS(e, v)
}

func (v Creators) ToJSONField() any {
	return creatorsType.ToJSONField(v)
}

func (v Creators) MarshalJSON() ([]byte, error) {
	return creatorsType.ToJSON(v)
}

func CreatorsFromBCS(data []byte) (Creators, error) {
	return creatorsType.FromBCS(data)
}

func CreatorsFromFields(fields any) (Creators, error) {
	return creatorsType.FromFields(fields)
}

func CreatorsFromFieldsWithTypes(item any) (Creators, error) {
	return creatorsType.FromFieldsWithTypes(item)
}

func CreatorsFromJSONField(field any) (Creators, error) {
	return creatorsType.FromJSONField(field)
}

func CreatorsFromJSON(data []byte) (Creators, error) {
	return creatorsType.FromJSON(data)
}

func CreatorsFromSuiParsedData(content *suiclient.ParsedData) (Creators, error) {
	return creatorsType.FromSuiParsedData(content)
}

func FetchCreators(ctx context.Context, getter reified.ObjectGetter, id string) (Creators, error) {
	return creatorsType.Fetch(ctx, getter, id)
}

// RegisterClasses adds the structs of this module to l.
func RegisterClasses(l *reified.Loader) {
	l.Register(
		reified.ClassOf(CreatorsTypeName, nil, func([]reified.Codec[any]) reified.Codec[any] {
			return reified.Erase[Creators](creatorsType)
		}),
	)
}
