package fixedpoint32

import (
	"context"

	"github.com/originbyte/ob-sdk-go/bcs"
	"github.com/originbyte/ob-sdk-go/bindings/addresses"
	"github.com/originbyte/ob-sdk-go/reified"
	"github.com/originbyte/ob-sdk-go/suiclient"
)

const FixedPoint32TypeName = addresses.MoveStdlib + "::fixed_point32::FixedPoint32"

type FixedPoint32 struct {
	Value uint64
}

var fixedPoint32Type = reified.NewStructType(FixedPoint32TypeName, nil, func(x *FixedPoint32) []reified.FieldSpec {
	return []reified.FieldSpec{
		reified.Field("value", reified.U64, &x.Value),
	}
})

func IsFixedPoint32(typ string) bool {
	return fixedPoint32Type.IsType(typ)
}

func FixedPoint32Reified() *reified.StructType[FixedPoint32] {
	return fixedPoint32Type
}

func (v FixedPoint32) MarshalBCS(e *bcs.Encoder) error {
	return fixedPoint32Type.EncodeBCS(e, v)
}

func (v FixedPoint32) ToJSONField() any {
	return fixedPoint32Type.ToJSONField(v)
}

func (v FixedPoint32) MarshalJSON() ([]byte, error) {
	return fixedPoint32Type.ToJSON(v)
}

func FixedPoint32FromBCS(data []byte) (FixedPoint32, error) {
	return fixedPoint32Type.FromBCS(data)
}

func FixedPoint32FromFields(fields any) (FixedPoint32, error) {
	return fixedPoint32Type.FromFields(fields)
}

func FixedPoint32FromFieldsWithTypes(item any) (FixedPoint32, error) {
	return fixedPoint32Type.FromFieldsWithTypes(item)
}

func FixedPoint32FromJSONField(field any) (FixedPoint32, error) {
	return fixedPoint32Type.FromJSONField(field)
}

func FixedPoint32FromJSON(data []byte) (FixedPoint32, error) {
	return fixedPoint32Type.FromJSON(data)
}

func FixedPoint32FromSuiParsedData(content *suiclient.ParsedData) (FixedPoint32, error) {
	return fixedPoint32Type.FromSuiParsedData(content)
}

func FetchFixedPoint32(ctx context.Context, getter reified.ObjectGetter, id string) (FixedPoint32, error) {
	return fixedPoint32Type.Fetch(ctx, getter, id)
}

// RegisterClasses adds the structs of this module to l.
func RegisterClasses(l *reified.Loader) {
	l.Register(
		reified.ClassOf(FixedPoint32TypeName, nil, func([]reified.Codec[any]) reified.Codec[any] {
			return reified.Erase[FixedPoint32](fixedPoint32Type)
		}),
	)
}
