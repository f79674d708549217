package typedid

import (
	"context"

	"github.com/originbyte/ob-sdk-go/bcs"
	"github.com/originbyte/ob-sdk-go/bindings/addresses"
	"github.com/originbyte/ob-sdk-go/movetype"
	"github.com/originbyte/ob-sdk-go/reified"
	"github.com/originbyte/ob-sdk-go/suiclient"
)

const TypedIDTypeName = addresses.Originmate + "::typed_id::TypedID"

type TypedID struct {
	reified.TypeParams
	ID movetype.Address
}

func IsTypedID(typ string) bool {
	return movetype.HasTypeName(typ, TypedIDTypeName)
}

func TypedIDReified(t string) *reified.StructType[TypedID] {
	return reified.NewStructType(TypedIDTypeName, []string{t}, func(x *TypedID) []reified.FieldSpec {
		return []reified.FieldSpec{
			reified.Field("id", reified.ID, &x.ID),
		}
	})
}

func (v TypedID) MarshalBCS(e *bcs.Encoder) error {
	return TypedIDReified(v.TypeArg(0)).EncodeBCS(e, v)
}

func (v TypedID) ToJSONField() any {
	return TypedIDReified(v.TypeArg(0)).ToJSONField(v)
}

func (v TypedID) MarshalJSON() ([]byte, error) {
	return TypedIDReified(v.TypeArg(0)).ToJSON(v)
}

func TypedIDFromBCS(t string, data []byte) (TypedID, error) {
	return TypedIDReified(t).FromBCS(data)
}

func TypedIDFromFields(t string, fields any) (TypedID, error) {
	return TypedIDReified(t).FromFields(fields)
}

func TypedIDFromFieldsWithTypes(t string, item any) (TypedID, error) {
	return TypedIDReified(t).FromFieldsWithTypes(item)
}

func TypedIDFromJSONField(t string, field any) (TypedID, error) {
	return TypedIDReified(t).FromJSONField(field)
}

func TypedIDFromJSON(t string, data []byte) (TypedID, error) {
	return TypedIDReified(t).FromJSON(data)
}

func TypedIDFromSuiParsedData(t string, content *suiclient.ParsedData) (TypedID, error) {
	return TypedIDReified(t).FromSuiParsedData(content)
}

func FetchTypedID(ctx context.Context, getter reified.ObjectGetter, t string, id string) (TypedID, error) {
	return TypedIDReified(t).Fetch(ctx, getter, id)
}

// RegisterClasses adds the structs of this module to l.
func RegisterClasses(l *reified.Loader) {
	l.Register(
		reified.ClassOf(TypedIDTypeName, []bool{true}, func(args []reified.Codec[any]) reified.Codec[any] {
			return reified.Erase[TypedID](TypedIDReified(args[0].TypeString()))
		}),
	)
}
