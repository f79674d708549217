package typename

import (
	"context"

	"github.com/originbyte/ob-sdk-go/bcs"
	"github.com/originbyte/ob-sdk-go/bindings/addresses"
	"github.com/originbyte/ob-sdk-go/reified"
	"github.com/originbyte/ob-sdk-go/suiclient"
)

const TypeNameTypeName = addresses.MoveStdlib + "::type_name::TypeName"

type TypeName struct {
	Name string
}

var typeNameType = reified.NewStructType(TypeNameTypeName, nil, func(x *TypeName) []reified.FieldSpec {
	return []reified.FieldSpec{
		reified.Field("name", reified.ASCIIString, &x.Name),
	}
})

func IsTypeName(typ string) bool {
	return typeNameType.IsType(typ)
}

func TypeNameReified() *reified.StructType[TypeName] {
	return typeNameType
}

func (v TypeName) MarshalBCS(e *bcs.Encoder) error {
	return typeNameType.EncodeBCS(e, v)
}

func (v TypeName) ToJSONField() any {
	return typeNameType.ToJSONField(v)
}

func (v TypeName) MarshalJSON() ([]byte, error) {
	return typeNameType.ToJSON(v)
}

func TypeNameFromBCS(data []byte) (TypeName, error) {
	return typeNameType.FromBCS(data)
}

func TypeNameFromFields(fields any) (TypeName, error) {
	return typeNameType.FromFields(fields)
}

func TypeNameFromFieldsWithTypes(item any) (TypeName, error) {
	return typeNameType.FromFieldsWithTypes(item)
}

func TypeNameFromJSONField(field any) (TypeName, error) {
	return typeNameType.FromJSONField(field)
}

func TypeNameFromJSON(data []byte) (TypeName, error) {
	return typeNameType.FromJSON(data)
}

func TypeNameFromSuiParsedData(content *suiclient.ParsedData) (TypeName, error) {
	return typeNameType.FromSuiParsedData(content)
}

func FetchTypeName(ctx context.Context, getter reified.ObjectGetter, id string) (TypeName, error) {
	return typeNameType.Fetch(ctx, getter, id)
}

// RegisterClasses adds the structs of this module to l.
func RegisterClasses(l *reified.Loader) {
	l.Register(
		reified.ClassOf(TypeNameTypeName, nil, func([]reified.Codec[any]) reified.Codec[any] {
			return reified.Erase[TypeName](typeNameType)
		}),
	)
}
