// Package dynamicfield binds 0x2::dynamic_field. Field objects are stored
// under an id derived from their parent and key, see FieldID.
package dynamicfield

import (
	"context"

	"github.com/originbyte/ob-sdk-go/bindings/addresses"
	"github.com/originbyte/ob-sdk-go/movetype"
	"github.com/originbyte/ob-sdk-go/reified"
	"github.com/originbyte/ob-sdk-go/suiclient"
)

const FieldTypeName = addresses.Sui + "::dynamic_field::Field"

type Field[Name any, Value any] struct {
	reified.TypeParams
	ID    movetype.Address
	Name  Name
	Value Value
}

func IsField(typ string) bool {
	return movetype.HasTypeName(typ, FieldTypeName)
}

func FieldReified[Name any, Value any](name reified.Codec[Name], value reified.Codec[Value]) *reified.StructType[Field[Name, Value]] {
	return reified.NewStructType(FieldTypeName, []string{name.TypeString(), value.TypeString()}, func(x *Field[Name, Value]) []reified.FieldSpec {
		return []reified.FieldSpec{
			reified.Field("id", reified.UID, &x.ID),
			reified.Field("name", name, &x.Name),
			reified.Field("value", value, &x.Value),
		}
	})
}

func FieldFromBCS[Name any, Value any](name reified.Codec[Name], value reified.Codec[Value], data []byte) (Field[Name, Value], error) {
	return FieldReified(name, value).FromBCS(data)
}

func FieldFromFields[Name any, Value any](name reified.Codec[Name], value reified.Codec[Value], fields any) (Field[Name, Value], error) {
	return FieldReified(name, value).FromFields(fields)
}

func FieldFromFieldsWithTypes[Name any, Value any](name reified.Codec[Name], value reified.Codec[Value], item any) (Field[Name, Value], error) {
	return FieldReified(name, value).FromFieldsWithTypes(item)
}

func FieldFromJSONField[Name any, Value any](name reified.Codec[Name], value reified.Codec[Value], field any) (Field[Name, Value], error) {
	return FieldReified(name, value).FromJSONField(field)
}

func FieldFromJSON[Name any, Value any](name reified.Codec[Name], value reified.Codec[Value], data []byte) (Field[Name, Value], error) {
	return FieldReified(name, value).FromJSON(data)
}

func FieldFromSuiParsedData[Name any, Value any](name reified.Codec[Name], value reified.Codec[Value], content *suiclient.ParsedData) (Field[Name, Value], error) {
	return FieldReified(name, value).FromSuiParsedData(content)
}

func FetchField[Name any, Value any](ctx context.Context, getter reified.ObjectGetter, name reified.Codec[Name], value reified.Codec[Value], id string) (Field[Name, Value], error) {
	return FieldReified(name, value).Fetch(ctx, getter, id)
}

// RegisterClasses adds the structs of this module to l.
func RegisterClasses(l *reified.Loader) {
	l.Register(
		reified.ClassOf(FieldTypeName, []bool{false, false}, func(args []reified.Codec[any]) reified.Codec[any] {
			return reified.Erase[Field[any, any]](FieldReified(args[0], args[1]))
		}),
	)
}
